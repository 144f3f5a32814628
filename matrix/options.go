// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the elimination kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters against defaults.
//
// Design goals:
//   - Deterministic behavior: no global state; parallel elimination produces
//     bit-identical results to the sequential sweep.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultConditionThreshold is the infinity-norm at or above which the
	// caller-level gate rejects a matrix (see CheckConditioned).
	DefaultConditionThreshold = 25.0

	// DefaultWorkers = 1 runs the elimination step sequentially.
	DefaultWorkers = 1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid = "matrix: WithParallelElimination: workers must be >= 1"
	panicTraceNil       = "matrix: WithTrace: observer must be non-nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last-writer-wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	workers int        // DefaultWorkers; >1 enables errgroup fan-out in Eliminate(k)
	trace   func(Step) // nil ⇒ no observation
}

// WithParallelElimination updates the non-pivot rows of each column pass on up to
// `workers` goroutines. Each row update reads only the pivot row and writes only
// itself, so the result is identical to the sequential sweep.
//
// Panics when workers < 1. workers == 1 restores the sequential default.
//
// AI-Hints:
//   - Only pays off for n in the hundreds; small matrices are dominated by goroutine overhead.
func WithParallelElimination(workers int) Option {
	if workers < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = workers }
}

// WithTrace registers an observer called synchronously on every state transition
// of Invert. The observer must not mutate the matrices.
//
// Panics when fn is nil.
func WithTrace(fn func(Step)) Option {
	if fn == nil {
		panic(panicTraceNil)
	}

	return func(o *Options) { o.trace = fn }
}

// NewMatrixOptions resolves option setters against documented defaults.
// Useful to inspect the effective configuration in tests.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Workers returns the resolved worker count.
func (o Options) Workers() int { return o.workers }

// Traced reports whether an observer is registered.
func (o Options) Traced() bool { return o.trace != nil }

// gatherOptions applies user setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		workers: DefaultWorkers,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// emit forwards s to the observer if one is registered.
func (o *Options) emit(s Step) {
	if o.trace != nil {
		o.trace(s)
	}
}
