package matinv

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/gaussjordan/internal/textio"
	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/katalvlaran/gaussjordan/scalar"
)

// ErrNotWellConditioned is returned when the input fails the norm gate.
var ErrNotWellConditioned = errors.New("input matrix is not well-conditioned")

// stdin is swapped by tests.
var stdin io.Reader = os.Stdin

// Run executes the matinv pipeline and writes the report to out; logs go to errOut.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := newLogger(cfg, errOut)

	var src io.Reader
	if cfg.Input == StdinPath {
		src = stdin
	} else {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		src = f
	}

	switch cfg.Representation {
	case ReprFloat:
		return invert[scalar.Float](ctx, cfg, src, out, logger)
	default:
		return invert[scalar.Fixed](ctx, cfg, src, out, logger)
	}
}

// invert is the pipeline body for one representation.
func invert[T scalar.Scalar[T]](ctx context.Context, cfg Config, src io.Reader, out io.Writer, logger zerolog.Logger) error {
	a, err := textio.Read[T](src)
	if err != nil {
		return fmt.Errorf("read %s: %w", cfg.Input, err)
	}
	n := a.Size()
	logger.Info().Int("size", n).Str("repr", cfg.Representation).Str("input", cfg.Input).Msg("matrix loaded")
	fmt.Fprintf(out, "Matrix size = %d\n", n)

	norm, err := matrix.CheckConditioned(a, cfg.Threshold)
	fmt.Fprintf(out, "Condition number of the matrix: %f\n", norm)
	if err != nil {
		if errors.Is(err, matrix.ErrIllConditioned) {
			logger.Warn().Float64("norm", norm).Float64("threshold", cfg.Threshold).Msg("gate rejected matrix")
			fmt.Fprintln(out, "Input matrix is not well-conditioned")
			return fmt.Errorf("%w: norm %g, threshold %g", ErrNotWellConditioned, norm, cfg.Threshold)
		}
		return err
	}
	logger.Debug().Float64("norm", norm).Float64("threshold", cfg.Threshold).Msg("gate passed")

	if cfg.ShowInput {
		fmt.Fprintln(out, "Input Matrix")
		if err = textio.Write(out, a, cfg.Precision); err != nil {
			return err
		}
	}

	if err = ctx.Err(); err != nil {
		return err
	}

	var orig *matrix.Dense[T]
	if cfg.Verify {
		orig = a.Clone()
	}
	inv, err := matrix.NewDense[T](n)
	if err != nil {
		return err
	}
	if err = matrix.Invert(a, inv, invertOptions(cfg, logger)...); err != nil {
		logger.Error().Err(err).Msg("inversion failed")
		return fmt.Errorf("invert: %w", err)
	}
	logger.Info().Int("size", n).Msg("inversion complete")

	if cfg.ShowReduced {
		fmt.Fprintln(out, "Row reduced input matrix (should be the identity matrix)")
		if err = textio.Write(out, a, cfg.Precision); err != nil {
			return err
		}
	}
	fmt.Fprintln(out, "Inverted Matrix")
	if err = textio.Write(out, inv, cfg.Precision); err != nil {
		return err
	}

	if cfg.Verify {
		return report(orig, inv, out, logger)
	}
	return nil
}

// invertOptions maps the config onto kernel options.
func invertOptions(cfg Config, logger zerolog.Logger) []matrix.Option {
	var opts []matrix.Option
	if cfg.Workers > 1 {
		opts = append(opts, matrix.WithParallelElimination(cfg.Workers))
	}
	if logger.GetLevel() <= zerolog.DebugLevel {
		opts = append(opts, matrix.WithTrace(func(s matrix.Step) {
			logger.Debug().
				Int("col", s.Col).
				Stringer("state", s.State).
				Int("pivot_row", s.PivotRow).
				Bool("swapped", s.Swapped).
				Msg("step")
		}))
	}
	return opts
}

// report prints the residual and the infinity-norm condition number of the result.
func report[T scalar.Scalar[T]](a, inv *matrix.Dense[T], out io.Writer, logger zerolog.Logger) error {
	residual, err := matrix.VerifyInverse(a, inv)
	if err != nil {
		return err
	}
	cond, err := matrix.ConditionEstimate(a, inv)
	if err != nil {
		return err
	}
	logger.Info().Float64("residual", residual).Float64("condition", cond).Msg("verified")
	fmt.Fprintf(out, "Residual ||A*inv - I||: %e\n", residual)
	fmt.Fprintf(out, "Condition number ||A||*||inv||: %f\n", cond)
	return nil
}
