// SPDX-License-Identifier: MIT

// Package textio reads and writes square matrices in a plain text layout:
//
//	3
//	1 0 2
//	0 1 0
//	4 0 1
//
// The first non-blank line holds the size N; each of the next N non-blank lines
// holds exactly N numbers separated by spaces or tabs. Anything after the last
// row must be blank.
package textio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/katalvlaran/gaussjordan/scalar"
)

var (
	// ErrSyntax indicates a token that is not a number (or a size that is not an integer).
	ErrSyntax = errors.New("textio: syntax error")

	// ErrShape indicates a row with the wrong number of values, a missing row,
	// trailing content, or a size below 1.
	ErrShape = errors.New("textio: bad matrix shape")
)

// maxLine bounds a single input line; rows of a few thousand numbers fit comfortably.
const maxLine = 1 << 20

// lineErrorf tags err with the 1-based input line.
func lineErrorf(line int, err error, format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", line, fmt.Sprintf(format, args...), err)
}

// Read parses one matrix from r into a Dense[T].
// Values go through T's FromFloat64, so Fixed inputs are truncated to
// 2^-BaseScale exactly as any other conversion would.
func Read[T scalar.Scalar[T]](r io.Reader) (*matrix.Dense[T], error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLine)

	line := 0
	next := func() ([]string, bool) {
		for sc.Scan() {
			line++
			if fields := strings.Fields(sc.Text()); len(fields) > 0 {
				return fields, true
			}
		}
		return nil, false
	}

	head, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read: %w", err)
		}
		return nil, fmt.Errorf("missing size line: %w", ErrShape)
	}
	if len(head) != 1 {
		return nil, lineErrorf(line, ErrShape, "size line has %d fields", len(head))
	}
	n, err := strconv.Atoi(head[0])
	if err != nil {
		return nil, lineErrorf(line, ErrSyntax, "size %q", head[0])
	}
	if n < 1 {
		return nil, lineErrorf(line, ErrShape, "size %d", n)
	}

	m, err := matrix.NewDense[T](n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		fields, ok := next()
		if !ok {
			if err = sc.Err(); err != nil {
				return nil, fmt.Errorf("read: %w", err)
			}
			return nil, fmt.Errorf("row %d missing: %w", i, ErrShape)
		}
		if len(fields) != n {
			return nil, lineErrorf(line, ErrShape, "row %d has %d values, want %d", i, len(fields), n)
		}
		row, _ := m.Row(i)
		for j, tok := range fields {
			f, perr := strconv.ParseFloat(tok, 64)
			if perr != nil {
				return nil, lineErrorf(line, ErrSyntax, "value %q", tok)
			}
			row[j] = scalar.FromFloat64[T](f)
		}
	}
	if _, extra := next(); extra {
		return nil, lineErrorf(line, ErrShape, "unexpected content after row %d", n-1)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	return m, nil
}

// Write prints m one row per line, each value with prec decimals and a single
// space between values (the %f layout of a C printf with a chosen precision).
func Write[T scalar.Scalar[T]](w io.Writer, m *matrix.Dense[T], prec int) error {
	if m == nil {
		return matrix.ErrNilMatrix
	}
	if prec < 0 {
		prec = 0
	}
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for i := 0; i < m.Size(); i++ {
		row, _ := m.Row(i)
		for j, v := range row {
			if j > 0 {
				_ = bw.WriteByte(' ')
			}
			buf = strconv.AppendFloat(buf[:0], v.Float64(), 'f', prec, 64)
			_, _ = bw.Write(buf)
		}
		_ = bw.WriteByte('\n')
	}

	return bw.Flush()
}
