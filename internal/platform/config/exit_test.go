package config

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// captureExit redirects the exit hooks for one test and returns what Fail wrote
// and the status it asked for (-1 when exit was never called).
func captureExit(t *testing.T, fn func()) (string, int) {
	t.Helper()
	var buf bytes.Buffer
	code := -1
	prevOut, prevExit := stderr, exit
	stderr, exit = &buf, func(c int) { code = c }
	t.Cleanup(func() { stderr, exit = prevOut, prevExit })

	fn()

	return buf.String(), code
}

func TestFail(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		err      error
		wantOut  string
		wantCode int
	}{
		{"run failure", ExitFailure, errors.New("invert: singular"), "matinv: invert: singular\n", 1},
		{"usage", ExitUsage, errors.New("bad -repr"), "matinv: bad -repr\n", 2},
		{"nil error is silent", ExitFailure, nil, "", 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, code := captureExit(t, func() { Fail("matinv", tc.code, tc.err) })
			assert.Equal(t, tc.wantOut, out)
			assert.Equal(t, tc.wantCode, code)
		})
	}
}
