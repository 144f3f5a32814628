package config

import (
	"fmt"
	"io"
	"os"
)

// Exit statuses shared by the cmd/ entry points.
const (
	ExitFailure = 1 // the command ran and failed
	ExitUsage   = 2 // flags or environment rejected; same status the flag package uses
)

// Swapped in tests.
var (
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

// Fail prints "<prog>: <err>" on stderr and terminates with code.
// A nil err terminates without printing.
func Fail(prog string, code int, err error) {
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", prog, err)
	}
	exit(code)
}
