// Package matinv parses matinv flags and runs the read, gate, invert, print pipeline.
package matinv

import (
	"errors"
	"flag"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/gaussjordan/internal/platform/config"
)

// Representation names accepted by -repr and MATINV_REPRESENTATION.
const (
	ReprFixed = "fixed"
	ReprFloat = "float"
)

// Log formats accepted by -log-format and MATINV_LOG_FORMAT.
const (
	LogConsole = "console"
	LogJSON    = "json"
)

// StdinPath selects standard input as the matrix source.
const StdinPath = "-"

// Config holds matinv command configuration.
// Environment variables set the defaults; flags override them.
type Config struct {
	Threshold      float64 `env:"MATINV_THRESHOLD" envDefault:"25"`
	Representation string  `env:"MATINV_REPRESENTATION" envDefault:"fixed"`
	Workers        int     `env:"MATINV_WORKERS" envDefault:"0"`
	Verify         bool    `env:"MATINV_VERIFY" envDefault:"false"`
	LogLevel       string  `env:"MATINV_LOG_LEVEL" envDefault:"info"`
	LogFormat      string  `env:"MATINV_LOG_FORMAT" envDefault:"console"`
	Precision      int     `env:"MATINV_PRECISION" envDefault:"6"`

	ShowInput   bool
	ShowReduced bool

	// Input is the matrix file path, or StdinPath.
	Input string
}

// ParseConfig parses environment and flags into Config.
// A nil environ reads the process environment.
func ParseConfig(fs *flag.FlagSet, args []string, environ map[string]string) (Config, error) {
	var cfg Config
	if err := config.ParseEnvFrom(&cfg, environ); err != nil {
		return Config{}, err
	}
	cfg.ShowInput = true

	fs.Float64Var(&cfg.Threshold, "threshold", cfg.Threshold, "refuse to invert when the infinity-norm is at or above this value")
	fs.StringVar(&cfg.Representation, "repr", cfg.Representation, "numeric representation (fixed, float)")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "goroutines per elimination step (0 or 1 = sequential)")
	fs.BoolVar(&cfg.Verify, "verify", cfg.Verify, "report the residual ||A*inv - I|| and the condition number")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (console, json)")
	fs.IntVar(&cfg.Precision, "precision", cfg.Precision, "decimals printed per value")
	fs.BoolVar(&cfg.ShowInput, "show-input", cfg.ShowInput, "print the input matrix")
	fs.BoolVar(&cfg.ShowReduced, "show-reduced", false, "print the row-reduced input (should be the identity)")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() != 1 {
		return Config{}, errors.New("need exactly one input filename (or - for stdin)")
	}
	cfg.Input = fs.Arg(0)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch c.Representation {
	case ReprFixed, ReprFloat:
	default:
		return fmt.Errorf("unknown representation %q (valid: fixed, float)", c.Representation)
	}
	switch c.LogFormat {
	case LogConsole, LogJSON:
	default:
		return fmt.Errorf("unknown log format %q (valid: console, json)", c.LogFormat)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if !(c.Threshold > 0) {
		return fmt.Errorf("threshold must be > 0, got %g", c.Threshold)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	if c.Precision < 0 {
		return fmt.Errorf("precision must be >= 0, got %d", c.Precision)
	}
	if c.Input == "" {
		return errors.New("input is required")
	}
	return nil
}
