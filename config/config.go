// Package config holds the run configuration of the agglom CLI: defaults,
// AGGLOM_* environment fallbacks and struct-tag validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/agglom/linkage"
)

// ErrInvalid indicates a configuration that failed validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Mode values accepted by Config.Mode.
const (
	ModeBounded   = "bounded"
	ModeUnbounded = "unbounded"
	ModeBoth      = "both"
)

// Config is the full set of knobs for one CLI run.
type Config struct {
	// Input is the points file; empty means probe point.DefaultCandidates.
	Input string

	// Mode is bounded, unbounded or both.
	Mode string `validate:"required,oneof=bounded unbounded both"`

	// Example selects the example-scale bound when Bound is -1.
	Example bool

	// Bound is the Bounded-mode step bound; -1 derives it from Example.
	Bound int `validate:"gte=-1"`

	// Workers is the distance-build concurrency (0 = GOMAXPROCS, 1 = sequential).
	Workers int `validate:"gte=0,lte=256"`

	// LogLevel is the zap level name.
	LogLevel string `validate:"required,oneof=debug info warn error"`

	// Progress shows a progress bar over consumed pairs when stderr is a terminal.
	Progress bool

	// Metrics dumps merge-step metrics to stderr after the run.
	Metrics bool
}

var validate = validator.New()

// Default returns the configuration used when no flag or variable is set.
func Default() Config {
	return Config{
		Mode:     ModeBoth,
		Bound:    -1,
		Workers:  1,
		LogLevel: "info",
	}
}

// FromEnv overlays AGGLOM_* environment variables onto c. Unset variables, and
// integers that fail to parse, keep the value from c.
func FromEnv(c Config) Config {
	c.Input = getEnv("AGGLOM_INPUT", c.Input)
	c.Mode = getEnv("AGGLOM_MODE", c.Mode)
	c.Example = getEnvBool("AGGLOM_EXAMPLE", c.Example)
	c.Bound = getEnvInt("AGGLOM_BOUND", c.Bound)
	c.Workers = getEnvInt("AGGLOM_WORKERS", c.Workers)
	c.LogLevel = getEnv("AGGLOM_LOG_LEVEL", c.LogLevel)

	return c
}

// Validate checks c against its struct tags. All violations are reported in
// one error that matches ErrInvalid.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, formatFieldError(fe))
		}
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
	}

	return nil
}

// EffectiveBound resolves Bound, falling back to linkage.BoundFor(Example).
func (c Config) EffectiveBound() int {
	if c.Bound >= 0 {
		return c.Bound
	}

	return linkage.BoundFor(c.Example)
}

// Modes expands Mode into the linkage policies to run, in print order.
func (c Config) Modes() []linkage.Mode {
	switch c.Mode {
	case ModeBounded:
		return []linkage.Mode{linkage.Bounded}
	case ModeUnbounded:
		return []linkage.Mode{linkage.Unbounded}
	default:
		return []linkage.Mode{linkage.Bounded, linkage.Unbounded}
	}
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
