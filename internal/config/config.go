// Package config loads the TOML run configuration of the algopt command.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/btracey/algopt/univariate"
)

type Config struct {
	Function string

	InitialLocation float64
	InitialGap      float64
	StepFactor      float64
	MaxIter         int
	MaxOptIter      int

	Logging LoggingConfig
	Trace   TraceConfig
}

type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // console or json
}

type TraceConfig struct {
	CSV     string // File receiving one CSV row per iteration, empty for none
	Display bool   // Print an aligned progress table on stdout
}

// Default returns the configuration used for keys the file leaves out.
func Default() Config {
	s := univariate.DefaultSettings()
	return Config{
		Function:        "expsin",
		InitialLocation: s.InitialLocation,
		InitialGap:      s.InitialGap,
		StepFactor:      s.StepFactor,
		MaxIter:         s.MaxIter,
		MaxOptIter:      s.MaxOptIter,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the configuration at path on top of Default. An empty path
// returns Default. Unknown keys are an error.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	meta, err := toml.DecodeFile(path, &c)
	if err != nil {
		return Config{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (c Config) Validate() error {
	if !(c.InitialGap > 0) {
		return errors.New("InitialGap must be positive")
	}
	if c.StepFactor < 1 {
		return errors.New("StepFactor must be at least 1")
	}
	if c.MaxIter < 0 || c.MaxOptIter < 0 {
		return errors.New("iteration limits must not be negative")
	}
	return nil
}

// Settings converts the configuration to optimizer settings with no
// writers attached.
func (c Config) Settings() *univariate.Settings {
	s := univariate.DefaultSettings()
	s.InitialLocation = c.InitialLocation
	s.InitialGap = c.InitialGap
	s.StepFactor = c.StepFactor
	s.MaxIter = c.MaxIter
	s.MaxOptIter = c.MaxOptIter
	return s
}
