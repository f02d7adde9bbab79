package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/btracey/algopt/univariate"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "algopt.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefault(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if c != Default() {
		t.Errorf("empty path: got %+v", c)
	}
	s := c.Settings()
	if s.MaxIter != univariate.MaxIter || s.MaxOptIter != univariate.MaxOptIter ||
		s.InitialGap != univariate.Gap || s.StepFactor != univariate.StepFactor {
		t.Errorf("default settings changed: %+v", s)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
Function = "quadratic"
InitialLocation = 1.5
MaxOptIter = 200

[Logging]
Level = "debug"

[Trace]
CSV = "trace.csv"
`)
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Function != "quadratic" || c.InitialLocation != 1.5 || c.MaxOptIter != 200 {
		t.Errorf("values not read: %+v", c)
	}
	if c.Logging.Level != "debug" || c.Trace.CSV != "trace.csv" {
		t.Errorf("tables not read: %+v", c)
	}
	// Keys left out keep their defaults.
	if c.InitialGap != univariate.Gap || c.MaxIter != univariate.MaxIter || c.Logging.Format != "console" {
		t.Errorf("defaults lost: %+v", c)
	}
	s := c.Settings()
	if s.InitialLocation != 1.5 || s.MaxOptIter != 200 {
		t.Errorf("settings not carried over: %+v", s)
	}
}

func TestLoadErrors(t *testing.T) {
	for name, body := range map[string]string{
		"unknown key": `Functon = "quadratic"`,
		"bad gap":     `InitialGap = -1.0`,
		"bad factor":  `StepFactor = 0.5`,
		"bad limit":   `MaxIter = -3`,
		"bad syntax":  `MaxIter = `,
	} {
		if _, err := Load(writeConfig(t, body)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}
