package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -2 }},
		{"density above one", func(c *Config) { c.RandomDensity = 1.5 }},
		{"negative density", func(c *Config) { c.RandomDensity = -0.1 }},
		{"empty palette", func(c *Config) { c.Palette = nil }},
		{"negative frame rate", func(c *Config) { c.FrameRate = -time.Second }},
		{"negative injection", func(c *Config) { c.InjectionCount = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
		"width": 12,
		"height": 8,
		"use_parallel": false,
		"palette": ["#112233"],
		"seeds": [{"x": 1, "y": 2, "color": "#445566"}],
		"edits": [{"generation": 3, "x": 4, "y": 5, "kill": true}]
	}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Width != 12 || c.Height != 8 || c.UseParallel {
		t.Errorf("fields not loaded: %+v", c)
	}
	if c.MaxGenerations != DefaultConfig().MaxGenerations {
		t.Error("unset fields should keep their defaults")
	}
	if len(c.Palette) != 1 || len(c.Seeds) != 1 || c.Seeds[0].Color != "#445566" {
		t.Errorf("palette/seeds not loaded: %+v %+v", c.Palette, c.Seeds)
	}
	if edits := c.EditsFor(3); len(edits) != 1 || !edits[0].Kill {
		t.Errorf("EditsFor(3) = %+v", edits)
	}
	if edits := c.EditsFor(2); len(edits) != 0 {
		t.Errorf("EditsFor(2) = %+v, want none", edits)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadConfig(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, want os.ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{width:"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad); err == nil {
		t.Error("malformed JSON should fail")
	}
}

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 100, 4, 2, 100*time.Millisecond)
	s.Update(2, 200, 3, 1, 0)

	if s.TotalGenerations != 2 || s.TotalBirths != 7 || s.TotalDeaths != 3 {
		t.Errorf("totals = %+v", s)
	}
	if s.GenerationsPerSecond < 9.99 || s.GenerationsPerSecond > 10.01 {
		t.Errorf("gen/sec = %v, want 10", s.GenerationsPerSecond)
	}
	if s.AveragePopulation != 110 {
		t.Errorf("moving average = %v, want 110", s.AveragePopulation)
	}
}
