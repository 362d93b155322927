package config

import (
	"path/filepath"
	"testing"

	"github.com/deanishe/awgo"
	"github.com/stretchr/testify/assert"

	"github.com/sfun/alfred-unit-converter/pkg/parser"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load(aw.NewConfig(aw.MapEnv{}), "/tmp/data")

	assert.Equal(t, parser.DecimalNumbers, cfg.NumberMode)
	assert.False(t, cfg.StrictFamilies)
	assert.Equal(t, filepath.Join("/tmp/data", "units.db"), cfg.CustomUnitsDB)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.ShowBaseValue)
}

func TestLoadFromEnv(t *testing.T) {
	env := aw.MapEnv{
		"number_mode":     "Integer",
		"strict_families": "true",
		"custom_units_db": "/var/units.db",
		"log_level":       "debug",
		"show_base_value": "false",
	}
	cfg := Load(aw.NewConfig(env), "/tmp/data")

	assert.Equal(t, parser.IntegerNumbers, cfg.NumberMode)
	assert.True(t, cfg.StrictFamilies)
	assert.Equal(t, "/var/units.db", cfg.CustomUnitsDB)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.ShowBaseValue)
}

func TestParseNumberMode(t *testing.T) {
	assert.Equal(t, parser.IntegerNumbers, parseNumberMode(" int "))
	assert.Equal(t, parser.DecimalNumbers, parseNumberMode("decimal"))
	assert.Equal(t, parser.DecimalNumbers, parseNumberMode("bogus"))
}
