package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/jhunt/go-log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.SetupLogging(log.LogConfig{Type: "file", File: "/dev/null", Level: "error"})
	os.Exit(m.Run())
}

func runCLI(t *testing.T, opt options, args ...string) (int, string, string) {
	t.Helper()
	if opt.DB == "" {
		opt.DB = filepath.Join(t.TempDir(), "units.db")
	}
	var stdout, stderr bytes.Buffer
	code := run(opt, args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunConvert(t *testing.T) {
	code, out, errOut := runCLI(t, options{}, "10km", "to", "mile")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "6.21 mile\n", out)
	assert.Empty(t, errOut)

	code, out, _ = runCLI(t, options{}, "-40C to F")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "-40 F\n", out)
}

func TestRunModes(t *testing.T) {
	code, out, _ := runCLI(t, options{Integer: true}, "3.5m to cm")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "300 cm\n", out)

	code, _, errOut := runCLI(t, options{Strict: true}, "10m to F")
	assert.Equal(t, exitConversion, code)
	assert.Contains(t, errOut, "incompatible units")
}

func TestRunErrors(t *testing.T) {
	code, _, errOut := runCLI(t, options{}, "10xyz")
	assert.Equal(t, exitConversion, code)
	assert.Equal(t, "!!! invalid unit: xyz\n", errOut)

	code, _, errOut = runCLI(t, options{})
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "unitconv [OPTIONS] EXPRESSION")

	code, _, _ = runCLI(t, options{Add: "stone"})
	assert.Equal(t, exitUsage, code)
}

func TestRunHelp(t *testing.T) {
	code, out, _ := runCLI(t, options{Help: true})
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "--strict")
}

func TestRunAddPersists(t *testing.T) {
	db := filepath.Join(t.TempDir(), "units.db")

	code, out, _ := runCLI(t, options{DB: db, Add: "stone:6.35029"}, "2stone", "to", "m")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "12.7 m\n", out)

	// 第二次运行从数据库加载
	code, out, _ = runCLI(t, options{DB: db}, "1kstone to km")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "6.35 km\n", out)

	code, out, _ = runCLI(t, options{DB: db, List: true})
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "stone    factor=6.35029 offset=0")
	assert.Contains(t, out, "prefixes: G M c k m n μ")
}

func TestLoggingStaysOffStdout(t *testing.T) {
	defer log.SetupLogging(log.LogConfig{Type: "file", File: "/dev/null", Level: "error"})

	for _, debug := range []bool{false, true} {
		cfg := logConfig(debug)
		assert.Equal(t, "console", cfg.Type)
		assert.Equal(t, "stderr", cfg.File)
	}
	assert.Equal(t, "debug", logConfig(true).Level)

	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stdout
	os.Stdout = w
	log.SetupLogging(logConfig(true))
	code, out, _ := runCLI(t, options{Add: "stone:6.35029"}, "1stone to m")
	os.Stdout = orig
	require.NoError(t, w.Close())

	leaked, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "6.35 m\n", out)
	assert.Empty(t, string(leaked))
}

func TestParseAdd(t *testing.T) {
	c, err := parseAdd("R:0.5555555555555556:-491.67")
	require.NoError(t, err)
	assert.Equal(t, "R", c.Symbol)
	assert.Equal(t, -491.67, c.Offset)

	for _, bad := range []string{"", "x", ":1", "x:y", "x:1:z", "a:1:2:3"} {
		_, err := parseAdd(bad)
		assert.Error(t, err, bad)
	}
}
