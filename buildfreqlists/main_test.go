package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand("buildfreqlists", func(bool) *zap.Logger { return zap.NewNop() })
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestUsageOnWrongArgCount(t *testing.T) {
	for _, args := range [][]string{nil, {"data"}, {"data", "out.cpp", "extra"}} {
		out, err := execute(t, args...)
		require.NoError(t, err, "usage is not an error")
		assert.Contains(t, out, "buildfreqlists data-dir frequency_lists.coffee")
		assert.Contains(t, out, "--config")
	}
}

func TestRunUsageExitCode(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, run([]string{"only-one"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "usage:")
	assert.Empty(t, stderr.String())
}

func TestBuildWithConfig(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "passwords.txt"), []byte("123456\npassword\n12345678\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "surnames.txt"), []byte("smith\n"), 0o644))

	outDir := t.TempDir()
	config := filepath.Join(outDir, "freqlists.toml")
	require.NoError(t, os.WriteFile(config, []byte("[dictionaries]\npasswords = 2\n"), 0o644))
	output := filepath.Join(outDir, "frequency_lists.coffee")

	_, err := execute(t, "--config", config, dataDir, output)
	require.NoError(t, err)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(got), "  passwords: \"123456,password\".split(\",\")\n")
	assert.NotContains(t, string(got), "smith")
}

func TestBuildFailure(t *testing.T) {
	_, err := execute(t, filepath.Join(t.TempDir(), "missing"), filepath.Join(t.TempDir(), "out.hpp"))
	assert.Error(t, err)

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"--config", filepath.Join(t.TempDir(), "nope.toml"), "a", "b"}, &stdout, &stderr))
	assert.NotEmpty(t, stderr.String())
}
