package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func logLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	s := strings.TrimSuffix(string(data), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestJournalCmd_EachLevel(t *testing.T) {
	tests := map[string]string{
		"--debug": "DEBUG",
		"-i":      "INFO",
		"--warn":  "WARNING",
		"-e":      "ERROR",
		"--crit":  "CRITICAL",
	}
	for flag, level := range tests {
		t.Run(level, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cli.log")
			_, err := run(t, "hello there", flag, "--logfile", path)
			require.NoError(t, err)

			lines := logLines(t, path)
			require.Len(t, lines, 1)
			assert.Contains(t, lines[0], " "+level+" ")
			assert.True(t, strings.HasSuffix(lines[0], ": hello there"), lines[0])
		})
	}
}

func TestJournalCmd_NoLevelLogsNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.log")
	_, err := run(t, "quiet", "-l", path)
	require.NoError(t, err)

	assert.FileExists(t, path)
	assert.Empty(t, logLines(t, path))
}

func TestJournalCmd_LevelsMutuallyExclusive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.log")
	_, err := run(t, "both", "--warn", "--error", "--logfile", path)
	assert.Error(t, err)
}

func TestJournalCmd_LogfileRequired(t *testing.T) {
	_, err := run(t, "message", "--info")
	assert.Error(t, err)
}

func TestJournalCmd_MessageRequired(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.log")
	_, err := run(t, "--info", "--logfile", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "message is required")
}

func TestJournalCmd_OpenFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "cli.log")
	_, err := run(t, "message", "--info", "--logfile", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening journal")
}

func TestJournalCmd_SelfTest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selftest.log")
	out, err := run(t, "--test", "--logfile", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Log messages with default settings.")
	assert.Contains(t, out, "Log messages with all logging set to False.")
	assert.Contains(t, out, "Log messages with all logging set to True.")

	// Two enabled passes of five levels; the disabled pass writes nothing.
	lines := logLines(t, path)
	require.Len(t, lines, 10)
	assert.Contains(t, lines[0], "DEBUG")
	assert.Contains(t, lines[4], "CRITICAL")
	assert.Contains(t, lines[5], "DEBUG")

	disabled := strings.Index(out, "all logging set to False.")
	enabled := strings.Index(out, "all logging set to True.")
	between := out[disabled:enabled]
	assert.Equal(t, 1, strings.Count(between, "\n"), "no lines expected while disabled:\n%s", between)
}
