package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/NivBraz/shiftcipher/internal/config"
	"github.com/NivBraz/shiftcipher/internal/models"
	"github.com/NivBraz/shiftcipher/pkg/caesar"
	"github.com/NivBraz/shiftcipher/pkg/wordbank"
)

// run executes the CLI with a quiet configuration and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("logging:\n  level: error\n"), 0644))

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestEncryptCommand(t *testing.T) {
	out, err := run(t, "", "encrypt", "--text", "Attack at Dawn!", "--shift", "5", "--rotate", "10")
	require.NoError(t, err)

	var results []models.EncryptResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "Fyyfhp fy Ifbs!", results[0].Ciphertext)
	assert.Equal(t, 5, results[0].Shift)
	assert.Equal(t, 10, results[1].Shift)
	assert.Equal(t, caesar.Apply("Attack at Dawn!", 10), results[1].Ciphertext)
	assert.Equal(t, results[0].Session, results[1].Session)
}

func TestEncryptCommandInvalidShift(t *testing.T) {
	_, err := run(t, "", "encrypt", "--text", "hello", "--shift", "five")
	assert.ErrorIs(t, err, caesar.ErrInvalidInput)

	_, err = run(t, "", "encrypt", "--text", "hello", "--shift", "1", "--rotate", "x")
	assert.ErrorIs(t, err, caesar.ErrInvalidInput)
}

func TestEncryptCommandRequiresInput(t *testing.T) {
	_, err := run(t, "", "encrypt", "--shift", "3")
	assert.ErrorIs(t, err, errNoInput)
}

func TestDecryptCommandFromStdin(t *testing.T) {
	out, err := run(t, "khoor zruog\n", "decrypt")
	require.NoError(t, err)

	var res models.DecryptResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 3, res.Shift)
	assert.Equal(t, "hello world", res.Plaintext)
	assert.Empty(t, res.Candidates)
}

func TestDecryptCommandWithScores(t *testing.T) {
	out, err := run(t, "", "decrypt", "--text", "Fyyfhp fy Ifbs!", "--scores", "--top", "2")
	require.NoError(t, err)

	var res models.DecryptResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 5, res.Shift)
	assert.Equal(t, "Attack at Dawn!", res.Plaintext)
	require.Len(t, res.Candidates, 2)
	assert.Equal(t, 5, res.Candidates[0].Shift)
	assert.Equal(t, 3, res.Candidates[0].Score)
}

func TestDecryptCommandFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "message.txt")
	require.NoError(t, os.WriteFile(path, []byte(caesar.Apply("the cat sat on the mat", 20)+"\n"), 0644))

	outFile := filepath.Join(t.TempDir(), "out.json")
	_, err := run(t, "", "decrypt", "--file", path, "--output", outFile)
	require.NoError(t, err)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	var res models.DecryptResult
	require.NoError(t, json.Unmarshal(data, &res))
	assert.Equal(t, 20, res.Shift)
	assert.Equal(t, "the cat sat on the mat", res.Plaintext)
}

func TestWordsCommand(t *testing.T) {
	out, err := run(t, "", "words", "Hello!", "xyzzy123")
	require.NoError(t, err)

	var checks []wordCheck
	require.NoError(t, json.Unmarshal([]byte(out), &checks))
	assert.Equal(t, []wordCheck{
		{Word: "Hello!", Known: true},
		{Word: "xyzzy123", Known: false},
	}, checks)
}

func TestMissingDictionaryIsFatal(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := "logging:\n  level: error\ndictionary:\n  file: " + filepath.Join(dir, "nope.txt") + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0644))

	root := newRootCmd()
	root.SetArgs([]string{"--config", cfgPath, "decrypt", "--text", "khoor"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	err := root.ExecuteContext(context.Background())
	assert.ErrorIs(t, err, wordbank.ErrIO)
}

func TestBuildLogger(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		development bool
		verbose     bool
		wantLevel   zapcore.Level
		wantErr     bool
	}{
		{name: "configured level", level: "warn", wantLevel: zapcore.WarnLevel},
		{name: "verbose overrides", level: "error", verbose: true, wantLevel: zapcore.DebugLevel},
		{name: "development", level: "info", development: true, wantLevel: zapcore.InfoLevel},
		{name: "bad level", level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Logging.Level = tt.level
			cfg.Logging.Development = tt.development

			logger, err := buildLogger(cfg, tt.verbose)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.wantLevel))
			if tt.wantLevel > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.wantLevel-1))
			}
		})
	}
}
