package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/focus/internal/config"
)

func TestModeExplicitWins(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	require.Equal(t, config.ModeTUI, mode(config.ModeTUI, r, w))
	require.Equal(t, config.ModeLine, mode(config.ModeLine, r, w))
}

func TestModeAutoFallsBackToLineForPipes(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	require.Equal(t, config.ModeLine, mode(config.ModeAuto, r, w))
}

func TestKeymapFillsEmptyActions(t *testing.T) {
	km := keymap(config.KeysConfig{Quit: []string{"x"}})
	require.Equal(t, []string{"x"}, km.Quit)
	require.Equal(t, []string{"enter"}, km.Submit)
	require.Equal(t, []string{"r"}, km.Reset)
}

func TestOpenLogDiscardsWithoutPath(t *testing.T) {
	logger, closeLog, err := openLog("")
	require.NoError(t, err)
	defer closeLog()
	require.True(t, strings.HasPrefix(logger.Prefix(), "focus "))
	logger.Print("not written anywhere")
}

func TestOpenLogWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "focus.log")
	logger, closeLog, err := openLog(path)
	require.NoError(t, err)
	logger.Print("timer started")
	closeLog()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(b), "timer started")
	require.Contains(t, string(b), logger.Prefix())
}
