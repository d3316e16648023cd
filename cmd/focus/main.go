package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/jask/focus/internal/config"
	"github.com/jask/focus/internal/input"
	"github.com/jask/focus/internal/lineterm"
	"github.com/jask/focus/internal/loop"
	"github.com/jask/focus/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := os.Stat(config.Path()); errors.Is(err, os.ErrNotExist) {
		// first run: write the defaults so there is something to edit
		if err := config.Save(cfg); err != nil {
			log.Printf("warn: could not save default config: %v", err)
		}
	}

	logger, closeLog, err := openLog(cfg.Debug.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	km := keymap(cfg.Keys)
	switch mode(cfg.UI.Mode, os.Stdin, os.Stdout) {
	case config.ModeLine:
		return runLine(cfg, km, logger)
	default:
		return runTUI(cfg, km, logger)
	}
}

func runTUI(cfg config.Config, km input.Keymap, logger *log.Logger) error {
	app := tui.New(tui.Options{
		Keymap:       km,
		PollInterval: cfg.Loop.PollInterval,
		InputTitle:   cfg.UI.InputTitle,
		Logger:       logger,
	})
	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(app, opts...).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func runLine(cfg config.Config, km input.Keymap, logger *log.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := loop.NewSession(&lineterm.Buffer{}, input.NewRouter(km), loop.WithLogger(logger))
	return loop.Run(ctx, lineterm.New(os.Stdin, os.Stdout), s, loop.RunOptions{
		PollInterval: cfg.Loop.PollInterval,
	})
}

// openLog returns the session logger. Without a log file everything is
// discarded, since stdout belongs to the frontend.
func openLog(path string) (*log.Logger, func(), error) {
	prefix := fmt.Sprintf("focus %s ", uuid.NewString()[:8])
	if path == "" {
		return log.New(io.Discard, prefix, log.LstdFlags), func() {}, nil
	}
	f, err := tea.LogToFile(path, prefix)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return log.New(f, prefix, log.LstdFlags), func() { _ = f.Close() }, nil
}

func keymap(k config.KeysConfig) input.Keymap {
	return input.Keymap{Quit: k.Quit, Submit: k.Submit, Reset: k.Reset}.WithDefaults()
}

type fdFile interface {
	Fd() uintptr
}

// mode resolves "auto" to tui when both ends are terminals, line otherwise.
func mode(configured string, in, out fdFile) string {
	if configured != config.ModeAuto {
		return configured
	}
	if isTerminal(in) && isTerminal(out) {
		return config.ModeTUI
	}
	return config.ModeLine
}

func isTerminal(f fdFile) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
