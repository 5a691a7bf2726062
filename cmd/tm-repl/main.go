package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"tm-sim/internal/config"
	"tm-sim/internal/logging"
	"tm-sim/internal/machine"
	_ "tm-sim/internal/tape"
)

const historyFile = ".tm_history"

func main() {
	log := logging.WithRun(logging.ConfigureRuntime(), "tm-repl")

	cfg, err := config.Parse("tm-repl", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("invalid arguments")
	}
	s, err := newSession(cfg, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("memory")
	}

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(func(line string) []string {
		var out []string
		for _, c := range []string{"step", "show", "rules", "mutate", "load", "check", "repair", "reset", "help", "quit"} {
			if strings.HasPrefix(c, strings.ToLower(line)) {
				out = append(out, c)
			}
		}
		return out
	})

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if err := saveHistory(histPath, ln); err != nil {
			log.Warn().Err(err).Str("path", histPath).Msg("history not saved")
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		sig := <-sigc
		if err := saveHistory(histPath, ln); err != nil {
			log.Warn().Err(err).Str("path", histPath).Msg("history not saved")
		}
		ln.Close()
		log.Info().Str("signal", sig.String()).Msg("terminated")
		os.Exit(130)
	}()

	fmt.Println(s.tm)
	for {
		line, err := ln.Prompt("tm> ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return
		}
		if err != nil {
			log.Error().Err(err).Msg("prompt")
			return
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		err = s.exec(line)
		switch {
		case errors.Is(err, errQuit):
			return
		case errors.Is(err, machine.ErrNoRule):
			fmt.Fprintln(os.Stderr, err)
			fmt.Fprintln(os.Stderr, "the table is not total; try repair and load")
		case err != nil:
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

// historyWriter is the part of *liner.State that persists prompt history.
type historyWriter interface {
	WriteHistory(w io.Writer) (int, error)
}

// saveHistory writes the prompt history to path, replacing any old file.
func saveHistory(path string, h historyWriter) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := h.WriteHistory(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
