// Package main is the entry point for the tern editor.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/ecrosby/tern/internal/config"
	"github.com/ecrosby/tern/internal/editor"
	"github.com/ecrosby/tern/internal/terminal"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to config file")
	logPath := flag.String("log", "", "log to this file (overrides config)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s %s\n", editor.Name, version)
		return 0
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: stdout is not a terminal")
		return 1
	}

	path := *configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			path = ""
		}
	}
	cfg := config.Default()
	if path != "" {
		var cfgErr error
		if cfg, cfgErr = config.Load(path); cfgErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", cfgErr)
		}
	}
	if *logPath != "" {
		cfg.LogFile = *logPath
	}

	logger := editor.NullLogger
	if cfg.LogFile != "" {
		fileLogger, err := editor.NewFileLogger(cfg.LogFile, editor.ParseLogLevel(cfg.LogLevel))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			logger = fileLogger
			defer logger.Close()
		}
	}

	t, err := terminal.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := t.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}
	// The terminal must be restored on every exit path, panics included,
	// or the shell is left in raw mode.
	defer func() {
		if r := recover(); r != nil {
			t.Fini()
			panic(r)
		}
		t.Fini()
	}()

	e := editor.New(t, cfg, logger)
	if fileName := flag.Arg(0); fileName != "" {
		e.LoadFile(fileName)
	}
	e.Run()
	return 0
}
