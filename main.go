package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jcorbin/brackish/internal/logio"
)

func main() {
	ctx := context.Background()

	var (
		configPath string
		logLevel   string
		logFormat  string
		printStack bool
		depthLimit int
	)
	flag.StringVar(&configPath, "config", "", "load settings from a YAML file")
	flag.StringVar(&logLevel, "log-level", "", "diagnostic level: trace, debug, info or error")
	flag.StringVar(&logFormat, "log-format", "", "diagnostic encoding: auto, text or json")
	flag.BoolVar(&printStack, "print", true, "print the value stack after each evaluated line")
	flag.IntVar(&depthLimit, "call-depth", 0, "limit macro call nesting (at least 1)")
	flag.Parse()

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
		os.Exit(2)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.LogLevel = logLevel
		case "log-format":
			cfg.LogFormat = logFormat
		case "print":
			cfg.Print = printStack
		case "call-depth":
			cfg.CallDepthLimit = depthLimit
		}
	})
	cfg.Prelude = append(cfg.Prelude, flag.Args()...)
	if err := cfg.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
		os.Exit(2)
	}

	log := logio.New(os.Stderr, cfg.level(), cfg.format())
	log.Log(logio.LevelTrace, "configured diagnostics",
		"stderr_isatty", logio.IsTerminal(os.Stderr),
		"level", cfg.LogLevel,
		"format", cfg.LogFormat)

	src, err := openSource(cfg, os.Stdin)
	if err != nil {
		log.ErrorIf(err)
		os.Exit(log.ExitCode())
	}

	opts := []Option{
		WithSink(log),
		WithCallDepthLimit(cfg.CallDepthLimit),
	}
	if cfg.Print {
		opts = append(opts, WithOutput(os.Stdout))
	}

	s := session{
		in:             New(opts...),
		src:            src,
		log:            log,
		out:            os.Stdout,
		prompt:         cfg.Prompt,
		continuePrompt: cfg.ContinuePrompt,
	}
	log.Log(logio.LevelTrace, "running interpreter")
	log.ErrorIf(s.run(ctx))
	src.Close()
	os.Exit(log.ExitCode())
}
