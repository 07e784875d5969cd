// Package config provides CLI configuration and application logic for maventest.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/helsinki-cs/maventest/internal/app"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// CLI is the root configuration. Every command-line argument is collected
// into Args and otherwise ignored.
type CLI struct {
	LogLevel string    `kong:"env='MAVENTEST_LOG_LEVEL',help='Log level (debug, info, warn, error)',default='warn'"`
	Args     []string  `kong:"arg,optional,help='Ignored'"`
	Stdout   io.Writer `kong:"-"`
}

// Run asks the generated injector for a Foo and calls DoStuff.
func (c *CLI) Run() error {
	setupLogger(c.LogLevel)

	slog.Debug("Starting maventest", "version", version, "commit", commit, "date", date, "args", c.Args)

	foo := app.InitializeFoo(c.Stdout)
	foo.DoStuff()

	return nil
}

// Run parses args and runs the application, printing to stdout.
func Run(args []string, stdout io.Writer) error {
	cli := CLI{Stdout: stdout}
	parser, err := kong.New(&cli,
		kong.Name("maventest"),
		kong.Description("Sample project that prints a greeting from an injected worker"),
		kong.Writers(stdout, os.Stderr),
	)
	if err != nil {
		return fmt.Errorf("failed to build parser: %w", err)
	}

	// "--" makes every user argument positional, flag-shaped ones included.
	kongCtx, err := parser.Parse(append([]string{"--"}, args...))
	if err != nil {
		return fmt.Errorf("failed to parse configuration: %w", err)
	}

	return kongCtx.Run()
}

func setupLogger(level string) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(level),
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
