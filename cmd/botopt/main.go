// botopt checks chat command definitions against sample messages.
//
//	botopt check --definitions commands.yaml [--env env.yaml] '!ban <@123456789012345678> spam'
//	botopt repl --definitions commands.hcl
//
// check parses every message given on the command line and exits with status 1 when any of them
// fails. repl reads messages from stdin, one per line.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/napalu/botopt"
	"github.com/napalu/botopt/config"
	"github.com/napalu/botopt/resolve"
)

// exitError carries a process exit status without a message of its own
type exitError int

func (e exitError) Error() string {
	return fmt.Sprintf("exit status %d", int(e))
}

func (e exitError) ExitCode() int {
	return int(e)
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		var coder interface{ ExitCode() int }
		if errors.As(err, &coder) {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	definitions string
	env         string
	logLevel    string
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printHelp(stderr)
		return exitError(2)
	}

	subcommand, args := args[0], args[1:]
	switch subcommand {
	case "check", "repl":
	case "help", "-h", "--help":
		printHelp(stdout)
		return nil
	default:
		printHelp(stderr)
		return fmt.Errorf("unknown subcommand %q", subcommand)
	}

	var opts options
	flagSet := pflag.NewFlagSet("botopt "+subcommand, pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&opts.definitions, "definitions", "d", "", "command definition file (.yaml, .json, .jsonc or .hcl)")
	flagSet.StringVarP(&opts.env, "env", "e", "", "YAML file of users, channels and roles used to resolve mentions")
	flagSet.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	logger, err := newLogger(stderr, opts.logLevel)
	if err != nil {
		return err
	}

	if opts.definitions == "" {
		return errors.New("--definitions is required")
	}

	parser, err := loadParser(logger, opts.definitions)
	if err != nil {
		return err
	}

	var env resolve.Environment
	if opts.env != "" {
		mapEnv, err := loadEnvironment(opts.env)
		if err != nil {
			return err
		}
		logger.Debug("environment loaded", "path", opts.env)
		env = mapEnv
	}

	if subcommand == "check" {
		return check(ctx, logger, parser, env, flagSet.Args(), stdout)
	}

	return repl(ctx, logger, parser, env, stdin, stdout)
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}

func loadParser(logger *slog.Logger, path string) (*botopt.Parser, error) {
	file, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	parser, err := botopt.NewParserWith(botopt.WithDefinitions(file))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Info("definitions loaded",
		"path", path,
		"commands", len(parser.Commands()),
		"language", parser.Language().String(),
		"quote_style", parser.QuoteStyle().String())

	return parser, nil
}

func check(ctx context.Context, logger *slog.Logger, parser *botopt.Parser, env resolve.Environment, messages []string, stdout io.Writer) error {
	if len(messages) == 0 {
		return errors.New("no messages to check")
	}

	failed := 0
	for _, msg := range messages {
		if !evaluate(ctx, logger, parser, env, msg, stdout) {
			failed++
		}
	}
	if failed > 0 {
		logger.Warn("messages failed to parse", "failed", failed, "total", len(messages))
		return exitError(1)
	}

	return nil
}

func repl(ctx context.Context, logger *slog.Logger, parser *botopt.Parser, env resolve.Environment, stdin io.Reader, stdout io.Writer) error {
	interactive := false
	if f, ok := stdin.(*os.File); ok {
		interactive = term.IsTerminal(int(f.Fd()))
	}

	scanner := bufio.NewScanner(stdin)
	for {
		if interactive {
			fmt.Fprint(stdout, "> ")
		}
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "help":
			parser.PrintUsage(stdout)
			continue
		}
		evaluate(ctx, logger, parser, env, line, stdout)

		if err := ctx.Err(); err != nil {
			return err
		}
	}

	return scanner.Err()
}

// evaluate parses one message and prints the outcome; it reports whether parsing succeeded
func evaluate(ctx context.Context, logger *slog.Logger, parser *botopt.Parser, env resolve.Environment, msg string, stdout io.Writer) bool {
	inv, err := parser.Parse(ctx, msg, env)
	if err != nil {
		logger.Debug("parse failed", "message", msg, "error", err)
		fmt.Fprintf(stdout, "%s\n  error: %v\n", msg, err)
		if cmd, ok := parser.Match(msg); ok {
			fmt.Fprintf(stdout, "  %s\n", parser.Usage(cmd))
		}
		return false
	}

	fmt.Fprintf(stdout, "%s\n  command: %s\n", msg, inv.Command.Name)
	for _, name := range inv.Arguments.Names() {
		v, _ := inv.Arguments.Get(name)
		fmt.Fprintf(stdout, "  %s = %v (%s)\n", name, formatValue(v), inv.Arguments.Source(name))
	}

	return true
}

func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "<not found>"
	case string:
		return fmt.Sprintf("%q", t)
	default:
		return fmt.Sprint(t)
	}
}

func printHelp(w io.Writer) {
	fmt.Fprint(w, `botopt checks chat command definitions against sample messages.

Usage:
  botopt check --definitions FILE [--env FILE] MESSAGE...
  botopt repl --definitions FILE [--env FILE]

Flags:
  -d, --definitions FILE   command definition file (.yaml, .json, .jsonc or .hcl)
  -e, --env FILE           YAML file of users, channels and roles used to resolve mentions
      --log-level LEVEL    log level (debug, info, warn, error)
`)
}
