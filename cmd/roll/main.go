// Package main is the entry point for the roll dice utility.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/roll/cmd/roll/commands"
	"github.com/cory-johannsen/roll/internal/config"
	"github.com/cory-johannsen/roll/internal/dice"
	"github.com/cory-johannsen/roll/internal/observability"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer logger.Sync()

	// One session id per invocation so rolls in the logs correlate.
	logger = logger.With(zap.String("session_id", uuid.New().String()))

	roller := dice.NewLoggedRoller(dice.NewCryptoSource(), logger)

	cli := commands.New(roller)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	return 0
}
