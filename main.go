package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/model"
	"github.com/sheikhrachel/go-gol/utils"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	config, err := utils.ParseArgs("go-gol", args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		return fail(stderr, err)
	}

	// Speed is validated before anything touches the pattern file
	speed, err := model.ParseSpeed(config.Speed)
	if err != nil {
		return fail(stderr, err)
	}

	grid, err := model.Parser{Strict: config.Strict}.ParseFile(config.File)
	if err != nil {
		return fail(stderr, err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = runGame(ctx, config, speed, grid, stdout); err != nil {
		return fail(stderr, err)
	}
	return exitOK
}

func fail(stderr io.Writer, err error) int {
	fmt.Fprintln(stderr, "error:", err)
	if errors.Is(err, utils.ErrUsage) || errors.Is(err, model.ErrInvalidSpeed) {
		return exitUsage
	}
	return exitError
}
