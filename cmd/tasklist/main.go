package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/tasklist/internal/cli"
)

func main() {
	// Cancelled on SIGINT/SIGTERM; pending changes are still flushed on the way out
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)

	code := cli.Execute(ctx, os.Args[1:])
	cancel()
	os.Exit(code)
}
