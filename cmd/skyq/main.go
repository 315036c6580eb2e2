// Command skyq computes properties of celestial objects: coordinates, phase,
// magnitude, distance, angular size, rise and set.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/litescript/skyq/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := cli.Run(ctx, os.Args[1:], os.Stdout, os.Stderr, cli.Options{})
	cancel()
	os.Exit(code)
}
