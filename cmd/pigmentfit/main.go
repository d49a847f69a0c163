package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/pigmentfit/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), cli.ShutdownSignals...)
	err := cli.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
