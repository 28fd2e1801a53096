package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(Version).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "taskgrid failed: %v\n", err)
		stop()
		os.Exit(1)
	}
}
