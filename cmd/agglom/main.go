// Command agglom clusters 3-D integer points by greedy single linkage and
// prints the bounded (top-three cluster sizes) and unbounded (coalescing pair)
// answers.
package main

import (
	"context"
	"os"
	"os/signal"
)

var Version = "development"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(Version).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
