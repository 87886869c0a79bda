// Command dollarwords converts amounts to check-writing words from the shell
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(nil).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
