package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/retailpoint/possync/internal/sync"
)

// RunAgent runs the background sync agent until SIGINT or SIGTERM. The
// monitor pauses and resumes the scheduler as platform connectivity
// comes and goes.
func (c *Cli) RunAgent(ctx context.Context, manager *sync.Manager, monitor *sync.Monitor) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	manager.Start(ctx)
	defer manager.Close()

	if monitor != nil {
		go monitor.Run(ctx)
	}

	fmt.Fprintln(c.out, "Sync agent running. Press Ctrl+C to stop.")
	<-ctx.Done()
	fmt.Fprintln(c.out, "Shutting down.")
	return nil
}
