package cli

import (
	"context"
	"fmt"
)

// RunStatus prints a one-screen summary of the sync state
func (c *Cli) RunStatus(ctx context.Context) error {
	pending, err := c.queue.Pending(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pending requests: %w", err)
	}
	failed, err := c.queue.Failed(ctx)
	if err != nil {
		return fmt.Errorf("failed to list failed requests: %w", err)
	}
	pendingOrders, err := c.orders.PendingOrders(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pending orders: %w", err)
	}
	frozenOrders, err := c.orders.FailedOrders(ctx)
	if err != nil {
		return fmt.Errorf("failed to list frozen orders: %w", err)
	}

	fmt.Fprintf(c.out, "Queue:\n")
	fmt.Fprintf(c.out, "  pending requests:  %d\n", len(pending))
	fmt.Fprintf(c.out, "  failed requests:   %d\n", len(failed))
	fmt.Fprintf(c.out, "Orders:\n")
	fmt.Fprintf(c.out, "  awaiting sync:     %d\n", len(pendingOrders))
	fmt.Fprintf(c.out, "  frozen:            %d\n", len(frozenOrders))

	if len(failed) > 0 || len(frozenOrders) > 0 {
		fmt.Fprintf(c.out, "\nRun 'possync failed' for details.\n")
	}
	return nil
}

// RunSweep drains the queue once and reports the outcome
func (c *Cli) RunSweep(ctx context.Context) error {
	report, err := c.queue.Process(ctx)
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}

	fmt.Fprintf(c.out, "Sweep finished: %d attempted, %d succeeded, %d rescheduled, %d failed\n",
		report.Attempted, report.Succeeded, report.Rescheduled, report.Failed)
	return nil
}
