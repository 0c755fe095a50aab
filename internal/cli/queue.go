package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"
)

// RunQueue lists requests waiting for delivery
func (c *Cli) RunQueue(ctx context.Context) error {
	pending, err := c.queue.Pending(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pending requests: %w", err)
	}

	if len(pending) == 0 {
		fmt.Fprintln(c.out, "Queue is empty.")
		return nil
	}

	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPLATFORM\tTARGET\tATTEMPTS\tNEXT RETRY\tLAST ERROR")
	for _, req := range pending {
		next := "now"
		if req.NextRetryAt != nil {
			next = req.NextRetryAt.Format(time.RFC3339)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
			req.ID, req.Platform, req.Target, req.AttemptCount, next, truncate(req.LastError, 40))
	}
	return w.Flush()
}

// RunFailed lists terminally failed requests and frozen orders
func (c *Cli) RunFailed(ctx context.Context) error {
	failed, err := c.queue.Failed(ctx)
	if err != nil {
		return fmt.Errorf("failed to list failed requests: %w", err)
	}
	frozen, err := c.orders.FailedOrders(ctx)
	if err != nil {
		return fmt.Errorf("failed to list frozen orders: %w", err)
	}

	if len(failed) == 0 && len(frozen) == 0 {
		fmt.Fprintln(c.out, "Nothing failed. All clear.")
		return nil
	}

	if len(failed) > 0 {
		fmt.Fprintln(c.out, "Failed requests:")
		w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tPLATFORM\tTARGET\tATTEMPTS\tLAST ERROR")
		for _, req := range failed {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
				req.ID, req.Platform, req.Target, req.AttemptCount, truncate(req.LastError, 60))
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	if len(frozen) > 0 {
		fmt.Fprintln(c.out, "Frozen orders:")
		w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "LOCAL ID\tPLATFORM\tRECEIPT\tATTEMPTS\tLAST ERROR")
		for _, order := range frozen {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
				order.LocalID, order.Platform, order.ReceiptNumber,
				order.SyncAttempts, truncate(order.LastSyncError, 60))
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	return nil
}

// RunRetry re-arms a terminally failed queued request
func (c *Cli) RunRetry(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: possync retry <request-id>")
	}
	if err := c.queue.Retry(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Request %s re-armed. It will be attempted on the next sweep.\n", args[0])
	return nil
}

// RunRetryOrder re-arms a frozen order
func (c *Cli) RunRetryOrder(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: possync retry-order <local-id>")
	}
	if err := c.orders.RetryOrder(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Order %s re-armed and queued for delivery.\n", args[0])
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
