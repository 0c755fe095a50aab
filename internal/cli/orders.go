package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"
)

// RunOrders lists orders still awaiting sync
func (c *Cli) RunOrders(ctx context.Context) error {
	pending, err := c.orders.PendingOrders(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pending orders: %w", err)
	}

	if len(pending) == 0 {
		fmt.Fprintln(c.out, "No orders awaiting sync.")
		return nil
	}

	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LOCAL ID\tPLATFORM\tRECEIPT\tTOTAL\tCAPTURED\tATTEMPTS")
	for _, order := range pending {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s %d.%02d\t%s\t%d\n",
			order.LocalID, order.Platform, order.ReceiptNumber,
			order.Currency, order.TotalCents/100, order.TotalCents%100,
			order.CreatedAt.Format(time.RFC3339), order.SyncAttempts)
	}
	return w.Flush()
}
