// Package cli implements the operator commands of the possync terminal
// agent.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/retailpoint/possync/internal/sync"
	"github.com/retailpoint/possync/internal/token"
)

// Cli bundles the composed services the commands operate on
type Cli struct {
	queue  *sync.Queue
	orders *sync.Orders
	tokens *token.Service
	out    io.Writer
}

// New creates the command surface. Output goes to out, normally stdout.
func New(queue *sync.Queue, orders *sync.Orders, tokens *token.Service, out io.Writer) *Cli {
	return &Cli{
		queue:  queue,
		orders: orders,
		tokens: tokens,
		out:    out,
	}
}

// ReadPassphrase reads the device passphrase, preferring the
// POSSYNC_PASSPHRASE environment variable over an interactive prompt
func ReadPassphrase() (string, error) {
	if env := os.Getenv("POSSYNC_PASSPHRASE"); env != "" {
		return env, nil
	}

	fmt.Fprint(os.Stderr, "Device passphrase: ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read passphrase: %w", err)
	}

	passphrase := strings.TrimSpace(string(raw))
	if passphrase == "" {
		return "", fmt.Errorf("passphrase must not be empty")
	}
	return passphrase, nil
}

// PrintUsage writes the command summary to stderr
func PrintUsage() {
	fmt.Fprintf(os.Stderr, `possync - offline-resilient POS synchronization agent

Usage:
  possync [flags] <command> [args]

Commands:
  status              Show queue and order sync state
  sweep               Drain the queue once, now
  queue               List pending queued requests
  orders              List orders awaiting sync
  failed              List terminally failed requests and frozen orders
  retry <request-id>  Re-arm a failed queued request
  retry-order <id>    Re-arm a frozen order
  login               Store platform credentials on this terminal
  logout              Remove stored platform credentials
  run                 Run the background sync agent until interrupted
  version             Show version information

Flags:
`)
	fmt.Fprintf(os.Stderr, "  (see possync -help)\n")
}
