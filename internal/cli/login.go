package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/retailpoint/possync/internal/models"
)

// RunLogin stores platform credentials on this terminal. The access and
// refresh tokens come from the platform's onboarding flow; from here on
// the agent refreshes them itself.
func (c *Cli) RunLogin(ctx context.Context, platformName string) error {
	if platformName == "" {
		return fmt.Errorf("usage: possync -platform <name> login")
	}

	access, err := promptSecret("Access token: ")
	if err != nil {
		return err
	}
	if access == "" {
		return fmt.Errorf("access token must not be empty")
	}

	refresh, err := promptSecret("Refresh token (empty to skip): ")
	if err != nil {
		return err
	}

	if err := c.tokens.StoreToken(ctx, &models.TokenRecord{
		Platform: platformName,
		Type:     models.TokenTypeAccess,
		Value:    access,
	}); err != nil {
		return err
	}
	if refresh != "" {
		if err := c.tokens.StoreToken(ctx, &models.TokenRecord{
			Platform: platformName,
			Type:     models.TokenTypeRefresh,
			Value:    refresh,
		}); err != nil {
			return err
		}
	}

	fmt.Fprintf(c.out, "Credentials for %s stored.\n", platformName)
	return nil
}

// RunLogout removes all stored credentials for the platform
func (c *Cli) RunLogout(ctx context.Context, platformName string) error {
	if platformName == "" {
		return fmt.Errorf("usage: possync -platform <name> logout")
	}
	if err := c.tokens.ClearPlatformTokens(ctx, platformName); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Credentials for %s removed.\n", platformName)
	return nil
}

// promptSecret reads a secret without echo when stdin is a terminal,
// falling back to a plain line read otherwise (pipes, scripts)
func promptSecret(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	if term.IsTerminal(int(syscall.Stdin)) {
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return strings.TrimSpace(string(raw)), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
