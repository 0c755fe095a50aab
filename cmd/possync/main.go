package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/retailpoint/possync/internal/cli"
	"github.com/retailpoint/possync/internal/crypto"
	"github.com/retailpoint/possync/internal/platform"
	"github.com/retailpoint/possync/internal/storage/boltdb"
	"github.com/retailpoint/possync/internal/storage/sqlite"
	"github.com/retailpoint/possync/internal/sync"
	"github.com/retailpoint/possync/internal/token"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	dbPath := flag.String("db", "possync.db", "Path to the local queue database")
	auditPath := flag.String("audit-db", "possync-audit.db", "Path to the delivery audit database")
	platformURL := flag.String("platform-url", "http://localhost:8080", "Commerce platform base URL")
	platformName := flag.String("platform", "shopify", "Platform name credentials belong to")
	clientID := flag.String("client-id", "", "OAuth client ID for token refresh")
	clientSecret := flag.String("client-secret", "", "OAuth client secret for token refresh")
	probeURL := flag.String("probe-url", "", "Connectivity probe URL (defaults to the platform URL)")
	sweepInterval := flag.Duration("sweep-interval", 30*time.Second, "Base interval between queue sweeps")
	maxRetries := flag.Int("max-retries", 3, "Delivery attempts per order before it freezes")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := context.Background()

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	auditStorage, err := sqlite.New(ctx, *auditPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open audit database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := auditStorage.Close(); err != nil {
			logger.Error("failed to close audit database", "error", err)
		}
	}()

	deviceKey, err := deriveDeviceKey(ctx, boltStorage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to derive device key: %v\n", err)
		os.Exit(1)
	}

	encryptedTokens, err := token.NewEncryptedStorage(boltStorage, deviceKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up token encryption: %v\n", err)
		os.Exit(1)
	}

	tokens := token.NewService(encryptedTokens, logger)
	client := platform.NewClient(*platformURL)
	tokens.RegisterProvider(*platformName,
		platform.NewOAuthProvider(client, *platformName, *clientID, *clientSecret))

	cfg := sync.Config{
		MaxSyncRetries: *maxRetries,
		SweepInterval:  *sweepInterval,
	}
	queue := sync.NewQueue(boltStorage, auditStorage, cfg, logger)
	orders := sync.NewOrders(boltStorage, queue, client, tokens, cfg, logger)
	queue.RegisterHandler(sync.TargetOrders, orders)

	commands := cli.New(queue, orders, tokens, os.Stdout)

	switch command {
	case "status":
		exitOn(commands.RunStatus(ctx))
	case "sweep":
		exitOn(commands.RunSweep(ctx))
	case "queue":
		exitOn(commands.RunQueue(ctx))
	case "orders":
		exitOn(commands.RunOrders(ctx))
	case "failed":
		exitOn(commands.RunFailed(ctx))
	case "retry":
		exitOn(commands.RunRetry(ctx, args[1:]))
	case "retry-order":
		exitOn(commands.RunRetryOrder(ctx, args[1:]))
	case "login":
		exitOn(commands.RunLogin(ctx, *platformName))
	case "logout":
		exitOn(commands.RunLogout(ctx, *platformName))
	case "run":
		scheduler := sync.NewScheduler(queue, cfg, logger)
		manager := sync.NewManager(scheduler, cfg, logger)
		signals := sync.NewBroadcaster()
		manager.WatchConnectivity(signals)
		manager.WatchLifecycle(signals)

		probe := *probeURL
		if probe == "" {
			probe = *platformURL
		}
		monitor := sync.NewMonitor(probe, sync.DefaultProbeInterval, signals, logger)

		exitOn(commands.RunAgent(ctx, manager, monitor))
	case "version":
		printVersion()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		cli.PrintUsage()
		os.Exit(1)
	}
}

// deriveDeviceKey turns the operator passphrase into the token
// encryption key. The salt is generated once per device and kept in the
// local database; the hostname binds the key to this terminal.
func deriveDeviceKey(ctx context.Context, store *boltdb.Storage) ([]byte, error) {
	passphrase, err := cli.ReadPassphrase()
	if err != nil {
		return nil, err
	}

	salt, err := store.DeviceSalt(ctx)
	if err != nil {
		return nil, err
	}
	if salt == nil {
		salt, err = crypto.GenerateSalt()
		if err != nil {
			return nil, err
		}
		if err := store.SaveDeviceSalt(ctx, salt); err != nil {
			return nil, err
		}
	}

	hostname, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("failed to read hostname: %w", err)
	}

	return crypto.DeriveDeviceKey(passphrase, hostname, salt)
}

func exitOn(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("possync\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
