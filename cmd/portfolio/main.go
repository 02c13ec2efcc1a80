package main

import (
	"context"
	"fmt"
	"os"

	"portfolio_engine/internal/app/port"
	"portfolio_engine/internal/app/service"
	"portfolio_engine/internal/client"
	"portfolio_engine/internal/domain/entity"
	"portfolio_engine/internal/infrastructure/configloader"
	nodeclient "portfolio_engine/internal/infrastructure/network/client"
	networkdefinition "portfolio_engine/internal/infrastructure/network/definition"
	"portfolio_engine/internal/infrastructure/storage/postgres"
	"portfolio_engine/internal/infrastructure/tokenloader"
	"portfolio_engine/internal/infrastructure/walletloader"
	applog "portfolio_engine/internal/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logrus.Fatalf("portfolio: %v", err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "portfolio",
		Usage: "Multi-chain wallet portfolio aggregation engine",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config/config.yml",
				Usage:   "Path to the YAML configuration file",
				EnvVars: []string{"CONFIG_PATH"},
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			snapshotCommand(),
			chainsCommand(),
			scanCommand(),
		},
	}
}

// engine holds the wired components shared by every command.
type engine struct {
	cfg       *configloader.Config
	zap       *zap.Logger
	logger    port.Logger
	registry  *networkdefinition.ChainRegistry
	portfolio port.PortfolioService
	snapshots *postgres.SnapshotRepository
	bans      port.BannedTokenRegistry
	nodes     port.NativeBalanceClientProvider
	pool      *pgxpool.Pool
}

// bootstrap loads the configuration and wires the engine. withDatabase opens
// the snapshot store when a database URL is configured.
func bootstrap(c *cli.Context, withDatabase bool) (*engine, error) {
	cfg, err := configloader.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	zapLogger, err := applog.Init(cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		return nil, err
	}
	logger := applog.NewSlogAdapter()

	registry := networkdefinition.NewChainRegistry(cfg.RPC.Endpoints)

	moralis := client.NewMoralisClient(client.MoralisConfig{
		EVMBaseURL:         cfg.Provider.EVMBaseURL,
		SolanaBaseURL:      cfg.Provider.SolanaBaseURL,
		APIKey:             cfg.Provider.APIKey,
		Timeout:            cfg.ProviderTimeout(),
		RateLimitPerSecond: cfg.Provider.RateLimitPerSecond,
		BurstLimit:         cfg.Provider.BurstLimit,
		MaxRetries:         cfg.Provider.MaxRetries,
		RetryBackoff:       cfg.RetryDelay(),
	}, zapLogger)

	var nodes port.NativeBalanceClientProvider
	if cfg.RPC.Enabled {
		nodes = nodeclient.NewEVMClientProvider(cfg, logger.With("component", "rpc"))
		zapLogger.Info("EVM native balances read from JSON-RPC nodes")
	}

	providers := port.ProviderSet{
		entity.ChainFamilyEVM:    client.NewEVMProvider(moralis, nodes, cfg.Provider.MaxTokensPerMetadataRequest, zapLogger),
		entity.ChainFamilySolana: client.NewSolanaProvider(moralis, zapLogger),
	}

	e := &engine{
		cfg:      cfg,
		zap:      zapLogger,
		logger:   logger,
		registry: registry,
		nodes:    nodes,
		bans:     tokenloader.NewBannedTokenLoader(cfg.TokenBan.File, logger.With("component", "token_ban")),
	}

	var writer port.SnapshotWriter
	if withDatabase && cfg.Database.URL != "" {
		pool, err := postgres.Connect(c.Context, cfg.Database.URL, cfg.Database.MaxConns)
		if err != nil {
			return nil, err
		}
		if cfg.Database.MigrateOnStart {
			if err := postgres.RunMigrations(c.Context, pool, postgres.Migrations()); err != nil {
				pool.Close()
				return nil, err
			}
		}
		e.pool = pool
		e.snapshots = postgres.NewSnapshotRepository(pool)
		writer = e.snapshots
		zapLogger.Info("Snapshot persistence enabled")
	} else {
		zapLogger.Info("Snapshot persistence disabled")
	}

	e.portfolio = service.NewPortfolioService(
		registry,
		providers,
		service.NewCaches(cfg.CacheTTL()),
		writer,
		logger.With("component", "portfolio"),
		cfg,
	)
	return e, nil
}

// snapshotReader returns the store as a port.SnapshotReader, or nil when persistence is off.
func (e *engine) snapshotReader() port.SnapshotReader {
	if e.snapshots == nil {
		return nil
	}
	return e.snapshots
}

func (e *engine) Close() {
	if e.nodes != nil {
		e.nodes.Close()
	}
	if e.pool != nil {
		e.pool.Close()
	}
	_ = e.zap.Sync()
}

func (e *engine) scanner() port.WalletScanner {
	return service.NewWalletScanner(
		e.portfolio,
		walletloader.NewWalletFileLoader(e.cfg.Files.Wallets, e.logger.With("component", "wallets")),
		e.registry,
		e.logger.With("component", "scanner"),
		e.cfg.Aggregator.ScanConcurrency,
	)
}

// withTimeout bounds one command run by the aggregator request timeout.
func (e *engine) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, e.cfg.RequestTimeout())
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
