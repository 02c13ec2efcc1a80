package service

import (
	"context"
	"fmt"
	"time"

	"portfolio_engine/internal/app/port"
	"portfolio_engine/internal/domain/entity"
	"portfolio_engine/internal/infrastructure/cache"
	"portfolio_engine/internal/infrastructure/configloader"
	"portfolio_engine/internal/pkg/metrics"
	"portfolio_engine/internal/pkg/utils"

	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Caches groups the response caches of the portfolio service.
type Caches struct {
	Snapshots port.ResponseCache[entity.WalletSnapshot]
	Tokens    port.ResponseCache[entity.TokenMetadata]
	NFTs      port.ResponseCache[entity.NFTMetadata]
}

// NewCaches builds one TTL cache per cached operation.
func NewCaches(ttl time.Duration) Caches {
	return Caches{
		Snapshots: cache.NewResponseCache[entity.WalletSnapshot]("wallet", ttl),
		Tokens:    cache.NewResponseCache[entity.TokenMetadata]("token", ttl),
		NFTs:      cache.NewResponseCache[entity.NFTMetadata]("nft", ttl),
	}
}

// PortfolioServiceImpl implements port.PortfolioService.
type PortfolioServiceImpl struct {
	registry  port.ChainRegistry
	providers port.ProviderSet
	caches    Caches
	resolver  *PriceResolver
	valuator  *NFTValuator
	snapshots port.SnapshotWriter
	logger    port.Logger
	cfg       *configloader.Config
	limit     int
	now       func() time.Time
}

// NewPortfolioService creates a new instance of PortfolioServiceImpl.
// snapshots may be nil, which disables RefreshWalletRecord.
func NewPortfolioService(
	registry port.ChainRegistry,
	providers port.ProviderSet,
	caches Caches,
	snapshots port.SnapshotWriter,
	l port.Logger,
	config *configloader.Config,
) port.PortfolioService {
	if config == nil {
		config = configloader.Default()
	}
	return &PortfolioServiceImpl{
		registry:  registry,
		providers: providers,
		caches:    caches,
		resolver:  NewPriceResolver(PrefixClassifier{Prefix: config.Aggregator.DerivativePrefix}, l),
		valuator:  NewNFTValuator(l, config.Aggregator.MaxConcurrentEnrichment),
		snapshots: snapshots,
		logger:    l,
		cfg:       config,
		limit:     max(config.Aggregator.MaxConcurrentEnrichment, 1),
		now:       time.Now,
	}
}

// GetWalletSnapshot implements port.PortfolioService.
func (s *PortfolioServiceImpl) GetWalletSnapshot(ctx context.Context, address, chainID string) (entity.WalletSnapshot, error) {
	chain, err := s.registry.Describe(chainID)
	if err != nil {
		return entity.WalletSnapshot{}, err
	}
	address, err = utils.CanonicalAddress(chain.Family, address)
	if err != nil {
		return entity.WalletSnapshot{}, err
	}

	key := cache.WalletKey(address, chain.ID)
	if snapshot, ok := s.caches.Snapshots.Get(key); ok {
		s.logger.Debug("Serving wallet snapshot from cache", "address", address, "chain", chain.ID)
		return snapshot, nil
	}

	provider, err := s.providerFor(chain)
	if err != nil {
		return entity.WalletSnapshot{}, err
	}

	s.logger.Debug("Building wallet snapshot", "address", address, "chain", chain.ID, "family", chain.Family)
	var snapshot entity.WalletSnapshot
	switch chain.Family {
	case entity.ChainFamilySolana:
		snapshot, err = s.buildLedgerSnapshot(ctx, provider, chain, address)
	default:
		snapshot, err = s.buildAccountSnapshot(ctx, provider, chain, address)
	}
	if err != nil {
		metrics.SnapshotBuilds.WithLabelValues(chain.ID, metrics.OutcomeError).Inc()
		s.logger.Error("Failed to build wallet snapshot", "address", address, "chain", chain.ID, "error", err)
		return entity.WalletSnapshot{}, err
	}

	metrics.SnapshotBuilds.WithLabelValues(chain.ID, metrics.OutcomeSuccess).Inc()
	s.caches.Snapshots.Set(key, snapshot)
	s.logger.Info("Wallet snapshot built",
		"address", address,
		"chain", chain.ID,
		"assets", len(snapshot.Assets),
		"nfts", len(snapshot.NFTs),
		"total_value_usd", snapshot.TotalValueUSD)
	return snapshot, nil
}

// RefreshWalletRecord implements port.PortfolioService.
func (s *PortfolioServiceImpl) RefreshWalletRecord(ctx context.Context, walletID, address, chainID string) (entity.WalletSnapshot, error) {
	if s.snapshots == nil {
		return entity.WalletSnapshot{}, entity.ErrPersistenceDisabled
	}

	snapshot, err := s.GetWalletSnapshot(ctx, address, chainID)
	if err != nil {
		return entity.WalletSnapshot{}, err
	}

	blob, err := json.Marshal(snapshot)
	if err != nil {
		return entity.WalletSnapshot{}, fmt.Errorf("failed to serialize snapshot for wallet record %s: %w", walletID, err)
	}
	if err := s.snapshots.SaveSnapshot(ctx, walletID, blob); err != nil {
		return entity.WalletSnapshot{}, fmt.Errorf("failed to store snapshot for wallet record %s: %w", walletID, err)
	}

	s.logger.Info("Wallet record snapshot stored", "wallet_id", walletID, "chain", snapshot.ChainID, "bytes", len(blob))
	return snapshot, nil
}

// ListSupportedChains implements port.PortfolioService.
func (s *PortfolioServiceImpl) ListSupportedChains() []entity.ChainSummary {
	return lo.Map(s.registry.ListSupported(), func(c entity.ChainDescriptor, _ int) entity.ChainSummary {
		return c.Summary()
	})
}

func (s *PortfolioServiceImpl) providerFor(chain entity.ChainDescriptor) (port.ChainDataProvider, error) {
	provider, ok := s.providers[chain.Family]
	if !ok || provider == nil {
		return nil, fmt.Errorf("%w: no data provider for %s chains", entity.ErrUnsupportedChain, chain.Family)
	}
	return provider, nil
}

// foundation is the result of the three calls every snapshot depends on.
type foundation struct {
	native entity.RawBalanceRecord
	tokens []entity.RawBalanceRecord
	nfts   []entity.RawNFT
}

// fetchFoundation runs the foundational calls concurrently. The first failure
// cancels the others and is returned as *entity.FoundationalFetchError.
func (s *PortfolioServiceImpl) fetchFoundation(
	ctx context.Context,
	provider port.ChainDataProvider,
	chain entity.ChainDescriptor,
	address string,
) (foundation, error) {
	var f foundation
	fail := func(operation string, err error) error {
		return &entity.FoundationalFetchError{ChainID: chain.ID, Address: address, Operation: operation, Err: err}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		native, err := provider.GetNativeBalance(gctx, chain, address)
		if err != nil {
			return fail("native_balance", err)
		}
		f.native = native
		return nil
	})
	g.Go(func() error {
		tokens, err := provider.GetTokenBalances(gctx, chain, address)
		if err != nil {
			return fail("token_balances", err)
		}
		f.tokens = tokens
		return nil
	})
	g.Go(func() error {
		nfts, err := provider.GetNFTs(gctx, chain, address)
		if err != nil {
			return fail("nfts", err)
		}
		f.nfts = nfts
		return nil
	})

	if err := g.Wait(); err != nil {
		return foundation{}, err
	}
	return f, nil
}

func (s *PortfolioServiceImpl) nativeAsset(chain entity.ChainDescriptor, native entity.RawBalanceRecord, md *entity.MarketData, now time.Time) entity.Asset {
	asset := entity.Asset{
		Type:            entity.AssetTypeNative,
		ContractAddress: chain.NativeAssetAddress,
		Symbol:          chain.NativeSymbol,
		Name:            chain.NativeName,
		Decimals:        chain.NativeDecimals,
		Balance:         utils.FormatTokenAmount(native.RawAmount, chain.NativeDecimals),
		RawBalance:      native.RawAmount,
		MarketData:      md,
		LastUpdated:     now,
	}
	s.applyValue(&asset)
	return asset
}

// applyValue sets ValueUSD from the formatted balance and the asset's price.
func (s *PortfolioServiceImpl) applyValue(asset *entity.Asset) {
	if asset.MarketData == nil {
		return
	}
	value, err := utils.CalculateValueUSD(asset.Balance, asset.MarketData.PriceUSD)
	if err != nil {
		s.logger.Warn("Failed to calculate asset value", "symbol", asset.Symbol, "balance", asset.Balance, "error", err)
		return
	}
	asset.ValueUSD = value
}

// assemble orders assets as native, fungible tokens in provider order, then the NFT aggregate.
func (s *PortfolioServiceImpl) assemble(
	chain entity.ChainDescriptor,
	address string,
	native entity.Asset,
	tokens []entity.Asset,
	nfts []entity.NFTAsset,
	now time.Time,
) entity.WalletSnapshot {
	assets := make([]entity.Asset, 0, len(tokens)+2)
	assets = append(assets, native)
	assets = append(assets, tokens...)
	assets = append(assets, BuildNFTAggregate(nfts, now))

	return entity.WalletSnapshot{
		Address:       address,
		ChainID:       chain.ID,
		ChainName:     chain.Name,
		NativeBalance: native.Balance,
		Assets:        assets,
		NFTs:          nfts,
		TotalValueUSD: lo.SumBy(assets, func(a entity.Asset) float64 { return a.ValueUSD }),
		FetchedAt:     now,
	}
}
