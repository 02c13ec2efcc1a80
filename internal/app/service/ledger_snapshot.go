package service

import (
	"context"
	"time"

	"portfolio_engine/internal/app/port"
	"portfolio_engine/internal/domain/entity"
	"portfolio_engine/internal/pkg/utils"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// buildLedgerSnapshot aggregates a Solana wallet. Base tokens are priced
// before derivatives so derivatives can reuse their base price. A token
// without a price keeps nil market data.
func (s *PortfolioServiceImpl) buildLedgerSnapshot(
	ctx context.Context,
	provider port.ChainDataProvider,
	chain entity.ChainDescriptor,
	address string,
) (entity.WalletSnapshot, error) {
	f, err := s.fetchFoundation(ctx, provider, chain, address)
	if err != nil {
		return entity.WalletSnapshot{}, err
	}

	now := s.now().UTC()
	scope := NewPriceScope()
	collectionAddresses := lo.Map(f.nfts, func(n entity.RawNFT, _ int) string { return n.ContractAddress })

	var (
		nativeMD    entity.MarketData
		prices      = make([]*entity.MarketData, len(f.tokens))
		collections map[string]entity.CollectionStats
	)

	var g errgroup.Group
	g.Go(func() error {
		nativeMD = s.resolveLedgerNativePrice(ctx, chain, now)
		return nil
	})
	g.Go(func() error {
		s.resolveLedgerTokenPrices(ctx, provider, chain, f.tokens, scope, prices)
		return nil
	})
	g.Go(func() error {
		collections = s.valuator.Valuate(ctx, provider, chain, collectionAddresses)
		return nil
	})
	_ = g.Wait()

	native := s.nativeAsset(chain, f.native, &nativeMD, now)

	tokens := make([]entity.Asset, 0, len(f.tokens))
	for i, token := range f.tokens {
		asset := entity.Asset{
			Type:            entity.AssetTypeFungible,
			Standard:        entity.StandardSPL,
			ContractAddress: token.Address,
			Symbol:          token.Symbol,
			Name:            token.Name,
			Decimals:        token.Decimals,
			Balance:         utils.FormatTokenAmount(token.RawAmount, token.Decimals),
			RawBalance:      token.RawAmount,
			MarketData:      prices[i],
			LastUpdated:     now,
		}
		s.applyValue(&asset)
		tokens = append(tokens, asset)
	}

	nfts := AttachCollectionStats(f.nfts, collections, address, chain)
	return s.assemble(chain, address, native, tokens, nfts, now), nil
}

// resolveLedgerTokenPrices fills out[i] for every token in two phases:
// non-derivative symbols first, then derivatives.
func (s *PortfolioServiceImpl) resolveLedgerTokenPrices(
	ctx context.Context,
	provider port.ChainDataProvider,
	chain entity.ChainDescriptor,
	tokens []entity.RawBalanceRecord,
	scope *PriceScope,
	out []*entity.MarketData,
) {
	indexes := lo.Range(len(tokens))
	isDerivative := func(i int, _ int) bool { return s.resolver.classifier.IsDerivative(tokens[i].Symbol) }
	phases := [][]int{
		lo.Reject(indexes, isDerivative),
		lo.Filter(indexes, isDerivative),
	}

	for _, phase := range phases {
		var g errgroup.Group
		g.SetLimit(s.limit)
		for _, i := range phase {
			i := i
			g.Go(func() error {
				out[i] = s.resolver.ResolvePrice(ctx, provider, chain, tokens[i].Address, tokens[i].Symbol, scope)
				return nil
			})
		}
		_ = g.Wait()
	}
}

// resolveLedgerNativePrice prices the native coin through the configured
// proxy tokens in order, then falls back to the configured constant.
func (s *PortfolioServiceImpl) resolveLedgerNativePrice(ctx context.Context, chain entity.ChainDescriptor, now time.Time) entity.MarketData {
	for _, proxy := range s.cfg.Aggregator.LedgerNativePriceProxies {
		proxyChain, err := s.registry.Describe(proxy.Chain)
		if err != nil {
			s.logger.Warn("Skipping native price proxy on unknown chain", "proxy_chain", proxy.Chain, "error", err)
			continue
		}
		proxyProvider, err := s.providerFor(proxyChain)
		if err != nil {
			s.logger.Warn("Skipping native price proxy without provider", "proxy_chain", proxy.Chain, "error", err)
			continue
		}

		md, ok := isolate(ctx, s.logger, "native_price_proxy", entity.MarketData{},
			func(ctx context.Context) (entity.MarketData, error) {
				return s.resolver.Fetch(ctx, proxyProvider, proxyChain, proxy.Address)
			}, "chain", chain.ID, "proxy_chain", proxyChain.ID, "proxy_token", proxy.Address)
		if ok && md.PriceUSD > 0 {
			s.logger.Debug("Native price resolved through proxy", "chain", chain.ID, "proxy_chain", proxyChain.ID, "price_usd", md.PriceUSD)
			return md
		}
	}

	fallback := s.cfg.Aggregator.LedgerFallbackNativePriceUSD
	s.logger.Warn("All native price proxies failed, using fallback price", "chain", chain.ID, "price_usd", fallback)
	return entity.MarketData{PriceUSD: fallback, LastUpdated: now}
}
