package service

import (
	"context"
	"strings"

	"portfolio_engine/internal/app/port"
	"portfolio_engine/internal/domain/entity"
	"portfolio_engine/internal/pkg/utils"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// buildAccountSnapshot aggregates an EVM wallet. Native and token prices
// degrade to zero market data, metadata falls back to the balance record.
func (s *PortfolioServiceImpl) buildAccountSnapshot(
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
	tokenAddresses := lo.Map(f.tokens, func(t entity.RawBalanceRecord, _ int) string { return t.Address })
	collectionAddresses := lo.Map(f.nfts, func(n entity.RawNFT, _ int) string { return n.ContractAddress })

	var (
		nativeMD    entity.MarketData
		metadata    map[string]entity.TokenMetadata
		prices      = make([]entity.MarketData, len(f.tokens))
		collections map[string]entity.CollectionStats
	)

	var g errgroup.Group
	g.SetLimit(s.limit + 2)

	g.Go(func() error {
		md, _ := isolate(ctx, s.logger, "native_price", entity.MarketData{LastUpdated: now},
			func(ctx context.Context) (entity.MarketData, error) {
				return s.resolver.Fetch(ctx, provider, chain, chain.NativeAssetAddress)
			}, "chain", chain.ID, "token", chain.NativeAssetAddress)
		nativeMD = md
		return nil
	})

	if len(tokenAddresses) > 0 {
		g.Go(func() error {
			metas, _ := isolate(ctx, s.logger, "token_metadata", []entity.TokenMetadata(nil),
				func(ctx context.Context) ([]entity.TokenMetadata, error) {
					return provider.GetTokenMetadata(ctx, chain, tokenAddresses)
				}, "chain", chain.ID, "tokens", len(tokenAddresses))
			metadata = lo.KeyBy(metas, func(m entity.TokenMetadata) string { return strings.ToLower(m.Address) })
			return nil
		})
	}

	g.Go(func() error {
		collections = s.valuator.Valuate(ctx, provider, chain, collectionAddresses)
		return nil
	})

	for i, token := range f.tokens {
		i, token := i, token
		g.Go(func() error {
			prices[i], _ = isolate(ctx, s.logger, "token_price", entity.MarketData{LastUpdated: now},
				func(ctx context.Context) (entity.MarketData, error) {
					return s.resolver.Fetch(ctx, provider, chain, token.Address)
				}, "chain", chain.ID, "token", token.Address, "symbol", token.Symbol)
			return nil
		})
	}

	_ = g.Wait()

	native := s.nativeAsset(chain, f.native, &nativeMD, now)

	tokens := make([]entity.Asset, 0, len(f.tokens))
	for i, token := range f.tokens {
		meta, hasMeta := metadata[strings.ToLower(token.Address)]

		name, symbol, decimals := token.Name, token.Symbol, token.Decimals
		if hasMeta {
			name = lo.Ternary(meta.Name != "", meta.Name, name)
			symbol = lo.Ternary(meta.Symbol != "", meta.Symbol, symbol)
			decimals = lo.Ternary(meta.DecimalsKnown, meta.Decimals, decimals)
		}

		md := prices[i]
		asset := entity.Asset{
			Type:            entity.AssetTypeFungible,
			Standard:        entity.StandardERC20,
			ContractAddress: token.Address,
			Symbol:          symbol,
			Name:            name,
			Decimals:        decimals,
			Balance:         utils.FormatTokenAmount(token.RawAmount, decimals),
			RawBalance:      token.RawAmount,
			MarketData:      &md,
			TotalSupply:     meta.TotalSupply,
			BlockNumber:     meta.BlockNumber,
			LastUpdated:     now,
		}
		s.applyValue(&asset)
		tokens = append(tokens, asset)
	}

	nfts := AttachCollectionStats(f.nfts, collections, address, chain)
	return s.assemble(chain, address, native, tokens, nfts, now), nil
}
