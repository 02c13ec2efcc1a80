package port

import (
	"context"

	"portfolio_engine/internal/domain/entity"
)

// ChainDataProvider is the external chain-data provider for one chain family.
// Every call may fail independently of the others.
type ChainDataProvider interface {
	GetNativeBalance(ctx context.Context, chain entity.ChainDescriptor, address string) (entity.RawBalanceRecord, error)
	GetTokenBalances(ctx context.Context, chain entity.ChainDescriptor, address string) ([]entity.RawBalanceRecord, error)
	GetNFTs(ctx context.Context, chain entity.ChainDescriptor, address string) ([]entity.RawNFT, error)
	GetTokenMetadata(ctx context.Context, chain entity.ChainDescriptor, addresses []string) ([]entity.TokenMetadata, error)
	GetTokenPrice(ctx context.Context, chain entity.ChainDescriptor, address string) (entity.TokenPrice, error)
	GetCollectionSaleStats(ctx context.Context, chain entity.ChainDescriptor, contract string) (entity.SaleStats, error)
	GetNFTMetadata(ctx context.Context, chain entity.ChainDescriptor, contract, tokenID string) (entity.NFTMetadata, error)
}

// ProviderSet maps each chain family to its provider.
type ProviderSet map[entity.ChainFamily]ChainDataProvider

// DerivativeClassifier decides whether a token symbol names a derivative
// (e.g. liquid-staking receipt) of another token.
type DerivativeClassifier interface {
	IsDerivative(symbol string) bool
	BaseSymbolOf(symbol string) string
}
