package port

import (
	"context"

	"portfolio_engine/internal/domain/entity"
)

// PortfolioService defines the inbound operations of the aggregation engine.
type PortfolioService interface {
	// GetWalletSnapshot aggregates holdings of address on chainID, served from cache within the TTL.
	GetWalletSnapshot(ctx context.Context, address, chainID string) (entity.WalletSnapshot, error)

	// RefreshWalletRecord fetches a snapshot and stores it for the given wallet record.
	RefreshWalletRecord(ctx context.Context, walletID, address, chainID string) (entity.WalletSnapshot, error)

	GetTokenMetadata(ctx context.Context, address, chainID string) (entity.TokenMetadata, error)
	GetNFTMetadata(ctx context.Context, contract, tokenID, chainID string) (entity.NFTMetadata, error)
	ListSupportedChains() []entity.ChainSummary
}

// WalletScanner snapshots every listed wallet on the requested chains.
type WalletScanner interface {
	Scan(ctx context.Context, chainIDs []string) ([]entity.ScanResult, error)
}
