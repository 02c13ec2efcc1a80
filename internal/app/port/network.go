package port

import (
	"context"
	"math/big"

	"portfolio_engine/internal/domain/entity"
)

// ChainRegistry exposes the static table of supported chains.
type ChainRegistry interface {
	// Describe returns the descriptor for chainID or an error wrapping entity.ErrUnsupportedChain.
	Describe(chainID string) (entity.ChainDescriptor, error)

	// ListSupported returns every descriptor in registration order.
	ListSupported() []entity.ChainDescriptor
}

// NativeBalanceClient reads native balances straight from a chain node.
type NativeBalanceClient interface {
	GetNativeBalance(ctx context.Context, walletAddress string) (*big.Int, error)
	Chain() entity.ChainDescriptor
}

// NativeBalanceClientProvider hands out node clients per chain.
type NativeBalanceClientProvider interface {
	GetClient(chain entity.ChainDescriptor) (NativeBalanceClient, error)
	// Close releases every client handed out so far.
	Close()
}
