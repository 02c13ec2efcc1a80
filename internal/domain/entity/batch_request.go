package entity

import "math/big"

// BalanceRequestItem is one eth_getBalance call of a JSON-RPC batch.
type BalanceRequestItem struct {
	ID            string
	WalletAddress string
}

// BalanceResultItem pairs a batch request with its balance or error.
type BalanceResultItem struct {
	RequestID     string
	WalletAddress string
	Balance       *big.Int
	Error         error
}
