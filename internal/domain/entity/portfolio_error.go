package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedChain is returned for chain identifiers missing from the registry.
	ErrUnsupportedChain = errors.New("unsupported chain")
	// ErrInvalidAddress is returned when an address does not match the chain family format.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrFoundationalFetch marks failures of native balance, token list or NFT list calls.
	ErrFoundationalFetch = errors.New("foundational fetch failed")
	// ErrUnsupportedOperation is returned by providers lacking a call for their chain family.
	ErrUnsupportedOperation = errors.New("operation not supported by provider")
	// ErrNotFound is returned when the provider has no record for the requested object.
	ErrNotFound = errors.New("not found")
	// ErrPersistenceDisabled is returned when snapshot persistence is not configured.
	ErrPersistenceDisabled = errors.New("snapshot persistence is disabled")
)

// FoundationalFetchError describes which foundational call aborted a snapshot.
type FoundationalFetchError struct {
	ChainID   string
	Address   string
	Operation string
	Err       error
}

func (e *FoundationalFetchError) Error() string {
	return fmt.Sprintf("%s: %s for %s on %s: %v", ErrFoundationalFetch, e.Operation, e.Address, e.ChainID, e.Err)
}

// Unwrap exposes both the sentinel and the originating cause to errors.Is/As.
func (e *FoundationalFetchError) Unwrap() []error {
	return []error{ErrFoundationalFetch, e.Err}
}
