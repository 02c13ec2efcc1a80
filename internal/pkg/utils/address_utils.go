package utils

import (
	"fmt"
	"strings"

	"portfolio_engine/internal/domain/entity"

	"github.com/ethereum/go-ethereum/common"
)

const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// IsSolanaAddress reports whether s looks like a base58 encoded 32-byte public key.
func IsSolanaAddress(s string) bool {
	if len(s) < 32 || len(s) > 44 {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune(base58Alphabet, r) {
			return false
		}
	}
	return true
}

// CanonicalAddress validates address for the chain family and returns its
// canonical form: lowercase 0x-hex for EVM chains, trimmed base58 for Solana.
func CanonicalAddress(family entity.ChainFamily, address string) (string, error) {
	trimmed := strings.TrimSpace(address)
	switch family {
	case entity.ChainFamilyEVM:
		if !common.IsHexAddress(trimmed) {
			return "", fmt.Errorf("%w: %q is not a hex account address", entity.ErrInvalidAddress, address)
		}
		return strings.ToLower(common.HexToAddress(trimmed).Hex()), nil
	case entity.ChainFamilySolana:
		if !IsSolanaAddress(trimmed) {
			return "", fmt.Errorf("%w: %q is not a base58 account address", entity.ErrInvalidAddress, address)
		}
		return trimmed, nil
	default:
		return "", fmt.Errorf("%w: unknown chain family %q", entity.ErrInvalidAddress, family)
	}
}
