package utils

import (
	"testing"

	"portfolio_engine/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalAddress(t *testing.T) {
	got, err := CanonicalAddress(entity.ChainFamilyEVM, " 0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2 ")
	require.NoError(t, err)
	assert.Equal(t, "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2", got)

	got, err = CanonicalAddress(entity.ChainFamilySolana, "5K4bK8mFQziw3aXnJJmKGYwTKqPdVHFbZGSvYm7Jy3rS")
	require.NoError(t, err)
	assert.Equal(t, "5K4bK8mFQziw3aXnJJmKGYwTKqPdVHFbZGSvYm7Jy3rS", got)

	for _, tc := range []struct {
		family  entity.ChainFamily
		address string
	}{
		{entity.ChainFamilyEVM, "0x123"},
		{entity.ChainFamilyEVM, "5K4bK8mFQziw3aXnJJmKGYwTKqPdVHFbZGSvYm7Jy3rS"},
		{entity.ChainFamilySolana, "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"},
		{entity.ChainFamilySolana, "0OIl0OIl0OIl0OIl0OIl0OIl0OIl0OIl"},
		{entity.ChainFamily("cosmos"), "cosmos1abc"},
	} {
		_, err := CanonicalAddress(tc.family, tc.address)
		assert.ErrorIs(t, err, entity.ErrInvalidAddress, tc.address)
	}
}
