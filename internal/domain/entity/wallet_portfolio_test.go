package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func banTestSnapshot() WalletSnapshot {
	return WalletSnapshot{
		Address: "0xabc",
		Assets: []Asset{
			{Type: AssetTypeNative, ContractAddress: "0xEeeeeEeeeEeEeeEeEeEeeEEEeeeeEeeeeeeeEEeE", ValueUSD: 10},
			{Type: AssetTypeFungible, ContractAddress: "0xBAD", ValueUSD: 5},
			{Type: AssetTypeFungible, ContractAddress: "0xgood", ValueUSD: 2.5},
			{Type: AssetTypeNFTAggregate, ContractAddress: NFTAggregateAddress, ValueUSD: 1},
		},
		NFTs:          []NFTAsset{{}},
		TotalValueUSD: 18.5,
	}
}

func TestApplyBanList_Flag(t *testing.T) {
	original := banTestSnapshot()
	banned := map[string]struct{}{"0xbad": {}, NFTAggregateAddress: {}}

	out := original.ApplyBanList(banned, false)

	require.Len(t, out.Assets, 4)
	assert.True(t, out.Assets[1].Banned)
	assert.False(t, out.Assets[3].Banned, "only fungible assets are subject to the ban list")
	assert.InDelta(t, 18.5, out.TotalValueUSD, 1e-9)
	assert.False(t, original.Assets[1].Banned)
}

func TestApplyBanList_Exclude(t *testing.T) {
	original := banTestSnapshot()

	out := original.ApplyBanList(map[string]struct{}{"0xbad": {}}, true)

	require.Len(t, out.Assets, 3)
	assert.Equal(t, "0xgood", out.Assets[1].ContractAddress)
	assert.InDelta(t, 13.5, out.TotalValueUSD, 1e-9)
	assert.Len(t, out.NFTs, 1)
	assert.Len(t, original.Assets, 4)
}

func TestApplyBanList_Empty(t *testing.T) {
	out := banTestSnapshot().ApplyBanList(nil, true)
	assert.Len(t, out.Assets, 4)
	assert.InDelta(t, 18.5, out.TotalValueUSD, 1e-9)
}

func TestFoundationalFetchError_Unwrap(t *testing.T) {
	cause := errors.New("provider down")
	err := error(&FoundationalFetchError{ChainID: "ETHEREUM", Address: "0xabc", Operation: "nfts", Err: cause})

	assert.ErrorIs(t, err, ErrFoundationalFetch)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "foundational fetch failed: nfts for 0xabc on ETHEREUM: provider down", err.Error())

	var fetchErr *FoundationalFetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "nfts", fetchErr.Operation)
}
