package entity

import (
	"strings"
	"time"
)

// AssetType tags the variant of an Asset.
type AssetType string

const (
	AssetTypeNative       AssetType = "NATIVE"
	AssetTypeFungible     AssetType = "FUNGIBLE"
	AssetTypeNFT          AssetType = "NFT"
	AssetTypeNFTAggregate AssetType = "NFT_COLLECTION"
)

const (
	StandardERC20 = "ERC20"
	StandardSPL   = "SPL"

	// NFTAggregateAddress is the placeholder address of the synthetic NFT aggregate asset.
	NFTAggregateAddress = "virtual_nft_token"
	NFTAggregateSymbol  = "NFTs"
	NFTAggregateName    = "NFT Collection"
)

// MarketData holds USD market figures for one asset.
// The zero value is a valid "unknown" record, distinct from a nil pointer.
type MarketData struct {
	PriceUSD         float64   `json:"price"`
	PercentChange24h float64   `json:"percent_change_24h"`
	USDChange24h     float64   `json:"usd_change_24h"`
	MarketCapUSD     float64   `json:"market_cap"`
	Volume24hUSD     float64   `json:"volume_24h"`
	LastUpdated      time.Time `json:"last_updated"`
}

// Asset is one line of a wallet snapshot.
type Asset struct {
	Type            AssetType   `json:"type"`
	Standard        string      `json:"standard,omitempty"`
	ContractAddress string      `json:"address"`
	Symbol          string      `json:"symbol"`
	Name            string      `json:"name"`
	Decimals        int         `json:"decimals"`
	Balance         string      `json:"balance"`
	RawBalance      string      `json:"rawBalance,omitempty"`
	ValueUSD        float64     `json:"valueUsd"`
	MarketData      *MarketData `json:"marketData"`
	TotalSupply     string      `json:"totalSupply,omitempty"`
	BlockNumber     string      `json:"blockNumber,omitempty"`
	Banned          bool        `json:"banned,omitempty"`
	LastUpdated     time.Time   `json:"lastUpdated"`
}

// WalletSnapshot is the aggregated view of one address on one chain.
// Assets are ordered native first, fungible tokens next, NFT aggregate last.
type WalletSnapshot struct {
	Address       string     `json:"address"`
	ChainID       string     `json:"chainId"`
	ChainName     string     `json:"chain"`
	NativeBalance string     `json:"nativeBalance"`
	Assets        []Asset    `json:"balances"`
	NFTs          []NFTAsset `json:"nfts"`
	TotalValueUSD float64    `json:"totalValueUsd"`
	FetchedAt     time.Time  `json:"lastUpdated"`
}

// ApplyBanList returns a copy of the snapshot with banned fungible assets either
// flagged or removed. banned holds lowercase addresses. The receiver is not modified.
func (w WalletSnapshot) ApplyBanList(banned map[string]struct{}, exclude bool) WalletSnapshot {
	out := w
	out.Assets = make([]Asset, 0, len(w.Assets))
	out.TotalValueUSD = 0
	for _, asset := range w.Assets {
		if _, ok := banned[strings.ToLower(asset.ContractAddress)]; ok && asset.Type == AssetTypeFungible {
			if exclude {
				continue
			}
			asset.Banned = true
		}
		out.Assets = append(out.Assets, asset)
		out.TotalValueUSD += asset.ValueUSD
	}
	out.NFTs = append([]NFTAsset(nil), w.NFTs...)
	return out
}
