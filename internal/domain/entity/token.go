package entity

import "time"

// TokenMetadata is the normalized token description returned by the provider.
type TokenMetadata struct {
	Address     string `json:"address"`
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Decimals    int    `json:"decimals"`
	Logo        string `json:"logo,omitempty"`
	TotalSupply string `json:"totalSupply,omitempty"`
	BlockNumber string `json:"blockNumber,omitempty"`
	Standard    string `json:"standard,omitempty"`
	Validated   bool   `json:"validated,omitempty"`

	// DecimalsKnown is false when the provider left decimals empty and Decimals holds the default.
	DecimalsKnown bool `json:"-"`
}

// TokenPrice is the normalized USD quote returned by the provider.
type TokenPrice struct {
	USDPrice         float64 `json:"usdPrice"`
	PercentChange24h float64 `json:"percentChange24h"`
	USDChange24h     float64 `json:"usdChange24h"`
	MarketCapUSD     float64 `json:"marketCapUsd"`
	Volume24hUSD     float64 `json:"volume24hUsd"`
	ExchangeName     string  `json:"exchangeName,omitempty"`
}

// MarketData converts the quote into snapshot market data stamped with at.
func (p TokenPrice) MarketData(at time.Time) MarketData {
	return MarketData{
		PriceUSD:         p.USDPrice,
		PercentChange24h: p.PercentChange24h,
		USDChange24h:     p.USDChange24h,
		MarketCapUSD:     p.MarketCapUSD,
		Volume24hUSD:     p.Volume24hUSD,
		LastUpdated:      at,
	}
}

// BannedToken is one entry of the token ban list.
type BannedToken struct {
	Address string `json:"address"`
	Name    string `json:"name,omitempty"`
	Symbol  string `json:"symbol,omitempty"`
	Reason  string `json:"reason,omitempty"`
}
