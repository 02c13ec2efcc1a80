package entity

// RawNFT is a provider-returned NFT holding prior to valuation.
type RawNFT struct {
	ContractAddress string `json:"contractAddress"`
	TokenID         string `json:"tokenId"`
	Name            string `json:"name"`
	Symbol          string `json:"symbol"`
	OwnerOf         string `json:"ownerOf,omitempty"`
	Amount          string `json:"amount,omitempty"`
	ContractType    string `json:"contractType,omitempty"`
	Metadata        string `json:"metadata,omitempty"`
	BlockNumber     string `json:"blockNumber,omitempty"`
	BlockTimestamp  string `json:"blockTimestamp,omitempty"`
	BlockHash       string `json:"blockHash,omitempty"`
}

// SaleRecord is one sale reported by the provider. Price is in 18-decimal base units.
type SaleRecord struct {
	Price           string  `json:"price"`
	CurrentUSDValue float64 `json:"currentUsdValue"`
	BlockTimestamp  string  `json:"blockTimestamp,omitempty"`
	From            string  `json:"from,omitempty"`
	To              string  `json:"to,omitempty"`
	TransactionHash string  `json:"transactionHash,omitempty"`
	Marketplace     string  `json:"marketplace,omitempty"`
}

// SaleStats aggregates a collection's recent sales.
type SaleStats struct {
	Lowest      *SaleRecord `json:"lowest,omitempty"`
	Average     *SaleRecord `json:"average,omitempty"`
	Last        *SaleRecord `json:"last,omitempty"`
	TotalTrades int         `json:"totalTrades"`
}

// NFTMetadata is the normalized description of a single NFT.
type NFTMetadata struct {
	ContractAddress string `json:"contractAddress"`
	TokenID         string `json:"tokenId"`
	Name            string `json:"name"`
	Symbol          string `json:"symbol"`
	ContractType    string `json:"contractType,omitempty"`
	TokenURI        string `json:"tokenUri,omitempty"`
	Metadata        string `json:"metadata,omitempty"`
	OwnerOf         string `json:"ownerOf,omitempty"`
	Standard        string `json:"standard,omitempty"`
}

// Transfer describes the transfer that brought an NFT to its owner.
type Transfer struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Timestamp string `json:"timestamp,omitempty"`
	Hash      string `json:"hash,omitempty"`
}

// Sale is a valued sale attached to collection stats.
type Sale struct {
	PriceNative     float64 `json:"price"`
	PriceUSD        float64 `json:"priceUsd"`
	Timestamp       string  `json:"timestamp,omitempty"`
	From            string  `json:"from,omitempty"`
	To              string  `json:"to,omitempty"`
	TransactionHash string  `json:"transactionHash,omitempty"`
	Marketplace     string  `json:"marketplace,omitempty"`
}

// CollectionStats are the derived valuation figures of one NFT collection.
type CollectionStats struct {
	FloorPriceNative float64 `json:"floorPrice"`
	FloorPriceUSD    float64 `json:"floorPriceUsd"`
	AvgPriceNative   float64 `json:"avgPrice"`
	AvgPriceUSD      float64 `json:"avgPriceUsd"`
	LastSale         *Sale   `json:"lastSale"`
	TotalTrades      int     `json:"totalTrades"`
	MarketplaceURL   string  `json:"openseaUrl,omitempty"`
}

// NFTAsset is one held NFT with its collection valuation attached.
type NFTAsset struct {
	Type             AssetType `json:"type"`
	ContractAddress  string    `json:"contractAddress"`
	TokenID          string    `json:"tokenId"`
	Name             string    `json:"name"`
	Symbol           string    `json:"symbol"`
	Owner            string    `json:"owner"`
	LastTransfer     *Transfer `json:"lastTransfer,omitempty"`
	Metadata         string    `json:"metadata,omitempty"`
	FloorPriceNative float64   `json:"floorPrice"`
	FloorPriceUSD    float64   `json:"floorPriceUsd"`
	AvgPriceNative   float64   `json:"avgPrice"`
	AvgPriceUSD      float64   `json:"avgPriceUsd"`
	LastSale         *Sale     `json:"lastSale"`
	TotalTrades      int       `json:"totalTrades"`
	MarketplaceURL   string    `json:"openseaUrl,omitempty"`
}
