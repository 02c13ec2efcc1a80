package entity

// Wallet is an address listed for batch scanning.
type Wallet struct {
	Address string      `json:"address"`
	Family  ChainFamily `json:"family"`
}

// ScanResult summarizes the snapshot of one wallet on one chain during a batch scan.
type ScanResult struct {
	WalletAddress string  `json:"walletAddress"`
	ChainID       string  `json:"chainId"`
	TotalValueUSD float64 `json:"totalValueUsd"`
	AssetCount    int     `json:"assetCount"`
	NFTCount      int     `json:"nftCount"`
	Error         string  `json:"error,omitempty"`
}
