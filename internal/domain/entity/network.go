package entity

// ChainFamily groups chains that share one provider call shape.
type ChainFamily string

const (
	// ChainFamilyEVM covers account/contract-model chains.
	ChainFamilyEVM ChainFamily = "evm"
	// ChainFamilySolana covers the ledger-model Solana chain.
	ChainFamilySolana ChainFamily = "solana"
)

// ChainDescriptor holds the static description of one supported chain.
// Descriptors are built once at process start and never modified.
type ChainDescriptor struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	Icon               string      `json:"icon"`
	Description        string      `json:"description"`
	NativeAssetAddress string      `json:"nativeAssetAddress"`
	ProviderHandle     string      `json:"providerHandle"` // chain parameter understood by the data provider, e.g. "0x1" or "mainnet"
	Family             ChainFamily `json:"family"`
	NativeSymbol       string      `json:"nativeSymbol"`
	NativeName         string      `json:"nativeName"`
	NativeDecimals     int         `json:"nativeDecimals"`
	EVMChainID         uint64      `json:"evmChainId,omitempty"`
	MarketplaceSlug    string      `json:"-"`
	RPCURLs            []string    `json:"-"`
}

// ChainSummary is the public listing shape of a supported chain.
type ChainSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// Summary returns the public listing shape of the chain.
func (c ChainDescriptor) Summary() ChainSummary {
	return ChainSummary{
		ID:          c.ID,
		Name:        c.Name,
		Icon:        c.Icon,
		Description: c.Description,
	}
}
