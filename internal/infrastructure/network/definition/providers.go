package networkdefinition

import (
	"fmt"
	"slices"
	"strings"

	"portfolio_engine/internal/app/port"
	"portfolio_engine/internal/domain/entity"
)

// wethMainnet is the fallback native asset address used by chains without a
// wrapped-native token known to the provider.
const wethMainnet = "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"

// SolanaNativeAddress is the mint address of wrapped SOL.
const SolanaNativeAddress = "So11111111111111111111111111111111111111112"

// evm builds an account-model chain descriptor. The native asset symbol is
// ETH on Ethereum and the chain display name elsewhere.
func evm(id, name, icon, description, nativeAddress string, chainID uint64, slug string, rpcURLs ...string) entity.ChainDescriptor {
	symbol := name
	if id == "ETHEREUM" {
		symbol = "ETH"
	}
	return entity.ChainDescriptor{
		ID:                 id,
		Name:               name,
		Icon:               icon,
		Description:        description,
		NativeAssetAddress: nativeAddress,
		ProviderHandle:     fmt.Sprintf("0x%x", chainID),
		Family:             entity.ChainFamilyEVM,
		NativeSymbol:       symbol,
		NativeName:         name + " Native Token",
		NativeDecimals:     18,
		EVMChainID:         chainID,
		MarketplaceSlug:    slug,
		RPCURLs:            rpcURLs,
	}
}

// Predefined chain descriptors, in registration order.
var ( //nolint:gochecknoglobals // Global for definitions
	Ethereum = evm("ETHEREUM", "Ethereum", "🌐", "Ethereum mainnet", wethMainnet, 1, "ethereum",
		"https://ethereum-rpc.publicnode.com", "https://rpc.ankr.com/eth")
	Polygon = evm("POLYGON", "Polygon", "💜", "Polygon (Matic) network", "0x0d500B1d8E8eF31E21C99d1Db9A6444d3ADf1270", 137, "matic",
		"https://polygon-rpc.com/", "https://polygon.publicnode.com")
	BSC = evm("BSC", "Binance Smart Chain", "🟡", "Binance Smart Chain network", "0xbb4CdB9CBd36B01bD1cBaEBF2De08d9173bc095c", 56, "bsc",
		"https://1rpc.io/bnb", "https://bsc.publicnode.com")
	Arbitrum = evm("ARBITRUM", "Arbitrum", "🔵", "Arbitrum network", "0x82aF49447D8a07e3bd95BD0d56f35241523fBab1", 42161, "arbitrum",
		"https://arb1.arbitrum.io/rpc", "https://arbitrum.publicnode.com")
	Base = evm("BASE", "Base", "🔷", "Base network", "0x4200000000000000000000000000000000000006", 8453, "base",
		"https://1rpc.io/base", "https://base.publicnode.com")
	Optimism = evm("OPTIMISM", "Optimism", "🟢", "Optimism network", "0x4200000000000000000000000000000000000006", 10, "optimism",
		"https://optimism.publicnode.com", "https://rpc.ankr.com/optimism")
	Linea = evm("LINEA", "Linea", "👀", "Linea network", "0xe5D7C2a44FfDDf6b295A15c148167daaAf5Cf34f", 59144, "linea",
		"https://rpc.linea.build")
	Avalanche = evm("AVALANCHE", "Avalanche", "🔥", "Avalanche network", "0xB31f66AA3C1e785363F0875A1B74E27b85FD66c7", 43114, "avalanche",
		"https://api.avax.network/ext/bc/C/rpc", "https://rpc.ankr.com/avalanche")
	Fantom = evm("FANTOM", "Fantom", "🔥", "Fantom network", "0x21be370D5312f44cB42ce377BC9b8a0cEF1A4C83", 250, "",
		"https://1rpc.io/ftm", "https://fantom.publicnode.com")
	Cronos    = evm("CRONOS", "Cronos", "🔥", "Cronos network", wethMainnet, 25, "")
	Gnosis    = evm("GNOSIS", "Gnosis", "🔥", "Gnosis network", "0xe91D153E0b41518A2Ce8DD3D7944Fa863463A97d", 100, "", "https://rpc.ankr.com/gnosis")
	Chilliz   = evm("CHILLIZ", "Chilliz", "🔥", "Chilliz network", wethMainnet, 88888, "")
	Moonbeam  = evm("MOONBEAM", "Moonbeam", "🔥", "Moonbeam network", wethMainnet, 1284, "")
	Blast     = evm("BLAST", "Blast", "🔥", "Blast network", "0x4300000000000000000000000000000000000004", 81457, "blast", "https://rpc.ankr.com/blast")
	ZkSync    = evm("ZKSYNC", "ZkSync", "🔥", "ZkSync network", "0x5AEa5775959fBC2557Cc8789bC1bf90A239D9a91", 324, "zksync", "https://mainnet.era.zksync.io")
	Mantle    = evm("MANTLE", "Mantle", "🔥", "Mantle network", "0x78c1b0C915c4FAA5FffA6CAbf0219DA63d7f4cb8", 5000, "", "https://rpc.mantle.xyz")
	OpBNB     = evm("OPBNB", "OpBNB", "🔥", "OpBNB network", wethMainnet, 204, "")
	PolygonZk = evm("POLYGON_ZKEVM", "Polygon zkEVM", "🔥", "Polygon zkEVM network", "0x4F9A0e7FD2Bf6067db6994CF12E4495Df938E6e9", 1101, "", "https://zkevm-rpc.com")
	ZetaChain = evm("ZETACHAIN", "ZetaChain", "🔥", "ZetaChain network", wethMainnet, 7000, "")
	Flow      = evm("FLOW", "Flow", "🔥", "Flow network", wethMainnet, 747, "")
	Ronin     = evm("RONIN", "Ronin", "🔥", "Ronin network", wethMainnet, 2020, "ronin")
	Lisk      = evm("LISK", "Lisk", "🔥", "Lisk network", wethMainnet, 1135, "")
	Pulse     = evm("PULSECHAIN", "PulseChain", "🔥", "PulseChain network", wethMainnet, 369, "")

	Solana = entity.ChainDescriptor{
		ID:                 "SOLANA",
		Name:               "Solana",
		Icon:               "☀️",
		Description:        "Solana network",
		NativeAssetAddress: SolanaNativeAddress,
		ProviderHandle:     "mainnet",
		Family:             entity.ChainFamilySolana,
		NativeSymbol:       "SOL",
		NativeName:         "Solana",
		NativeDecimals:     9,
	}
)

var allKnownDefinitions = []entity.ChainDescriptor{ //nolint:gochecknoglobals
	Ethereum, Polygon, BSC, Arbitrum, Base, Optimism, Linea, Avalanche, Fantom, Cronos,
	Gnosis, Chilliz, Moonbeam, Blast, ZkSync, Mantle, OpBNB, PolygonZk, ZetaChain, Flow,
	Ronin, Lisk, Pulse, Solana,
}

// ChainRegistry is the immutable, ordered table of supported chains.
type ChainRegistry struct {
	ordered []entity.ChainDescriptor
	byID    map[string]int
}

var _ port.ChainRegistry = (*ChainRegistry)(nil)

// NewChainRegistry builds the registry. rpcOverrides replaces the node URLs of
// the listed chain ids; it is applied once here and never again.
func NewChainRegistry(rpcOverrides map[string][]string) *ChainRegistry {
	r := &ChainRegistry{
		ordered: make([]entity.ChainDescriptor, 0, len(allKnownDefinitions)),
		byID:    make(map[string]int, len(allKnownDefinitions)),
	}
	for _, def := range allKnownDefinitions {
		if urls, ok := rpcOverrides[def.ID]; ok && len(urls) > 0 {
			def.RPCURLs = urls
		}
		def.RPCURLs = append([]string(nil), def.RPCURLs...)
		r.byID[def.ID] = len(r.ordered)
		r.ordered = append(r.ordered, def)
	}
	return r
}

// Describe returns the descriptor registered under chainID. Lookup ignores case.
func (r *ChainRegistry) Describe(chainID string) (entity.ChainDescriptor, error) {
	idx, ok := r.byID[strings.ToUpper(strings.TrimSpace(chainID))]
	if !ok {
		return entity.ChainDescriptor{}, fmt.Errorf("%w: %q", entity.ErrUnsupportedChain, chainID)
	}
	def := r.ordered[idx]
	def.RPCURLs = slices.Clone(def.RPCURLs)
	return def, nil
}

// ListSupported returns a copy of every descriptor in registration order.
func (r *ChainRegistry) ListSupported() []entity.ChainDescriptor {
	defsCopy := make([]entity.ChainDescriptor, len(r.ordered))
	for i, def := range r.ordered {
		def.RPCURLs = slices.Clone(def.RPCURLs)
		defsCopy[i] = def
	}
	return defsCopy
}

// Summaries returns the public listing of supported chains in registration order.
func (r *ChainRegistry) Summaries() []entity.ChainSummary {
	summaries := make([]entity.ChainSummary, 0, len(r.ordered))
	for _, def := range r.ordered {
		summaries = append(summaries, def.Summary())
	}
	return summaries
}
