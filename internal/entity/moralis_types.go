package entity

import (
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FlexString accepts a JSON string, number, object or null.
// Strings are unquoted, null becomes "", anything else keeps its raw text.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	switch {
	case raw == "null" || raw == "":
		*f = ""
	case raw[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
	default:
		*f = FlexString(raw)
	}
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

// FlexFloat accepts a JSON number, a numeric string or null. Unparseable strings decode to 0.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "" || raw == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(v)
	return nil
}

func (f FlexFloat) Float64() float64 {
	return float64(f)
}

// ResultPage is the wrapped list shape returned by paginated endpoints.
type ResultPage[T any] struct {
	Cursor string `json:"cursor,omitempty"`
	Result []T    `json:"result"`
}

// NativeBalance is the response of GET /{address}/balance.
type NativeBalance struct {
	Balance FlexString `json:"balance"`
}

// ERC20Balance is one element of GET /{address}/erc20.
type ERC20Balance struct {
	TokenAddress string     `json:"token_address"`
	Name         string     `json:"name"`
	Symbol       string     `json:"symbol"`
	Logo         string     `json:"logo"`
	Decimals     FlexString `json:"decimals"`
	Balance      FlexString `json:"balance"`
	PossibleSpam bool       `json:"possible_spam"`
}

// WalletNFT is one element of GET /{address}/nft.
type WalletNFT struct {
	TokenAddress   string     `json:"token_address"`
	TokenID        FlexString `json:"token_id"`
	Name           string     `json:"name"`
	Symbol         string     `json:"symbol"`
	OwnerOf        string     `json:"owner_of"`
	Amount         FlexString `json:"amount"`
	ContractType   string     `json:"contract_type"`
	TokenURI       string     `json:"token_uri"`
	Metadata       FlexString `json:"metadata"`
	BlockNumber    FlexString `json:"block_number"`
	BlockTimestamp string     `json:"block_timestamp"`
	BlockHash      string     `json:"block_hash"`
}

// ERC20Metadata is one element of GET /erc20/metadata.
type ERC20Metadata struct {
	Address          string     `json:"address"`
	Name             string     `json:"name"`
	Symbol           string     `json:"symbol"`
	Logo             string     `json:"logo"`
	Decimals         FlexString `json:"decimals"`
	TotalSupply      FlexString `json:"total_supply"`
	BlockNumber      FlexString `json:"block_number"`
	VerifiedContract bool       `json:"verified_contract"`
}

// TokenPrice is the response of the EVM and Solana token price endpoints.
type TokenPrice struct {
	TokenAddress              string    `json:"tokenAddress"`
	UsdPrice                  FlexFloat `json:"usdPrice"`
	UsdPrice24hrPercentChange FlexFloat `json:"usdPrice24hrPercentChange"`
	PercentChange24hr         FlexFloat `json:"24hrPercentChange"`
	UsdPrice24hrUsdChange     FlexFloat `json:"usdPrice24hrUsdChange"`
	UsdMarketCap              FlexFloat `json:"usdMarketCap"`
	UsdVolume24h              FlexFloat `json:"usdVolume24h"`
	ExchangeName              string    `json:"exchangeName"`
}

// NFTSale is one sale entry of GET /nft/{address}/price.
type NFTSale struct {
	Price              FlexString `json:"price"`
	CurrentUSDValue    FlexFloat  `json:"current_usd_value"`
	BlockTimestamp     string     `json:"block_timestamp"`
	FromAddress        string     `json:"from_address"`
	ToAddress          string     `json:"to_address"`
	SellerAddress      string     `json:"seller_address"`
	BuyerAddress       string     `json:"buyer_address"`
	TransactionHash    string     `json:"transaction_hash"`
	Marketplace        string     `json:"marketplace"`
	MarketplaceAddress string     `json:"marketplace_address"`
}

// NFTSalePrices is the response of GET /nft/{address}/price.
type NFTSalePrices struct {
	LowestSale  *NFTSale  `json:"lowest_sale"`
	AverageSale *NFTSale  `json:"average_sale"`
	LastSale    *NFTSale  `json:"last_sale"`
	TotalTrades FlexFloat `json:"total_trades"`
}

// NFTMetadata is the response of GET /nft/{address}/{token_id}.
type NFTMetadata struct {
	TokenAddress string     `json:"token_address"`
	TokenID      FlexString `json:"token_id"`
	Name         string     `json:"name"`
	Symbol       string     `json:"symbol"`
	ContractType string     `json:"contract_type"`
	TokenURI     string     `json:"token_uri"`
	Metadata     FlexString `json:"metadata"`
	OwnerOf      string     `json:"owner_of"`
}

// SolanaBalance is the response of GET /account/{network}/{address}/balance.
type SolanaBalance struct {
	Lamports FlexString `json:"lamports"`
	Solana   FlexString `json:"solana"`
}

// SPLToken is one element of GET /account/{network}/{address}/tokens.
type SPLToken struct {
	AssociatedTokenAddress string     `json:"associatedTokenAddress"`
	Mint                   string     `json:"mint"`
	AmountRaw              FlexString `json:"amountRaw"`
	Amount                 FlexString `json:"amount"`
	Decimals               FlexString `json:"decimals"`
	Name                   string     `json:"name"`
	Symbol                 string     `json:"symbol"`
	Logo                   string     `json:"logo"`
	PossibleSpam           bool       `json:"possibleSpam"`
}

// SolanaNFT is one element of GET /account/{network}/{address}/nft.
type SolanaNFT struct {
	AssociatedTokenAddress string     `json:"associatedTokenAddress"`
	TokenAddress           string     `json:"tokenAddress"`
	Mint                   string     `json:"mint"`
	Name                   string     `json:"name"`
	Symbol                 string     `json:"symbol"`
	Amount                 FlexString `json:"amount"`
	Metadata               FlexString `json:"metadata"`
}

// SolanaTokenMetadata is the response of GET /token/{network}/{address}/metadata.
type SolanaTokenMetadata struct {
	Mint        string     `json:"mint"`
	Standard    string     `json:"standard"`
	Name        string     `json:"name"`
	Symbol      string     `json:"symbol"`
	Logo        string     `json:"logo"`
	Decimals    FlexString `json:"decimals"`
	TotalSupply FlexString `json:"totalSupply"`
}

// Metaplex carries the on-chain Metaplex metadata of a Solana NFT.
type Metaplex struct {
	MetadataURI     string `json:"metadataUri"`
	UpdateAuthority string `json:"updateAuthority"`
	IsMutable       bool   `json:"isMutable"`
}

// SolanaNFTMetadata is the response of GET /nft/{network}/{address}/metadata.
type SolanaNFTMetadata struct {
	Mint     string   `json:"mint"`
	Standard string   `json:"standard"`
	Name     string   `json:"name"`
	Symbol   string   `json:"symbol"`
	Metaplex Metaplex `json:"metaplex"`
}
