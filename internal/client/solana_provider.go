package client

import (
	"context"
	"fmt"

	"portfolio_engine/internal/app/port"
	"portfolio_engine/internal/domain/entity"
	wire "portfolio_engine/internal/entity"
	"portfolio_engine/internal/pkg/utils"

	"go.uber.org/zap"
)

const (
	unknownTokenName   = "Unknown Token"
	unknownTokenSymbol = "UNKNOWN"
	unknownNFTName     = "Unknown NFT"
)

// solanaProviderImpl serves the ledger-model chain from the provider's Solana gateway.
type solanaProviderImpl struct {
	client *MoralisClient
	logger *zap.Logger
}

// NewSolanaProvider creates a new instance of solanaProviderImpl.
func NewSolanaProvider(client *MoralisClient, logger *zap.Logger) port.ChainDataProvider {
	return &solanaProviderImpl{
		client: client,
		logger: logger.Named("SolanaProvider"),
	}
}

func accountPath(chain entity.ChainDescriptor, address, resource string) string {
	return fmt.Sprintf("/account/%s/%s/%s", chain.ProviderHandle, address, resource)
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// GetNativeBalance implements port.ChainDataProvider. The amount is in lamports.
func (p *solanaProviderImpl) GetNativeBalance(ctx context.Context, chain entity.ChainDescriptor, address string) (entity.RawBalanceRecord, error) {
	var resp wire.SolanaBalance
	if err := p.client.getJSON(ctx, p.client.solana("native_balance", accountPath(chain, address, "balance")), &resp); err != nil {
		return entity.RawBalanceRecord{}, err
	}
	return entity.RawBalanceRecord{
		Address:   chain.NativeAssetAddress,
		RawAmount: resp.Lamports.String(),
		Decimals:  chain.NativeDecimals,
		Symbol:    chain.NativeSymbol,
		Name:      chain.NativeName,
	}, nil
}

// GetTokenBalances implements port.ChainDataProvider. The integer amountRaw is
// preferred; the pre-formatted amount is only used when it is missing.
func (p *solanaProviderImpl) GetTokenBalances(ctx context.Context, chain entity.ChainDescriptor, address string) ([]entity.RawBalanceRecord, error) {
	tokens, err := getList[wire.SPLToken](ctx, p.client, p.client.solana("token_balances", accountPath(chain, address, "tokens")))
	if err != nil {
		return nil, err
	}

	records := make([]entity.RawBalanceRecord, 0, len(tokens))
	for _, t := range tokens {
		raw := t.AmountRaw.String()
		if raw == "" {
			raw = t.Amount.String()
		}
		records = append(records, entity.RawBalanceRecord{
			Address:      t.Mint,
			RawAmount:    raw,
			Decimals:     utils.ParseDecimals(t.Decimals.String()),
			Symbol:       orDefault(t.Symbol, unknownTokenSymbol),
			Name:         orDefault(t.Name, unknownTokenName),
			Logo:         t.Logo,
			PossibleSpam: t.PossibleSpam,
		})
	}
	return records, nil
}

// GetNFTs implements port.ChainDataProvider. The mint is the contract address.
func (p *solanaProviderImpl) GetNFTs(ctx context.Context, chain entity.ChainDescriptor, address string) ([]entity.RawNFT, error) {
	nfts, err := getList[wire.SolanaNFT](ctx, p.client, p.client.solana("nfts", accountPath(chain, address, "nft")))
	if err != nil {
		return nil, err
	}

	result := make([]entity.RawNFT, 0, len(nfts))
	for _, n := range nfts {
		result = append(result, entity.RawNFT{
			ContractAddress: n.Mint,
			TokenID:         orDefault(n.TokenAddress, n.AssociatedTokenAddress),
			Name:            orDefault(n.Name, unknownNFTName),
			Symbol:          orDefault(n.Symbol, unknownTokenSymbol),
			OwnerOf:         address,
			Amount:          n.Amount.String(),
			Metadata:        n.Metadata.String(),
		})
	}
	return result, nil
}

// GetTokenMetadata implements port.ChainDataProvider with one request per mint.
func (p *solanaProviderImpl) GetTokenMetadata(ctx context.Context, chain entity.ChainDescriptor, addresses []string) ([]entity.TokenMetadata, error) {
	result := make([]entity.TokenMetadata, 0, len(addresses))
	for _, addr := range addresses {
		var resp wire.SolanaTokenMetadata
		path := fmt.Sprintf("/token/%s/%s/metadata", chain.ProviderHandle, addr)
		if err := p.client.getJSON(ctx, p.client.solana("token_metadata", path), &resp); err != nil {
			return nil, err
		}
		decimals, known := utils.LookupDecimals(resp.Decimals.String())
		result = append(result, entity.TokenMetadata{
			Address:       orDefault(resp.Mint, addr),
			Name:          orDefault(resp.Name, unknownTokenName),
			Symbol:        orDefault(resp.Symbol, unknownTokenSymbol),
			Decimals:      decimals,
			DecimalsKnown: known,
			Logo:          resp.Logo,
			TotalSupply:   resp.TotalSupply.String(),
			Standard:      orDefault(resp.Standard, entity.StandardSPL),
		})
	}
	return result, nil
}

// GetTokenPrice implements port.ChainDataProvider.
func (p *solanaProviderImpl) GetTokenPrice(ctx context.Context, chain entity.ChainDescriptor, address string) (entity.TokenPrice, error) {
	var resp wire.TokenPrice
	path := fmt.Sprintf("/token/%s/%s/price", chain.ProviderHandle, address)
	if err := p.client.getJSON(ctx, p.client.solana("token_price", path), &resp); err != nil {
		return entity.TokenPrice{}, err
	}
	return toTokenPrice(resp), nil
}

// GetCollectionSaleStats is not offered by the Solana gateway.
func (p *solanaProviderImpl) GetCollectionSaleStats(_ context.Context, chain entity.ChainDescriptor, _ string) (entity.SaleStats, error) {
	return entity.SaleStats{}, fmt.Errorf("collection sale stats on %s: %w", chain.ID, entity.ErrUnsupportedOperation)
}

// GetNFTMetadata implements port.ChainDataProvider. The gateway keys NFTs by mint only.
func (p *solanaProviderImpl) GetNFTMetadata(ctx context.Context, chain entity.ChainDescriptor, contract, tokenID string) (entity.NFTMetadata, error) {
	var resp wire.SolanaNFTMetadata
	path := fmt.Sprintf("/nft/%s/%s/metadata", chain.ProviderHandle, contract)
	if err := p.client.getJSON(ctx, p.client.solana("nft_metadata", path), &resp); err != nil {
		return entity.NFTMetadata{}, err
	}
	return entity.NFTMetadata{
		ContractAddress: orDefault(resp.Mint, contract),
		TokenID:         tokenID,
		Name:            orDefault(resp.Name, unknownNFTName),
		Symbol:          orDefault(resp.Symbol, unknownTokenSymbol),
		TokenURI:        resp.Metaplex.MetadataURI,
		Standard:        resp.Standard,
	}, nil
}
