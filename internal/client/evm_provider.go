package client

import (
	"context"
	"fmt"
	"strconv"

	"portfolio_engine/internal/app/port"
	"portfolio_engine/internal/domain/entity"
	wire "portfolio_engine/internal/entity"
	"portfolio_engine/internal/pkg/utils"

	"go.uber.org/zap"
)

// saleStatsWindowDays is the look-back window of collection sale statistics.
const saleStatsWindowDays = "7"

// evmProviderImpl serves account-model chains from the provider's EVM API.
// When nodes is set, native balances are read from JSON-RPC instead.
type evmProviderImpl struct {
	client            *MoralisClient
	nodes             port.NativeBalanceClientProvider
	metadataBatchSize int
	logger            *zap.Logger
}

// NewEVMProvider creates a new instance of evmProviderImpl. nodes may be nil.
func NewEVMProvider(client *MoralisClient, nodes port.NativeBalanceClientProvider, metadataBatchSize int, logger *zap.Logger) port.ChainDataProvider {
	return &evmProviderImpl{
		client:            client,
		nodes:             nodes,
		metadataBatchSize: metadataBatchSize,
		logger:            logger.Named("EVMProvider"),
	}
}

func chainParam(chain entity.ChainDescriptor) [2]string {
	return [2]string{"chain", chain.ProviderHandle}
}

func (p *evmProviderImpl) nativeRecord(chain entity.ChainDescriptor, raw string) entity.RawBalanceRecord {
	return entity.RawBalanceRecord{
		Address:   chain.NativeAssetAddress,
		RawAmount: raw,
		Decimals:  chain.NativeDecimals,
		Symbol:    chain.NativeSymbol,
		Name:      chain.NativeName,
	}
}

// GetNativeBalance implements port.ChainDataProvider.
func (p *evmProviderImpl) GetNativeBalance(ctx context.Context, chain entity.ChainDescriptor, address string) (entity.RawBalanceRecord, error) {
	if p.nodes != nil {
		node, err := p.nodes.GetClient(chain)
		if err != nil {
			return entity.RawBalanceRecord{}, fmt.Errorf("failed to get node client for %s: %w", chain.ID, err)
		}
		balance, err := node.GetNativeBalance(ctx, address)
		if err != nil {
			return entity.RawBalanceRecord{}, fmt.Errorf("failed to read native balance from node: %w", err)
		}
		p.logger.Debug("Native balance read from node",
			zap.String("chain", chain.ID),
			zap.String("address", address),
			zap.String("balance", utils.FormatBigInt(balance, uint8(chain.NativeDecimals))))
		return p.nativeRecord(chain, balance.String()), nil
	}

	var resp wire.NativeBalance
	if err := p.client.getJSON(ctx, p.client.evm("native_balance", "/"+address+"/balance", chainParam(chain)), &resp); err != nil {
		return entity.RawBalanceRecord{}, err
	}
	return p.nativeRecord(chain, resp.Balance.String()), nil
}

// GetTokenBalances implements port.ChainDataProvider.
func (p *evmProviderImpl) GetTokenBalances(ctx context.Context, chain entity.ChainDescriptor, address string) ([]entity.RawBalanceRecord, error) {
	balances, err := getList[wire.ERC20Balance](ctx, p.client, p.client.evm("token_balances", "/"+address+"/erc20", chainParam(chain)))
	if err != nil {
		return nil, err
	}

	records := make([]entity.RawBalanceRecord, 0, len(balances))
	for _, b := range balances {
		records = append(records, entity.RawBalanceRecord{
			Address:      b.TokenAddress,
			RawAmount:    b.Balance.String(),
			Decimals:     utils.ParseDecimals(b.Decimals.String()),
			Symbol:       b.Symbol,
			Name:         b.Name,
			Logo:         b.Logo,
			PossibleSpam: b.PossibleSpam,
		})
	}
	return records, nil
}

// GetNFTs implements port.ChainDataProvider. Only the first page is read.
func (p *evmProviderImpl) GetNFTs(ctx context.Context, chain entity.ChainDescriptor, address string) ([]entity.RawNFT, error) {
	nfts, err := getList[wire.WalletNFT](ctx, p.client, p.client.evm("nfts", "/"+address+"/nft",
		chainParam(chain), [2]string{"format", "decimal"}))
	if err != nil {
		return nil, err
	}

	result := make([]entity.RawNFT, 0, len(nfts))
	for _, n := range nfts {
		result = append(result, entity.RawNFT{
			ContractAddress: n.TokenAddress,
			TokenID:         n.TokenID.String(),
			Name:            n.Name,
			Symbol:          n.Symbol,
			OwnerOf:         n.OwnerOf,
			Amount:          n.Amount.String(),
			ContractType:    n.ContractType,
			Metadata:        n.Metadata.String(),
			BlockNumber:     n.BlockNumber.String(),
			BlockTimestamp:  n.BlockTimestamp,
			BlockHash:       n.BlockHash,
		})
	}
	return result, nil
}

// GetTokenMetadata implements port.ChainDataProvider. Addresses are requested in batches.
func (p *evmProviderImpl) GetTokenMetadata(ctx context.Context, chain entity.ChainDescriptor, addresses []string) ([]entity.TokenMetadata, error) {
	if len(addresses) == 0 {
		return nil, nil
	}

	var result []entity.TokenMetadata
	for _, batch := range utils.Batch(addresses, p.metadataBatchSize) {
		query := make([][2]string, 0, len(batch)+1)
		query = append(query, chainParam(chain))
		for i, addr := range batch {
			query = append(query, [2]string{"addresses[" + strconv.Itoa(i) + "]", addr})
		}

		metas, err := getList[wire.ERC20Metadata](ctx, p.client, p.client.evm("token_metadata", "/erc20/metadata", query...))
		if err != nil {
			return nil, err
		}
		for _, m := range metas {
			decimals, known := utils.LookupDecimals(m.Decimals.String())
			result = append(result, entity.TokenMetadata{
				Address:       m.Address,
				Name:          m.Name,
				Symbol:        m.Symbol,
				Decimals:      decimals,
				DecimalsKnown: known,
				Logo:          m.Logo,
				TotalSupply:   m.TotalSupply.String(),
				BlockNumber:   m.BlockNumber.String(),
				Standard:      entity.StandardERC20,
				Validated:     m.VerifiedContract,
			})
		}
	}
	return result, nil
}

// GetTokenPrice implements port.ChainDataProvider.
func (p *evmProviderImpl) GetTokenPrice(ctx context.Context, chain entity.ChainDescriptor, address string) (entity.TokenPrice, error) {
	var resp wire.TokenPrice
	if err := p.client.getJSON(ctx, p.client.evm("token_price", "/erc20/"+address+"/price", chainParam(chain)), &resp); err != nil {
		return entity.TokenPrice{}, err
	}
	return toTokenPrice(resp), nil
}

// GetCollectionSaleStats implements port.ChainDataProvider.
func (p *evmProviderImpl) GetCollectionSaleStats(ctx context.Context, chain entity.ChainDescriptor, contract string) (entity.SaleStats, error) {
	var resp wire.NFTSalePrices
	if err := p.client.getJSON(ctx, p.client.evm("collection_sale_stats", "/nft/"+contract+"/price",
		chainParam(chain), [2]string{"days", saleStatsWindowDays}), &resp); err != nil {
		return entity.SaleStats{}, err
	}
	return entity.SaleStats{
		Lowest:      toSaleRecord(resp.LowestSale),
		Average:     toSaleRecord(resp.AverageSale),
		Last:        toSaleRecord(resp.LastSale),
		TotalTrades: int(resp.TotalTrades),
	}, nil
}

// GetNFTMetadata implements port.ChainDataProvider.
func (p *evmProviderImpl) GetNFTMetadata(ctx context.Context, chain entity.ChainDescriptor, contract, tokenID string) (entity.NFTMetadata, error) {
	var resp wire.NFTMetadata
	if err := p.client.getJSON(ctx, p.client.evm("nft_metadata", "/nft/"+contract+"/"+tokenID,
		chainParam(chain), [2]string{"format", "decimal"}), &resp); err != nil {
		return entity.NFTMetadata{}, err
	}
	return entity.NFTMetadata{
		ContractAddress: resp.TokenAddress,
		TokenID:         resp.TokenID.String(),
		Name:            resp.Name,
		Symbol:          resp.Symbol,
		ContractType:    resp.ContractType,
		TokenURI:        resp.TokenURI,
		Metadata:        resp.Metadata.String(),
		OwnerOf:         resp.OwnerOf,
		Standard:        resp.ContractType,
	}, nil
}

func toTokenPrice(resp wire.TokenPrice) entity.TokenPrice {
	change := resp.UsdPrice24hrPercentChange.Float64()
	if change == 0 {
		change = resp.PercentChange24hr.Float64()
	}
	return entity.TokenPrice{
		USDPrice:         resp.UsdPrice.Float64(),
		PercentChange24h: change,
		USDChange24h:     resp.UsdPrice24hrUsdChange.Float64(),
		MarketCapUSD:     resp.UsdMarketCap.Float64(),
		Volume24hUSD:     resp.UsdVolume24h.Float64(),
		ExchangeName:     resp.ExchangeName,
	}
}

func toSaleRecord(sale *wire.NFTSale) *entity.SaleRecord {
	if sale == nil {
		return nil
	}
	from := sale.FromAddress
	if from == "" {
		from = sale.SellerAddress
	}
	to := sale.ToAddress
	if to == "" {
		to = sale.BuyerAddress
	}
	marketplace := sale.Marketplace
	if marketplace == "" {
		marketplace = sale.MarketplaceAddress
	}
	return &entity.SaleRecord{
		Price:           sale.Price.String(),
		CurrentUSDValue: sale.CurrentUSDValue.Float64(),
		BlockTimestamp:  sale.BlockTimestamp,
		From:            from,
		To:              to,
		TransactionHash: sale.TransactionHash,
		Marketplace:     marketplace,
	}
}
