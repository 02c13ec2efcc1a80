package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"portfolio_engine/internal/app/port"
	"portfolio_engine/internal/domain/entity"
	"portfolio_engine/internal/pkg/utils"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

const (
	// salePriceDecimals is the fixed-point exponent of provider sale prices.
	salePriceDecimals = 18

	defaultMarketplaceSlug = "ethereum"
	marketplaceBaseURL     = "https://opensea.io/assets/"
)

// MarketplaceURL is the collection page of contract on the chain's marketplace.
func MarketplaceURL(chain entity.ChainDescriptor, contract string) string {
	slug := chain.MarketplaceSlug
	if slug == "" {
		slug = defaultMarketplaceSlug
	}
	return marketplaceBaseURL + slug + "/" + contract
}

// NFTValuator values NFT collections from their sale statistics.
type NFTValuator struct {
	logger        port.Logger
	maxConcurrent int
}

// NewNFTValuator creates a new NFTValuator.
func NewNFTValuator(logger port.Logger, maxConcurrent int) *NFTValuator {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &NFTValuator{logger: logger, maxConcurrent: maxConcurrent}
}

// Valuate fetches sale statistics once per distinct collection address.
// A collection whose lookup fails gets zero stats.
func (v *NFTValuator) Valuate(
	ctx context.Context,
	provider port.ChainDataProvider,
	chain entity.ChainDescriptor,
	addresses []string,
) map[string]entity.CollectionStats {
	unique := lo.Uniq(lo.Compact(addresses))
	result := make(map[string]entity.CollectionStats, len(unique))
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(v.maxConcurrent)
	for _, contract := range unique {
		contract := contract
		g.Go(func() error {
			stats, _ := isolate(ctx, v.logger, "collection_sale_stats", entity.CollectionStats{},
				func(ctx context.Context) (entity.CollectionStats, error) {
					raw, err := provider.GetCollectionSaleStats(ctx, chain, contract)
					if err != nil {
						return entity.CollectionStats{}, err
					}
					stats := collectionStatsFrom(raw)
					stats.MarketplaceURL = MarketplaceURL(chain, contract)
					return stats, nil
				}, "chain", chain.ID, "collection", contract)

			mu.Lock()
			result[contract] = stats
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return result
}

func collectionStatsFrom(raw entity.SaleStats) entity.CollectionStats {
	stats := entity.CollectionStats{TotalTrades: raw.TotalTrades}
	if raw.Lowest != nil {
		stats.FloorPriceNative = utils.ShiftDecimals(raw.Lowest.Price, salePriceDecimals)
		stats.FloorPriceUSD = raw.Lowest.CurrentUSDValue
	}
	if raw.Average != nil {
		stats.AvgPriceNative = utils.ShiftDecimals(raw.Average.Price, salePriceDecimals)
		stats.AvgPriceUSD = raw.Average.CurrentUSDValue
	}
	if raw.Last != nil {
		stats.LastSale = &entity.Sale{
			PriceNative:     utils.ShiftDecimals(raw.Last.Price, salePriceDecimals),
			PriceUSD:        raw.Last.CurrentUSDValue,
			Timestamp:       raw.Last.BlockTimestamp,
			From:            raw.Last.From,
			To:              raw.Last.To,
			TransactionHash: raw.Last.TransactionHash,
			Marketplace:     raw.Last.Marketplace,
		}
	}
	return stats
}

// AttachCollectionStats builds the snapshot NFT list, copying each NFT's collection stats onto it.
func AttachCollectionStats(
	raw []entity.RawNFT,
	stats map[string]entity.CollectionStats,
	owner string,
	chain entity.ChainDescriptor,
) []entity.NFTAsset {
	nfts := make([]entity.NFTAsset, 0, len(raw))
	for _, n := range raw {
		cs := stats[n.ContractAddress]
		marketplaceURL := cs.MarketplaceURL
		if marketplaceURL == "" && chain.Family == entity.ChainFamilyEVM {
			marketplaceURL = MarketplaceURL(chain, n.ContractAddress)
		}

		asset := entity.NFTAsset{
			Type:             entity.AssetTypeNFT,
			ContractAddress:  n.ContractAddress,
			TokenID:          n.TokenID,
			Name:             n.Name,
			Symbol:           n.Symbol,
			Owner:            owner,
			Metadata:         n.Metadata,
			FloorPriceNative: cs.FloorPriceNative,
			FloorPriceUSD:    cs.FloorPriceUSD,
			AvgPriceNative:   cs.AvgPriceNative,
			AvgPriceUSD:      cs.AvgPriceUSD,
			LastSale:         cs.LastSale,
			TotalTrades:      cs.TotalTrades,
			MarketplaceURL:   marketplaceURL,
		}
		if chain.Family == entity.ChainFamilyEVM {
			asset.LastTransfer = &entity.Transfer{
				From:      n.OwnerOf,
				To:        owner,
				Timestamp: n.BlockTimestamp,
				Hash:      n.BlockHash,
			}
		}
		nfts = append(nfts, asset)
	}
	return nfts
}

// BuildNFTAggregate synthesizes the asset line that stands for all held NFTs.
// Its price is the mean floor USD value per NFT and its market cap the total.
func BuildNFTAggregate(nfts []entity.NFTAsset, now time.Time) entity.Asset {
	total := lo.SumBy(nfts, func(n entity.NFTAsset) float64 { return n.FloorPriceUSD })
	count := len(nfts)

	return entity.Asset{
		Type:            entity.AssetTypeNFTAggregate,
		ContractAddress: entity.NFTAggregateAddress,
		Symbol:          entity.NFTAggregateSymbol,
		Name:            entity.NFTAggregateName,
		Decimals:        0,
		Balance:         strconv.Itoa(count),
		ValueUSD:        total,
		MarketData: &entity.MarketData{
			PriceUSD:     total / float64(max(count, 1)),
			MarketCapUSD: total,
			LastUpdated:  now,
		},
		LastUpdated: now,
	}
}
