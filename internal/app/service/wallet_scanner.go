package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"portfolio_engine/internal/app/port"
	"portfolio_engine/internal/domain/entity"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// WalletScannerImpl implements port.WalletScanner on top of the portfolio service.
type WalletScannerImpl struct {
	portfolio   port.PortfolioService
	wallets     port.WalletProvider
	registry    port.ChainRegistry
	logger      port.Logger
	concurrency int
}

// NewWalletScanner creates a new WalletScannerImpl.
func NewWalletScanner(
	portfolio port.PortfolioService,
	wallets port.WalletProvider,
	registry port.ChainRegistry,
	logger port.Logger,
	concurrency int,
) port.WalletScanner {
	return &WalletScannerImpl{
		portfolio:   portfolio,
		wallets:     wallets,
		registry:    registry,
		logger:      logger,
		concurrency: max(concurrency, 1),
	}
}

// Scan snapshots every listed wallet on each requested chain of its family.
// A failed wallet/chain pair is reported in its result and does not stop the scan.
// Results are ordered by wallet, then chain.
func (s *WalletScannerImpl) Scan(ctx context.Context, chainIDs []string) ([]entity.ScanResult, error) {
	chains := make([]entity.ChainDescriptor, 0, len(chainIDs))
	for _, id := range lo.Uniq(chainIDs) {
		chain, err := s.registry.Describe(id)
		if err != nil {
			return nil, err
		}
		chains = append(chains, chain)
	}

	wallets, err := s.wallets.GetWallets()
	if err != nil {
		return nil, fmt.Errorf("failed to load wallets: %w", err)
	}
	s.logger.Info("Starting wallet scan", "wallets", len(wallets), "chains", len(chains))

	var (
		mu      sync.Mutex
		results []entity.ScanResult
	)

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for _, wallet := range wallets {
		for _, chain := range chains {
			if chain.Family != wallet.Family {
				continue
			}
			wallet, chain := wallet, chain
			g.Go(func() error {
				result := entity.ScanResult{WalletAddress: wallet.Address, ChainID: chain.ID}

				snapshot, err := s.portfolio.GetWalletSnapshot(ctx, wallet.Address, chain.ID)
				if err != nil {
					s.logger.Error("Error fetching snapshot for wallet", "address", wallet.Address, "chain", chain.ID, "error", err)
					result.Error = err.Error()
				} else {
					result.TotalValueUSD = snapshot.TotalValueUSD
					result.AssetCount = len(snapshot.Assets)
					result.NFTCount = len(snapshot.NFTs)
				}

				mu.Lock()
				results = append(results, result)
				mu.Unlock()
				return nil
			})
		}
	}
	_ = g.Wait()

	walletOrder := make(map[string]int, len(wallets))
	for i, w := range wallets {
		walletOrder[w.Address] = i
	}
	chainOrder := make(map[string]int, len(chains))
	for i, c := range chains {
		chainOrder[c.ID] = i
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].WalletAddress != results[j].WalletAddress {
			return walletOrder[results[i].WalletAddress] < walletOrder[results[j].WalletAddress]
		}
		return chainOrder[results[i].ChainID] < chainOrder[results[j].ChainID]
	})

	failed := lo.CountBy(results, func(r entity.ScanResult) bool { return r.Error != "" })
	s.logger.Info("Wallet scan complete",
		"results", len(results),
		"failed", failed,
		"total_value_usd", lo.SumBy(results, func(r entity.ScanResult) float64 { return r.TotalValueUSD }))
	return results, nil
}
