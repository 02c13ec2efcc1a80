package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"portfolio_engine/internal/app/port"
	"portfolio_engine/internal/domain/entity"
	"portfolio_engine/internal/infrastructure/configloader"
	networkdefinition "portfolio_engine/internal/infrastructure/network/definition"
	applog "portfolio_engine/internal/pkg/logger"
	"portfolio_engine/internal/pkg/utils"
	providermocks "portfolio_engine/mocks/provider"
	storagemocks "portfolio_engine/mocks/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	evmWallet    = "0x1111111111111111111111111111111111111111"
	solanaWallet = "5K4bK8mFQziw3aXnJJmKGYwTKqPdVHFbZGSvYm7Jy3rS"

	usdcAddress = "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48"
	junkAddress = "0xdeaddeaddeaddeaddeaddeaddeaddeaddeaddead"

	collectionA = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	collectionB = "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, providers port.ProviderSet, writer port.SnapshotWriter, ttl time.Duration) *PortfolioServiceImpl {
	t.Helper()
	cfg := configloader.Default()
	svc := NewPortfolioService(
		networkdefinition.NewChainRegistry(nil),
		providers,
		NewCaches(ttl),
		writer,
		applog.FromZap(zap.NewNop()),
		cfg,
	).(*PortfolioServiceImpl)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

// expectEmptyEVMWallet registers a wallet holding only 1.5 native coins priced at 2000 USD.
func expectEmptyEVMWallet(p *providermocks.ChainDataProvider, times int) {
	p.On("GetNativeBalance", mock.Anything, mock.Anything, evmWallet).
		Return(entity.RawBalanceRecord{Address: evmWallet, RawAmount: "1500000000000000000", Decimals: 18}, nil).Times(times)
	p.On("GetTokenBalances", mock.Anything, mock.Anything, evmWallet).
		Return([]entity.RawBalanceRecord{}, nil).Times(times)
	p.On("GetNFTs", mock.Anything, mock.Anything, evmWallet).
		Return([]entity.RawNFT{}, nil).Times(times)
	p.On("GetTokenPrice", mock.Anything, mock.Anything, networkdefinition.Ethereum.NativeAssetAddress).
		Return(entity.TokenPrice{USDPrice: 2000}, nil).Times(times)
}

func TestGetWalletSnapshot_AccountChain(t *testing.T) {
	p := providermocks.NewChainDataProvider(t)
	p.On("GetNativeBalance", mock.Anything, mock.Anything, evmWallet).
		Return(entity.RawBalanceRecord{Address: evmWallet, RawAmount: "1500000000000000000", Decimals: 18}, nil).Once()
	p.On("GetTokenBalances", mock.Anything, mock.Anything, evmWallet).
		Return([]entity.RawBalanceRecord{
			{Address: usdcAddress, RawAmount: "2500000", Decimals: 6, Symbol: "USDC", Name: "usdc"},
			{Address: junkAddress, RawAmount: "1000", Decimals: 0, Symbol: "JUNK", Name: "Junk Token"},
		}, nil).Once()
	p.On("GetNFTs", mock.Anything, mock.Anything, evmWallet).Return([]entity.RawNFT{}, nil).Once()
	p.On("GetTokenMetadata", mock.Anything, mock.Anything, []string{usdcAddress, junkAddress}).
		Return([]entity.TokenMetadata{
			{Address: usdcAddress, Name: "USD Coin", Symbol: "USDC", Decimals: 6, DecimalsKnown: true, TotalSupply: "1000000", BlockNumber: "6082465"},
		}, nil).Once()
	p.On("GetTokenPrice", mock.Anything, mock.Anything, networkdefinition.Ethereum.NativeAssetAddress).
		Return(entity.TokenPrice{USDPrice: 2000, PercentChange24h: 1.5}, nil).Once()
	p.On("GetTokenPrice", mock.Anything, mock.Anything, usdcAddress).
		Return(entity.TokenPrice{USDPrice: 1}, nil).Once()
	p.On("GetTokenPrice", mock.Anything, mock.Anything, junkAddress).
		Return(entity.TokenPrice{}, errors.New("no pools found")).Once()

	svc := newTestService(t, port.ProviderSet{entity.ChainFamilyEVM: p}, nil, time.Minute)

	snapshot, err := svc.GetWalletSnapshot(context.Background(), "0x1111111111111111111111111111111111111111", "ethereum")
	require.NoError(t, err)

	assert.Equal(t, evmWallet, snapshot.Address)
	assert.Equal(t, "ETHEREUM", snapshot.ChainID)
	assert.Equal(t, "1.5", snapshot.NativeBalance)
	assert.Equal(t, fixedNow, snapshot.FetchedAt)
	require.Len(t, snapshot.Assets, 4)

	native := snapshot.Assets[0]
	assert.Equal(t, entity.AssetTypeNative, native.Type)
	assert.Equal(t, "ETH", native.Symbol)
	assert.Equal(t, "1500000000000000000", native.RawBalance)
	require.NotNil(t, native.MarketData)
	assert.Equal(t, 2000.0, native.MarketData.PriceUSD)
	assert.InDelta(t, 3000, native.ValueUSD, 1e-9)

	usdc := snapshot.Assets[1]
	assert.Equal(t, "USD Coin", usdc.Name)
	assert.Equal(t, "2.5", usdc.Balance)
	assert.Equal(t, "1000000", usdc.TotalSupply)
	assert.InDelta(t, 2.5, usdc.ValueUSD, 1e-9)

	junk := snapshot.Assets[2]
	assert.Equal(t, "Junk Token", junk.Name)
	assert.Equal(t, "1000", junk.Balance)
	require.NotNil(t, junk.MarketData, "failed price lookups keep zero market data")
	assert.Zero(t, junk.MarketData.PriceUSD)
	assert.Zero(t, junk.ValueUSD)

	aggregate := snapshot.Assets[3]
	assert.Equal(t, entity.AssetTypeNFTAggregate, aggregate.Type)
	assert.Equal(t, entity.NFTAggregateAddress, aggregate.ContractAddress)
	assert.Equal(t, "0", aggregate.Balance)
	assert.Zero(t, aggregate.ValueUSD)

	assert.InDelta(t, 3002.5, snapshot.TotalValueUSD, 1e-9)
}

func TestGetWalletSnapshot_ServedFromCacheWithinTTL(t *testing.T) {
	p := providermocks.NewChainDataProvider(t)
	expectEmptyEVMWallet(p, 1)

	svc := newTestService(t, port.ProviderSet{entity.ChainFamilyEVM: p}, nil, time.Minute)

	first, err := svc.GetWalletSnapshot(context.Background(), evmWallet, "ETHEREUM")
	require.NoError(t, err)
	second, err := svc.GetWalletSnapshot(context.Background(), "0x1111111111111111111111111111111111111111", "ETHEREUM")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	p.AssertNumberOfCalls(t, "GetNativeBalance", 1)
}

func TestGetWalletSnapshot_RefetchedAfterExpiry(t *testing.T) {
	p := providermocks.NewChainDataProvider(t)
	expectEmptyEVMWallet(p, 2)

	svc := newTestService(t, port.ProviderSet{entity.ChainFamilyEVM: p}, nil, 20*time.Millisecond)

	_, err := svc.GetWalletSnapshot(context.Background(), evmWallet, "ETHEREUM")
	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
	_, err = svc.GetWalletSnapshot(context.Background(), evmWallet, "ETHEREUM")
	require.NoError(t, err)

	p.AssertNumberOfCalls(t, "GetNativeBalance", 2)
}

func TestGetWalletSnapshot_FoundationalFailureIsNotCached(t *testing.T) {
	p := providermocks.NewChainDataProvider(t)
	p.On("GetNativeBalance", mock.Anything, mock.Anything, evmWallet).
		Return(entity.RawBalanceRecord{RawAmount: "1"}, nil).Maybe()
	p.On("GetNFTs", mock.Anything, mock.Anything, evmWallet).Return([]entity.RawNFT{}, nil).Maybe()
	p.On("GetTokenBalances", mock.Anything, mock.Anything, evmWallet).
		Return(nil, errors.New("provider returned status 500")).Times(2)

	svc := newTestService(t, port.ProviderSet{entity.ChainFamilyEVM: p}, nil, time.Minute)

	for i := 0; i < 2; i++ {
		_, err := svc.GetWalletSnapshot(context.Background(), evmWallet, "ETHEREUM")
		require.Error(t, err)
		assert.ErrorIs(t, err, entity.ErrFoundationalFetch)

		var fetchErr *entity.FoundationalFetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, "token_balances", fetchErr.Operation)
		assert.Equal(t, "ETHEREUM", fetchErr.ChainID)
	}
}

func TestGetWalletSnapshot_RejectsBadInputWithoutProviderCalls(t *testing.T) {
	p := providermocks.NewChainDataProvider(t)
	svc := newTestService(t, port.ProviderSet{entity.ChainFamilyEVM: p, entity.ChainFamilySolana: p}, nil, time.Minute)

	_, err := svc.GetWalletSnapshot(context.Background(), evmWallet, "DOGECHAIN")
	assert.ErrorIs(t, err, entity.ErrUnsupportedChain)

	_, err = svc.GetWalletSnapshot(context.Background(), "0x123", "ETHEREUM")
	assert.ErrorIs(t, err, entity.ErrInvalidAddress)

	_, err = svc.GetWalletSnapshot(context.Background(), evmWallet, "SOLANA")
	assert.ErrorIs(t, err, entity.ErrInvalidAddress)

	p.AssertNotCalled(t, "GetNativeBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetWalletSnapshot_MissingFamilyProvider(t *testing.T) {
	svc := newTestService(t, port.ProviderSet{}, nil, time.Minute)

	_, err := svc.GetWalletSnapshot(context.Background(), evmWallet, "ETHEREUM")
	assert.ErrorIs(t, err, entity.ErrUnsupportedChain)
}

// expectSingleTokenWallet registers a wallet holding one 18-decimal token worth 1 USD per unit.
func expectSingleTokenWallet(p *providermocks.ChainDataProvider) {
	p.On("GetNativeBalance", mock.Anything, mock.Anything, evmWallet).
		Return(entity.RawBalanceRecord{Address: evmWallet, RawAmount: "0", Decimals: 18}, nil).Once()
	p.On("GetTokenBalances", mock.Anything, mock.Anything, evmWallet).
		Return([]entity.RawBalanceRecord{
			{Address: junkAddress, RawAmount: "1000000000000000000", Decimals: 18, Symbol: "DAI", Name: "Dai Stablecoin"},
		}, nil).Once()
	p.On("GetNFTs", mock.Anything, mock.Anything, evmWallet).Return([]entity.RawNFT{}, nil).Once()
	p.On("GetTokenPrice", mock.Anything, mock.Anything, networkdefinition.Ethereum.NativeAssetAddress).
		Return(entity.TokenPrice{USDPrice: 2000}, nil).Once()
	p.On("GetTokenPrice", mock.Anything, mock.Anything, junkAddress).
		Return(entity.TokenPrice{USDPrice: 1}, nil).Once()
}

func TestGetWalletSnapshot_MetadataFallsBackToBalanceRecord(t *testing.T) {
	tests := []struct {
		name     string
		metadata []entity.TokenMetadata
		err      error
		want     entity.Asset
	}{
		{
			name: "empty metadata fields",
			metadata: []entity.TokenMetadata{
				{Address: junkAddress, Decimals: utils.ParseDecimals("")},
			},
			want: entity.Asset{Name: "Dai Stablecoin", Symbol: "DAI", Decimals: 18, Balance: "1", ValueUSD: 1},
		},
		{
			name: "metadata batch failure",
			err:  errors.New("provider returned status 502"),
			want: entity.Asset{Name: "Dai Stablecoin", Symbol: "DAI", Decimals: 18, Balance: "1", ValueUSD: 1},
		},
		{
			name: "reported metadata wins",
			metadata: []entity.TokenMetadata{
				{Address: junkAddress, Name: "Dai", Symbol: "DAI2", Decimals: 6, DecimalsKnown: true},
			},
			want: entity.Asset{Name: "Dai", Symbol: "DAI2", Decimals: 6, Balance: "1000000000000", ValueUSD: 1e12},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := providermocks.NewChainDataProvider(t)
			expectSingleTokenWallet(p)
			p.On("GetTokenMetadata", mock.Anything, mock.Anything, []string{junkAddress}).Return(tt.metadata, tt.err).Once()

			svc := newTestService(t, port.ProviderSet{entity.ChainFamilyEVM: p}, nil, time.Minute)

			snapshot, err := svc.GetWalletSnapshot(context.Background(), evmWallet, "ETHEREUM")
			require.NoError(t, err)
			require.Len(t, snapshot.Assets, 3)

			token := snapshot.Assets[1]
			assert.Equal(t, tt.want.Name, token.Name)
			assert.Equal(t, tt.want.Symbol, token.Symbol)
			assert.Equal(t, tt.want.Decimals, token.Decimals)
			assert.Equal(t, tt.want.Balance, token.Balance)
			assert.InDelta(t, tt.want.ValueUSD, token.ValueUSD, 1e-6)
			assert.InDelta(t, tt.want.ValueUSD, snapshot.TotalValueUSD, 1e-6)
		})
	}
}

func TestGetWalletSnapshot_NFTValuation(t *testing.T) {
	p := providermocks.NewChainDataProvider(t)
	p.On("GetNativeBalance", mock.Anything, mock.Anything, evmWallet).
		Return(entity.RawBalanceRecord{RawAmount: "0", Decimals: 18}, nil).Once()
	p.On("GetTokenBalances", mock.Anything, mock.Anything, evmWallet).Return([]entity.RawBalanceRecord{}, nil).Once()
	p.On("GetNFTs", mock.Anything, mock.Anything, evmWallet).Return([]entity.RawNFT{
		{ContractAddress: collectionA, TokenID: "1", Name: "Apes", OwnerOf: "0x2222222222222222222222222222222222222222", BlockTimestamp: "2024-01-01T00:00:00.000Z", BlockHash: "0xabc"},
		{ContractAddress: collectionA, TokenID: "2", Name: "Apes"},
		{ContractAddress: collectionB, TokenID: "7", Name: "Punks"},
	}, nil).Once()
	p.On("GetTokenPrice", mock.Anything, mock.Anything, networkdefinition.Ethereum.NativeAssetAddress).
		Return(entity.TokenPrice{USDPrice: 2000}, nil).Once()
	p.On("GetCollectionSaleStats", mock.Anything, mock.Anything, collectionA).Return(entity.SaleStats{
		Lowest:      &entity.SaleRecord{Price: "2000000000000000000", CurrentUSDValue: 5000},
		Average:     &entity.SaleRecord{Price: "3000000000000000000", CurrentUSDValue: 7500},
		Last:        &entity.SaleRecord{Price: "2500000000000000000", CurrentUSDValue: 6250, TransactionHash: "0xfeed"},
		TotalTrades: 12,
	}, nil).Once()
	p.On("GetCollectionSaleStats", mock.Anything, mock.Anything, collectionB).
		Return(entity.SaleStats{}, errors.New("rate limited")).Once()

	svc := newTestService(t, port.ProviderSet{entity.ChainFamilyEVM: p}, nil, time.Minute)

	snapshot, err := svc.GetWalletSnapshot(context.Background(), evmWallet, "ETHEREUM")
	require.NoError(t, err)
	require.Len(t, snapshot.NFTs, 3)

	for _, nft := range snapshot.NFTs[:2] {
		assert.Equal(t, 2.0, nft.FloorPriceNative)
		assert.Equal(t, 5000.0, nft.FloorPriceUSD)
		assert.Equal(t, 3.0, nft.AvgPriceNative)
		assert.Equal(t, 12, nft.TotalTrades)
		require.NotNil(t, nft.LastSale)
		assert.Equal(t, "0xfeed", nft.LastSale.TransactionHash)
		assert.Equal(t, "https://opensea.io/assets/ethereum/"+collectionA, nft.MarketplaceURL)
		assert.Equal(t, evmWallet, nft.Owner)
	}
	require.NotNil(t, snapshot.NFTs[0].LastTransfer)
	assert.Equal(t, "0x2222222222222222222222222222222222222222", snapshot.NFTs[0].LastTransfer.From)
	assert.Equal(t, evmWallet, snapshot.NFTs[0].LastTransfer.To)
	assert.Equal(t, "0xabc", snapshot.NFTs[0].LastTransfer.Hash)

	failed := snapshot.NFTs[2]
	assert.Zero(t, failed.FloorPriceUSD)
	assert.Nil(t, failed.LastSale)
	assert.Equal(t, "https://opensea.io/assets/ethereum/"+collectionB, failed.MarketplaceURL)

	aggregate := snapshot.Assets[len(snapshot.Assets)-1]
	assert.Equal(t, "3", aggregate.Balance)
	assert.InDelta(t, 10000, aggregate.ValueUSD, 1e-9)
	require.NotNil(t, aggregate.MarketData)
	assert.InDelta(t, 10000.0/3, aggregate.MarketData.PriceUSD, 1e-9)
	assert.InDelta(t, 10000, aggregate.MarketData.MarketCapUSD, 1e-9)
	assert.InDelta(t, 10000, snapshot.TotalValueUSD, 1e-9)

	p.AssertNumberOfCalls(t, "GetCollectionSaleStats", 2)
}

func TestGetWalletSnapshot_LedgerChain(t *testing.T) {
	const (
		baseMint       = "ABCmint111111111111111111111111111111111111"
		derivativeMint = "SABCmint11111111111111111111111111111111111"
		unpricedMint   = "XYZmint111111111111111111111111111111111111"
		nftMint        = "NFTmint111111111111111111111111111111111111"
	)

	sol := providermocks.NewChainDataProvider(t)
	sol.On("GetNativeBalance", mock.Anything, mock.Anything, solanaWallet).
		Return(entity.RawBalanceRecord{RawAmount: "2000000000", Decimals: 9}, nil).Once()
	sol.On("GetTokenBalances", mock.Anything, mock.Anything, solanaWallet).Return([]entity.RawBalanceRecord{
		{Address: derivativeMint, RawAmount: "3000000", Decimals: 6, Symbol: "SABC", Name: "Staked ABC"},
		{Address: baseMint, RawAmount: "1000000", Decimals: 6, Symbol: "ABC", Name: "ABC"},
		{Address: unpricedMint, RawAmount: "5", Decimals: 0, Symbol: "XYZ", Name: "Unknown Token"},
	}, nil).Once()
	sol.On("GetNFTs", mock.Anything, mock.Anything, solanaWallet).
		Return([]entity.RawNFT{{ContractAddress: nftMint, TokenID: nftMint, Name: "Degen"}}, nil).Once()
	sol.On("GetTokenPrice", mock.Anything, mock.Anything, baseMint).
		Return(entity.TokenPrice{USDPrice: 10}, nil).Once()
	sol.On("GetTokenPrice", mock.Anything, mock.Anything, unpricedMint).
		Return(entity.TokenPrice{}, fmt.Errorf("lookup: %w", entity.ErrNotFound)).Once()
	sol.On("GetCollectionSaleStats", mock.Anything, mock.Anything, nftMint).
		Return(entity.SaleStats{}, fmt.Errorf("sale stats: %w", entity.ErrUnsupportedOperation)).Once()

	evm := providermocks.NewChainDataProvider(t)
	evm.On("GetTokenPrice", mock.Anything, mock.Anything, "0xD31a59c85aE9D8edEFeC411D448f90841571b89c").
		Return(entity.TokenPrice{USDPrice: 150}, nil).Once()

	svc := newTestService(t, port.ProviderSet{entity.ChainFamilyEVM: evm, entity.ChainFamilySolana: sol}, nil, time.Minute)

	snapshot, err := svc.GetWalletSnapshot(context.Background(), solanaWallet, "SOLANA")
	require.NoError(t, err)
	require.Len(t, snapshot.Assets, 5)

	native := snapshot.Assets[0]
	assert.Equal(t, "SOL", native.Symbol)
	assert.Equal(t, "2", native.Balance)
	require.NotNil(t, native.MarketData)
	assert.Equal(t, 150.0, native.MarketData.PriceUSD)
	assert.InDelta(t, 300, native.ValueUSD, 1e-9)

	derivative := snapshot.Assets[1]
	assert.Equal(t, "SABC", derivative.Symbol)
	assert.Equal(t, entity.StandardSPL, derivative.Standard)
	require.NotNil(t, derivative.MarketData)
	assert.Equal(t, 10.0, derivative.MarketData.PriceUSD)
	assert.InDelta(t, 30, derivative.ValueUSD, 1e-9)

	base := snapshot.Assets[2]
	assert.Equal(t, "ABC", base.Symbol)
	assert.InDelta(t, 10, base.ValueUSD, 1e-9)

	unpriced := snapshot.Assets[3]
	assert.Nil(t, unpriced.MarketData)
	assert.Zero(t, unpriced.ValueUSD)

	require.Len(t, snapshot.NFTs, 1)
	assert.Nil(t, snapshot.NFTs[0].LastTransfer)
	assert.Empty(t, snapshot.NFTs[0].MarketplaceURL)
	assert.Equal(t, entity.NFTAggregateAddress, snapshot.Assets[4].ContractAddress)
	assert.Equal(t, "1", snapshot.Assets[4].Balance)

	assert.InDelta(t, 340, snapshot.TotalValueUSD, 1e-9)
	sol.AssertNotCalled(t, "GetTokenPrice", mock.Anything, mock.Anything, derivativeMint)
}

func TestResolveLedgerNativePrice_FallsBackAfterProxies(t *testing.T) {
	evm := providermocks.NewChainDataProvider(t)
	evm.On("GetTokenPrice", mock.Anything, mock.Anything, "0xD31a59c85aE9D8edEFeC411D448f90841571b89c").
		Return(entity.TokenPrice{}, errors.New("timeout")).Once()
	evm.On("GetTokenPrice", mock.Anything, mock.Anything, "0x570A5D26f7765Ecb712C0924E4De545B89fD43dF").
		Return(entity.TokenPrice{USDPrice: 0}, nil).Once()

	svc := newTestService(t, port.ProviderSet{entity.ChainFamilyEVM: evm}, nil, time.Minute)

	md := svc.resolveLedgerNativePrice(context.Background(), networkdefinition.Solana, fixedNow)
	assert.Equal(t, 100.0, md.PriceUSD)
	assert.Equal(t, fixedNow, md.LastUpdated)
}

func TestResolveLedgerNativePrice_SecondProxy(t *testing.T) {
	evm := providermocks.NewChainDataProvider(t)
	evm.On("GetTokenPrice", mock.Anything, mock.Anything, "0xD31a59c85aE9D8edEFeC411D448f90841571b89c").
		Return(entity.TokenPrice{}, errors.New("timeout")).Once()
	evm.On("GetTokenPrice", mock.Anything, mock.Anything, "0x570A5D26f7765Ecb712C0924E4De545B89fD43dF").
		Return(entity.TokenPrice{USDPrice: 142.5}, nil).Once()

	svc := newTestService(t, port.ProviderSet{entity.ChainFamilyEVM: evm}, nil, time.Minute)

	md := svc.resolveLedgerNativePrice(context.Background(), networkdefinition.Solana, fixedNow)
	assert.Equal(t, 142.5, md.PriceUSD)
}

func TestRefreshWalletRecord(t *testing.T) {
	p := providermocks.NewChainDataProvider(t)
	expectEmptyEVMWallet(p, 1)

	writer := storagemocks.NewSnapshotWriter(t)
	writer.On("SaveSnapshot", mock.Anything, "wallet-42", mock.MatchedBy(func(blob []byte) bool {
		var decoded entity.WalletSnapshot
		return json.Unmarshal(blob, &decoded) == nil && decoded.Address == evmWallet && len(decoded.Assets) == 2
	})).Return(nil).Once()

	svc := newTestService(t, port.ProviderSet{entity.ChainFamilyEVM: p}, writer, time.Minute)

	snapshot, err := svc.RefreshWalletRecord(context.Background(), "wallet-42", evmWallet, "ETHEREUM")
	require.NoError(t, err)
	assert.Equal(t, "ETHEREUM", snapshot.ChainID)
}

func TestRefreshWalletRecord_StoreFailure(t *testing.T) {
	p := providermocks.NewChainDataProvider(t)
	expectEmptyEVMWallet(p, 1)

	writer := storagemocks.NewSnapshotWriter(t)
	writer.On("SaveSnapshot", mock.Anything, "wallet-42", mock.Anything).Return(errors.New("connection refused")).Once()

	svc := newTestService(t, port.ProviderSet{entity.ChainFamilyEVM: p}, writer, time.Minute)

	_, err := svc.RefreshWalletRecord(context.Background(), "wallet-42", evmWallet, "ETHEREUM")
	assert.ErrorContains(t, err, "connection refused")
}

func TestRefreshWalletRecord_PersistenceDisabled(t *testing.T) {
	svc := newTestService(t, port.ProviderSet{}, nil, time.Minute)

	_, err := svc.RefreshWalletRecord(context.Background(), "wallet-42", evmWallet, "ETHEREUM")
	assert.ErrorIs(t, err, entity.ErrPersistenceDisabled)
}

func TestGetTokenMetadata(t *testing.T) {
	p := providermocks.NewChainDataProvider(t)
	p.On("GetTokenMetadata", mock.Anything, mock.Anything, []string{usdcAddress}).
		Return([]entity.TokenMetadata{{Address: usdcAddress, Symbol: "USDC", Decimals: 6}}, nil).Once()
	p.On("GetTokenMetadata", mock.Anything, mock.Anything, []string{junkAddress}).
		Return([]entity.TokenMetadata{}, nil).Once()

	svc := newTestService(t, port.ProviderSet{entity.ChainFamilyEVM: p}, nil, time.Minute)

	for i := 0; i < 2; i++ {
		metadata, err := svc.GetTokenMetadata(context.Background(), "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", "POLYGON")
		require.NoError(t, err)
		assert.Equal(t, "USDC", metadata.Symbol)
	}

	_, err := svc.GetTokenMetadata(context.Background(), junkAddress, "POLYGON")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestGetNFTMetadata(t *testing.T) {
	p := providermocks.NewChainDataProvider(t)
	p.On("GetNFTMetadata", mock.Anything, mock.Anything, collectionA, "1").
		Return(entity.NFTMetadata{ContractAddress: collectionA, TokenID: "1", Name: "Apes"}, nil).Once()
	p.On("GetNFTMetadata", mock.Anything, mock.Anything, collectionB, "9").
		Return(entity.NFTMetadata{}, fmt.Errorf("lookup: %w", entity.ErrNotFound)).Once()

	svc := newTestService(t, port.ProviderSet{entity.ChainFamilyEVM: p}, nil, time.Minute)

	for i := 0; i < 2; i++ {
		metadata, err := svc.GetNFTMetadata(context.Background(), collectionA, "1", "ETHEREUM")
		require.NoError(t, err)
		assert.Equal(t, "Apes", metadata.Name)
	}

	_, err := svc.GetNFTMetadata(context.Background(), collectionB, "9", "ETHEREUM")
	assert.ErrorIs(t, err, entity.ErrNotFound)

	_, err = svc.GetNFTMetadata(context.Background(), collectionB, " ", "ETHEREUM")
	assert.ErrorIs(t, err, entity.ErrInvalidAddress)
}

func TestListSupportedChains(t *testing.T) {
	svc := newTestService(t, port.ProviderSet{}, nil, time.Minute)

	chains := svc.ListSupportedChains()
	require.Len(t, chains, 24)
	assert.Equal(t, "ETHEREUM", chains[0].ID)
	assert.Equal(t, "SOLANA", chains[len(chains)-1].ID)
}
