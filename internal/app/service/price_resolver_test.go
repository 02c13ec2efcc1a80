package service

import (
	"context"
	"errors"
	"testing"

	"portfolio_engine/internal/domain/entity"
	networkdefinition "portfolio_engine/internal/infrastructure/network/definition"
	applog "portfolio_engine/internal/pkg/logger"
	providermocks "portfolio_engine/mocks/provider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPrefixClassifier(t *testing.T) {
	c := PrefixClassifier{Prefix: "S"}

	tests := []struct {
		symbol     string
		derivative bool
		base       string
	}{
		{"SABC", true, "ABC"},
		{"SSOL", true, "SOL"},
		{"ABC", false, "ABC"},
		{"S", false, "S"},
		{"", false, ""},
		{"sABC", false, "sABC"},
		{"SAND", true, "AND"},
	}
	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			assert.Equal(t, tt.derivative, c.IsDerivative(tt.symbol))
			assert.Equal(t, tt.base, c.BaseSymbolOf(tt.symbol))
		})
	}

	assert.False(t, PrefixClassifier{}.IsDerivative("SABC"))
}

func TestPriceScope(t *testing.T) {
	var nilScope *PriceScope
	nilScope.Store("ABC", entity.MarketData{PriceUSD: 1})
	_, ok := nilScope.Lookup("ABC")
	assert.False(t, ok)

	scope := NewPriceScope()
	scope.Store("", entity.MarketData{PriceUSD: 1})
	_, ok = scope.Lookup("")
	assert.False(t, ok)

	scope.Store("ABC", entity.MarketData{PriceUSD: 2})
	md, ok := scope.Lookup("ABC")
	require.True(t, ok)
	assert.Equal(t, 2.0, md.PriceUSD)
}

func TestResolvePrice(t *testing.T) {
	const (
		base       = "ABCmint111111111111111111111111111111111111"
		derivative = "SABCmint11111111111111111111111111111111111"
		zeroQuoted = "ZEROmint11111111111111111111111111111111111"
		orphan     = "SXYZmint11111111111111111111111111111111111"
	)

	p := providermocks.NewChainDataProvider(t)
	p.On("GetTokenPrice", mock.Anything, mock.Anything, base).Return(entity.TokenPrice{USDPrice: 4.2, MarketCapUSD: 1e6}, nil).Once()
	p.On("GetTokenPrice", mock.Anything, mock.Anything, zeroQuoted).Return(entity.TokenPrice{USDPrice: 0}, nil).Once()
	p.On("GetTokenPrice", mock.Anything, mock.Anything, orphan).Return(entity.TokenPrice{}, errors.New("boom")).Once()

	r := NewPriceResolver(PrefixClassifier{Prefix: "S"}, applog.FromZap(zap.NewNop()))
	scope := NewPriceScope()
	chain := networkdefinition.Solana

	md := r.ResolvePrice(context.Background(), p, chain, base, "ABC", scope)
	require.NotNil(t, md)
	assert.Equal(t, 4.2, md.PriceUSD)

	stored, ok := scope.Lookup("ABC")
	require.True(t, ok)
	assert.Equal(t, 1e6, stored.MarketCapUSD)

	md = r.ResolvePrice(context.Background(), p, chain, derivative, "SABC", scope)
	require.NotNil(t, md)
	assert.Equal(t, 4.2, md.PriceUSD)
	p.AssertNotCalled(t, "GetTokenPrice", mock.Anything, mock.Anything, derivative)

	assert.Nil(t, r.ResolvePrice(context.Background(), p, chain, zeroQuoted, "ZERO", scope))
	_, ok = scope.Lookup("ZERO")
	assert.False(t, ok, "zero quotes are not stored")

	assert.Nil(t, r.ResolvePrice(context.Background(), p, chain, orphan, "SXYZ", scope))
}

func TestResolvePrice_DerivativeQuoteNotStored(t *testing.T) {
	const mint = "SABCmint11111111111111111111111111111111111"

	p := providermocks.NewChainDataProvider(t)
	p.On("GetTokenPrice", mock.Anything, mock.Anything, mint).Return(entity.TokenPrice{USDPrice: 9}, nil).Once()

	r := NewPriceResolver(PrefixClassifier{Prefix: "S"}, applog.FromZap(zap.NewNop()))
	scope := NewPriceScope()

	md := r.ResolvePrice(context.Background(), p, networkdefinition.Solana, mint, "SABC", scope)
	require.NotNil(t, md)
	assert.Equal(t, 9.0, md.PriceUSD)

	_, ok := scope.Lookup("SABC")
	assert.False(t, ok)
	_, ok = scope.Lookup("ABC")
	assert.False(t, ok)
}

func TestIsolate(t *testing.T) {
	log := applog.FromZap(zap.NewNop())

	value, ok := isolate(context.Background(), log, "op", -1, func(context.Context) (int, error) { return 7, nil })
	assert.True(t, ok)
	assert.Equal(t, 7, value)

	value, ok = isolate(context.Background(), log, "op", -1, func(context.Context) (int, error) {
		return 0, errors.New("failed")
	})
	assert.False(t, ok)
	assert.Equal(t, -1, value)

	value, ok = isolate(context.Background(), log, "op", -1, func(context.Context) (int, error) {
		return 0, entity.ErrUnsupportedOperation
	})
	assert.False(t, ok)
	assert.Equal(t, -1, value)
}
