package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"portfolio_engine/internal/app/port"
	"portfolio_engine/internal/domain/entity"
)

// PrefixClassifier treats a symbol as a derivative of "symbol minus Prefix"
// when it starts with Prefix and is longer than it.
//
// Known limitation: any unrelated token whose symbol happens to start with
// the prefix is misclassified (e.g. "SAND" maps to "AND").
type PrefixClassifier struct {
	Prefix string
}

var _ port.DerivativeClassifier = PrefixClassifier{}

func (c PrefixClassifier) IsDerivative(symbol string) bool {
	return c.Prefix != "" && len(symbol) > len(c.Prefix) && strings.HasPrefix(symbol, c.Prefix)
}

func (c PrefixClassifier) BaseSymbolOf(symbol string) string {
	if !c.IsDerivative(symbol) {
		return symbol
	}
	return strings.TrimPrefix(symbol, c.Prefix)
}

// PriceScope holds base-token prices resolved during one aggregation call.
// It is created per call and must not be shared between calls.
type PriceScope struct {
	mu     sync.RWMutex
	prices map[string]entity.MarketData
}

// NewPriceScope returns an empty scope.
func NewPriceScope() *PriceScope {
	return &PriceScope{prices: make(map[string]entity.MarketData)}
}

// Lookup returns the price stored under symbol. A nil scope always misses.
func (s *PriceScope) Lookup(symbol string) (entity.MarketData, bool) {
	if s == nil {
		return entity.MarketData{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	md, ok := s.prices[symbol]
	return md, ok
}

// Store records md under symbol. Storing into a nil scope is a no-op.
func (s *PriceScope) Store(symbol string, md entity.MarketData) {
	if s == nil || symbol == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prices[symbol] = md
}

// PriceResolver turns provider quotes into market data.
type PriceResolver struct {
	classifier port.DerivativeClassifier
	logger     port.Logger
	now        func() time.Time
}

// NewPriceResolver creates a new PriceResolver.
func NewPriceResolver(classifier port.DerivativeClassifier, logger port.Logger) *PriceResolver {
	return &PriceResolver{
		classifier: classifier,
		logger:     logger,
		now:        time.Now,
	}
}

// Fetch returns the provider quote of address as market data, without any fallback.
func (r *PriceResolver) Fetch(ctx context.Context, provider port.ChainDataProvider, chain entity.ChainDescriptor, address string) (entity.MarketData, error) {
	price, err := provider.GetTokenPrice(ctx, chain, address)
	if err != nil {
		return entity.MarketData{}, err
	}
	return price.MarketData(r.now().UTC()), nil
}

// ResolvePrice returns market data for a token or nil when none exists.
//
// A derivative symbol first tries the base symbol's price from scope and skips
// the provider on a hit. Successful non-derivative quotes are stored in scope
// under their own symbol. A zero quote counts as a miss.
func (r *PriceResolver) ResolvePrice(
	ctx context.Context,
	provider port.ChainDataProvider,
	chain entity.ChainDescriptor,
	address, symbol string,
	scope *PriceScope,
) *entity.MarketData {
	derivative := r.classifier.IsDerivative(symbol)
	baseSymbol := r.classifier.BaseSymbolOf(symbol)

	if derivative {
		if md, ok := scope.Lookup(baseSymbol); ok {
			r.logger.Debug("Derivative token priced from base symbol", "symbol", symbol, "base_symbol", baseSymbol)
			return &md
		}
	}

	md, ok := isolate(ctx, r.logger, "token_price", entity.MarketData{},
		func(ctx context.Context) (entity.MarketData, error) {
			return r.Fetch(ctx, provider, chain, address)
		}, "chain", chain.ID, "token", address, "symbol", symbol)
	if ok && md.PriceUSD != 0 {
		if !derivative {
			scope.Store(symbol, md)
		}
		return &md
	}

	if derivative {
		// The base token may have resolved while this lookup was in flight.
		if base, found := scope.Lookup(baseSymbol); found {
			return &base
		}
	}

	r.logger.Debug("No price found for token", "chain", chain.ID, "token", address, "symbol", symbol)
	return nil
}
