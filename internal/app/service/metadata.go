package service

import (
	"context"
	"fmt"
	"strings"

	"portfolio_engine/internal/domain/entity"
	"portfolio_engine/internal/infrastructure/cache"
	"portfolio_engine/internal/pkg/utils"
)

// GetTokenMetadata implements port.PortfolioService.
func (s *PortfolioServiceImpl) GetTokenMetadata(ctx context.Context, address, chainID string) (entity.TokenMetadata, error) {
	chain, err := s.registry.Describe(chainID)
	if err != nil {
		return entity.TokenMetadata{}, err
	}
	address, err = utils.CanonicalAddress(chain.Family, address)
	if err != nil {
		return entity.TokenMetadata{}, err
	}

	key := cache.TokenKey(address, chain.ID)
	if metadata, ok := s.caches.Tokens.Get(key); ok {
		return metadata, nil
	}

	provider, err := s.providerFor(chain)
	if err != nil {
		return entity.TokenMetadata{}, err
	}

	results, err := provider.GetTokenMetadata(ctx, chain, []string{address})
	if err != nil {
		s.logger.Error("Failed to fetch token metadata", "token", address, "chain", chain.ID, "error", err)
		return entity.TokenMetadata{}, fmt.Errorf("failed to fetch metadata of token %s on %s: %w", address, chain.ID, err)
	}
	if len(results) == 0 {
		return entity.TokenMetadata{}, fmt.Errorf("metadata of token %s on %s: %w", address, chain.ID, entity.ErrNotFound)
	}

	s.caches.Tokens.Set(key, results[0])
	return results[0], nil
}

// GetNFTMetadata implements port.PortfolioService.
func (s *PortfolioServiceImpl) GetNFTMetadata(ctx context.Context, contract, tokenID, chainID string) (entity.NFTMetadata, error) {
	chain, err := s.registry.Describe(chainID)
	if err != nil {
		return entity.NFTMetadata{}, err
	}
	contract, err = utils.CanonicalAddress(chain.Family, contract)
	if err != nil {
		return entity.NFTMetadata{}, err
	}
	tokenID = strings.TrimSpace(tokenID)
	if tokenID == "" {
		return entity.NFTMetadata{}, fmt.Errorf("%w: empty token id", entity.ErrInvalidAddress)
	}

	key := cache.NFTKey(contract, tokenID, chain.ID)
	if metadata, ok := s.caches.NFTs.Get(key); ok {
		return metadata, nil
	}

	provider, err := s.providerFor(chain)
	if err != nil {
		return entity.NFTMetadata{}, err
	}

	metadata, err := provider.GetNFTMetadata(ctx, chain, contract, tokenID)
	if err != nil {
		s.logger.Error("Failed to fetch NFT metadata", "contract", contract, "token_id", tokenID, "chain", chain.ID, "error", err)
		return entity.NFTMetadata{}, fmt.Errorf("failed to fetch metadata of NFT %s/%s on %s: %w", contract, tokenID, chain.ID, err)
	}

	s.caches.NFTs.Set(key, metadata)
	return metadata, nil
}
