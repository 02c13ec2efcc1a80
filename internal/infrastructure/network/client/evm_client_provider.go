package client

import (
	"fmt"
	"sync"
	"time"

	"portfolio_engine/internal/app/port"
	"portfolio_engine/internal/domain/entity"
	"portfolio_engine/internal/infrastructure/configloader"
)

// evmClientProvider implements port.NativeBalanceClientProvider.
type evmClientProvider struct {
	clients           map[string]*EVMClient
	mu                sync.Mutex
	logger            port.Logger
	connectionTimeout time.Duration
	rpcCallTimeout    time.Duration
}

// NewEVMClientProvider creates a new EVMClientProvider.
func NewEVMClientProvider(cfg *configloader.Config, logger port.Logger) port.NativeBalanceClientProvider {
	return &evmClientProvider{
		clients:           make(map[string]*EVMClient),
		logger:            logger,
		connectionTimeout: time.Duration(cfg.RPC.ConnectionTimeoutSeconds) * time.Second,
		rpcCallTimeout:    time.Duration(cfg.RPC.CallTimeoutSeconds) * time.Second,
	}
}

// GetClient returns the node client of chain, dialing it on first use.
func (p *evmClientProvider) GetClient(chain entity.ChainDescriptor) (port.NativeBalanceClient, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if client, exists := p.clients[chain.ID]; exists {
		p.logger.Debug("Returning cached EVM client", "network", chain.ID)
		return client, nil
	}

	p.logger.Info("Creating new EVM client", "network", chain.ID, "rpc_urls", len(chain.RPCURLs))
	newClient, err := NewEVMClient(chain, p.connectionTimeout, p.rpcCallTimeout)
	if err != nil {
		p.logger.Error("Failed to create EVM client", "network", chain.ID, "error", err)
		return nil, fmt.Errorf("failed to create EVM client for %s: %w", chain.ID, err)
	}

	p.clients[chain.ID] = newClient
	p.logger.Info("Successfully created and cached new EVM client", "network", chain.ID, "rpc_url", newClient.rpcURL)
	return newClient, nil
}

// Close closes every cached client. Later GetClient calls dial again.
func (p *evmClientProvider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for id, c := range p.clients {
		c.Close()
		delete(p.clients, id)
	}
	p.logger.Info("Closed EVM clients")
}
