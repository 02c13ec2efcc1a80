package client

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"portfolio_engine/internal/app/port"
	"portfolio_engine/internal/domain/entity"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

// EVMClient reads native balances from an EVM JSON-RPC node.
type EVMClient struct {
	ethClient      *ethclient.Client
	chain          entity.ChainDescriptor
	rpcURL         string
	rpcCallTimeout time.Duration
}

var _ port.NativeBalanceClient = (*EVMClient)(nil)

// NewEVMClient dials the chain's RPC URLs in order and keeps the first that connects.
func NewEVMClient(chain entity.ChainDescriptor, connectionTimeout, rpcCallTimeout time.Duration) (*EVMClient, error) {
	if chain.Family != entity.ChainFamilyEVM {
		return nil, fmt.Errorf("%w: %s is not an EVM chain", entity.ErrUnsupportedOperation, chain.ID)
	}
	if len(chain.RPCURLs) == 0 {
		return nil, fmt.Errorf("no RPC endpoints configured for network %s", chain.ID)
	}

	var lastErr error
	for _, rpcURL := range chain.RPCURLs {
		ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
		client, err := ethclient.DialContext(ctx, rpcURL)
		cancel()

		if err == nil {
			return &EVMClient{ethClient: client, chain: chain, rpcURL: rpcURL, rpcCallTimeout: rpcCallTimeout}, nil
		}
		lastErr = fmt.Errorf("failed to connect to RPC %s: %w", rpcURL, err)
	}

	return nil, fmt.Errorf("all RPC connection attempts failed for network %s: %w", chain.ID, lastErr)
}

// GetBalances fetches native balances of several wallets in one JSON-RPC batch.
// Per-item failures are reported on the item; the error covers the batch transport.
func (c *EVMClient) GetBalances(ctx context.Context, requests []entity.BalanceRequestItem) ([]entity.BalanceResultItem, error) {
	if len(requests) == 0 {
		return []entity.BalanceResultItem{}, nil
	}

	results := make([]entity.BalanceResultItem, len(requests))
	pending := make([]rpc.BatchElem, 0, len(requests))
	positions := make([]int, 0, len(requests))

	for i, reqItem := range requests {
		results[i] = entity.BalanceResultItem{
			RequestID:     reqItem.ID,
			WalletAddress: reqItem.WalletAddress,
		}
		if !common.IsHexAddress(reqItem.WalletAddress) {
			results[i].Error = fmt.Errorf("%w: %q", entity.ErrInvalidAddress, reqItem.WalletAddress)
			continue
		}
		pending = append(pending, rpc.BatchElem{
			Method: "eth_getBalance",
			Args:   []interface{}{common.HexToAddress(reqItem.WalletAddress), "latest"},
			Result: new(*hexutil.Big),
		})
		positions = append(positions, i)
	}
	if len(pending) == 0 {
		return results, nil
	}

	rpcCallCtx, cancel := context.WithTimeout(ctx, c.rpcCallTimeout)
	defer cancel()

	if err := c.ethClient.Client().BatchCallContext(rpcCallCtx, pending); err != nil {
		return results, fmt.Errorf("RPC batch call failed on %s: %w", c.chain.ID, err)
	}

	for j, elem := range pending {
		i := positions[j]
		if elem.Error != nil {
			results[i].Error = fmt.Errorf("failed to fetch native balance of %s: %w", requests[i].WalletAddress, elem.Error)
			continue
		}
		if result, ok := elem.Result.(**hexutil.Big); ok && result != nil && *result != nil {
			results[i].Balance = (*big.Int)(*result)
		} else {
			results[i].Balance = big.NewInt(0)
		}
	}
	return results, nil
}

// GetNativeBalance implements port.NativeBalanceClient.
func (c *EVMClient) GetNativeBalance(ctx context.Context, walletAddress string) (*big.Int, error) {
	results, err := c.GetBalances(ctx, []entity.BalanceRequestItem{{ID: walletAddress, WalletAddress: walletAddress}})
	if err != nil {
		return nil, err
	}
	if results[0].Error != nil {
		return nil, results[0].Error
	}
	return results[0].Balance, nil
}

// Chain implements port.NativeBalanceClient.
func (c *EVMClient) Chain() entity.ChainDescriptor {
	return c.chain
}

// Close releases the underlying RPC connection.
func (c *EVMClient) Close() {
	c.ethClient.Close()
}
