package walletloader

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"portfolio_engine/internal/app/port"
	"portfolio_engine/internal/domain/entity"
	"portfolio_engine/internal/pkg/utils"
)

const defaultWalletFilePath = "data/wallets.txt"

// WalletFileLoader implements the port.WalletProvider interface by loading wallets from a file.
// Each non-empty line not starting with '#' holds one EVM or Solana address.
type WalletFileLoader struct {
	filePath string
	logger   port.Logger
}

// NewWalletFileLoader creates a new WalletFileLoader. An empty path selects the default file.
func NewWalletFileLoader(filePath string, logger port.Logger) port.WalletProvider {
	if filePath == "" {
		filePath = defaultWalletFilePath
	}
	return &WalletFileLoader{
		filePath: filePath,
		logger:   logger,
	}
}

// GetWallets reads wallet addresses from the configured file path.
// Lines that are neither EVM nor Solana addresses are skipped.
func (l *WalletFileLoader) GetWallets() ([]entity.Wallet, error) {
	file, err := os.Open(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open wallet file %s: %w", l.filePath, err)
	}
	defer file.Close()

	var wallets []entity.Wallet
	seen := make(map[string]struct{})
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		wallet, ok := parseWallet(line)
		if !ok {
			l.logger.Warn("Skipping invalid wallet address format", "file", l.filePath, "line_number", lineNum, "address", line)
			continue
		}
		if _, dup := seen[wallet.Address]; dup {
			continue
		}
		seen[wallet.Address] = struct{}{}
		wallets = append(wallets, wallet)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning wallet file %s: %w", l.filePath, err)
	}

	l.logger.Info("Wallets loaded successfully from file", "count", len(wallets), "path", l.filePath)
	return wallets, nil
}

func parseWallet(line string) (entity.Wallet, bool) {
	for _, family := range []entity.ChainFamily{entity.ChainFamilyEVM, entity.ChainFamilySolana} {
		if address, err := utils.CanonicalAddress(family, line); err == nil {
			return entity.Wallet{Address: address, Family: family}, true
		}
	}
	return entity.Wallet{}, false
}
