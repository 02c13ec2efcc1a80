package tokenloader

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"sync"

	"portfolio_engine/internal/app/port"
	"portfolio_engine/internal/domain/entity"
	"portfolio_engine/internal/pkg/utils"
)

const defaultBanFilePath = "data/banned_tokens.json"

// BannedTokenFileLoader implements port.BannedTokenRegistry over a JSON file
// holding a list of entity.BannedToken. The file is read once, on first use.
type BannedTokenFileLoader struct {
	filePath string
	logger   port.Logger

	once   sync.Once
	banned map[string]struct{}
	err    error
}

var _ port.BannedTokenRegistry = (*BannedTokenFileLoader)(nil)

// NewBannedTokenLoader creates a new BannedTokenFileLoader. An empty path
// selects the default file location.
func NewBannedTokenLoader(filePath string, logger port.Logger) port.BannedTokenRegistry {
	if filePath == "" {
		filePath = defaultBanFilePath
	}
	return &BannedTokenFileLoader{
		filePath: filePath,
		logger:   logger,
	}
}

// BannedAddresses returns the lowercase addresses of banned tokens.
// A missing file yields an empty set.
func (l *BannedTokenFileLoader) BannedAddresses(_ context.Context) (map[string]struct{}, error) {
	l.once.Do(l.load)
	return l.banned, l.err
}

func (l *BannedTokenFileLoader) load() {
	tokens, err := utils.LoadJSONFile[entity.BannedToken](l.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Warn("Token ban file not found, no tokens are banned", "path", l.filePath)
			l.banned = map[string]struct{}{}
			return
		}
		l.logger.Error("Failed to load token ban file", "path", l.filePath, "error", err)
		l.err = err
		return
	}

	l.banned = make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		address := strings.ToLower(strings.TrimSpace(token.Address))
		if address == "" {
			l.logger.Warn("Skipping banned token without address", "path", l.filePath, "symbol", token.Symbol)
			continue
		}
		l.banned[address] = struct{}{}
	}
	l.logger.Info("Token ban list loaded", "path", l.filePath, "count", len(l.banned))
}
