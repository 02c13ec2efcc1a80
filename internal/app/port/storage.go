package port

import (
	"context"
	"time"
)

// SnapshotWriter persists serialized snapshots keyed by wallet record id.
type SnapshotWriter interface {
	SaveSnapshot(ctx context.Context, walletID string, blob []byte) error
}

// SnapshotReader returns the last stored snapshot of a wallet record.
type SnapshotReader interface {
	LoadSnapshot(ctx context.Context, walletID string) ([]byte, time.Time, error)
}

// BannedTokenRegistry lists token addresses that consumers should exclude or flag.
// Addresses are lowercase.
type BannedTokenRegistry interface {
	BannedAddresses(ctx context.Context) (map[string]struct{}, error)
}
