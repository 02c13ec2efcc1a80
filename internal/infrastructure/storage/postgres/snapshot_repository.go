package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"portfolio_engine/internal/app/port"
	"portfolio_engine/internal/domain/entity"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SnapshotRepository stores serialized wallet snapshots in PostgreSQL.
type SnapshotRepository struct {
	pool *pgxpool.Pool
}

var (
	_ port.SnapshotWriter = (*SnapshotRepository)(nil)
	_ port.SnapshotReader = (*SnapshotRepository)(nil)
)

// NewSnapshotRepository creates a new PostgreSQL snapshot repository.
func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}

// SaveSnapshot upserts the snapshot blob of a wallet record.
func (r *SnapshotRepository) SaveSnapshot(ctx context.Context, walletID string, blob []byte) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO wallet_snapshots (wallet_id, data, updated_at)
		 VALUES ($1, $2::jsonb, NOW())
		 ON CONFLICT (wallet_id)
		 DO UPDATE SET data = $2::jsonb, updated_at = NOW()`,
		walletID, string(blob))
	if err != nil {
		return fmt.Errorf("saving snapshot of wallet record %s: %w", walletID, err)
	}
	return nil
}

// LoadSnapshot returns the stored blob of a wallet record and when it was written.
func (r *SnapshotRepository) LoadSnapshot(ctx context.Context, walletID string) ([]byte, time.Time, error) {
	var (
		data      []byte
		updatedAt time.Time
	)
	err := r.pool.QueryRow(ctx,
		`SELECT data, updated_at FROM wallet_snapshots WHERE wallet_id = $1`,
		walletID).Scan(&data, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, time.Time{}, fmt.Errorf("snapshot of wallet record %s: %w", walletID, entity.ErrNotFound)
		}
		return nil, time.Time{}, fmt.Errorf("loading snapshot of wallet record %s: %w", walletID, err)
	}
	return data, updatedAt, nil
}
