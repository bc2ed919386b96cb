package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/poochyard/internal/ports/secondary"
)

// GraveyardRepository implements secondary.GraveyardRepository with
// PostgreSQL.
type GraveyardRepository struct {
	db *sql.DB
}

// NewGraveyardRepository creates a new PostgreSQL graveyard repository.
func NewGraveyardRepository(db *sql.DB) *GraveyardRepository {
	return &GraveyardRepository{db: db}
}

// Bury records a deceased pooch in its owner's graveyard.
func (r *GraveyardRepository) Bury(ctx context.Context, entry *secondary.GraveyardRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO graveyard (server_id, owner_discord_id, pooch_id) VALUES ($1, $2, $3)`,
		entry.ServerID, entry.OwnerDiscordID, entry.PoochID,
	)
	if err != nil {
		if isConstraint(err) {
			return fmt.Errorf("failed to bury pooch: %w", secondary.ErrConstraint)
		}
		return fmt.Errorf("failed to bury pooch: %w", err)
	}

	return nil
}

// ListByOwner retrieves an owner's graveyard entries, oldest burial first.
func (r *GraveyardRepository) ListByOwner(ctx context.Context, serverID, ownerDiscordID int64) ([]*secondary.GraveyardRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT server_id, owner_discord_id, pooch_id, buried_at
		FROM graveyard WHERE server_id = $1 AND owner_discord_id = $2
		ORDER BY buried_at ASC, pooch_id ASC`,
		serverID, ownerDiscordID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list graveyard: %w", err)
	}
	defer rows.Close()

	var entries []*secondary.GraveyardRecord
	for rows.Next() {
		var (
			record   secondary.GraveyardRecord
			buriedAt time.Time
		)
		err := rows.Scan(&record.ServerID, &record.OwnerDiscordID, &record.PoochID, &buriedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan graveyard entry: %w", err)
		}
		record.BuriedAt = buriedAt.Format(time.RFC3339)
		entries = append(entries, &record)
	}

	return entries, rows.Err()
}

// Ensure GraveyardRepository implements the interface
var _ secondary.GraveyardRepository = (*GraveyardRepository)(nil)
