package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/poochyard/internal/ports/secondary"
)

// OwnerRepository implements secondary.OwnerRepository with SQLite.
type OwnerRepository struct {
	db *sql.DB
}

// NewOwnerRepository creates a new SQLite owner repository.
func NewOwnerRepository(db *sql.DB) *OwnerRepository {
	return &OwnerRepository{db: db}
}

// Create persists a new owner within a server.
func (r *OwnerRepository) Create(ctx context.Context, owner *secondary.OwnerRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO owners (server_id, discord_id, dollars, bloodskulls) VALUES (?, ?, ?, ?)`,
		owner.ServerID, owner.DiscordID, owner.Dollars, owner.Bloodskulls,
	)
	if err != nil {
		if isConstraint(err) {
			return fmt.Errorf("failed to create owner: %w", secondary.ErrConstraint)
		}
		return fmt.Errorf("failed to create owner: %w", err)
	}

	return nil
}

// Get retrieves an owner by (server, discord identity).
func (r *OwnerRepository) Get(ctx context.Context, serverID, discordID int64) (*secondary.OwnerRecord, error) {
	record, err := scanOwner(r.db.QueryRowContext(ctx,
		`SELECT server_id, discord_id, dollars, bloodskulls, created_at
		FROM owners WHERE server_id = ? AND discord_id = ?`,
		serverID, discordID,
	))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("owner %d: %w", discordID, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}

	return record, nil
}

// ListByServer retrieves all owners of a server ordered by discord ID.
func (r *OwnerRepository) ListByServer(ctx context.Context, serverID int64) ([]*secondary.OwnerRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT server_id, discord_id, dollars, bloodskulls, created_at
		FROM owners WHERE server_id = ? ORDER BY discord_id ASC`,
		serverID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list owners: %w", err)
	}
	defer rows.Close()

	var owners []*secondary.OwnerRecord
	for rows.Next() {
		record, err := scanOwner(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan owner: %w", err)
		}
		owners = append(owners, record)
	}

	return owners, rows.Err()
}

// AdjustDollars atomically adds delta to the owner's dollar balance.
func (r *OwnerRepository) AdjustDollars(ctx context.Context, serverID, discordID int64, delta int64) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE owners SET dollars = dollars + ? WHERE server_id = ? AND discord_id = ?`,
		delta, serverID, discordID,
	)
	if err != nil {
		return fmt.Errorf("failed to adjust dollars: %w", err)
	}

	return requireRow(result, "owner", discordID)
}

// AdjustBloodskulls atomically adds delta to the secondary currency.
func (r *OwnerRepository) AdjustBloodskulls(ctx context.Context, serverID, discordID int64, delta int64) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE owners SET bloodskulls = bloodskulls + ? WHERE server_id = ? AND discord_id = ?`,
		delta, serverID, discordID,
	)
	if err != nil {
		return fmt.Errorf("failed to adjust bloodskulls: %w", err)
	}

	return requireRow(result, "owner", discordID)
}

// Delete removes an owner and their kennels, children before parents:
// kennel memberships, then kennels, then the owner row.
func (r *OwnerRepository) Delete(ctx context.Context, serverID, discordID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin delete: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`DELETE FROM kennel_pooches WHERE server_id = ? AND kennel_id IN (
			SELECT id FROM kennels WHERE server_id = ? AND owner_discord_id = ?
		)`,
		serverID, serverID, discordID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete kennel memberships: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`DELETE FROM kennels WHERE server_id = ? AND owner_discord_id = ?`,
		serverID, discordID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete kennels: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`DELETE FROM owners WHERE server_id = ? AND discord_id = ?`,
		serverID, discordID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete owner: %w", err)
	}
	if err := requireRow(result, "owner", discordID); err != nil {
		return err
	}

	return tx.Commit()
}

func scanOwner(row rowScanner) (*secondary.OwnerRecord, error) {
	var (
		record    secondary.OwnerRecord
		createdAt time.Time
	)

	err := row.Scan(&record.ServerID, &record.DiscordID, &record.Dollars, &record.Bloodskulls, &createdAt)
	if err != nil {
		return nil, err
	}
	record.CreatedAt = createdAt.Format(time.RFC3339)

	return &record, nil
}

// Ensure OwnerRepository implements the interface
var _ secondary.OwnerRepository = (*OwnerRepository)(nil)
