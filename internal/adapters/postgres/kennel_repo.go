package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/poochyard/internal/ports/secondary"
)

// KennelRepository implements secondary.KennelRepository with PostgreSQL.
type KennelRepository struct {
	db *sql.DB
}

// NewKennelRepository creates a new PostgreSQL kennel repository.
func NewKennelRepository(db *sql.DB) *KennelRepository {
	return &KennelRepository{db: db}
}

// Create persists a new kennel and returns its assigned ID.
func (r *KennelRepository) Create(ctx context.Context, kennel *secondary.KennelRecord) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO kennels (server_id, owner_discord_id, name, pooch_limit)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		kennel.ServerID, kennel.OwnerDiscordID, kennel.Name, kennel.PoochLimit,
	).Scan(&id)
	if err != nil {
		if isConstraint(err) {
			return 0, fmt.Errorf("failed to create kennel: %w", secondary.ErrConstraint)
		}
		return 0, fmt.Errorf("failed to create kennel: %w", err)
	}

	return id, nil
}

// GetByID retrieves a kennel by its ID within a server.
func (r *KennelRepository) GetByID(ctx context.Context, serverID, id int64) (*secondary.KennelRecord, error) {
	record, err := scanKennel(r.db.QueryRowContext(ctx,
		`SELECT id, server_id, owner_discord_id, name, pooch_limit, created_at
		FROM kennels WHERE server_id = $1 AND id = $2`,
		serverID, id,
	))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("kennel %d: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kennel: %w", err)
	}

	return record, nil
}

// ListByOwner retrieves an owner's kennels ordered by creation time then ID.
func (r *KennelRepository) ListByOwner(ctx context.Context, serverID, ownerDiscordID int64) ([]*secondary.KennelRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, server_id, owner_discord_id, name, pooch_limit, created_at
		FROM kennels WHERE server_id = $1 AND owner_discord_id = $2
		ORDER BY created_at ASC, id ASC`,
		serverID, ownerDiscordID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list kennels: %w", err)
	}
	defer rows.Close()

	var kennels []*secondary.KennelRecord
	for rows.Next() {
		record, err := scanKennel(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan kennel: %w", err)
		}
		kennels = append(kennels, record)
	}

	return kennels, rows.Err()
}

// ListMembers retrieves the pooches in a kennel ordered by creation time
// then ID.
func (r *KennelRepository) ListMembers(ctx context.Context, serverID, kennelID int64) ([]*secondary.PoochRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT p.id, p.server_id, p.name, p.age, p.sex, p.base_health, p.health_loss_age,
			p.breeding_cooldown, p.alive, p.virgin, p.owner_discord_id, p.vendor_id, p.created_at
		FROM pooches p
		JOIN kennel_pooches kp ON kp.server_id = p.server_id AND kp.pooch_id = p.id
		WHERE kp.server_id = $1 AND kp.kennel_id = $2
		ORDER BY p.created_at ASC, p.id ASC`,
		serverID, kennelID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list kennel members: %w", err)
	}

	return collectPooches(rows)
}

// CountMembers returns the current number of pooches in a kennel.
func (r *KennelRepository) CountMembers(ctx context.Context, serverID, kennelID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM kennel_pooches WHERE server_id = $1 AND kennel_id = $2`,
		serverID, kennelID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count kennel members: %w", err)
	}
	return count, nil
}

// GetPoochKennel returns the kennel a pooch belongs to.
func (r *KennelRepository) GetPoochKennel(ctx context.Context, serverID, poochID int64) (*secondary.KennelRecord, error) {
	record, err := scanKennel(r.db.QueryRowContext(ctx,
		`SELECT k.id, k.server_id, k.owner_discord_id, k.name, k.pooch_limit, k.created_at
		FROM kennels k
		JOIN kennel_pooches kp ON kp.server_id = k.server_id AND kp.kennel_id = k.id
		WHERE kp.server_id = $1 AND kp.pooch_id = $2`,
		serverID, poochID,
	))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("kennel for pooch %d: %w", poochID, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pooch kennel: %w", err)
	}

	return record, nil
}

// AddPooch inserts a kennel membership.
func (r *KennelRepository) AddPooch(ctx context.Context, serverID, kennelID, poochID int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO kennel_pooches (server_id, kennel_id, pooch_id) VALUES ($1, $2, $3)`,
		serverID, kennelID, poochID,
	)
	if err != nil {
		if isConstraint(err) {
			return fmt.Errorf("failed to add pooch to kennel: %w", secondary.ErrConstraint)
		}
		return fmt.Errorf("failed to add pooch to kennel: %w", err)
	}

	return nil
}

// RemovePooch removes a pooch from whatever kennel holds it.
func (r *KennelRepository) RemovePooch(ctx context.Context, serverID, poochID int64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM kennel_pooches WHERE server_id = $1 AND pooch_id = $2`,
		serverID, poochID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove pooch from kennel: %w", err)
	}

	return nil
}

// Delete removes a kennel, memberships first.
func (r *KennelRepository) Delete(ctx context.Context, serverID, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin delete: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`DELETE FROM kennel_pooches WHERE server_id = $1 AND kennel_id = $2`,
		serverID, id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete kennel memberships: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`DELETE FROM kennels WHERE server_id = $1 AND id = $2`,
		serverID, id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete kennel: %w", err)
	}
	if err := requireRow(result, "kennel", id); err != nil {
		return err
	}

	return tx.Commit()
}

func scanKennel(row rowScanner) (*secondary.KennelRecord, error) {
	var (
		record    secondary.KennelRecord
		createdAt time.Time
	)

	err := row.Scan(&record.ID, &record.ServerID, &record.OwnerDiscordID,
		&record.Name, &record.PoochLimit, &createdAt)
	if err != nil {
		return nil, err
	}
	record.CreatedAt = createdAt.Format(time.RFC3339)

	return &record, nil
}

// Ensure KennelRepository implements the interface
var _ secondary.KennelRepository = (*KennelRepository)(nil)
