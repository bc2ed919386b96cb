// Package sqlite contains SQLite implementations of the entity-store ports.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/poochyard/internal/ports/secondary"
)

// poochColumns is the column list every pooch scan uses. Keep in sync
// with scanPooch.
const poochColumns = `id, server_id, name, age, sex, base_health, health_loss_age,
	breeding_cooldown, alive, virgin, owner_discord_id, vendor_id, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPooch(row rowScanner) (*secondary.PoochRecord, error) {
	var (
		record    secondary.PoochRecord
		owner     sql.NullInt64
		vendor    sql.NullInt64
		createdAt time.Time
	)

	err := row.Scan(
		&record.ID, &record.ServerID, &record.Name, &record.Age, &record.Sex,
		&record.BaseHealth, &record.HealthLossAge, &record.BreedingCooldown,
		&record.Alive, &record.Virgin, &owner, &vendor, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	if owner.Valid {
		record.OwnerDiscordID = &owner.Int64
	}
	if vendor.Valid {
		record.VendorID = &vendor.Int64
	}
	record.CreatedAt = createdAt.Format(time.RFC3339)

	return &record, nil
}

func collectPooches(rows *sql.Rows) ([]*secondary.PoochRecord, error) {
	defer rows.Close()

	var pooches []*secondary.PoochRecord
	for rows.Next() {
		record, err := scanPooch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pooch: %w", err)
		}
		pooches = append(pooches, record)
	}

	return pooches, rows.Err()
}

// PoochRepository implements secondary.PoochRepository with SQLite.
type PoochRepository struct {
	db *sql.DB
}

// NewPoochRepository creates a new SQLite pooch repository.
func NewPoochRepository(db *sql.DB) *PoochRepository {
	return &PoochRepository{db: db}
}

// Create persists a new pooch and returns its assigned ID.
func (r *PoochRepository) Create(ctx context.Context, pooch *secondary.PoochRecord) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO pooches (server_id, name, age, sex, base_health, health_loss_age,
			breeding_cooldown, alive, virgin, owner_discord_id, vendor_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		pooch.ServerID, pooch.Name, pooch.Age, pooch.Sex, pooch.BaseHealth,
		pooch.HealthLossAge, pooch.BreedingCooldown, pooch.Alive, pooch.Virgin,
		nullableID(pooch.OwnerDiscordID), nullableID(pooch.VendorID),
	)
	if err != nil {
		if isConstraint(err) {
			return 0, fmt.Errorf("failed to create pooch: %w", secondary.ErrConstraint)
		}
		return 0, fmt.Errorf("failed to create pooch: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read pooch ID: %w", err)
	}
	return id, nil
}

// GetByID retrieves a pooch by its ID within a server.
func (r *PoochRepository) GetByID(ctx context.Context, serverID, id int64) (*secondary.PoochRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+poochColumns+` FROM pooches WHERE server_id = ? AND id = ?`,
		serverID, id,
	)

	record, err := scanPooch(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("pooch %d: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pooch: %w", err)
	}

	return record, nil
}

// ListAlive retrieves every living, non-fetal pooch across all servers.
func (r *PoochRepository) ListAlive(ctx context.Context) ([]*secondary.PoochRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+poochColumns+` FROM pooches
		WHERE alive = 1 AND age >= 0
		ORDER BY server_id ASC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list living pooches: %w", err)
	}

	return collectPooches(rows)
}

// ListByOwner retrieves an owner's living pooches.
func (r *PoochRepository) ListByOwner(ctx context.Context, serverID, ownerDiscordID int64) ([]*secondary.PoochRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+poochColumns+` FROM pooches
		WHERE server_id = ? AND owner_discord_id = ? AND alive = 1
		ORDER BY created_at ASC, id ASC`,
		serverID, ownerDiscordID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list owner pooches: %w", err)
	}

	return collectPooches(rows)
}

// UpdateVitals atomically writes the day-change fields of one pooch.
func (r *PoochRepository) UpdateVitals(ctx context.Context, serverID, id int64, age, healthLossAge, breedingCooldown int) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE pooches SET age = ?, health_loss_age = ?, breeding_cooldown = ?
		WHERE server_id = ? AND id = ?`,
		age, healthLossAge, breedingCooldown, serverID, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update pooch vitals: %w", err)
	}

	return requireRow(result, "pooch", id)
}

// SetCooldown sets the breeding cooldown of one pooch.
func (r *PoochRepository) SetCooldown(ctx context.Context, serverID, id int64, cooldown int) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE pooches SET breeding_cooldown = ? WHERE server_id = ? AND id = ?`,
		cooldown, serverID, id,
	)
	if err != nil {
		return fmt.Errorf("failed to set breeding cooldown: %w", err)
	}

	return requireRow(result, "pooch", id)
}

// ClearVirgin clears the virgin flag of one pooch.
func (r *PoochRepository) ClearVirgin(ctx context.Context, serverID, id int64) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE pooches SET virgin = 0 WHERE server_id = ? AND id = ?`,
		serverID, id,
	)
	if err != nil {
		return fmt.Errorf("failed to clear virgin flag: %w", err)
	}

	return requireRow(result, "pooch", id)
}

// MarkDead clears the alive flag of one pooch.
func (r *PoochRepository) MarkDead(ctx context.Context, serverID, id int64) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE pooches SET alive = 0 WHERE server_id = ? AND id = ?`,
		serverID, id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark pooch dead: %w", err)
	}

	return requireRow(result, "pooch", id)
}

// Materialize turns a fetal pooch into a newborn.
func (r *PoochRepository) Materialize(ctx context.Context, serverID, id int64, name, sex string, baseHealth int, ownerDiscordID *int64) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE pooches SET age = 0, name = ?, sex = ?, base_health = ?,
			owner_discord_id = ?, vendor_id = NULL
		WHERE server_id = ? AND id = ? AND age = -1`,
		name, sex, baseHealth, nullableID(ownerDiscordID), serverID, id,
	)
	if err != nil {
		if isConstraint(err) {
			return fmt.Errorf("failed to materialize pooch: %w", secondary.ErrConstraint)
		}
		return fmt.Errorf("failed to materialize pooch: %w", err)
	}

	return requireRow(result, "fetal pooch", id)
}

// TransferToOwner moves a pooch from vendor stock to a player owner.
func (r *PoochRepository) TransferToOwner(ctx context.Context, serverID, id, ownerDiscordID int64) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE pooches SET owner_discord_id = ?, vendor_id = NULL
		WHERE server_id = ? AND id = ?`,
		ownerDiscordID, serverID, id,
	)
	if err != nil {
		if isConstraint(err) {
			return fmt.Errorf("failed to transfer pooch: %w", secondary.ErrConstraint)
		}
		return fmt.Errorf("failed to transfer pooch: %w", err)
	}

	return requireRow(result, "pooch", id)
}

// Delete removes a pooch row.
func (r *PoochRepository) Delete(ctx context.Context, serverID, id int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM pooches WHERE server_id = ? AND id = ?`,
		serverID, id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete pooch: %w", err)
	}

	return requireRow(result, "pooch", id)
}

func nullableID(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}

func requireRow(result sql.Result, what string, id int64) error {
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("%s %d: %w", what, id, secondary.ErrNotFound)
	}
	return nil
}

// Ensure PoochRepository implements the interface
var _ secondary.PoochRepository = (*PoochRepository)(nil)
