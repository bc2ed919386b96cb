package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/poochyard/internal/ports/secondary"
)

// ParentageRepository implements secondary.ParentageRepository with
// PostgreSQL. Family lookups are explicit join queries; nothing is cached.
type ParentageRepository struct {
	db *sql.DB
}

// NewParentageRepository creates a new PostgreSQL parentage repository.
func NewParentageRepository(db *sql.DB) *ParentageRepository {
	return &ParentageRepository{db: db}
}

// Create persists the parentage row for a child.
func (r *ParentageRepository) Create(ctx context.Context, parentage *secondary.ParentageRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO pooch_parentage (server_id, child_id, father_id, mother_id) VALUES ($1, $2, $3, $4)`,
		parentage.ServerID, parentage.ChildID,
		nullableID(parentage.FatherID), nullableID(parentage.MotherID),
	)
	if err != nil {
		if isConstraint(err) {
			return fmt.Errorf("failed to create parentage: %w", secondary.ErrConstraint)
		}
		return fmt.Errorf("failed to create parentage: %w", err)
	}

	return nil
}

// GetByChild retrieves the parentage row for a child.
func (r *ParentageRepository) GetByChild(ctx context.Context, serverID, childID int64) (*secondary.ParentageRecord, error) {
	var (
		record secondary.ParentageRecord
		father sql.NullInt64
		mother sql.NullInt64
	)

	err := r.db.QueryRowContext(ctx,
		`SELECT server_id, child_id, father_id, mother_id
		FROM pooch_parentage WHERE server_id = $1 AND child_id = $2`,
		serverID, childID,
	).Scan(&record.ServerID, &record.ChildID, &father, &mother)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("parentage for pooch %d: %w", childID, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get parentage: %w", err)
	}

	if father.Valid {
		record.FatherID = &father.Int64
	}
	if mother.Valid {
		record.MotherID = &mother.Int64
	}

	return &record, nil
}

// ListChildren retrieves every pooch naming the given pooch as father or
// mother, ordered by creation time then ID.
func (r *ParentageRepository) ListChildren(ctx context.Context, serverID, parentID int64) ([]*secondary.PoochRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT p.id, p.server_id, p.name, p.age, p.sex, p.base_health, p.health_loss_age,
			p.breeding_cooldown, p.alive, p.virgin, p.owner_discord_id, p.vendor_id, p.created_at
		FROM pooches p
		JOIN pooch_parentage pp ON pp.server_id = p.server_id AND pp.child_id = p.id
		WHERE pp.server_id = $1 AND (pp.father_id = $2 OR pp.mother_id = $2)
		ORDER BY p.created_at ASC, p.id ASC`,
		serverID, parentID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list children: %w", err)
	}

	return collectPooches(rows)
}

// ListFullSiblings retrieves every pooch other than excludeID sharing
// both the given father and mother, ordered by creation time then ID.
func (r *ParentageRepository) ListFullSiblings(ctx context.Context, serverID, fatherID, motherID, excludeID int64) ([]*secondary.PoochRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT p.id, p.server_id, p.name, p.age, p.sex, p.base_health, p.health_loss_age,
			p.breeding_cooldown, p.alive, p.virgin, p.owner_discord_id, p.vendor_id, p.created_at
		FROM pooches p
		JOIN pooch_parentage pp ON pp.server_id = p.server_id AND pp.child_id = p.id
		WHERE pp.server_id = $1 AND pp.father_id = $2 AND pp.mother_id = $3 AND p.id != $4
		ORDER BY p.created_at ASC, p.id ASC`,
		serverID, fatherID, motherID, excludeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list siblings: %w", err)
	}

	return collectPooches(rows)
}

// Ensure ParentageRepository implements the interface
var _ secondary.ParentageRepository = (*ParentageRepository)(nil)
