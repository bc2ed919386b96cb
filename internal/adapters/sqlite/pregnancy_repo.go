package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/poochyard/internal/ports/secondary"
)

// PregnancyRepository implements secondary.PregnancyRepository with SQLite.
type PregnancyRepository struct {
	db *sql.DB
}

// NewPregnancyRepository creates a new SQLite pregnancy repository.
func NewPregnancyRepository(db *sql.DB) *PregnancyRepository {
	return &PregnancyRepository{db: db}
}

// Create persists a pregnancy.
func (r *PregnancyRepository) Create(ctx context.Context, pregnancy *secondary.PregnancyRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO pooch_pregnancies (server_id, mother_id, fetus_id) VALUES (?, ?, ?)`,
		pregnancy.ServerID, pregnancy.MotherID, pregnancy.FetusID,
	)
	if err != nil {
		if isConstraint(err) {
			return fmt.Errorf("failed to create pregnancy: %w", secondary.ErrConstraint)
		}
		return fmt.Errorf("failed to create pregnancy: %w", err)
	}

	return nil
}

// List retrieves every pending pregnancy across all servers in insertion
// order.
func (r *PregnancyRepository) List(ctx context.Context) ([]*secondary.PregnancyRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT server_id, mother_id, fetus_id, created_at
		FROM pooch_pregnancies
		ORDER BY created_at ASC, fetus_id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list pregnancies: %w", err)
	}
	defer rows.Close()

	var pregnancies []*secondary.PregnancyRecord
	for rows.Next() {
		var (
			record    secondary.PregnancyRecord
			createdAt time.Time
		)
		if err := rows.Scan(&record.ServerID, &record.MotherID, &record.FetusID, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan pregnancy: %w", err)
		}
		record.CreatedAt = createdAt.Format(time.RFC3339)
		pregnancies = append(pregnancies, &record)
	}

	return pregnancies, rows.Err()
}

// MotherIsPregnant reports whether the mother has a pending pregnancy.
func (r *PregnancyRepository) MotherIsPregnant(ctx context.Context, serverID, motherID int64) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM pooch_pregnancies WHERE server_id = ? AND mother_id = ?`,
		serverID, motherID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check pregnancy: %w", err)
	}
	return count > 0, nil
}

// Delete removes one pregnancy row.
func (r *PregnancyRepository) Delete(ctx context.Context, serverID, motherID, fetusID int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM pooch_pregnancies WHERE server_id = ? AND mother_id = ? AND fetus_id = ?`,
		serverID, motherID, fetusID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete pregnancy: %w", err)
	}

	return requireRow(result, "pregnancy for fetus", fetusID)
}

// Ensure PregnancyRepository implements the interface
var _ secondary.PregnancyRepository = (*PregnancyRepository)(nil)
