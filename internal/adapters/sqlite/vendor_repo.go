package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/poochyard/internal/ports/secondary"
)

// VendorRepository implements secondary.VendorRepository with SQLite.
type VendorRepository struct {
	db *sql.DB
}

// NewVendorRepository creates a new SQLite vendor repository.
func NewVendorRepository(db *sql.DB) *VendorRepository {
	return &VendorRepository{db: db}
}

// Create persists a new vendor and returns its assigned ID.
func (r *VendorRepository) Create(ctx context.Context, vendor *secondary.VendorRecord) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO vendors (server_id, name, desired_mutation_1, desired_mutation_2, desired_mutation_3)
		VALUES (?, ?, ?, ?, ?)`,
		vendor.ServerID, vendor.Name,
		nullableText(vendor.DesiredMutations[0]),
		nullableText(vendor.DesiredMutations[1]),
		nullableText(vendor.DesiredMutations[2]),
	)
	if err != nil {
		if isConstraint(err) {
			return 0, fmt.Errorf("failed to create vendor: %w", secondary.ErrConstraint)
		}
		return 0, fmt.Errorf("failed to create vendor: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read vendor ID: %w", err)
	}
	return id, nil
}

// GetByID retrieves a vendor by its ID within a server.
func (r *VendorRepository) GetByID(ctx context.Context, serverID, id int64) (*secondary.VendorRecord, error) {
	record, err := scanVendor(r.db.QueryRowContext(ctx,
		`SELECT id, server_id, name, desired_mutation_1, desired_mutation_2, desired_mutation_3, created_at
		FROM vendors WHERE server_id = ? AND id = ?`,
		serverID, id,
	))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("vendor %d: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vendor: %w", err)
	}

	return record, nil
}

// ListByServer retrieves a server's vendors ordered by ID.
func (r *VendorRepository) ListByServer(ctx context.Context, serverID int64) ([]*secondary.VendorRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, server_id, name, desired_mutation_1, desired_mutation_2, desired_mutation_3, created_at
		FROM vendors WHERE server_id = ? ORDER BY id ASC`,
		serverID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	defer rows.Close()

	var vendors []*secondary.VendorRecord
	for rows.Next() {
		record, err := scanVendor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vendor: %w", err)
		}
		vendors = append(vendors, record)
	}

	return vendors, rows.Err()
}

// CountByServer returns the number of vendors in a server.
func (r *VendorRepository) CountByServer(ctx context.Context, serverID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM vendors WHERE server_id = ?`, serverID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count vendors: %w", err)
	}
	return count, nil
}

// AddStock inserts a stock row for a pooch.
func (r *VendorRepository) AddStock(ctx context.Context, stock *secondary.VendorStockRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO vendor_stock (server_id, vendor_id, pooch_id, price) VALUES (?, ?, ?, ?)`,
		stock.ServerID, stock.VendorID, stock.PoochID, stock.Price,
	)
	if err != nil {
		if isConstraint(err) {
			return fmt.Errorf("failed to add vendor stock: %w", secondary.ErrConstraint)
		}
		return fmt.Errorf("failed to add vendor stock: %w", err)
	}

	return nil
}

// GetStockEntry retrieves the stock row for one pooch of a vendor.
func (r *VendorRepository) GetStockEntry(ctx context.Context, serverID, vendorID, poochID int64) (*secondary.VendorStockRecord, error) {
	var record secondary.VendorStockRecord
	err := r.db.QueryRowContext(ctx,
		`SELECT server_id, vendor_id, pooch_id, price
		FROM vendor_stock WHERE server_id = ? AND vendor_id = ? AND pooch_id = ?`,
		serverID, vendorID, poochID,
	).Scan(&record.ServerID, &record.VendorID, &record.PoochID, &record.Price)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("stock entry for pooch %d: %w", poochID, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stock entry: %w", err)
	}

	return &record, nil
}

// ListStock retrieves a vendor's stocked pooches ordered by creation time
// then ID.
func (r *VendorRepository) ListStock(ctx context.Context, serverID, vendorID int64) ([]*secondary.PoochRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT p.id, p.server_id, p.name, p.age, p.sex, p.base_health, p.health_loss_age,
			p.breeding_cooldown, p.alive, p.virgin, p.owner_discord_id, p.vendor_id, p.created_at
		FROM pooches p
		JOIN vendor_stock vs ON vs.server_id = p.server_id AND vs.pooch_id = p.id
		WHERE vs.server_id = ? AND vs.vendor_id = ?
		ORDER BY p.created_at ASC, p.id ASC`,
		serverID, vendorID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendor stock: %w", err)
	}

	return collectPooches(rows)
}

// ClearStock removes every stock row of a vendor together with the
// stocked pooch rows. Stocked pooches exist only as inventory, so the
// rows go with the stock.
func (r *VendorRepository) ClearStock(ctx context.Context, serverID, vendorID int64) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin clear: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`DELETE FROM vendor_stock WHERE server_id = ? AND vendor_id = ?`,
		serverID, vendorID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to clear vendor stock: %w", err)
	}
	cleared, _ := result.RowsAffected()

	_, err = tx.ExecContext(ctx,
		`DELETE FROM pooches WHERE server_id = ? AND vendor_id = ?`,
		serverID, vendorID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete stocked pooches: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit clear: %w", err)
	}
	return int(cleared), nil
}

// RemoveStockEntry removes the stock row for one pooch, leaving the pooch
// itself in place.
func (r *VendorRepository) RemoveStockEntry(ctx context.Context, serverID, vendorID, poochID int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM vendor_stock WHERE server_id = ? AND vendor_id = ? AND pooch_id = ?`,
		serverID, vendorID, poochID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove stock entry: %w", err)
	}

	return requireRow(result, "stock entry for pooch", poochID)
}

func scanVendor(row rowScanner) (*secondary.VendorRecord, error) {
	var (
		record    secondary.VendorRecord
		mutations [3]sql.NullString
		createdAt time.Time
	)

	err := row.Scan(&record.ID, &record.ServerID, &record.Name,
		&mutations[0], &mutations[1], &mutations[2], &createdAt)
	if err != nil {
		return nil, err
	}

	for i := range mutations {
		if mutations[i].Valid {
			record.DesiredMutations[i] = &mutations[i].String
		}
	}
	record.CreatedAt = createdAt.Format(time.RFC3339)

	return &record, nil
}

func nullableText(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// Ensure VendorRepository implements the interface
var _ secondary.VendorRepository = (*VendorRepository)(nil)
