package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/poochyard/internal/ports/secondary"
)

// ServerRepository implements secondary.ServerRepository with PostgreSQL.
type ServerRepository struct {
	db *sql.DB
}

// NewServerRepository creates a new PostgreSQL server repository.
func NewServerRepository(db *sql.DB) *ServerRepository {
	return &ServerRepository{db: db}
}

// Create persists a new server.
func (r *ServerRepository) Create(ctx context.Context, server *secondary.ServerRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO servers (id, event_channel_id) VALUES ($1, $2)`,
		server.ID, nullableID(server.EventChannelID),
	)
	if err != nil {
		if isConstraint(err) {
			return fmt.Errorf("failed to create server: %w", secondary.ErrConstraint)
		}
		return fmt.Errorf("failed to create server: %w", err)
	}

	return nil
}

// GetByID retrieves a server by its ID.
func (r *ServerRepository) GetByID(ctx context.Context, id int64) (*secondary.ServerRecord, error) {
	record, err := scanServer(r.db.QueryRowContext(ctx,
		`SELECT id, event_channel_id, created_at FROM servers WHERE id = $1`, id,
	))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("server %d: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get server: %w", err)
	}

	return record, nil
}

// List retrieves all known servers ordered by ID.
func (r *ServerRepository) List(ctx context.Context) ([]*secondary.ServerRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, event_channel_id, created_at FROM servers ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list servers: %w", err)
	}
	defer rows.Close()

	var servers []*secondary.ServerRecord
	for rows.Next() {
		record, err := scanServer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan server: %w", err)
		}
		servers = append(servers, record)
	}

	return servers, rows.Err()
}

// SetEventChannel updates the event notification channel reference.
func (r *ServerRepository) SetEventChannel(ctx context.Context, serverID, channelID int64) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE servers SET event_channel_id = $1 WHERE id = $2`,
		channelID, serverID,
	)
	if err != nil {
		return fmt.Errorf("failed to set event channel: %w", err)
	}

	return requireRow(result, "server", serverID)
}

func scanServer(row rowScanner) (*secondary.ServerRecord, error) {
	var (
		record    secondary.ServerRecord
		channel   sql.NullInt64
		createdAt time.Time
	)

	if err := row.Scan(&record.ID, &channel, &createdAt); err != nil {
		return nil, err
	}

	if channel.Valid {
		record.EventChannelID = &channel.Int64
	}
	record.CreatedAt = createdAt.Format(time.RFC3339)

	return &record, nil
}

// Ensure ServerRepository implements the interface
var _ secondary.ServerRepository = (*ServerRepository)(nil)
