package primary

import "context"

// ServerService defines the primary port for server (tenant) operations.
type ServerService interface {
	// GetOrCreateServer fetches a server, creating it on first reference.
	GetOrCreateServer(ctx context.Context, serverID int64) (*Server, error)

	// ListServers lists every known server.
	ListServers(ctx context.Context) ([]*Server, error)

	// SetEventChannel records where day-change notifications for the
	// server should be posted. A server without one still simulates; the
	// presentation layer just skips its notifications.
	SetEventChannel(ctx context.Context, serverID, channelID int64) error

	// GetEventChannel returns the configured event channel, or nil.
	GetEventChannel(ctx context.Context, serverID int64) (*int64, error)
}

// Server represents a tenant at the port boundary.
type Server struct {
	ID             int64
	EventChannelID *int64
	CreatedAt      string
}
