package primary

import "context"

// DefaultPoochLimit is the capacity a kennel gets when none is specified.
const DefaultPoochLimit = 10

// KennelService defines the primary port for kennel operations.
type KennelService interface {
	// GetKennel retrieves a kennel by ID within a server.
	GetKennel(ctx context.Context, serverID, kennelID int64) (*Kennel, error)

	// ListKennels lists an owner's kennels.
	ListKennels(ctx context.Context, serverID, ownerDiscordID int64) ([]*Kennel, error)

	// ListKennelPooches lists the pooches housed in a kennel.
	ListKennelPooches(ctx context.Context, serverID, kennelID int64) ([]*Pooch, error)

	// CreateKennel creates a kennel for an owner. A poochLimit of zero
	// applies DefaultPoochLimit.
	CreateKennel(ctx context.Context, serverID, ownerDiscordID int64, name string, poochLimit int) (*Kennel, error)

	// AddPoochToKennel places a pooch in a kennel. Fails when the kennel
	// is at capacity or the pooch is already kenneled.
	AddPoochToKennel(ctx context.Context, serverID, kennelID, poochID int64) error

	// RemovePoochFromKennel removes a pooch from its kennel.
	RemovePoochFromKennel(ctx context.Context, serverID, poochID int64) error
}

// Kennel represents a kennel at the port boundary.
type Kennel struct {
	ID             int64
	ServerID       int64
	OwnerDiscordID int64
	Name           string
	PoochLimit     int
	Occupancy      int
	CreatedAt      string
}
