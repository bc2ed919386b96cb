package primary

import "context"

// StartingDollars is the balance a freshly created owner begins with.
const StartingDollars = 100

// OwnerService defines the primary port for owner operations.
// Owners are created lazily on first interaction within a server.
type OwnerService interface {
	// GetOrCreateOwner fetches the owner, creating them (and their server,
	// if unseen) on first interaction.
	GetOrCreateOwner(ctx context.Context, serverID, discordID int64) (*Owner, error)

	// GetOwner retrieves an existing owner.
	GetOwner(ctx context.Context, serverID, discordID int64) (*Owner, error)

	// ListGraveyard lists an owner's buried pooches, oldest burial first.
	ListGraveyard(ctx context.Context, serverID, discordID int64) ([]*GraveyardEntry, error)
}

// Owner represents a player at the port boundary.
type Owner struct {
	ServerID    int64
	DiscordID   int64
	Dollars     int64
	Bloodskulls int64
	CreatedAt   string
}

// GraveyardEntry represents one buried pooch.
type GraveyardEntry struct {
	ServerID       int64
	OwnerDiscordID int64
	PoochID        int64
	BuriedAt       string
}
