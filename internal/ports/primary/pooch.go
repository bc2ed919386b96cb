package primary

import "context"

// PoochService defines the primary port for pooch operations.
type PoochService interface {
	// GetPooch retrieves a pooch by ID within a server.
	GetPooch(ctx context.Context, serverID, poochID int64) (*Pooch, error)

	// ListOwnerPooches lists an owner's living pooches.
	ListOwnerPooches(ctx context.Context, serverID, ownerDiscordID int64) ([]*Pooch, error)

	// BreedPooches creates a pregnancy from an eligible father/mother
	// pair and returns the fetal pooch awaiting birth. Both parents go on
	// breeding cooldown and lose their virgin flag.
	BreedPooches(ctx context.Context, serverID, fatherID, motherID int64) (*Pooch, error)
}

// Pooch represents a pooch at the port boundary. Health and Status are
// derived from the stored vitals at conversion time.
type Pooch struct {
	ID               int64
	ServerID         int64
	Name             string
	Age              int
	Sex              string
	BaseHealth       int
	HealthLossAge    int
	BreedingCooldown int
	Alive            bool
	Virgin           bool
	OwnerDiscordID   *int64
	VendorID         *int64
	Health           int
	Status           string
	CreatedAt        string
}

// FamilyService defines the primary port for family graph resolution.
type FamilyService interface {
	// GetFamily resolves the parents, children and full siblings of a
	// pooch. Missing parent references are omitted; siblings are empty
	// unless both parents are known.
	GetFamily(ctx context.Context, serverID, poochID int64) (*Family, error)
}

// Family is the resolved family graph for one pooch. Children and
// siblings are ordered by creation time then ID.
type Family struct {
	Parents  []*Pooch
	Children []*Pooch
	Siblings []*Pooch
}
