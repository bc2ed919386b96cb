// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives the entity store.
//
// Every record is scoped by ServerID; adapters must never let a mutation
// cross server boundaries. Each mutating call runs in its own transaction
// scope - commit on success, rollback on failure. A day change is
// deliberately not one big transaction.
package secondary

import "context"

// ServerRepository defines the secondary port for server persistence.
type ServerRepository interface {
	// Create persists a new server.
	Create(ctx context.Context, server *ServerRecord) error

	// GetByID retrieves a server by its ID.
	GetByID(ctx context.Context, id int64) (*ServerRecord, error)

	// List retrieves all known servers ordered by ID.
	List(ctx context.Context) ([]*ServerRecord, error)

	// SetEventChannel updates the event notification channel reference.
	SetEventChannel(ctx context.Context, serverID, channelID int64) error
}

// ServerRecord represents a server (tenant) as stored in persistence.
type ServerRecord struct {
	ID             int64
	EventChannelID *int64
	CreatedAt      string
}

// OwnerRepository defines the secondary port for owner persistence.
type OwnerRepository interface {
	// Create persists a new owner within a server.
	Create(ctx context.Context, owner *OwnerRecord) error

	// Get retrieves an owner by (server, discord identity).
	Get(ctx context.Context, serverID, discordID int64) (*OwnerRecord, error)

	// ListByServer retrieves all owners of a server ordered by discord ID.
	ListByServer(ctx context.Context, serverID int64) ([]*OwnerRecord, error)

	// AdjustDollars atomically adds delta (may be negative) to the owner's
	// dollar balance.
	AdjustDollars(ctx context.Context, serverID, discordID int64, delta int64) error

	// AdjustBloodskulls atomically adds delta to the secondary currency.
	AdjustBloodskulls(ctx context.Context, serverID, discordID int64, delta int64) error

	// Delete removes an owner and, children first, their kennels and
	// kennel memberships.
	Delete(ctx context.Context, serverID, discordID int64) error
}

// OwnerRecord represents a player as stored in persistence.
type OwnerRecord struct {
	ServerID    int64
	DiscordID   int64
	Dollars     int64
	Bloodskulls int64
	CreatedAt   string
}

// KennelRepository defines the secondary port for kennel persistence and
// kennel membership.
type KennelRepository interface {
	// Create persists a new kennel and returns its assigned ID.
	Create(ctx context.Context, kennel *KennelRecord) (int64, error)

	// GetByID retrieves a kennel by its ID within a server.
	GetByID(ctx context.Context, serverID, id int64) (*KennelRecord, error)

	// ListByOwner retrieves an owner's kennels ordered by creation time then ID.
	ListByOwner(ctx context.Context, serverID, ownerDiscordID int64) ([]*KennelRecord, error)

	// ListMembers retrieves the pooches in a kennel ordered by creation
	// time then ID.
	ListMembers(ctx context.Context, serverID, kennelID int64) ([]*PoochRecord, error)

	// CountMembers returns the current number of pooches in a kennel.
	CountMembers(ctx context.Context, serverID, kennelID int64) (int, error)

	// GetPoochKennel returns the kennel a pooch belongs to, or ErrNotFound
	// if it is unkenneled.
	GetPoochKennel(ctx context.Context, serverID, poochID int64) (*KennelRecord, error)

	// AddPooch inserts a kennel membership. A pooch belongs to at most one
	// kennel; a duplicate insert fails with ErrConstraint.
	AddPooch(ctx context.Context, serverID, kennelID, poochID int64) error

	// RemovePooch removes a pooch from whatever kennel holds it. Removing
	// an unkenneled pooch is a no-op.
	RemovePooch(ctx context.Context, serverID, poochID int64) error

	// Delete removes a kennel, memberships first.
	Delete(ctx context.Context, serverID, id int64) error
}

// KennelRecord represents a kennel as stored in persistence.
type KennelRecord struct {
	ID             int64
	ServerID       int64
	OwnerDiscordID int64
	Name           string
	PoochLimit     int
	CreatedAt      string
}

// PoochRepository defines the secondary port for pooch persistence.
type PoochRepository interface {
	// Create persists a new pooch and returns its assigned ID. At most one
	// of OwnerDiscordID/VendorID may be set; both set fails with
	// ErrConstraint.
	Create(ctx context.Context, pooch *PoochRecord) (int64, error)

	// GetByID retrieves a pooch by its ID within a server.
	GetByID(ctx context.Context, serverID, id int64) (*PoochRecord, error)

	// ListAlive retrieves every living, non-fetal pooch across all
	// servers, ordered by server ID then pooch ID.
	ListAlive(ctx context.Context) ([]*PoochRecord, error)

	// ListByOwner retrieves an owner's living pooches ordered by creation
	// time then ID.
	ListByOwner(ctx context.Context, serverID, ownerDiscordID int64) ([]*PoochRecord, error)

	// UpdateVitals atomically writes the day-change fields of one pooch.
	UpdateVitals(ctx context.Context, serverID, id int64, age, healthLossAge, breedingCooldown int) error

	// SetCooldown sets the breeding cooldown of one pooch.
	SetCooldown(ctx context.Context, serverID, id int64, cooldown int) error

	// ClearVirgin clears the virgin flag of one pooch.
	ClearVirgin(ctx context.Context, serverID, id int64) error

	// MarkDead clears the alive flag of one pooch.
	MarkDead(ctx context.Context, serverID, id int64) error

	// Materialize turns a fetal pooch into a newborn: age 0, the given
	// name, sex and base health, owned by the given owner (nil for
	// ownerless), vendor reference cleared.
	Materialize(ctx context.Context, serverID, id int64, name, sex string, baseHealth int, ownerDiscordID *int64) error

	// TransferToOwner moves a pooch from vendor stock to a player owner.
	TransferToOwner(ctx context.Context, serverID, id, ownerDiscordID int64) error

	// Delete removes a pooch row (used when vendor stock is cleared).
	Delete(ctx context.Context, serverID, id int64) error
}

// PoochRecord represents a pooch as stored in persistence.
// Age -1 marks a fetal pooch awaiting birth.
type PoochRecord struct {
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
	CreatedAt        string
}

// ParentageRepository defines the secondary port for the parentage
// relation and the family queries built on it.
type ParentageRepository interface {
	// Create persists the parentage row for a child. Either parent may be
	// nil. One row per child; duplicates fail with ErrConstraint.
	Create(ctx context.Context, parentage *ParentageRecord) error

	// GetByChild retrieves the parentage row for a child, or ErrNotFound.
	GetByChild(ctx context.Context, serverID, childID int64) (*ParentageRecord, error)

	// ListChildren retrieves every pooch naming the given pooch as father
	// or mother, ordered by creation time then ID.
	ListChildren(ctx context.Context, serverID, parentID int64) ([]*PoochRecord, error)

	// ListFullSiblings retrieves every pooch other than excludeID whose
	// parentage matches both the given father and mother, ordered by
	// creation time then ID.
	ListFullSiblings(ctx context.Context, serverID, fatherID, motherID, excludeID int64) ([]*PoochRecord, error)
}

// ParentageRecord represents a child's parent references.
type ParentageRecord struct {
	ServerID int64
	ChildID  int64
	FatherID *int64
	MotherID *int64
}

// PregnancyRepository defines the secondary port for pending births.
type PregnancyRepository interface {
	// Create persists a pregnancy. A fetus appears in at most one
	// pregnancy per server; duplicates fail with ErrConstraint.
	Create(ctx context.Context, pregnancy *PregnancyRecord) error

	// List retrieves every pending pregnancy across all servers in
	// insertion order.
	List(ctx context.Context) ([]*PregnancyRecord, error)

	// MotherIsPregnant reports whether the mother has a pending pregnancy.
	MotherIsPregnant(ctx context.Context, serverID, motherID int64) (bool, error)

	// Delete removes one pregnancy row.
	Delete(ctx context.Context, serverID, motherID, fetusID int64) error
}

// PregnancyRecord represents a pending birth.
type PregnancyRecord struct {
	ServerID  int64
	MotherID  int64
	FetusID   int64
	CreatedAt string
}

// VendorRepository defines the secondary port for vendor persistence and
// vendor stock.
type VendorRepository interface {
	// Create persists a new vendor and returns its assigned ID.
	Create(ctx context.Context, vendor *VendorRecord) (int64, error)

	// GetByID retrieves a vendor by its ID within a server.
	GetByID(ctx context.Context, serverID, id int64) (*VendorRecord, error)

	// ListByServer retrieves a server's vendors ordered by ID.
	ListByServer(ctx context.Context, serverID int64) ([]*VendorRecord, error)

	// CountByServer returns the number of vendors in a server.
	CountByServer(ctx context.Context, serverID int64) (int, error)

	// AddStock inserts a stock row for a pooch. A pooch appears in at
	// most one vendor's stock; duplicates fail with ErrConstraint.
	AddStock(ctx context.Context, stock *VendorStockRecord) error

	// GetStockEntry retrieves the stock row for one pooch of a vendor.
	GetStockEntry(ctx context.Context, serverID, vendorID, poochID int64) (*VendorStockRecord, error)

	// ListStock retrieves a vendor's stocked pooches ordered by creation
	// time then ID.
	ListStock(ctx context.Context, serverID, vendorID int64) ([]*PoochRecord, error)

	// ClearStock removes every stock row of a vendor together with the
	// stocked pooch rows, and returns how many were removed.
	ClearStock(ctx context.Context, serverID, vendorID int64) (int, error)

	// RemoveStockEntry removes the stock row for one pooch, leaving the
	// pooch itself in place (used by purchases).
	RemoveStockEntry(ctx context.Context, serverID, vendorID, poochID int64) error
}

// VendorRecord represents a vendor as stored in persistence.
// Desired mutations are schema-only: carried and persisted, unused by the
// engine.
type VendorRecord struct {
	ID               int64
	ServerID         int64
	Name             string
	DesiredMutations [3]*string
	CreatedAt        string
}

// VendorStockRecord represents one pooch offered for sale.
type VendorStockRecord struct {
	ServerID int64
	VendorID int64
	PoochID  int64
	Price    int
}

// GraveyardRepository defines the secondary port for the burial record.
type GraveyardRepository interface {
	// Bury appends a graveyard entry for a deceased, formerly-owned pooch.
	Bury(ctx context.Context, entry *GraveyardRecord) error

	// ListByOwner retrieves an owner's buried pooches ordered by burial
	// time then pooch ID.
	ListByOwner(ctx context.Context, serverID, ownerDiscordID int64) ([]*GraveyardRecord, error)
}

// GraveyardRecord represents one burial.
type GraveyardRecord struct {
	ServerID       int64
	OwnerDiscordID int64
	PoochID        int64
	BuriedAt       string
}
