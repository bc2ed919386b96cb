package primary

import "context"

// VendorService defines the primary port for vendor operations.
type VendorService interface {
	// ListVendors lists a server's vendors.
	ListVendors(ctx context.Context, serverID int64) ([]*Vendor, error)

	// ListVendorStock lists the pooches a vendor has for sale, with prices.
	ListVendorStock(ctx context.Context, serverID, vendorID int64) ([]*StockedPooch, error)

	// BuyPooch purchases a stocked pooch for an owner: validates the stock
	// entry and the owner's balance, deducts the price, removes the stock
	// row and transfers ownership.
	BuyPooch(ctx context.Context, serverID, ownerDiscordID, vendorID, poochID int64) (*Pooch, error)

	// RestockServer tops the server up to the minimum vendor count and
	// regenerates every vendor's stock, using a generator built from seed.
	// The day-change engine performs the same restock as its third phase.
	RestockServer(ctx context.Context, serverID, seed int64) error
}

// Vendor represents a vendor at the port boundary.
type Vendor struct {
	ID               int64
	ServerID         int64
	Name             string
	DesiredMutations []string
	CreatedAt        string
}

// StockedPooch pairs a for-sale pooch with its price.
type StockedPooch struct {
	Pooch *Pooch
	Price int
}
