package app

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/example/poochyard/internal/core/breeding"
	"github.com/example/poochyard/internal/core/economy"
	"github.com/example/poochyard/internal/names"
	"github.com/example/poochyard/internal/ports/primary"
	"github.com/example/poochyard/internal/ports/secondary"
)

// VendorServiceImpl implements the VendorService interface.
type VendorServiceImpl struct {
	vendorRepo secondary.VendorRepository
	poochRepo  secondary.PoochRepository
	ownerRepo  secondary.OwnerRepository
}

// NewVendorService creates a new VendorService with injected dependencies.
func NewVendorService(
	vendorRepo secondary.VendorRepository,
	poochRepo secondary.PoochRepository,
	ownerRepo secondary.OwnerRepository,
) *VendorServiceImpl {
	return &VendorServiceImpl{
		vendorRepo: vendorRepo,
		poochRepo:  poochRepo,
		ownerRepo:  ownerRepo,
	}
}

// ListVendors lists a server's vendors.
func (s *VendorServiceImpl) ListVendors(ctx context.Context, serverID int64) ([]*primary.Vendor, error) {
	records, err := s.vendorRepo.ListByServer(ctx, serverID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}

	vendors := make([]*primary.Vendor, len(records))
	for i, r := range records {
		vendors[i] = recordToVendor(r)
	}
	return vendors, nil
}

// ListVendorStock lists the pooches a vendor has for sale, with prices.
func (s *VendorServiceImpl) ListVendorStock(ctx context.Context, serverID, vendorID int64) ([]*primary.StockedPooch, error) {
	if _, err := s.vendorRepo.GetByID(ctx, serverID, vendorID); err != nil {
		return nil, err
	}

	records, err := s.vendorRepo.ListStock(ctx, serverID, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendor stock: %w", err)
	}

	stocked := make([]*primary.StockedPooch, len(records))
	for i, r := range records {
		entry, err := s.vendorRepo.GetStockEntry(ctx, serverID, vendorID, r.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get stock entry: %w", err)
		}
		stocked[i] = &primary.StockedPooch{
			Pooch: recordToPooch(r),
			Price: entry.Price,
		}
	}
	return stocked, nil
}

// BuyPooch purchases a stocked pooch for an owner.
func (s *VendorServiceImpl) BuyPooch(ctx context.Context, serverID, ownerDiscordID, vendorID, poochID int64) (*primary.Pooch, error) {
	owner, err := s.ownerRepo.Get(ctx, serverID, ownerDiscordID)
	if err != nil {
		return nil, err
	}

	entry, err := s.vendorRepo.GetStockEntry(ctx, serverID, vendorID, poochID)
	if err != nil {
		return nil, err
	}
	if owner.Dollars < int64(entry.Price) {
		return nil, fmt.Errorf("%w: owner %d has %d dollars, pooch costs %d",
			secondary.ErrConstraint, ownerDiscordID, owner.Dollars, entry.Price)
	}

	if err := s.ownerRepo.AdjustDollars(ctx, serverID, ownerDiscordID, -int64(entry.Price)); err != nil {
		return nil, fmt.Errorf("failed to charge owner: %w", err)
	}
	if err := s.vendorRepo.RemoveStockEntry(ctx, serverID, vendorID, poochID); err != nil {
		return nil, fmt.Errorf("failed to remove stock entry: %w", err)
	}
	if err := s.poochRepo.TransferToOwner(ctx, serverID, poochID, ownerDiscordID); err != nil {
		return nil, fmt.Errorf("failed to transfer pooch: %w", err)
	}

	record, err := s.poochRepo.GetByID(ctx, serverID, poochID)
	if err != nil {
		return nil, err
	}
	return recordToPooch(record), nil
}

// RestockServer tops the server up to the minimum vendor count and
// regenerates every vendor's stock.
func (s *VendorServiceImpl) RestockServer(ctx context.Context, serverID, seed int64) error {
	rng := rand.New(rand.NewSource(seed))
	return restockServer(ctx, s.vendorRepo, s.poochRepo, serverID, rng)
}

// restockServer is the restock pass shared by the vendor service and the
// day-change engine. Draw order is fixed: vendor names for any vendors
// created to reach the floor, then per vendor the stock size, then per
// pooch its name, sex, base health, and price.
func restockServer(
	ctx context.Context,
	vendorRepo secondary.VendorRepository,
	poochRepo secondary.PoochRepository,
	serverID int64,
	rng *rand.Rand,
) error {
	count, err := vendorRepo.CountByServer(ctx, serverID)
	if err != nil {
		return fmt.Errorf("failed to count vendors: %w", err)
	}
	for i := count; i < economy.MinVendorCount; i++ {
		_, err := vendorRepo.Create(ctx, &secondary.VendorRecord{
			ServerID: serverID,
			Name:     names.RandomVendorName(rng),
		})
		if err != nil {
			return fmt.Errorf("failed to create vendor: %w", err)
		}
	}

	vendors, err := vendorRepo.ListByServer(ctx, serverID)
	if err != nil {
		return fmt.Errorf("failed to list vendors: %w", err)
	}

	for _, vendor := range vendors {
		if _, err := vendorRepo.ClearStock(ctx, serverID, vendor.ID); err != nil {
			return fmt.Errorf("failed to clear stock for vendor %d: %w", vendor.ID, err)
		}

		size := economy.RollStockSize(rng)
		for i := 0; i < size; i++ {
			record := &secondary.PoochRecord{
				ServerID:         serverID,
				Name:             names.RandomDogName(rng),
				Age:              0,
				Sex:              names.RandomSex(rng),
				BaseHealth:       economy.RollBaseHealth(rng),
				BreedingCooldown: breeding.DefaultCooldown,
				Alive:            true,
				Virgin:           true,
				VendorID:         &vendor.ID,
			}
			price := economy.RollPrice(rng)

			poochID, err := poochRepo.Create(ctx, record)
			if err != nil {
				return fmt.Errorf("failed to create stock pooch: %w", err)
			}
			if err := vendorRepo.AddStock(ctx, &secondary.VendorStockRecord{
				ServerID: serverID,
				VendorID: vendor.ID,
				PoochID:  poochID,
				Price:    price,
			}); err != nil {
				return fmt.Errorf("failed to add stock entry: %w", err)
			}
		}
	}

	return nil
}

// Ensure VendorServiceImpl implements the interface
var _ primary.VendorService = (*VendorServiceImpl)(nil)
