package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/example/poochyard/internal/adapters/sqlite"
	"github.com/example/poochyard/internal/ports/secondary"
)

func TestVendorRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewVendorRepository(db)
	ctx := context.Background()

	serverID := seedServer(t, db, 0)

	t.Run("creates vendor successfully", func(t *testing.T) {
		mutation := "mange-resistant"
		id, err := repo.Create(ctx, &secondary.VendorRecord{
			ServerID:         serverID,
			Name:             "Horace Grimsby",
			DesiredMutations: [3]*string{&mutation, nil, nil},
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		got, err := repo.GetByID(ctx, serverID, id)
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if got.Name != "Horace Grimsby" {
			t.Errorf("Name = %q, want %q", got.Name, "Horace Grimsby")
		}
		if got.DesiredMutations[0] == nil || *got.DesiredMutations[0] != mutation {
			t.Errorf("DesiredMutations[0] = %v, want %q", got.DesiredMutations[0], mutation)
		}
		if got.DesiredMutations[1] != nil || got.DesiredMutations[2] != nil {
			t.Errorf("unset mutations should be nil")
		}
	})
}

func TestVendorRepository_CountByServer(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewVendorRepository(db)
	ctx := context.Background()

	serverA := seedServer(t, db, 100)
	serverB := seedServer(t, db, 200)
	seedVendor(t, db, serverA, "One")
	seedVendor(t, db, serverA, "Two")
	seedVendor(t, db, serverB, "Other")

	count, err := repo.CountByServer(ctx, serverA)
	if err != nil {
		t.Fatalf("CountByServer failed: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestVendorRepository_Stock(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewVendorRepository(db)
	ctx := context.Background()

	serverID := seedServer(t, db, 0)
	vendorID := seedVendor(t, db, serverID, "")
	poochA := seedStockedPooch(t, db, serverID, vendorID, "First", 60)
	poochB := seedStockedPooch(t, db, serverID, vendorID, "Second", 90)

	t.Run("lists stock in shelf order", func(t *testing.T) {
		got, err := repo.ListStock(ctx, serverID, vendorID)
		if err != nil {
			t.Fatalf("ListStock failed: %v", err)
		}
		if len(got) != 2 || got[0].ID != poochA || got[1].ID != poochB {
			t.Errorf("stock = %v, want [%d %d]", got, poochA, poochB)
		}
	})

	t.Run("reads a single price tag", func(t *testing.T) {
		got, err := repo.GetStockEntry(ctx, serverID, vendorID, poochB)
		if err != nil {
			t.Fatalf("GetStockEntry failed: %v", err)
		}
		if got.Price != 90 {
			t.Errorf("Price = %d, want 90", got.Price)
		}
	})

	t.Run("rejects stocking the same pooch twice", func(t *testing.T) {
		err := repo.AddStock(ctx, &secondary.VendorStockRecord{
			ServerID: serverID,
			VendorID: vendorID,
			PoochID:  poochA,
			Price:    55,
		})
		if !errors.Is(err, secondary.ErrConstraint) {
			t.Errorf("err = %v, want ErrConstraint", err)
		}
	})

	t.Run("removes one entry on purchase", func(t *testing.T) {
		if err := repo.RemoveStockEntry(ctx, serverID, vendorID, poochA); err != nil {
			t.Fatalf("RemoveStockEntry failed: %v", err)
		}

		_, err := repo.GetStockEntry(ctx, serverID, vendorID, poochA)
		if !errors.Is(err, secondary.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}

		// The pooch itself stays.
		pooches := sqlite.NewPoochRepository(db)
		if _, err := pooches.GetByID(ctx, serverID, poochA); err != nil {
			t.Errorf("pooch gone after stock removal: %v", err)
		}
	})
}

func TestVendorRepository_ClearStock(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewVendorRepository(db)
	pooches := sqlite.NewPoochRepository(db)
	ctx := context.Background()

	serverID := seedServer(t, db, 0)
	vendorID := seedVendor(t, db, serverID, "")
	poochA := seedStockedPooch(t, db, serverID, vendorID, "First", 0)
	poochB := seedStockedPooch(t, db, serverID, vendorID, "Second", 0)

	cleared, err := repo.ClearStock(ctx, serverID, vendorID)
	if err != nil {
		t.Fatalf("ClearStock failed: %v", err)
	}
	if cleared != 2 {
		t.Errorf("cleared = %d, want 2", cleared)
	}

	// Unsold stock is discarded wholesale: the pooch rows go too.
	for _, id := range []int64{poochA, poochB} {
		_, err := pooches.GetByID(ctx, serverID, id)
		if !errors.Is(err, secondary.ErrNotFound) {
			t.Errorf("pooch %d survives clear: %v", id, err)
		}
	}

	got, err := repo.ListStock(ctx, serverID, vendorID)
	if err != nil {
		t.Fatalf("ListStock failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("stock = %v, want empty", got)
	}
}
