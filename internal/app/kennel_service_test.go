package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/poochyard/internal/ports/primary"
	"github.com/example/poochyard/internal/ports/secondary"
)

func newKennelFixture(t *testing.T) (*memStore, *KennelServiceImpl) {
	t.Helper()
	store := newMemStore()
	store.addServer(1)
	store.addOwner(1, 500, 100)
	return store, NewKennelService(kennelRepo{store}, poochRepo{store}, ownerRepo{store})
}

func TestKennelService_CreateKennel(t *testing.T) {
	ctx := context.Background()

	t.Run("creates with explicit limit", func(t *testing.T) {
		_, svc := newKennelFixture(t)

		kennel, err := svc.CreateKennel(ctx, 1, 500, "Backyard", 4)
		if err != nil {
			t.Fatalf("CreateKennel failed: %v", err)
		}
		if kennel.Name != "Backyard" || kennel.PoochLimit != 4 {
			t.Errorf("kennel = %+v, want Backyard with limit 4", kennel)
		}
		if kennel.Occupancy != 0 {
			t.Errorf("Occupancy = %d, want 0", kennel.Occupancy)
		}
	})

	t.Run("zero limit falls back to the default", func(t *testing.T) {
		_, svc := newKennelFixture(t)

		kennel, err := svc.CreateKennel(ctx, 1, 500, "Backyard", 0)
		if err != nil {
			t.Fatalf("CreateKennel failed: %v", err)
		}
		if kennel.PoochLimit != primary.DefaultPoochLimit {
			t.Errorf("PoochLimit = %d, want %d", kennel.PoochLimit, primary.DefaultPoochLimit)
		}
	})

	t.Run("duplicate name for the same owner is rejected", func(t *testing.T) {
		_, svc := newKennelFixture(t)

		if _, err := svc.CreateKennel(ctx, 1, 500, "Backyard", 4); err != nil {
			t.Fatalf("first CreateKennel failed: %v", err)
		}
		_, err := svc.CreateKennel(ctx, 1, 500, "Backyard", 4)
		if !errors.Is(err, secondary.ErrConstraint) {
			t.Errorf("expected ErrConstraint, got %v", err)
		}
	})

	t.Run("unknown owner is not found", func(t *testing.T) {
		_, svc := newKennelFixture(t)

		_, err := svc.CreateKennel(ctx, 1, 999, "Backyard", 4)
		if !errors.Is(err, secondary.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestKennelService_AddPoochToKennel(t *testing.T) {
	ctx := context.Background()

	t.Run("adds up to the limit", func(t *testing.T) {
		store, svc := newKennelFixture(t)
		kennel, _ := svc.CreateKennel(ctx, 1, 500, "Tiny", 2)
		first := store.addPooch(adultFemale(1, 500))
		second := store.addPooch(adultMale(1, 500))
		third := store.addPooch(adultMale(1, 500))

		if err := svc.AddPoochToKennel(ctx, 1, kennel.ID, first); err != nil {
			t.Fatalf("first add failed: %v", err)
		}
		if err := svc.AddPoochToKennel(ctx, 1, kennel.ID, second); err != nil {
			t.Fatalf("second add failed: %v", err)
		}

		err := svc.AddPoochToKennel(ctx, 1, kennel.ID, third)
		if !errors.Is(err, secondary.ErrConstraint) {
			t.Errorf("expected ErrConstraint for a full kennel, got %v", err)
		}

		got, _ := svc.GetKennel(ctx, 1, kennel.ID)
		if got.Occupancy != 2 {
			t.Errorf("Occupancy = %d, want 2", got.Occupancy)
		}
	})

	t.Run("a pooch lives in one kennel at a time", func(t *testing.T) {
		store, svc := newKennelFixture(t)
		home, _ := svc.CreateKennel(ctx, 1, 500, "Home", 5)
		away, _ := svc.CreateKennel(ctx, 1, 500, "Away", 5)
		poochID := store.addPooch(adultFemale(1, 500))

		if err := svc.AddPoochToKennel(ctx, 1, home.ID, poochID); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		err := svc.AddPoochToKennel(ctx, 1, away.ID, poochID)
		if !errors.Is(err, secondary.ErrConstraint) {
			t.Errorf("expected ErrConstraint for double housing, got %v", err)
		}
	})

	t.Run("unknown pooch is not found", func(t *testing.T) {
		_, svc := newKennelFixture(t)
		kennel, _ := svc.CreateKennel(ctx, 1, 500, "Home", 5)

		err := svc.AddPoochToKennel(ctx, 1, kennel.ID, 9999)
		if !errors.Is(err, secondary.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestKennelService_RemovePoochFromKennel(t *testing.T) {
	ctx := context.Background()
	store, svc := newKennelFixture(t)
	kennel, _ := svc.CreateKennel(ctx, 1, 500, "Home", 5)
	poochID := store.addPooch(adultFemale(1, 500))
	if err := svc.AddPoochToKennel(ctx, 1, kennel.ID, poochID); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := svc.RemovePoochFromKennel(ctx, 1, poochID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	got, _ := svc.GetKennel(ctx, 1, kennel.ID)
	if got.Occupancy != 0 {
		t.Errorf("Occupancy = %d, want 0", got.Occupancy)
	}

	// Removing an unkenneled pooch is a no-op.
	if err := svc.RemovePoochFromKennel(ctx, 1, poochID); err != nil {
		t.Errorf("second remove failed: %v", err)
	}

	if err := svc.RemovePoochFromKennel(ctx, 1, 9999); !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("expected ErrNotFound for an unknown pooch, got %v", err)
	}
}

func TestKennelService_ListKennels(t *testing.T) {
	ctx := context.Background()
	store, svc := newKennelFixture(t)
	store.addOwner(1, 501, 100)

	a, _ := svc.CreateKennel(ctx, 1, 500, "Alpha", 5)
	if _, err := svc.CreateKennel(ctx, 1, 500, "Beta", 5); err != nil {
		t.Fatalf("CreateKennel failed: %v", err)
	}
	if _, err := svc.CreateKennel(ctx, 1, 501, "Gamma", 5); err != nil {
		t.Fatalf("CreateKennel failed: %v", err)
	}
	poochID := store.addPooch(adultFemale(1, 500))
	if err := svc.AddPoochToKennel(ctx, 1, a.ID, poochID); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	kennels, err := svc.ListKennels(ctx, 1, 500)
	if err != nil {
		t.Fatalf("ListKennels failed: %v", err)
	}
	if len(kennels) != 2 {
		t.Fatalf("got %d kennels, want 2", len(kennels))
	}
	if kennels[0].Name != "Alpha" || kennels[0].Occupancy != 1 {
		t.Errorf("first kennel = %+v, want Alpha with occupancy 1", kennels[0])
	}
	if kennels[1].Name != "Beta" || kennels[1].Occupancy != 0 {
		t.Errorf("second kennel = %+v, want Beta with occupancy 0", kennels[1])
	}
}

func TestKennelService_ListKennelPooches(t *testing.T) {
	ctx := context.Background()
	store, svc := newKennelFixture(t)
	kennel, _ := svc.CreateKennel(ctx, 1, 500, "Home", 5)
	first := store.addPooch(adultFemale(1, 500))
	second := store.addPooch(adultMale(1, 500))
	for _, id := range []int64{first, second} {
		if err := svc.AddPoochToKennel(ctx, 1, kennel.ID, id); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}

	pooches, err := svc.ListKennelPooches(ctx, 1, kennel.ID)
	if err != nil {
		t.Fatalf("ListKennelPooches failed: %v", err)
	}
	if len(pooches) != 2 {
		t.Fatalf("got %d pooches, want 2", len(pooches))
	}
	if pooches[0].ID != first || pooches[1].ID != second {
		t.Errorf("pooches = [%d, %d], want [%d, %d]", pooches[0].ID, pooches[1].ID, first, second)
	}
}
