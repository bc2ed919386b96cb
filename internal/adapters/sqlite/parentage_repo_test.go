package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/example/poochyard/internal/adapters/sqlite"
	"github.com/example/poochyard/internal/ports/secondary"
)

func TestParentageRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewParentageRepository(db)
	ctx := context.Background()

	serverID := seedServer(t, db, 0)
	ownerID := seedOwner(t, db, serverID, 0)
	father := seedPooch(t, db, serverID, ownerID, "Father", "male")
	mother := seedPooch(t, db, serverID, ownerID, "Mother", "female")
	child := seedPooch(t, db, serverID, ownerID, "Child", "male")

	t.Run("records both parents", func(t *testing.T) {
		err := repo.Create(ctx, &secondary.ParentageRecord{
			ServerID: serverID,
			ChildID:  child,
			FatherID: &father,
			MotherID: &mother,
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		got, err := repo.GetByChild(ctx, serverID, child)
		if err != nil {
			t.Fatalf("GetByChild failed: %v", err)
		}
		if got.FatherID == nil || *got.FatherID != father {
			t.Errorf("FatherID = %v, want %d", got.FatherID, father)
		}
		if got.MotherID == nil || *got.MotherID != mother {
			t.Errorf("MotherID = %v, want %d", got.MotherID, mother)
		}
	})

	t.Run("rejects a second row for the same child", func(t *testing.T) {
		err := repo.Create(ctx, &secondary.ParentageRecord{
			ServerID: serverID,
			ChildID:  child,
		})
		if !errors.Is(err, secondary.ErrConstraint) {
			t.Errorf("err = %v, want ErrConstraint", err)
		}
	})

	t.Run("allows unknown parents", func(t *testing.T) {
		foundling := seedPooch(t, db, serverID, ownerID, "Foundling", "female")
		err := repo.Create(ctx, &secondary.ParentageRecord{
			ServerID: serverID,
			ChildID:  foundling,
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		got, _ := repo.GetByChild(ctx, serverID, foundling)
		if got.FatherID != nil || got.MotherID != nil {
			t.Errorf("parents = %v/%v, want nil/nil", got.FatherID, got.MotherID)
		}
	})
}

func TestParentageRepository_GetByChild(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewParentageRepository(db)
	ctx := context.Background()

	serverID := seedServer(t, db, 0)

	t.Run("returns ErrNotFound without a row", func(t *testing.T) {
		_, err := repo.GetByChild(ctx, serverID, 9999)
		if !errors.Is(err, secondary.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestParentageRepository_FamilyQueries(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewParentageRepository(db)
	ctx := context.Background()

	serverID := seedServer(t, db, 0)
	ownerID := seedOwner(t, db, serverID, 0)
	father := seedPooch(t, db, serverID, ownerID, "Father", "male")
	mother := seedPooch(t, db, serverID, ownerID, "Mother", "female")
	otherMother := seedPooch(t, db, serverID, ownerID, "OtherMother", "female")

	fullA := seedPooch(t, db, serverID, ownerID, "FullA", "male")
	fullB := seedPooch(t, db, serverID, ownerID, "FullB", "female")
	half := seedPooch(t, db, serverID, ownerID, "Half", "male")

	mustParentage(t, repo, serverID, fullA, &father, &mother)
	mustParentage(t, repo, serverID, fullB, &father, &mother)
	mustParentage(t, repo, serverID, half, &father, &otherMother)

	t.Run("children includes every litter of a parent", func(t *testing.T) {
		got, err := repo.ListChildren(ctx, serverID, father)
		if err != nil {
			t.Fatalf("ListChildren failed: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("got %d children, want 3", len(got))
		}
	})

	t.Run("children of the mother excludes half-siblings", func(t *testing.T) {
		got, err := repo.ListChildren(ctx, serverID, mother)
		if err != nil {
			t.Fatalf("ListChildren failed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("got %d children, want 2", len(got))
		}
	})

	t.Run("full siblings share both parents and exclude self", func(t *testing.T) {
		got, err := repo.ListFullSiblings(ctx, serverID, father, mother, fullA)
		if err != nil {
			t.Fatalf("ListFullSiblings failed: %v", err)
		}
		if len(got) != 1 || got[0].ID != fullB {
			t.Errorf("siblings = %v, want [%d]", got, fullB)
		}
	})
}

func mustParentage(t *testing.T, repo *sqlite.ParentageRepository, serverID, childID int64, fatherID, motherID *int64) {
	t.Helper()
	err := repo.Create(context.Background(), &secondary.ParentageRecord{
		ServerID: serverID,
		ChildID:  childID,
		FatherID: fatherID,
		MotherID: motherID,
	})
	if err != nil {
		t.Fatalf("failed to create parentage: %v", err)
	}
}
