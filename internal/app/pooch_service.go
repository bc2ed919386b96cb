package app

import (
	"context"
	"fmt"

	"github.com/example/poochyard/internal/core/breeding"
	"github.com/example/poochyard/internal/core/pooch"
	"github.com/example/poochyard/internal/ports/primary"
	"github.com/example/poochyard/internal/ports/secondary"
)

// fetalName is the placeholder name a fetus carries until birth assigns
// a real one.
const fetalName = "unborn"

// PoochServiceImpl implements the PoochService interface.
type PoochServiceImpl struct {
	poochRepo     secondary.PoochRepository
	parentageRepo secondary.ParentageRepository
	pregnancyRepo secondary.PregnancyRepository
}

// NewPoochService creates a new PoochService with injected dependencies.
func NewPoochService(
	poochRepo secondary.PoochRepository,
	parentageRepo secondary.ParentageRepository,
	pregnancyRepo secondary.PregnancyRepository,
) *PoochServiceImpl {
	return &PoochServiceImpl{
		poochRepo:     poochRepo,
		parentageRepo: parentageRepo,
		pregnancyRepo: pregnancyRepo,
	}
}

// GetPooch retrieves a pooch by ID within a server.
func (s *PoochServiceImpl) GetPooch(ctx context.Context, serverID, poochID int64) (*primary.Pooch, error) {
	record, err := s.poochRepo.GetByID(ctx, serverID, poochID)
	if err != nil {
		return nil, err
	}
	return recordToPooch(record), nil
}

// ListOwnerPooches lists an owner's living pooches.
func (s *PoochServiceImpl) ListOwnerPooches(ctx context.Context, serverID, ownerDiscordID int64) ([]*primary.Pooch, error) {
	records, err := s.poochRepo.ListByOwner(ctx, serverID, ownerDiscordID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pooches: %w", err)
	}
	return recordsToPooches(records), nil
}

// BreedPooches creates a pregnancy from an eligible father/mother pair.
// The fetus is created immediately as a real pooch row at fetal age, with
// its parentage recorded; the day-change engine later materializes it
// into a newborn. Both parents go on cooldown and lose their virgin flag.
func (s *PoochServiceImpl) BreedPooches(ctx context.Context, serverID, fatherID, motherID int64) (*primary.Pooch, error) {
	father, err := s.poochRepo.GetByID(ctx, serverID, fatherID)
	if err != nil {
		return nil, err
	}
	mother, err := s.poochRepo.GetByID(ctx, serverID, motherID)
	if err != nil {
		return nil, err
	}

	// A fetus row is alive with placeholder vitals; it must stay out of
	// breeding until birth gives it real ones.
	for _, parent := range []*secondary.PoochRecord{father, mother} {
		if pooch.IsFetal(parent.Age) {
			return nil, fmt.Errorf("%w: pooch %d is not born yet", secondary.ErrConstraint, parent.ID)
		}
	}

	pregnant, err := s.pregnancyRepo.MotherIsPregnant(ctx, serverID, motherID)
	if err != nil {
		return nil, fmt.Errorf("failed to check pregnancy: %w", err)
	}

	guard := breeding.CanBreed(breeding.BreedContext{
		Father:         candidateFromRecord(father),
		Mother:         candidateFromRecord(mother),
		MotherPregnant: pregnant,
	})
	if err := guard.Error(); err != nil {
		return nil, fmt.Errorf("%w: %s", secondary.ErrConstraint, guard.Reason)
	}

	// Name, sex and base health are placeholders until birth.
	fetusID, err := s.poochRepo.Create(ctx, &secondary.PoochRecord{
		ServerID:         serverID,
		Name:             fetalName,
		Age:              pooch.FetalAge,
		Sex:              breeding.SexFemale,
		BaseHealth:       0,
		BreedingCooldown: breeding.DefaultCooldown,
		Alive:            true,
		Virgin:           true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create fetus: %w", err)
	}

	if err := s.parentageRepo.Create(ctx, &secondary.ParentageRecord{
		ServerID: serverID,
		ChildID:  fetusID,
		FatherID: &fatherID,
		MotherID: &motherID,
	}); err != nil {
		return nil, fmt.Errorf("failed to record parentage: %w", err)
	}

	if err := s.pregnancyRepo.Create(ctx, &secondary.PregnancyRecord{
		ServerID: serverID,
		MotherID: motherID,
		FetusID:  fetusID,
	}); err != nil {
		return nil, fmt.Errorf("failed to create pregnancy: %w", err)
	}

	for _, parentID := range []int64{fatherID, motherID} {
		if err := s.poochRepo.SetCooldown(ctx, serverID, parentID, breeding.DefaultCooldown); err != nil {
			return nil, fmt.Errorf("failed to set cooldown: %w", err)
		}
		if err := s.poochRepo.ClearVirgin(ctx, serverID, parentID); err != nil {
			return nil, fmt.Errorf("failed to clear virgin flag: %w", err)
		}
	}

	fetus, err := s.poochRepo.GetByID(ctx, serverID, fetusID)
	if err != nil {
		return nil, err
	}
	return recordToPooch(fetus), nil
}

func candidateFromRecord(r *secondary.PoochRecord) breeding.Candidate {
	return breeding.Candidate{
		PoochID:     r.ID,
		Alive:       r.Alive,
		Sex:         r.Sex,
		Cooldown:    r.BreedingCooldown,
		VendorOwned: r.VendorID != nil,
	}
}

// Ensure PoochServiceImpl implements the interface
var _ primary.PoochService = (*PoochServiceImpl)(nil)
