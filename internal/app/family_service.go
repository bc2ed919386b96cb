package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/poochyard/internal/ports/primary"
	"github.com/example/poochyard/internal/ports/secondary"
)

// FamilyServiceImpl implements the FamilyService interface.
// Every lookup is an explicit query against the parentage relation;
// nothing is cached or precomputed.
type FamilyServiceImpl struct {
	poochRepo     secondary.PoochRepository
	parentageRepo secondary.ParentageRepository
}

// NewFamilyService creates a new FamilyService with injected dependencies.
func NewFamilyService(
	poochRepo secondary.PoochRepository,
	parentageRepo secondary.ParentageRepository,
) *FamilyServiceImpl {
	return &FamilyServiceImpl{
		poochRepo:     poochRepo,
		parentageRepo: parentageRepo,
	}
}

// GetFamily resolves the parents, children and full siblings of a pooch.
// A dangling parent reference is omitted rather than failing the whole
// lookup. Siblings require both parents: a pooch with only one known
// parent has no resolvable siblings.
func (s *FamilyServiceImpl) GetFamily(ctx context.Context, serverID, poochID int64) (*primary.Family, error) {
	if _, err := s.poochRepo.GetByID(ctx, serverID, poochID); err != nil {
		return nil, err
	}

	family := &primary.Family{}

	parentage, err := s.parentageRepo.GetByChild(ctx, serverID, poochID)
	switch {
	case errors.Is(err, secondary.ErrNotFound):
		parentage = nil
	case err != nil:
		return nil, fmt.Errorf("failed to resolve parentage: %w", err)
	}

	if parentage != nil {
		for _, parentID := range []*int64{parentage.FatherID, parentage.MotherID} {
			if parentID == nil {
				continue
			}
			parent, err := s.poochRepo.GetByID(ctx, serverID, *parentID)
			if errors.Is(err, secondary.ErrNotFound) {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("failed to resolve parent: %w", err)
			}
			family.Parents = append(family.Parents, recordToPooch(parent))
		}
	}

	children, err := s.parentageRepo.ListChildren(ctx, serverID, poochID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve children: %w", err)
	}
	family.Children = recordsToPooches(children)

	if parentage != nil && parentage.FatherID != nil && parentage.MotherID != nil {
		siblings, err := s.parentageRepo.ListFullSiblings(ctx, serverID,
			*parentage.FatherID, *parentage.MotherID, poochID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve siblings: %w", err)
		}
		family.Siblings = recordsToPooches(siblings)
	}

	return family, nil
}

// Ensure FamilyServiceImpl implements the interface
var _ primary.FamilyService = (*FamilyServiceImpl)(nil)
