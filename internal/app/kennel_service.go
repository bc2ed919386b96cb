package app

import (
	"context"
	"fmt"

	"github.com/example/poochyard/internal/ports/primary"
	"github.com/example/poochyard/internal/ports/secondary"
)

// KennelServiceImpl implements the KennelService interface.
type KennelServiceImpl struct {
	kennelRepo secondary.KennelRepository
	poochRepo  secondary.PoochRepository
	ownerRepo  secondary.OwnerRepository
}

// NewKennelService creates a new KennelService with injected dependencies.
func NewKennelService(
	kennelRepo secondary.KennelRepository,
	poochRepo secondary.PoochRepository,
	ownerRepo secondary.OwnerRepository,
) *KennelServiceImpl {
	return &KennelServiceImpl{
		kennelRepo: kennelRepo,
		poochRepo:  poochRepo,
		ownerRepo:  ownerRepo,
	}
}

// GetKennel retrieves a kennel by ID within a server.
func (s *KennelServiceImpl) GetKennel(ctx context.Context, serverID, kennelID int64) (*primary.Kennel, error) {
	record, err := s.kennelRepo.GetByID(ctx, serverID, kennelID)
	if err != nil {
		return nil, err
	}

	occupancy, err := s.kennelRepo.CountMembers(ctx, serverID, kennelID)
	if err != nil {
		return nil, fmt.Errorf("failed to count kennel members: %w", err)
	}

	return recordToKennel(record, occupancy), nil
}

// ListKennels lists an owner's kennels.
func (s *KennelServiceImpl) ListKennels(ctx context.Context, serverID, ownerDiscordID int64) ([]*primary.Kennel, error) {
	records, err := s.kennelRepo.ListByOwner(ctx, serverID, ownerDiscordID)
	if err != nil {
		return nil, fmt.Errorf("failed to list kennels: %w", err)
	}

	kennels := make([]*primary.Kennel, len(records))
	for i, r := range records {
		occupancy, err := s.kennelRepo.CountMembers(ctx, serverID, r.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count kennel members: %w", err)
		}
		kennels[i] = recordToKennel(r, occupancy)
	}
	return kennels, nil
}

// ListKennelPooches lists the pooches housed in a kennel.
func (s *KennelServiceImpl) ListKennelPooches(ctx context.Context, serverID, kennelID int64) ([]*primary.Pooch, error) {
	if _, err := s.kennelRepo.GetByID(ctx, serverID, kennelID); err != nil {
		return nil, err
	}

	records, err := s.kennelRepo.ListMembers(ctx, serverID, kennelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list kennel members: %w", err)
	}
	return recordsToPooches(records), nil
}

// CreateKennel creates a kennel for an owner.
func (s *KennelServiceImpl) CreateKennel(ctx context.Context, serverID, ownerDiscordID int64, name string, poochLimit int) (*primary.Kennel, error) {
	if _, err := s.ownerRepo.Get(ctx, serverID, ownerDiscordID); err != nil {
		return nil, err
	}
	if poochLimit <= 0 {
		poochLimit = primary.DefaultPoochLimit
	}

	id, err := s.kennelRepo.Create(ctx, &secondary.KennelRecord{
		ServerID:       serverID,
		OwnerDiscordID: ownerDiscordID,
		Name:           name,
		PoochLimit:     poochLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create kennel: %w", err)
	}

	record, err := s.kennelRepo.GetByID(ctx, serverID, id)
	if err != nil {
		return nil, err
	}
	return recordToKennel(record, 0), nil
}

// AddPoochToKennel places a pooch in a kennel. The capacity check and
// the membership insert are not atomic; the membership primary key still
// prevents a pooch from ever landing in two kennels.
func (s *KennelServiceImpl) AddPoochToKennel(ctx context.Context, serverID, kennelID, poochID int64) error {
	kennel, err := s.kennelRepo.GetByID(ctx, serverID, kennelID)
	if err != nil {
		return err
	}
	if _, err := s.poochRepo.GetByID(ctx, serverID, poochID); err != nil {
		return err
	}

	occupancy, err := s.kennelRepo.CountMembers(ctx, serverID, kennelID)
	if err != nil {
		return fmt.Errorf("failed to count kennel members: %w", err)
	}
	if occupancy >= kennel.PoochLimit {
		return fmt.Errorf("%w: kennel %d is full (%d/%d)",
			secondary.ErrConstraint, kennelID, occupancy, kennel.PoochLimit)
	}

	return s.kennelRepo.AddPooch(ctx, serverID, kennelID, poochID)
}

// RemovePoochFromKennel removes a pooch from its kennel.
func (s *KennelServiceImpl) RemovePoochFromKennel(ctx context.Context, serverID, poochID int64) error {
	if _, err := s.poochRepo.GetByID(ctx, serverID, poochID); err != nil {
		return err
	}
	return s.kennelRepo.RemovePooch(ctx, serverID, poochID)
}

// Ensure KennelServiceImpl implements the interface
var _ primary.KennelService = (*KennelServiceImpl)(nil)
