package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/poochyard/internal/ports/primary"
	"github.com/example/poochyard/internal/ports/secondary"
)

// OwnerServiceImpl implements the OwnerService interface.
type OwnerServiceImpl struct {
	ownerRepo     secondary.OwnerRepository
	serverRepo    secondary.ServerRepository
	graveyardRepo secondary.GraveyardRepository
}

// NewOwnerService creates a new OwnerService with injected dependencies.
func NewOwnerService(
	ownerRepo secondary.OwnerRepository,
	serverRepo secondary.ServerRepository,
	graveyardRepo secondary.GraveyardRepository,
) *OwnerServiceImpl {
	return &OwnerServiceImpl{
		ownerRepo:     ownerRepo,
		serverRepo:    serverRepo,
		graveyardRepo: graveyardRepo,
	}
}

// GetOrCreateOwner fetches the owner, creating them on first interaction.
// The server row is created too if this is the first sighting of it.
// A concurrent first interaction can race the insert; the loser of the
// race reads the winner's row.
func (s *OwnerServiceImpl) GetOrCreateOwner(ctx context.Context, serverID, discordID int64) (*primary.Owner, error) {
	if err := s.ensureServer(ctx, serverID); err != nil {
		return nil, err
	}

	record, err := s.ownerRepo.Get(ctx, serverID, discordID)
	if err == nil {
		return recordToOwner(record), nil
	}
	if !errors.Is(err, secondary.ErrNotFound) {
		return nil, err
	}

	createErr := s.ownerRepo.Create(ctx, &secondary.OwnerRecord{
		ServerID:  serverID,
		DiscordID: discordID,
		Dollars:   primary.StartingDollars,
	})
	if createErr != nil && !errors.Is(createErr, secondary.ErrConstraint) {
		return nil, fmt.Errorf("failed to create owner: %w", createErr)
	}

	record, err = s.ownerRepo.Get(ctx, serverID, discordID)
	if err != nil {
		return nil, err
	}
	return recordToOwner(record), nil
}

// GetOwner retrieves an existing owner.
func (s *OwnerServiceImpl) GetOwner(ctx context.Context, serverID, discordID int64) (*primary.Owner, error) {
	record, err := s.ownerRepo.Get(ctx, serverID, discordID)
	if err != nil {
		return nil, err
	}
	return recordToOwner(record), nil
}

// ListGraveyard lists an owner's buried pooches, oldest burial first.
func (s *OwnerServiceImpl) ListGraveyard(ctx context.Context, serverID, discordID int64) ([]*primary.GraveyardEntry, error) {
	if _, err := s.ownerRepo.Get(ctx, serverID, discordID); err != nil {
		return nil, err
	}

	records, err := s.graveyardRepo.ListByOwner(ctx, serverID, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to list graveyard: %w", err)
	}

	entries := make([]*primary.GraveyardEntry, len(records))
	for i, r := range records {
		entries[i] = &primary.GraveyardEntry{
			ServerID:       r.ServerID,
			OwnerDiscordID: r.OwnerDiscordID,
			PoochID:        r.PoochID,
			BuriedAt:       r.BuriedAt,
		}
	}
	return entries, nil
}

func (s *OwnerServiceImpl) ensureServer(ctx context.Context, serverID int64) error {
	_, err := s.serverRepo.GetByID(ctx, serverID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, secondary.ErrNotFound) {
		return err
	}

	createErr := s.serverRepo.Create(ctx, &secondary.ServerRecord{ID: serverID})
	if createErr != nil && !errors.Is(createErr, secondary.ErrConstraint) {
		return fmt.Errorf("failed to create server: %w", createErr)
	}
	return nil
}

// Ensure OwnerServiceImpl implements the interface
var _ primary.OwnerService = (*OwnerServiceImpl)(nil)
