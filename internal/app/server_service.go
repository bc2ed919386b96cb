package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/poochyard/internal/ports/primary"
	"github.com/example/poochyard/internal/ports/secondary"
)

// ServerServiceImpl implements the ServerService interface.
type ServerServiceImpl struct {
	serverRepo secondary.ServerRepository
}

// NewServerService creates a new ServerService with injected dependencies.
func NewServerService(serverRepo secondary.ServerRepository) *ServerServiceImpl {
	return &ServerServiceImpl{serverRepo: serverRepo}
}

// GetOrCreateServer fetches a server, creating it on first reference.
func (s *ServerServiceImpl) GetOrCreateServer(ctx context.Context, serverID int64) (*primary.Server, error) {
	record, err := s.serverRepo.GetByID(ctx, serverID)
	if err == nil {
		return recordToServer(record), nil
	}
	if !errors.Is(err, secondary.ErrNotFound) {
		return nil, err
	}

	createErr := s.serverRepo.Create(ctx, &secondary.ServerRecord{ID: serverID})
	if createErr != nil && !errors.Is(createErr, secondary.ErrConstraint) {
		return nil, fmt.Errorf("failed to create server: %w", createErr)
	}

	record, err = s.serverRepo.GetByID(ctx, serverID)
	if err != nil {
		return nil, err
	}
	return recordToServer(record), nil
}

// ListServers lists every known server.
func (s *ServerServiceImpl) ListServers(ctx context.Context) ([]*primary.Server, error) {
	records, err := s.serverRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list servers: %w", err)
	}

	servers := make([]*primary.Server, len(records))
	for i, r := range records {
		servers[i] = recordToServer(r)
	}
	return servers, nil
}

// SetEventChannel records where day-change notifications should be posted.
func (s *ServerServiceImpl) SetEventChannel(ctx context.Context, serverID, channelID int64) error {
	return s.serverRepo.SetEventChannel(ctx, serverID, channelID)
}

// GetEventChannel returns the configured event channel, or nil.
func (s *ServerServiceImpl) GetEventChannel(ctx context.Context, serverID int64) (*int64, error) {
	record, err := s.serverRepo.GetByID(ctx, serverID)
	if err != nil {
		return nil, err
	}
	return record.EventChannelID, nil
}

// Ensure ServerServiceImpl implements the interface
var _ primary.ServerService = (*ServerServiceImpl)(nil)
