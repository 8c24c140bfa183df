package handlers

import (
	"context"
	"fmt"

	"github.com/emryn/chronicle/internal/domain/services"
	"github.com/emryn/chronicle/internal/infrastructure/parsers"
)

// SyncHandler handles syncing a world's collections into storage.
type SyncHandler struct {
	service *services.SyncService
}

// NewSyncHandler creates a new sync handler.
func NewSyncHandler(service *services.SyncService) *SyncHandler {
	return &SyncHandler{service: service}
}

// SyncResult contains the result of a sync run.
type SyncResult struct {
	Entities int
	Edges    int
	Indexed  int
}

// Handle loads the collections under dir and syncs them into the world's
// stores.
func (h *SyncHandler) Handle(ctx context.Context, worldID, dir string, opts services.SyncOptions) (*SyncResult, error) {
	c, err := parsers.LoadCollections(dir)
	if err != nil {
		return nil, fmt.Errorf("loading collections: %w", err)
	}

	result, err := h.service.Sync(ctx, worldID, c, opts)
	if err != nil {
		return nil, err
	}

	return &SyncResult{
		Entities: result.Entities,
		Edges:    result.Edges,
		Indexed:  result.Indexed,
	}, nil
}
