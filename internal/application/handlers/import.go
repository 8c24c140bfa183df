package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/emryn/chronicle/internal/domain/services"
	"github.com/emryn/chronicle/internal/infrastructure/parsers"
)

// ImportHandler handles importing connection lists from files.
type ImportHandler struct {
	service *services.ImportService
}

// NewImportHandler creates a new import handler.
func NewImportHandler(service *services.ImportService) *ImportHandler {
	return &ImportHandler{service: service}
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun bool // Validate and resolve without saving
}

// ImportResult contains the result of an import operation.
type ImportResult struct {
	Imported int
	Skipped  int
	Errors   []services.ImportError
}

// Handle imports connections from a CSV file, resolving each row against the
// collections under dir.
func (h *ImportHandler) Handle(ctx context.Context, worldID, dir, filePath string, opts ImportOptions) (*ImportResult, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	rows, err := parsers.ParseConnectionsCSV(file)
	if err != nil {
		return nil, fmt.Errorf("parsing file: %w", err)
	}

	if len(rows) == 0 {
		return &ImportResult{}, nil
	}

	c, err := parsers.LoadCollections(dir)
	if err != nil {
		return nil, fmt.Errorf("loading collections: %w", err)
	}

	serviceResult, err := h.service.ImportConnections(ctx, worldID, rows, c, services.ImportOptions{
		DryRun: opts.DryRun,
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{
		Imported: serviceResult.Imported,
		Skipped:  serviceResult.Skipped,
		Errors:   serviceResult.Errors,
	}, nil
}
