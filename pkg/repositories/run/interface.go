package run

import (
	"context"

	"github.com/fadedpez/anteup/pkg/entities"
)

// Repository defines storage operations for completed runs and scored hands
type Repository interface {
	// Run records
	SaveRunRecord(ctx context.Context, record *entities.RunRecord) error
	GetRunRecord(ctx context.Context, runID string) (*entities.RunRecord, error)
	ListRecentRuns(ctx context.Context, limit int) ([]*entities.RunRecord, error)

	// Scored hands
	SaveHandRecord(ctx context.Context, record *entities.HandRecord) error
	GetHandRecords(ctx context.Context, runID string) ([]*entities.HandRecord, error)

	// Aggregates across all stored runs
	GetRunStatistics(ctx context.Context) (*entities.RunStatistics, error)

	// Close closes any resources used by the repository
	Close() error
}
