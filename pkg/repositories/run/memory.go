package run

import (
	"context"
	"sync"

	"github.com/fadedpez/anteup/pkg/entities"
)

// MemoryRepository implements Repository interface with in-memory storage
type MemoryRepository struct {
	mu sync.RWMutex
	// Map of runID to run record
	runs map[string]*entities.RunRecord
	// Run IDs in the order they were first saved, oldest first
	order []string
	// Map of runID to scored hands
	hands map[string][]*entities.HandRecord
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		runs:  make(map[string]*entities.RunRecord),
		hands: make(map[string][]*entities.HandRecord),
	}
}

// SaveRunRecord stores a run record, replacing any earlier record for the same run
func (r *MemoryRepository) SaveRunRecord(ctx context.Context, record *entities.RunRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.runs[record.RunID]; !exists {
		r.order = append(r.order, record.RunID)
	}
	r.runs[record.RunID] = record
	return nil
}

// GetRunRecord retrieves a run record by ID
func (r *MemoryRepository) GetRunRecord(ctx context.Context, runID string) (*entities.RunRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.runs[runID]
	if !exists {
		return nil, nil // No record stored for this run
	}
	return record, nil
}

// ListRecentRuns retrieves the most recently saved runs, newest first.
// A non-positive limit returns every stored run.
func (r *MemoryRepository) ListRecentRuns(ctx context.Context, limit int) ([]*entities.RunRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start := 0
	if limit > 0 && len(r.order) > limit {
		start = len(r.order) - limit
	}

	recent := make([]*entities.RunRecord, 0, len(r.order)-start)
	for i := len(r.order) - 1; i >= start; i-- {
		recent = append(recent, r.runs[r.order[i]])
	}
	return recent, nil
}

// SaveHandRecord stores a scored hand for a run
func (r *MemoryRepository) SaveHandRecord(ctx context.Context, record *entities.HandRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.hands[record.RunID] = append(r.hands[record.RunID], record)
	return nil
}

// GetHandRecords retrieves the scored hands for a run in the order they were saved
func (r *MemoryRepository) GetHandRecords(ctx context.Context, runID string) ([]*entities.HandRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := r.hands[runID]
	if records == nil {
		return []*entities.HandRecord{}, nil
	}
	return records, nil
}

// GetRunStatistics aggregates statistics across all stored runs
func (r *MemoryRepository) GetRunStatistics(ctx context.Context) (*entities.RunStatistics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &entities.RunStatistics{}
	anteTotal := 0
	for _, record := range r.runs {
		stats.TotalRuns++
		if record.Won {
			stats.Wins++
		} else {
			stats.Losses++
		}
		if record.BestHandScore > stats.BestScore {
			stats.BestScore = record.BestHandScore
		}
		anteTotal += record.AnteReached
	}
	if stats.TotalRuns > 0 {
		stats.AvgAnte = float64(anteTotal) / float64(stats.TotalRuns)
	}
	return stats, nil
}

// Close is a no-op for memory repository since there are no resources to close
func (r *MemoryRepository) Close() error {
	return nil
}
