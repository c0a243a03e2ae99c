package mock

import (
	"context"

	"github.com/fadedpez/anteup/pkg/entities"
	"github.com/stretchr/testify/mock"
)

// Repository is a mock implementation of run.Repository
type Repository struct {
	mock.Mock
}

// SaveRunRecord implements run.Repository
func (r *Repository) SaveRunRecord(ctx context.Context, record *entities.RunRecord) error {
	args := r.Called(ctx, record)
	return args.Error(0)
}

// GetRunRecord implements run.Repository
func (r *Repository) GetRunRecord(ctx context.Context, runID string) (*entities.RunRecord, error) {
	args := r.Called(ctx, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RunRecord), args.Error(1)
}

// ListRecentRuns implements run.Repository
func (r *Repository) ListRecentRuns(ctx context.Context, limit int) ([]*entities.RunRecord, error) {
	args := r.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.RunRecord), args.Error(1)
}

// SaveHandRecord implements run.Repository
func (r *Repository) SaveHandRecord(ctx context.Context, record *entities.HandRecord) error {
	args := r.Called(ctx, record)
	return args.Error(0)
}

// GetHandRecords implements run.Repository
func (r *Repository) GetHandRecords(ctx context.Context, runID string) ([]*entities.HandRecord, error) {
	args := r.Called(ctx, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.HandRecord), args.Error(1)
}

// GetRunStatistics implements run.Repository
func (r *Repository) GetRunStatistics(ctx context.Context) (*entities.RunStatistics, error) {
	args := r.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RunStatistics), args.Error(1)
}

// Close implements run.Repository
func (r *Repository) Close() error {
	args := r.Called()
	return args.Error(0)
}
