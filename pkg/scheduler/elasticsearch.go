package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/fadedpez/anteup/pkg/repositories/run"
)

// ElasticsearchMaintenanceScheduler manages scheduled maintenance tasks for Elasticsearch
type ElasticsearchMaintenanceScheduler struct {
	scheduler *Scheduler
	repo      *run.ElasticsearchRepository
}

// NewElasticsearchMaintenanceScheduler creates a new scheduler for Elasticsearch maintenance tasks
func NewElasticsearchMaintenanceScheduler(repo *run.ElasticsearchRepository) *ElasticsearchMaintenanceScheduler {
	return &ElasticsearchMaintenanceScheduler{
		scheduler: NewScheduler(),
		repo:      repo,
	}
}

// Start initializes and starts the maintenance scheduler
func (s *ElasticsearchMaintenanceScheduler) Start(ctx context.Context) {
	config := s.repo.GetConfig()

	// Schedule index rotation, daily unless the repository configures a period
	rotationInterval := config.RotationPeriod
	if rotationInterval <= 0 {
		rotationInterval = 24 * time.Hour
	}
	s.scheduler.AddTask("index_rotation", rotationInterval, s.rotateIndices)

	// Prune indices past their retention period weekly
	s.scheduler.AddTask("index_pruning", 7*24*time.Hour, s.pruneOldIndices)

	s.scheduler.Start(ctx)
	log.Println("Elasticsearch maintenance scheduler started")
}

// Stop stops the maintenance scheduler
func (s *ElasticsearchMaintenanceScheduler) Stop() {
	s.scheduler.Stop()
	log.Println("Elasticsearch maintenance scheduler stopped")
}

// rotateIndices rotates indices based on the configured rotation period
func (s *ElasticsearchMaintenanceScheduler) rotateIndices(ctx context.Context) error {
	log.Println("Running scheduled index rotation task")
	return s.repo.RotateIndices(ctx)
}

// pruneOldIndices prunes old indices based on the configured retention period
func (s *ElasticsearchMaintenanceScheduler) pruneOldIndices(ctx context.Context) error {
	log.Println("Running scheduled index pruning task")
	return s.repo.PruneOldIndices(ctx)
}
