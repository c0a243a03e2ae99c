package statistics

import (
	"context"
	"sort"
	"time"

	"github.com/fadedpez/anteup/pkg/entities"
	"github.com/fadedpez/anteup/pkg/repositories/run"
)

// Service provides methods for retrieving and processing run statistics
type Service struct {
	repository run.Repository
}

// NewService creates a new statistics service
func NewService(repository run.Repository) *Service {
	return &Service{
		repository: repository,
	}
}

// RunRank represents a completed run with ranking information
type RunRank struct {
	*entities.RunRecord
	Rank         int  `json:"rank"`
	IsTopScore   bool `json:"is_top_score"`
	IsDeepestRun bool `json:"is_deepest_run"`
}

// RunLeaderboard represents a paginated leaderboard of completed runs
type RunLeaderboard struct {
	Runs        []*RunRank `json:"runs"`
	TotalRuns   int        `json:"total_runs"`
	CurrentPage int        `json:"current_page"`
	TotalPages  int        `json:"total_pages"`
	RunsPerPage int        `json:"runs_per_page"`
	LastUpdated time.Time  `json:"last_updated"`
}

// GetRunLeaderboard retrieves a paginated leaderboard of completed runs,
// ordered by the best single-hand score each run produced
func (s *Service) GetRunLeaderboard(ctx context.Context, page, runsPerPage int) (*RunLeaderboard, error) {
	// Default values
	if page < 1 {
		page = 1
	}
	if runsPerPage < 1 {
		runsPerPage = 10
	}

	// Get every stored run
	allRuns, err := s.repository.ListRecentRuns(ctx, 0)
	if err != nil {
		return nil, err
	}

	// Convert to RunRank, skipping runs that never scored a hand
	runRanks := make([]*RunRank, 0, len(allRuns))
	for _, record := range allRuns {
		if record.HandsPlayed == 0 {
			continue
		}

		runRanks = append(runRanks, &RunRank{
			RunRecord: record,
		})
	}

	// Sort by best hand score (descending)
	sort.Slice(runRanks, func(i, j int) bool {
		return runRanks[i].BestHandScore > runRanks[j].BestHandScore
	})

	// Mark the top score and the deepest run
	if len(runRanks) > 0 {
		runRanks[0].IsTopScore = true

		deepestIdx := 0
		for i := 1; i < len(runRanks); i++ {
			if runRanks[i].AnteReached > runRanks[deepestIdx].AnteReached {
				deepestIdx = i
			}
		}
		runRanks[deepestIdx].IsDeepestRun = true
	}

	// Assign ranks
	for i := range runRanks {
		runRanks[i].Rank = i + 1
	}

	// Calculate pagination
	totalRuns := len(runRanks)
	totalPages := (totalRuns + runsPerPage - 1) / runsPerPage
	if page > totalPages && totalPages > 0 {
		page = totalPages
	}

	// Get the current page of runs
	start := (page - 1) * runsPerPage
	end := start + runsPerPage
	if end > totalRuns {
		end = totalRuns
	}

	var currentPageRuns []*RunRank
	if start < totalRuns {
		currentPageRuns = runRanks[start:end]
	} else {
		currentPageRuns = []*RunRank{}
	}

	// Create the leaderboard
	return &RunLeaderboard{
		Runs:        currentPageRuns,
		TotalRuns:   totalRuns,
		CurrentPage: page,
		TotalPages:  totalPages,
		RunsPerPage: runsPerPage,
		LastUpdated: time.Now(),
	}, nil
}

// GetRunStatistics returns aggregate statistics across all stored runs
func (s *Service) GetRunStatistics(ctx context.Context) (*entities.RunStatistics, error) {
	return s.repository.GetRunStatistics(ctx)
}

// GetRecentRuns returns the most recently completed runs, newest first
func (s *Service) GetRecentRuns(ctx context.Context, limit int) ([]*entities.RunRecord, error) {
	return s.repository.ListRecentRuns(ctx, limit)
}

// RecordCompletedRun persists a finished run along with its scored hands.
// The run record is saved first so hand records reference a stored run.
func (s *Service) RecordCompletedRun(ctx context.Context, record *entities.RunRecord, hands []*entities.HandRecord) error {
	if err := s.repository.SaveRunRecord(ctx, record); err != nil {
		return err
	}

	for _, hand := range hands {
		if err := s.repository.SaveHandRecord(ctx, hand); err != nil {
			return err
		}
	}

	return nil
}
