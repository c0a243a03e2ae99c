package entities

import "time"

// RunRecord summarizes one finished run for persistence and analytics
type RunRecord struct {
	RunID         string
	Seed          int64
	Won           bool
	AnteReached   int
	RoundsPlayed  int
	HandsPlayed   int
	BestHandType  string
	BestHandScore int64
	FinalMoney    int64
	JokerTypes    []string
	CompletedAt   time.Time
}

// HandRecord captures a single scored hand within a run
type HandRecord struct {
	ID          string
	RunID       string
	Ante        int
	Blind       string
	Round       int
	HandType    string
	Chips       int64
	Mult        int64
	Score       int64
	CardsPlayed []string
	CreatedAt   time.Time
}

// RunStatistics aggregates results across stored runs
type RunStatistics struct {
	TotalRuns int
	Wins      int
	Losses    int
	BestScore int64
	AvgAnte   float64
}

// WinRate calculates the share of winning runs as a percentage
func (s *RunStatistics) WinRate() float64 {
	if s.TotalRuns == 0 {
		return 0.0
	}
	return float64(s.Wins) / float64(s.TotalRuns) * 100.0
}
