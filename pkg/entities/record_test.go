package entities

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type RecordTestSuite struct {
	suite.Suite
}

func TestRecordSuite(t *testing.T) {
	suite.Run(t, new(RecordTestSuite))
}

func (s *RecordTestSuite) TestWinRate() {
	testCases := []struct {
		name     string
		stats    RunStatistics
		expected float64
	}{
		{
			name:     "no runs",
			stats:    RunStatistics{},
			expected: 0.0,
		},
		{
			name:     "one win in four runs",
			stats:    RunStatistics{TotalRuns: 4, Wins: 1, Losses: 3},
			expected: 25.0,
		},
		{
			name:     "all wins",
			stats:    RunStatistics{TotalRuns: 3, Wins: 3},
			expected: 100.0,
		},
		{
			name:     "all losses",
			stats:    RunStatistics{TotalRuns: 5, Losses: 5},
			expected: 0.0,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.InDelta(tc.expected, tc.stats.WinRate(), 0.001)
		})
	}
}
