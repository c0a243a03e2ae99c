package run

import (
	"time"

	"github.com/fadedpez/anteup/pkg/entities"
)

// ESRunRecord represents a run document in Elasticsearch
type ESRunRecord struct {
	RunID         string    `json:"run_id"`
	Seed          int64     `json:"seed"`
	Won           bool      `json:"won"`
	AnteReached   int       `json:"ante_reached"`
	RoundsPlayed  int       `json:"rounds_played"`
	HandsPlayed   int       `json:"hands_played"`
	BestHandType  string    `json:"best_hand_type"`
	BestHandScore int64     `json:"best_hand_score"`
	FinalMoney    int64     `json:"final_money"`
	JokerTypes    []string  `json:"joker_types"`
	CompletedAt   time.Time `json:"completed_at"`
}

// RunRecordToESRunRecord converts an entities.RunRecord to an ESRunRecord
func RunRecordToESRunRecord(record *entities.RunRecord) *ESRunRecord {
	return &ESRunRecord{
		RunID:         record.RunID,
		Seed:          record.Seed,
		Won:           record.Won,
		AnteReached:   record.AnteReached,
		RoundsPlayed:  record.RoundsPlayed,
		HandsPlayed:   record.HandsPlayed,
		BestHandType:  record.BestHandType,
		BestHandScore: record.BestHandScore,
		FinalMoney:    record.FinalMoney,
		JokerTypes:    record.JokerTypes,
		CompletedAt:   record.CompletedAt,
	}
}

// ToRunRecord converts an ESRunRecord back to an entities.RunRecord
func (e *ESRunRecord) ToRunRecord() *entities.RunRecord {
	return &entities.RunRecord{
		RunID:         e.RunID,
		Seed:          e.Seed,
		Won:           e.Won,
		AnteReached:   e.AnteReached,
		RoundsPlayed:  e.RoundsPlayed,
		HandsPlayed:   e.HandsPlayed,
		BestHandType:  e.BestHandType,
		BestHandScore: e.BestHandScore,
		FinalMoney:    e.FinalMoney,
		JokerTypes:    e.JokerTypes,
		CompletedAt:   e.CompletedAt,
	}
}
