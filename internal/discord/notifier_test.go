package discord

import (
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	discordmock "github.com/fadedpez/anteup/internal/discord/mock"
	"github.com/fadedpez/anteup/internal/types"
	"github.com/fadedpez/anteup/pkg/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func reportRecord(won bool) *entities.RunRecord {
	return &entities.RunRecord{
		RunID:         "run-1",
		Seed:          42,
		Won:           won,
		AnteReached:   5,
		RoundsPlayed:  14,
		HandsPlayed:   39,
		BestHandType:  "FLUSH",
		BestHandScore: 12840,
		FinalMoney:    31,
		JokerTypes:    []string{"JOKER", "THE_DUO"},
		CompletedAt:   time.Now(),
	}
}

func TestNotifyRunCompletedSendsReport(t *testing.T) {
	session := new(discordmock.SessionHandler)
	session.On("ChannelMessageSend", "channel-1", mock.Anything).Return(&discordgo.Message{}, nil)

	notifier := NewNotifierWithSession(session, "channel-1")

	err := notifier.NotifyRunCompleted(reportRecord(false))
	assert.NoError(t, err)
	session.AssertExpectations(t)

	require.Len(t, session.Calls, 1)
	content := session.Calls[0].Arguments.String(1)
	assert.Contains(t, content, "ante 5")
	assert.Contains(t, content, "FLUSH for 12840")
	assert.Contains(t, content, "JOKER, THE_DUO")
	assert.Contains(t, content, "Seed: 42")
}

func TestNotifyRunCompletedWrapsSendFailure(t *testing.T) {
	session := new(discordmock.SessionHandler)
	session.On("ChannelMessageSend", "channel-1", mock.Anything).Return(nil, errors.New("rate limited"))

	notifier := NewNotifierWithSession(session, "channel-1")

	err := notifier.NotifyRunCompleted(reportRecord(true))
	require.Error(t, err)
	assert.True(t, types.IsGameError(err, types.ErrNetworkError))
}

func TestFormatRunReportWin(t *testing.T) {
	report := FormatRunReport(reportRecord(true))

	assert.Contains(t, report, "victory")
	assert.NotContains(t, report, "Run over")
	assert.Contains(t, report, "Final money: $31")
	assert.Contains(t, report, "Hands played: 39 across 14 rounds")
}

func TestFormatRunReportLoss(t *testing.T) {
	report := FormatRunReport(reportRecord(false))

	assert.Contains(t, report, "Run over at ante 5")
	assert.NotContains(t, report, "victory")
}

func TestFormatRunReportWithoutJokers(t *testing.T) {
	record := reportRecord(false)
	record.JokerTypes = nil

	report := FormatRunReport(record)
	assert.NotContains(t, report, "Jokers:")
}

func TestNotifierCloseClosesSession(t *testing.T) {
	session := new(discordmock.SessionHandler)
	session.On("Close").Return(nil)

	notifier := NewNotifierWithSession(session, "channel-1")
	assert.NoError(t, notifier.Close())
	session.AssertExpectations(t)
}
