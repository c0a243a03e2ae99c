package discord

import (
	"fmt"
	"strings"

	"github.com/fadedpez/anteup/internal/types"
	"github.com/fadedpez/anteup/pkg/entities"
)

// Notifier posts run reports to a configured Discord channel
type Notifier struct {
	session   SessionHandler
	channelID string
}

// NewNotifier creates a Notifier with a fresh Discord session.
// Posting messages uses the REST API, so the session is never opened
// as a gateway connection.
func NewNotifier(token, channelID string) (*Notifier, error) {
	session, err := NewSession(token)
	if err != nil {
		return nil, types.WrapError(types.ErrNetworkError, "failed to create Discord session", err)
	}
	return NewNotifierWithSession(session, channelID), nil
}

// NewNotifierWithSession creates a Notifier around an existing session
func NewNotifierWithSession(session SessionHandler, channelID string) *Notifier {
	return &Notifier{
		session:   session,
		channelID: channelID,
	}
}

// NotifyRunCompleted posts a summary of a finished run
func (n *Notifier) NotifyRunCompleted(record *entities.RunRecord) error {
	if _, err := n.session.ChannelMessageSend(n.channelID, FormatRunReport(record)); err != nil {
		return types.WrapError(types.ErrNetworkError, "failed to post run report", err)
	}
	return nil
}

// Close releases the underlying Discord session
func (n *Notifier) Close() error {
	return n.session.Close()
}

// FormatRunReport renders a run record as a Discord message
func FormatRunReport(record *entities.RunRecord) string {
	var b strings.Builder

	if record.Won {
		b.WriteString("🏆 **Run complete: victory!**\n")
	} else {
		fmt.Fprintf(&b, "💀 **Run over at ante %d.**\n", record.AnteReached)
	}

	fmt.Fprintf(&b, "Best hand: %s for %d\n", record.BestHandType, record.BestHandScore)
	fmt.Fprintf(&b, "Hands played: %d across %d rounds\n", record.HandsPlayed, record.RoundsPlayed)
	fmt.Fprintf(&b, "Final money: $%d\n", record.FinalMoney)
	if len(record.JokerTypes) > 0 {
		fmt.Fprintf(&b, "Jokers: %s\n", strings.Join(record.JokerTypes, ", "))
	}
	fmt.Fprintf(&b, "Seed: %d", record.Seed)

	return b.String()
}
