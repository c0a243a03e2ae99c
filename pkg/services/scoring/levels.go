package scoring

import "github.com/fadedpez/anteup/pkg/entities"

// HandLevels tracks the level of every poker hand across one run.
// Levels start at 1 and only ever increase.
type HandLevels struct {
	levels map[entities.PokerHand]int
}

// NewHandLevels creates a level table with every hand at level 1
func NewHandLevels() *HandLevels {
	levels := make(map[entities.PokerHand]int, len(entities.AllPokerHands))
	for _, hand := range entities.AllPokerHands {
		levels[hand] = 1
	}
	return &HandLevels{levels: levels}
}

// GetLevel returns the current level of a hand
func (l *HandLevels) GetLevel(hand entities.PokerHand) int {
	if level, ok := l.levels[hand]; ok {
		return level
	}
	return 1
}

// LevelUp raises a hand's level by one
func (l *HandLevels) LevelUp(hand entities.PokerHand) {
	l.levels[hand] = l.GetLevel(hand) + 1
}

// ChipsFor returns the base chips of a hand at its current level
func (l *HandLevels) ChipsFor(hand entities.PokerHand) int64 {
	level := int64(l.GetLevel(hand))
	return hand.BaseChips() + (level-1)*hand.LevelUpChips()
}

// MultFor returns the base mult of a hand at its current level
func (l *HandLevels) MultFor(hand entities.PokerHand) int64 {
	level := int64(l.GetLevel(hand))
	return hand.BaseMult() + (level-1)*hand.LevelUpMult()
}
