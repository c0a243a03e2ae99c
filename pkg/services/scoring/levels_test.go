package scoring

import (
	"testing"

	"github.com/fadedpez/anteup/pkg/entities"
	"github.com/stretchr/testify/assert"
)

func TestNewHandLevelsStartAtOne(t *testing.T) {
	levels := NewHandLevels()

	for _, hand := range entities.AllPokerHands {
		assert.Equal(t, 1, levels.GetLevel(hand), "expected %s to start at level 1", hand)
	}
}

func TestLevelUpRaisesOneHand(t *testing.T) {
	levels := NewHandLevels()

	levels.LevelUp(entities.Pair)
	levels.LevelUp(entities.Pair)

	assert.Equal(t, 3, levels.GetLevel(entities.Pair))
	assert.Equal(t, 1, levels.GetLevel(entities.Flush), "other hands should be untouched")
}

func TestLeveledChipsAndMult(t *testing.T) {
	levels := NewHandLevels()
	levels.LevelUp(entities.Pair)
	levels.LevelUp(entities.Pair)

	// Level 3 pair: 10 + 2x15 chips, 2 + 2x1 mult
	assert.Equal(t, int64(40), levels.ChipsFor(entities.Pair))
	assert.Equal(t, int64(4), levels.MultFor(entities.Pair))

	// Untouched hands report their base values
	assert.Equal(t, int64(35), levels.ChipsFor(entities.Flush))
	assert.Equal(t, int64(4), levels.MultFor(entities.Flush))
}
