package run

import (
	"testing"

	"github.com/fadedpez/anteup/pkg/entities"
	"github.com/stretchr/testify/assert"
)

func TestUsePlanet(t *testing.T) {
	g := NewGameWithSeed(1)
	g.Consumables = append(g.Consumables, entities.NewPlanetConsumable(entities.Mercury))

	ok := g.UsePlanet(0)

	assert.True(t, ok)
	assert.Equal(t, 2, g.Levels.GetLevel(entities.Pair))
	assert.Empty(t, g.Consumables, "the planet should be consumed")
}

func TestUsePlanetOnTarot(t *testing.T) {
	g := NewGameWithSeed(1)
	g.Consumables = append(g.Consumables, entities.NewTarotConsumable(entities.TheHermit))

	assert.False(t, g.UsePlanet(0))
	assert.Len(t, g.Consumables, 1)
}

func TestUsePlanetOutOfRange(t *testing.T) {
	g := NewGameWithSeed(1)

	assert.False(t, g.UsePlanet(0))
	assert.False(t, g.UsePlanet(-1))
}

func TestUseTarotHermitDoublesMoney(t *testing.T) {
	g := NewGameWithSeed(1)
	g.Consumables = append(g.Consumables, entities.NewTarotConsumable(entities.TheHermit))
	g.Money = 7

	ok := g.UseTarot(0)

	assert.True(t, ok)
	assert.Equal(t, int64(14), g.Money)
	assert.Empty(t, g.Consumables)
}

func TestUseTarotHermitCapsAtTwenty(t *testing.T) {
	g := NewGameWithSeed(1)
	g.Consumables = append(g.Consumables, entities.NewTarotConsumable(entities.TheHermit))
	g.Money = 50

	ok := g.UseTarot(0)

	assert.True(t, ok)
	assert.Equal(t, int64(70), g.Money, "the hermit adds at most $20")
}

func TestUseTarotHierophantEnhancesSelection(t *testing.T) {
	g := NewGameWithSeed(1)
	g.StartBlind()
	g.Consumables = append(g.Consumables, entities.NewTarotConsumable(entities.TheHierophant))

	g.ToggleSelect(0)
	g.ToggleSelect(1)

	ok := g.UseTarot(0)

	assert.True(t, ok)
	assert.Equal(t, entities.EnhancementBonus, g.Hand[0].Enhancement)
	assert.Equal(t, entities.EnhancementBonus, g.Hand[1].Enhancement)
	assert.Equal(t, entities.EnhancementNone, g.Hand[2].Enhancement)
}

func TestUseTarotRejectsWrongSelectionCount(t *testing.T) {
	g := NewGameWithSeed(1)
	g.StartBlind()
	g.Consumables = append(g.Consumables, entities.NewTarotConsumable(entities.TheHierophant))

	// The hierophant wants 1-2 selected cards, none are selected
	assert.False(t, g.UseTarot(0))
	assert.Len(t, g.Consumables, 1, "a rejected tarot should not be consumed")

	g.ToggleSelect(0)
	g.ToggleSelect(1)
	g.ToggleSelect(2)
	assert.False(t, g.UseTarot(0), "three selected cards is too many")
	assert.Len(t, g.Consumables, 1)
}

func TestUseTarotLoverEnhancesFirstSelected(t *testing.T) {
	g := NewGameWithSeed(1)
	g.StartBlind()
	g.Consumables = append(g.Consumables, entities.NewTarotConsumable(entities.TheLover))

	g.ToggleSelect(3)

	ok := g.UseTarot(0)

	assert.True(t, ok)
	assert.Equal(t, entities.EnhancementWild, g.Hand[3].Enhancement)
}

func TestUseTarotChariotNeedsExactlyOne(t *testing.T) {
	g := NewGameWithSeed(1)
	g.StartBlind()
	g.Consumables = append(g.Consumables, entities.NewTarotConsumable(entities.TheChariot))

	g.ToggleSelect(0)
	g.ToggleSelect(1)

	assert.False(t, g.UseTarot(0), "the chariot wants exactly one card")

	g.ToggleSelect(1)
	assert.True(t, g.UseTarot(0))
	assert.Equal(t, entities.EnhancementSteel, g.Hand[0].Enhancement)
}

func TestUseTarotStrengthRaisesRanks(t *testing.T) {
	g := NewGameWithSeed(1)
	g.StartBlind()
	g.Consumables = append(g.Consumables, entities.NewTarotConsumable(entities.Strength))

	g.Hand[0] = entities.NewCard(entities.Hearts, entities.Seven)
	g.Hand[1] = entities.NewCard(entities.Spades, entities.Ace)
	g.ToggleSelect(0)
	g.ToggleSelect(1)

	ok := g.UseTarot(0)

	assert.True(t, ok)
	assert.Equal(t, entities.Eight, g.Hand[0].Rank)
	assert.Equal(t, entities.Two, g.Hand[1].Rank, "an ace wraps around to two")
}

func TestUseTarotTemperancePaysJokerValue(t *testing.T) {
	g := NewGameWithSeed(1)
	g.Consumables = append(g.Consumables, entities.NewTarotConsumable(entities.Temperance))
	g.Jokers = append(g.Jokers,
		entities.NewJoker(entities.BaseJoker),
		entities.NewJoker(entities.TheDuo),
	)
	g.Money = 0

	ok := g.UseTarot(0)

	assert.True(t, ok)
	assert.Equal(t, int64(6), g.Money, "joker sell values are 2 and 4")
}

func TestUseTarotDeathIsANoOp(t *testing.T) {
	g := NewGameWithSeed(1)
	g.StartBlind()
	g.Consumables = append(g.Consumables, entities.NewTarotConsumable(entities.Death))

	g.ToggleSelect(0)
	assert.False(t, g.UseTarot(0), "death wants exactly two cards")

	g.ToggleSelect(1)
	before0 := g.Hand[0].Clone()
	before1 := g.Hand[1].Clone()

	assert.True(t, g.UseTarot(0))
	assert.True(t, g.Hand[0].Equals(before0))
	assert.True(t, g.Hand[1].Equals(before1))
	assert.Empty(t, g.Consumables)
}

func TestUseTarotOnPlanet(t *testing.T) {
	g := NewGameWithSeed(1)
	g.Consumables = append(g.Consumables, entities.NewPlanetConsumable(entities.Pluto))

	assert.False(t, g.UseTarot(0))
	assert.Len(t, g.Consumables, 1)
}
