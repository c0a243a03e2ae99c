package scoring

import (
	"sort"
	"testing"

	"github.com/fadedpez/anteup/pkg/entities"
	"github.com/stretchr/testify/assert"
)

func TestDetectHandEmpty(t *testing.T) {
	result := DetectHand(nil)

	assert.Equal(t, entities.HighCard, result.HandType)
	assert.Empty(t, result.ScoringIndices)
}

func TestDetectHighCard(t *testing.T) {
	cards := []*entities.Card{
		entities.NewCard(entities.Hearts, entities.Two),
		entities.NewCard(entities.Spades, entities.King),
		entities.NewCard(entities.Clubs, entities.Seven),
	}

	result := DetectHand(cards)

	assert.Equal(t, entities.HighCard, result.HandType)
	assert.Equal(t, []int{1}, result.ScoringIndices, "only the king should score")
}

func TestDetectHighCardPicksMaxWherever(t *testing.T) {
	cards := []*entities.Card{
		entities.NewCard(entities.Hearts, entities.Ace),
		entities.NewCard(entities.Spades, entities.Three),
	}

	result := DetectHand(cards)

	assert.Equal(t, entities.HighCard, result.HandType)
	assert.Equal(t, []int{0}, result.ScoringIndices, "the ace at the front should score")
}

func TestDetectPair(t *testing.T) {
	cards := []*entities.Card{
		entities.NewCard(entities.Hearts, entities.King),
		entities.NewCard(entities.Clubs, entities.Five),
		entities.NewCard(entities.Spades, entities.King),
	}

	result := DetectHand(cards)

	assert.Equal(t, entities.Pair, result.HandType)
	assert.Equal(t, []int{0, 2}, result.ScoringIndices)
}

func TestDetectTwoPair(t *testing.T) {
	cards := []*entities.Card{
		entities.NewCard(entities.Hearts, entities.King),
		entities.NewCard(entities.Clubs, entities.Five),
		entities.NewCard(entities.Spades, entities.King),
		entities.NewCard(entities.Diamonds, entities.Five),
		entities.NewCard(entities.Hearts, entities.Two),
	}

	result := DetectHand(cards)

	assert.Equal(t, entities.TwoPair, result.HandType)
	assert.Equal(t, []int{0, 1, 2, 3}, result.ScoringIndices, "the lone two should not score")
}

func TestDetectThreeOfAKind(t *testing.T) {
	cards := []*entities.Card{
		entities.NewCard(entities.Hearts, entities.Nine),
		entities.NewCard(entities.Clubs, entities.Nine),
		entities.NewCard(entities.Spades, entities.Nine),
		entities.NewCard(entities.Diamonds, entities.Two),
	}

	result := DetectHand(cards)

	assert.Equal(t, entities.ThreeOfAKind, result.HandType)
	assert.Equal(t, []int{0, 1, 2}, result.ScoringIndices)
}

func TestDetectStraight(t *testing.T) {
	cards := []*entities.Card{
		entities.NewCard(entities.Hearts, entities.Nine),
		entities.NewCard(entities.Clubs, entities.Six),
		entities.NewCard(entities.Spades, entities.Eight),
		entities.NewCard(entities.Diamonds, entities.Seven),
		entities.NewCard(entities.Hearts, entities.Five),
	}

	result := DetectHand(cards)

	assert.Equal(t, entities.Straight, result.HandType)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, result.ScoringIndices)
}

func TestDetectStraightAceLow(t *testing.T) {
	cards := []*entities.Card{
		entities.NewCard(entities.Hearts, entities.Ace),
		entities.NewCard(entities.Clubs, entities.Three),
		entities.NewCard(entities.Spades, entities.Two),
		entities.NewCard(entities.Diamonds, entities.Five),
		entities.NewCard(entities.Hearts, entities.Four),
	}

	result := DetectHand(cards)

	assert.Equal(t, entities.Straight, result.HandType)
}

func TestDetectStraightAceHigh(t *testing.T) {
	cards := []*entities.Card{
		entities.NewCard(entities.Hearts, entities.Ace),
		entities.NewCard(entities.Clubs, entities.King),
		entities.NewCard(entities.Spades, entities.Queen),
		entities.NewCard(entities.Diamonds, entities.Jack),
		entities.NewCard(entities.Hearts, entities.Ten),
	}

	result := DetectHand(cards)

	assert.Equal(t, entities.Straight, result.HandType)
}

func TestDetectStraightRequiresFiveCards(t *testing.T) {
	cards := []*entities.Card{
		entities.NewCard(entities.Hearts, entities.Five),
		entities.NewCard(entities.Clubs, entities.Six),
		entities.NewCard(entities.Spades, entities.Seven),
		entities.NewCard(entities.Diamonds, entities.Eight),
	}

	result := DetectHand(cards)

	assert.Equal(t, entities.HighCard, result.HandType)
}

func TestDetectStraightRejectsWraparound(t *testing.T) {
	// Q-K-A-2-3 is not a straight
	cards := []*entities.Card{
		entities.NewCard(entities.Hearts, entities.Queen),
		entities.NewCard(entities.Clubs, entities.King),
		entities.NewCard(entities.Spades, entities.Ace),
		entities.NewCard(entities.Diamonds, entities.Two),
		entities.NewCard(entities.Hearts, entities.Three),
	}

	result := DetectHand(cards)

	assert.Equal(t, entities.HighCard, result.HandType)
}

func TestDetectFlush(t *testing.T) {
	cards := []*entities.Card{
		entities.NewCard(entities.Hearts, entities.Two),
		entities.NewCard(entities.Hearts, entities.Five),
		entities.NewCard(entities.Hearts, entities.Eight),
		entities.NewCard(entities.Hearts, entities.Jack),
		entities.NewCard(entities.Hearts, entities.Ace),
	}

	result := DetectHand(cards)

	assert.Equal(t, entities.Flush, result.HandType)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, result.ScoringIndices)
}

func TestDetectFlushWithWildCard(t *testing.T) {
	wild := entities.NewCard(entities.Spades, entities.Five)
	wild.Enhancement = entities.EnhancementWild

	cards := []*entities.Card{
		entities.NewCard(entities.Hearts, entities.Two),
		wild,
		entities.NewCard(entities.Hearts, entities.Eight),
		entities.NewCard(entities.Hearts, entities.Jack),
		entities.NewCard(entities.Hearts, entities.Ace),
	}

	result := DetectHand(cards)

	assert.Equal(t, entities.Flush, result.HandType, "a wild card should fill out a flush in any suit")
}

func TestDetectFlushRequiresFiveCards(t *testing.T) {
	cards := []*entities.Card{
		entities.NewCard(entities.Hearts, entities.Two),
		entities.NewCard(entities.Hearts, entities.Five),
		entities.NewCard(entities.Hearts, entities.Eight),
		entities.NewCard(entities.Hearts, entities.Jack),
	}

	result := DetectHand(cards)

	assert.Equal(t, entities.HighCard, result.HandType)
}

func TestDetectFullHouse(t *testing.T) {
	cards := []*entities.Card{
		entities.NewCard(entities.Hearts, entities.King),
		entities.NewCard(entities.Clubs, entities.King),
		entities.NewCard(entities.Spades, entities.King),
		entities.NewCard(entities.Diamonds, entities.Five),
		entities.NewCard(entities.Hearts, entities.Five),
	}

	result := DetectHand(cards)

	assert.Equal(t, entities.FullHouse, result.HandType)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, result.ScoringIndices)
}

func TestDetectFourOfAKind(t *testing.T) {
	cards := []*entities.Card{
		entities.NewCard(entities.Hearts, entities.Nine),
		entities.NewCard(entities.Clubs, entities.Nine),
		entities.NewCard(entities.Spades, entities.Nine),
		entities.NewCard(entities.Diamonds, entities.Nine),
		entities.NewCard(entities.Hearts, entities.Two),
	}

	result := DetectHand(cards)

	assert.Equal(t, entities.FourOfAKind, result.HandType)
	assert.Equal(t, []int{0, 1, 2, 3}, result.ScoringIndices)
}

func TestDetectStraightFlush(t *testing.T) {
	cards := []*entities.Card{
		entities.NewCard(entities.Clubs, entities.Five),
		entities.NewCard(entities.Clubs, entities.Six),
		entities.NewCard(entities.Clubs, entities.Seven),
		entities.NewCard(entities.Clubs, entities.Eight),
		entities.NewCard(entities.Clubs, entities.Nine),
	}

	result := DetectHand(cards)

	assert.Equal(t, entities.StraightFlush, result.HandType)
}

func TestDetectRoyalFlush(t *testing.T) {
	cards := []*entities.Card{
		entities.NewCard(entities.Spades, entities.Ten),
		entities.NewCard(entities.Spades, entities.Jack),
		entities.NewCard(entities.Spades, entities.Queen),
		entities.NewCard(entities.Spades, entities.King),
		entities.NewCard(entities.Spades, entities.Ace),
	}

	result := DetectHand(cards)

	assert.Equal(t, entities.RoyalFlush, result.HandType)
}

func TestDetectFiveOfAKind(t *testing.T) {
	cards := []*entities.Card{
		entities.NewCard(entities.Hearts, entities.Ace),
		entities.NewCard(entities.Clubs, entities.Ace),
		entities.NewCard(entities.Spades, entities.Ace),
		entities.NewCard(entities.Diamonds, entities.Ace),
		entities.NewCard(entities.Hearts, entities.Ace),
	}

	result := DetectHand(cards)

	assert.Equal(t, entities.FiveOfAKind, result.HandType)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, result.ScoringIndices)
}

func TestDetectFlushHouse(t *testing.T) {
	cards := []*entities.Card{
		entities.NewCard(entities.Hearts, entities.King),
		entities.NewCard(entities.Hearts, entities.King),
		entities.NewCard(entities.Hearts, entities.King),
		entities.NewCard(entities.Hearts, entities.Five),
		entities.NewCard(entities.Hearts, entities.Five),
	}

	result := DetectHand(cards)

	assert.Equal(t, entities.FlushHouse, result.HandType)
}

func TestDetectFlushFive(t *testing.T) {
	cards := []*entities.Card{
		entities.NewCard(entities.Hearts, entities.Ace),
		entities.NewCard(entities.Hearts, entities.Ace),
		entities.NewCard(entities.Hearts, entities.Ace),
		entities.NewCard(entities.Hearts, entities.Ace),
		entities.NewCard(entities.Hearts, entities.Ace),
	}

	result := DetectHand(cards)

	assert.Equal(t, entities.FlushFive, result.HandType)
}

func TestDetectScoringIndicesAreAscending(t *testing.T) {
	// Deal the pair out of order so the grouped indices need sorting
	cards := []*entities.Card{
		entities.NewCard(entities.Spades, entities.King),
		entities.NewCard(entities.Clubs, entities.Five),
		entities.NewCard(entities.Hearts, entities.King),
		entities.NewCard(entities.Diamonds, entities.Five),
	}

	result := DetectHand(cards)

	assert.Equal(t, entities.TwoPair, result.HandType)
	assert.True(t, sort.IntsAreSorted(result.ScoringIndices), "scoring indices should come back sorted")
	assert.Equal(t, []int{0, 1, 2, 3}, result.ScoringIndices)
}
