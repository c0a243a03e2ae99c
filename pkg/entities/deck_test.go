package entities

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"
)

type DeckTestSuite struct {
	suite.Suite
}

func TestDeckSuite(t *testing.T) {
	suite.Run(t, new(DeckTestSuite))
}

func (s *DeckTestSuite) TestNewDeck() {
	deck := NewDeck()

	s.Equal(52, deck.Total(), "Deck should have 52 cards")
	s.Equal(52, deck.Remaining(), "All cards start in the draw pile")
	s.Equal(0, deck.DiscardCount(), "Discard pile starts empty")

	// Verify all suits and ranks are present
	suits := make(map[Suit]int)
	ranks := make(map[Rank]int)
	for _, card := range deck.Draw(52) {
		suits[card.Suit]++
		ranks[card.Rank]++
	}

	for suit, count := range suits {
		s.Equal(13, count, "Each suit should have 13 cards: %s", suit)
	}
	for rank, count := range ranks {
		s.Equal(4, count, "Each rank should have 4 cards: %s", rank)
	}
}

func (s *DeckTestSuite) TestDraw() {
	testCases := []struct {
		name           string
		drawCount      int
		expectedDraw   int
		expectedRemain int
	}{
		{
			name:           "draw zero cards",
			drawCount:      0,
			expectedDraw:   0,
			expectedRemain: 52,
		},
		{
			name:           "draw a hand",
			drawCount:      8,
			expectedDraw:   8,
			expectedRemain: 44,
		},
		{
			name:           "draw more than deck size",
			drawCount:      60,
			expectedDraw:   52,
			expectedRemain: 0,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			deck := NewDeck()

			drawn := deck.Draw(tc.drawCount)

			s.Len(drawn, tc.expectedDraw, "Should draw expected number of cards")
			s.Equal(tc.expectedRemain, deck.Remaining(), "Draw pile should shrink by the drawn count")
		})
	}
}

func (s *DeckTestSuite) TestDiscardAndReshuffle() {
	r := rand.New(rand.NewSource(1))
	deck := NewDeck()

	drawn := deck.Draw(5)
	deck.DiscardCards(drawn)

	s.Equal(5, deck.DiscardCount())
	s.Equal(47, deck.Remaining())

	deck.ReshuffleDiscard(r)

	s.Equal(52, deck.Remaining(), "Reshuffle should return discards to the draw pile")
	s.Equal(0, deck.DiscardCount())
}

func (s *DeckTestSuite) TestShuffleIsDeterministicForSameSeed() {
	deck1 := NewDeck()
	deck2 := NewDeck()

	deck1.Shuffle(rand.New(rand.NewSource(42)))
	deck2.Shuffle(rand.New(rand.NewSource(42)))

	cards1 := deck1.Draw(52)
	cards2 := deck2.Draw(52)
	for i := range cards1 {
		s.True(cards1[i].Equals(cards2[i]), "Same seed should produce the same order at position %d", i)
	}
}

func (s *DeckTestSuite) TestShuffleChangesOrder() {
	deck := NewDeck()
	before := NewDeck().Draw(52)

	deck.Shuffle(rand.New(rand.NewSource(7)))

	after := deck.Draw(52)
	same := true
	for i := range before {
		if !before[i].Equals(after[i]) {
			same = false
			break
		}
	}
	s.False(same, "Shuffled deck should differ from factory order")
	s.Len(after, 52, "No cards should be lost in the shuffle")
}

func (s *DeckTestSuite) TestRemoveCard() {
	r := rand.New(rand.NewSource(3))
	deck := NewDeck()

	s.True(deck.RemoveCard(NewCard(Hearts, Ace)), "Card in the draw pile should be removable")
	s.Equal(51, deck.Total())

	s.False(deck.RemoveCard(NewCard(Hearts, Ace)), "Removing the same card twice should fail")

	// Removal also searches the discard pile
	drawn := deck.Draw(51)
	deck.DiscardCards(drawn)
	deck.Shuffle(r)

	s.True(deck.RemoveCard(NewCard(Spades, Two)), "Card in the discard pile should be removable")
	s.Equal(50, deck.Total())
}

func (s *DeckTestSuite) TestAddCard() {
	deck := NewDeck()
	deck.AddCard(&Card{Suit: Hearts, Rank: Ace, Edition: EditionFoil})

	s.Equal(53, deck.Total())
	s.True(deck.RemoveCard(&Card{Suit: Hearts, Rank: Ace, Edition: EditionFoil}))
}
