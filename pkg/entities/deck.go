package entities

import "math/rand"

// Deck holds a draw pile and a discard pile. Cards move between the
// piles and the player's hand; no card is ever in two places at once.
type Deck struct {
	cards   []*Card
	discard []*Card
}

// NewDeck creates a standard deck of 52 cards, one of each rank and suit
func NewDeck() *Deck {
	cards := make([]*Card, 0, 52)
	for _, suit := range AllSuits {
		for _, rank := range AllRanks {
			cards = append(cards, NewCard(suit, rank))
		}
	}

	return &Deck{cards: cards}
}

// Shuffle randomizes the draw pile using the supplied random source
func (d *Deck) Shuffle(r *rand.Rand) {
	r.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns up to n cards from the top of the draw pile.
// Returns fewer cards when the pile runs low.
func (d *Deck) Draw(n int) []*Card {
	if n <= 0 {
		return nil
	}
	if n > len(d.cards) {
		n = len(d.cards)
	}

	drawn := make([]*Card, n)
	copy(drawn, d.cards[:n])
	d.cards = d.cards[n:]
	return drawn
}

// DiscardCards places cards on the discard pile
func (d *Deck) DiscardCards(cards []*Card) {
	d.discard = append(d.discard, cards...)
}

// ReshuffleDiscard moves the discard pile back into the draw pile and shuffles
func (d *Deck) ReshuffleDiscard(r *rand.Rand) {
	d.cards = append(d.cards, d.discard...)
	d.discard = nil
	d.Shuffle(r)
}

// ResetAndShuffle gathers every discarded card back into the draw pile and
// shuffles. Card modifications (enhancements, editions, seals) are preserved.
func (d *Deck) ResetAndShuffle(r *rand.Rand) {
	d.ReshuffleDiscard(r)
}

// Remaining returns the number of cards left in the draw pile
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// DiscardCount returns the number of cards in the discard pile
func (d *Deck) DiscardCount() int {
	return len(d.discard)
}

// Total returns the number of cards across both piles
func (d *Deck) Total() int {
	return len(d.cards) + len(d.discard)
}

// AddCard puts a card on top of the draw pile
func (d *Deck) AddCard(card *Card) {
	d.cards = append(d.cards, card)
}

// RemoveCard removes the first card equal to the given one from either
// pile. Returns false if no match exists.
func (d *Deck) RemoveCard(card *Card) bool {
	for i, c := range d.cards {
		if c.Equals(card) {
			d.cards = append(d.cards[:i], d.cards[i+1:]...)
			return true
		}
	}
	for i, c := range d.discard {
		if c.Equals(card) {
			d.discard = append(d.discard[:i], d.discard[i+1:]...)
			return true
		}
	}
	return false
}
