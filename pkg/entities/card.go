package entities

import (
	"fmt"
	"strconv"
)

// Suit represents a card suit

type Suit string

const (
	Spades   Suit = "SPADES"
	Hearts   Suit = "HEARTS"
	Diamonds Suit = "DIAMONDS"
	Clubs    Suit = "CLUBS"
)

// AllSuits lists every suit in deck construction order.
var AllSuits = []Suit{Spades, Hearts, Diamonds, Clubs}

// IsRed returns true for Hearts and Diamonds
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Symbol returns the one-rune suit symbol
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	}
	return "?"
}

// Rank represents a card rank

type Rank string

const (
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
	Ace   Rank = "A"
)

// AllRanks lists every rank from Two up to Ace.
var AllRanks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Ordinal returns the ordering value of the rank, Two=2 through Ace=14.
// Straight detection and rank comparisons use this value.
func (r Rank) Ordinal() int {
	switch r {
	case Jack:
		return 11
	case Queen:
		return 12
	case King:
		return 13
	case Ace:
		return 14
	default:
		val, _ := strconv.Atoi(string(r))
		return val
	}
}

// Chips returns the chip value the rank contributes when it scores
func (r Rank) Chips() int64 {
	switch r {
	case Ace:
		return 11
	case Ten, Jack, Queen, King:
		return 10
	default:
		return int64(r.Ordinal())
	}
}

// IsFace returns true for Jack, Queen and King
func (r Rank) IsFace() bool {
	return r == Jack || r == Queen || r == King
}

// Next returns the rank one step up, wrapping Ace back around to Two
func (r Rank) Next() Rank {
	for i, rank := range AllRanks {
		if rank == r {
			return AllRanks[(i+1)%len(AllRanks)]
		}
	}
	return r
}

// Enhancement alters how a card contributes to scoring

type Enhancement string

const (
	EnhancementNone  Enhancement = ""
	EnhancementBonus Enhancement = "BONUS" // +30 chips
	EnhancementMult  Enhancement = "MULT"  // +4 mult
	EnhancementWild  Enhancement = "WILD"  // counts as every suit
	EnhancementGlass Enhancement = "GLASS" // x2 mult
	EnhancementSteel Enhancement = "STEEL" // x1.5 mult while held
	EnhancementStone Enhancement = "STONE" // +50 chips, always scores
	EnhancementGold  Enhancement = "GOLD"  // $3 if held at round end
	EnhancementLucky Enhancement = "LUCKY" // chance-based bonus
)

// Edition is a printing variant with a flat scoring bonus

type Edition string

const (
	EditionBase        Edition = ""
	EditionFoil        Edition = "FOIL"        // +50 chips
	EditionHolographic Edition = "HOLOGRAPHIC" // +10 mult
	EditionPolychrome  Edition = "POLYCHROME"  // x1.5 mult
)

// Seal triggers a secondary effect when the card is played or discarded

type Seal string

const (
	SealNone   Seal = ""
	SealGold   Seal = "GOLD"
	SealRed    Seal = "RED"
	SealBlue   Seal = "BLUE"
	SealPurple Seal = "PURPLE"
)

// Card represents a playing card and its attached modifiers

type Card struct {
	Suit        Suit
	Rank        Rank
	Enhancement Enhancement
	Edition     Edition
	Seal        Seal
	Debuffed    bool
}

// NewCard creates a plain card with no modifiers

func NewCard(suit Suit, rank Rank) *Card {
	return &Card{
		Suit: suit,
		Rank: rank,
	}
}

// ChipValue returns the chips this card contributes when it scores.
// Stone cards ignore their rank and contribute a flat 50. A debuffed
// card contributes nothing.
func (c *Card) ChipValue() int64 {
	if c.Debuffed {
		return 0
	}

	base := c.Rank.Chips()
	if c.Enhancement == EnhancementStone {
		base = 50
	}

	var bonus int64
	if c.Enhancement == EnhancementBonus {
		bonus = 30
	}

	var editionBonus int64
	if c.Edition == EditionFoil {
		editionBonus = 50
	}

	return base + bonus + editionBonus
}

// MultBonus returns the flat mult this card adds when it scores
func (c *Card) MultBonus() int64 {
	if c.Debuffed {
		return 0
	}

	var mult int64
	if c.Enhancement == EnhancementMult {
		mult += 4
	}
	if c.Edition == EditionHolographic {
		mult += 10
	}
	return mult
}

// XMult returns the multiplicative mult this card applies when it scores
func (c *Card) XMult() float64 {
	if c.Debuffed {
		return 1.0
	}

	x := 1.0
	if c.Enhancement == EnhancementGlass {
		x *= 2.0
	}
	if c.Edition == EditionPolychrome {
		x *= 1.5
	}
	return x
}

// IsWild returns true if the card counts as every suit
func (c *Card) IsWild() bool {
	return c.Enhancement == EnhancementWild
}

// AlwaysScores returns true if the card scores even when it is not
// part of the detected poker hand
func (c *Card) AlwaysScores() bool {
	return c.Enhancement == EnhancementStone
}

// HasSuit returns true if the card counts as the given suit
func (c *Card) HasSuit(suit Suit) bool {
	return c.Suit == suit || c.IsWild()
}

// Equals compares every field of two cards
func (c *Card) Equals(other *Card) bool {
	if other == nil {
		return false
	}
	return c.Suit == other.Suit &&
		c.Rank == other.Rank &&
		c.Enhancement == other.Enhancement &&
		c.Edition == other.Edition &&
		c.Seal == other.Seal &&
		c.Debuffed == other.Debuffed
}

// Clone returns an independent copy of the card
func (c *Card) Clone() *Card {
	copied := *c
	return &copied
}

// String returns the string representation of the card
func (c *Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit.Symbol())
}
