package entities

// PokerHand classifies a set of played cards. Values are ordered from
// weakest to strongest, so hand types compare directly with < and >=.
// The ordering feeds joker conditions like "hand contains at least a Pair".
type PokerHand int

const (
	HighCard PokerHand = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
	FiveOfAKind
	FlushHouse
	FlushFive
)

// AllPokerHands lists every hand type from weakest to strongest.
var AllPokerHands = []PokerHand{
	HighCard,
	Pair,
	TwoPair,
	ThreeOfAKind,
	Straight,
	Flush,
	FullHouse,
	FourOfAKind,
	StraightFlush,
	RoyalFlush,
	FiveOfAKind,
	FlushHouse,
	FlushFive,
}

// BaseChips returns the chips for this hand at level 1
func (h PokerHand) BaseChips() int64 {
	switch h {
	case HighCard:
		return 5
	case Pair:
		return 10
	case TwoPair:
		return 20
	case ThreeOfAKind:
		return 30
	case Straight:
		return 30
	case Flush:
		return 35
	case FullHouse:
		return 40
	case FourOfAKind:
		return 60
	case StraightFlush, RoyalFlush:
		return 100
	case FiveOfAKind:
		return 120
	case FlushHouse:
		return 140
	case FlushFive:
		return 160
	}
	return 0
}

// BaseMult returns the mult for this hand at level 1
func (h PokerHand) BaseMult() int64 {
	switch h {
	case HighCard:
		return 1
	case Pair, TwoPair:
		return 2
	case ThreeOfAKind:
		return 3
	case Straight, Flush, FullHouse:
		return 4
	case FourOfAKind:
		return 7
	case StraightFlush, RoyalFlush:
		return 8
	case FiveOfAKind:
		return 12
	case FlushHouse:
		return 14
	case FlushFive:
		return 16
	}
	return 0
}

// LevelUpChips returns the chips gained per level
func (h PokerHand) LevelUpChips() int64 {
	switch h {
	case HighCard:
		return 10
	case Pair:
		return 15
	case TwoPair, ThreeOfAKind:
		return 20
	case Straight:
		return 30
	case Flush:
		return 15
	case FullHouse:
		return 25
	case FourOfAKind:
		return 30
	case StraightFlush, RoyalFlush:
		return 40
	case FiveOfAKind:
		return 35
	case FlushHouse:
		return 40
	case FlushFive:
		return 50
	}
	return 0
}

// LevelUpMult returns the mult gained per level
func (h PokerHand) LevelUpMult() int64 {
	switch h {
	case HighCard, Pair, TwoPair:
		return 1
	case ThreeOfAKind:
		return 2
	case Straight:
		return 3
	case Flush, FullHouse:
		return 2
	case FourOfAKind:
		return 3
	case StraightFlush, RoyalFlush:
		return 4
	case FiveOfAKind:
		return 3
	case FlushHouse:
		return 4
	case FlushFive:
		return 3
	}
	return 0
}

// String returns the display name of the hand
func (h PokerHand) String() string {
	switch h {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	case FiveOfAKind:
		return "Five of a Kind"
	case FlushHouse:
		return "Flush House"
	case FlushFive:
		return "Flush Five"
	}
	return "Unknown"
}
