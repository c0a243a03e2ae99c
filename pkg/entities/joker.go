package entities

// JokerRarity is the rarity tier of a joker, which sets its base price

type JokerRarity string

const (
	RarityCommon    JokerRarity = "COMMON"
	RarityUncommon  JokerRarity = "UNCOMMON"
	RarityRare      JokerRarity = "RARE"
	RarityLegendary JokerRarity = "LEGENDARY"
)

// BasePrice returns the shop price for jokers of this rarity
func (r JokerRarity) BasePrice() int64 {
	switch r {
	case RarityCommon:
		return 4
	case RarityUncommon:
		return 6
	case RarityRare:
		return 8
	case RarityLegendary:
		return 20
	}
	return 0
}

// JokerType identifies a joker and its scoring behavior

type JokerType string

const (
	BaseJoker       JokerType = "JOKER"            // +4 mult
	GreedyJoker     JokerType = "GREEDY_JOKER"     // +3 mult per scoring Diamond
	LustyJoker      JokerType = "LUSTY_JOKER"      // +3 mult per scoring Heart
	WrathfulJoker   JokerType = "WRATHFUL_JOKER"   // +3 mult per scoring Spade
	GluttonousJoker JokerType = "GLUTTONOUS_JOKER" // +3 mult per scoring Club
	JollyJoker      JokerType = "JOLLY_JOKER"      // +8 mult if hand has a Pair
	ZanyJoker       JokerType = "ZANY_JOKER"       // +12 mult if hand has a Three of a Kind
	CrazyJoker      JokerType = "CRAZY_JOKER"      // +12 mult if hand has a Straight
	HalfJoker       JokerType = "HALF_JOKER"       // +20 mult if 3 or fewer cards played
	Banner          JokerType = "BANNER"           // +30 chips per discard remaining
	OddTodd         JokerType = "ODD_TODD"         // +31 chips per scoring odd rank
	Scholar         JokerType = "SCHOLAR"          // +20 chips, +4 mult per scoring Ace
	SteelJoker      JokerType = "STEEL_JOKER"      // x mult per Steel card held
	Blackboard      JokerType = "BLACKBOARD"       // x3 mult if all held cards are dark
	TheDuo          JokerType = "THE_DUO"          // x2 mult if hand has a Pair
	Egg             JokerType = "EGG"              // +$3 sell value per round
	GoldenJoker     JokerType = "GOLDEN_JOKER"     // +$4 at end of round
	Hack            JokerType = "HACK"             // retrigger scoring 2,3,4,5
	Blueprint       JokerType = "BLUEPRINT"        // copy the joker to the right
	TheTrio         JokerType = "THE_TRIO"         // x3 mult if hand has a Three of a Kind
)

// AllJokerTypes lists every joker available in the pool.
var AllJokerTypes = []JokerType{
	BaseJoker,
	GreedyJoker,
	LustyJoker,
	WrathfulJoker,
	GluttonousJoker,
	JollyJoker,
	ZanyJoker,
	CrazyJoker,
	HalfJoker,
	Banner,
	OddTodd,
	Scholar,
	SteelJoker,
	Blackboard,
	TheDuo,
	Egg,
	GoldenJoker,
	Hack,
	Blueprint,
	TheTrio,
}

// Name returns the display name of the joker
func (t JokerType) Name() string {
	switch t {
	case BaseJoker:
		return "Joker"
	case GreedyJoker:
		return "Greedy Joker"
	case LustyJoker:
		return "Lusty Joker"
	case WrathfulJoker:
		return "Wrathful Joker"
	case GluttonousJoker:
		return "Gluttonous Joker"
	case JollyJoker:
		return "Jolly Joker"
	case ZanyJoker:
		return "Zany Joker"
	case CrazyJoker:
		return "Crazy Joker"
	case HalfJoker:
		return "Half Joker"
	case Banner:
		return "Banner"
	case OddTodd:
		return "Odd Todd"
	case Scholar:
		return "Scholar"
	case SteelJoker:
		return "Steel Joker"
	case Blackboard:
		return "Blackboard"
	case TheDuo:
		return "The Duo"
	case Egg:
		return "Egg"
	case GoldenJoker:
		return "Golden Joker"
	case Hack:
		return "Hack"
	case Blueprint:
		return "Blueprint"
	case TheTrio:
		return "The Trio"
	}
	return string(t)
}

// Description returns the effect text shown in the shop
func (t JokerType) Description() string {
	switch t {
	case BaseJoker:
		return "+4 Mult"
	case GreedyJoker:
		return "+3 Mult per Diamond"
	case LustyJoker:
		return "+3 Mult per Heart"
	case WrathfulJoker:
		return "+3 Mult per Spade"
	case GluttonousJoker:
		return "+3 Mult per Club"
	case JollyJoker:
		return "+8 Mult if Pair in hand"
	case ZanyJoker:
		return "+12 Mult if Three of a Kind"
	case CrazyJoker:
		return "+12 Mult if Straight"
	case HalfJoker:
		return "+20 Mult if <=3 cards"
	case Banner:
		return "+30 Chips per discard left"
	case OddTodd:
		return "+31 Chips per odd card"
	case Scholar:
		return "+20 Chips, +4 Mult per Ace"
	case SteelJoker:
		return "x0.2 Mult per Steel card"
	case Blackboard:
		return "x3 if held cards all dark"
	case TheDuo:
		return "x2 Mult if Pair in hand"
	case Egg:
		return "+$3 sell value per round"
	case GoldenJoker:
		return "+$4 at end of round"
	case Hack:
		return "Retrigger 2,3,4,5 cards"
	case Blueprint:
		return "Copy joker to the right"
	case TheTrio:
		return "x3 if Three of a Kind"
	}
	return ""
}

// Rarity returns the rarity tier of the joker
func (t JokerType) Rarity() JokerRarity {
	switch t {
	case Scholar, SteelJoker, TheDuo, TheTrio:
		return RarityUncommon
	case Blackboard, Blueprint:
		return RarityRare
	default:
		return RarityCommon
	}
}

// Price returns the shop price of the joker
func (t JokerType) Price() int64 {
	return t.Rarity().BasePrice()
}

// Joker is a joker instance owned by the player

type Joker struct {
	Type      JokerType
	SellValue int64
	BonusSell int64 // accumulated sell value bonus, grown by Egg each round
}

// NewJoker creates a joker selling for half its shop price

func NewJoker(t JokerType) *Joker {
	return &Joker{
		Type:      t,
		SellValue: t.Price() / 2,
	}
}

// TotalSellValue returns the sell value including accumulated bonuses
func (j *Joker) TotalSellValue() int64 {
	return j.SellValue + j.BonusSell
}
