package entities

import "fmt"

// PlanetCard levels up one poker hand type when used

type PlanetCard string

const (
	Pluto   PlanetCard = "PLUTO"    // High Card
	Mercury PlanetCard = "MERCURY"  // Pair
	Uranus  PlanetCard = "URANUS"   // Two Pair
	Venus   PlanetCard = "VENUS"    // Three of a Kind
	Saturn  PlanetCard = "SATURN"   // Straight
	Jupiter PlanetCard = "JUPITER"  // Flush
	Earth   PlanetCard = "EARTH"    // Full House
	Mars    PlanetCard = "MARS"     // Four of a Kind
	Neptune PlanetCard = "NEPTUNE"  // Straight Flush
	PlanetX PlanetCard = "PLANET_X" // Five of a Kind
	Ceres   PlanetCard = "CERES"    // Flush House
	Eris    PlanetCard = "ERIS"     // Flush Five
)

// AllPlanets lists every planet card.
var AllPlanets = []PlanetCard{
	Pluto, Mercury, Uranus, Venus, Saturn, Jupiter,
	Earth, Mars, Neptune, PlanetX, Ceres, Eris,
}

// CommonPlanets lists the planets that appear in the shop. Planets for
// the secret hands (Five of a Kind and up) never roll there.
var CommonPlanets = []PlanetCard{
	Pluto, Mercury, Uranus, Venus, Saturn, Jupiter, Earth, Mars, Neptune,
}

// Name returns the display name of the planet
func (p PlanetCard) Name() string {
	switch p {
	case Pluto:
		return "Pluto"
	case Mercury:
		return "Mercury"
	case Uranus:
		return "Uranus"
	case Venus:
		return "Venus"
	case Saturn:
		return "Saturn"
	case Jupiter:
		return "Jupiter"
	case Earth:
		return "Earth"
	case Mars:
		return "Mars"
	case Neptune:
		return "Neptune"
	case PlanetX:
		return "Planet X"
	case Ceres:
		return "Ceres"
	case Eris:
		return "Eris"
	}
	return string(p)
}

// HandType returns the poker hand this planet levels up
func (p PlanetCard) HandType() PokerHand {
	switch p {
	case Pluto:
		return HighCard
	case Mercury:
		return Pair
	case Uranus:
		return TwoPair
	case Venus:
		return ThreeOfAKind
	case Saturn:
		return Straight
	case Jupiter:
		return Flush
	case Earth:
		return FullHouse
	case Mars:
		return FourOfAKind
	case Neptune:
		return StraightFlush
	case PlanetX:
		return FiveOfAKind
	case Ceres:
		return FlushHouse
	case Eris:
		return FlushFive
	}
	return HighCard
}

// Description returns the effect text shown in the shop
func (p PlanetCard) Description() string {
	hand := p.HandType()
	return fmt.Sprintf("Level up %s (+%d Chips, +%d Mult)", hand, hand.LevelUpChips(), hand.LevelUpMult())
}

// TarotCard mutates playing cards or grants money when used

type TarotCard string

const (
	TheFool          TarotCard = "THE_FOOL"
	TheMagician      TarotCard = "THE_MAGICIAN"
	TheHighPriestess TarotCard = "HIGH_PRIESTESS"
	TheEmpress       TarotCard = "THE_EMPRESS"
	TheEmperor       TarotCard = "THE_EMPEROR"
	TheHierophant    TarotCard = "HIEROPHANT"
	TheLover         TarotCard = "THE_LOVER"
	TheChariot       TarotCard = "THE_CHARIOT"
	Strength         TarotCard = "STRENGTH"
	TheHermit        TarotCard = "THE_HERMIT"
	Death            TarotCard = "DEATH"
	Temperance       TarotCard = "TEMPERANCE"
)

// AllTarots lists every tarot card.
var AllTarots = []TarotCard{
	TheFool, TheMagician, TheHighPriestess, TheEmpress,
	TheEmperor, TheHierophant, TheLover, TheChariot,
	Strength, TheHermit, Death, Temperance,
}

// Name returns the display name of the tarot
func (t TarotCard) Name() string {
	switch t {
	case TheFool:
		return "The Fool"
	case TheMagician:
		return "The Magician"
	case TheHighPriestess:
		return "High Priestess"
	case TheEmpress:
		return "The Empress"
	case TheEmperor:
		return "The Emperor"
	case TheHierophant:
		return "Hierophant"
	case TheLover:
		return "The Lover"
	case TheChariot:
		return "The Chariot"
	case Strength:
		return "Strength"
	case TheHermit:
		return "The Hermit"
	case Death:
		return "Death"
	case Temperance:
		return "Temperance"
	}
	return string(t)
}

// Description returns the effect text shown in the shop
func (t TarotCard) Description() string {
	switch t {
	case TheFool:
		return "Copy last Tarot/Planet used"
	case TheMagician:
		return "Enhance 1-2 cards to Lucky"
	case TheHighPriestess:
		return "Create up to 2 Planet cards"
	case TheEmpress:
		return "Enhance 1-2 cards to Mult"
	case TheEmperor:
		return "Create up to 2 Tarot cards"
	case TheHierophant:
		return "Enhance 1-2 cards to Bonus"
	case TheLover:
		return "Enhance 1 card to Wild"
	case TheChariot:
		return "Enhance 1 card to Steel"
	case Strength:
		return "Increase rank of 1-2 cards by 1"
	case TheHermit:
		return "Double money (max $20)"
	case Death:
		return "Convert left card to right card"
	case Temperance:
		return "Gain $ equal to joker sell value"
	}
	return ""
}

// CardsNeeded returns the minimum and maximum selected cards this tarot
// requires. A zero minimum means the tarot ignores the selection.
func (t TarotCard) CardsNeeded() (int, int) {
	switch t {
	case TheFool, TheHighPriestess, TheEmperor, TheHermit, Temperance:
		return 0, 0
	case TheLover, TheChariot:
		return 1, 1
	case Death:
		return 2, 2
	default:
		return 1, 2
	}
}

// Consumable is a single-use item held by the player. Exactly one of
// Planet or Tarot is set.

type Consumable struct {
	Planet PlanetCard
	Tarot  TarotCard
}

// NewPlanetConsumable wraps a planet card as a consumable

func NewPlanetConsumable(p PlanetCard) *Consumable {
	return &Consumable{Planet: p}
}

// NewTarotConsumable wraps a tarot card as a consumable

func NewTarotConsumable(t TarotCard) *Consumable {
	return &Consumable{Tarot: t}
}

// IsPlanet returns true if the consumable is a planet card
func (c *Consumable) IsPlanet() bool {
	return c.Planet != ""
}

// IsTarot returns true if the consumable is a tarot card
func (c *Consumable) IsTarot() bool {
	return c.Tarot != ""
}

// Name returns the display name of the consumable
func (c *Consumable) Name() string {
	if c.IsPlanet() {
		return c.Planet.Name()
	}
	return c.Tarot.Name()
}

// Description returns the effect text of the consumable
func (c *Consumable) Description() string {
	if c.IsPlanet() {
		return c.Planet.Description()
	}
	return c.Tarot.Description()
}

// Price returns the shop price of the consumable
func (c *Consumable) Price() int64 {
	return 3
}
