package run

import (
	"github.com/fadedpez/anteup/pkg/entities"
)

// UsePlanet consumes the planet at idx, leveling up its poker hand.
// Returns false when idx is out of range or not a planet.
func (g *Game) UsePlanet(idx int) bool {
	if idx < 0 || idx >= len(g.Consumables) {
		return false
	}
	c := g.Consumables[idx]
	if !c.IsPlanet() {
		return false
	}

	g.Levels.LevelUp(c.Planet.HandType())
	g.Consumables = append(g.Consumables[:idx], g.Consumables[idx+1:]...)
	return true
}

// UseTarot consumes the tarot at idx, applying its effect to the
// selected hand cards or to the run itself. Returns false without
// consuming when the selection does not fit the tarot's requirements.
func (g *Game) UseTarot(idx int) bool {
	if idx < 0 || idx >= len(g.Consumables) {
		return false
	}
	c := g.Consumables[idx]
	if !c.IsTarot() {
		return false
	}

	minCards, maxCards := c.Tarot.CardsNeeded()
	count := len(g.selected)
	if minCards > 0 && (count < minCards || count > maxCards) {
		return false
	}

	g.applyTarot(c.Tarot)
	g.Consumables = append(g.Consumables[:idx], g.Consumables[idx+1:]...)
	return true
}

func (g *Game) applyTarot(t entities.TarotCard) {
	switch t {
	case entities.TheHierophant:
		for _, idx := range g.selected {
			g.Hand[idx].Enhancement = entities.EnhancementBonus
		}

	case entities.TheEmpress:
		for _, idx := range g.selected {
			g.Hand[idx].Enhancement = entities.EnhancementMult
		}

	case entities.TheMagician:
		for _, idx := range g.selected {
			g.Hand[idx].Enhancement = entities.EnhancementLucky
		}

	case entities.TheLover:
		g.Hand[g.selected[0]].Enhancement = entities.EnhancementWild

	case entities.TheChariot:
		g.Hand[g.selected[0]].Enhancement = entities.EnhancementSteel

	case entities.Strength:
		for _, idx := range g.selected {
			g.Hand[idx].Rank = g.Hand[idx].Rank.Next()
		}

	case entities.TheHermit:
		gain := g.Money
		if gain > 20 {
			gain = 20
		}
		g.Money += gain

	case entities.Temperance:
		var total int64
		for _, joker := range g.Jokers {
			total += joker.TotalSellValue()
		}
		if total > 50 {
			total = 50
		}
		g.Money += total
	}

	// The Fool, High Priestess, Emperor and Death pass their selection
	// gate but change nothing.
}
