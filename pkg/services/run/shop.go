package run

import (
	"math/rand"

	"github.com/fadedpez/anteup/pkg/entities"
)

const (
	shopSlots      = 2
	baseRerollCost = 5
)

// ShopItem is a single purchasable card in the shop. Exactly one of
// Joker or Consumable is set.
type ShopItem struct {
	Joker      *entities.Joker
	Consumable *entities.Consumable
	Price      int64
}

// Name returns the display name of the item
func (i *ShopItem) Name() string {
	if i.Joker != nil {
		return i.Joker.Type.Name()
	}
	return i.Consumable.Name()
}

// Description returns the effect text of the item
func (i *ShopItem) Description() string {
	if i.Joker != nil {
		return i.Joker.Type.Description()
	}
	return i.Consumable.Description()
}

// Shop holds the purchasable items offered between blinds
type Shop struct {
	Items      []*ShopItem
	RerollCost int64
}

// NewShop rolls a fresh shop from the run's RNG
func NewShop(rng *rand.Rand) *Shop {
	s := &Shop{RerollCost: baseRerollCost}
	s.roll(rng)
	return s
}

func (s *Shop) roll(rng *rand.Rand) {
	items := make([]*ShopItem, 0, shopSlots)
	for i := 0; i < shopSlots; i++ {
		items = append(items, rollItem(rng))
	}
	s.Items = items
}

// rollItem draws one item: 70% joker, 15% planet, 15% tarot, uniform
// within each category. Secret-hand planets never roll.
func rollItem(rng *rand.Rand) *ShopItem {
	roll := rng.Float64()
	switch {
	case roll < 0.70:
		t := entities.AllJokerTypes[rng.Intn(len(entities.AllJokerTypes))]
		return &ShopItem{Joker: entities.NewJoker(t), Price: t.Price()}
	case roll < 0.85:
		p := entities.CommonPlanets[rng.Intn(len(entities.CommonPlanets))]
		c := entities.NewPlanetConsumable(p)
		return &ShopItem{Consumable: c, Price: c.Price()}
	default:
		tarot := entities.AllTarots[rng.Intn(len(entities.AllTarots))]
		c := entities.NewTarotConsumable(tarot)
		return &ShopItem{Consumable: c, Price: c.Price()}
	}
}

// Reroll replaces the stock and raises the price of the next reroll
func (s *Shop) Reroll(rng *rand.Rand) {
	s.roll(rng)
	s.RerollCost++
}

// BuyShopItem purchases the shop item at idx. Returns false when the
// index is out of range, money is short or the target collection is
// already full.
func (g *Game) BuyShopItem(idx int) bool {
	if g.Phase != entities.PhaseShop || g.Shop == nil {
		return false
	}
	if idx < 0 || idx >= len(g.Shop.Items) {
		return false
	}

	item := g.Shop.Items[idx]
	if item.Price > g.Money {
		return false
	}
	if item.Joker != nil && len(g.Jokers) >= g.MaxJokers {
		return false
	}
	if item.Consumable != nil && len(g.Consumables) >= g.MaxConsumables {
		return false
	}

	g.Money -= item.Price
	if item.Joker != nil {
		g.Jokers = append(g.Jokers, item.Joker)
	} else {
		g.Consumables = append(g.Consumables, item.Consumable)
	}
	g.Shop.Items = append(g.Shop.Items[:idx], g.Shop.Items[idx+1:]...)
	return true
}

// SellJoker sells the joker at idx for its total sell value
func (g *Game) SellJoker(idx int) bool {
	if idx < 0 || idx >= len(g.Jokers) {
		return false
	}
	g.Money += g.Jokers[idx].TotalSellValue()
	g.Jokers = append(g.Jokers[:idx], g.Jokers[idx+1:]...)
	return true
}

// RerollShop pays the reroll cost for a fresh set of items
func (g *Game) RerollShop() bool {
	if g.Phase != entities.PhaseShop || g.Shop == nil {
		return false
	}
	if g.Money < g.Shop.RerollCost {
		return false
	}
	g.Money -= g.Shop.RerollCost
	g.Shop.Reroll(g.rng)
	return true
}
