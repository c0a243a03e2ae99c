package scoring

import (
	"github.com/fadedpez/anteup/pkg/entities"
)

// JokerContext carries everything a joker can look at when it fires:
// the played cards, which of them score, the detected hand, the cards
// still held, and how many discards the player has left.
type JokerContext struct {
	PlayedCards       []*entities.Card
	ScoringIndices    []int
	HandType          entities.PokerHand
	HeldCards         []*entities.Card
	DiscardsRemaining int
}

// EffectKind tags what a joker effect does to the running score.
type EffectKind string

const (
	EffectNone                EffectKind = "NONE"
	EffectAddChips            EffectKind = "ADD_CHIPS"
	EffectAddMult             EffectKind = "ADD_MULT"
	EffectXMult               EffectKind = "X_MULT"
	EffectAddChipsPerCard     EffectKind = "ADD_CHIPS_PER_CARD"
	EffectAddMultPerCard      EffectKind = "ADD_MULT_PER_CARD"
	EffectAddChipsMultPerCard EffectKind = "ADD_CHIPS_AND_MULT_PER_CARD"
	EffectRetrigger           EffectKind = "RETRIGGER"
)

// JokerEffect is the resolved contribution of a single joker for one
// scored hand. Per-card kinds list the affected card indices along
// with the amount each card contributes.
type JokerEffect struct {
	Kind        EffectKind
	Chips       int64
	Mult        int64
	XMult       float64
	CardIndices []int
	ChipsEach   int64
	MultEach    int64
}

// EvaluateJoker resolves one joker against the scored hand. next is
// the type of the joker in the following slot, used by Blueprint to
// copy its neighbor. An empty next means there is no following joker.
func EvaluateJoker(joker *entities.Joker, ctx JokerContext, next entities.JokerType) JokerEffect {
	if joker.Type == entities.Blueprint {
		if next == "" {
			return JokerEffect{Kind: EffectNone}
		}
		return evaluateType(next, ctx)
	}
	return evaluateType(joker.Type, ctx)
}

func evaluateType(t entities.JokerType, ctx JokerContext) JokerEffect {
	switch t {
	case entities.BaseJoker:
		return JokerEffect{Kind: EffectAddMult, Mult: 4}

	case entities.GreedyJoker:
		return suitMultEffect(ctx, entities.Diamonds)

	case entities.LustyJoker:
		return suitMultEffect(ctx, entities.Hearts)

	case entities.WrathfulJoker:
		return suitMultEffect(ctx, entities.Spades)

	case entities.GluttonousJoker:
		return suitMultEffect(ctx, entities.Clubs)

	case entities.JollyJoker:
		if ctx.HandType >= entities.Pair {
			return JokerEffect{Kind: EffectAddMult, Mult: 8}
		}
		return JokerEffect{Kind: EffectNone}

	case entities.ZanyJoker:
		if ctx.HandType >= entities.ThreeOfAKind {
			return JokerEffect{Kind: EffectAddMult, Mult: 12}
		}
		return JokerEffect{Kind: EffectNone}

	case entities.CrazyJoker:
		if ctx.HandType >= entities.Straight {
			return JokerEffect{Kind: EffectAddMult, Mult: 12}
		}
		return JokerEffect{Kind: EffectNone}

	case entities.HalfJoker:
		if len(ctx.PlayedCards) <= 3 {
			return JokerEffect{Kind: EffectAddMult, Mult: 20}
		}
		return JokerEffect{Kind: EffectNone}

	case entities.Banner:
		return JokerEffect{Kind: EffectAddChips, Chips: 30 * int64(ctx.DiscardsRemaining)}

	case entities.OddTodd:
		indices := make([]int, 0, len(ctx.ScoringIndices))
		for _, idx := range ctx.ScoringIndices {
			if ctx.PlayedCards[idx].Rank.Ordinal()%2 == 1 {
				indices = append(indices, idx)
			}
		}
		if len(indices) == 0 {
			return JokerEffect{Kind: EffectNone}
		}
		return JokerEffect{Kind: EffectAddChipsPerCard, CardIndices: indices, ChipsEach: 31}

	case entities.Scholar:
		indices := make([]int, 0, len(ctx.ScoringIndices))
		for _, idx := range ctx.ScoringIndices {
			if ctx.PlayedCards[idx].Rank == entities.Ace {
				indices = append(indices, idx)
			}
		}
		if len(indices) == 0 {
			return JokerEffect{Kind: EffectNone}
		}
		return JokerEffect{Kind: EffectAddChipsMultPerCard, CardIndices: indices, ChipsEach: 20, MultEach: 4}

	case entities.SteelJoker:
		steel := 0
		for _, card := range ctx.HeldCards {
			if card.Enhancement == entities.EnhancementSteel {
				steel++
			}
		}
		if steel == 0 {
			return JokerEffect{Kind: EffectNone}
		}
		return JokerEffect{Kind: EffectXMult, XMult: 1.0 + 0.2*float64(steel)}

	case entities.Blackboard:
		if len(ctx.HeldCards) == 0 {
			return JokerEffect{Kind: EffectNone}
		}
		for _, card := range ctx.HeldCards {
			if !card.HasSuit(entities.Spades) && !card.HasSuit(entities.Clubs) {
				return JokerEffect{Kind: EffectNone}
			}
		}
		return JokerEffect{Kind: EffectXMult, XMult: 3.0}

	case entities.TheDuo:
		if ctx.HandType >= entities.Pair {
			return JokerEffect{Kind: EffectXMult, XMult: 2.0}
		}
		return JokerEffect{Kind: EffectNone}

	case entities.TheTrio:
		if ctx.HandType >= entities.ThreeOfAKind {
			return JokerEffect{Kind: EffectXMult, XMult: 3.0}
		}
		return JokerEffect{Kind: EffectNone}

	case entities.Hack:
		indices := make([]int, 0, len(ctx.ScoringIndices))
		for _, idx := range ctx.ScoringIndices {
			switch ctx.PlayedCards[idx].Rank {
			case entities.Two, entities.Three, entities.Four, entities.Five:
				indices = append(indices, idx)
			}
		}
		if len(indices) == 0 {
			return JokerEffect{Kind: EffectNone}
		}
		return JokerEffect{Kind: EffectRetrigger, CardIndices: indices}

	case entities.Egg, entities.GoldenJoker:
		// Economy jokers, nothing to add during scoring
		return JokerEffect{Kind: EffectNone}

	case entities.Blueprint:
		// A copied Blueprint copies nothing
		return JokerEffect{Kind: EffectNone}
	}

	return JokerEffect{Kind: EffectNone}
}

// suitMultEffect awards +3 Mult for each scoring card of the target
// suit. Wild cards match any suit.
func suitMultEffect(ctx JokerContext, suit entities.Suit) JokerEffect {
	indices := make([]int, 0, len(ctx.ScoringIndices))
	for _, idx := range ctx.ScoringIndices {
		if ctx.PlayedCards[idx].HasSuit(suit) {
			indices = append(indices, idx)
		}
	}
	if len(indices) == 0 {
		return JokerEffect{Kind: EffectNone}
	}
	return JokerEffect{Kind: EffectAddMultPerCard, CardIndices: indices, MultEach: 3}
}
