package scoring

import (
	"math"

	"github.com/fadedpez/anteup/pkg/entities"
)

// StepKind tags one entry in the scoring log.
type StepKind string

const (
	StepBaseHand   StepKind = "BASE_HAND"
	StepCardChips  StepKind = "CARD_CHIPS"
	StepCardMult   StepKind = "CARD_MULT"
	StepCardXMult  StepKind = "CARD_X_MULT"
	StepJokerChips StepKind = "JOKER_CHIPS"
	StepJokerMult  StepKind = "JOKER_MULT"
	StepJokerXMult StepKind = "JOKER_X_MULT"
)

// xMult values this close to 1 are treated as neutral and not logged
const xMultEpsilon = 1e-9

// ScoreStep records one contribution to a hand's score. Replaying the
// steps in order reproduces the final chip and mult totals. CardIndex
// and JokerIndex are -1 when the step has no card or joker attached.
type ScoreStep struct {
	Kind       StepKind
	HandType   entities.PokerHand
	CardIndex  int
	JokerIndex int
	Chips      int64
	Mult       int64
	XMult      float64
}

// ScoreResult is the full outcome of scoring one played hand.
type ScoreResult struct {
	HandType       entities.PokerHand
	ScoringIndices []int
	Steps          []ScoreStep
	TotalChips     int64
	TotalMult      int64
	FinalScore     int64
}

// accumulator tracks running chips and mult while building the step
// log. Mult stays a float until the final ceiling.
type accumulator struct {
	chips int64
	mult  float64
	steps []ScoreStep
}

func (a *accumulator) base(hand entities.PokerHand, chips, mult int64) {
	a.chips = chips
	a.mult = float64(mult)
	a.steps = append(a.steps, ScoreStep{
		Kind:       StepBaseHand,
		HandType:   hand,
		CardIndex:  -1,
		JokerIndex: -1,
		Chips:      chips,
		Mult:       mult,
	})
}

// scoreCard applies one played card's chip, mult and x-mult
// contributions, logging a step for each non-neutral one.
func (a *accumulator) scoreCard(idx int, card *entities.Card) {
	if chips := card.ChipValue(); chips > 0 {
		a.chips += chips
		a.steps = append(a.steps, ScoreStep{Kind: StepCardChips, CardIndex: idx, JokerIndex: -1, Chips: chips})
	}
	if mult := card.MultBonus(); mult > 0 {
		a.mult += float64(mult)
		a.steps = append(a.steps, ScoreStep{Kind: StepCardMult, CardIndex: idx, JokerIndex: -1, Mult: mult})
	}
	if x := card.XMult(); math.Abs(x-1.0) > xMultEpsilon {
		a.mult *= x
		a.steps = append(a.steps, ScoreStep{Kind: StepCardXMult, CardIndex: idx, JokerIndex: -1, XMult: x})
	}
}

func (a *accumulator) applyJokerEffect(jokerIdx int, effect JokerEffect, played []*entities.Card) {
	switch effect.Kind {
	case EffectAddChips:
		a.chips += effect.Chips
		a.steps = append(a.steps, ScoreStep{Kind: StepJokerChips, CardIndex: -1, JokerIndex: jokerIdx, Chips: effect.Chips})

	case EffectAddMult:
		a.mult += float64(effect.Mult)
		a.steps = append(a.steps, ScoreStep{Kind: StepJokerMult, CardIndex: -1, JokerIndex: jokerIdx, Mult: effect.Mult})

	case EffectXMult:
		a.mult *= effect.XMult
		a.steps = append(a.steps, ScoreStep{Kind: StepJokerXMult, CardIndex: -1, JokerIndex: jokerIdx, XMult: effect.XMult})

	case EffectAddChipsPerCard:
		for _, idx := range effect.CardIndices {
			a.chips += effect.ChipsEach
			a.steps = append(a.steps, ScoreStep{Kind: StepJokerChips, CardIndex: idx, JokerIndex: jokerIdx, Chips: effect.ChipsEach})
		}

	case EffectAddMultPerCard:
		for _, idx := range effect.CardIndices {
			a.mult += float64(effect.MultEach)
			a.steps = append(a.steps, ScoreStep{Kind: StepJokerMult, CardIndex: idx, JokerIndex: jokerIdx, Mult: effect.MultEach})
		}

	case EffectAddChipsMultPerCard:
		for _, idx := range effect.CardIndices {
			a.chips += effect.ChipsEach
			a.steps = append(a.steps, ScoreStep{Kind: StepJokerChips, CardIndex: idx, JokerIndex: jokerIdx, Chips: effect.ChipsEach})
			a.mult += float64(effect.MultEach)
			a.steps = append(a.steps, ScoreStep{Kind: StepJokerMult, CardIndex: idx, JokerIndex: jokerIdx, Mult: effect.MultEach})
		}

	case EffectRetrigger:
		// Retriggered cards score again with their own contributions
		for _, idx := range effect.CardIndices {
			a.scoreCard(idx, played[idx])
		}
	}
}

// CalculateScore scores a played hand from its cards and the current
// hand levels alone.
func CalculateScore(played []*entities.Card, levels *HandLevels) ScoreResult {
	return CalculateScoreWithJokers(played, levels, nil, nil, 0)
}

// CalculateScoreWithJokers scores a played hand with a full table
// state: jokers fire left to right after the cards, held cards feed
// jokers that read the hand still in hand, and discardsRemaining feeds
// jokers that pay per unused discard.
func CalculateScoreWithJokers(played []*entities.Card, levels *HandLevels, jokers []*entities.Joker, held []*entities.Card, discardsRemaining int) ScoreResult {
	if levels == nil {
		levels = NewHandLevels()
	}

	detected := DetectHand(played)

	acc := &accumulator{}
	acc.base(detected.HandType, levels.ChipsFor(detected.HandType), levels.MultFor(detected.HandType))

	scoring := make(map[int]bool, len(detected.ScoringIndices))
	for _, idx := range detected.ScoringIndices {
		scoring[idx] = true
	}

	for _, idx := range detected.ScoringIndices {
		acc.scoreCard(idx, played[idx])
	}

	// Stone cards add their chips even when they are not part of the hand
	for i, card := range played {
		if scoring[i] || card.Enhancement != entities.EnhancementStone {
			continue
		}
		if chips := card.ChipValue(); chips > 0 {
			acc.chips += chips
			acc.steps = append(acc.steps, ScoreStep{Kind: StepCardChips, CardIndex: i, JokerIndex: -1, Chips: chips})
		}
	}

	ctx := JokerContext{
		PlayedCards:       played,
		ScoringIndices:    detected.ScoringIndices,
		HandType:          detected.HandType,
		HeldCards:         held,
		DiscardsRemaining: discardsRemaining,
	}
	for i, joker := range jokers {
		var next entities.JokerType
		if i+1 < len(jokers) {
			next = jokers[i+1].Type
		}
		acc.applyJokerEffect(i, EvaluateJoker(joker, ctx, next), played)
	}

	totalMult := int64(math.Ceil(acc.mult))

	return ScoreResult{
		HandType:       detected.HandType,
		ScoringIndices: detected.ScoringIndices,
		Steps:          acc.steps,
		TotalChips:     acc.chips,
		TotalMult:      totalMult,
		FinalScore:     acc.chips * totalMult,
	}
}

// ReplaySteps recomputes chip and mult totals from a step log. A log
// produced by CalculateScoreWithJokers replays to the same totals the
// result reported.
func ReplaySteps(steps []ScoreStep) (chips int64, mult int64) {
	var multF float64
	for _, step := range steps {
		switch step.Kind {
		case StepBaseHand:
			chips = step.Chips
			multF = float64(step.Mult)
		case StepCardChips, StepJokerChips:
			chips += step.Chips
		case StepCardMult, StepJokerMult:
			multF += float64(step.Mult)
		case StepCardXMult, StepJokerXMult:
			multF *= step.XMult
		}
	}
	return chips, int64(math.Ceil(multF))
}
