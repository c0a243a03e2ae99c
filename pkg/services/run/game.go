package run

import (
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/fadedpez/anteup/pkg/entities"
	"github.com/fadedpez/anteup/pkg/services/scoring"
)

const (
	startingMoney      = 4
	handsPerBlind      = 4
	discardsPerBlind   = 3
	defaultHandSize    = 8
	maxJokerSlots      = 5
	maxConsumableSlots = 2
	maxSelected        = 5
	finalAnte          = 8
)

// Game is a single run: the deck, the hand, money, jokers and the
// blind the player is up against. All mutation goes through its
// methods; illegal calls are no-ops so the caller never has to guard.
type Game struct {
	ID   string
	Seed int64

	Ante  int
	Blind entities.BlindType
	Boss  entities.BossBlind
	Phase entities.AntePhase

	Money             int64
	HandsRemaining    int
	DiscardsRemaining int
	HandSize          int
	MaxJokers         int
	MaxConsumables    int

	Deck        *entities.Deck
	Hand        []*entities.Card
	Jokers      []*entities.Joker
	Consumables []*entities.Consumable
	Levels      *scoring.HandLevels

	RoundScore int64
	Target     int64

	Shop *Shop

	RoundNumber  int
	BlindsBeaten int
	Outcomes     [3]entities.BlindOutcome

	selected []int
	rng      *rand.Rand
}

// NewGame starts a run seeded from the clock
func NewGame() *Game {
	return NewGameWithSeed(time.Now().UnixNano())
}

// NewGameWithSeed starts a run with a fixed seed. Two runs with the
// same seed and the same action sequence play out identically.
func NewGameWithSeed(seed int64) *Game {
	rng := rand.New(rand.NewSource(seed))

	deck := entities.NewDeck()
	deck.Shuffle(rng)

	g := &Game{
		ID:                uuid.New().String(),
		Seed:              seed,
		Ante:              1,
		Blind:             entities.BlindSmall,
		Phase:             entities.PhaseBlindSelect,
		Money:             startingMoney,
		HandsRemaining:    handsPerBlind,
		DiscardsRemaining: discardsPerBlind,
		HandSize:          defaultHandSize,
		MaxJokers:         maxJokerSlots,
		MaxConsumables:    maxConsumableSlots,
		Deck:              deck,
		Levels:            scoring.NewHandLevels(),
		rng:               rng,
	}
	g.Boss = g.randomBoss()
	g.Target = entities.ScoreTarget(g.Ante, g.Blind, g.Boss)
	g.resetOutcomes()
	return g
}

func (g *Game) randomBoss() entities.BossBlind {
	return entities.AllBossBlinds[g.rng.Intn(len(entities.AllBossBlinds))]
}

func (g *Game) resetOutcomes() {
	for i := range g.Outcomes {
		g.Outcomes[i] = entities.OutcomeUpcoming
	}
}

// ToggleSelect selects or deselects the hand card at idx. Out-of-range
// indices and selections past the 5-card limit are ignored.
func (g *Game) ToggleSelect(idx int) {
	if idx < 0 || idx >= len(g.Hand) {
		return
	}
	for i, sel := range g.selected {
		if sel == idx {
			g.selected = append(g.selected[:i], g.selected[i+1:]...)
			return
		}
	}
	if len(g.selected) < maxSelected {
		g.selected = append(g.selected, idx)
	}
}

// ClearSelection deselects every selected card
func (g *Game) ClearSelection() {
	g.selected = nil
}

// IsSelected reports whether the hand card at idx is selected
func (g *Game) IsSelected(idx int) bool {
	for _, sel := range g.selected {
		if sel == idx {
			return true
		}
	}
	return false
}

// SelectedCards returns the selected cards in selection order
func (g *Game) SelectedCards() []*entities.Card {
	cards := make([]*entities.Card, 0, len(g.selected))
	for _, idx := range g.selected {
		cards = append(cards, g.Hand[idx])
	}
	return cards
}

// CanPlay reports whether the current selection may be played
func (g *Game) CanPlay() bool {
	if g.HandsRemaining <= 0 {
		return false
	}
	if len(g.selected) == 0 || len(g.selected) > maxSelected {
		return false
	}
	// The Psychic demands a full five-card play
	if g.Blind == entities.BlindBoss && g.Boss == entities.ThePsychic && len(g.selected) != 5 {
		return false
	}
	return true
}

// CanDiscard reports whether the current selection may be discarded
func (g *Game) CanDiscard() bool {
	return g.DiscardsRemaining > 0 && len(g.selected) > 0
}

// PlaySelected removes the selected cards from the hand and returns
// them in hand order, ready to score. Returns nil when the play is
// not legal.
func (g *Game) PlaySelected() []*entities.Card {
	if !g.CanPlay() {
		return nil
	}

	// Remove back to front so earlier indices stay valid
	indices := append([]int{}, g.selected...)
	sort.Sort(sort.Reverse(sort.IntSlice(indices)))

	played := make([]*entities.Card, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(g.Hand) {
			continue
		}
		played = append(played, g.Hand[idx])
		g.Hand = append(g.Hand[:idx], g.Hand[idx+1:]...)
	}

	// Collection ran back to front, flip to hand order
	for i, j := 0, len(played)-1; i < j; i, j = i+1, j-1 {
		played[i], played[j] = played[j], played[i]
	}

	g.selected = nil
	return played
}

// CalculateScore scores a play against the run's hand levels
func (g *Game) CalculateScore(played []*entities.Card) scoring.ScoreResult {
	return scoring.CalculateScore(played, g.Levels)
}

// CalculateScoreWithJokers scores a play with the run's jokers, the
// cards still in hand and the remaining discards all in view.
func (g *Game) CalculateScoreWithJokers(played []*entities.Card) scoring.ScoreResult {
	return scoring.CalculateScoreWithJokers(played, g.Levels, g.Jokers, g.Hand, g.DiscardsRemaining)
}

// UseHand spends one of the blind's remaining hands
func (g *Game) UseHand() {
	if g.HandsRemaining > 0 {
		g.HandsRemaining--
	}
}

func (g *Game) useDiscard() {
	if g.DiscardsRemaining > 0 {
		g.DiscardsRemaining--
	}
}

// AddScore adds a played hand's score to the blind's running total
func (g *Game) AddScore(points int64) {
	if points > 0 {
		g.RoundScore += points
	}
}

// DrawToHandSize refills the hand from the deck and debuffs any new
// cards the boss objects to
func (g *Game) DrawToHandSize() {
	missing := g.HandSize - len(g.Hand)
	if missing <= 0 {
		return
	}
	g.Hand = append(g.Hand, g.Deck.Draw(missing)...)
	g.applyDebuffs()
}

// DiscardSelected throws the selected cards onto the discard pile and
// refills the hand. Returns false when no discard is legal.
func (g *Game) DiscardSelected() bool {
	if !g.CanDiscard() {
		return false
	}

	indices := append([]int{}, g.selected...)
	sort.Sort(sort.Reverse(sort.IntSlice(indices)))

	discarded := make([]*entities.Card, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(g.Hand) {
			continue
		}
		discarded = append(discarded, g.Hand[idx])
		g.Hand = append(g.Hand[:idx], g.Hand[idx+1:]...)
	}

	g.Deck.DiscardCards(discarded)
	g.selected = nil
	g.useDiscard()
	g.DrawToHandSize()
	return true
}

// StartBlind enters play for the current blind: fresh score and
// allowances, a reshuffled deck and a full hand
func (g *Game) StartBlind() {
	if g.Phase != entities.PhaseBlindSelect {
		return
	}

	g.Phase = entities.PhasePlaying
	g.RoundScore = 0
	g.HandsRemaining = handsPerBlind
	g.DiscardsRemaining = discardsPerBlind
	if g.Blind == entities.BlindBoss && g.Boss == entities.TheNeedle {
		g.HandsRemaining = 1
	}
	g.selected = nil
	g.Target = entities.ScoreTarget(g.Ante, g.Blind, g.Boss)
	g.Outcomes[g.Blind.Index()] = entities.OutcomeActive
	g.RoundNumber++

	g.Deck.ResetAndShuffle(g.rng)
	g.Hand = g.Deck.Draw(g.HandSize)
	g.applyDebuffs()
}

// SkipBlind passes on a skippable blind with no reward. The boss
// blind can never be skipped.
func (g *Game) SkipBlind() bool {
	if g.Phase != entities.PhaseBlindSelect || !g.Blind.CanSkip() {
		return false
	}
	g.Outcomes[g.Blind.Index()] = entities.OutcomeSkipped
	g.advanceBlind()
	return true
}

// BeatBlind banks the reward, returns the hand to the deck's discard
// pile and opens the shop. A no-op unless the target is reached.
func (g *Game) BeatBlind() {
	if g.Phase != entities.PhasePlaying || !g.BlindBeaten() {
		return
	}

	g.Money += g.CalculateReward()
	g.BlindsBeaten++
	g.Outcomes[g.Blind.Index()] = entities.OutcomeBeaten

	// Eggs appreciate every time a blind falls
	for _, joker := range g.Jokers {
		if joker.Type == entities.Egg {
			joker.BonusSell += 3
		}
	}

	g.Phase = entities.PhaseShop
	g.clearDebuffs()
	g.Deck.DiscardCards(g.Hand)
	g.Hand = nil
	g.selected = nil
	g.Shop = NewShop(g.rng)
}

// LeaveShop closes the shop and moves on to the next blind
func (g *Game) LeaveShop() {
	if g.Phase != entities.PhaseShop {
		return
	}
	g.Shop = nil
	g.advanceBlind()
}

// advanceBlind steps Small -> Big -> Boss, rolling into the next ante
// with a fresh random boss after the boss blind.
func (g *Game) advanceBlind() {
	switch g.Blind {
	case entities.BlindSmall:
		g.Blind = entities.BlindBig
	case entities.BlindBig:
		g.Blind = entities.BlindBoss
	case entities.BlindBoss:
		g.Ante++
		g.Blind = entities.BlindSmall
		g.Boss = g.randomBoss()
		g.BlindsBeaten = 0
		g.resetOutcomes()
	}
	g.Phase = entities.PhaseBlindSelect
	g.Target = entities.ScoreTarget(g.Ante, g.Blind, g.Boss)
}

// ApplyHookEffect discards two random hand cards. The Hook does this
// after every played hand.
func (g *Game) ApplyHookEffect() {
	if g.Blind != entities.BlindBoss || g.Boss != entities.TheHook {
		return
	}
	if len(g.Hand) <= 2 {
		return
	}

	victims := g.rng.Perm(len(g.Hand))[:2]
	sort.Sort(sort.Reverse(sort.IntSlice(victims)))

	discarded := make([]*entities.Card, 0, 2)
	for _, idx := range victims {
		discarded = append(discarded, g.Hand[idx])
		g.Hand = append(g.Hand[:idx], g.Hand[idx+1:]...)
	}
	g.Deck.DiscardCards(discarded)

	// Hand indices shifted under the selection
	g.selected = nil
}

// applyDebuffs marks hand cards of the boss's hated suit. Only the
// boss blind itself debuffs.
func (g *Game) applyDebuffs() {
	if g.Blind != entities.BlindBoss {
		return
	}
	suit, ok := g.Boss.DebuffSuit()
	if !ok {
		return
	}
	for _, card := range g.Hand {
		if card.Suit == suit {
			card.Debuffed = true
		}
	}
}

func (g *Game) clearDebuffs() {
	for _, card := range g.Hand {
		card.Debuffed = false
	}
}

// BlindBeaten reports whether the round score has reached the target
func (g *Game) BlindBeaten() bool {
	return g.RoundScore >= g.Target
}

// RoundLost reports whether the blind is lost: hands exhausted with
// the target still out of reach
func (g *Game) RoundLost() bool {
	return g.HandsRemaining == 0 && !g.BlindBeaten()
}

// RunWon reports whether the final ante has been cleared
func (g *Game) RunWon() bool {
	return g.Ante > finalAnte
}

// CurrentBlindIndex returns the position of the active blind within
// the ante (0, 1 or 2)
func (g *Game) CurrentBlindIndex() int {
	return g.Blind.Index()
}

// RewardBreakdown itemizes the payout for beating a blind
type RewardBreakdown struct {
	BlindReward      int64
	HandsBonus       int64
	Interest         int64
	GoldenJokerBonus int64
	Total            int64
}

// CalculateRewardBreakdown computes the payout for beating the current
// blind: base reward, $1 per unused hand, $1 interest per $5 held
// (capped at $5) and $4 per Golden Joker.
func (g *Game) CalculateRewardBreakdown() RewardBreakdown {
	b := RewardBreakdown{
		BlindReward: g.Blind.Reward(),
		HandsBonus:  int64(g.HandsRemaining),
	}

	b.Interest = g.Money / 5
	if b.Interest > 5 {
		b.Interest = 5
	}

	for _, joker := range g.Jokers {
		if joker.Type == entities.GoldenJoker {
			b.GoldenJokerBonus += 4
		}
	}

	b.Total = b.BlindReward + b.HandsBonus + b.Interest + b.GoldenJokerBonus
	return b
}

// CalculateReward returns the total payout for beating the current blind
func (g *Game) CalculateReward() int64 {
	return g.CalculateRewardBreakdown().Total
}
