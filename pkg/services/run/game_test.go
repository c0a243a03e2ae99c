package run

import (
	"testing"

	"github.com/fadedpez/anteup/pkg/entities"
	"github.com/stretchr/testify/assert"
)

func TestNewGameDefaults(t *testing.T) {
	g := NewGameWithSeed(42)

	assert.NotEmpty(t, g.ID)
	assert.Equal(t, int64(42), g.Seed)
	assert.Equal(t, 1, g.Ante)
	assert.Equal(t, entities.BlindSmall, g.Blind)
	assert.Equal(t, entities.PhaseBlindSelect, g.Phase)
	assert.Equal(t, int64(4), g.Money)
	assert.Equal(t, 4, g.HandsRemaining)
	assert.Equal(t, 3, g.DiscardsRemaining)
	assert.Equal(t, 8, g.HandSize)
	assert.Equal(t, 5, g.MaxJokers)
	assert.Equal(t, 2, g.MaxConsumables)
	assert.Equal(t, 52, g.Deck.Remaining())
	assert.Empty(t, g.Hand)
	assert.Contains(t, entities.AllBossBlinds, g.Boss)

	// Small blind at ante 1 wants 300 chips
	assert.Equal(t, int64(300), g.Target)

	for _, outcome := range g.Outcomes {
		assert.Equal(t, entities.OutcomeUpcoming, outcome)
	}
}

func TestSameSeedSameRun(t *testing.T) {
	a := NewGameWithSeed(7)
	b := NewGameWithSeed(7)

	assert.Equal(t, a.Boss, b.Boss, "same seed should roll the same boss")

	a.StartBlind()
	b.StartBlind()

	assert.Equal(t, len(a.Hand), len(b.Hand))
	for i := range a.Hand {
		assert.True(t, a.Hand[i].Equals(b.Hand[i]), "hand card %d should match between runs", i)
	}

	// Beat the blind on both and compare the shops
	a.AddScore(a.Target)
	b.AddScore(b.Target)
	a.BeatBlind()
	b.BeatBlind()

	assert.Equal(t, len(a.Shop.Items), len(b.Shop.Items))
	for i := range a.Shop.Items {
		assert.Equal(t, a.Shop.Items[i].Name(), b.Shop.Items[i].Name(), "shop item %d should match between runs", i)
		assert.Equal(t, a.Shop.Items[i].Price, b.Shop.Items[i].Price)
	}
}

func TestStartBlind(t *testing.T) {
	g := NewGameWithSeed(1)

	g.StartBlind()

	assert.Equal(t, entities.PhasePlaying, g.Phase)
	assert.Len(t, g.Hand, 8)
	assert.Equal(t, 44, g.Deck.Remaining())
	assert.Equal(t, int64(0), g.RoundScore)
	assert.Equal(t, 1, g.RoundNumber)
	assert.Equal(t, entities.OutcomeActive, g.Outcomes[0])
}

func TestStartBlindOutsideBlindSelect(t *testing.T) {
	g := NewGameWithSeed(1)
	g.Phase = entities.PhaseShop

	g.StartBlind()

	assert.Equal(t, entities.PhaseShop, g.Phase, "starting a blind from the shop should do nothing")
	assert.Empty(t, g.Hand)
}

func TestToggleSelect(t *testing.T) {
	g := NewGameWithSeed(1)
	g.StartBlind()

	g.ToggleSelect(0)
	g.ToggleSelect(2)
	assert.Len(t, g.SelectedCards(), 2)

	// Toggling again deselects
	g.ToggleSelect(0)
	assert.Len(t, g.SelectedCards(), 1)

	// Out of range is ignored
	g.ToggleSelect(-1)
	g.ToggleSelect(99)
	assert.Len(t, g.SelectedCards(), 1)
}

func TestToggleSelectCapsAtFive(t *testing.T) {
	g := NewGameWithSeed(1)
	g.StartBlind()

	for i := 0; i < 8; i++ {
		g.ToggleSelect(i)
	}

	assert.Len(t, g.SelectedCards(), 5, "a sixth selection should be ignored")
}

func TestClearSelection(t *testing.T) {
	g := NewGameWithSeed(1)
	g.StartBlind()

	g.ToggleSelect(0)
	g.ToggleSelect(2)
	g.ClearSelection()

	assert.Empty(t, g.SelectedCards())
	assert.Len(t, g.Hand, 8, "clearing the selection should leave the hand alone")
}

func TestIsSelected(t *testing.T) {
	g := NewGameWithSeed(1)
	g.StartBlind()

	g.ToggleSelect(3)

	assert.True(t, g.IsSelected(3))
	assert.False(t, g.IsSelected(0))
	assert.False(t, g.IsSelected(-1))
	assert.False(t, g.IsSelected(len(g.Hand)))
}

func TestPlaySelected(t *testing.T) {
	g := NewGameWithSeed(1)
	g.StartBlind()

	want := []*entities.Card{g.Hand[1], g.Hand[3]}
	g.ToggleSelect(3)
	g.ToggleSelect(1)

	played := g.PlaySelected()

	assert.Len(t, played, 2)
	assert.True(t, played[0].Equals(want[0]), "played cards should come back in hand order")
	assert.True(t, played[1].Equals(want[1]))
	assert.Len(t, g.Hand, 6)
	assert.Empty(t, g.SelectedCards())
}

func TestPlaySelectedWithNothingSelected(t *testing.T) {
	g := NewGameWithSeed(1)
	g.StartBlind()

	assert.Nil(t, g.PlaySelected())
	assert.Len(t, g.Hand, 8)
}

func TestPlaySelectedWithNoHandsLeft(t *testing.T) {
	g := NewGameWithSeed(1)
	g.StartBlind()
	g.HandsRemaining = 0
	g.ToggleSelect(0)

	assert.False(t, g.CanPlay())
	assert.Nil(t, g.PlaySelected())
}

func TestFullPlayFlow(t *testing.T) {
	g := NewGameWithSeed(1)
	g.StartBlind()

	g.ToggleSelect(0)
	g.ToggleSelect(1)

	played := g.PlaySelected()
	result := g.CalculateScoreWithJokers(played)
	g.UseHand()
	g.AddScore(result.FinalScore)
	g.ApplyHookEffect()
	g.DrawToHandSize()

	assert.Len(t, g.Hand, 8, "hand should refill after a play")
	assert.Equal(t, 3, g.HandsRemaining)
	assert.Equal(t, result.FinalScore, g.RoundScore)
	assert.Greater(t, result.FinalScore, int64(0))
}

func TestDiscardSelected(t *testing.T) {
	g := NewGameWithSeed(1)
	g.StartBlind()

	g.ToggleSelect(0)
	g.ToggleSelect(1)

	ok := g.DiscardSelected()

	assert.True(t, ok)
	assert.Len(t, g.Hand, 8, "hand should refill after a discard")
	assert.Equal(t, 2, g.DiscardsRemaining)
	assert.Equal(t, 2, g.Deck.DiscardCount())
	assert.Empty(t, g.SelectedCards())
}

func TestDiscardSelectedWithNoDiscardsLeft(t *testing.T) {
	g := NewGameWithSeed(1)
	g.StartBlind()
	g.DiscardsRemaining = 0
	g.ToggleSelect(0)

	assert.False(t, g.CanDiscard())
	assert.False(t, g.DiscardSelected())
	assert.Len(t, g.Hand, 8)
}

func TestUseHandSaturates(t *testing.T) {
	g := NewGameWithSeed(1)

	for i := 0; i < 10; i++ {
		g.UseHand()
	}

	assert.Equal(t, 0, g.HandsRemaining, "hands remaining should never go negative")
}

func TestAddScoreIsMonotonic(t *testing.T) {
	g := NewGameWithSeed(1)

	g.AddScore(100)
	g.AddScore(-50)
	g.AddScore(0)

	assert.Equal(t, int64(100), g.RoundScore)
}

func TestBeatBlind(t *testing.T) {
	g := NewGameWithSeed(1)
	g.StartBlind()

	g.AddScore(g.Target)
	assert.True(t, g.BlindBeaten())

	g.BeatBlind()

	// Small blind pays 3, plus 4 unused hands, plus no interest on $4
	assert.Equal(t, int64(11), g.Money)
	assert.Equal(t, entities.PhaseShop, g.Phase)
	assert.NotNil(t, g.Shop)
	assert.Len(t, g.Shop.Items, 2)
	assert.Empty(t, g.Hand, "the hand should return to the discard pile")
	assert.Equal(t, 8, g.Deck.DiscardCount())
	assert.Equal(t, entities.OutcomeBeaten, g.Outcomes[0])
	assert.Equal(t, 1, g.BlindsBeaten)
}

func TestBeatBlindBelowTarget(t *testing.T) {
	g := NewGameWithSeed(1)
	g.StartBlind()

	g.AddScore(1)
	g.BeatBlind()

	assert.Equal(t, entities.PhasePlaying, g.Phase, "an unbeaten blind cannot be cashed in")
	assert.Nil(t, g.Shop)
}

func TestBeatBlindGrowsEggs(t *testing.T) {
	g := NewGameWithSeed(1)
	g.Jokers = append(g.Jokers, entities.NewJoker(entities.Egg))
	g.StartBlind()

	g.AddScore(g.Target)
	g.BeatBlind()

	assert.Equal(t, int64(3), g.Jokers[0].BonusSell)
	assert.Equal(t, int64(5), g.Jokers[0].TotalSellValue(), "egg sells for half price plus the bonus")
}

func TestSkipBlind(t *testing.T) {
	g := NewGameWithSeed(1)

	ok := g.SkipBlind()

	assert.True(t, ok)
	assert.Equal(t, entities.BlindBig, g.Blind)
	assert.Equal(t, entities.PhaseBlindSelect, g.Phase)
	assert.Equal(t, entities.OutcomeSkipped, g.Outcomes[0])
	assert.Equal(t, int64(450), g.Target, "big blind at ante 1 wants 450 chips")
}

func TestSkipBlindBossRefuses(t *testing.T) {
	g := NewGameWithSeed(1)
	g.Blind = entities.BlindBoss

	assert.False(t, g.SkipBlind())
	assert.Equal(t, entities.BlindBoss, g.Blind)
}

func TestAnteCycle(t *testing.T) {
	g := NewGameWithSeed(3)

	beat := func() {
		g.StartBlind()
		g.AddScore(g.Target)
		g.BeatBlind()
		g.LeaveShop()
	}

	beat()
	assert.Equal(t, entities.BlindBig, g.Blind)

	beat()
	assert.Equal(t, entities.BlindBoss, g.Blind)

	beat()
	assert.Equal(t, 2, g.Ante, "beating the boss should advance the ante")
	assert.Equal(t, entities.BlindSmall, g.Blind)
	assert.Equal(t, entities.PhaseBlindSelect, g.Phase)
	assert.Equal(t, 0, g.BlindsBeaten)
	assert.Equal(t, 3, g.RoundNumber)
	assert.Equal(t, int64(800), g.Target, "ante 2 small blind wants 800 chips")

	for _, outcome := range g.Outcomes {
		assert.Equal(t, entities.OutcomeUpcoming, outcome, "a new ante starts with fresh blinds")
	}
}

func TestLeaveShopOutsideShopPhase(t *testing.T) {
	g := NewGameWithSeed(1)

	g.LeaveShop()

	assert.Equal(t, entities.BlindSmall, g.Blind)
	assert.Equal(t, entities.PhaseBlindSelect, g.Phase)
}

func TestRunWon(t *testing.T) {
	g := NewGameWithSeed(1)

	assert.False(t, g.RunWon())

	g.Ante = 8
	assert.False(t, g.RunWon(), "ante 8 is still in play")

	g.Ante = 9
	assert.True(t, g.RunWon())
}

func TestRoundLost(t *testing.T) {
	g := NewGameWithSeed(1)
	g.StartBlind()

	assert.False(t, g.RoundLost())

	g.HandsRemaining = 0
	assert.True(t, g.RoundLost())

	g.AddScore(g.Target)
	assert.False(t, g.RoundLost(), "reaching the target is never a loss")
}

func TestRewardBreakdown(t *testing.T) {
	g := NewGameWithSeed(9)
	g.Money = 40
	g.HandsRemaining = 2
	g.Jokers = append(g.Jokers, entities.NewJoker(entities.GoldenJoker))

	b := g.CalculateRewardBreakdown()

	assert.Equal(t, int64(3), b.BlindReward)
	assert.Equal(t, int64(2), b.HandsBonus)
	assert.Equal(t, int64(5), b.Interest, "interest caps at $5")
	assert.Equal(t, int64(4), b.GoldenJokerBonus)
	assert.Equal(t, int64(14), b.Total)
	assert.Equal(t, b.Total, g.CalculateReward())
}

func TestNeedleAllowsOneHand(t *testing.T) {
	g := NewGameWithSeed(5)
	g.Blind = entities.BlindBoss
	g.Boss = entities.TheNeedle

	g.StartBlind()

	assert.Equal(t, 1, g.HandsRemaining)
	assert.Equal(t, 3, g.DiscardsRemaining)
}

func TestWallQuadruplesTarget(t *testing.T) {
	g := NewGameWithSeed(5)
	g.Blind = entities.BlindBoss
	g.Boss = entities.TheWall

	g.StartBlind()

	assert.Equal(t, int64(1200), g.Target, "the wall wants 4x the ante 1 base")
}

func TestPsychicDemandsFiveCards(t *testing.T) {
	g := NewGameWithSeed(5)
	g.Blind = entities.BlindBoss
	g.Boss = entities.ThePsychic
	g.StartBlind()

	for i := 0; i < 3; i++ {
		g.ToggleSelect(i)
	}
	assert.False(t, g.CanPlay(), "the psychic rejects a 3-card play")

	g.ToggleSelect(3)
	g.ToggleSelect(4)
	assert.True(t, g.CanPlay())
}

func TestHeadDebuffsHearts(t *testing.T) {
	g := NewGameWithSeed(5)
	g.Blind = entities.BlindBoss
	g.Boss = entities.TheHead
	g.StartBlind()

	g.Hand[0] = entities.NewCard(entities.Hearts, entities.Five)
	g.Hand[1] = entities.NewCard(entities.Spades, entities.Five)
	g.applyDebuffs()

	assert.True(t, g.Hand[0].Debuffed)
	assert.False(t, g.Hand[1].Debuffed)
}

func TestDebuffsOnlyDuringBossBlind(t *testing.T) {
	g := NewGameWithSeed(5)
	g.Boss = entities.TheHead
	g.StartBlind()

	for _, card := range g.Hand {
		assert.False(t, card.Debuffed, "the small blind should not debuff anything")
	}
}

func TestHookDiscardsTwoAfterPlay(t *testing.T) {
	g := NewGameWithSeed(5)
	g.Blind = entities.BlindBoss
	g.Boss = entities.TheHook
	g.StartBlind()

	g.ApplyHookEffect()

	assert.Len(t, g.Hand, 6)
	assert.Equal(t, 2, g.Deck.DiscardCount())
}

func TestHookLeavesTinyHandsAlone(t *testing.T) {
	g := NewGameWithSeed(5)
	g.Blind = entities.BlindBoss
	g.Boss = entities.TheHook
	g.StartBlind()
	g.Hand = g.Hand[:2]

	g.ApplyHookEffect()

	assert.Len(t, g.Hand, 2)
}

func TestHookIgnoresOtherBosses(t *testing.T) {
	g := NewGameWithSeed(5)
	g.Blind = entities.BlindBoss
	g.Boss = entities.TheWall
	g.StartBlind()

	g.ApplyHookEffect()

	assert.Len(t, g.Hand, 8)
}
