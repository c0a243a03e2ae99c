package main

import (
	"context"
	"time"

	"github.com/pterm/pterm"

	"github.com/fadedpez/anteup/internal/config"
	"github.com/fadedpez/anteup/internal/discord"
	"github.com/fadedpez/anteup/internal/logging"
	"github.com/fadedpez/anteup/pkg/entities"
	runsvc "github.com/fadedpez/anteup/pkg/services/run"
	"github.com/fadedpez/anteup/pkg/services/statistics"
)

// simulateRuns plays a batch of unattended runs from a base seed and
// stores every result. Run i uses seed base+i, so a batch replays
// exactly from the same RUN_SEED.
func simulateRuns(ctx context.Context, cfg *config.Config, logger *logging.Logger, statsService *statistics.Service, notifier *discord.Notifier) {
	baseSeed := cfg.Seed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	pterm.Info.Printfln("Simulating %d runs from seed %d", cfg.SimRuns, baseSeed)

	var best *entities.RunRecord
	wins := 0
	for i := 0; i < cfg.SimRuns; i++ {
		select {
		case <-ctx.Done():
			pterm.Warning.Printfln("Simulation interrupted after %d runs.", i)
			return
		default:
		}

		seed := baseSeed + int64(i)
		record, hands := simulateRun(seed)
		if err := statsService.RecordCompletedRun(ctx, record, hands); err != nil {
			logger.LogError(err)
		}
		if record.Won {
			wins++
		}
		if best == nil || record.BestHandScore > best.BestHandScore {
			best = record
		}

		pterm.Printfln("Run %d/%d: seed %d, %s at ante %d, best %s for %d, $%d",
			i+1, cfg.SimRuns, seed, runResult(record.Won), record.AnteReached,
			record.BestHandType, record.BestHandScore, record.FinalMoney)
	}

	pterm.Success.Printfln("Simulation done: %d of %d runs won.", wins, cfg.SimRuns)
	showStatistics(ctx, statsService)

	if notifier != nil && best != nil {
		if err := notifier.NotifyRunCompleted(best); err != nil {
			logger.LogError(err)
		}
	}
}

// simulateRun plays one run on autopilot. The policy is simple and
// fully deterministic for a given seed: chase flushes and rank groups,
// never skip a blind, buy whatever fits and use planets on the spot.
func simulateRun(seed int64) (*entities.RunRecord, []*entities.HandRecord) {
	g := runsvc.NewGameWithSeed(seed)
	rec := newRunRecorder()

	won := false
	lost := false
	for !won && !lost {
		switch g.Phase {
		case entities.PhaseBlindSelect:
			g.StartBlind()
		case entities.PhasePlaying:
			lost = !autoPlayBlind(g, rec)
		case entities.PhaseShop:
			autoShop(g)
		}
		won = g.RunWon()
	}

	return rec.finish(g, won), rec.hands
}

// autoPlayBlind plays hands until the blind falls or no hand remains.
// Returns false when the run is lost.
func autoPlayBlind(g *runsvc.Game, rec *runRecorder) bool {
	for {
		autoSelect(g)
		if !g.CanPlay() {
			// The Psychic with fewer than five cards in hand leaves no
			// legal play, forfeit
			return false
		}

		played := g.PlaySelected()
		result := g.CalculateScoreWithJokers(played)
		g.UseHand()
		g.AddScore(result.FinalScore)
		g.Deck.DiscardCards(played)
		rec.recordHand(g, played, result)
		g.ApplyHookEffect()
		g.DrawToHandSize()

		if g.BlindBeaten() {
			g.BeatBlind()
			return true
		}
		if g.RoundLost() {
			return false
		}
	}
}

// autoSelect picks the strongest simple play: a five-card flush when
// one is in hand, else the biggest rank group, else the highest card.
func autoSelect(g *runsvc.Game) {
	g.ClearSelection()
	if len(g.Hand) == 0 {
		return
	}

	if indices, ok := flushIndices(g.Hand); ok {
		for _, idx := range indices {
			g.ToggleSelect(idx)
		}
	} else if indices := bestRankGroup(g.Hand); len(indices) > 1 {
		for _, idx := range indices {
			g.ToggleSelect(idx)
		}
	} else {
		g.ToggleSelect(highestCard(g.Hand))
	}

	// The Psychic takes exactly five cards
	if g.Blind == entities.BlindBoss && g.Boss == entities.ThePsychic {
		padToFive(g)
	}
}

// flushIndices returns five hand indices sharing a suit, if any suit
// (counting wilds) covers five cards.
func flushIndices(hand []*entities.Card) ([]int, bool) {
	for _, suit := range entities.AllSuits {
		indices := make([]int, 0, len(hand))
		for i, card := range hand {
			if card.HasSuit(suit) {
				indices = append(indices, i)
			}
		}
		if len(indices) >= 5 {
			return indices[:5], true
		}
	}
	return nil, false
}

// bestRankGroup returns the indices of the most numerous rank, ties
// broken toward the higher rank so the pick is deterministic.
func bestRankGroup(hand []*entities.Card) []int {
	byRank := make(map[entities.Rank][]int)
	for i, card := range hand {
		byRank[card.Rank] = append(byRank[card.Rank], i)
	}

	var bestRank entities.Rank
	var best []int
	for rank, indices := range byRank {
		if len(indices) > len(best) || (len(indices) == len(best) && rank.Ordinal() > bestRank.Ordinal()) {
			best = indices
			bestRank = rank
		}
	}
	if len(best) > 5 {
		best = best[:5]
	}
	return best
}

func highestCard(hand []*entities.Card) int {
	best := 0
	for i, card := range hand {
		if card.Rank.Ordinal() > hand[best].Rank.Ordinal() {
			best = i
		}
	}
	return best
}

// padToFive grows the selection to five cards, highest ranks first.
func padToFive(g *runsvc.Game) {
	for len(g.SelectedCards()) < 5 {
		next := -1
		for i := range g.Hand {
			if g.IsSelected(i) {
				continue
			}
			if next == -1 || g.Hand[i].Rank.Ordinal() > g.Hand[next].Rank.Ordinal() {
				next = i
			}
		}
		if next == -1 {
			return
		}
		g.ToggleSelect(next)
	}
}

// autoShop buys everything affordable except card-targeting tarots,
// uses what it bought where possible and moves on.
func autoShop(g *runsvc.Game) {
	if g.Shop == nil {
		g.LeaveShop()
		return
	}

	for i := 0; i < len(g.Shop.Items); {
		item := g.Shop.Items[i]
		if skipOnAutopilot(item) {
			i++
			continue
		}
		if g.BuyShopItem(i) {
			// Bought items leave the slice, the same index is the next item
			continue
		}
		i++
	}

	for i := 0; i < len(g.Consumables); {
		c := g.Consumables[i]
		if c.IsPlanet() {
			g.UsePlanet(i)
			continue
		}
		if minCards, _ := c.Tarot.CardsNeeded(); minCards == 0 {
			g.UseTarot(i)
			continue
		}
		i++
	}

	g.LeaveShop()
}

// skipOnAutopilot filters out tarots that need selected cards; the
// policy never selects cards for a consumable, so they would clog the
// two consumable slots.
func skipOnAutopilot(item *runsvc.ShopItem) bool {
	if item.Consumable == nil || !item.Consumable.IsTarot() {
		return false
	}
	minCards, _ := item.Consumable.Tarot.CardsNeeded()
	return minCards > 0
}
