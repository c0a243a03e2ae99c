package main

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pterm/pterm"

	"github.com/fadedpez/anteup/internal/config"
	"github.com/fadedpez/anteup/internal/discord"
	"github.com/fadedpez/anteup/internal/logging"
	"github.com/fadedpez/anteup/pkg/entities"
	runsvc "github.com/fadedpez/anteup/pkg/services/run"
	"github.com/fadedpez/anteup/pkg/services/scoring"
	"github.com/fadedpez/anteup/pkg/services/statistics"
)

// playRun drives one full run from the first Small Blind to a win or a
// loss, then stores the result and posts the report.
func playRun(ctx context.Context, cfg *config.Config, logger *logging.Logger, statsService *statistics.Service, notifier *discord.Notifier) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := runsvc.NewGameWithSeed(seed)
	logger.Info("Starting run %s with seed %d", g.ID, seed)

	rec := newRunRecorder()
	won := false
	lost := false
	for !won && !lost {
		switch g.Phase {
		case entities.PhaseBlindSelect:
			blindSelect(g)
		case entities.PhasePlaying:
			lost = !playBlind(g, rec)
		case entities.PhaseShop:
			shopLoop(g)
		}
		won = g.RunWon()
	}

	if won {
		pterm.Success.Println("All eight antes cleared. You win!")
	}

	record := rec.finish(g, won)
	if err := statsService.RecordCompletedRun(ctx, record, rec.hands); err != nil {
		logger.LogError(err)
	}
	if notifier != nil {
		if err := notifier.NotifyRunCompleted(record); err != nil {
			logger.LogError(err)
		}
	}
}

// blindSelect lets the player start the upcoming blind or skip it.
func blindSelect(g *runsvc.Game) {
	renderBlindChoice(g)

	options := []string{pterm.Sprintf("Play the %s", g.Blind.Name())}
	if g.Blind.CanSkip() {
		options = append(options, "Skip this blind")
	}

	choice, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText("Next up").
		WithOptions(options).
		Show()

	if choice == "Skip this blind" {
		g.SkipBlind()
		return
	}
	g.StartBlind()
}

// playBlind loops player moves until the blind falls or the hands run
// out. Returns false when the run is lost.
func playBlind(g *runsvc.Game, rec *runRecorder) bool {
	for {
		renderTable(g)

		options := []string{"Play a hand"}
		if g.DiscardsRemaining > 0 {
			options = append(options, "Discard")
		}
		if len(g.Consumables) > 0 {
			options = append(options, "Use a consumable")
		}
		if len(g.Jokers) > 0 {
			options = append(options, "Sell a joker")
		}

		action, _ := pterm.DefaultInteractiveSelect.
			WithDefaultText("Your move").
			WithOptions(options).
			Show()

		switch action {
		case "Play a hand":
			selectCards(g)
			if !g.CanPlay() {
				explainUnplayable(g)
				continue
			}
			played := g.PlaySelected()
			result := g.CalculateScoreWithJokers(played)
			g.UseHand()
			g.AddScore(result.FinalScore)
			g.Deck.DiscardCards(played)
			rec.recordHand(g, played, result)
			renderScoreResult(g, played, result)
			g.ApplyHookEffect()
			g.DrawToHandSize()

		case "Discard":
			selectCards(g)
			if !g.DiscardSelected() {
				pterm.Error.Println("Nothing to discard, or no discards left.")
			}

		case "Use a consumable":
			useConsumable(g)

		case "Sell a joker":
			sellJoker(g)
		}

		if g.BlindBeaten() {
			breakdown := g.CalculateRewardBreakdown()
			g.BeatBlind()
			renderReward(breakdown)
			return true
		}
		if g.RoundLost() {
			pterm.Error.Printfln("Out of hands at %d of %d. The run is over.", g.RoundScore, g.Target)
			return false
		}
	}
}

func explainUnplayable(g *runsvc.Game) {
	if g.Blind == entities.BlindBoss && g.Boss == entities.ThePsychic && len(g.SelectedCards()) != 5 {
		pterm.Error.Println("The Psychic demands exactly 5 cards.")
		return
	}
	pterm.Error.Println("Select 1 to 5 cards to play.")
}

// selectCards replaces the current selection with cards picked from the
// hand.
func selectCards(g *runsvc.Game) {
	g.ClearSelection()
	if len(g.Hand) == 0 {
		return
	}

	options := make([]string, 0, len(g.Hand))
	byLabel := make(map[string]int, len(g.Hand))
	for i, card := range g.Hand {
		label := pterm.Sprintf("%d) %s", i+1, cardLabel(card))
		options = append(options, label)
		byLabel[label] = i
	}

	picked, _ := pterm.DefaultInteractiveMultiselect.
		WithDefaultText("Pick up to 5 cards").
		WithOptions(options).
		Show()
	if len(picked) > 5 {
		pterm.Warning.Println("Only the first 5 picks count.")
	}

	for _, label := range picked {
		g.ToggleSelect(byLabel[label])
	}
}

// useConsumable picks a held consumable and applies it, gathering the
// target cards first when a tarot needs them.
func useConsumable(g *runsvc.Game) {
	if len(g.Consumables) == 0 {
		return
	}

	options := make([]string, 0, len(g.Consumables)+1)
	for i, c := range g.Consumables {
		options = append(options, pterm.Sprintf("%d) %s: %s", i+1, c.Name(), c.Description()))
	}
	options = append(options, "Cancel")

	choice, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText("Use which?").
		WithOptions(options).
		Show()
	if choice == "Cancel" {
		return
	}

	idx := indexOf(options, choice)
	if idx < 0 || idx >= len(g.Consumables) {
		return
	}
	c := g.Consumables[idx]

	if c.IsPlanet() {
		hand := c.Planet.HandType()
		if g.UsePlanet(idx) {
			pterm.Success.Printfln("%s takes %s to level %d.", c.Name(), hand, g.Levels.GetLevel(hand))
		}
		return
	}

	minCards, maxCards := c.Tarot.CardsNeeded()
	if minCards > 0 {
		if g.Phase != entities.PhasePlaying {
			pterm.Error.Printfln("%s needs cards in hand to work on.", c.Name())
			return
		}
		selectCards(g)
	}

	switch {
	case g.UseTarot(idx):
		pterm.Success.Printfln("%s used.", c.Name())
	case minCards == maxCards:
		pterm.Error.Printfln("%s needs exactly %d selected cards.", c.Name(), minCards)
	default:
		pterm.Error.Printfln("%s needs %d to %d selected cards.", c.Name(), minCards, maxCards)
	}
}

func sellJoker(g *runsvc.Game) {
	if len(g.Jokers) == 0 {
		return
	}

	options := make([]string, 0, len(g.Jokers)+1)
	for i, joker := range g.Jokers {
		options = append(options, pterm.Sprintf("%d) %s (sell $%d)", i+1, joker.Type.Name(), joker.TotalSellValue()))
	}
	options = append(options, "Cancel")

	choice, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText("Sell which?").
		WithOptions(options).
		Show()
	if choice == "Cancel" {
		return
	}

	idx := indexOf(options, choice)
	if idx < 0 || idx >= len(g.Jokers) {
		return
	}
	name := g.Jokers[idx].Type.Name()
	if g.SellJoker(idx) {
		pterm.Success.Printfln("Sold %s. Money: $%d", name, g.Money)
	}
}

// shopLoop runs the between-blinds shop until the player moves on.
func shopLoop(g *runsvc.Game) {
	for g.Phase == entities.PhaseShop {
		if g.Shop == nil {
			return
		}
		renderShop(g)

		options := make([]string, 0, len(g.Shop.Items)+4)
		for i, item := range g.Shop.Items {
			options = append(options, pterm.Sprintf("Buy %d) %s ($%d)", i+1, item.Name(), item.Price))
		}
		options = append(options, pterm.Sprintf("Reroll ($%d)", g.Shop.RerollCost))
		if len(g.Jokers) > 0 {
			options = append(options, "Sell a joker")
		}
		if len(g.Consumables) > 0 {
			options = append(options, "Use a consumable")
		}
		options = append(options, "Next blind")

		choice, _ := pterm.DefaultInteractiveSelect.
			WithDefaultText("The shop is open").
			WithOptions(options).
			Show()

		switch {
		case choice == "Next blind":
			g.LeaveShop()
		case choice == "Sell a joker":
			sellJoker(g)
		case choice == "Use a consumable":
			useConsumable(g)
		case strings.HasPrefix(choice, "Reroll"):
			if !g.RerollShop() {
				pterm.Error.Println("Not enough money to reroll.")
			}
		default:
			// Buy options come first, so the option index is the item index
			idx := indexOf(options, choice)
			if !g.BuyShopItem(idx) {
				pterm.Error.Println("Not enough money, or no room for it.")
			}
		}
	}
}

func indexOf(options []string, choice string) int {
	for i, option := range options {
		if option == choice {
			return i
		}
	}
	return -1
}

// runRecorder keeps the hand-by-hand history of a run so it can be
// stored when the run ends.
type runRecorder struct {
	hands     []*entities.HandRecord
	bestType  string
	bestScore int64
}

func newRunRecorder() *runRecorder {
	return &runRecorder{}
}

func (r *runRecorder) recordHand(g *runsvc.Game, played []*entities.Card, result scoring.ScoreResult) {
	cards := make([]string, 0, len(played))
	for _, card := range played {
		cards = append(cards, card.String())
	}

	r.hands = append(r.hands, &entities.HandRecord{
		ID:          uuid.New().String(),
		RunID:       g.ID,
		Ante:        g.Ante,
		Blind:       string(g.Blind),
		Round:       g.RoundNumber,
		HandType:    result.HandType.String(),
		Chips:       result.TotalChips,
		Mult:        result.TotalMult,
		Score:       result.FinalScore,
		CardsPlayed: cards,
		CreatedAt:   time.Now(),
	})

	if result.FinalScore > r.bestScore {
		r.bestScore = result.FinalScore
		r.bestType = result.HandType.String()
	}
}

func (r *runRecorder) finish(g *runsvc.Game, won bool) *entities.RunRecord {
	jokers := make([]string, 0, len(g.Jokers))
	for _, joker := range g.Jokers {
		jokers = append(jokers, joker.Type.Name())
	}

	ante := g.Ante
	if won {
		// A won run stands one past the last ante beaten
		ante--
	}

	return &entities.RunRecord{
		RunID:         g.ID,
		Seed:          g.Seed,
		Won:           won,
		AnteReached:   ante,
		RoundsPlayed:  g.RoundNumber,
		HandsPlayed:   len(r.hands),
		BestHandType:  r.bestType,
		BestHandScore: r.bestScore,
		FinalMoney:    g.Money,
		JokerTypes:    jokers,
		CompletedAt:   time.Now(),
	}
}
