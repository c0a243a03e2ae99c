package main

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/fadedpez/anteup/pkg/entities"
	runsvc "github.com/fadedpez/anteup/pkg/services/run"
	"github.com/fadedpez/anteup/pkg/services/scoring"
)

// printTitle renders the banner shown on startup.
func printTitle() {
	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Ante", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("Up", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err != nil {
		return
	}
	pterm.Print(title)
	pterm.Println()
}

func displayBox() *pterm.BoxPrinter {
	return pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
}

// cardLabel is the plain-text form of a card used in selection menus.
// Modifiers are spelled out so the player can tell enhanced cards apart.
func cardLabel(card *entities.Card) string {
	label := card.String()
	if card.Enhancement != entities.EnhancementNone {
		label += " [" + string(card.Enhancement) + "]"
	}
	if card.Edition != entities.EditionBase {
		label += " [" + string(card.Edition) + "]"
	}
	if card.Seal != entities.SealNone {
		label += " [" + string(card.Seal) + " SEAL]"
	}
	if card.Debuffed {
		label += " (debuffed)"
	}
	return label
}

// renderCard colors a card for table display. Modifiers collapse to
// trailing markers to keep the hand row narrow.
func renderCard(card *entities.Card) string {
	label := card.String()
	switch {
	case card.Debuffed:
		label = pterm.Gray(label)
	case card.Suit.IsRed():
		label = pterm.LightRed(label)
	default:
		label = pterm.LightWhite(label)
	}
	if card.Enhancement != entities.EnhancementNone {
		label += pterm.LightMagenta("*")
	}
	if card.Edition != entities.EditionBase {
		label += pterm.LightCyan("^")
	}
	if card.Seal != entities.SealNone {
		label += pterm.LightYellow("'")
	}
	return label
}

func renderCards(cards []*entities.Card) string {
	if len(cards) == 0 {
		return pterm.Gray("(no cards)")
	}
	parts := make([]string, 0, len(cards))
	for _, card := range cards {
		parts = append(parts, renderCard(card))
	}
	return strings.Join(parts, "  ")
}

// renderTable prints the full table state while a blind is being played.
func renderTable(g *runsvc.Game) {
	pbox := displayBox()

	blindTitle := pterm.LightYellow("|" + strings.ToUpper(g.Blind.Name()) + "|")
	blindInfo := pterm.Sprintfln("Ante %d, round %d", g.Ante, g.RoundNumber)
	if g.Blind == entities.BlindBoss {
		blindInfo += pterm.Sprintfln("%s: %s", pterm.LightRed(g.Boss.Name()), g.Boss.Description())
	}
	blindInfo += pterm.Sprintfln("Score: %d / %d", g.RoundScore, g.Target)
	blindInfo += pterm.Sprintf("Hands: %d   Discards: %d   Money: $%d   Deck: %d",
		g.HandsRemaining, g.DiscardsRemaining, g.Money, g.Deck.Remaining())
	blindPanel := pterm.Panel{Data: pbox.WithTitle(blindTitle).WithTitleTopCenter().Sprint(blindInfo)}

	handPanel := pterm.Panel{Data: pbox.WithTitle("|HAND|").WithTitleTopLeft().Sprint(renderCards(g.Hand))}

	panels := [][]pterm.Panel{{blindPanel}, {handPanel}}
	if extra := renderHoldings(g); extra != "" {
		panels = append(panels, []pterm.Panel{{Data: pbox.WithTitle("|TABLE|").WithTitleTopLeft().Sprint(extra)}})
	}

	pterm.DefaultPanel.WithPanels(panels).Render()
}

// renderHoldings lists held jokers and consumables, or returns an empty
// string when there is nothing to show.
func renderHoldings(g *runsvc.Game) string {
	lines := make([]string, 0, len(g.Jokers)+len(g.Consumables))
	for _, joker := range g.Jokers {
		lines = append(lines, pterm.Sprintf("%s (%s, sell $%d)",
			pterm.LightMagenta(joker.Type.Name()), joker.Type.Description(), joker.TotalSellValue()))
	}
	for _, c := range g.Consumables {
		lines = append(lines, pterm.Sprintf("%s (%s)", pterm.LightBlue(c.Name()), c.Description()))
	}
	return strings.Join(lines, "\n")
}

// renderBlindChoice shows the ante's three blinds with their targets and
// what has happened to each so far.
func renderBlindChoice(g *runsvc.Game) {
	pbox := displayBox()

	info := ""
	blinds := []entities.BlindType{entities.BlindSmall, entities.BlindBig, entities.BlindBoss}
	for i, blind := range blinds {
		name := blind.Name()
		if blind == entities.BlindBoss {
			name = g.Boss.Name()
		}
		line := pterm.Sprintf("%-10s %-14s target %-7d reward $%d",
			outcomeMarker(g.Outcomes[i]), name, entities.ScoreTarget(g.Ante, blind, g.Boss), blind.Reward())
		if blind == g.Blind {
			line = pterm.LightCyan(line)
		}
		info += pterm.Sprintfln("%s", line)
	}
	info += pterm.Sprintfln("%s: %s", pterm.LightRed(g.Boss.Name()), g.Boss.Description())
	info += pterm.Sprintf("Money: $%d", g.Money)

	title := pterm.LightYellow(pterm.Sprintf("|ANTE %d|", g.Ante))
	pterm.Println(pbox.WithTitle(title).WithTitleTopCenter().Sprint(info))
}

func outcomeMarker(outcome entities.BlindOutcome) string {
	switch outcome {
	case entities.OutcomeBeaten:
		return pterm.LightGreen("[beaten]")
	case entities.OutcomeSkipped:
		return pterm.Gray("[skipped]")
	case entities.OutcomeActive:
		return pterm.LightCyan("[now]")
	}
	return "[soon]"
}

// renderScoreResult walks the scoring log so the player can see every
// chip and mult contribution, then shows the final total.
func renderScoreResult(g *runsvc.Game, played []*entities.Card, result scoring.ScoreResult) {
	lines := make([]string, 0, len(result.Steps)+1)
	for _, step := range result.Steps {
		lines = append(lines, describeStep(step, played, g.Jokers))
	}
	lines = append(lines, pterm.LightGreen(pterm.Sprintf("%s scores %d x %d = %d",
		result.HandType, result.TotalChips, result.TotalMult, result.FinalScore)))

	title := pterm.LightGreen("|SCORED|")
	pterm.Println(displayBox().WithTitle(title).WithTitleTopCenter().Sprint(strings.Join(lines, "\n")))
}

func describeStep(step scoring.ScoreStep, played []*entities.Card, jokers []*entities.Joker) string {
	switch step.Kind {
	case scoring.StepBaseHand:
		return pterm.Sprintf("%s: %d chips x %d mult", step.HandType, step.Chips, step.Mult)
	case scoring.StepCardChips:
		return pterm.Sprintf("%s: +%d chips", stepCard(step, played), step.Chips)
	case scoring.StepCardMult:
		return pterm.Sprintf("%s: +%d mult", stepCard(step, played), step.Mult)
	case scoring.StepCardXMult:
		return pterm.Sprintf("%s: x%.3g mult", stepCard(step, played), step.XMult)
	case scoring.StepJokerChips:
		return pterm.Sprintf("%s: +%d chips", stepJoker(step, played, jokers), step.Chips)
	case scoring.StepJokerMult:
		return pterm.Sprintf("%s: +%d mult", stepJoker(step, played, jokers), step.Mult)
	case scoring.StepJokerXMult:
		return pterm.Sprintf("%s: x%.3g mult", stepJoker(step, played, jokers), step.XMult)
	}
	return ""
}

func stepCard(step scoring.ScoreStep, played []*entities.Card) string {
	if step.CardIndex >= 0 && step.CardIndex < len(played) {
		return played[step.CardIndex].String()
	}
	return "card"
}

func stepJoker(step scoring.ScoreStep, played []*entities.Card, jokers []*entities.Joker) string {
	name := "Joker"
	if step.JokerIndex >= 0 && step.JokerIndex < len(jokers) {
		name = jokers[step.JokerIndex].Type.Name()
	}
	if step.CardIndex >= 0 && step.CardIndex < len(played) {
		name += " on " + played[step.CardIndex].String()
	}
	return name
}

// renderReward itemizes the payout for a beaten blind.
func renderReward(breakdown runsvc.RewardBreakdown) {
	lines := []string{
		pterm.Sprintf("Blind reward: $%d", breakdown.BlindReward),
	}
	if breakdown.HandsBonus > 0 {
		lines = append(lines, pterm.Sprintf("Unused hands: $%d", breakdown.HandsBonus))
	}
	if breakdown.Interest > 0 {
		lines = append(lines, pterm.Sprintf("Interest: $%d", breakdown.Interest))
	}
	if breakdown.GoldenJokerBonus > 0 {
		lines = append(lines, pterm.Sprintf("Golden Joker: $%d", breakdown.GoldenJokerBonus))
	}
	lines = append(lines, pterm.LightGreen(pterm.Sprintf("Total: $%d", breakdown.Total)))

	title := pterm.LightGreen("|BLIND BEATEN|")
	pterm.Println(displayBox().WithTitle(title).WithTitleTopCenter().Sprint(strings.Join(lines, "\n")))
}

// renderShop prints the shop stock with prices.
func renderShop(g *runsvc.Game) {
	if g.Shop == nil {
		return
	}

	lines := make([]string, 0, len(g.Shop.Items)+1)
	for i, item := range g.Shop.Items {
		lines = append(lines, pterm.Sprintf("%d) %s ($%d): %s",
			i+1, pterm.LightMagenta(item.Name()), item.Price, item.Description()))
	}
	if len(g.Shop.Items) == 0 {
		lines = append(lines, pterm.Gray("(sold out)"))
	}
	lines = append(lines, pterm.Sprintf("Reroll: $%d   Money: $%d", g.Shop.RerollCost, g.Money))

	title := pterm.LightYellow("|SHOP|")
	pterm.Println(displayBox().WithTitle(title).WithTitleTopCenter().Sprint(strings.Join(lines, "\n")))
}
