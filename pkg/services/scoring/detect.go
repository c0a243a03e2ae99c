package scoring

import (
	"sort"

	"github.com/fadedpez/anteup/pkg/entities"
)

// HandResult pairs a detected poker hand with the indices of the played
// cards that belong to it. Not every played card scores.
type HandResult struct {
	HandType       entities.PokerHand
	ScoringIndices []int
}

// DetectHand classifies a set of played cards into the best matching
// poker hand. Scoring indices come back sorted ascending. An empty
// input yields a High Card with no scoring cards.
func DetectHand(cards []*entities.Card) HandResult {
	if len(cards) == 0 {
		return HandResult{HandType: entities.HighCard, ScoringIndices: []int{}}
	}

	n := len(cards)

	// Group card positions by rank
	byRank := make(map[entities.Rank][]int)
	for i, card := range cards {
		byRank[card.Rank] = append(byRank[card.Rank], i)
	}

	isFlush := n >= 5 && hasFlush(cards)
	isStraight := checkStraight(cards)

	// Order the rank groups by size, then by rank, largest first
	type rankGroup struct {
		rank    entities.Rank
		indices []int
	}
	groups := make([]rankGroup, 0, len(byRank))
	for rank, indices := range byRank {
		groups = append(groups, rankGroup{rank: rank, indices: indices})
	}
	sort.Slice(groups, func(i, j int) bool {
		if len(groups[i].indices) != len(groups[j].indices) {
			return len(groups[i].indices) > len(groups[j].indices)
		}
		return groups[i].rank.Ordinal() > groups[j].rank.Ordinal()
	})

	allIndices := func() []int {
		indices := make([]int, n)
		for i := range indices {
			indices[i] = i
		}
		return indices
	}

	topSize := len(groups[0].indices)
	secondSize := 0
	if len(groups) > 1 {
		secondSize = len(groups[1].indices)
	}

	// Check from strongest hand down, returning the first match

	if n == 5 && topSize == 5 && isFlush {
		return HandResult{HandType: entities.FlushFive, ScoringIndices: allIndices()}
	}

	if topSize == 5 {
		return HandResult{HandType: entities.FiveOfAKind, ScoringIndices: allIndices()}
	}

	if n == 5 && len(groups) == 2 && topSize == 3 && secondSize == 2 && isFlush {
		return HandResult{HandType: entities.FlushHouse, ScoringIndices: allIndices()}
	}

	if n == 5 && isStraight && isFlush && isRoyal(cards) {
		return HandResult{HandType: entities.RoyalFlush, ScoringIndices: allIndices()}
	}

	if n == 5 && isStraight && isFlush {
		return HandResult{HandType: entities.StraightFlush, ScoringIndices: allIndices()}
	}

	if topSize >= 4 {
		return HandResult{HandType: entities.FourOfAKind, ScoringIndices: sorted(groups[0].indices)}
	}

	if topSize == 3 && secondSize >= 2 {
		scoring := append(append([]int{}, groups[0].indices...), groups[1].indices...)
		return HandResult{HandType: entities.FullHouse, ScoringIndices: sorted(scoring)}
	}

	if isFlush {
		return HandResult{HandType: entities.Flush, ScoringIndices: allIndices()}
	}

	if isStraight {
		return HandResult{HandType: entities.Straight, ScoringIndices: allIndices()}
	}

	if topSize >= 3 {
		return HandResult{HandType: entities.ThreeOfAKind, ScoringIndices: sorted(groups[0].indices)}
	}

	if topSize >= 2 && secondSize >= 2 {
		scoring := append(append([]int{}, groups[0].indices...), groups[1].indices...)
		return HandResult{HandType: entities.TwoPair, ScoringIndices: sorted(scoring)}
	}

	if topSize >= 2 {
		return HandResult{HandType: entities.Pair, ScoringIndices: sorted(groups[0].indices)}
	}

	// High card: only the single best card scores. Ties go to the
	// later position.
	bestIdx := 0
	for i, card := range cards {
		if card.Rank.Ordinal() >= cards[bestIdx].Rank.Ordinal() {
			bestIdx = i
		}
	}
	return HandResult{HandType: entities.HighCard, ScoringIndices: []int{bestIdx}}
}

func sorted(indices []int) []int {
	out := append([]int{}, indices...)
	sort.Ints(out)
	return out
}

// hasFlush reports whether every card shares one suit. Wild cards count
// as any suit, so the check tries each target suit in turn.
func hasFlush(cards []*entities.Card) bool {
	for _, target := range entities.AllSuits {
		all := true
		for _, card := range cards {
			if !card.HasSuit(target) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

// checkStraight reports whether exactly 5 cards form a run of
// consecutive ranks. The Ace plays high (10-J-Q-K-A) or low (A-2-3-4-5).
func checkStraight(cards []*entities.Card) bool {
	if len(cards) != 5 {
		return false
	}

	ranks := make([]int, 0, 5)
	for _, card := range cards {
		ranks = append(ranks, card.Rank.Ordinal())
	}
	sort.Ints(ranks)

	for i := 1; i < len(ranks); i++ {
		if ranks[i] == ranks[i-1] {
			return false
		}
	}

	if ranks[4]-ranks[0] == 4 {
		return true
	}

	// Ace-low run: A,2,3,4,5 sorts to 2,3,4,5,14
	aceLow := []int{2, 3, 4, 5, 14}
	for i := range ranks {
		if ranks[i] != aceLow[i] {
			return false
		}
	}
	return true
}

// isRoyal reports whether the cards are exactly 10-J-Q-K-A
func isRoyal(cards []*entities.Card) bool {
	if len(cards) != 5 {
		return false
	}

	ranks := make([]int, 0, 5)
	for _, card := range cards {
		ranks = append(ranks, card.Rank.Ordinal())
	}
	sort.Ints(ranks)

	royal := []int{10, 11, 12, 13, 14}
	for i := range royal {
		if ranks[i] != royal[i] {
			return false
		}
	}
	return true
}
