package entities

// BlindType identifies which blind of the ante is being played

type BlindType string

const (
	BlindSmall BlindType = "SMALL"
	BlindBig   BlindType = "BIG"
	BlindBoss  BlindType = "BOSS"
)

// Name returns the display name of the blind
func (b BlindType) Name() string {
	switch b {
	case BlindSmall:
		return "Small Blind"
	case BlindBig:
		return "Big Blind"
	case BlindBoss:
		return "Boss Blind"
	}
	return string(b)
}

// Reward returns the base money earned for beating this blind
func (b BlindType) Reward() int64 {
	switch b {
	case BlindSmall:
		return 3
	case BlindBig:
		return 4
	case BlindBoss:
		return 5
	}
	return 0
}

// CanSkip returns true if the blind may be skipped instead of played
func (b BlindType) CanSkip() bool {
	return b == BlindSmall || b == BlindBig
}

// Index returns the position of the blind within its ante (0, 1 or 2)
func (b BlindType) Index() int {
	switch b {
	case BlindSmall:
		return 0
	case BlindBig:
		return 1
	case BlindBoss:
		return 2
	}
	return 0
}

// ScoreMultiplier returns the factor applied to the ante's base chips.
// The boss variant only matters when the blind is the boss blind.
func (b BlindType) ScoreMultiplier(boss BossBlind) float64 {
	switch b {
	case BlindSmall:
		return 1.0
	case BlindBig:
		return 1.5
	case BlindBoss:
		return boss.ScoreMultiplier()
	}
	return 1.0
}

// BossBlind is a boss variant with a unique rule-altering effect

type BossBlind string

const (
	TheHook    BossBlind = "THE_HOOK"    // discards 2 random cards per hand played
	TheWall    BossBlind = "THE_WALL"    // 4x base chips
	ThePsychic BossBlind = "THE_PSYCHIC" // must play exactly 5 cards
	TheNeedle  BossBlind = "THE_NEEDLE"  // only 1 hand allowed
	TheClub    BossBlind = "THE_CLUB"    // all Clubs debuffed
	TheGoad    BossBlind = "THE_GOAD"    // all Spades debuffed
	TheWindow  BossBlind = "THE_WINDOW"  // all Diamonds debuffed
	TheHead    BossBlind = "THE_HEAD"    // all Hearts debuffed
)

// AllBossBlinds lists every boss variant in the pool.
var AllBossBlinds = []BossBlind{
	TheHook,
	TheWall,
	ThePsychic,
	TheNeedle,
	TheClub,
	TheGoad,
	TheWindow,
	TheHead,
}

// Name returns the display name of the boss
func (b BossBlind) Name() string {
	switch b {
	case TheHook:
		return "The Hook"
	case TheWall:
		return "The Wall"
	case ThePsychic:
		return "The Psychic"
	case TheNeedle:
		return "The Needle"
	case TheClub:
		return "The Club"
	case TheGoad:
		return "The Goad"
	case TheWindow:
		return "The Window"
	case TheHead:
		return "The Head"
	}
	return string(b)
}

// ScoreMultiplier returns the factor this boss applies to base chips
func (b BossBlind) ScoreMultiplier() float64 {
	if b == TheWall {
		return 4.0
	}
	return 2.0
}

// Description returns the rule text for the boss
func (b BossBlind) Description() string {
	switch b {
	case TheHook:
		return "Discards 2 random cards per hand"
	case TheWall:
		return "Extra large blind (4x chips)"
	case ThePsychic:
		return "Must play exactly 5 cards"
	case TheNeedle:
		return "Only 1 hand allowed"
	case TheClub:
		return "All Club cards are debuffed"
	case TheGoad:
		return "All Spade cards are debuffed"
	case TheWindow:
		return "All Diamond cards are debuffed"
	case TheHead:
		return "All Heart cards are debuffed"
	}
	return ""
}

// DebuffSuit returns the suit this boss debuffs, if any
func (b BossBlind) DebuffSuit() (Suit, bool) {
	switch b {
	case TheClub:
		return Clubs, true
	case TheGoad:
		return Spades, true
	case TheWindow:
		return Diamonds, true
	case TheHead:
		return Hearts, true
	}
	return "", false
}

// AntePhase is the stage within an ante

type AntePhase string

const (
	PhaseBlindSelect AntePhase = "BLIND_SELECT"
	PhasePlaying     AntePhase = "PLAYING"
	PhaseShop        AntePhase = "SHOP"
)

// BlindOutcome records what happened to one blind of the current ante

type BlindOutcome string

const (
	OutcomeUpcoming BlindOutcome = "UPCOMING"
	OutcomeActive   BlindOutcome = "ACTIVE"
	OutcomeSkipped  BlindOutcome = "SKIPPED"
	OutcomeBeaten   BlindOutcome = "BEATEN"
)

// AnteBaseChips returns the base chip requirement for an ante. Antes
// past 8 keep scaling for endless play.
func AnteBaseChips(ante int) int64 {
	switch ante {
	case 1:
		return 300
	case 2:
		return 800
	case 3:
		return 2000
	case 4:
		return 5000
	case 5:
		return 11000
	case 6:
		return 20000
	case 7:
		return 35000
	case 8:
		return 50000
	default:
		if ante < 1 {
			return 300
		}
		return 50000 + int64(ante-8)*25000
	}
}

// ScoreTarget returns the chip target for a blind at a given ante
func ScoreTarget(ante int, blind BlindType, boss BossBlind) int64 {
	base := float64(AnteBaseChips(ante))
	return int64(base * blind.ScoreMultiplier(boss))
}
