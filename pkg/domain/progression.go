package domain

// Leveling constants.
const (
	// MaxLevel is the level ceiling. XP keeps accumulating past the
	// level-100 threshold but no further level-ups are produced.
	MaxLevel = 100

	// XPPerLevel is the flat XP cost of each level.
	XPPerLevel = 1000

	// BuffXPBonus is the additive multiplier contribution of one active buff.
	// With n active buffs a grant is scaled by 1 + n*BuffXPBonus.
	BuffXPBonus = 0.2
)

// LevelUpTier classifies how significant a level-up is.
type LevelUpTier string

const (
	// TierNormal is any level-up that lands on a non-milestone level.
	TierNormal LevelUpTier = "normal"

	// TierMilestone is a level-up landing on a multiple of 5 (but not 10).
	TierMilestone LevelUpTier = "milestone"

	// TierJackpot is a level-up landing on a multiple of 10.
	TierJackpot LevelUpTier = "jackpot"
)

// IsValid returns true if the tier is a valid classification.
func (t LevelUpTier) IsValid() bool {
	switch t {
	case TierNormal, TierMilestone, TierJackpot:
		return true
	default:
		return false
	}
}

// ClassifyLevelUp returns the tier for a level-up that ends on the given
// level. A grant crossing several boundaries at once is classified by the
// final level reached, not by any boundary passed along the way.
func ClassifyLevelUp(level int) LevelUpTier {
	switch {
	case level%10 == 0:
		return TierJackpot
	case level%5 == 0:
		return TierMilestone
	default:
		return TierNormal
	}
}

// LevelForTotalXP returns the level for a cumulative XP total,
// clamped to MaxLevel.
func LevelForTotalXP(totalXP int) int {
	if totalXP < 0 {
		totalXP = 0
	}
	level := totalXP/XPPerLevel + 1
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// PendingLevelUp is an unacknowledged level-up surfaced to the presentation
// layer. Only the latest one is kept; it is cleared by explicit acknowledgment.
type PendingLevelUp struct {
	Level int         `json:"level"`
	Tier  LevelUpTier `json:"tier"`
}

// ProgressionState tracks a player's XP total and derived level.
// It is owned exclusively by the progression ledger and mutated only
// through XP grants.
type ProgressionState struct {
	TotalXP        int             `json:"total_xp"`
	Level          int             `json:"level"`
	PendingLevelUp *PendingLevelUp `json:"pending_level_up,omitempty"`
}

// NewProgressionState returns the fresh level-1 state.
func NewProgressionState() ProgressionState {
	return ProgressionState{Level: 1}
}

// XPIntoLevel returns the XP accumulated past the current level's threshold.
func (p *ProgressionState) XPIntoLevel() int {
	return p.TotalXP - (p.Level-1)*XPPerLevel
}

// ProgressToNextLevel returns the fraction [0,1] of the way to the next
// level. At MaxLevel it always reports 1.
func (p *ProgressionState) ProgressToNextLevel() float64 {
	if p.Level >= MaxLevel {
		return 1
	}
	frac := float64(p.XPIntoLevel()) / float64(XPPerLevel)
	if frac > 1 {
		return 1
	}
	if frac < 0 {
		return 0
	}
	return frac
}
