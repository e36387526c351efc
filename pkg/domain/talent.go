package domain

// Talent tier bounds and gating.
const (
	MinTalentTier = 1
	MaxTalentTier = 5

	// TalentTierPointGate is the cumulative spend required per tier above
	// the first: ranking a tier-N node needs (N-1)*TalentTierPointGate
	// points already spent.
	TalentTierPointGate = 5
)

// TalentNode is a static catalog entry in the prerequisite DAG. Acyclicity
// is guaranteed by catalog validation (edges only point to strictly lower
// tiers), not re-checked at runtime.
type TalentNode struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Tier     int      `json:"tier" yaml:"tier"`
	MaxRanks int      `json:"max_ranks" yaml:"max_ranks"`
	Requires []string `json:"requires,omitempty" yaml:"requires,omitempty"` // prerequisite node IDs, each must be at its own max rank
}

// TalentAllocation maps node ID to the player's current rank.
// Absent nodes are at rank 0.
type TalentAllocation map[string]int

// PointsSpent returns the total ranks purchased.
func (a TalentAllocation) PointsSpent() int {
	total := 0
	for _, rank := range a {
		total += rank
	}
	return total
}

// Rank returns the current rank of a node (0 when never allocated).
func (a TalentAllocation) Rank(nodeID string) int {
	return a[nodeID]
}

// TalentPointsEarned returns the spendable point budget for a level:
// one point per level.
func TalentPointsEarned(level int) int {
	if level < 0 {
		return 0
	}
	return level
}
