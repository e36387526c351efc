package engine

import "github.com/habitforge/progression-engine/pkg/domain"

// TalentPointsAvailable returns unspent talent points: one point is earned
// per level, minus everything already allocated.
func (e *Engine) TalentPointsAvailable() int {
	return domain.TalentPointsEarned(e.progression.Level) - e.talents.PointsSpent()
}

// CanAllocate reports whether one rank of the node can be purchased:
// a point must be available, the node below its max rank, the cumulative
// spend must meet the node's tier gate, and every prerequisite must be at
// its own max rank.
func (e *Engine) CanAllocate(nodeID string) bool {
	node := e.catalog.TalentByID(nodeID)
	if node == nil {
		return false
	}
	if e.TalentPointsAvailable() <= 0 {
		return false
	}
	if e.talents.Rank(nodeID) >= node.MaxRanks {
		return false
	}
	if e.talents.PointsSpent() < (node.Tier-1)*domain.TalentTierPointGate {
		return false
	}
	for _, prereqID := range node.Requires {
		prereq := e.catalog.TalentByID(prereqID)
		if prereq == nil || e.talents.Rank(prereqID) < prereq.MaxRanks {
			return false
		}
	}
	return true
}

// Allocate spends one point on the node. An invalid spend is a guarded
// no-op, not an error: expected, frequent, and signalled by the false
// return with no state change.
func (e *Engine) Allocate(nodeID string) bool {
	if !e.CanAllocate(nodeID) {
		return false
	}
	e.talents[nodeID]++
	e.logger.Info("Talent point spent", "node", nodeID, "rank", e.talents[nodeID])
	return true
}

// RespecAll clears every rank, returning all spent points to the pool.
// Unconditional; always succeeds. Returns the number of points refunded.
func (e *Engine) RespecAll() int {
	refunded := e.talents.PointsSpent()
	e.talents = make(domain.TalentAllocation)
	if refunded > 0 {
		e.logger.Info("Talents respecced", "points_refunded", refunded)
	}
	return refunded
}
