package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitforge/progression-engine/pkg/config"
	"github.com/habitforge/progression-engine/pkg/domain"
)

func talentCatalog() *config.Catalog {
	return &config.Catalog{
		Talents: []*domain.TalentNode{
			{ID: "grit", Name: "Grit", Tier: 1, MaxRanks: 2},
			{ID: "flow", Name: "Flow", Tier: 1, MaxRanks: 3},
			{ID: "momentum", Name: "Momentum", Tier: 2, MaxRanks: 1, Requires: []string{"grit"}},
		},
	}
}

func TestTalentPointsFollowLevel(t *testing.T) {
	e := newEngine(t, talentCatalog())

	assert.Equal(t, 1, e.TalentPointsAvailable(), "level 1 earns one point")
	require.True(t, e.Allocate("grit"))
	assert.Zero(t, e.TalentPointsAvailable())
	assert.False(t, e.Allocate("grit"), "no points left")
}

func TestTalentMaxRanks(t *testing.T) {
	e := newEngine(t, talentCatalog())
	e.progression.Level = 10

	require.True(t, e.Allocate("grit"))
	require.True(t, e.Allocate("grit"))
	assert.False(t, e.Allocate("grit"), "grit caps at two ranks")
	assert.Equal(t, 2, e.talents.Rank("grit"))
}

func TestTalentTierGateAndPrerequisites(t *testing.T) {
	e := newEngine(t, talentCatalog())
	e.progression.Level = 10

	require.True(t, e.Allocate("grit"))
	assert.False(t, e.CanAllocate("momentum"),
		"prerequisite below max rank and tier gate unmet")

	require.True(t, e.Allocate("grit"))
	assert.False(t, e.CanAllocate("momentum"), "tier 2 needs 5 points spent")

	require.True(t, e.Allocate("flow"))
	require.True(t, e.Allocate("flow"))
	require.True(t, e.Allocate("flow"))
	require.True(t, e.CanAllocate("momentum"))
	require.True(t, e.Allocate("momentum"))
	assert.Equal(t, 4, e.TalentPointsAvailable())
}

func TestTalentPrerequisiteMustBeMastered(t *testing.T) {
	cfg := &config.Catalog{
		Talents: []*domain.TalentNode{
			{ID: "a", Name: "A", Tier: 1, MaxRanks: 5},
			{ID: "b", Name: "B", Tier: 1, MaxRanks: 1, Requires: []string{"a"}},
		},
	}
	e := newEngine(t, cfg)
	e.progression.Level = 20

	for i := 0; i < 4; i++ {
		require.True(t, e.Allocate("a"))
	}
	assert.False(t, e.CanAllocate("b"), "four of five ranks is not mastered")

	require.True(t, e.Allocate("a"))
	assert.True(t, e.CanAllocate("b"))
}

func TestAllocateUnknownNode(t *testing.T) {
	e := newEngine(t, talentCatalog())
	assert.False(t, e.Allocate("nope"))
}

func TestRespecAll(t *testing.T) {
	e := newEngine(t, talentCatalog())
	e.progression.Level = 10

	require.True(t, e.Allocate("grit"))
	require.True(t, e.Allocate("flow"))

	assert.Equal(t, 2, e.RespecAll())
	assert.Zero(t, e.talents.Rank("grit"))
	assert.Equal(t, 10, e.TalentPointsAvailable(), "all points return to the pool")
	assert.Zero(t, e.RespecAll(), "nothing left to refund")
}

func TestTalentOverview(t *testing.T) {
	e := newEngine(t, talentCatalog())
	e.progression.Level = 10

	require.True(t, e.Allocate("grit"))
	views := e.TalentOverview()
	require.Len(t, views, 3)

	byID := map[string]TalentView{}
	for _, v := range views {
		byID[v.Node.ID] = v
	}
	assert.Equal(t, 1, byID["grit"].Rank)
	assert.True(t, byID["grit"].CanAllocate)
	assert.False(t, byID["momentum"].CanAllocate)
}
