package texatlas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeuristicValid(t *testing.T) {
	t.Parallel()

	assert.True(t, BestShortSideFit.valid())
	assert.True(t, ContactPoint.valid())
	assert.False(t, Heuristic(99).valid())
}

func TestPlacementHeuristicValid(t *testing.T) {
	t.Parallel()

	assert.True(t, GuillotineBestAreaFit.valid())
	assert.True(t, GuillotineWorstLongSideFit.valid())
	assert.False(t, PlacementHeuristic(99).valid())
}

func TestSplitHeuristicValid(t *testing.T) {
	t.Parallel()

	assert.True(t, SplitShorterLeftoverAxis.valid())
	assert.True(t, SplitLongerAxis.valid())
	assert.False(t, SplitHeuristic(99).valid())
}

func TestHeuristicStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "BestAreaFit", BestAreaFit.String())
	assert.Equal(t, "Invalid", Heuristic(99).String())
	assert.Equal(t, "WorstAreaFit", GuillotineWorstAreaFit.String())
	assert.Equal(t, "MinimizeArea", SplitMinimizeArea.String())
}
