package glossa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamplerDeterministic(t *testing.T) {
	a := NewSampler(99)
	b := NewSampler(99)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float(), b.Float())
	}
}

func TestSamplerFloatRange(t *testing.T) {
	s := NewSampler(1)
	for i := 0; i < 1000; i++ {
		f := s.Float()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
}

func TestWeightedChoiceZeroTotal(t *testing.T) {
	s := NewSampler(1)
	_, err := WeightedChoice(s, []Choice[string]{
		{Value: "a", Weight: 0},
		{Value: "b", Weight: 0},
	})
	assert.ErrorIs(t, err, ErrZeroWeight)

	_, err = WeightedChoice[string](s, nil)
	assert.ErrorIs(t, err, ErrZeroWeight)
}

func TestWeightedChoiceSkipsZeroWeight(t *testing.T) {
	s := NewSampler(3)
	choices := []Choice[string]{
		{Value: "never", Weight: 0},
		{Value: "always", Weight: 5},
		{Value: "also never", Weight: 0},
	}
	for i := 0; i < 200; i++ {
		v, err := WeightedChoice(s, choices)
		require.NoError(t, err)
		assert.Equal(t, "always", v)
	}
}

func TestWeightedChoiceProportions(t *testing.T) {
	s := NewSampler(7)
	choices := []Choice[string]{
		{Value: "heavy", Weight: 9},
		{Value: "light", Weight: 1},
	}
	counts := map[string]int{}
	const n = 10000
	for i := 0; i < n; i++ {
		v, err := WeightedChoice(s, choices)
		require.NoError(t, err)
		counts[v]++
	}
	// 90/10 split with a generous tolerance.
	assert.InDelta(t, 0.9, float64(counts["heavy"])/n, 0.03)
}

func TestWeightedIndex(t *testing.T) {
	s := NewSampler(5)
	idx, err := WeightedIndex(s, []float64{0, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestDistributionZeroTotal(t *testing.T) {
	_, err := NewIndexDistribution([]float64{0, 0, 0})
	assert.ErrorIs(t, err, ErrZeroWeight)
}

// The precomputed distribution must map every roll onto the same value
// as the linear scan; precomputation may change the search cost, never
// the outcome.
func TestDistributionMatchesLinearScan(t *testing.T) {
	weights := []float64{3, 0, 2.5, 1, 0, 0.5}
	choices := make([]Choice[int], len(weights))
	for i, w := range weights {
		choices[i] = Choice[int]{Value: i, Weight: w}
	}
	d, err := NewDistribution(choices)
	require.NoError(t, err)

	s := NewSampler(11)
	for i := 0; i < 5000; i++ {
		roll := s.Float()
		want, err := pickChoice(choices, roll)
		require.NoError(t, err)
		assert.Equal(t, want, d.at(roll), "roll %v", roll)
	}

	// Boundary rolls landing exactly on a cumulative edge.
	total := 3 + 2.5 + 1 + 0.5
	for _, edge := range []float64{0, 3 / total, 5.5 / total} {
		want, err := pickChoice(choices, edge)
		require.NoError(t, err)
		assert.Equal(t, want, d.at(edge), "edge %v", edge)
	}
}

func TestDistributionDrawConsumesOneFloat(t *testing.T) {
	d, err := NewIndexDistribution([]float64{1, 1, 1})
	require.NoError(t, err)

	a := NewSampler(21)
	b := NewSampler(21)
	d.Draw(a)
	b.Float()
	// Both samplers must now be in the same state.
	assert.Equal(t, a.Float(), b.Float())
}
