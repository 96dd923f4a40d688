package glossa

import (
	"errors"
	"math/rand"
	"sort"
	"time"
)

// ErrZeroWeight is returned when a weighted draw is attempted over a
// list whose weights sum to zero. A zero-total list is a caller error;
// it never silently yields an arbitrary element.
var ErrZeroWeight = errors.New("glossa: total weight is zero")

// Sampler is the single pseudo-random source for one generation call.
// All downstream randomness funnels through Float so that one seed
// reproduces an entire word, including every repair and morphology
// branch. A Sampler is not safe for concurrent use; each generation
// call owns its own.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler returns a deterministic sampler for the given seed.
func NewSampler(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// NewRandomSampler returns a time-seeded, non-deterministic sampler.
func NewRandomSampler() *Sampler {
	return NewSampler(time.Now().UnixNano())
}

// Float returns the next pseudo-random float in [0, 1).
func (s *Sampler) Float() float64 {
	return s.rng.Float64()
}

// Choice pairs a candidate value with its non-negative weight.
// Weights are relative; they are not required to sum to 1.
type Choice[T any] struct {
	Value  T
	Weight float64
}

// WeightedChoice draws one value from choices with probability
// proportional to its weight, consuming exactly one Float from s.
// It scans linearly and suits ad-hoc call sites; for hot distributions
// use NewDistribution. Both map the same roll onto the same cumulative
// mass, so given identical sampler state they pick identical values.
func WeightedChoice[T any](s *Sampler, choices []Choice[T]) (T, error) {
	return pickChoice(choices, s.Float())
}

// pickChoice maps one roll in [0, 1) onto choices. Splitting the roll
// from the scan lets the trace recorder capture the consumed value.
func pickChoice[T any](choices []Choice[T], roll float64) (T, error) {
	var total float64
	for _, c := range choices {
		total += c.Weight
	}
	var zero T
	if total <= 0 {
		return zero, ErrZeroWeight
	}
	target := roll * total
	var cum float64
	for _, c := range choices {
		cum += c.Weight
		if target < cum {
			return c.Value, nil
		}
	}
	// target == total can only be approached through rounding; the last
	// positively weighted choice wins.
	for i := len(choices) - 1; i >= 0; i-- {
		if choices[i].Weight > 0 {
			return choices[i].Value, nil
		}
	}
	return zero, ErrZeroWeight
}

// WeightedIndex draws an index into weights, linearly.
func WeightedIndex(s *Sampler, weights []float64) (int, error) {
	choices := make([]Choice[int], len(weights))
	for i, w := range weights {
		choices[i] = Choice[int]{Value: i, Weight: w}
	}
	return WeightedChoice(s, choices)
}

// Distribution is a precomputed weighted distribution. It stores the
// cumulative weights once and performs a binary search per draw, which
// pays off for the handful of hot tables (syllable count, onset/coda
// lengths, template weights) consulted on every generated word.
// Precomputation changes the search cost, never the outcome
// probabilities. A Distribution is immutable and safe for concurrent
// draws with independent samplers.
type Distribution[T any] struct {
	values []T
	cum    []float64
	total  float64
}

// NewDistribution builds a Distribution from choices.
// Zero-weight entries are kept out of the cumulative array so a draw can
// never land on them.
func NewDistribution[T any](choices []Choice[T]) (*Distribution[T], error) {
	d := &Distribution[T]{}
	for _, c := range choices {
		if c.Weight <= 0 {
			continue
		}
		d.total += c.Weight
		d.values = append(d.values, c.Value)
		d.cum = append(d.cum, d.total)
	}
	if d.total <= 0 {
		return nil, ErrZeroWeight
	}
	return d, nil
}

// NewIndexDistribution builds a Distribution over the indices of weights.
func NewIndexDistribution(weights []float64) (*Distribution[int], error) {
	choices := make([]Choice[int], len(weights))
	for i, w := range weights {
		choices[i] = Choice[int]{Value: i, Weight: w}
	}
	return NewDistribution(choices)
}

// Draw returns one value, consuming exactly one Float from s.
func (d *Distribution[T]) Draw(s *Sampler) T {
	return d.at(s.Float())
}

// at maps a roll in [0, 1) onto the cumulative array.
func (d *Distribution[T]) at(roll float64) T {
	target := roll * d.total
	i := sort.SearchFloat64s(d.cum, target)
	if i < len(d.values) && d.cum[i] == target {
		// SearchFloat64s returns the first index with cum >= target;
		// an exact hit belongs to the next bucket, matching the
		// strict "target < cum" rule of the linear scan.
		i++
	}
	if i >= len(d.values) {
		i = len(d.values) - 1
	}
	return d.values[i]
}
