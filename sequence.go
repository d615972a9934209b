package mtrand

import (
	"fmt"
	"math"

	"github.com/nozzle/mtrand/internal/heap"
)

// WeightedItem pairs a value with a non-negative selection weight.
type WeightedItem[T any] struct {
	Value  T
	Weight float64
}

// Choose returns a uniformly chosen element of items.
func Choose[T any](g *Generator, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, fmt.Errorf("%w: choose", ErrEmptyCollection)
	}
	return items[g.intn(len(items))], nil
}

// scaledWeights validates weights and returns the largest weight and the sum
// of the weights divided by it. Scaling by the largest weight keeps the sum
// finite for any finite weights.
func scaledWeights[T any](items []WeightedItem[T]) (maxWeight, total float64, err error) {
	if len(items) == 0 {
		return 0, 0, fmt.Errorf("%w: weighted selection", ErrEmptyCollection)
	}

	maxWeight = math.Inf(-1)
	for _, it := range items {
		if math.IsNaN(it.Weight) || math.IsInf(it.Weight, 0) {
			return 0, 0, fmt.Errorf("%w: weight %v", ErrInvalidParameter, it.Weight)
		}
		maxWeight = max(maxWeight, it.Weight)
	}
	if !(maxWeight > 0) {
		return 0, 0, fmt.Errorf("%w: largest weight %v", ErrNonPositiveWeightSum, maxWeight)
	}
	for i, it := range items {
		if it.Weight < 0 {
			return 0, 0, fmt.Errorf("%w: negative weight %v at %d", ErrInvalidParameter, it.Weight, i)
		}
		total += it.Weight / maxWeight
	}
	return maxWeight, total, nil
}

// WeightedChoice returns an element with probability proportional to its
// weight. Cumulative weights are scanned in input order and the first item
// whose cumulative weight exceeds the draw wins.
func WeightedChoice[T any](g *Generator, items []WeightedItem[T]) (T, error) {
	var zero T
	maxWeight, total, err := scaledWeights(items)
	if err != nil {
		return zero, err
	}

	r := g.Float64() * total
	var cum float64
	last := -1
	for i, it := range items {
		if it.Weight == 0 {
			continue
		}
		cum += it.Weight / maxWeight
		if cum > r {
			return it.Value, nil
		}
		last = i
	}
	// Rounding left the draw at the total; the last weighted item owns it.
	return items[last].Value, nil
}

// Shuffle permutes items in place with a Fisher–Yates pass from the last
// index down to 1.
func Shuffle[T any](g *Generator, items []T) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: shuffle", ErrEmptyCollection)
	}
	for i := len(items) - 1; i > 0; i-- {
		j := int(g.upTo(uint64(i)))
		items[i], items[j] = items[j], items[i]
	}
	return nil
}

// Perm returns a random permutation of [0, n).
func (g *Generator) Perm(n int) []int {
	if n <= 0 {
		return []int{}
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	Shuffle(g, p)
	return p
}

// Sample returns k distinct elements of items in selection order, without
// modifying items.
func Sample[T any](g *Generator, items []T, k int) ([]T, error) {
	n := len(items)
	if n == 0 {
		return nil, fmt.Errorf("%w: sample", ErrEmptyCollection)
	}
	if k < 0 || k > n {
		return nil, fmt.Errorf("%w: k %d outside [0, %d]", ErrInvalidRange, k, n)
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	out := make([]T, k)
	for i := 0; i < k; i++ {
		j := i + g.intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
		out[i] = items[idx[i]]
	}
	return out, nil
}

// WeightedSample returns k distinct elements drawn without replacement, each
// draw proportional to the weights of the remaining items. Every positive
// weight gets an exponential key E/w and the k smallest keys win, in
// ascending key order. Keys are compared as log(E) - log(w), which stays
// finite for every positive weight. Zero-weight items are never chosen.
func WeightedSample[T any](g *Generator, items []WeightedItem[T], k int) ([]T, error) {
	if _, _, err := scaledWeights(items); err != nil {
		return nil, err
	}

	positive := 0
	for _, it := range items {
		if it.Weight > 0 {
			positive++
		}
	}
	if k < 0 || k > positive {
		return nil, fmt.Errorf("%w: k %d outside [0, %d]", ErrInvalidRange, k, positive)
	}

	h := heap.New(k)
	for i, it := range items {
		if it.Weight == 0 {
			continue
		}
		h.Push(i, math.Log(g.ExpFloat64())-math.Log(it.Weight))
	}
	h.Sort()

	out := make([]T, k)
	for i := range out {
		out[i] = items[h.Indices[i]].Value
	}
	return out, nil
}
