// Package heap provides a bounded max-heap that keeps the k smallest keys
// pushed into it.
package heap

import "math"

// MaxHeap tracks the k entries with the smallest keys.
// The largest retained key is always at the root (index 0).
type MaxHeap struct {
	Indices []int
	Keys    []float64
	Size    int
	K       int
}

// New creates a new max-heap with capacity k.
func New(k int) *MaxHeap {
	h := &MaxHeap{
		Indices: make([]int, k),
		Keys:    make([]float64, k),
		K:       k,
	}
	h.Reset()
	return h
}

// MaxKey returns the largest retained key (root), or +Inf while the heap
// still has free slots.
func (h *MaxHeap) MaxKey() float64 {
	if h.K == 0 {
		return math.Inf(-1)
	}
	return h.Keys[0]
}

// Push offers an entry to the heap.
// Returns true if the entry was kept (its key was below the current max).
func (h *MaxHeap) Push(idx int, key float64) bool {
	// Quick reject if worse than current worst
	if h.K == 0 || key >= h.Keys[0] {
		return false
	}

	// Replace root
	h.Keys[0] = key
	h.Indices[0] = idx
	if h.Size < h.K {
		h.Size++
	}

	h.siftDownN(0, h.K)
	return true
}

// siftDownN restores the heap property below i within the first n entries.
func (h *MaxHeap) siftDownN(i, n int) {
	for {
		left := 2*i + 1
		right := 2*i + 2

		if left >= n {
			break
		}

		swap := i
		if h.Keys[left] > h.Keys[swap] {
			swap = left
		}
		if right < n && h.Keys[right] > h.Keys[swap] {
			swap = right
		}

		if swap == i {
			break
		}

		h.Keys[i], h.Keys[swap] = h.Keys[swap], h.Keys[i]
		h.Indices[i], h.Indices[swap] = h.Indices[swap], h.Indices[i]
		i = swap
	}
}

// Sort converts the heap to ascending key order. Unfilled slots (index -1,
// key +Inf) end up last. After sorting, the heap property no longer holds.
func (h *MaxHeap) Sort() {
	for i := h.K - 1; i > 0; i-- {
		h.Keys[0], h.Keys[i] = h.Keys[i], h.Keys[0]
		h.Indices[0], h.Indices[i] = h.Indices[i], h.Indices[0]
		h.siftDownN(0, i)
	}
}

// Reset clears the heap.
func (h *MaxHeap) Reset() {
	for i := 0; i < h.K; i++ {
		h.Indices[i] = -1
		h.Keys[i] = math.Inf(1)
	}
	h.Size = 0
}
