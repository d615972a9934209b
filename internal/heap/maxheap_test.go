package heap

import (
	"math"
	"testing"
)

func TestKeepsSmallest(t *testing.T) {
	h := New(3)
	keys := []float64{5, 1, 9, 3, 7, 2, 8}
	for i, k := range keys {
		h.Push(i, k)
	}
	if h.Size != 3 {
		t.Fatalf("size = %d, expected 3", h.Size)
	}
	if h.MaxKey() != 3 {
		t.Errorf("max key = %v, expected 3", h.MaxKey())
	}

	h.Sort()
	wantIdx := []int{1, 5, 3}
	wantKey := []float64{1, 2, 3}
	for i := range wantIdx {
		if h.Indices[i] != wantIdx[i] || h.Keys[i] != wantKey[i] {
			t.Errorf("slot %d: got (%d, %v), expected (%d, %v)",
				i, h.Indices[i], h.Keys[i], wantIdx[i], wantKey[i])
		}
	}
}

func TestPartiallyFilled(t *testing.T) {
	h := New(4)
	h.Push(10, 0.5)
	h.Push(11, 0.25)
	if !math.IsInf(h.MaxKey(), 1) {
		t.Errorf("max key with free slots = %v, expected +Inf", h.MaxKey())
	}

	h.Sort()
	if h.Indices[0] != 11 || h.Indices[1] != 10 {
		t.Errorf("sorted indices = %v", h.Indices[:2])
	}
	if h.Indices[2] != -1 || h.Indices[3] != -1 {
		t.Errorf("unfilled slots = %v, expected -1", h.Indices[2:])
	}
}

func TestRejectsWorse(t *testing.T) {
	h := New(1)
	if !h.Push(0, 2) {
		t.Fatal("first push rejected")
	}
	if h.Push(1, 3) {
		t.Error("larger key accepted into full heap")
	}
	if !h.Push(2, 1) {
		t.Error("smaller key rejected")
	}
	if h.Indices[0] != 2 {
		t.Errorf("root index = %d, expected 2", h.Indices[0])
	}
}

func TestZeroCapacity(t *testing.T) {
	h := New(0)
	if h.Push(0, 1) {
		t.Error("push into zero-capacity heap accepted")
	}
	h.Sort()
}

func TestReset(t *testing.T) {
	h := New(2)
	h.Push(0, 1)
	h.Push(1, 2)
	h.Reset()
	if h.Size != 0 || h.Indices[0] != -1 {
		t.Errorf("reset left size %d, root %d", h.Size, h.Indices[0])
	}
}
