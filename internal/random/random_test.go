package random

import (
	"slices"
	"testing"
)

func TestShuffle_IsPermutation(t *testing.T) {
	r := New(42)
	in := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	orig := slices.Clone(in)

	out := Shuffle(r, in)

	if !slices.Equal(in, orig) {
		t.Fatalf("input mutated: %v", in)
	}
	if len(out) != len(in) {
		t.Fatalf("len = %d, want %d", len(out), len(in))
	}
	sorted := slices.Clone(out)
	slices.Sort(sorted)
	if !slices.Equal(sorted, orig) {
		t.Errorf("shuffle is not a permutation: %v", out)
	}
}

func TestShuffle_Deterministic(t *testing.T) {
	in := []string{"a", "b", "c", "d", "e"}
	a := Shuffle(New(7), in)
	b := Shuffle(New(7), in)
	if !slices.Equal(a, b) {
		t.Errorf("same seed gave %v and %v", a, b)
	}
}

func TestShuffle_Empty(t *testing.T) {
	if got := Shuffle[int](nil, nil); len(got) != 0 {
		t.Errorf("Shuffle(nil) = %v", got)
	}
}

func TestPick(t *testing.T) {
	if _, ok := Pick[int](New(1), nil); ok {
		t.Error("Pick on empty slice reported ok")
	}
	items := []int{3, 5, 8}
	for i := 0; i < 50; i++ {
		v, ok := Pick(New(uint64(i)), items)
		if !ok || !slices.Contains(items, v) {
			t.Fatalf("Pick = %d, %v", v, ok)
		}
	}
}

func TestPickN(t *testing.T) {
	items := []int{1, 2, 3, 4}
	got := PickN(New(3), items, 2)
	if len(got) != 2 || got[0] == got[1] {
		t.Errorf("PickN(2) = %v", got)
	}
	if got := PickN(New(3), items, 10); len(got) != 4 {
		t.Errorf("PickN(10) len = %d, want 4", len(got))
	}
	if got := PickN(New(3), items, 0); got != nil {
		t.Errorf("PickN(0) = %v, want nil", got)
	}
}

func TestIntBetween(t *testing.T) {
	r := New(9)
	for i := 0; i < 200; i++ {
		v := IntBetween(r, 5, 2)
		if v < 2 || v > 5 {
			t.Fatalf("IntBetween = %d out of [2,5]", v)
		}
	}
}
