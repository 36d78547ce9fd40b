// Package random provides the shuffle and pick helpers used to build
// question rounds and daily missions.
//
// Every helper takes an explicit *rand.Rand so callers can seed it for
// reproducible rounds. A nil generator falls back to the global source.
package random

import "math/rand/v2"

// New returns a generator seeded with seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func intN(r *rand.Rand, n int) int {
	if r == nil {
		return rand.IntN(n)
	}
	return r.IntN(n)
}

// Shuffle returns a Fisher-Yates shuffled copy of items.
// The input slice is left untouched.
func Shuffle[T any](r *rand.Rand, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := intN(r, i+1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Pick returns one element chosen uniformly at random.
// ok is false when items is empty.
func Pick[T any](r *rand.Rand, items []T) (v T, ok bool) {
	if len(items) == 0 {
		return v, false
	}
	return items[intN(r, len(items))], true
}

// PickN returns up to n distinct elements in random order.
func PickN[T any](r *rand.Rand, items []T, n int) []T {
	if n <= 0 {
		return nil
	}
	shuffled := Shuffle(r, items)
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

// IntBetween returns a random integer in [lo, hi]. Swapped bounds are accepted.
func IntBetween(r *rand.Rand, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + intN(r, hi-lo+1)
}
