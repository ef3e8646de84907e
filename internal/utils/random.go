package utils

import "math/rand/v2"

// RandFunc returns a uniformly distributed int in [0, n).
type RandFunc func(n int) int

// DefaultRand is the package-level math/rand/v2 source.
var DefaultRand RandFunc = rand.IntN

// SeededRand returns a deterministic RandFunc, for tests and reproducible runs.
func SeededRand(seed uint64) RandFunc {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return r.IntN
}

// PickOne returns a random element of items, or "" when items is empty.
// An out-of-range index from rnd is clamped.
func PickOne(rnd RandFunc, items []string) string {
	if len(items) == 0 {
		return ""
	}
	if rnd == nil {
		rnd = DefaultRand
	}
	i := rnd(len(items))
	switch {
	case i < 0:
		i = 0
	case i >= len(items):
		i = len(items) - 1
	}
	return items[i]
}
