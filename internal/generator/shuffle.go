package generator

import "math/rand"

// shuffle permutes s in place with a Fisher-Yates pass, uniform over all
// permutations for a uniform rng.
func shuffle[T any](rng *rand.Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// digits returns 1..size in ascending order; callers shuffle as needed.
func digits(size int) []uint8 {
	out := make([]uint8, size)
	for i := range out {
		out[i] = uint8(i + 1)
	}
	return out
}
