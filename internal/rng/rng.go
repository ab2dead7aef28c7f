// Package rng provides the random sources used to shuffle the shoe
package rng

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// ForSeed returns a reproducible generator for a non-zero seed
// A zero seed returns the crypto/rand backed generator used for real money
func ForSeed(seed int64) Generator {
	if seed == 0 {
		return Crypto{}
	}

	return NewSeeded(seed)
}
