package service

import (
	"math/rand"
	"time"
)

// Picker is the randomness source used during plan assembly. Injecting it
// lets tests pin exact food and exercise selections; production plans are not
// reproducible across calls.
type Picker interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewPicker returns a time-seeded production randomness source
func NewPicker() Picker {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
