package deck

import (
	"math/rand"
	"time"
)

// symbolPool is the ordered alphabet pair values are drawn from.
const symbolPool = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	"!@#$%^&*"

// PoolSize is the number of distinct values available before the pool
// wraps around.
const PoolSize = len(symbolPool)

// New builds a shuffled deck of pairCount pairs, all face down.
// Values are taken from the pool in order; a pairCount beyond PoolSize
// wraps around, so oversized decks contain more than two of some values.
// The supplied generator drives the shuffle; nil falls back to a
// time-seeded one.
func New(pairCount int, r *rand.Rand) []Card {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	pool := []rune(symbolPool)

	cards := make([]Card, 0, 2*pairCount)
	for i := 0; i < pairCount; i++ {
		v := pool[i%len(pool)]
		cards = append(cards, NewCard(v), NewCard(v))
	}

	// Fisher-Yates
	for i := len(cards) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}

	return cards
}
