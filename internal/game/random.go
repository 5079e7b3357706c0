package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"time"
)

func seededRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional: a seed replays the same deal.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "deal"), seedWord(seed, "hint")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// Shuffle permutes items in place (Fisher-Yates): each position i, walking
// down, swaps with a uniformly chosen position in [0, i].
func Shuffle[T any](rng *rand.Rand, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
