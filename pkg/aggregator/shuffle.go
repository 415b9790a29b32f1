package aggregator

import (
	"hash/fnv"
	"math/rand"
	"time"

	"podborka/pkg/domain"
)

// dailySeed builds the deterministic seed string for the calendar date in the
// fixed UTC+3 reference zone plus a topic salt.
func dailySeed(now time.Time, salt string) string {
	return now.In(domain.MSK).Format("2006-01-02") + "-" + salt
}

// DailyShuffle permutes items in place with Fisher-Yates keyed by a PRNG
// seeded from the current date and the topic salt. The order is stable for
// all calls within one calendar day, changes the next day, and different
// salts produce independent permutations.
func DailyShuffle(items []domain.Item, salt string, now time.Time) {
	h := fnv.New64a()
	_, _ = h.Write([]byte(dailySeed(now, salt)))
	rnd := rand.New(rand.NewSource(int64(h.Sum64()))) //nolint:gosec // deterministic ordering, not security
	rnd.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
}
