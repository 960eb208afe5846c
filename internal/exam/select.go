package exam

import (
	"fmt"
	"math/rand/v2"
)

// SelectQuestions draws a question set from pool satisfying cfg's
// per-difficulty counts: a random sample within each difficulty, shuffled
// into a single sequence. It fails with a ConfigurationError when any
// difficulty bucket in the pool is too small.
func SelectQuestions(pool []Question, cfg Config, rng *rand.Rand) ([]Question, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	byDifficulty := make(map[Difficulty][]Question)
	for _, q := range pool {
		byDifficulty[q.Difficulty] = append(byDifficulty[q.Difficulty], q)
	}

	counts := cfg.Counts()
	selected := make([]Question, 0, cfg.NumQuestions)

	// Iterate in display order so errors are deterministic.
	for _, d := range Difficulties {
		want := counts[d]
		if want == 0 {
			continue
		}
		avail := byDifficulty[d]
		if len(avail) < want {
			return nil, &ConfigurationError{
				Reason: fmt.Sprintf("pool has %d %s questions, %d requested", len(avail), d, want),
			}
		}
		selected = append(selected, sample(avail, want, rng)...)
	}

	rng.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})
	return selected, nil
}

// sample returns n distinct elements of qs in random order.
func sample(qs []Question, n int, rng *rand.Rand) []Question {
	idx := rng.Perm(len(qs))[:n]
	out := make([]Question, n)
	for i, j := range idx {
		out[i] = qs[j]
	}
	return out
}
