package questiongen

import (
	"math/rand/v2"

	"github.com/tanmay/physiq/internal/exam"
)

// Distribution maps each difficulty to its share of the generated
// questions. Shares sum to 1.0.
type Distribution map[exam.Difficulty]float64

// GlobalDistributions are the candidate difficulty mixes for a generation
// run. One is picked per run when randomization is enabled.
var GlobalDistributions = []Distribution{
	{exam.DifficultyEasy: 0.5, exam.DifficultyMedium: 0.3, exam.DifficultyHard: 0.2},
	{exam.DifficultyEasy: 0.4, exam.DifficultyMedium: 0.4, exam.DifficultyHard: 0.2},
	{exam.DifficultyEasy: 0.3, exam.DifficultyMedium: 0.4, exam.DifficultyHard: 0.3},
	{exam.DifficultyEasy: 0.6, exam.DifficultyMedium: 0.25, exam.DifficultyHard: 0.15},
	{exam.DifficultyEasy: 0.35, exam.DifficultyMedium: 0.35, exam.DifficultyHard: 0.3},
}

// PickDistribution selects the distribution for a run. With a nil rng the
// first distribution is used, giving stable output.
func PickDistribution(rng *rand.Rand) Distribution {
	if rng == nil {
		return GlobalDistributions[0]
	}
	return GlobalDistributions[rng.IntN(len(GlobalDistributions))]
}

// AssignDifficulties produces one difficulty label per image so the whole
// run matches the distribution. Every difficulty gets at least one slot,
// overshoot is trimmed from the tail and undershoot is padded with the
// most-requested difficulty. The result is shuffled when rng is non-nil.
func AssignDifficulties(imageCount int, dist Distribution, rng *rand.Rand) []exam.Difficulty {
	if imageCount <= 0 {
		return nil
	}

	difficulties := make([]exam.Difficulty, 0, imageCount)
	for _, d := range exam.Difficulties {
		ratio, ok := dist[d]
		if !ok {
			continue
		}
		count := int(float64(imageCount)*ratio + 0.5)
		if count < 1 {
			count = 1
		}
		for range count {
			difficulties = append(difficulties, d)
		}
	}

	for len(difficulties) > imageCount {
		difficulties = difficulties[:len(difficulties)-1]
	}
	for len(difficulties) < imageCount {
		difficulties = append(difficulties, mostRequested(dist))
	}

	if rng != nil {
		rng.Shuffle(len(difficulties), func(i, j int) {
			difficulties[i], difficulties[j] = difficulties[j], difficulties[i]
		})
	}

	return difficulties
}

// mostRequested returns the difficulty with the largest share, breaking
// ties in display order.
func mostRequested(dist Distribution) exam.Difficulty {
	best := exam.Difficulties[0]
	bestRatio := -1.0
	for _, d := range exam.Difficulties {
		if ratio, ok := dist[d]; ok && ratio > bestRatio {
			best = d
			bestRatio = ratio
		}
	}
	return best
}
