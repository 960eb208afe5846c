package questiongen

import (
	"math/rand/v2"
	"testing"

	"github.com/tanmay/physiq/internal/exam"
)

func countDifficulties(labels []exam.Difficulty) map[exam.Difficulty]int {
	counts := make(map[exam.Difficulty]int)
	for _, d := range labels {
		counts[d]++
	}
	return counts
}

func TestAssignDifficulties_ExactCount(t *testing.T) {
	for _, n := range []int{1, 3, 7, 10, 50} {
		labels := AssignDifficulties(n, GlobalDistributions[0], nil)
		if len(labels) != n {
			t.Errorf("imageCount=%d: got %d labels", n, len(labels))
		}
	}
}

func TestAssignDifficulties_MatchesDistribution(t *testing.T) {
	// 50/30/20 over 10 images: 5 easy, 3 medium, 2 hard.
	dist := Distribution{
		exam.DifficultyEasy:   0.5,
		exam.DifficultyMedium: 0.3,
		exam.DifficultyHard:   0.2,
	}
	counts := countDifficulties(AssignDifficulties(10, dist, nil))
	if counts[exam.DifficultyEasy] != 5 || counts[exam.DifficultyMedium] != 3 || counts[exam.DifficultyHard] != 2 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}

func TestAssignDifficulties_AtLeastOneEach(t *testing.T) {
	// With 3 images and a skewed distribution every difficulty still
	// appears once.
	dist := Distribution{
		exam.DifficultyEasy:   0.9,
		exam.DifficultyMedium: 0.05,
		exam.DifficultyHard:   0.05,
	}
	counts := countDifficulties(AssignDifficulties(3, dist, nil))
	for _, d := range exam.Difficulties {
		if counts[d] < 1 {
			t.Errorf("difficulty %s missing: %v", d, counts)
		}
	}
}

func TestAssignDifficulties_ShuffleKeepsCounts(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	dist := GlobalDistributions[0]

	plain := countDifficulties(AssignDifficulties(20, dist, nil))
	shuffled := countDifficulties(AssignDifficulties(20, dist, rng))

	for _, d := range exam.Difficulties {
		if plain[d] != shuffled[d] {
			t.Errorf("difficulty %s: plain=%d shuffled=%d", d, plain[d], shuffled[d])
		}
	}
}

func TestAssignDifficulties_ZeroImages(t *testing.T) {
	if labels := AssignDifficulties(0, GlobalDistributions[0], nil); labels != nil {
		t.Fatalf("expected nil, got %v", labels)
	}
}

func TestPickDistribution_NilRNGIsStable(t *testing.T) {
	d1 := PickDistribution(nil)
	d2 := PickDistribution(nil)
	for k, v := range d1 {
		if d2[k] != v {
			t.Fatalf("distributions differ at %s", k)
		}
	}
}

func TestMostRequested_TieBreaksInDisplayOrder(t *testing.T) {
	dist := Distribution{
		exam.DifficultyEasy:   0.4,
		exam.DifficultyMedium: 0.4,
		exam.DifficultyHard:   0.2,
	}
	if got := mostRequested(dist); got != exam.DifficultyEasy {
		t.Fatalf("expected Easy on tie, got %s", got)
	}
}
