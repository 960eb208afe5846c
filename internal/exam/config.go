package exam

import (
	"fmt"
	"time"
)

// Config is the exam configuration captured on the welcome screen.
// Immutable for the duration of a session.
type Config struct {
	// NumQuestions is the total number of questions requested.
	NumQuestions int

	// Distribution maps each difficulty to its requested share in percent.
	// The values must sum to exactly 100.
	Distribution map[Difficulty]int

	// TimeLimit is the optional exam duration. Zero means no limit.
	TimeLimit time.Duration

	// CandidateName is shown on the results screen. Optional.
	CandidateName string
}

// DefaultConfig mirrors the historical defaults: 10 questions, 30 minutes,
// 50/30/20 easy/medium/hard.
func DefaultConfig() Config {
	return Config{
		NumQuestions: 10,
		Distribution: map[Difficulty]int{
			DifficultyEasy:   50,
			DifficultyMedium: 30,
			DifficultyHard:   20,
		},
		TimeLimit: 30 * time.Minute,
	}
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	if c.NumQuestions <= 0 {
		return &ConfigurationError{Reason: fmt.Sprintf("question count must be positive, got %d", c.NumQuestions)}
	}
	total := 0
	for d, pct := range c.Distribution {
		if !d.Valid() {
			return &ConfigurationError{Reason: fmt.Sprintf("unknown difficulty %q", d)}
		}
		if pct < 0 {
			return &ConfigurationError{Reason: fmt.Sprintf("negative share for %s", d)}
		}
		total += pct
	}
	if total != 100 {
		return &ConfigurationError{Reason: fmt.Sprintf("difficulty shares must sum to 100, got %d", total)}
	}
	if c.TimeLimit < 0 {
		return &ConfigurationError{Reason: "time limit must not be negative"}
	}
	return nil
}

// Counts converts the percent distribution into absolute per-difficulty
// counts summing to exactly NumQuestions. Each count is round(n*pct/100);
// any remainder is absorbed by the most-requested difficulty.
func (c Config) Counts() map[Difficulty]int {
	counts := make(map[Difficulty]int, len(c.Distribution))
	total := 0
	for d, pct := range c.Distribution {
		n := (c.NumQuestions*pct + 50) / 100
		counts[d] = n
		total += n
	}

	if total != c.NumQuestions {
		counts[c.mostRequested()] += c.NumQuestions - total
	}
	return counts
}

// mostRequested returns the difficulty with the largest percent share.
// Ties break in display order so the result is deterministic.
func (c Config) mostRequested() Difficulty {
	best := DifficultyEasy
	bestPct := -1
	for _, d := range Difficulties {
		if pct, ok := c.Distribution[d]; ok && pct > bestPct {
			best = d
			bestPct = pct
		}
	}
	return best
}
