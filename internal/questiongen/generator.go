package questiongen

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tanmay/physiq/internal/exam"
	"github.com/tanmay/physiq/internal/llm"
)

// Input describes one question to generate: a diagram plus the difficulty
// assigned to it by the run's distribution.
type Input struct {
	// Key is the object-store key of the diagram.
	Key string

	// Filename is the diagram's basename, referenced in the prompt.
	Filename string

	// ImageURL is the browsable URL stored on the generated question.
	ImageURL string

	// Image is the diagram's bytes and media type.
	Image llm.Image

	// Difficulty is the label the generated question must carry.
	Difficulty exam.Difficulty
}

// Generator produces one exam question per diagram.
type Generator interface {
	Generate(ctx context.Context, in Input) (*exam.Question, error)
}

// LLMGenerator generates questions by sending the diagram to an LLM with
// a schema-constrained prompt.
type LLMGenerator struct {
	provider llm.Provider
	rng      *rand.Rand
	log      zerolog.Logger
}

// NewLLMGenerator creates a generator. A nil rng disables prompt
// randomization, giving stable prompts for a given input.
func NewLLMGenerator(provider llm.Provider, rng *rand.Rand, log zerolog.Logger) *LLMGenerator {
	return &LLMGenerator{
		provider: provider,
		rng:      rng,
		log:      log,
	}
}

const generateMaxTokens = 2048

func (g *LLMGenerator) Generate(ctx context.Context, in Input) (*exam.Question, error) {
	ctx = llm.WithPurpose(ctx, "question-generation")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: BuildPrompt(g.rng, in.Filename, in.Difficulty)},
		},
		Images:      []llm.Image{in.Image},
		Schema:      QuestionSchema(),
		MaxTokens:   generateMaxTokens,
		Temperature: 0.7,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate question for %s: %w", in.Filename, err)
	}

	var rec Record
	if err := json.Unmarshal(resp.Content, &rec); err != nil {
		return nil, &llm.ErrInvalidResponse{
			Content: resp.Content,
			Err:     fmt.Errorf("parse question record: %w", err),
		}
	}

	if err := rec.Validate(); err != nil {
		return nil, &llm.ErrInvalidResponse{
			Content: resp.Content,
			Err:     fmt.Errorf("question record for %s: %w", in.Filename, err),
		}
	}

	// The model occasionally drifts from the assigned difficulty.
	// The assignment wins so the run matches its distribution.
	if exam.Difficulty(rec.DifficultyLevel) != in.Difficulty {
		g.log.Warn().
			Str("image", in.Filename).
			Str("generated", rec.DifficultyLevel).
			Str("assigned", string(in.Difficulty)).
			Msg("difficulty mismatch, forcing assigned")
		rec.DifficultyLevel = string(in.Difficulty)
	}

	rec.ImagePath = in.ImageURL
	rec.ImageFilename = in.Filename

	q := rec.ToQuestion(uuid.NewString())
	q.ImageKey = in.Key
	return &q, nil
}
