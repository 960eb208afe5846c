package source

import (
	"context"
	"fmt"
	"math/rand/v2"
	"path"

	"github.com/rs/zerolog"

	"github.com/tanmay/physiq/internal/exam"
	"github.com/tanmay/physiq/internal/llm"
	"github.com/tanmay/physiq/internal/objectstore"
	"github.com/tanmay/physiq/internal/questiongen"
)

// RemoteSource generates questions live: one per diagram image, at the
// difficulty the exam config asks for.
type RemoteSource struct {
	store  objectstore.Store
	gen    questiongen.Generator
	prefix string
	rng    *rand.Rand
	log    zerolog.Logger
}

// NewRemoteSource creates a source that draws diagrams from store under
// prefix and generates questions with gen.
func NewRemoteSource(store objectstore.Store, gen questiongen.Generator, prefix string, rng *rand.Rand, log zerolog.Logger) *RemoteSource {
	return &RemoteSource{
		store:  store,
		gen:    gen,
		prefix: prefix,
		rng:    rng,
		log:    log,
	}
}

// Questions lists diagrams, assigns each requested slot a difficulty per
// the config and generates one question per slot. A failed image is
// skipped and the next unused image takes its slot, so a single bad
// diagram never aborts the batch.
func (r *RemoteSource) Questions(ctx context.Context, cfg exam.Config) ([]exam.Question, error) {
	keys, err := r.store.ListImages(ctx, r.prefix)
	if err != nil {
		return nil, &SourceUnavailableError{Source: "remote", Err: err}
	}
	if len(keys) == 0 {
		return nil, &SourceUnavailableError{
			Source: "remote",
			Err:    fmt.Errorf("no images under prefix %q", r.prefix),
		}
	}

	if r.rng != nil {
		r.rng.Shuffle(len(keys), func(i, j int) {
			keys[i], keys[j] = keys[j], keys[i]
		})
	}

	counts := cfg.Counts()
	var slots []exam.Difficulty
	for _, d := range exam.Difficulties {
		for range counts[d] {
			slots = append(slots, d)
		}
	}

	questions := make([]exam.Question, 0, len(slots))
	next := 0
	for _, difficulty := range slots {
		q := r.generateFromNextImage(ctx, keys, &next, difficulty)
		if q != nil {
			questions = append(questions, *q)
		}
	}

	if len(questions) == 0 {
		return nil, &SourceUnavailableError{
			Source: "remote",
			Err:    fmt.Errorf("generation failed for all %d images", len(keys)),
		}
	}

	return questions, nil
}

// generateFromNextImage tries unused images in order until one yields a
// question at the requested difficulty. Returns nil when images run out.
func (r *RemoteSource) generateFromNextImage(ctx context.Context, keys []string, next *int, difficulty exam.Difficulty) *exam.Question {
	for *next < len(keys) {
		key := keys[*next]
		*next++

		data, mimeType, err := r.store.Get(ctx, key)
		if err != nil {
			r.log.Warn().Str("key", key).Err(err).Msg("skipping undownloadable image")
			continue
		}

		q, err := r.gen.Generate(ctx, questiongen.Input{
			Key:        key,
			Filename:   path.Base(key),
			ImageURL:   r.store.URL(key),
			Image:      llm.Image{MIMEType: mimeType, Data: data},
			Difficulty: difficulty,
		})
		if err != nil {
			r.log.Warn().Str("key", key).Err(err).Msg("skipping failed generation")
			continue
		}
		return q
	}
	return nil
}
