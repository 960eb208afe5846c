package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tanmay/physiq/internal/exam"
	"github.com/tanmay/physiq/internal/questiongen"
)

// FileSource reads a JSON question bank from disk.
type FileSource struct {
	path string
	log  zerolog.Logger
}

// NewFileSource creates a source backed by the bank file at path.
func NewFileSource(path string, log zerolog.Logger) *FileSource {
	return &FileSource{path: path, log: log}
}

// Questions loads the whole bank. Malformed records are skipped with a
// warning; the batch only fails when the file itself is unusable.
func (f *FileSource) Questions(_ context.Context, _ exam.Config) ([]exam.Question, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, &SourceUnavailableError{Source: "file", Err: err}
	}

	var records []questiongen.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &SourceUnavailableError{
			Source: "file",
			Err:    fmt.Errorf("parse %s: %w", f.path, err),
		}
	}

	questions := make([]exam.Question, 0, len(records))
	for i, rec := range records {
		if err := rec.Validate(); err != nil {
			f.log.Warn().
				Str("bank", f.path).
				Int("record", i).
				Err(err).
				Msg("skipping malformed bank record")
			continue
		}
		questions = append(questions, rec.ToQuestion(uuid.NewString()))
	}

	if len(questions) == 0 {
		return nil, &SourceUnavailableError{
			Source: "file",
			Err:    fmt.Errorf("no usable questions in %s", f.path),
		}
	}

	return questions, nil
}
