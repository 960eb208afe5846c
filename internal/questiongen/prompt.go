package questiongen

import (
	"fmt"
	"math/rand/v2"

	"github.com/tanmay/physiq/internal/exam"
)

// Prompt ingredients are sampled per question so repeated runs over the
// same diagram set produce varied questions.
var (
	subjectContexts = []string{
		"physics teacher's perspective",
		"engineering student's perspective",
		"physicist's analytical viewpoint",
		"academic researcher's perspective",
		"practical application standpoint",
	}

	questionStyles = []string{
		"conceptual understanding",
		"mathematical calculation",
		"practical application",
		"theoretical analysis",
		"comparative analysis",
	}

	analysisApproaches = []string{
		"carefully analyze the provided image",
		"examine the scientific content shown in the image",
		"study the educational material presented in the image",
		"investigate the principles illustrated in the image",
	}
)

const systemPrompt = "You are an expert physics question writer. " +
	"You write scientifically accurate multiple-choice questions about diagrams, " +
	"with exactly four answer options and a clear explanation of the correct answer."

// BuildPrompt composes the user prompt for one question. When rng is nil
// the first variant of each ingredient is used, giving stable output.
func BuildPrompt(rng *rand.Rand, imageFilename string, difficulty exam.Difficulty) string {
	subject := subjectContexts[0]
	style := questionStyles[0]
	approach := "analyze the provided image"
	if rng != nil {
		subject = subjectContexts[rng.IntN(len(subjectContexts))]
		style = questionStyles[rng.IntN(len(questionStyles))]
		approach = analysisApproaches[rng.IntN(len(analysisApproaches))]
	}

	return fmt.Sprintf(
		`From a %s, %s with focus on %s.
Generate exactly 1 multiple-choice question with '%s' difficulty level.

The question must have these properties:
- "question_text": the question itself.
- "image_path": the image file name, use %q.
- "option_text": exactly four possible answers.
- "correct_answer_index": the integer index (0-3) of the correct option.
- "difficulty_level": must be exactly '%s'.
- "explanation": why the correct answer is right, based on scientific principles.
- "topic": the main scientific topic or concept covered.
- "subtopic": the specific subtopic or area within the main topic.

Ensure the question is scientifically accurate and appropriately challenging for the '%s' difficulty level.
Make the question diverse and engaging while maintaining scientific rigor.`,
		subject, approach, style,
		difficulty, imageFilename, difficulty, difficulty,
	)
}
