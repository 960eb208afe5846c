package questiongen

import "github.com/tanmay/physiq/internal/llm"

// QuestionSchema returns the JSON Schema a generated question must
// conform to. The key names match the question bank wire format.
func QuestionSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "physics-question",
		Description: "A single multiple-choice physics question about a diagram",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question_text": map[string]any{
					"type":        "string",
					"description": "The question prompt",
				},
				"image_path": map[string]any{
					"type":        "string",
					"description": "The image file name the question refers to",
				},
				"option_text": map[string]any{
					"type":        "array",
					"description": "Exactly four answer options",
					"items":       map[string]any{"type": "string"},
				},
				"correct_answer_index": map[string]any{
					"type":        "integer",
					"description": "0-based index of the correct option",
				},
				"difficulty_level": map[string]any{
					"type": "string",
					"enum": []any{"Easy", "Medium", "Hard"},
				},
				"explanation": map[string]any{
					"type":        "string",
					"description": "Why the correct answer is right, based on scientific principles",
				},
				"topic": map[string]any{
					"type":        "string",
					"description": "Main scientific topic covered",
				},
				"subtopic": map[string]any{
					"type":        "string",
					"description": "Specific area within the main topic",
				},
			},
			"required": []any{
				"question_text", "image_path", "option_text",
				"correct_answer_index", "difficulty_level", "explanation",
			},
		},
	}
}
