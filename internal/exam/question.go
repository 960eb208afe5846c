package exam

// Difficulty is the difficulty label attached to each question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties lists all labels in display order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Valid reports whether d is one of the known difficulty labels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Question is a single multiple-choice exam question. Immutable once loaded.
type Question struct {
	// ID uniquely identifies the question within a bank.
	ID string

	// Text is the question prompt shown to the candidate.
	Text string

	// ImageKey is the object-store key of the diagram this question is about.
	// Empty if the question has no image.
	ImageKey string

	// ImageURL is a browsable URL for the diagram, derived from ImageKey.
	ImageURL string

	// ImageFilename is the diagram's basename, shown as a caption.
	ImageFilename string

	// Options holds exactly four answer options.
	Options []string

	// CorrectIndex is the 0-based index of the correct option.
	CorrectIndex int

	Difficulty Difficulty

	// Explanation is the worked reasoning shown on the review screen.
	Explanation string

	// Topic and Subtopic classify the question. Informational only.
	Topic    string
	Subtopic string
}

// NumOptions is the number of answer options every question carries.
const NumOptions = 4
