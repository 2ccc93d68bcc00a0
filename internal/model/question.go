package model

// QuestionType enumerates the supported question formats.
type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "Multiple Choice"
	QuestionTypeTrueFalse      QuestionType = "True/False"
	QuestionTypeShortAnswer    QuestionType = "Short Answer"
	QuestionTypeEssay          QuestionType = "Essay"
)

// AllQuestionTypes lists every supported question type tag.
var AllQuestionTypes = []QuestionType{
	QuestionTypeMultipleChoice,
	QuestionTypeTrueFalse,
	QuestionTypeShortAnswer,
	QuestionTypeEssay,
}

// ValidQuestionType reports whether s is a known question type tag.
func ValidQuestionType(s string) bool {
	for _, t := range AllQuestionTypes {
		if s == string(t) {
			return true
		}
	}
	return false
}

// Question represents a single exam item. Options/CorrectAnswer/Explanation
// are populated for choice-style questions, SampleAnswer for short-answer
// questions and Guidelines for essays.
type Question struct {
	ID            int          `json:"id"`
	Type          QuestionType `json:"type"`
	Difficulty    Difficulty   `json:"difficulty"`
	Question      string       `json:"question"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correct_answer,omitempty"`
	Explanation   string       `json:"explanation,omitempty"`
	SampleAnswer  string       `json:"sample_answer,omitempty"`
	Guidelines    string       `json:"guidelines,omitempty"`
}

// Validate checks the per-question schema rules: a known type, a concrete
// difficulty, non-empty prompt text, and the fields its type requires.
func (q *Question) Validate() error {
	if q.Question == "" {
		return questionFieldError(q.ID, "question text is empty")
	}
	switch q.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return questionFieldError(q.ID, "difficulty must be Easy, Medium or Hard")
	}

	switch q.Type {
	case QuestionTypeMultipleChoice:
		if len(q.Options) < 2 {
			return questionFieldError(q.ID, "multiple choice question needs at least two options")
		}
		if !contains(q.Options, q.CorrectAnswer) {
			return questionFieldError(q.ID, "correct answer is not one of the options")
		}
	case QuestionTypeTrueFalse:
		if q.CorrectAnswer != "True" && q.CorrectAnswer != "False" {
			return questionFieldError(q.ID, "true/false answer must be True or False")
		}
		if len(q.Options) > 0 && !contains(q.Options, q.CorrectAnswer) {
			return questionFieldError(q.ID, "correct answer is not one of the options")
		}
	case QuestionTypeShortAnswer:
		if q.SampleAnswer == "" {
			return questionFieldError(q.ID, "short answer question needs a sample answer")
		}
	case QuestionTypeEssay:
		if q.Guidelines == "" {
			return questionFieldError(q.ID, "essay question needs guidelines")
		}
	default:
		return questionFieldError(q.ID, "unknown question type")
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
