package model

import "fmt"

// Difficulty enumerates the exam difficulty selectors. Mixed is accepted
// on requests only; individual questions always carry a concrete level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
	DifficultyMixed  Difficulty = "Mixed"
)

// Exam is a generated exam. ID is assigned server-side after a successful
// generation; the model never produces it.
type Exam struct {
	ID                         string         `json:"id,omitempty"`
	ExamTitle                  string         `json:"exam_title"`
	TotalQuestions             int            `json:"total_questions"`
	Difficulty                 Difficulty     `json:"difficulty"`
	EstimatedCompletionMinutes int            `json:"estimated_completion_minutes"`
	QuestionTypes              []QuestionType `json:"question_types"`
	Questions                  []Question     `json:"questions"`
}

// GenerateExamRequest is the payload for generating a new exam. It binds
// from both JSON bodies and multipart form fields; the optional guide file
// is read separately from the multipart payload.
type GenerateExamRequest struct {
	NumQuestions   int      `json:"num_questions" form:"num_questions" binding:"required,min=1,max=100"`
	Difficulty     string   `json:"difficulty" form:"difficulty" binding:"required,difficulty"`
	QuestionTypes  []string `json:"question_types" form:"question_types" binding:"required,min=1,dive,questiontype"`
	ExamGuide      string   `json:"exam_guide" form:"exam_guide" binding:"omitempty,max=100000"`
	AdditionalInfo string   `json:"additional_info" form:"additional_info" binding:"omitempty,max=10000"`
}

// DownloadExamRequest is the payload for downloading an exam. Exactly one
// of ExamID (a reference returned by the generate endpoint) or Exam (the
// full content resupplied by the caller) must be set.
type DownloadExamRequest struct {
	ExamID string `json:"exam_id" binding:"omitempty,uuid"`
	Exam   *Exam  `json:"exam" binding:"omitempty"`
}

// Validate checks the exam-level schema rules: a title, a consistent
// question count, contiguous 1-based question ids, every question type
// drawn from the declared set, and per-question validity.
func (e *Exam) Validate() error {
	if e.ExamTitle == "" {
		return fmt.Errorf("exam title is empty")
	}
	if len(e.Questions) == 0 {
		return fmt.Errorf("exam has no questions")
	}
	if e.TotalQuestions != len(e.Questions) {
		return fmt.Errorf("total_questions is %d but exam has %d questions", e.TotalQuestions, len(e.Questions))
	}
	if e.EstimatedCompletionMinutes <= 0 {
		return fmt.Errorf("estimated completion minutes must be positive")
	}
	declared := make(map[QuestionType]bool, len(e.QuestionTypes))
	for _, t := range e.QuestionTypes {
		if !ValidQuestionType(string(t)) {
			return fmt.Errorf("unknown question type %q in question_types", t)
		}
		declared[t] = true
	}
	for i := range e.Questions {
		q := &e.Questions[i]
		if q.ID != i+1 {
			return fmt.Errorf("question %d has id %d, want %d", i+1, q.ID, i+1)
		}
		if !declared[q.Type] {
			return fmt.Errorf("question %d has type %q outside the declared set", q.ID, q.Type)
		}
		if err := q.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ContainsOnlyTypes reports whether every question's type is within the
// allowed set.
func (e *Exam) ContainsOnlyTypes(allowed []QuestionType) bool {
	set := make(map[QuestionType]bool, len(allowed))
	for _, t := range allowed {
		set[t] = true
	}
	for _, q := range e.Questions {
		if !set[q.Type] {
			return false
		}
	}
	return true
}

func questionFieldError(id int, msg string) error {
	return fmt.Errorf("question %d: %s", id, msg)
}
