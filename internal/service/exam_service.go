package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/examforge/examgen-backend/internal/llm"
	"github.com/examforge/examgen-backend/internal/model"
	"github.com/examforge/examgen-backend/internal/store"
)

// ErrUnparsableResponse marks an AI response that does not satisfy the
// exam schema. The original response is never partially returned.
var ErrUnparsableResponse = errors.New("unparsable AI response")

// ExamService generates exams through an LLM provider and keeps them
// available for download by reference.
type ExamService struct {
	provider llm.Provider
	examples *store.ExamStore
	log      zerolog.Logger
}

// NewExamService creates a new ExamService.
func NewExamService(provider llm.Provider, examples *store.ExamStore, log zerolog.Logger) *ExamService {
	return &ExamService{
		provider: provider,
		examples: examples,
		log:      log,
	}
}

// Generate builds the prompt, calls the provider and validates the parsed
// exam against the schema invariants. guide is the exam-guide text (from
// the request body or an extracted upload). On success the exam carries a
// fresh id under which it stays downloadable until the store TTL expires.
func (s *ExamService) Generate(ctx context.Context, req *model.GenerateExamRequest, guide string) (*model.Exam, error) {
	prompt := buildPrompt(req, guide)

	raw, err := s.provider.GenerateExam(ctx, prompt)
	if err != nil {
		s.log.Error().Err(err).Str("provider", s.provider.Name()).Msg("Exam generation call failed")
		return nil, err
	}

	var exam model.Exam
	if err := json.Unmarshal([]byte(raw), &exam); err != nil {
		s.log.Warn().Err(err).Msg("AI response is not valid JSON")
		return nil, fmt.Errorf("%w: %v", ErrUnparsableResponse, err)
	}

	// The model must not assign ids; the server does after validation.
	exam.ID = ""

	if err := s.validateAgainstRequest(&exam, req); err != nil {
		s.log.Warn().Err(err).Msg("AI response violates the exam schema")
		return nil, fmt.Errorf("%w: %v", ErrUnparsableResponse, err)
	}

	exam.ID = s.examples.Put(exam)

	s.log.Info().
		Str("exam_id", exam.ID).
		Int("questions", exam.TotalQuestions).
		Str("difficulty", string(exam.Difficulty)).
		Msg("Exam generated")

	return &exam, nil
}

// GetExam resolves a previously generated exam by its id. The second
// return is false for unknown or expired references.
func (s *ExamService) GetExam(id string) (model.Exam, bool) {
	return s.examples.Get(id)
}

// validateAgainstRequest enforces the generation contract: schema validity,
// the requested question count and only the requested question types.
func (s *ExamService) validateAgainstRequest(exam *model.Exam, req *model.GenerateExamRequest) error {
	if err := exam.Validate(); err != nil {
		return err
	}
	if exam.TotalQuestions != req.NumQuestions {
		return fmt.Errorf("requested %d questions, got %d", req.NumQuestions, exam.TotalQuestions)
	}

	requested := make([]model.QuestionType, 0, len(req.QuestionTypes))
	for _, t := range req.QuestionTypes {
		requested = append(requested, model.QuestionType(t))
	}
	if !exam.ContainsOnlyTypes(requested) {
		return fmt.Errorf("exam contains question types outside the requested set")
	}
	return nil
}

// buildPrompt embeds the request parameters in a natural-language prompt.
// The structured-output schema attached by the provider constrains the
// shape of the answer; the prompt carries the content requirements.
func buildPrompt(req *model.GenerateExamRequest, guide string) string {
	var b strings.Builder

	b.WriteString("Given the following exam guide content, generate mock exam questions with answers.\n")
	fmt.Fprintf(&b, "- total number of questions: %d\n", req.NumQuestions)
	fmt.Fprintf(&b, "- difficulty level: %s\n", req.Difficulty)
	fmt.Fprintf(&b, "- question types: %s\n", strings.Join(req.QuestionTypes, ", "))
	b.WriteString("- number the questions sequentially starting at 1\n")
	b.WriteString("- for multiple choice questions the correct answer must be copied verbatim from the options\n\n")
	fmt.Fprintf(&b, "- exam guide: %s\n", guide)
	if req.AdditionalInfo != "" {
		fmt.Fprintf(&b, "- additional information: %s\n", req.AdditionalInfo)
	}

	return b.String()
}
