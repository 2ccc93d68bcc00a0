package gemini

import "google.golang.org/genai"

// examSchema returns the structured-output schema for a generated exam.
// It mirrors the wire shape of model.Exam minus the server-assigned id.
// Type-specific fields (options, sample_answer, guidelines) are optional
// at the schema level; the service validates them per question type.
func examSchema() *genai.Schema {
	questionTypeEnum := []string{"Multiple Choice", "True/False", "Short Answer", "Essay"}

	question := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"id": {
				Type:        genai.TypeInteger,
				Description: "1-based sequence number, contiguous across the exam",
			},
			"type": {
				Type: genai.TypeString,
				Enum: questionTypeEnum,
			},
			"difficulty": {
				Type: genai.TypeString,
				Enum: []string{"Easy", "Medium", "Hard"},
			},
			"question": {Type: genai.TypeString},
			"options": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "Answer choices; required for Multiple Choice questions",
			},
			"correct_answer": {Type: genai.TypeString},
			"explanation":    {Type: genai.TypeString},
			"sample_answer": {
				Type:        genai.TypeString,
				Description: "Required for Short Answer questions",
			},
			"guidelines": {
				Type:        genai.TypeString,
				Description: "Required for Essay questions",
			},
		},
		Required: []string{"id", "type", "difficulty", "question"},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"exam_title":                   {Type: genai.TypeString},
			"total_questions":              {Type: genai.TypeInteger},
			"difficulty":                   {Type: genai.TypeString},
			"estimated_completion_minutes": {Type: genai.TypeInteger},
			"question_types": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString, Enum: questionTypeEnum},
			},
			"questions": {
				Type:  genai.TypeArray,
				Items: question,
			},
		},
		Required: []string{
			"exam_title",
			"total_questions",
			"difficulty",
			"estimated_completion_minutes",
			"question_types",
			"questions",
		},
	}
}
