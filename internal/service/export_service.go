package service

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/examforge/examgen-backend/internal/model"
)

// FileType enumerates the supported download formats.
type FileType string

const (
	FileTypeTxt FileType = "txt"
	FileTypeDoc FileType = "doc"
	FileTypePDF FileType = "pdf"
)

// ErrInvalidFileType is returned for an unknown download format.
var ErrInvalidFileType = errors.New("invalid file type")

// ParseFileType resolves the file_type query value; empty means txt.
func ParseFileType(s string) (FileType, error) {
	switch FileType(s) {
	case "":
		return FileTypeTxt, nil
	case FileTypeTxt, FileTypeDoc, FileTypePDF:
		return FileType(s), nil
	default:
		return "", fmt.Errorf("%w: %q (supported: txt, doc, pdf)", ErrInvalidFileType, s)
	}
}

// ExportFile is a rendered exam ready to stream to the caller.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders exams into downloadable files.
type ExportService struct{}

// NewExportService creates a new ExportService.
func NewExportService() *ExportService {
	return &ExportService{}
}

// Export serializes the exam into the requested format. The exam must
// already be schema-valid.
func (s *ExportService) Export(exam *model.Exam, ft FileType) (*ExportFile, error) {
	var (
		data []byte
		err  error
	)

	switch ft {
	case FileTypeTxt, FileTypeDoc:
		data = []byte(renderText(exam))
	case FileTypePDF:
		data, err = renderPDF(exam)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFileType, ft)
	}
	if err != nil {
		return nil, err
	}

	return &ExportFile{
		Filename:    exportFilename(exam.ExamTitle, ft),
		ContentType: contentTypes[ft],
		Data:        data,
	}, nil
}

var contentTypes = map[FileType]string{
	FileTypeTxt: "text/plain",
	FileTypeDoc: "application/msword",
	FileTypePDF: "application/pdf",
}

// exportFilename derives a header-safe attachment name from the title.
func exportFilename(title string, ft FileType) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r == ' ':
			return '_'
		case r == '"' || r == '\\' || r == '\n' || r == '\r' || r == '/':
			return -1
		default:
			return r
		}
	}, title)
	if name == "" {
		name = "exam"
	}
	return name + "." + string(ft)
}

// renderText produces the plain-text exam sheet followed by the answer key.
func renderText(exam *model.Exam) string {
	var b strings.Builder
	divider := strings.Repeat("=", 40)

	fmt.Fprintf(&b, "Exam Title: %s\n", exam.ExamTitle)
	fmt.Fprintf(&b, "Questions: %d\n", exam.TotalQuestions)
	fmt.Fprintf(&b, "Difficulty: %s\n", exam.Difficulty)
	fmt.Fprintf(&b, "Estimated Time: %d minutes\n", exam.EstimatedCompletionMinutes)
	fmt.Fprintf(&b, "Types: %s\n", joinTypes(exam.QuestionTypes))
	b.WriteString("\n" + divider + "\n\n")

	for _, q := range exam.Questions {
		fmt.Fprintf(&b, "Question %d [%s - %s]\n%s\n\n", q.ID, q.Type, q.Difficulty, q.Question)

		if q.Type == model.QuestionTypeMultipleChoice {
			for i, option := range q.Options {
				fmt.Fprintf(&b, "%c. %s\n", 'A'+i, option)
			}
		}
		if q.Type == model.QuestionTypeEssay {
			fmt.Fprintf(&b, "Guidelines: %s\n", q.Guidelines)
		}

		b.WriteString("\n" + strings.Repeat("-", 40) + "\n\n")
	}

	b.WriteString("\nANSWER KEY\n" + divider + "\n\n")
	for _, q := range exam.Questions {
		switch q.Type {
		case model.QuestionTypeMultipleChoice, model.QuestionTypeTrueFalse:
			fmt.Fprintf(&b, "Question %d: %s\n", q.ID, q.CorrectAnswer)
		case model.QuestionTypeShortAnswer:
			fmt.Fprintf(&b, "Question %d: [Sample Answer] %s\n", q.ID, q.SampleAnswer)
		case model.QuestionTypeEssay:
			fmt.Fprintf(&b, "Question %d: Not Applicable\n", q.ID)
		}
	}

	return b.String()
}

// renderPDF produces an A4 exam sheet with the same structure as the
// plain-text rendering.
func renderPDF(exam *model.Exam) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.MultiCell(0, 8, tr(exam.ExamTitle), "", "C", false)
	doc.Ln(2)

	doc.SetFont("Helvetica", "", 10)
	meta := fmt.Sprintf("Questions: %d | Difficulty: %s | Estimated Time: %d minutes\nTypes: %s",
		exam.TotalQuestions, exam.Difficulty, exam.EstimatedCompletionMinutes, joinTypes(exam.QuestionTypes))
	doc.MultiCell(0, 5, tr(meta), "", "C", false)
	doc.Ln(6)

	for _, q := range exam.Questions {
		doc.SetFont("Helvetica", "B", 11)
		doc.MultiCell(0, 6, tr(fmt.Sprintf("Question %d [%s - %s]", q.ID, q.Type, q.Difficulty)), "", "L", false)

		doc.SetFont("Helvetica", "", 11)
		doc.MultiCell(0, 6, tr(q.Question), "", "L", false)

		if q.Type == model.QuestionTypeMultipleChoice {
			for i, option := range q.Options {
				doc.MultiCell(0, 6, tr(fmt.Sprintf("%c. %s", 'A'+i, option)), "", "L", false)
			}
		}
		if q.Type == model.QuestionTypeEssay {
			doc.MultiCell(0, 6, tr("Guidelines: "+q.Guidelines), "", "L", false)
		}
		doc.Ln(4)
	}

	doc.AddPage()
	doc.SetFont("Helvetica", "B", 14)
	doc.MultiCell(0, 8, "ANSWER KEY", "", "C", false)
	doc.Ln(2)

	doc.SetFont("Helvetica", "", 11)
	for _, q := range exam.Questions {
		var line string
		switch q.Type {
		case model.QuestionTypeMultipleChoice, model.QuestionTypeTrueFalse:
			line = fmt.Sprintf("Question %d: %s", q.ID, q.CorrectAnswer)
		case model.QuestionTypeShortAnswer:
			line = fmt.Sprintf("Question %d: [Sample Answer] %s", q.ID, q.SampleAnswer)
		case model.QuestionTypeEssay:
			line = fmt.Sprintf("Question %d: Not Applicable", q.ID)
		}
		doc.MultiCell(0, 6, tr(line), "", "L", false)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func joinTypes(types []model.QuestionType) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
