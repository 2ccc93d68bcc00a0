package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/examforge/examgen-backend/internal/llm"
	"github.com/examforge/examgen-backend/internal/model"
	"github.com/examforge/examgen-backend/internal/response"
	"github.com/examforge/examgen-backend/internal/service"
	"github.com/examforge/examgen-backend/internal/validator"
)

// ExamHandler handles exam generation and download endpoints.
type ExamHandler struct {
	examService   *service.ExamService
	guideService  *service.GuideService
	exportService *service.ExportService
}

// NewExamHandler creates a new ExamHandler.
func NewExamHandler(
	examService *service.ExamService,
	guideService *service.GuideService,
	exportService *service.ExportService,
) *ExamHandler {
	return &ExamHandler{
		examService:   examService,
		guideService:  guideService,
		exportService: exportService,
	}
}

// GenerateExam godoc
// POST /v1/exams/generate
// Generates a mock exam from the given parameters and exam guide. Accepts
// a JSON body, or multipart form data with an optional exam_guide_file
// upload (txt, docx, pdf) in place of inline guide text.
func (h *ExamHandler) GenerateExam(c *gin.Context) {
	var req model.GenerateExamRequest

	multipart := strings.HasPrefix(c.ContentType(), "multipart/form-data")
	var bind func(*gin.Context, interface{}) map[string]string
	if multipart {
		bind = validator.BindForm
	} else {
		bind = validator.BindJSON
	}
	if fields := bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	guide, ok := h.resolveGuide(c, &req, multipart)
	if !ok {
		return
	}

	exam, err := h.examService.Generate(c.Request.Context(), &req, guide)
	if err != nil {
		var pe *llm.ProviderError
		switch {
		case errors.Is(err, service.ErrUnparsableResponse):
			response.FailWithDetail(c, http.StatusBadGateway, response.ErrUnparsable, err.Error())
		case errors.As(err, &pe):
			response.FailWithDetail(c, http.StatusBadGateway, response.ErrUpstream, pe.Message)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, exam)
}

// resolveGuide extracts the exam-guide text from either the inline field
// or the uploaded file. Exactly one source must be present. On failure it
// writes the error response and returns false.
func (h *ExamHandler) resolveGuide(c *gin.Context, req *model.GenerateExamRequest, multipart bool) (string, bool) {
	inline := strings.TrimSpace(req.ExamGuide)

	if !multipart {
		if inline == "" {
			response.Fail(c, http.StatusBadRequest, response.ErrGuideRequired)
			return "", false
		}
		return inline, true
	}

	file, header, err := c.Request.FormFile("exam_guide_file")
	switch {
	case err != nil && inline == "":
		response.Fail(c, http.StatusBadRequest, response.ErrGuideRequired)
		return "", false
	case err != nil:
		return inline, true
	}
	defer file.Close()

	if inline != "" {
		response.Fail(c, http.StatusBadRequest, response.ErrAmbiguousGuide)
		return "", false
	}

	guide, err := h.guideService.ExtractText(file, header)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedFileType):
			response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFile)
		case errors.Is(err, service.ErrFileTooLarge):
			response.Fail(c, http.StatusBadRequest, response.ErrFileTooLarge)
		case errors.Is(err, service.ErrEmptyGuide):
			response.Fail(c, http.StatusBadRequest, response.ErrEmptyGuide)
		default:
			response.FailWithDetail(c, http.StatusInternalServerError, response.ErrInternal, err.Error())
		}
		return "", false
	}
	return guide, true
}

// DownloadExam godoc
// POST /v1/exams/download?file_type=txt|doc|pdf
// Serializes an exam to a downloadable file. The body carries either the
// id of a recently generated exam or the full exam content.
func (h *ExamHandler) DownloadExam(c *gin.Context) {
	fileType, err := service.ParseFileType(c.Query("file_type"))
	if err != nil {
		response.FailWithDetail(c, http.StatusBadRequest, response.ErrValidation, err.Error())
		return
	}

	var req model.DownloadExamRequest
	if fields := validator.BindJSON(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if (req.ExamID == "") == (req.Exam == nil) {
		response.FailWithDetail(c, http.StatusBadRequest, response.ErrInvalidPayload,
			"provide exactly one of exam_id or exam")
		return
	}

	var exam model.Exam
	if req.ExamID != "" {
		stored, ok := h.examService.GetExam(req.ExamID)
		if !ok {
			response.Fail(c, http.StatusNotFound, response.ErrExamNotFound)
			return
		}
		exam = stored
	} else {
		exam = *req.Exam
		if err := exam.Validate(); err != nil {
			response.FailWithDetail(c, http.StatusBadRequest, response.ErrValidation, err.Error())
			return
		}
	}

	export, err := h.exportService.Export(&exam, fileType)
	if err != nil {
		response.FailWithDetail(c, http.StatusInternalServerError, response.ErrExportFailed, err.Error())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	c.Data(http.StatusOK, export.ContentType, export.Data)
}
