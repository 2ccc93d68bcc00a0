package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Exam guide input ──────────────────────────────────────────────
	ErrGuideRequired   ErrCode = "GUIDE_REQUIRED"
	ErrAmbiguousGuide  ErrCode = "AMBIGUOUS_GUIDE_SOURCE"
	ErrEmptyGuide      ErrCode = "EMPTY_GUIDE"
	ErrUnsupportedFile ErrCode = "UNSUPPORTED_FILE_TYPE"
	ErrFileTooLarge    ErrCode = "FILE_TOO_LARGE"

	// ─── Generation ────────────────────────────────────────────────────
	ErrUpstream   ErrCode = "UPSTREAM_ERROR"
	ErrUnparsable ErrCode = "UNPARSABLE_RESPONSE"

	// ─── Download ──────────────────────────────────────────────────────
	ErrExamNotFound ErrCode = "EXAM_NOT_FOUND"
	ErrExportFailed ErrCode = "EXPORT_FAILED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidPayload:
		return "The request payload is invalid."
	case ErrGuideRequired:
		return "Either exam_guide or exam_guide_file must be provided."
	case ErrAmbiguousGuide:
		return "Provide either exam_guide or exam_guide_file, not both."
	case ErrEmptyGuide:
		return "No content found to generate an exam from."
	case ErrUnsupportedFile:
		return "Unsupported file type. Supported: txt, docx, pdf."
	case ErrFileTooLarge:
		return "The uploaded file exceeds the size limit."
	case ErrUpstream:
		return "The AI provider rejected the request or is unreachable."
	case ErrUnparsable:
		return "The AI provider returned an empty or unparsable response."
	case ErrExamNotFound:
		return "The referenced exam was not found or has expired."
	case ErrExportFailed:
		return "The exam could not be serialized to the requested format."
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
