package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

type APIError struct {
	Code      string   `json:"code"`
	Message   string   `json:"message"`
	Columns   []string `json:"columns,omitempty"`
	RequestID string   `json:"request_id,omitempty"`
}

// Error codes that do not come from the chart builder.
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeNoDataset         = "NO_DATASET"
	CodeUnknownDemo       = "UNKNOWN_DEMO"
	CodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	CodeFileTooLarge      = "FILE_TOO_LARGE"
	CodeSheetNotFound     = "SHEET_NOT_FOUND"
	CodeInvalidRange      = "INVALID_RANGE"
	CodeNoData            = "NO_DATA"
	CodeInvalidFile       = "INVALID_FILE"
	CodeRenderFailed      = "RENDER_FAILED"
	CodeInternal          = "INTERNAL_ERROR"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) ErrorResponse {
	return ErrorResponse{
		Error: APIError{
			Code:      code,
			Message:   message,
			RequestID: middleware.GetReqID(r.Context()),
		},
	}
}

func errorRespWithColumns(code, message string, columns []string, r *http.Request) ErrorResponse {
	resp := errorResp(code, message, r)
	resp.Error.Columns = columns
	return resp
}

func writeAttachment(w http.ResponseWriter, contentType, filename string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
