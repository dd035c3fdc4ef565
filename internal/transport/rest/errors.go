package rest

import (
	"errors"
	"net/http"

	"github.com/linguahub/srs-backend/internal/domain"
)

type errorBody struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// writeError maps domain errors to HTTP status codes. Unknown errors become
// an opaque 500; their detail belongs in the logs, not the response.
func writeError(w http.ResponseWriter, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		fields := make([]fieldError, len(vErr.Errors))
		for i, fe := range vErr.Errors {
			fields[i] = fieldError{Field: fe.Field, Message: fe.Message}
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorBody{
			Code:    "VALIDATION",
			Message: "invalid request",
			Fields:  fields,
		}})
		return
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorBody{
			Code: "VALIDATION", Message: err.Error(),
		}})
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: errorBody{
			Code: "UNAUTHORIZED", Message: "authentication required",
		}})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: errorBody{
			Code: "NOT_FOUND", Message: "resource not found",
		}})
	case errors.Is(err, domain.ErrAlreadyExists):
		writeJSON(w, http.StatusConflict, errorResponse{Error: errorBody{
			Code: "ALREADY_EXISTS", Message: "resource already exists",
		}})
	case errors.Is(err, domain.ErrConflict):
		writeJSON(w, http.StatusConflict, errorResponse{Error: errorBody{
			Code: "CONFLICT", Message: err.Error(),
		}})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: errorBody{
			Code: "INTERNAL", Message: "internal server error",
		}})
	}
}

// writeBadRequest reports a request that failed before reaching the service,
// such as malformed JSON or a non-UUID path segment.
func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorBody{
		Code: "BAD_REQUEST", Message: message,
	}})
}
