package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/emailguess"
	"github.com/dmitrymomot/emailguess/pkg/logger"
	"github.com/dmitrymomot/emailguess/pkg/validator"
)

// Response is the envelope of every JSON body. Exactly one of Data and
// Error is set.
type Response struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, v any) {
	writeJSON(w, http.StatusOK, Response{Data: v})
}

func writeError(ctx context.Context, log *slog.Logger, w http.ResponseWriter, err error) {
	status, detail := errorToDetail(err)
	if status >= http.StatusInternalServerError {
		log.ErrorContext(ctx, "request failed", logger.Error(err))
	} else {
		log.DebugContext(ctx, "request rejected", logger.Error(err))
	}
	writeJSON(w, status, Response{Error: detail})
}

// errorToDetail maps an error to its status code and public description.
func errorToDetail(err error) (int, *ErrorDetail) {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		return http.StatusUnprocessableEntity, &ErrorDetail{
			Code:    "validation_error",
			Message: err.Error(),
			Details: verrs.Details(),
		}
	}

	var nameErr *emailguess.NameError
	switch {
	case errors.Is(err, ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, &ErrorDetail{Code: "unsupported_media_type", Message: err.Error()}
	case errors.Is(err, ErrInvalidJSON):
		return http.StatusBadRequest, &ErrorDetail{Code: "invalid_json", Message: err.Error()}
	case errors.As(err, &nameErr):
		return http.StatusUnprocessableEntity, &ErrorDetail{
			Code:    "invalid_name",
			Message: err.Error(),
			Details: map[string][]string{"names": {nameErr.Error()}},
		}
	case errors.Is(err, emailguess.ErrInvalidInput):
		return http.StatusUnprocessableEntity, &ErrorDetail{Code: "invalid_input", Message: err.Error()}
	case errors.Is(err, emailguess.ErrCheckUnavailable), errors.Is(err, ErrFinderDisabled):
		return http.StatusServiceUnavailable, &ErrorDetail{Code: "check_unavailable", Message: err.Error()}
	case errors.Is(err, emailguess.ErrCheckFailed):
		return http.StatusBadGateway, &ErrorDetail{Code: "check_failed", Message: err.Error()}
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, &ErrorDetail{Code: "timeout", Message: http.StatusText(http.StatusGatewayTimeout)}
	}

	return http.StatusInternalServerError, &ErrorDetail{
		Code:    "internal_error",
		Message: http.StatusText(http.StatusInternalServerError),
	}
}
