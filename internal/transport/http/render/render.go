// Package render writes JSON responses and decodes JSON request bodies.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/you-humble/pcbuilder/platform/logger"
)

const maxBodyBytes = 1 << 20

var ErrBadRequest = errors.New("bad request")

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(r.Context(), "encode response", logger.ErrorF(err))
	}
}

func Error(w http.ResponseWriter, r *http.Request, status int, msg string) {
	JSON(w, r, status, ErrorResponse{Code: status, Message: msg})
}

// InternalError logs err and answers 500 without exposing its text.
func InternalError(w http.ResponseWriter, r *http.Request, err error) {
	logger.Error(r.Context(), "request failed",
		logger.String("path", r.URL.Path),
		logger.ErrorF(err),
	)
	Error(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// Decode reads a single JSON value from the request body into v.
func Decode(r *http.Request, v any) error {
	body := io.LimitReader(r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	return nil
}
