package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/yumyai/seqspec/logger"
	"github.com/yumyai/seqspec/pkg/db"
	"github.com/yumyai/seqspec/pkg/middle"
	"github.com/yumyai/seqspec/pkg/model"
	"go.uber.org/zap"
)

var errBadRequest = errors.New("bad request")

// Response envelope for every JSON endpoint
type APIResponse struct {
	Status  string `json:"status"`
	Payload any    `json:"payload"`
	Error   string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(APIResponse{Status: "success", Payload: payload}); err != nil {
		logger.Error("Failed to encode response", zap.Error(err))
	}
}

func writeText(w http.ResponseWriter, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// requestLogger returns the logger tagged with the request id, or the global
// one when no request id middleware is installed.
func requestLogger(r *http.Request) *zap.Logger {
	return middle.Logger(r.Context(), logger.L())
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		requestLogger(r).Error("Request failed", zap.Int("status", code), zap.Error(err))
	} else {
		requestLogger(r).Debug("Request rejected", zap.Int("status", code), zap.Error(err))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(APIResponse{Status: "error", Error: err.Error()})
}

func statusFor(err error) int {
	var (
		cerr *model.ConsistencyError
		perr *model.ParseError
		verr validator.ValidationErrors
	)

	switch {
	case errors.Is(err, db.ErrAssayNotFound),
		errors.Is(err, model.ErrModalityNotFound),
		errors.Is(err, model.ErrRegionNotFound),
		errors.Is(err, model.ErrReadNotFound):
		return http.StatusNotFound
	case errors.As(err, &cerr):
		return http.StatusConflict
	case errors.As(err, &perr),
		errors.As(err, &verr),
		errors.Is(err, model.ErrUnknownSelector),
		errors.Is(err, db.ErrMissingAssayID),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// decodeBody reads a JSON request body into v.
func decodeBody(r *http.Request, kind string, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &model.ParseError{Kind: kind, Err: err}
	}
	return nil
}
