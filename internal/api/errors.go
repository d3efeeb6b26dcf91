package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/abhisek/careerquest/internal/advisor"
	"github.com/abhisek/careerquest/internal/catalog"
	"github.com/abhisek/careerquest/internal/domains"
	"github.com/abhisek/careerquest/internal/interest"
	"github.com/abhisek/careerquest/internal/llm"
	"github.com/abhisek/careerquest/internal/oracle"
	qb "github.com/abhisek/careerquest/internal/questionbank"
	"github.com/abhisek/careerquest/internal/recommend"
	"github.com/abhisek/careerquest/internal/session"
)

var (
	errBadJSON      = errors.New("bad json")
	errUnconfigured = errors.New("service is not configured")
)

type errorBody struct {
	Error string `json:"error"`
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	var (
		noInterests *recommend.NoValidInterestsError
		unavailable *llm.ErrProviderUnavailable
		rateLimit   *llm.ErrRateLimit
	)
	switch {
	case errors.Is(err, errBadJSON),
		errors.Is(err, catalog.ErrInvalidConfiguration),
		errors.Is(err, qb.ErrInvalidStage),
		errors.Is(err, advisor.ErrEmptyQuestion),
		errors.Is(err, domains.ErrNoGoals):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrNotFound),
		errors.Is(err, domains.ErrNoRecommendations):
		return http.StatusNotFound
	case errors.Is(err, session.ErrCompleted),
		errors.Is(err, errSessionActive):
		return http.StatusConflict
	case errors.As(err, &noInterests),
		errors.Is(err, interest.ErrNoValidInterests),
		errors.Is(err, session.ErrUnknownInstance):
		return http.StatusUnprocessableEntity
	case oracle.IsUnavailable(err),
		errors.Is(err, errUnconfigured),
		errors.As(err, &unavailable),
		errors.As(err, &rateLimit),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.log.Warn("request failed", zap.String("path", r.URL.Path), zap.Int("status", status), zap.Error(err))
	}
	respondJSON(w, status, errorBody{Error: err.Error()})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errBadJSON, err)
	}
	return nil
}
