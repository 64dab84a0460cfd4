package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/yourusername/fight-predictor/internal/models"
	"github.com/yourusername/fight-predictor/internal/odds"
	"github.com/yourusername/fight-predictor/internal/service"
)

// MaxSearchLimit caps the fighters search.
const MaxSearchLimit = 100

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// matchupRequest is the body of the prediction, simulation and card endpoints.
type matchupRequest struct {
	Fighter1    string `json:"fighter1"`
	Fighter2    string `json:"fighter2"`
	Rounds      int    `json:"rounds"`
	Runs        int    `json:"runs,omitempty"`
	IncludeOdds bool   `json:"include_odds,omitempty"`
	Simulate    bool   `json:"simulate,omitempty"`
}

type predictionResponse struct {
	*models.Prediction
	Odds *service.OddsReport `json:"odds,omitempty"`
}

type fighterResponse struct {
	*models.Fighter
	Record string `json:"record"`
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.WithError(err).Warn("Failed to encode response")
	}
}

func (s *Server) respondError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.WithError(err).Error("Request failed")
	}
	s.respondJSON(w, status, ErrorResponse{Error: err.Error(), Code: status})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrFighterNotFound), errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrFighterRequired),
		errors.Is(err, models.ErrInvalidRoundCount),
		errors.Is(err, models.ErrInvalidRunCount),
		errors.Is(err, models.ErrInvalidID),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case odds.IsUnavailable(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

var errBadRequest = errors.New("bad request")

func badRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", errBadRequest, fmt.Sprintf(format, args...))
}

func decodeMatchup(w http.ResponseWriter, r *http.Request) (matchupRequest, error) {
	var req matchupRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return req, badRequest("invalid request body: %v", err)
	}
	return req, nil
}

func parseIntParam(r *http.Request, param string, defaultValue int) (int, error) {
	valueStr := r.URL.Query().Get(param)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, badRequest("%s must be an integer", param)
	}
	return value, nil
}

func (s *Server) handleSearchFighters(w http.ResponseWriter, r *http.Request) {
	limit, err := parseIntParam(r, "limit", 0)
	if err != nil {
		s.respondError(w, err)
		return
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	fighters := s.deps.Predictions.Roster().Search(r.URL.Query().Get("q"), limit)
	out := make([]fighterResponse, len(fighters))
	for i, f := range fighters {
		out[i] = fighterResponse{Fighter: f, Record: f.Record()}
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"fighters": out,
		"count":    len(out),
	})
}

func (s *Server) handleGetFighter(w http.ResponseWriter, r *http.Request) {
	f, err := s.deps.Predictions.Roster().Get(chi.URLParam(r, "name"))
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, fighterResponse{Fighter: f, Record: f.Record()})
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	req, err := decodeMatchup(w, r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	p, err := s.deps.Predictions.Predict(r.Context(), req.Fighter1, req.Fighter2, req.Rounds)
	if err != nil {
		s.respondError(w, err)
		return
	}

	resp := predictionResponse{Prediction: p}
	if req.IncludeOdds {
		resp.Odds = s.deps.Predictions.Odds(r.Context(), p)
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	req, err := decodeMatchup(w, r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	if req.Runs > 1 {
		summary, err := s.deps.Predictions.SimulateMany(r.Context(), req.Fighter1, req.Fighter2, req.Rounds, req.Runs)
		if err != nil {
			s.respondError(w, err)
			return
		}
		s.respondJSON(w, http.StatusOK, summary)
		return
	}

	sim, err := s.deps.Predictions.Simulate(r.Context(), req.Fighter1, req.Fighter2, req.Rounds)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, sim)
}

func (s *Server) handleOdds(w http.ResponseWriter, r *http.Request) {
	fighter1 := r.URL.Query().Get("fighter1")
	fighter2 := r.URL.Query().Get("fighter2")
	if fighter1 == "" || fighter2 == "" {
		s.respondError(w, models.ErrFighterRequired)
		return
	}
	if s.deps.Odds == nil || !s.deps.Odds.Enabled() {
		s.respondError(w, odds.ErrOddsUnavailable)
		return
	}

	fight, err := s.deps.Odds.FindFightOdds(r.Context(), fighter1, fighter2)
	if err != nil {
		s.respondError(w, err)
		return
	}

	resp := map[string]interface{}{"odds": fight}
	if fight.Found {
		// comparison needs both fighters on the roster; its absence is not an error
		if p, err := s.deps.Predictions.Predict(r.Context(), fighter1, fighter2, 0); err == nil {
			resp["comparison"] = odds.Compare(p, fight)
		}
	}
	s.respondJSON(w, http.StatusOK, resp)
}
