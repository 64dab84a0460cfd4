package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/yourusername/fight-predictor/internal/models"
)

func (s *Server) handleListCard(w http.ResponseWriter, r *http.Request) {
	card, err := s.deps.FightCard.List(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, card)
}

func (s *Server) handleAddCardEntry(w http.ResponseWriter, r *http.Request) {
	req, err := decodeMatchup(w, r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	entry, err := s.deps.FightCard.Add(r.Context(), req.Fighter1, req.Fighter2, req.Rounds, req.Simulate)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleRemoveCardEntry(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, models.ErrInvalidID)
		return
	}

	if err := s.deps.FightCard.Remove(r.Context(), id); err != nil {
		s.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleLock(w http.ResponseWriter, r *http.Request) {
	lock, err := s.deps.FightCard.Lock(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, lock)
}
