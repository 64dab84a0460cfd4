package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/yourusername/fight-predictor/internal/models"
)

const writeWait = 10 * time.Second

func (s *Server) upgrader() *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.allowedOrigin,
	}
}

// allowedOrigin applies the CORS origin list to websocket upgrades. Requests without an
// Origin header come from non-browser clients and are allowed.
func (s *Server) allowedOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range s.opts.CORSOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}

// Stream message types.
const (
	messagePrediction = "prediction"
	messageRound      = "round"
	messageResult     = "result"
)

// streamMessage is one frame of the simulation stream. Only the fields of its Type are set.
type streamMessage struct {
	Type       string             `json:"type"`
	Prediction *models.Prediction `json:"prediction,omitempty"`
	Round      *models.RoundStats `json:"round,omitempty"`
	Damage     *models.Damage     `json:"damage,omitempty"`
	Finished   *bool              `json:"finished,omitempty"`
	Winner     string             `json:"winner,omitempty"`
}

// handleSimulationStream runs one simulation and replays it round by round: a prediction
// frame, one frame per round with running damage, then a result frame.
func (s *Server) handleSimulationStream(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rounds := 0
	if v := q.Get("rounds"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.respondError(w, badRequest("rounds must be an integer"))
			return
		}
		rounds = n
	}

	// resolve before upgrading so lookup failures get a plain HTTP error
	sim, err := s.deps.Predictions.Simulate(r.Context(), q.Get("fighter1"), q.Get("fighter2"), rounds)
	if err != nil {
		s.respondError(w, err)
		return
	}

	conn, err := s.upgrader().Upgrade(w, r, nil)
	if err != nil {
		s.logger.WithError(err).Warn("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	send := func(msg streamMessage) bool {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(msg); err != nil {
			s.logger.WithError(err).Debug("Simulation stream closed by client")
			return false
		}
		return true
	}

	if !send(streamMessage{Type: messagePrediction, Prediction: sim.Prediction}) {
		return
	}

	var damage models.Damage
	for i := range sim.Rounds {
		if s.opts.RoundDelay > 0 {
			select {
			case <-time.After(s.opts.RoundDelay):
			case <-r.Context().Done():
				return
			}
		}

		round := sim.Rounds[i]
		damage.Fighter1 += round.Fighter2Strikes
		damage.Fighter2 += round.Fighter1Strikes
		running := damage
		if !send(streamMessage{Type: messageRound, Round: &round, Damage: &running}) {
			return
		}
	}

	finished := sim.Finished()
	result := streamMessage{Type: messageResult, Finished: &finished, Damage: &sim.TotalDamage}
	if stop := sim.Stoppage(); stop != nil {
		result.Winner = stop.Winner
	}
	if !send(result) {
		return
	}

	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "simulation complete"),
		time.Now().Add(writeWait))
}
