package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/yourusername/cricket-predictor/internal/features"
	"github.com/yourusername/cricket-predictor/internal/models"
)

// predictRequest mirrors models.MatchState but takes overs as text so the
// one-decimal constraint is enforced by validated parsing, not by float
// coercion.
type predictRequest struct {
	BattingTeam   string `json:"batting_team"`
	BowlingTeam   string `json:"bowling_team"`
	City          string `json:"city"`
	Target        int    `json:"target"`
	CurrentScore  int    `json:"current_score"`
	OversDone     string `json:"overs_done"`
	WicketsFallen int    `json:"wickets_fallen"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	state, err := req.toMatchState()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	pred, err := s.predictor.PredictLive(state)
	if err != nil {
		if models.IsInputError(err) {
			// Deterministic input errors: the caller must correct the
			// snapshot, retrying is pointless.
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		s.logger.WithError(err).Error("Prediction failed")
		writeError(w, http.StatusInternalServerError, "prediction failed")
		return
	}

	if s.audit != nil {
		if err := s.audit.Insert(r.Context(), pred); err != nil {
			s.logger.WithError(err).Warn("Failed to record prediction in audit log")
		}
	}

	writeJSON(w, http.StatusOK, pred)
}

func (s *Server) handleTeams(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"teams": s.predictor.Vocab().Teams})
}

func (s *Server) handleCities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"cities": s.predictor.Vocab().Cities})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"service":   "cricket-predictor",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{"model": "ok"}
	status := http.StatusOK

	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			checks["database"] = err.Error()
			status = http.StatusServiceUnavailable
		} else {
			checks["database"] = "ok"
		}
	}

	state := "ready"
	if status != http.StatusOK {
		state = "not ready"
	}
	writeJSON(w, status, map[string]any{
		"status": state,
		"checks": checks,
	})
}

func (r predictRequest) toMatchState() (models.MatchState, error) {
	overs := 0.0
	if r.OversDone != "" {
		parsed, err := features.ParseOvers(r.OversDone)
		if err != nil {
			return models.MatchState{}, err
		}
		overs = parsed
	}
	state := models.MatchState{
		BattingTeam:   r.BattingTeam,
		BowlingTeam:   r.BowlingTeam,
		City:          r.City,
		Target:        r.Target,
		CurrentScore:  r.CurrentScore,
		OversDone:     overs,
		WicketsFallen: r.WicketsFallen,
	}
	if err := state.Validate(); err != nil {
		return models.MatchState{}, err
	}
	return state, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
