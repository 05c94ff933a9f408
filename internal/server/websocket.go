package server

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/yourusername/cricket-predictor/internal/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// wsResult is the websocket frame sent back per snapshot: either a
// prediction or an error, never both.
type wsResult struct {
	Prediction *models.Prediction `json:"prediction,omitempty"`
	Error      string             `json:"error,omitempty"`
}

// handleWebsocket streams predictions over one connection: the client sends
// a snapshot per ball, the server answers with the updated probability pair.
// Input errors are reported in-band and keep the connection open; only
// transport failures close it.
func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.WithError(err).Warn("Websocket upgrade failed")
		return
	}
	defer conn.Close()

	s.logger.WithField("remote", conn.RemoteAddr().String()).Debug("Websocket client connected")

	for {
		var req predictRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.WithError(err).Debug("Websocket read failed")
			}
			return
		}

		result := wsResult{}
		state, err := req.toMatchState()
		if err == nil {
			var pred *models.Prediction
			pred, err = s.predictor.PredictLive(state)
			result.Prediction = pred
		}
		if err != nil {
			result.Error = err.Error()
		}

		if err := conn.WriteJSON(result); err != nil {
			s.logger.WithError(err).Debug("Websocket write failed")
			return
		}
	}
}
