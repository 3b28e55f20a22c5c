package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/akeil/inkbook/internal/logging"
)

// SignalCloseWindow asks to close a notebook window.
const SignalCloseWindow = "close-notebook-window"

// Signal is a one-way message from a client.
// Signals are not acknowledged.
type Signal struct {
	Type   string `json:"type"`
	Window string `json:"window"`
}

// GET /signals
func (s *Server) handleSignals(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already replied with an error
		logging.Warning("Websocket upgrade failed: %v", err)
		return
	}

	logging.Debug("Signal connection from %v", r.RemoteAddr)
	go s.readSignals(conn)
}

// readSignals handles incoming signals until the client disconnects.
func (s *Server) readSignals(conn *websocket.Conn) {
	defer conn.Close()
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logging.Warning("Signal connection lost: %v", err)
			} else {
				logging.Debug("Signal connection closed")
			}
			return
		}
		s.onSignal(msg)
	}
}

func (s *Server) onSignal(msg []byte) {
	var sig Signal
	err := json.Unmarshal(msg, &sig)
	if err != nil {
		logging.Warning("Ignore malformed signal: %v", err)
		return
	}

	switch sig.Type {
	case SignalCloseWindow:
		err = s.windows.Close(sig.Window)
		if err != nil {
			logging.Error("Failed to close window %q: %v", sig.Window, err)
		}
	default:
		logging.Warning("Ignore unknown signal %q", sig.Type)
	}
}
