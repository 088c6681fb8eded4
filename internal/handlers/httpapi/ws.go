package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/KirkDiggler/mixladder/internal/models"
	"github.com/KirkDiggler/mixladder/internal/services/ladder"
	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const writeTimeout = 3 * time.Second

type snapshotMessage struct {
	Type  string     `json:"type"`
	Lobby *lobbyView `json:"lobby"`
}

// watchLobby streams lobby snapshots: the current state first, then one
// message per committed change. The stream ends when the lobby finishes,
// the client goes away or stops answering pings. Clients reconnect and get
// a fresh snapshot.
func (s *Server) watchLobby(w http.ResponseWriter, r *http.Request) {
	lobbyID := chi.URLParam(r, "lobbyID")
	logger := s.logger.With(zap.String("lobby_id", lobbyID))

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	watch, err := s.service.WatchLobby(ctx, &ladder.WatchLobbyInput{LobbyID: lobbyID})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.allowedOrigins,
	})
	if err != nil {
		logger.Debug("websocket accept failed", zap.Error(err))
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	// spectators never send anything; CloseRead handles control frames and
	// cancels ctx when the client disconnects
	ctx = conn.CloseRead(ctx)

	if err := s.writeSnapshot(ctx, conn, "snapshot", watch.Lobby); err != nil {
		return
	}
	if watch.Lobby.Status.IsTerminal() {
		conn.Close(websocket.StatusNormalClosure, "lobby finished")
		return
	}

	ticker := time.NewTicker(s.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case l, ok := <-watch.Updates:
			if !ok {
				conn.Close(websocket.StatusNormalClosure, "lobby finished")
				return
			}
			if err := s.writeSnapshot(ctx, conn, "update", l); err != nil {
				logger.Debug("websocket write failed", zap.Error(err))
				return
			}
		case <-ticker.C:
			pingCtx, pingCancel := context.WithTimeout(ctx, s.pingTimeout)
			err := conn.Ping(pingCtx)
			pingCancel()
			if err != nil {
				logger.Debug("websocket ping failed", zap.Error(err))
				return
			}
		}
	}
}

func (s *Server) writeSnapshot(ctx context.Context, conn *websocket.Conn, kind string, l *models.Lobby) error {
	payload, err := json.Marshal(snapshotMessage{Type: kind, Lobby: newLobbyView(l)})
	if err != nil {
		return err
	}

	writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return conn.Write(writeCtx, websocket.MessageText, payload)
}
