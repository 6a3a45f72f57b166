package v1handler

import (
	"net/http"
	"phishguard/pkg/controller"
	"phishguard/pkg/logger"
	"phishguard/pkg/serrors"
	"time"

	"github.com/go-faster/jx"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// Events streams verdict events over a websocket. The contextId query
// parameter restricts the stream to one display context.
func (h Handler) Events(w http.ResponseWriter, r *http.Request) {
	if !websocket.IsWebSocketUpgrade(r) {
		h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "websocket upgrade required"))

		return
	}

	up := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return controller.OriginAllowed(h.deps.AllowedOrigins, r.Header.Get("Origin"))
		},
	}
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already answered the client
		return
	}
	defer func() { _ = conn.Close() }()

	ctx := logger.WithFields(r.Context(), zap.String("contextID", r.URL.Query().Get("contextId")))
	events, cancel := h.deps.Detector.Subscribe(r.URL.Query().Get("contextId"))
	defer cancel()

	// the reader only handles control frames and detects the close
	closed := make(chan struct{})
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	for {
		select {
		case <-closed:
			return
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			e.Reset()
			encodeEvent(e, ev)
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, e.Bytes()); err != nil {
				logger.Debug(ctx, "could not write event", zap.Error(err))

				return
			}
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
