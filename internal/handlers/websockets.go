package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 1 << 12 // 4 KB

	defaultStreamInterval = 30 * time.Second
	maxStreamInterval     = 10 * time.Minute

	wsTypeAlerts = "alerts"
	wsTypeError  = "error"
)

type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// WithAllowedOrigins restricts which browser origins may open /ws/alerts.
// With no origins configured any origin is accepted.
func WithAllowedOrigins(origins ...string) Option {
	return func(h *Handler) {
		h.allowedOrigins = nil
		for _, o := range origins {
			if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
				h.allowedOrigins = append(h.allowedOrigins, strings.ToLower(o))
			}
		}
	}
}

func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := strings.ToLower(r.Header.Get("Origin"))
	if len(h.allowedOrigins) == 0 || origin == "" {
		return true
	}
	for _, o := range h.allowedOrigins {
		if o == "*" || o == origin {
			return true
		}
	}
	return false
}

// @Summary      Live alert stream
// @Description  WebSocket. Pushes {"type":"alerts","data":[...]} on connect and every interval (?interval=1m or ?interval_ms=60000). Browsers may pass the token as ?access_token=.
// @Tags         alerts
// @Router       /ws/alerts [get]
// @Security     BearerAuth
func (h *Handler) wsAlerts(c *gin.Context) {
	interval := streamInterval(c)

	upgrader := websocket.Upgrader{CheckOrigin: h.checkOrigin}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error response.
		if h.log != nil {
			h.log.Infow("ws_upgrade_failed", "err", err)
		}
		return
	}

	s := &alertStream{h: h, conn: conn}
	s.serve(c.Request.Context(), interval)
}

// streamInterval reads ?interval=2m or ?interval_ms=120000. Values that do not
// parse or fall outside (0, 10m] are ignored.
func streamInterval(c *gin.Context) time.Duration {
	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && validInterval(d) {
			return d
		}
	}
	if s := c.Query("interval_ms"); s != "" {
		if ms, err := strconv.Atoi(s); err == nil {
			if d := time.Duration(ms) * time.Millisecond; validInterval(d) {
				return d
			}
		}
	}
	return defaultStreamInterval
}

func validInterval(d time.Duration) bool {
	return d > 0 && d <= maxStreamInterval
}

// alertStream is one client connection receiving periodic alert snapshots.
type alertStream struct {
	h    *Handler
	conn *websocket.Conn
}

func (s *alertStream) serve(ctx context.Context, interval time.Duration) {
	defer func() { _ = s.conn.Close() }()

	s.conn.SetReadLimit(maxMsgSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	closed := make(chan struct{})
	go s.drain(closed)

	if !s.push(ctx) {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-closed:
			return
		case <-ctx.Done():
			return
		case <-ping.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.logInfo("ws_ping_failed", err)
				return
			}
		case <-ticker.C:
			if !s.push(ctx) {
				return
			}
		}
	}
}

// drain reads until the peer goes away so control frames are processed.
func (s *alertStream) drain(closed chan<- struct{}) {
	defer close(closed)
	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			s.logInfo("ws_read_closed", err)
			return
		}
	}
}

// push writes the current alerts. When they cannot be computed the client
// gets an error envelope and push reports false so the stream ends.
func (s *alertStream) push(ctx context.Context) bool {
	list, err := s.h.services.Alerts.List(ctx)
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err != nil {
		if s.h.log != nil {
			s.h.log.Errorw("ws_alerts_failed", "err", err)
		}
		_ = s.conn.WriteJSON(wsEnvelope{Type: wsTypeError, Error: errLoadAlerts})
		return false
	}
	if err := s.conn.WriteJSON(wsEnvelope{Type: wsTypeAlerts, Data: list}); err != nil {
		s.logInfo("ws_write_failed", err)
		return false
	}
	return true
}

func (s *alertStream) logInfo(key string, err error) {
	if s.h.log != nil {
		s.h.log.Infow(key, "err", err)
	}
}
