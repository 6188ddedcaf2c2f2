// Package signal is the websocket transport adapter: it upgrades
// connections, pumps frames in both directions and translates the wire
// protocol into orchestrator calls.
package signal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/lingualive/coordinator/internal/app/orch"
	"github.com/lingualive/coordinator/internal/config"
	"github.com/lingualive/coordinator/internal/core"
)

var ErrBackpressure = errors.New("backpressure")

type Controller struct {
	Orch    *orch.Orchestrator
	Limiter *RateLimiter
	cfg     *config.Config
}

func NewController(cfg *config.Config, o *orch.Orchestrator) *Controller {
	return &Controller{
		Orch:    o,
		Limiter: NewRateLimiter(cfg.MessageRate, cfg.MessageWindow),
		cfg:     cfg,
	}
}

// wsConn wraps a websocket connection with a buffered send queue.
// Send never blocks: a full queue means the consumer is slow and the
// event is rejected with ErrBackpressure.
type wsConn struct {
	conn *websocket.Conn
	send chan []byte

	mu     sync.RWMutex
	closed bool
}

func (c *wsConn) TrySend(b []byte) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return errors.New("connection closed")
	}
	select {
	case c.send <- b:
	default:
		return ErrBackpressure
	}
	return nil
}

// Send implements core.Sink.
func (c *wsConn) Send(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.TrySend(b)
}

func (c *wsConn) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	_ = c.conn.Close()
	c.mu.Unlock()
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWS upgrades the request and registers the connection. The
// client token cookie doubles as the connection id.
func (ctl *Controller) HandleWS(ctx context.Context, c *gin.Context) {
	sid := core.SessionID(c.GetString("client_token"))
	if sid == "" {
		sid = core.SessionID(uuid.NewString())
	}
	log.Info().Str("module", "signal").Str("sid", string(sid)).Msg("new WS connection")

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("ws upgrade")
		return
	}

	conn := &wsConn{
		conn: ws,
		send: make(chan []byte, ctl.cfg.SendBuffer),
	}

	ctx, cancel := context.WithCancel(ctx)
	ctl.Orch.Connect(sid, conn, cancel)

	go ctl.writePump(ctx, conn)
	go ctl.readPump(ctx, cancel, sid, conn)
}
