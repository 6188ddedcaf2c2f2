package signal

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/lingualive/coordinator/internal/core"
	"github.com/lingualive/coordinator/internal/domain"
)

const writeWait = 5 * time.Second

func (ctl *Controller) writePump(ctx context.Context, c *wsConn) {
	ticker := time.NewTicker(ctl.cfg.PingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Debug().Str("module", "signal").Msg("writePump ctx done")
			return
		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Debug().Err(err).Str("module", "signal").Msg("writePump ping error")
				return
			}
		case data, ok := <-c.send:
			if !ok {
				log.Warn().Str("module", "signal").Msg("writePump channel closed")
				return
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump set deadline")
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump write error")
				return
			}
		}
	}
}

func (ctl *Controller) readPump(ctx context.Context, cancel context.CancelFunc, sid core.SessionID, c *wsConn) {
	defer func() {
		log.Info().Str("module", "signal").Str("sid", string(sid)).Msg("readPump closing")
		cancel()
		ctl.Orch.Disconnect(sid)
		ctl.Limiter.Forget(sid)
		c.Close()
	}()

	pongWait := ctl.cfg.PingPeriod * 10 / 9
	c.conn.SetReadLimit(ctl.cfg.ReadLimit)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		select {
		case <-ctx.Done():
			log.Debug().Str("module", "signal").Str("sid", string(sid)).Msg("readPump ctx done")
			return
		default:
			_, data, err := c.conn.ReadMessage()
			if err != nil {
				log.Debug().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("readPump read error")
				return
			}
			ctl.handleFrame(sid, c, data)
		}
	}
}

// handleFrame dispatches one inbound frame. A panic inside a handler
// drops the event and keeps the connection and room alive.
func (ctl *Controller) handleFrame(sid core.SessionID, c *wsConn, data []byte) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("module", "signal").Str("sid", string(sid)).Any("panic", r).Msg("event handler panicked, frame dropped")
			ctl.sendError(c, "internal error")
		}
	}()

	var env struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad json")
		ctl.sendError(c, "bad payload")
		return
	}

	switch env.Type {
	case "join-room":
		ctl.handleJoin(sid, c, data)
	case "leave-room":
		ctl.handleLeave(sid, c, data)
	case "message":
		ctl.handleMessage(sid, c, data)
	case "subtitle":
		ctl.handleSubtitle(sid, c, data)
	case "translation":
		ctl.handleTranslation(sid, c, data)
	case "typing":
		ctl.handleTyping(sid, c, data)
	case "update-status":
		ctl.handleUpdateStatus(sid, c, data)
	case "request-summary":
		ctl.handleRequestSummary(sid, c, data)
	case "get-room-info":
		ctl.handleRoomInfo(sid, c, data)
	default:
		log.Warn().Str("module", "signal").Str("type", env.Type).Msg("unknown event")
		ctl.sendError(c, "unknown event type")
	}
}

func (ctl *Controller) sendJSON(c *wsConn, v any) {
	if err := c.Send(v); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("sendJSON drop")
	}
}

func (ctl *Controller) sendError(c *wsConn, msg string) {
	ctl.sendJSON(c, core.NewErrorEvent(msg))
}

// errMessage maps domain errors to the caller-visible error signal.
func errMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrRoomNotFound):
		return "room not found"
	case errors.Is(err, domain.ErrNotInRoom):
		return "not in room"
	case errors.Is(err, domain.ErrNotRegistered):
		return "connection not registered"
	case errors.Is(err, domain.ErrRoomIDEmpty), errors.Is(err, domain.ErrRoomIDTooLong):
		return "invalid room id"
	case errors.Is(err, domain.ErrUsernameTooLong):
		return "invalid name"
	default:
		return "request failed"
	}
}
