package signal

import (
	"github.com/rs/zerolog/log"

	"github.com/lingualive/coordinator/internal/core"
	"github.com/lingualive/coordinator/internal/domain"
)

func (ctl *Controller) handleMessage(sid core.SessionID, c *wsConn, data []byte) {
	p, err := decode[messagePayload](data)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad message payload")
		ctl.sendError(c, "bad payload")
		return
	}
	if !ctl.Limiter.Allow(sid) {
		ctl.sendError(c, "too many messages, slow down")
		return
	}
	if _, err := ctl.Orch.Message(sid, domain.RoomID(p.RoomID), p.Message, p.Timestamp); err != nil {
		ctl.sendError(c, errMessage(err))
	}
}

func (ctl *Controller) handleTyping(sid core.SessionID, c *wsConn, data []byte) {
	p, err := decode[typingPayload](data)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad typing payload")
		ctl.sendError(c, "bad payload")
		return
	}
	if err := ctl.Orch.Typing(sid, domain.RoomID(p.RoomID), p.IsTyping); err != nil {
		ctl.sendError(c, errMessage(err))
	}
}
