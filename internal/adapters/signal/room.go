package signal

import (
	"github.com/rs/zerolog/log"

	"github.com/lingualive/coordinator/internal/core"
	"github.com/lingualive/coordinator/internal/domain"
)

func (ctl *Controller) handleJoin(sid core.SessionID, c *wsConn, data []byte) {
	p, err := decode[joinRoomPayload](data)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad join payload")
		ctl.sendError(c, "bad payload")
		return
	}
	ev, err := ctl.Orch.Join(sid, domain.RoomID(p.RoomID), p.UserData.Name, p.UserData.Language)
	if err != nil {
		ctl.sendError(c, errMessage(err))
		return
	}
	ctl.sendJSON(c, ev)
}

func (ctl *Controller) handleLeave(sid core.SessionID, c *wsConn, data []byte) {
	p, err := decode[leaveRoomPayload](data)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad leave payload")
		ctl.sendError(c, "bad payload")
		return
	}
	if err := ctl.Orch.Leave(sid, domain.RoomID(p.RoomID)); err != nil {
		ctl.sendError(c, errMessage(err))
	}
}

func (ctl *Controller) handleRoomInfo(sid core.SessionID, c *wsConn, data []byte) {
	p, err := decode[roomQueryPayload](data)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad room-info payload")
		ctl.sendError(c, "bad payload")
		return
	}
	ctl.sendJSON(c, ctl.Orch.RoomInfo(domain.RoomID(p.RoomID)))
}
