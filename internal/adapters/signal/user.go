package signal

import (
	"github.com/rs/zerolog/log"

	"github.com/lingualive/coordinator/internal/core"
	"github.com/lingualive/coordinator/internal/domain"
)

func (ctl *Controller) handleUpdateStatus(sid core.SessionID, c *wsConn, data []byte) {
	p, err := decode[updateStatusPayload](data)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad update-status payload")
		ctl.sendError(c, "bad payload")
		return
	}
	if err := ctl.Orch.UpdateStatus(sid, p.Status, p.Language); err != nil {
		ctl.sendError(c, errMessage(err))
	}
}

func (ctl *Controller) handleRequestSummary(sid core.SessionID, c *wsConn, data []byte) {
	p, err := decode[roomQueryPayload](data)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad request-summary payload")
		ctl.sendError(c, "bad payload")
		return
	}
	ev, err := ctl.Orch.RequestSummary(sid, domain.RoomID(p.RoomID))
	if err != nil {
		ctl.sendError(c, errMessage(err))
		return
	}
	ctl.sendJSON(c, ev)
}
