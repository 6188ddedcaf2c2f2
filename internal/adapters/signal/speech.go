package signal

import (
	"github.com/rs/zerolog/log"

	"github.com/lingualive/coordinator/internal/core"
	"github.com/lingualive/coordinator/internal/domain"
)

func (ctl *Controller) handleSubtitle(sid core.SessionID, c *wsConn, data []byte) {
	p, err := decode[subtitlePayload](data)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad subtitle payload")
		ctl.sendError(c, "bad payload")
		return
	}
	receipt, err := ctl.Orch.Subtitle(sid, domain.RoomID(p.RoomID), p.Text, p.Language, p.IsFinal, p.Confidence, p.Timestamp)
	if err != nil {
		ctl.sendError(c, errMessage(err))
		return
	}
	ctl.sendJSON(c, receipt)
}

func (ctl *Controller) handleTranslation(sid core.SessionID, c *wsConn, data []byte) {
	p, err := decode[translationPayload](data)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad translation payload")
		ctl.sendError(c, "bad payload")
		return
	}
	err = ctl.Orch.Translation(sid, domain.RoomID(p.RoomID), p.OriginalText, p.TranslatedText, p.SourceLanguage, p.TargetLanguage, p.Confidence, p.Timestamp)
	if err != nil {
		ctl.sendError(c, errMessage(err))
	}
}
