package audit

import (
	"context"

	appprod "github.com/kardelen/uretim-api/internal/application/production"
	"github.com/kardelen/uretim-api/pkg/logger"
)

var _ appprod.AuditSink = (*Sink)(nil)

// Sink denetim kayıtlarını yapılandırılmış log akışına yazar. Fire-and-forget:
// kayıt ana işlemin sonucunu asla etkilemez.
type Sink struct {
	log *logger.Logger
}

// NewSink denetim kanalını kurar.
func NewSink(log *logger.Logger) *Sink {
	return &Sink{log: log}
}

// Record bir denetim olayını yazar.
func (s *Sink) Record(_ context.Context, action, entityType, entityID, detail, actorID string) {
	s.log.Info().
		Str("audit", "true").
		Str("action", action).
		Str("entity_type", entityType).
		Str("entity_id", entityID).
		Str("actor_id", actorID).
		Msg(detail)
}
