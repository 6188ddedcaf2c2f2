// Package archive implements the durable-store collaborator. Writes
// are consumed fire-and-forget after in-memory mutation; nothing in
// the live fan-out path waits on them.
package archive

import (
	"context"

	"github.com/lingualive/coordinator/internal/core"
	"github.com/lingualive/coordinator/internal/domain"
)

// Noop is used when no store is configured.
type Noop struct{}

func (Noop) PersistRoom(ctx context.Context, snap core.RoomSnapshot) error {
	return nil
}

func (Noop) PersistMessage(ctx context.Context, roomID domain.RoomID, msg domain.Message) error {
	return nil
}
