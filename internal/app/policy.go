package app

import "github.com/lingualive/coordinator/internal/core"

type BackpressureAction int

const (
	NoAction BackpressureAction = iota
	DropEvent
	KickMember
)

// Policy decides what to do with a member whose sink rejected a frame.
type Policy interface {
	OnBackPressure(roomID string, sid core.SessionID) BackpressureAction
}

// SimplePolicy kicks slow consumers: their connection context is
// canceled and cleanup runs through the normal disconnect path.
type SimplePolicy struct{}

func (SimplePolicy) OnBackPressure(roomID string, sid core.SessionID) BackpressureAction {
	return KickMember
}
