package domain

import "errors"

// State errors: the caller acted on a room it has not joined, or asked
// about a connection that was never registered. They are reported to the
// originating connection only and never tear it down.
var (
	ErrRoomNotFound  = errors.New("room not found")
	ErrNotInRoom     = errors.New("not in room")
	ErrNotRegistered = errors.New("connection not registered")
)

// ReasonDisconnected tags a user-left notification caused by the
// transport dropping rather than an explicit leave.
const ReasonDisconnected = "disconnected"
