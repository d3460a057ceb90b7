package chatRepository

import (
	"HealthcareGolang/internal/entity"
)

// Registry owns the live chat sessions. GetOrCreate returns the effective
// session id: an unknown or expired id silently becomes a fresh session, so a
// client holding a stale id just starts over at the top level.
type Registry interface {
	GetOrCreate(sessionID string) (string, *entity.ChatSession)
	Reset(sessionID string)
	EvictExpired() int
	StartEviction()
	StopEviction()
}
