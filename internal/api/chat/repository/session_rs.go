package chatRepository

import (
	"HealthcareGolang/internal/entity"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultSessionTTL     = 30 * time.Minute
	defaultEvictionPeriod = 5 * time.Minute
)

type Option func(*memoryRegistry)

func WithTTL(ttl time.Duration) Option {
	return func(r *memoryRegistry) {
		r.ttl = ttl
	}
}

func WithClock(now func() time.Time) Option {
	return func(r *memoryRegistry) {
		r.now = now
	}
}

type memoryRegistry struct {
	log *logrus.Logger
	ttl time.Duration
	now func() time.Time

	mu       sync.RWMutex
	sessions map[string]*entity.ChatSession

	stop chan struct{}
}

func NewRegistry(log *logrus.Logger, opts ...Option) Registry {
	r := &memoryRegistry{
		log:      log,
		ttl:      defaultSessionTTL,
		now:      time.Now,
		sessions: make(map[string]*entity.ChatSession),
		stop:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *memoryRegistry) GetOrCreate(sessionID string) (string, *entity.ChatSession) {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	if sessionID != "" {
		if session, ok := r.sessions[sessionID]; ok && session.ExpiresAt.After(now) {
			session.LastActive = now
			session.ExpiresAt = now.Add(r.ttl)
			return sessionID, session
		}
	}

	id := uuid.NewString()
	session := &entity.ChatSession{
		ID:         id,
		Draft:      make(map[string]string),
		CreatedAt:  now,
		LastActive: now,
		ExpiresAt:  now.Add(r.ttl),
	}
	r.sessions[id] = session

	r.log.WithFields(logrus.Fields{
		"session_id": id,
	}).Debug("Chat session created")

	return id, session
}

func (r *memoryRegistry) Reset(sessionID string) {
	r.mu.RLock()
	session, ok := r.sessions[sessionID]
	r.mu.RUnlock()
	if !ok {
		return
	}

	session.Lock()
	session.ResetFlow()
	session.Unlock()
}

// EvictExpired removes idle sessions and returns how many went away. An
// expired session mid-flow is simply forgotten; the visitor gets a fresh
// session on their next message.
func (r *memoryRegistry) EvictExpired() int {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, session := range r.sessions {
		if !session.ExpiresAt.After(now) {
			delete(r.sessions, id)
			evicted++
		}
	}

	if evicted > 0 {
		r.log.WithFields(logrus.Fields{
			"evicted":   evicted,
			"remaining": len(r.sessions),
		}).Debug("Expired chat sessions evicted")
	}

	return evicted
}

func (r *memoryRegistry) StartEviction() {
	go func() {
		ticker := time.NewTicker(defaultEvictionPeriod)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				r.EvictExpired()
			case <-r.stop:
				return
			}
		}
	}()
}

func (r *memoryRegistry) StopEviction() {
	close(r.stop)
}
