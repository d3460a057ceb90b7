package chatRepository_test

import (
	"testing"
	"time"

	chatRepository "HealthcareGolang/internal/api/chat/repository"
	"HealthcareGolang/internal/entity"
	"HealthcareGolang/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateReturnsSameSession(t *testing.T) {
	r := chatRepository.NewRegistry(log.NewLogger())

	id, session := r.GetOrCreate("")
	require.NotEmpty(t, id)
	require.NotNil(t, session)

	again, same := r.GetOrCreate(id)
	assert.Equal(t, id, again)
	assert.Same(t, session, same)
}

func TestGetOrCreateUnknownIDMintsFreshSession(t *testing.T) {
	r := chatRepository.NewRegistry(log.NewLogger())

	id, _ := r.GetOrCreate("no-such-session")
	assert.NotEqual(t, "no-such-session", id)
	assert.NotEmpty(t, id)
}

func TestResetClearsFlowState(t *testing.T) {
	r := chatRepository.NewRegistry(log.NewLogger())

	id, session := r.GetOrCreate("")
	session.Flow = entity.FlowBooking
	session.Step = "email"
	session.Draft["name"] = "Jane Doe"
	session.OfferedDates = []string{"2026-03-11"}

	r.Reset(id)

	assert.Equal(t, entity.FlowNone, session.Flow)
	assert.Empty(t, session.Step)
	assert.Empty(t, session.Draft)
	assert.Nil(t, session.OfferedDates)
}

func TestEvictExpired(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	r := chatRepository.NewRegistry(log.NewLogger(), chatRepository.WithTTL(10*time.Minute), chatRepository.WithClock(clock))

	staleID, _ := r.GetOrCreate("")

	now = now.Add(5 * time.Minute)
	freshID, _ := r.GetOrCreate("")
	require.NotEqual(t, staleID, freshID)

	// The stale session's window has elapsed, the fresh one is still alive.
	now = now.Add(6 * time.Minute)
	assert.Equal(t, 1, r.EvictExpired())

	gotID, _ := r.GetOrCreate(staleID)
	assert.NotEqual(t, staleID, gotID)

	gotID, _ = r.GetOrCreate(freshID)
	assert.Equal(t, freshID, gotID)
}

func TestTouchExtendsExpiry(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	r := chatRepository.NewRegistry(log.NewLogger(), chatRepository.WithTTL(10*time.Minute), chatRepository.WithClock(clock))

	id, _ := r.GetOrCreate("")

	// Keep touching the session just inside the window.
	for i := 0; i < 3; i++ {
		now = now.Add(9 * time.Minute)
		gotID, _ := r.GetOrCreate(id)
		require.Equal(t, id, gotID)
	}

	assert.Equal(t, 0, r.EvictExpired())
}
