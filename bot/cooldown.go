package bot

import (
	"sync"
	"time"
)

// DefaultCooldown is the per-user cooldown window applied to commands that do
// not declare their own.
const DefaultCooldown = 3 * time.Second

type cooldownKey struct {
	command string
	userID  string
}

// CooldownTracker tracks per-(command, user) cooldown windows. An entry exists
// only while its window is active and is removed exactly once by a scheduled
// eviction at the window length; lookups never delete. Rejected attempts never
// extend or refresh a window.
type CooldownTracker struct {
	mu     sync.Mutex
	expiry map[cooldownKey]time.Time
	timers map[cooldownKey]*time.Timer
	closed bool
}

// NewCooldownTracker creates an empty cooldown tracker
func NewCooldownTracker() *CooldownTracker {
	return &CooldownTracker{
		expiry: make(map[cooldownKey]time.Time),
		timers: make(map[cooldownKey]*time.Timer),
	}
}

// Active reports whether (command, user) is inside a live cooldown window and
// returns the window's expiry.
func (t *CooldownTracker) Active(command, userID string, now time.Time) (time.Time, bool) {
	key := cooldownKey{command: command, userID: userID}

	t.mu.Lock()
	defer t.mu.Unlock()

	expiry, ok := t.expiry[key]
	if !ok || !now.Before(expiry) {
		return time.Time{}, false
	}
	return expiry, true
}

// Begin records a fresh cooldown window for (command, user) and schedules its
// eviction at exactly the window length. The caller is expected to have
// checked Active first; an existing entry is replaced and its timer cancelled.
func (t *CooldownTracker) Begin(command, userID string, window time.Duration) time.Time {
	key := cooldownKey{command: command, userID: userID}
	expiry := time.Now().Add(window)

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return expiry
	}
	if old, ok := t.timers[key]; ok {
		old.Stop()
	}
	t.expiry[key] = expiry
	t.timers[key] = time.AfterFunc(window, func() {
		t.evict(key, expiry)
	})
	return expiry
}

// evict removes one entry once its window elapses. A timer can fire while a
// replacement Begin holds the lock, in which case Stop came too late and this
// call races the fresh window; the expiry check keeps a stale timer from
// destroying an entry it did not create.
func (t *CooldownTracker) evict(key cooldownKey, expiry time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	current, ok := t.expiry[key]
	if !ok || !current.Equal(expiry) {
		return
	}
	delete(t.expiry, key)
	delete(t.timers, key)
}

// Close cancels all outstanding eviction timers. Used on shutdown and in
// tests so timers never leak across process lifecycles.
func (t *CooldownTracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.closed = true
	for key, timer := range t.timers {
		timer.Stop()
		delete(t.timers, key)
		delete(t.expiry, key)
	}
}
