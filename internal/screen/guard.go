package screen

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	tokenTTL             = 30 * time.Minute
	guardCleanupInterval = 5 * time.Minute
)

var (
	// ErrUnknownToken is returned for tokens never issued or already expired.
	ErrUnknownToken = errors.New("unknown submit token")

	// ErrDuplicateSubmit is returned when a token is presented a second time.
	ErrDuplicateSubmit = errors.New("form already submitted")
)

type tokenState int

const (
	tokenIssued tokenState = iota
	tokenInFlight
	tokenDone
)

type tokenEntry struct {
	state   tokenState
	expires time.Time
}

// Guard hands out single-use submit tokens. A form rendered with a token can
// be submitted once; later submissions with the same token are rejected
// whether the first is still running or already finished.
type Guard struct {
	ttl         time.Duration
	tokens      map[string]*tokenEntry
	mu          sync.Mutex
	cleanupDone chan struct{}
	closeOnce   sync.Once
	now         func() time.Time
}

// NewGuard creates a guard and starts its cleanup loop.
//
// Close must be called on shutdown to stop the cleanup goroutine.
func NewGuard() *Guard {
	g := &Guard{
		ttl:         tokenTTL,
		tokens:      make(map[string]*tokenEntry),
		cleanupDone: make(chan struct{}),
		now:         time.Now,
	}
	go g.cleanupLoop()
	return g
}

// Issue returns a fresh token for a rendered form.
func (g *Guard) Issue() string {
	token := uuid.NewString()

	g.mu.Lock()
	defer g.mu.Unlock()
	g.tokens[token] = &tokenEntry{state: tokenIssued, expires: g.now().Add(g.ttl)}
	return token
}

// Begin claims token for a submission. The returned release function must be
// called once the submission finishes. When ok is false the submission has to
// be allowed again with a fresh form, so the token is returned to the issued
// state.
func (g *Guard) Begin(token string) (release func(ok bool), err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	entry, found := g.tokens[token]
	if !found || g.now().After(entry.expires) {
		return nil, ErrUnknownToken
	}
	if entry.state != tokenIssued {
		return nil, ErrDuplicateSubmit
	}
	entry.state = tokenInFlight

	return func(ok bool) {
		g.mu.Lock()
		defer g.mu.Unlock()
		if ok {
			entry.state = tokenDone
		} else {
			entry.state = tokenIssued
		}
	}, nil
}

func (g *Guard) cleanupLoop() {
	ticker := time.NewTicker(guardCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			g.cleanup()
		case <-g.cleanupDone:
			return
		}
	}
}

// cleanup drops expired tokens.
func (g *Guard) cleanup() {
	now := g.now()

	g.mu.Lock()
	defer g.mu.Unlock()

	removed := 0
	for token, entry := range g.tokens {
		if now.After(entry.expires) {
			delete(g.tokens, token)
			removed++
		}
	}
	if removed > 0 {
		slog.Debug("submit tokens expired", "removed", removed, "remaining", len(g.tokens))
	}
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (g *Guard) Close() {
	g.closeOnce.Do(func() {
		close(g.cleanupDone)
	})
}
