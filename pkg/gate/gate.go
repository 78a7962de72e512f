// Package gate throttles users who repeatedly invoke privileged commands
// without permission. It is a nuisance throttle, not a security boundary:
// real authorization comes from the caller's guild permissions, the gate
// only shapes the reply friction and keeps a per-user attempt counter.
package gate

import (
	"sync"
	"time"
)

const (
	// maxAttempts is how many unauthorized attempts inside the window
	// trigger the escalated message
	maxAttempts = 3
	// attemptWindow is the sliding window for counting attempts
	attemptWindow = 60 * time.Second
)

// DefaultMessage is the reply for a casual unauthorized attempt
const DefaultMessage = "Hey guys, please stop trying to use commands that you can’t use thanks guys!"

// EscalatedMessage is the reply once a user keeps hammering privileged
// commands inside the window
const EscalatedMessage = "Hey guys, please stop spamming the commands if you aren’t powerful enough to use them. This is your final warning and i’m being serious guys thanks."

// Decision is the gate's verdict for one invocation
type Decision struct {
	Allowed bool
	Message string
}

type attempt struct {
	count int
	last  time.Time
}

// Gate tracks unauthorized attempts per user. State is process-local;
// a restart forgets every counter.
type Gate struct {
	mu       sync.Mutex
	attempts map[string]attempt
	now      func() time.Time
}

// New creates a Gate using the wall clock
func New() *Gate {
	return &Gate{
		attempts: make(map[string]attempt),
		now:      time.Now,
	}
}

// NewWithClock creates a Gate with an injected clock for tests
func NewWithClock(now func() time.Time) *Gate {
	return &Gate{
		attempts: make(map[string]attempt),
		now:      now,
	}
}

// Check records one invocation of a privileged command. An authorized
// caller is allowed and their counter resets. An unauthorized caller is
// denied with the default message, or the escalated one once they reach
// maxAttempts inside the window.
func (g *Gate) Check(userID string, authorized bool) Decision {
	g.mu.Lock()
	defer g.mu.Unlock()

	if authorized {
		g.attempts[userID] = attempt{}
		return Decision{Allowed: true}
	}

	now := g.now()
	a := g.attempts[userID]

	// An attempt outside the window starts a fresh count
	if now.Sub(a.last) > attemptWindow {
		a.count = 0
	}

	a.count++
	a.last = now
	g.attempts[userID] = a

	msg := DefaultMessage
	if a.count >= maxAttempts {
		msg = EscalatedMessage
	}
	return Decision{Allowed: false, Message: msg}
}

// Size returns how many users currently have an attempt record
func (g *Gate) Size() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.attempts)
}
