package gate

import (
	"testing"
	"time"
)

// testClock returns a controllable clock starting at a fixed instant
func testClock() (func() time.Time, func(time.Duration)) {
	current := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	now := func() time.Time { return current }
	advance := func(d time.Duration) { current = current.Add(d) }
	return now, advance
}

func TestAuthorizedCallIsAllowed(t *testing.T) {
	now, _ := testClock()
	g := NewWithClock(now)

	d := g.Check("user", true)
	if !d.Allowed {
		t.Error("Check() with authorization should allow")
	}
	if d.Message != "" {
		t.Errorf("Check() message = %q, want empty", d.Message)
	}
}

func TestEscalationOnThirdAttempt(t *testing.T) {
	now, advance := testClock()
	g := NewWithClock(now)

	// First two attempts inside the window get the default message
	for i := 1; i <= 2; i++ {
		d := g.Check("user", false)
		if d.Allowed {
			t.Fatalf("attempt %d was allowed", i)
		}
		if d.Message != DefaultMessage {
			t.Errorf("attempt %d message = %q, want default", i, d.Message)
		}
		advance(5 * time.Second)
	}

	// Third attempt escalates
	d := g.Check("user", false)
	if d.Allowed {
		t.Fatal("third attempt was allowed")
	}
	if d.Message != EscalatedMessage {
		t.Errorf("third attempt message = %q, want escalated", d.Message)
	}
}

func TestWindowExpiryResetsCount(t *testing.T) {
	now, advance := testClock()
	g := NewWithClock(now)

	g.Check("user", false)
	g.Check("user", false)

	// Past the 60s window the user behaves like attempt 1 again
	advance(61 * time.Second)

	d := g.Check("user", false)
	if d.Message != DefaultMessage {
		t.Errorf("post-window message = %q, want default", d.Message)
	}

	// And two more inside the new window escalate again
	advance(time.Second)
	g.Check("user", false)
	advance(time.Second)
	if d := g.Check("user", false); d.Message != EscalatedMessage {
		t.Errorf("message after three post-window attempts = %q, want escalated", d.Message)
	}
}

func TestAuthorizationResetsCounter(t *testing.T) {
	now, advance := testClock()
	g := NewWithClock(now)

	g.Check("user", false)
	g.Check("user", false)

	// Gaining permission wipes the slate
	g.Check("user", true)

	advance(time.Second)
	d := g.Check("user", false)
	if d.Message != DefaultMessage {
		t.Errorf("message after reset = %q, want default", d.Message)
	}
}

func TestCountersAreIndependentPerUser(t *testing.T) {
	now, _ := testClock()
	g := NewWithClock(now)

	g.Check("a", false)
	g.Check("a", false)
	g.Check("a", false)

	if d := g.Check("b", false); d.Message != DefaultMessage {
		t.Errorf("user b message = %q, want default", d.Message)
	}

	if g.Size() != 2 {
		t.Errorf("Size() = %d, want 2", g.Size())
	}
}

func TestEscalationStaysAfterThreshold(t *testing.T) {
	now, advance := testClock()
	g := NewWithClock(now)

	for i := 0; i < 3; i++ {
		g.Check("user", false)
		advance(time.Second)
	}

	// Fourth and later attempts inside the window stay escalated
	if d := g.Check("user", false); d.Message != EscalatedMessage {
		t.Errorf("fourth attempt message = %q, want escalated", d.Message)
	}
}
