package database

import (
	"path/filepath"
	"sync"
	"testing"
)

// testDB opens a fresh ledger in a temporary directory
func testDB(t *testing.T) *Database {
	t.Helper()

	d := New(filepath.Join(t.TempDir(), "fp.sqlite"))
	if err := d.Connect(); err != nil {
		t.Fatalf("Connect() returned error: %v", err)
	}
	t.Cleanup(func() { d.Disconnect() })
	return d
}

func TestGetFPDefaultsToZero(t *testing.T) {
	d := testDB(t)

	fp, err := d.GetFP(42)
	if err != nil {
		t.Fatalf("GetFP() returned error: %v", err)
	}
	if fp != 0 {
		t.Errorf("GetFP() on unknown user = %v, want 0", fp)
	}
}

func TestSetFPOverwrites(t *testing.T) {
	d := testDB(t)

	if err := d.SetFP(1, 10); err != nil {
		t.Fatalf("SetFP() returned error: %v", err)
	}
	if err := d.SetFP(1, -3); err != nil {
		t.Fatalf("SetFP() returned error: %v", err)
	}

	fp, _ := d.GetFP(1)
	if fp != -3 {
		t.Errorf("GetFP() after overwrite = %v, want -3", fp)
	}
}

func TestApplyDeltaMatchesSet(t *testing.T) {
	d := testDB(t)

	// apply_delta(u, a) then apply_delta(u, b) must equal set(u, a+b)
	// starting from zero
	if _, err := d.ApplyDelta(7, 5); err != nil {
		t.Fatalf("ApplyDelta() returned error: %v", err)
	}
	got, err := d.ApplyDelta(7, -12)
	if err != nil {
		t.Fatalf("ApplyDelta() returned error: %v", err)
	}
	if got != -7 {
		t.Errorf("ApplyDelta() final = %v, want -7", got)
	}

	if err := d.SetFP(8, 5+-12); err != nil {
		t.Fatalf("SetFP() returned error: %v", err)
	}
	want, _ := d.GetFP(8)
	if got != want {
		t.Errorf("delta path = %v, set path = %v, want equal", got, want)
	}
}

func TestApplyDeltaConcurrent(t *testing.T) {
	d := testDB(t)

	// Concurrent deltas on the same user must not lose updates
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := d.ApplyDelta(99, 1); err != nil {
				t.Errorf("ApplyDelta() returned error: %v", err)
			}
		}()
	}
	wg.Wait()

	fp, _ := d.GetFP(99)
	if fp != 20 {
		t.Errorf("GetFP() after 20 concurrent +1 deltas = %v, want 20", fp)
	}
}

func TestTopFPOrdering(t *testing.T) {
	d := testDB(t)

	// Nine users, two sharing the top score
	scores := map[int64]int{
		1: 50, 2: 50, 3: 10, 4: 40, 5: 30,
		6: 20, 7: 5, 8: 1, 9: 0,
	}
	for user, fp := range scores {
		if err := d.SetFP(user, fp); err != nil {
			t.Fatalf("SetFP() returned error: %v", err)
		}
	}

	top, err := d.TopFP(5)
	if err != nil {
		t.Fatalf("TopFP() returned error: %v", err)
	}

	if len(top) != 5 {
		t.Fatalf("TopFP(5) returned %d entries, want 5", len(top))
	}

	wantOrder := []int64{1, 2, 4, 5, 6}
	for i, want := range wantOrder {
		if top[i].UserID != want {
			t.Errorf("TopFP()[%d].UserID = %v, want %v", i, top[i].UserID, want)
		}
	}
}

func TestRemoveUserPurgesBothTables(t *testing.T) {
	d := testDB(t)

	if err := d.SetFP(3, 12); err != nil {
		t.Fatalf("SetFP() returned error: %v", err)
	}
	if err := d.AddWarning(3, "spam"); err != nil {
		t.Fatalf("AddWarning() returned error: %v", err)
	}

	if err := d.RemoveUser(3); err != nil {
		t.Fatalf("RemoveUser() returned error: %v", err)
	}

	fp, _ := d.GetFP(3)
	if fp != 0 {
		t.Errorf("GetFP() after RemoveUser = %v, want 0", fp)
	}

	warns, _ := d.ListWarnings(3)
	if len(warns) != 0 {
		t.Errorf("ListWarnings() after RemoveUser returned %d records, want 0", len(warns))
	}
}
