package database

import (
	"testing"
	"time"
)

func TestAddWarningRecordsReasonAndDate(t *testing.T) {
	d := testDB(t)

	if err := d.AddWarning(1, "posting spoilers"); err != nil {
		t.Fatalf("AddWarning() returned error: %v", err)
	}

	warns, err := d.ListWarnings(1)
	if err != nil {
		t.Fatalf("ListWarnings() returned error: %v", err)
	}

	if len(warns) != 1 {
		t.Fatalf("ListWarnings() returned %d records, want 1", len(warns))
	}

	if warns[0].Reason != "posting spoilers" {
		t.Errorf("Reason = %v, want %v", warns[0].Reason, "posting spoilers")
	}

	today := time.Now().UTC().Format(dateLayout)
	if warns[0].Date != today {
		t.Errorf("Date = %v, want %v", warns[0].Date, today)
	}
}

func TestAddWarningDefaultsReason(t *testing.T) {
	d := testDB(t)

	if err := d.AddWarning(2, ""); err != nil {
		t.Fatalf("AddWarning() returned error: %v", err)
	}

	warns, _ := d.ListWarnings(2)
	if len(warns) != 1 {
		t.Fatalf("ListWarnings() returned %d records, want 1", len(warns))
	}
	if warns[0].Reason != DefaultWarnReason {
		t.Errorf("Reason = %v, want %v", warns[0].Reason, DefaultWarnReason)
	}
}

func TestListWarningsEmptyIsNotAnError(t *testing.T) {
	d := testDB(t)

	warns, err := d.ListWarnings(500)
	if err != nil {
		t.Fatalf("ListWarnings() returned error: %v", err)
	}
	if len(warns) != 0 {
		t.Errorf("ListWarnings() on unknown user returned %d records, want 0", len(warns))
	}
}

func TestRemoveLastWarning(t *testing.T) {
	d := testDB(t)

	for _, reason := range []string{"w1", "w2", "w3"} {
		if err := d.AddWarning(4, reason); err != nil {
			t.Fatalf("AddWarning() returned error: %v", err)
		}
	}

	ok, err := d.RemoveLastWarning(4)
	if err != nil {
		t.Fatalf("RemoveLastWarning() returned error: %v", err)
	}
	if !ok {
		t.Error("RemoveLastWarning() = false, want true")
	}

	warns, _ := d.ListWarnings(4)
	if len(warns) != 2 {
		t.Fatalf("ListWarnings() returned %d records, want 2", len(warns))
	}
	if warns[0].Reason != "w1" || warns[1].Reason != "w2" {
		t.Errorf("remaining warnings = [%s, %s], want [w1, w2]", warns[0].Reason, warns[1].Reason)
	}

	// A user with no warnings: nothing deleted
	ok, err = d.RemoveLastWarning(123)
	if err != nil {
		t.Fatalf("RemoveLastWarning() returned error: %v", err)
	}
	if ok {
		t.Error("RemoveLastWarning() on empty history = true, want false")
	}
}

func TestClearWarnings(t *testing.T) {
	d := testDB(t)

	for i := 0; i < 3; i++ {
		if err := d.AddWarning(6, "repeat offense"); err != nil {
			t.Fatalf("AddWarning() returned error: %v", err)
		}
	}

	removed, err := d.ClearWarnings(6)
	if err != nil {
		t.Fatalf("ClearWarnings() returned error: %v", err)
	}
	if removed != 3 {
		t.Errorf("ClearWarnings() = %v, want 3", removed)
	}

	warns, _ := d.ListWarnings(6)
	if len(warns) != 0 {
		t.Errorf("ListWarnings() after clear returned %d records, want 0", len(warns))
	}

	// Clearing again removes nothing
	removed, err = d.ClearWarnings(6)
	if err != nil {
		t.Fatalf("ClearWarnings() returned error: %v", err)
	}
	if removed != 0 {
		t.Errorf("second ClearWarnings() = %v, want 0", removed)
	}
}

func TestTopWarningsOrdering(t *testing.T) {
	d := testDB(t)

	counts := map[int64]int{1: 3, 2: 1, 3: 3, 4: 5}
	for user, n := range counts {
		for i := 0; i < n; i++ {
			if err := d.AddWarning(user, "noise"); err != nil {
				t.Fatalf("AddWarning() returned error: %v", err)
			}
		}
	}

	top, err := d.TopWarnings(3)
	if err != nil {
		t.Fatalf("TopWarnings() returned error: %v", err)
	}

	if len(top) != 3 {
		t.Fatalf("TopWarnings(3) returned %d entries, want 3", len(top))
	}

	// 4 has the most; 1 and 3 tie and order by user id
	wantUsers := []int64{4, 1, 3}
	wantCounts := []int{5, 3, 3}
	for i := range wantUsers {
		if top[i].UserID != wantUsers[i] || top[i].Count != wantCounts[i] {
			t.Errorf("TopWarnings()[%d] = (%d, %d), want (%d, %d)",
				i, top[i].UserID, top[i].Count, wantUsers[i], wantCounts[i])
		}
	}
}
