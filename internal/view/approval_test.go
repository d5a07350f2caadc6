package view

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
)

func redemptionRows() []Row {
	return []Row{
		{"id": "r1", "salesman": "Ravi", "status": "Pending"},
		{"id": "r2", "salesman": "Asha", "status": "Approved"},
		{"id": "r3", "salesman": "Vikram", "status": "REJECTED"},
		{"id": "r4", "salesman": "Meena"},
	}
}

func TestTerminalRowsNeverActionable(t *testing.T) {
	for _, status := range []string{"Approved", "approved", "APPROVED", "Rejected", "rejected"} {
		if Actionable(status) {
			t.Errorf("Actionable(%q) = true, want false", status)
		}
	}
	for _, status := range []string{"Pending", "pending", "", "in review"} {
		if !Actionable(status) {
			t.Errorf("Actionable(%q) = false, want true", status)
		}
	}
}

func TestBeginRefusesTerminalRows(t *testing.T) {
	list := NewApprovalList()
	list.SetRows(redemptionRows())

	if err := list.Begin("r2"); !errors.Is(err, ErrNotActionable) {
		t.Fatalf("Begin(approved) = %v, want ErrNotActionable", err)
	}
	if err := list.Begin("r3"); !errors.Is(err, ErrNotActionable) {
		t.Fatalf("Begin(rejected, uppercase) = %v, want ErrNotActionable", err)
	}
}

func TestMissingStatusDefaultsToPending(t *testing.T) {
	list := NewApprovalList()
	list.SetRows(redemptionRows())

	if err := list.Begin("r4"); err != nil {
		t.Fatalf("Begin(no status) = %v, want nil", err)
	}
}

func TestDuplicateSubmissionBlockedPerRow(t *testing.T) {
	list := NewApprovalList()
	list.SetRows(redemptionRows())

	if err := list.Begin("r1"); err != nil {
		t.Fatalf("Begin(r1) = %v", err)
	}
	if err := list.Begin("r1"); !errors.Is(err, ErrRowBusy) {
		t.Fatalf("second Begin(r1) = %v, want ErrRowBusy", err)
	}
	// A different row stays independent.
	if err := list.Begin("r4"); err != nil {
		t.Fatalf("Begin(r4) while r1 busy = %v", err)
	}
}

func TestResolvePatchesOnlyThatRow(t *testing.T) {
	list := NewApprovalList()
	list.SetRows(redemptionRows())

	list.Begin("r1")
	list.Resolve("r1", "Approved")

	rows := list.Rows()
	if Status(rows[0]) != "Approved" {
		t.Fatalf("r1 status = %q, want Approved", Status(rows[0]))
	}
	if Status(rows[3]) != "Pending" {
		t.Fatalf("r4 status = %q, want untouched Pending", Status(rows[3]))
	}
	if list.Busy("r1") {
		t.Fatal("r1 still busy after resolve")
	}
	// Once terminal, the row stays unactionable.
	if err := list.Begin("r1"); !errors.Is(err, ErrNotActionable) {
		t.Fatalf("Begin after resolve = %v, want ErrNotActionable", err)
	}
}

func TestFailReleasesRowForRetry(t *testing.T) {
	list := NewApprovalList()
	list.SetRows(redemptionRows())

	list.Begin("r1")
	list.Fail("r1")

	if list.Busy("r1") {
		t.Fatal("row busy after Fail")
	}
	if err := list.Begin("r1"); err != nil {
		t.Fatalf("retry after Fail = %v", err)
	}
	if Status(list.Rows()[0]) != "Pending" {
		t.Fatal("status changed by Fail")
	}
}

func TestRowsDetachedFromLaterResolves(t *testing.T) {
	input := redemptionRows()
	list := NewApprovalList()
	list.SetRows(input)

	before := list.Rows()
	list.Begin("r1")
	list.Resolve("r1", "Approved")

	// Neither the caller's input nor an earlier Rows() snapshot moves.
	if Status(input[0]) != "Pending" {
		t.Fatalf("SetRows input mutated to %q", Status(input[0]))
	}
	if Status(before[0]) != "Pending" {
		t.Fatalf("earlier snapshot mutated to %q", Status(before[0]))
	}
	if Status(list.Rows()[0]) != "Approved" {
		t.Fatal("resolve not visible in a fresh snapshot")
	}
}

func TestRowsSafeToEncodeDuringResolve(t *testing.T) {
	list := NewApprovalList()
	list.SetRows(redemptionRows())

	// Listing handlers JSON-encode Rows() while approve actions resolve on
	// other goroutines; snapshots must stay readable throughout.
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			if _, err := json.Marshal(list.Rows()); err != nil {
				t.Errorf("Marshal(Rows()) = %v", err)
				return
			}
		}
	}()
	for i := 0; i < 500; i++ {
		list.Resolve("r1", "Approved")
		list.Resolve("r4", "Rejected")
	}
	wg.Wait()
}

func TestBeginUnknownRow(t *testing.T) {
	list := NewApprovalList()
	list.SetRows(redemptionRows())
	if err := list.Begin("nope"); !errors.Is(err, ErrRowNotFound) {
		t.Fatalf("Begin(unknown) = %v, want ErrRowNotFound", err)
	}
}
