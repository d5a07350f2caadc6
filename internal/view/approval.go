package view

import (
	"errors"
	"maps"
	"strings"
	"sync"
)

var (
	// ErrNotActionable is returned for rows already in a terminal status.
	ErrNotActionable = errors.New("row is not actionable")
	// ErrRowBusy is returned when the same row already has an action in flight.
	ErrRowBusy = errors.New("action already in flight for row")
	// ErrRowNotFound is returned for unknown row ids.
	ErrRowNotFound = errors.New("row not found")
)

// ApprovalList tracks rows carrying a status and two terminal actions.
// Approve/reject outcomes are patched into local state only; the list is
// never refetched after an action. A per-row in-flight mark blocks
// duplicate submission without freezing the rest of the list.
type ApprovalList struct {
	mu       sync.Mutex
	rows     []Row
	inFlight map[string]bool
}

func NewApprovalList() *ApprovalList {
	return &ApprovalList{inFlight: make(map[string]bool)}
}

// SetRows replaces the list with a fresh snapshot. The row maps are
// cloned so the list owns the only copies it patches; callers keeping the
// input cannot observe later status changes. In-flight marks are dropped;
// a refresh supersedes whatever was pending.
func (l *ApprovalList) SetRows(rows []Row) {
	cloned := cloneRows(rows)
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rows = cloned
	l.inFlight = make(map[string]bool)
}

// Rows returns a detached copy of the current rows. Every row map is
// cloned under the lock, so the result is safe to read or JSON-encode
// while Resolve patches statuses concurrently.
func (l *ApprovalList) Rows() []Row {
	l.mu.Lock()
	defer l.mu.Unlock()
	return cloneRows(l.rows)
}

func cloneRows(rows []Row) []Row {
	out := make([]Row, len(rows))
	for i, row := range rows {
		out[i] = maps.Clone(row)
	}
	return out
}

// Status returns a row's status, defaulting to "Pending" when absent.
func Status(row Row) string {
	if s, ok := row["status"].(string); ok && s != "" {
		return s
	}
	return "Pending"
}

// Actionable reports whether a status still accepts approve/reject.
// "Approved" and "Rejected" are terminal regardless of case.
func Actionable(status string) bool {
	switch strings.ToLower(status) {
	case "approved", "rejected":
		return false
	}
	return true
}

// Begin marks a row as having an action in flight. It refuses unknown
// rows, terminal rows, and rows already submitting.
func (l *ApprovalList) Begin(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	row := l.find(id)
	if row == nil {
		return ErrRowNotFound
	}
	if !Actionable(Status(row)) {
		return ErrNotActionable
	}
	if l.inFlight[id] {
		return ErrRowBusy
	}
	l.inFlight[id] = true
	return nil
}

// Resolve patches only the acted row's status and releases its in-flight
// mark. No other row is touched and nothing is refetched.
func (l *ApprovalList) Resolve(id, status string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if row := l.find(id); row != nil {
		row["status"] = status
	}
	delete(l.inFlight, id)
}

// Fail releases the in-flight mark leaving the status untouched, so the
// user can retry.
func (l *ApprovalList) Fail(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.inFlight, id)
}

// Busy reports whether a row currently has an action in flight.
func (l *ApprovalList) Busy(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inFlight[id]
}

func (l *ApprovalList) find(id string) Row {
	for _, row := range l.rows {
		if RowID(row) == id {
			return row
		}
	}
	return nil
}

// RowID returns a row's identifier, accepting both the Mongo-style "_id"
// the upstream emits and a plain "id".
func RowID(row Row) string {
	if v, ok := row["_id"].(string); ok && v != "" {
		return v
	}
	if v, ok := row["id"].(string); ok {
		return v
	}
	return ""
}
