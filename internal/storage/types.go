package storage

import (
	"errors"
	"time"
)

var ErrDisabled = errors.New("storage disabled")

// Config configures storage.
//
// Driver values:
//   - "sqlite": SQLite database file (modernc.org/sqlite, no cgo)
//   - "memory": process-local map backend, used in tests
//
// If Driver is empty, "sqlite" is assumed.
type Config struct {
	Driver      string
	Path        string
	BusyTimeout time.Duration // sqlite only; 0 means default
}

// Recipient is a chat that opted in via /start. Upserts are last-write-wins.
type Recipient struct {
	UserID    int64
	ChatID    int64
	Username  string
	FirstName string
	AddedAt   time.Time
}

// BroadcastRecord is the persisted outcome of one broadcast run.
// Written exactly once, when the run reaches a terminal state, and never
// mutated afterward.
type BroadcastRecord struct {
	ID          int64
	InitiatorID int64
	Snippet     string
	Total       int
	Sent        int
	Failed      int
	FailedIDs   []int64
	Status      string
	StartedAt   time.Time
	FinishedAt  time.Time
}
