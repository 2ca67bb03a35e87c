package broadcast

import (
	"errors"
	"sync/atomic"
	"time"
)

// Status is the lifecycle of one broadcast run.
type Status string

const (
	StatusConfirming Status = "confirming"
	StatusRunning    Status = "running"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusFailed     Status = "failed"
)

// Precondition and authorization errors. These are the only errors surfaced
// synchronously to the initiator; everything inside a run is absorbed into
// counters and logs.
var (
	ErrUnauthorized = errors.New("initiator is not an admin")
	ErrEmptyMessage = errors.New("broadcast message is empty")
	ErrNoPending    = errors.New("no staged broadcast to confirm")
	ErrNoRecipients = errors.New("no recipients registered")
	ErrRunActive    = errors.New("a broadcast is already running for this initiator")
	ErrNoActiveRun  = errors.New("no active broadcast to cancel")
)

// Config controls fan-out pacing and progress reporting. Zero values fall
// back to the defaults below.
type Config struct {
	// SendInterval is the fixed minimum delay between consecutive delivery
	// attempts. It is a deliberate floor against platform abuse limits, not
	// an adaptive limiter.
	SendInterval time.Duration
	// ProgressEvery is the processed-count step between progress edits.
	ProgressEvery int
	// ProgressInterval is the time floor between progress edits.
	ProgressInterval time.Duration
}

const (
	defaultSendInterval     = 50 * time.Millisecond
	defaultProgressEvery    = 25
	defaultProgressInterval = 3 * time.Second
)

func (c Config) withDefaults() Config {
	if c.SendInterval <= 0 {
		c.SendInterval = defaultSendInterval
	}
	if c.ProgressEvery <= 0 {
		c.ProgressEvery = defaultProgressEvery
	}
	if c.ProgressInterval <= 0 {
		c.ProgressInterval = defaultProgressInterval
	}
	return c
}

// pending is a staged payload awaiting confirm or cancel. It never expires;
// only an explicit confirm, cancel, or a newer stage replaces it.
type pending struct {
	Text     string
	StagedAt time.Time
}

// job is the in-memory state of one running fan-out. The engine owns exactly
// one per initiator; the cancel flag is set from outside the run loop, the
// counters are read by Status() while the loop advances them.
type job struct {
	initiator int64
	total     int
	startedAt time.Time

	cancelled atomic.Bool
	processed atomic.Int64
	sent      atomic.Int64
	failed    atomic.Int64
}

// Result is the terminal outcome of a run, mirrored into the persisted
// BroadcastRecord.
type Result struct {
	Status     Status
	Total      int
	Sent       int
	Failed     int
	FailedIDs  []int64
	StartedAt  time.Time
	FinishedAt time.Time
}

// Progress is a point-in-time view of a running job.
type Progress struct {
	Total     int
	Processed int
	Sent      int
	Failed    int
}
