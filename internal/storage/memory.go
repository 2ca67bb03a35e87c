package storage

import (
	"context"
	"sort"
	"sync"
	"time"
)

// memoryStore keeps everything in process-local maps. It backs tests and the
// "memory" driver; semantics mirror the sqlite store.
type memoryStore struct {
	mu         sync.Mutex
	recipients map[int64]Recipient
	settings   map[int64][]byte
	history    []BroadcastRecord
	nextID     int64
}

// NewMemory returns an empty in-memory store.
func NewMemory() Store {
	return &memoryStore{
		recipients: map[int64]Recipient{},
		settings:   map[int64][]byte{},
		nextID:     1,
	}
}

func (s *memoryStore) Close() error { return nil }

func (s *memoryStore) UpsertRecipient(ctx context.Context, r Recipient) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.recipients[r.UserID]; ok {
		// keep the original registration time, last write wins for the rest
		r.AddedAt = prev.AddedAt
	} else if r.AddedAt.IsZero() {
		r.AddedAt = time.Now()
	}
	s.recipients[r.UserID] = r
	return nil
}

func (s *memoryStore) ListRecipients(ctx context.Context) ([]Recipient, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Recipient, 0, len(s.recipients))
	for _, r := range s.recipients {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].AddedAt.Equal(out[j].AddedAt) {
			return out[i].AddedAt.Before(out[j].AddedAt)
		}
		return out[i].UserID < out[j].UserID
	})
	return out, nil
}

func (s *memoryStore) CountRecipients(ctx context.Context) (int, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.recipients), nil
}

func (s *memoryStore) GetUserSettings(ctx context.Context, userID int64) ([]byte, bool, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.settings[userID]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return cp, true, nil
}

func (s *memoryStore) PutUserSettings(ctx context.Context, userID int64, raw []byte) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(raw))
	copy(cp, raw)
	s.settings[userID] = cp
	return nil
}

func (s *memoryStore) AppendBroadcast(ctx context.Context, rec BroadcastRecord) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.ID = s.nextID
	s.nextID++
	rec.FailedIDs = append([]int64(nil), rec.FailedIDs...)
	s.history = append(s.history, rec)
	return nil
}

func (s *memoryStore) ListBroadcasts(ctx context.Context, limit int) ([]BroadcastRecord, error) {
	_ = ctx
	if limit <= 0 {
		limit = 10
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]BroadcastRecord, 0, limit)
	for i := len(s.history) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.history[i])
	}
	return out, nil
}

func (s *memoryStore) PruneBroadcasts(ctx context.Context, before time.Time) (int64, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.history[:0]
	var removed int64
	for _, rec := range s.history {
		if rec.StartedAt.Before(before) {
			removed++
			continue
		}
		kept = append(kept, rec)
	}
	s.history = kept
	return removed, nil
}
