package storage

import (
	"context"
	"errors"
	"strings"
	"time"

	logx "personabot/pkg/logx"
)

// Store is the persistence API used by handlers and the broadcast engine.
type Store interface {
	UpsertRecipient(ctx context.Context, r Recipient) error
	ListRecipients(ctx context.Context) ([]Recipient, error)
	CountRecipients(ctx context.Context) (int, error)

	// Per-user generation settings as an opaque JSON blob; the settings
	// package owns the schema.
	GetUserSettings(ctx context.Context, userID int64) (raw []byte, ok bool, err error)
	PutUserSettings(ctx context.Context, userID int64, raw []byte) error

	AppendBroadcast(ctx context.Context, rec BroadcastRecord) error
	ListBroadcasts(ctx context.Context, limit int) ([]BroadcastRecord, error)
	PruneBroadcasts(ctx context.Context, before time.Time) (int64, error)

	Close() error
}

// Open initializes the configured store.
func Open(cfg Config, log logx.Logger) (Store, error) {
	if log.IsZero() {
		log = logx.Nop()
	}

	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))
	switch driver {
	case "", "sqlite", "sqlite3":
		return openSQLite(cfg, log)
	case "memory":
		return NewMemory(), nil
	default:
		return nil, errors.New("unknown storage driver: " + driver)
	}
}
