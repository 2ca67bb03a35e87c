package storage

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	logx "personabot/pkg/logx"
)

//go:embed migrations.sql
var migrationsFS embed.FS

// sqlTimeFormat keeps a fixed-width fraction so lexicographic comparison in
// SQL matches time order. RFC3339Nano trims trailing zeros and would sort
// "...00.6Z" before "...00Z".
const sqlTimeFormat = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(sqlTimeFormat)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(sqlTimeFormat, s)
	if err != nil {
		// rows written before the fixed-width format
		t, err = time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return time.Time{}
		}
	}
	return t
}

type sqliteStore struct {
	db  *sql.DB
	log logx.Logger
}

func openSQLite(cfg Config, log logx.Logger) (Store, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, errors.New("sqlite path is required")
	}
	path := cfg.Path
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// SQLite prefers a small number of concurrent writers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	st := &sqliteStore{db: db, log: log}

	if cfg.BusyTimeout > 0 {
		ms := cfg.BusyTimeout.Milliseconds()
		_, _ = db.Exec(fmt.Sprintf("PRAGMA busy_timeout = %d", ms))
	}
	_, _ = db.Exec("PRAGMA journal_mode = WAL")
	_, _ = db.Exec("PRAGMA synchronous = NORMAL")

	if err := st.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return st, nil
}

func (s *sqliteStore) migrate(ctx context.Context) error {
	b, err := migrationsFS.ReadFile("migrations.sql")
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, string(b))
	return err
}

func (s *sqliteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *sqliteStore) UpsertRecipient(ctx context.Context, r Recipient) error {
	if s == nil || s.db == nil {
		return ErrDisabled
	}
	if r.AddedAt.IsZero() {
		r.AddedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO recipients(user_id, chat_id, username, first_name, added_at)
		 VALUES(?,?,?,?,?)
		 ON CONFLICT(user_id) DO UPDATE SET
		   chat_id=excluded.chat_id,
		   username=excluded.username,
		   first_name=excluded.first_name`,
		r.UserID, r.ChatID, nullStr(r.Username), nullStr(r.FirstName),
		formatTime(r.AddedAt),
	)
	return err
}

func (s *sqliteStore) ListRecipients(ctx context.Context) ([]Recipient, error) {
	if s == nil || s.db == nil {
		return nil, ErrDisabled
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, chat_id, COALESCE(username,''), COALESCE(first_name,''), added_at
		 FROM recipients ORDER BY added_at, user_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Recipient
	for rows.Next() {
		var r Recipient
		var addedAt string
		if err := rows.Scan(&r.UserID, &r.ChatID, &r.Username, &r.FirstName, &addedAt); err != nil {
			return nil, err
		}
		r.AddedAt = parseTime(addedAt)
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *sqliteStore) CountRecipients(ctx context.Context) (int, error) {
	if s == nil || s.db == nil {
		return 0, ErrDisabled
	}
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM recipients`).Scan(&n)
	return n, err
}

func (s *sqliteStore) GetUserSettings(ctx context.Context, userID int64) ([]byte, bool, error) {
	if s == nil || s.db == nil {
		return nil, false, ErrDisabled
	}
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT settings FROM user_settings WHERE user_id = ?`, userID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(raw), true, nil
}

func (s *sqliteStore) PutUserSettings(ctx context.Context, userID int64, raw []byte) error {
	if s == nil || s.db == nil {
		return ErrDisabled
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO user_settings(user_id, settings, updated_at) VALUES(?,?,?)
		 ON CONFLICT(user_id) DO UPDATE SET
		   settings=excluded.settings,
		   updated_at=excluded.updated_at`,
		userID, string(raw), formatTime(time.Now()),
	)
	return err
}

func (s *sqliteStore) AppendBroadcast(ctx context.Context, rec BroadcastRecord) error {
	if s == nil || s.db == nil {
		return ErrDisabled
	}
	ids, err := json.Marshal(idsOrEmpty(rec.FailedIDs))
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO broadcast_history(initiator_id, snippet, total, sent, failed, failed_ids, status, started_at, finished_at)
		 VALUES(?,?,?,?,?,?,?,?,?)`,
		rec.InitiatorID, rec.Snippet, rec.Total, rec.Sent, rec.Failed, string(ids), rec.Status,
		formatTime(rec.StartedAt),
		formatTime(rec.FinishedAt),
	)
	return err
}

func (s *sqliteStore) ListBroadcasts(ctx context.Context, limit int) ([]BroadcastRecord, error) {
	if s == nil || s.db == nil {
		return nil, ErrDisabled
	}
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, initiator_id, snippet, total, sent, failed, failed_ids, status, started_at, finished_at
		 FROM broadcast_history ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []BroadcastRecord
	for rows.Next() {
		var rec BroadcastRecord
		var started, finished, ids string
		if err := rows.Scan(&rec.ID, &rec.InitiatorID, &rec.Snippet, &rec.Total,
			&rec.Sent, &rec.Failed, &ids, &rec.Status, &started, &finished); err != nil {
			return nil, err
		}
		_ = json.Unmarshal([]byte(ids), &rec.FailedIDs)
		rec.StartedAt = parseTime(started)
		rec.FinishedAt = parseTime(finished)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *sqliteStore) PruneBroadcasts(ctx context.Context, before time.Time) (int64, error) {
	if s == nil || s.db == nil {
		return 0, ErrDisabled
	}
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM broadcast_history WHERE started_at < ?`,
		formatTime(before))
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func idsOrEmpty(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}

func nullStr(v string) any {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return v
}
