package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return p
}

func TestParseJSON(t *testing.T) {
	t.Parallel()

	p := writeTemp(t, "config.json", `{
		"telegram": {"token": "x:y", "admin_user_ids": [1, 2], "poll_timeout": "15s"},
		"logging": {"level": "DEBUG", "console": true, "file": {"enabled": false, "path": ""}},
		"storage": {"driver": "sqlite", "path": "./bot.db"},
		"broadcast": {"send_interval": "50ms", "progress_every": 25, "progress_interval": "3s"}
	}`)

	m := NewManager(p)
	cfg, err := m.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Telegram.Token != "x:y" {
		t.Errorf("token = %q", cfg.Telegram.Token)
	}
	if !cfg.IsAdmin(2) || cfg.IsAdmin(3) {
		t.Errorf("IsAdmin wrong: admins=%v", cfg.Telegram.AdminUserIDs)
	}
	if got := cfg.PollTimeout(); got != 15*time.Second {
		t.Errorf("PollTimeout = %v", got)
	}
	if got := m.Get(); got != cfg {
		t.Errorf("Get returned a different pointer after Load")
	}
}

func TestParseYAML(t *testing.T) {
	t.Parallel()

	p := writeTemp(t, "config.yaml", `
telegram:
  token: "x:y"
  admin_user_ids: [42]
  poll_timeout: 10s
logging:
  level: INFO
  console: true
  file:
    enabled: true
    path: ./bot.log
storage:
  driver: sqlite
  path: ./bot.db
retention:
  enabled: true
  keep_days: 30
`)

	cfg, err := NewManager(p).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.IsAdmin(42) {
		t.Errorf("admin 42 not recognized")
	}
	if !cfg.Logging.File.Enabled || cfg.Logging.File.Path != "./bot.log" {
		t.Errorf("logging file = %+v", cfg.Logging.File)
	}
	if got := cfg.RetentionKeep(); got != 30*24*time.Hour {
		t.Errorf("RetentionKeep = %v", got)
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	p := writeTemp(t, "config.json", `{"telegram": {"token": "t"}, "bogus": 1}`)
	if _, err := NewManager(p).Parse(); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestParseRejectsTrailingData(t *testing.T) {
	t.Parallel()

	p := writeTemp(t, "config.json", `{"telegram": {"token": "t"}}{"again": true}`)
	if _, err := NewManager(p).Parse(); err == nil {
		t.Fatal("expected error for trailing data")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"ok minimal", Config{Telegram: TelegramConfig{Token: "t"}}, false},
		{"missing token", Config{}, true},
		{"bad poll timeout", Config{Telegram: TelegramConfig{Token: "t", PollTimeout: "soon"}}, true},
		{"negative progress step", Config{Telegram: TelegramConfig{Token: "t"}, Broadcast: BroadcastConfig{ProgressEvery: -1}}, true},
		{"unknown storage driver", Config{Telegram: TelegramConfig{Token: "t"}, Storage: StorageConfig{Driver: "postgres"}}, true},
		{"memory driver ok", Config{Telegram: TelegramConfig{Token: "t"}, Storage: StorageConfig{Driver: "memory"}}, false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestEffectiveDefaults(t *testing.T) {
	t.Parallel()

	var cfg Config
	if got := cfg.SendInterval(); got != DefaultSendInterval {
		t.Errorf("SendInterval = %v", got)
	}
	if got := cfg.ProgressEvery(); got != DefaultProgressEvery {
		t.Errorf("ProgressEvery = %d", got)
	}
	if got := cfg.ProgressInterval(); got != DefaultProgressInterval {
		t.Errorf("ProgressInterval = %v", got)
	}
	if got := cfg.MaxCount(); got != DefaultMaxCount {
		t.Errorf("MaxCount = %d", got)
	}
	if got := cfg.RetentionSchedule(); got != DefaultRetentionCron {
		t.Errorf("RetentionSchedule = %q", got)
	}
}

func TestParseDurationField(t *testing.T) {
	t.Parallel()

	if d, err := ParseDurationField("x", "  "); err != nil || d != 0 {
		t.Errorf("blank: d=%v err=%v", d, err)
	}
	if _, err := ParseDurationField("x", "-5s"); err == nil {
		t.Error("negative duration accepted")
	}
	if d, err := ParseDurationOrDefault("x", "", 7*time.Second); err != nil || d != 7*time.Second {
		t.Errorf("default: d=%v err=%v", d, err)
	}
}
