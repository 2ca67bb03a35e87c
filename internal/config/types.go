package config

import "time"

type Config struct {
	Telegram  TelegramConfig  `json:"telegram"`
	Logging   LoggingConfig   `json:"logging"`
	Storage   StorageConfig   `json:"storage"`
	Generator GeneratorConfig `json:"generator,omitempty"`
	Broadcast BroadcastConfig `json:"broadcast,omitempty"`
	Retention RetentionConfig `json:"retention,omitempty"`
}

type TelegramConfig struct {
	Token string `json:"token"`
	// AdminUserIDs may broadcast and inspect the recipient list.
	AdminUserIDs []int64 `json:"admin_user_ids"`
	// PollTimeout is a Go duration string (e.g. "10s", "2m").
	PollTimeout string `json:"poll_timeout"`
}

type LoggingConfig struct {
	Level   string      `json:"level"`
	Console bool        `json:"console"`
	File    LoggingFile `json:"file"`
}

type LoggingFile struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"`
}

// StorageConfig controls the persistence layer.
//
// Example:
//
//	"storage": { "driver": "sqlite", "path": "./personabot.db" }
type StorageConfig struct {
	Driver      string `json:"driver"`
	Path        string `json:"path"`
	BusyTimeout string `json:"busy_timeout,omitempty"` // Go duration string (sqlite)
}

// GeneratorConfig bounds per-user generation settings.
type GeneratorConfig struct {
	// MaxCount caps the per-request profile count a user may configure.
	MaxCount int `json:"max_count,omitempty"`
}

// BroadcastConfig controls broadcast fan-out pacing and progress reporting.
//
// All durations are Go duration strings (e.g. "50ms", "3s").
type BroadcastConfig struct {
	SendInterval     string `json:"send_interval,omitempty"`
	ProgressEvery    int    `json:"progress_every,omitempty"`
	ProgressInterval string `json:"progress_interval,omitempty"`
}

// RetentionConfig controls pruning of old broadcast history records.
type RetentionConfig struct {
	Enabled bool `json:"enabled"`
	// Schedule is a cron expression; empty means the default nightly run.
	Schedule string `json:"schedule,omitempty"`
	KeepDays int    `json:"keep_days,omitempty"`
}

// Defaults applied by Normalize for omitted fields.
const (
	DefaultPollTimeout      = 10 * time.Second
	DefaultMaxCount         = 10
	DefaultSendInterval     = 50 * time.Millisecond
	DefaultProgressEvery    = 25
	DefaultProgressInterval = 3 * time.Second
	DefaultRetentionCron    = "0 4 * * *"
	DefaultKeepDays         = 90
)

// IsAdmin reports whether the user id is in the configured admin list.
func (c *Config) IsAdmin(userID int64) bool {
	if c == nil {
		return false
	}
	for _, id := range c.Telegram.AdminUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}
