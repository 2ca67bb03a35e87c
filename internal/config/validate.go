package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validate checks invariants that would make the bot unusable at runtime.
// It is also installed as the Watch validator so a bad edit never commits.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if strings.TrimSpace(c.Telegram.Token) == "" {
		return errors.New("telegram.token is required")
	}
	if _, err := ParseDurationField("telegram.poll_timeout", c.Telegram.PollTimeout); err != nil {
		return err
	}
	if _, err := ParseDurationField("broadcast.send_interval", c.Broadcast.SendInterval); err != nil {
		return err
	}
	if _, err := ParseDurationField("broadcast.progress_interval", c.Broadcast.ProgressInterval); err != nil {
		return err
	}
	if c.Broadcast.ProgressEvery < 0 {
		return errors.New("broadcast.progress_every must be >= 0")
	}
	if c.Generator.MaxCount < 0 {
		return errors.New("generator.max_count must be >= 0")
	}
	if c.Retention.KeepDays < 0 {
		return errors.New("retention.keep_days must be >= 0")
	}
	switch strings.TrimSpace(strings.ToLower(c.Storage.Driver)) {
	case "", "sqlite", "memory":
	default:
		return fmt.Errorf("storage.driver: unknown driver %q", c.Storage.Driver)
	}
	return nil
}

// PollTimeout returns the effective long-poll timeout.
func (c *Config) PollTimeout() time.Duration {
	d, err := ParseDurationOrDefault("telegram.poll_timeout", c.Telegram.PollTimeout, DefaultPollTimeout)
	if err != nil {
		return DefaultPollTimeout
	}
	return d
}

// SendInterval returns the effective inter-message delay for broadcasts.
func (c *Config) SendInterval() time.Duration {
	d, err := ParseDurationOrDefault("broadcast.send_interval", c.Broadcast.SendInterval, DefaultSendInterval)
	if err != nil {
		return DefaultSendInterval
	}
	return d
}

// ProgressInterval returns the effective time floor between progress edits.
func (c *Config) ProgressInterval() time.Duration {
	d, err := ParseDurationOrDefault("broadcast.progress_interval", c.Broadcast.ProgressInterval, DefaultProgressInterval)
	if err != nil {
		return DefaultProgressInterval
	}
	return d
}

// ProgressEvery returns the effective processed-count step between progress edits.
func (c *Config) ProgressEvery() int {
	if c.Broadcast.ProgressEvery <= 0 {
		return DefaultProgressEvery
	}
	return c.Broadcast.ProgressEvery
}

// MaxCount returns the effective cap on per-request profile counts.
func (c *Config) MaxCount() int {
	if c.Generator.MaxCount <= 0 {
		return DefaultMaxCount
	}
	return c.Generator.MaxCount
}

// RetentionSchedule returns the effective cron expression for history pruning.
func (c *Config) RetentionSchedule() string {
	if s := strings.TrimSpace(c.Retention.Schedule); s != "" {
		return s
	}
	return DefaultRetentionCron
}

// RetentionKeep returns how long broadcast records are retained.
func (c *Config) RetentionKeep() time.Duration {
	days := c.Retention.KeepDays
	if days <= 0 {
		days = DefaultKeepDays
	}
	return time.Duration(days) * 24 * time.Hour
}
