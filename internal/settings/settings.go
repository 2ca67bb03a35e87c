package settings

import (
	"context"
	"encoding/json"
	"slices"
	"strings"

	"personabot/internal/generator"
	"personabot/internal/storage"
	logx "personabot/pkg/logx"
)

// Settings is one user's generation preferences.
//
// Zero-ish values mean "no preference": empty Gender is any gender, an empty
// Nationalities list is all locales, empty field lists mean every field.
type Settings struct {
	Gender        string   `json:"gender,omitempty"` // "male", "female" or ""
	Nationalities []string `json:"nationalities,omitempty"`
	PasswordSpec  string   `json:"password_spec,omitempty"`
	Count         int      `json:"count"`
	IncludeFields []string `json:"include_fields,omitempty"`
	ExcludeFields []string `json:"exclude_fields,omitempty"`
}

// Fields that can be toggled in the settings menu. Order is the display order.
var AvailableFields = []string{
	"name", "gender", "address", "email", "phone", "birth_date",
	"physical", "education", "occupation", "languages", "hobbies",
	"marital_status", "social_media", "login", "country",
}

// Default returns the settings a user gets before saving anything.
func Default() Settings {
	return Settings{
		PasswordSpec: generator.DefaultPasswordSpec,
		Count:        1,
	}
}

// Normalize clamps and filters a settings value so anything read back from
// storage (or built from callbacks) is safe to use.
func (s Settings) Normalize(maxCount int) Settings {
	if s.Gender != "male" && s.Gender != "female" {
		s.Gender = ""
	}
	if s.Count < 1 {
		s.Count = 1
	}
	if maxCount > 0 && s.Count > maxCount {
		s.Count = maxCount
	}
	if strings.TrimSpace(s.PasswordSpec) == "" {
		s.PasswordSpec = generator.DefaultPasswordSpec
	}

	known := generator.Locales()
	var nats []string
	for _, n := range s.Nationalities {
		n = strings.ToUpper(strings.TrimSpace(n))
		if slices.Contains(known, n) && !slices.Contains(nats, n) {
			nats = append(nats, n)
		}
	}
	s.Nationalities = nats

	s.IncludeFields = filterFields(s.IncludeFields)
	s.ExcludeFields = filterFields(s.ExcludeFields)
	return s
}

func filterFields(in []string) []string {
	var out []string
	for _, f := range in {
		f = strings.ToLower(strings.TrimSpace(f))
		if slices.Contains(AvailableFields, f) && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// LocalePool is the set of locales generation may draw from.
func (s Settings) LocalePool() []string {
	if len(s.Nationalities) > 0 {
		return s.Nationalities
	}
	return generator.Locales()
}

// FieldEnabled reports whether a profile field should appear in output.
// The include list (when present) is an allowlist; excludes always win.
func (s Settings) FieldEnabled(name string) bool {
	if slices.Contains(s.ExcludeFields, name) {
		return false
	}
	if len(s.IncludeFields) == 0 {
		return true
	}
	return slices.Contains(s.IncludeFields, name)
}

// Service loads and stores per-user settings as JSON blobs.
type Service struct {
	store    storage.Store
	log      logx.Logger
	maxCount int
}

func NewService(store storage.Store, maxCount int, log logx.Logger) *Service {
	if log.IsZero() {
		log = logx.Nop()
	}
	return &Service{store: store, log: log, maxCount: maxCount}
}

// Get returns the user's settings, falling back to defaults when the user has
// none saved or the stored blob does not parse.
func (s *Service) Get(ctx context.Context, userID int64) Settings {
	raw, ok, err := s.store.GetUserSettings(ctx, userID)
	if err != nil {
		s.log.Warn("settings load failed", logx.Int64("user_id", userID), logx.Err(err))
		return Default()
	}
	if !ok {
		return Default()
	}
	var st Settings
	if err := json.Unmarshal(raw, &st); err != nil {
		s.log.Warn("settings blob corrupt; using defaults", logx.Int64("user_id", userID), logx.Err(err))
		return Default()
	}
	return st.Normalize(s.maxCount)
}

// Put normalizes and persists the settings.
func (s *Service) Put(ctx context.Context, userID int64, st Settings) error {
	st = st.Normalize(s.maxCount)
	raw, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return s.store.PutUserSettings(ctx, userID, raw)
}

// Reset restores defaults for the user.
func (s *Service) Reset(ctx context.Context, userID int64) error {
	return s.Put(ctx, userID, Default())
}

// MaxCount exposes the configured per-request cap.
func (s *Service) MaxCount() int { return s.maxCount }
