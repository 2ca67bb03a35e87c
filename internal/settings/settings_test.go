package settings

import (
	"context"
	"testing"

	"personabot/internal/generator"
	"personabot/internal/storage"
	logx "personabot/pkg/logx"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   Settings
		want Settings
	}{
		{
			"empty gets defaults",
			Settings{},
			Settings{PasswordSpec: generator.DefaultPasswordSpec, Count: 1},
		},
		{
			"bad gender cleared",
			Settings{Gender: "other", Count: 2, PasswordSpec: "8,lower"},
			Settings{Count: 2, PasswordSpec: "8,lower"},
		},
		{
			"count clamped to cap",
			Settings{Count: 500, PasswordSpec: "8,lower"},
			Settings{Count: 10, PasswordSpec: "8,lower"},
		},
		{
			"unknown nationalities dropped, dupes removed",
			Settings{Count: 1, PasswordSpec: "8,lower", Nationalities: []string{"us", "US", "XX", "de"}},
			Settings{Count: 1, PasswordSpec: "8,lower", Nationalities: []string{"US", "DE"}},
		},
		{
			"unknown fields dropped",
			Settings{Count: 1, PasswordSpec: "8,lower", IncludeFields: []string{"email", "bogus", "PHONE"}},
			Settings{Count: 1, PasswordSpec: "8,lower", IncludeFields: []string{"email", "phone"}},
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := tc.in.Normalize(10)
			if got.Gender != tc.want.Gender || got.Count != tc.want.Count || got.PasswordSpec != tc.want.PasswordSpec {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
			if !equalStrings(got.Nationalities, tc.want.Nationalities) {
				t.Errorf("nationalities = %v, want %v", got.Nationalities, tc.want.Nationalities)
			}
			if !equalStrings(got.IncludeFields, tc.want.IncludeFields) {
				t.Errorf("include fields = %v, want %v", got.IncludeFields, tc.want.IncludeFields)
			}
		})
	}
}

func TestFieldEnabled(t *testing.T) {
	t.Parallel()

	s := Settings{}
	if !s.FieldEnabled("email") {
		t.Error("no lists should allow everything")
	}

	s = Settings{IncludeFields: []string{"email", "phone"}}
	if !s.FieldEnabled("email") || s.FieldEnabled("address") {
		t.Error("include list should be an allowlist")
	}

	s = Settings{IncludeFields: []string{"email"}, ExcludeFields: []string{"email"}}
	if s.FieldEnabled("email") {
		t.Error("exclude must win over include")
	}
}

func TestLocalePool(t *testing.T) {
	t.Parallel()

	if got := (Settings{}).LocalePool(); len(got) != len(generator.Locales()) {
		t.Errorf("empty nationality set should mean all locales, got %v", got)
	}
	if got := (Settings{Nationalities: []string{"FR"}}).LocalePool(); len(got) != 1 || got[0] != "FR" {
		t.Errorf("LocalePool = %v", got)
	}
}

func TestServiceRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewService(storage.NewMemory(), 10, logx.Nop())

	// Miss returns defaults.
	got := svc.Get(ctx, 5)
	if got.Count != 1 || got.PasswordSpec != generator.DefaultPasswordSpec {
		t.Fatalf("defaults = %+v", got)
	}

	in := Settings{Gender: "female", Count: 3, Nationalities: []string{"GB"}}
	if err := svc.Put(ctx, 5, in); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got = svc.Get(ctx, 5)
	if got.Gender != "female" || got.Count != 3 || len(got.Nationalities) != 1 {
		t.Fatalf("round trip = %+v", got)
	}

	if err := svc.Reset(ctx, 5); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	got = svc.Get(ctx, 5)
	if got.Gender != "" || got.Count != 1 {
		t.Fatalf("after reset = %+v", got)
	}
}

func TestServiceCorruptBlobFallsBack(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := storage.NewMemory()
	if err := store.PutUserSettings(ctx, 9, []byte("{not json")); err != nil {
		t.Fatalf("seed: %v", err)
	}
	svc := NewService(store, 10, logx.Nop())
	got := svc.Get(ctx, 9)
	if got.Count != 1 {
		t.Errorf("corrupt blob should yield defaults, got %+v", got)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
