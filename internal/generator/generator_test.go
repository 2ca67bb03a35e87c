package generator

import (
	"math/rand"
	"strings"
	"testing"
	"time"
)

func newTestGen(seed int64) *Generator {
	g := New(rand.New(rand.NewSource(seed)))
	g.now = func() time.Time {
		return time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	}
	return g
}

func TestLocales(t *testing.T) {
	t.Parallel()

	got := Locales()
	want := []string{"DE", "FR", "GB", "RU", "US"}
	if len(got) != len(want) {
		t.Fatalf("Locales() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Locales() = %v, want %v", got, want)
		}
	}
}

func TestGenerateBasics(t *testing.T) {
	t.Parallel()

	for _, code := range Locales() {
		code := code
		t.Run(code, func(t *testing.T) {
			t.Parallel()
			g := newTestGen(42)
			p := g.Generate(Options{Locale: code})

			if p.FirstName == "" || p.LastName == "" {
				t.Errorf("empty name: %+v", p)
			}
			if p.Gender != "male" && p.Gender != "female" {
				t.Errorf("gender = %q", p.Gender)
			}
			if !strings.Contains(p.Email, "@") {
				t.Errorf("email = %q", p.Email)
			}
			if p.Age < 17 || p.Age > 91 {
				t.Errorf("age = %d", p.Age)
			}
			if p.Physical.Height < 150 || p.Physical.Height > 200 {
				t.Errorf("height = %d", p.Physical.Height)
			}
			if p.Physical.Weight < 45 || p.Physical.Weight > 120 {
				t.Errorf("weight = %d", p.Physical.Weight)
			}
			if len(p.Languages) < 1 || len(p.Languages) > 3 {
				t.Errorf("languages = %v", p.Languages)
			}
			if len(p.Hobbies) < 2 || len(p.Hobbies) > 4 {
				t.Errorf("hobbies = %v", p.Hobbies)
			}
			if len(p.SocialMedia) < 2 || len(p.SocialMedia) > 4 {
				t.Errorf("social media = %v", p.SocialMedia)
			}
			if p.Login.Username == "" || p.Login.Password == "" {
				t.Errorf("login = %+v", p.Login)
			}
			if p.Country == "" {
				t.Error("empty country")
			}
		})
	}
}

func TestYearsSince(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name  string
		birth time.Time
		want  int
	}{
		{"birthday earlier this year", time.Date(1990, 3, 1, 0, 0, 0, 0, time.UTC), 36},
		{"birthday later this year", time.Date(1990, 11, 20, 0, 0, 0, 0, time.UTC), 35},
		{"birthday today", time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC), 36},
		{"birthday tomorrow", time.Date(1990, 6, 16, 0, 0, 0, 0, time.UTC), 35},
		{"same month, passed", time.Date(1990, 6, 14, 0, 0, 0, 0, time.UTC), 36},
	}
	for _, tc := range cases {
		if got := yearsSince(tc.birth, now); got != tc.want {
			t.Errorf("%s: yearsSince = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestAgeMatchesBirthDate(t *testing.T) {
	t.Parallel()

	g := newTestGen(21)
	now := g.now()
	for i := 0; i < 100; i++ {
		p := g.Generate(Options{Locale: "US"})
		birth, err := time.Parse("2006-01-02", p.BirthDate)
		if err != nil {
			t.Fatalf("birth_date %q: %v", p.BirthDate, err)
		}
		if want := yearsSince(birth, now); p.Age != want {
			t.Fatalf("age = %d, want %d for birth_date %s", p.Age, want, p.BirthDate)
		}
	}
}

func TestGenerateGenderFilter(t *testing.T) {
	t.Parallel()

	g := newTestGen(7)
	for i := 0; i < 50; i++ {
		if p := g.Generate(Options{Locale: "US", Gender: "female"}); p.Gender != "female" {
			t.Fatalf("gender = %q, want female", p.Gender)
		}
		if p := g.Generate(Options{Locale: "RU", Gender: "male"}); p.Gender != "male" {
			t.Fatalf("gender = %q, want male", p.Gender)
		}
	}
}

func TestGenerateUnknownLocaleFallsBackToRU(t *testing.T) {
	t.Parallel()

	g := newTestGen(9)
	p := g.Generate(Options{Locale: "XX"})
	if p.Country != "Россия" {
		t.Errorf("country = %q, want RU fallback", p.Country)
	}
	if !strings.HasPrefix(p.Phone, "+7") {
		t.Errorf("phone = %q, want +7 prefix", p.Phone)
	}
}

func TestGenerateRUEmailIsTransliterated(t *testing.T) {
	t.Parallel()

	g := newTestGen(11)
	for i := 0; i < 50; i++ {
		p := g.Generate(Options{Locale: "RU"})
		local, _, _ := strings.Cut(p.Email, "@")
		for _, r := range local {
			if r > 127 {
				t.Fatalf("email local part %q contains non-ASCII %q", local, r)
			}
		}
	}
}

func TestGenerateN(t *testing.T) {
	t.Parallel()

	g := newTestGen(13)
	out := g.GenerateN(5, Options{Locale: "DE"})
	if len(out) != 5 {
		t.Fatalf("len = %d", len(out))
	}
	if got := g.GenerateN(0, Options{}); len(got) != 1 {
		t.Errorf("count 0 should clamp to 1, got %d", len(got))
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	t.Parallel()

	a := newTestGen(99).Generate(Options{Locale: "FR", Gender: "male"})
	b := newTestGen(99).Generate(Options{Locale: "FR", Gender: "male"})
	if a.FirstName != b.FirstName || a.Email != b.Email || a.Phone != b.Phone {
		t.Errorf("same seed produced different profiles:\n%+v\n%+v", a, b)
	}
}

func TestTransliterate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"Александр", "Aleksandr"},
		{"Юлия", "Yuliya"},
		{"Щукин", "Schukin"},
		{"Ъь", ""},
		{"hello", "hello"},
		{"Mixed Пример", "Mixed Primer"},
	}
	for _, tc := range cases {
		if got := Transliterate(tc.in); got != tc.want {
			t.Errorf("Transliterate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
