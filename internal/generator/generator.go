package generator

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"
)

// Profile is one generated identity.
type Profile struct {
	Gender        string            `json:"gender"`
	FirstName     string            `json:"first_name"`
	LastName      string            `json:"last_name"`
	Address       string            `json:"address"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone"`
	BirthDate     string            `json:"birth_date"`
	Age           int               `json:"age"`
	Physical      Physical          `json:"physical"`
	Education     Education         `json:"education"`
	Occupation    string            `json:"occupation"`
	Languages     []string          `json:"languages"`
	Hobbies       []string          `json:"hobbies"`
	MaritalStatus string            `json:"marital_status"`
	SocialMedia   map[string]string `json:"social_media"`
	Login         Login             `json:"login"`
	Country       string            `json:"country"`
}

type Physical struct {
	Height    int    `json:"height"`
	Weight    int    `json:"weight"`
	BloodType string `json:"blood_type"`
}

type Education struct {
	Level          string `json:"level"`
	University     string `json:"university"`
	GraduationYear int    `json:"graduation_year"`
}

type Login struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Options selects what to generate. Zero values mean "random".
type Options struct {
	// Locale is an ISO-ish country code (RU, US, GB, DE, FR).
	// Unknown or empty falls back to RU.
	Locale string
	// Gender is "male" or "female"; anything else means random.
	Gender string
	// PasswordSpec is a spec string like "8-12,lower,upper,number".
	PasswordSpec string
}

// Generator produces synthetic profiles. Safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// New returns a generator seeded from rng, or from the clock when rng is nil.
func New(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng, now: time.Now}
}

// Locales lists supported country codes, sorted.
func Locales() []string {
	out := make([]string, 0, len(locales))
	for code := range locales {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// Generate builds one profile.
func (g *Generator) Generate(opt Options) Profile {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.generate(opt)
}

// GenerateN builds count profiles with the same options.
func (g *Generator) GenerateN(count int, opt Options) []Profile {
	if count < 1 {
		count = 1
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]Profile, count)
	for i := range out {
		out[i] = g.generate(opt)
	}
	return out
}

func (g *Generator) generate(opt Options) Profile {
	code := strings.ToUpper(strings.TrimSpace(opt.Locale))
	loc, ok := locales[code]
	if !ok {
		code = "RU"
		loc = locales[code]
	}

	gender := opt.Gender
	if gender != "male" && gender != "female" {
		if g.rng.Intn(2) == 0 {
			gender = "male"
		} else {
			gender = "female"
		}
	}

	var first, last string
	if gender == "male" {
		first = pick(g.rng, loc.FirstNamesMale)
		last = pick(g.rng, loc.LastNamesMale)
	} else {
		first = pick(g.rng, loc.FirstNamesFemale)
		last = pick(g.rng, loc.LastNamesFemale)
	}

	birth := g.birthDate()
	now := g.now()

	social := map[string]string{}
	for _, platform := range sample(g.rng, socialPlatforms, 2+g.rng.Intn(3)) {
		social[platform] = g.socialUsername(first, last)
	}

	return Profile{
		Gender:    gender,
		FirstName: first,
		LastName:  last,
		Address:   g.address(code, loc),
		Email:     g.email(first, last, loc),
		Phone:     g.phone(code, loc),
		BirthDate: birth.Format("2006-01-02"),
		Age:       yearsSince(birth, now),
		Physical: Physical{
			Height:    150 + g.rng.Intn(51),
			Weight:    45 + g.rng.Intn(76),
			BloodType: pick(g.rng, bloodTypes),
		},
		Education: Education{
			Level:          pick(g.rng, loc.EducationLevels),
			University:     pick(g.rng, loc.Universities),
			GraduationYear: now.Year() - g.rng.Intn(41),
		},
		Occupation:    pick(g.rng, loc.Occupations),
		Languages:     sample(g.rng, loc.Languages, 1+g.rng.Intn(3)),
		Hobbies:       sample(g.rng, loc.Hobbies, 2+g.rng.Intn(3)),
		MaritalStatus: pick(g.rng, loc.MaritalStatuses),
		SocialMedia:   social,
		Login: Login{
			Username: g.socialUsername(first, last),
			Password: generatePassword(g.rng, opt.PasswordSpec),
		},
		Country: loc.Name,
	}
}

// yearsSince counts completed years between birth and now. A birthday later
// in the year has not happened yet and does not count.
func yearsSince(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	return years
}

// birthDate draws an age from a normal distribution (mean 35, sd 15) clamped
// to [18, 90], then scatters the date within a year.
func (g *Generator) birthDate() time.Time {
	age := int(g.rng.NormFloat64()*15 + 35)
	if age < 18 {
		age = 18
	}
	if age > 90 {
		age = 90
	}
	d := g.now().AddDate(0, 0, -365*age)
	return d.AddDate(0, 0, g.rng.Intn(366))
}

func (g *Generator) email(first, last string, loc localeData) string {
	f := asciiAlnum(Transliterate(strings.ToLower(first)))
	l := asciiAlnum(Transliterate(strings.ToLower(last)))
	if f == "" {
		f = "user"
	}
	if l == "" {
		l = "x"
	}

	variants := []string{
		f + l,
		f + "." + l,
		f[:1] + l,
		f + l[:min(3, len(l))],
		f[:min(3, len(f))] + l[:min(3, len(l))],
	}
	username := pick(g.rng, variants)
	if g.rng.Float64() < 0.7 {
		username += fmt.Sprint(1 + g.rng.Intn(9999))
	}
	return username + "@" + pick(g.rng, loc.EmailDomains)
}

func (g *Generator) socialUsername(first, last string) string {
	f := asciiAlnum(Transliterate(strings.ToLower(first)))
	l := asciiAlnum(Transliterate(strings.ToLower(last)))
	if f == "" {
		f = "user"
	}
	if l == "" {
		l = "x"
	}

	variants := []string{
		f + l,
		f + "_" + l,
		f + "." + l,
		f[:1] + l,
		"the_" + f,
		"real_" + f,
		f + fmt.Sprint(1+g.rng.Intn(999)),
	}
	username := pick(g.rng, variants)
	if g.rng.Float64() < 0.5 {
		if g.rng.Float64() < 0.7 {
			username += fmt.Sprint(1 + g.rng.Intn(9999))
		} else {
			username += pick(g.rng, []string{"_official", "_real", "_original", "_me"})
		}
	}
	return username
}

func (g *Generator) address(code string, loc localeData) string {
	city := pick(g.rng, loc.Cities)
	street := pick(g.rng, loc.Streets)
	house := 1 + g.rng.Intn(150)

	switch code {
	case "RU":
		apartment := 1 + g.rng.Intn(100)
		return fmt.Sprintf("г. %s, ул. %s, д. %d, кв. %d", city, street, house, apartment)
	case "US":
		suffix := pick(g.rng, loc.StreetSuffixes)
		state := pick(g.rng, loc.States)
		postal := 10000 + g.rng.Intn(90000)
		return fmt.Sprintf("%d %s %s, %s, %s %d", house, street, suffix, city, state, postal)
	default:
		return fmt.Sprintf("%d %s St., %s", house, street, city)
	}
}

func (g *Generator) phone(code string, loc localeData) string {
	switch code {
	case "RU":
		return fmt.Sprintf("%s %s %d-%d-%d",
			loc.PhonePrefix, pick(g.rng, loc.PhoneOperators),
			100+g.rng.Intn(900), 10+g.rng.Intn(90), 10+g.rng.Intn(90))
	case "US":
		return fmt.Sprintf("%s (%s) %d-%d",
			loc.PhonePrefix, pick(g.rng, loc.PhoneAreaCodes),
			100+g.rng.Intn(900), 1000+g.rng.Intn(9000))
	default:
		return fmt.Sprintf("%s %d", loc.PhonePrefix, 100000000+g.rng.Intn(900000000))
	}
}

func pick(rng *rand.Rand, list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[rng.Intn(len(list))]
}

// sample returns n distinct elements in random order.
func sample(rng *rand.Rand, list []string, n int) []string {
	if n > len(list) {
		n = len(list)
	}
	idx := rng.Perm(len(list))[:n]
	out := make([]string, n)
	for i, j := range idx {
		out[i] = list[j]
	}
	return out
}
