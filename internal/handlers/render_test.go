package handlers

import (
	"encoding/json"
	"strings"
	"testing"

	"personabot/internal/generator"
	"personabot/internal/settings"
)

func sampleProfile() generator.Profile {
	return generator.Profile{
		Gender:    "female",
		FirstName: "Anna",
		LastName:  "Schmidt",
		Address:   "Hauptstrasse 12, 10115 Berlin",
		Email:     "anna.schmidt@gmx.de",
		Phone:     "+49 30 1234567",
		BirthDate: "1990-04-02",
		Age:       36,
		Physical:  generator.Physical{Height: 168, Weight: 60, BloodType: "A+"},
		Education: generator.Education{Level: "Master", University: "HU Berlin", GraduationYear: 2014},
		Login:     generator.Login{Username: "anna.schmidt90", Password: "s3cretPW"},
		Country:   "Germany",
		SocialMedia: map[string]string{
			"instagram": "@anna.schmidt90",
		},
	}
}

func TestRenderProfileAllFields(t *testing.T) {
	t.Parallel()

	out := renderProfile(sampleProfile(), settings.Default())
	for _, want := range []string{
		"Anna Schmidt", "Hauptstrasse 12", "anna.schmidt@gmx.de",
		"+49 30 1234567", "1990-04-02", "s3cretPW", "Germany",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "<b>Name</b>") {
		t.Errorf("labels not bold:\n%s", out)
	}
}

func TestRenderProfileExcludedFields(t *testing.T) {
	t.Parallel()

	st := settings.Default()
	st.ExcludeFields = []string{"login", "phone"}
	out := renderProfile(sampleProfile(), st)

	if strings.Contains(out, "s3cretPW") || strings.Contains(out, "+49 30 1234567") {
		t.Errorf("excluded fields rendered:\n%s", out)
	}
	if !strings.Contains(out, "Anna Schmidt") {
		t.Errorf("kept field dropped:\n%s", out)
	}
}

func TestRenderProfileEscapesHTML(t *testing.T) {
	t.Parallel()

	p := sampleProfile()
	p.FirstName = "<script>"
	out := renderProfile(p, settings.Default())
	if strings.Contains(out, "<script>") {
		t.Errorf("unescaped HTML in output:\n%s", out)
	}
}

func TestProfilesJSONRespectsFields(t *testing.T) {
	t.Parallel()

	st := settings.Default()
	st.ExcludeFields = []string{"login"}
	data, err := profilesJSON([]generator.Profile{sampleProfile()}, st)
	if err != nil {
		t.Fatalf("profilesJSON: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := m["login"]; ok {
		t.Error("excluded login present in JSON")
	}
	if m["first_name"] != "Anna" {
		t.Errorf("first_name = %v", m["first_name"])
	}
}

func TestProfilesJSONMultiple(t *testing.T) {
	t.Parallel()

	data, err := profilesJSON([]generator.Profile{sampleProfile(), sampleProfile()}, settings.Default())
	if err != nil {
		t.Fatalf("profilesJSON: %v", err)
	}
	var arr []map[string]any
	if err := json.Unmarshal(data, &arr); err != nil {
		t.Fatalf("expected array for multiple profiles: %v", err)
	}
	if len(arr) != 2 {
		t.Errorf("len = %d", len(arr))
	}
}
