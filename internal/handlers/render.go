package handlers

import (
	"encoding/json"
	"fmt"
	"strings"

	"personabot/internal/generator"
	"personabot/internal/settings"
	"personabot/pkg/tgui"
)

// renderProfile formats one profile as Telegram HTML, honoring the user's
// field selection.
func renderProfile(p generator.Profile, st settings.Settings) string {
	var b strings.Builder
	line := func(label, value string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		b.WriteString(tgui.B(label).String())
		b.WriteString(": ")
		b.WriteString(tgui.Esc(value).String())
		b.WriteByte('\n')
	}

	if st.FieldEnabled("name") {
		line("Name", p.FirstName+" "+p.LastName)
	}
	if st.FieldEnabled("gender") {
		line("Gender", p.Gender)
	}
	if st.FieldEnabled("country") {
		line("Country", p.Country)
	}
	if st.FieldEnabled("address") {
		line("Address", p.Address)
	}
	if st.FieldEnabled("email") {
		line("Email", p.Email)
	}
	if st.FieldEnabled("phone") {
		line("Phone", p.Phone)
	}
	if st.FieldEnabled("birth_date") {
		line("Birth date", fmt.Sprintf("%s (%d y.o.)", p.BirthDate, p.Age))
	}
	if st.FieldEnabled("physical") {
		line("Height", fmt.Sprintf("%d cm", p.Physical.Height))
		line("Weight", fmt.Sprintf("%d kg", p.Physical.Weight))
		line("Blood type", p.Physical.BloodType)
	}
	if st.FieldEnabled("education") {
		edu := p.Education.Level
		if p.Education.University != "" {
			edu += ", " + p.Education.University
		}
		if p.Education.GraduationYear > 0 {
			edu += fmt.Sprintf(" (%d)", p.Education.GraduationYear)
		}
		line("Education", edu)
	}
	if st.FieldEnabled("occupation") {
		line("Occupation", p.Occupation)
	}
	if st.FieldEnabled("languages") {
		line("Languages", strings.Join(p.Languages, ", "))
	}
	if st.FieldEnabled("hobbies") {
		line("Hobbies", strings.Join(p.Hobbies, ", "))
	}
	if st.FieldEnabled("marital_status") {
		line("Marital status", p.MaritalStatus)
	}
	if st.FieldEnabled("social_media") && len(p.SocialMedia) > 0 {
		for _, platform := range []string{"instagram", "twitter", "facebook", "telegram"} {
			if v, ok := p.SocialMedia[platform]; ok {
				line(titleWord(platform), v)
			}
		}
	}
	if st.FieldEnabled("login") {
		b.WriteString(tgui.B("Username").String())
		b.WriteString(": ")
		b.WriteString(tgui.Code(p.Login.Username).String())
		b.WriteByte('\n')
		b.WriteString(tgui.B("Password").String())
		b.WriteString(": ")
		b.WriteString(tgui.Code(p.Login.Password).String())
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func titleWord(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func renderProfiles(profiles []generator.Profile, st settings.Settings) string {
	parts := make([]string, 0, len(profiles))
	for i, p := range profiles {
		text := renderProfile(p, st)
		if len(profiles) > 1 {
			text = tgui.B(fmt.Sprintf("Profile %d", i+1)).String() + "\n" + text
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "\n\n")
}

// profileMap converts a profile into a JSON-ready map with disabled fields
// removed.
func profileMap(p generator.Profile, st settings.Settings) map[string]any {
	out := map[string]any{}
	if st.FieldEnabled("name") {
		out["first_name"] = p.FirstName
		out["last_name"] = p.LastName
	}
	if st.FieldEnabled("gender") {
		out["gender"] = p.Gender
	}
	if st.FieldEnabled("country") {
		out["country"] = p.Country
	}
	if st.FieldEnabled("address") {
		out["address"] = p.Address
	}
	if st.FieldEnabled("email") {
		out["email"] = p.Email
	}
	if st.FieldEnabled("phone") {
		out["phone"] = p.Phone
	}
	if st.FieldEnabled("birth_date") {
		out["birth_date"] = p.BirthDate
		out["age"] = p.Age
	}
	if st.FieldEnabled("physical") {
		out["physical"] = p.Physical
	}
	if st.FieldEnabled("education") {
		out["education"] = p.Education
	}
	if st.FieldEnabled("occupation") {
		out["occupation"] = p.Occupation
	}
	if st.FieldEnabled("languages") {
		out["languages"] = p.Languages
	}
	if st.FieldEnabled("hobbies") {
		out["hobbies"] = p.Hobbies
	}
	if st.FieldEnabled("marital_status") {
		out["marital_status"] = p.MaritalStatus
	}
	if st.FieldEnabled("social_media") {
		out["social_media"] = p.SocialMedia
	}
	if st.FieldEnabled("login") {
		out["login"] = p.Login
	}
	return out
}

func profilesJSON(profiles []generator.Profile, st settings.Settings) ([]byte, error) {
	maps := make([]map[string]any, 0, len(profiles))
	for _, p := range profiles {
		maps = append(maps, profileMap(p, st))
	}
	if len(maps) == 1 {
		return json.MarshalIndent(maps[0], "", "  ")
	}
	return json.MarshalIndent(maps, "", "  ")
}
