package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v4"

	"personabot/internal/core"
	"personabot/internal/generator"
	"personabot/internal/kit"
	"personabot/internal/settings"
	"personabot/pkg/tgui"
)

const settingsNS = "settings"

func (h *Handlers) handleSettings(ctx context.Context, req *core.Request) error {
	h.trackRecipient(ctx, req)
	st := h.settings.Get(ctx, req.FromID)
	text, markup := h.settingsMenu(st)
	_, err := req.Adapter.SendText(ctx, req.Chat, text,
		&kit.SendOptions{ParseMode: htmlMode, ReplyMarkupAdapter: markup})
	return err
}

func (h *Handlers) settingsMenu(st settings.Settings) (string, *tele.ReplyMarkup) {
	gender := st.Gender
	if gender == "" {
		gender = "any"
	}
	nats := "all"
	if len(st.Nationalities) > 0 {
		nats = strings.Join(st.Nationalities, ", ")
	}
	fields := "all"
	if len(st.ExcludeFields) > 0 {
		fields = fmt.Sprintf("all except %s", strings.Join(st.ExcludeFields, ", "))
	}
	if len(st.IncludeFields) > 0 {
		fields = strings.Join(st.IncludeFields, ", ")
	}

	text := tgui.JoinH("\n",
		tgui.B("Generation settings"),
		tgui.JoinH("", tgui.Esc("Gender: "), tgui.B(gender)),
		tgui.JoinH("", tgui.Esc("Nationalities: "), tgui.B(nats)),
		tgui.JoinH("", tgui.Esc("Profiles per request: "), tgui.B(strconv.Itoa(st.Count))),
		tgui.JoinH("", tgui.Esc("Fields: "), tgui.B(fields)),
		tgui.JoinH("", tgui.Esc("Password: "), tgui.Code(st.PasswordSpec)),
	).String()

	markup := tgui.NewInline().
		Row(tgui.Btn("Gender", tgui.Data(settingsNS, "gender_menu", "")),
			tgui.Btn("Nationalities", tgui.Data(settingsNS, "nat_menu", ""))).
		Row(tgui.Btn("Count", tgui.Data(settingsNS, "count_menu", "")),
			tgui.Btn("Fields", tgui.Data(settingsNS, "fields_menu", ""))).
		Row(tgui.Btn("Password help", tgui.Data(settingsNS, "password", "")),
			tgui.Btn("Reset", tgui.Data(settingsNS, "reset", ""))).
		Markup()
	return text, markup
}

func (h *Handlers) editSettingsMenu(ctx context.Context, req *core.Request) error {
	st := h.settings.Get(ctx, req.FromID)
	text, markup := h.settingsMenu(st)
	return req.Adapter.EditText(ctx, callbackRef(req), text,
		&kit.SendOptions{ParseMode: htmlMode, ReplyMarkupAdapter: markup})
}

func callbackRef(req *core.Request) kit.MessageRef {
	cb := req.Update.Callback
	if cb == nil {
		return kit.MessageRef{}
	}
	return kit.MessageRef{ChatID: cb.ChatID, MessageID: cb.MessageID}
}

func backRow() tele.Btn {
	return tgui.Btn("Back", tgui.Data(settingsNS, "menu", ""))
}

func (h *Handlers) cbSettingsMenu(ctx context.Context, req *core.Request, _ string) error {
	return h.editSettingsMenu(ctx, req)
}

func (h *Handlers) cbGenderMenu(ctx context.Context, req *core.Request, _ string) error {
	markup := tgui.NewInline().
		Row(tgui.Btn("Male", tgui.Data(settingsNS, "gender", "male")),
			tgui.Btn("Female", tgui.Data(settingsNS, "gender", "female")),
			tgui.Btn("Any", tgui.Data(settingsNS, "gender", "any"))).
		Row(backRow()).
		Markup()
	return req.Adapter.EditText(ctx, callbackRef(req), "Pick a gender:",
		&kit.SendOptions{ReplyMarkupAdapter: markup})
}

func (h *Handlers) cbGender(ctx context.Context, req *core.Request, payload string) error {
	st := h.settings.Get(ctx, req.FromID)
	if payload == "any" {
		st.Gender = ""
	} else {
		st.Gender = payload
	}
	if err := h.settings.Put(ctx, req.FromID, st); err != nil {
		return err
	}
	return h.editSettingsMenu(ctx, req)
}

func (h *Handlers) cbNatMenu(ctx context.Context, req *core.Request, _ string) error {
	st := h.settings.Get(ctx, req.FromID)

	selected := func(code string) bool {
		for _, n := range st.Nationalities {
			if n == code {
				return true
			}
		}
		return false
	}

	var btns []tele.Btn
	for _, code := range generator.Locales() {
		label := code
		if selected(code) {
			label = "[x] " + code
		}
		btns = append(btns, tgui.Btn(label, tgui.Data(settingsNS, "nat", code)))
	}

	ui := tgui.NewInline()
	for i := 0; i < len(btns); i += 2 {
		ui.Row(btns[i:min(i+2, len(btns))]...)
	}
	ui.Row(backRow())

	return req.Adapter.EditText(ctx, callbackRef(req),
		"Toggle nationalities (empty selection means all):",
		&kit.SendOptions{ReplyMarkupAdapter: ui.Markup()})
}

func (h *Handlers) cbNat(ctx context.Context, req *core.Request, payload string) error {
	st := h.settings.Get(ctx, req.FromID)
	code := strings.ToUpper(strings.TrimSpace(payload))

	found := false
	kept := st.Nationalities[:0]
	for _, n := range st.Nationalities {
		if n == code {
			found = true
			continue
		}
		kept = append(kept, n)
	}
	if !found {
		kept = append(kept, code)
	}
	st.Nationalities = kept

	if err := h.settings.Put(ctx, req.FromID, st); err != nil {
		return err
	}
	return h.cbNatMenu(ctx, req, "")
}

func (h *Handlers) cbCountMenu(ctx context.Context, req *core.Request, _ string) error {
	max := h.settings.MaxCount()
	if max <= 0 {
		max = 10
	}

	var btns []tele.Btn
	for n := 1; n <= max; n++ {
		s := strconv.Itoa(n)
		btns = append(btns, tgui.Btn(s, tgui.Data(settingsNS, "count", s)))
	}

	ui := tgui.NewInline()
	for i := 0; i < len(btns); i += 5 {
		ui.Row(btns[i:min(i+5, len(btns))]...)
	}
	ui.Row(backRow())

	return req.Adapter.EditText(ctx, callbackRef(req), "Profiles per request:",
		&kit.SendOptions{ReplyMarkupAdapter: ui.Markup()})
}

func (h *Handlers) cbCount(ctx context.Context, req *core.Request, payload string) error {
	n, err := strconv.Atoi(payload)
	if err != nil || n < 1 {
		return nil
	}
	st := h.settings.Get(ctx, req.FromID)
	st.Count = n
	if err := h.settings.Put(ctx, req.FromID, st); err != nil {
		return err
	}
	return h.editSettingsMenu(ctx, req)
}

func (h *Handlers) cbFieldsMenu(ctx context.Context, req *core.Request, _ string) error {
	st := h.settings.Get(ctx, req.FromID)

	var btns []tele.Btn
	for _, name := range settings.AvailableFields {
		label := "[ ] " + name
		if st.FieldEnabled(name) {
			label = "[x] " + name
		}
		btns = append(btns, tgui.Btn(label, tgui.Data(settingsNS, "field", name)))
	}

	ui := tgui.NewInline()
	for i := 0; i < len(btns); i += 2 {
		ui.Row(btns[i:min(i+2, len(btns))]...)
	}
	ui.Row(backRow())

	return req.Adapter.EditText(ctx, callbackRef(req), "Toggle profile fields:",
		&kit.SendOptions{ReplyMarkupAdapter: ui.Markup()})
}

func (h *Handlers) cbField(ctx context.Context, req *core.Request, payload string) error {
	name := strings.ToLower(strings.TrimSpace(payload))
	st := h.settings.Get(ctx, req.FromID)

	// Toggling works on the exclude list; the include list is cleared so the
	// exclude semantics stay unambiguous.
	st.IncludeFields = nil
	if st.FieldEnabled(name) {
		st.ExcludeFields = append(st.ExcludeFields, name)
	} else {
		kept := st.ExcludeFields[:0]
		for _, f := range st.ExcludeFields {
			if f != name {
				kept = append(kept, f)
			}
		}
		st.ExcludeFields = kept
	}
	if err := h.settings.Put(ctx, req.FromID, st); err != nil {
		return err
	}
	return h.cbFieldsMenu(ctx, req, "")
}

func (h *Handlers) cbPasswordHelp(ctx context.Context, req *core.Request, _ string) error {
	text := tgui.JoinH("\n",
		tgui.B("Password format"),
		tgui.Esc("Set it with /set_password <spec>."),
		tgui.Esc("A spec is a comma-separated list of a length and charsets:"),
		tgui.Code("8-12,lower,upper,number"),
		tgui.Esc("Charsets: lower, upper, number, special."),
		tgui.Esc("Length may be fixed (10) or a range (8-12)."),
	).String()
	markup := tgui.NewInline().Row(backRow()).Markup()
	return req.Adapter.EditText(ctx, callbackRef(req), text,
		&kit.SendOptions{ParseMode: htmlMode, ReplyMarkupAdapter: markup})
}

func (h *Handlers) cbReset(ctx context.Context, req *core.Request, _ string) error {
	if err := h.settings.Reset(ctx, req.FromID); err != nil {
		return err
	}
	return h.editSettingsMenu(ctx, req)
}
