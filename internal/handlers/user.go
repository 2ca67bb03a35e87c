package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"personabot/internal/core"
	"personabot/internal/generator"
	"personabot/internal/kit"
	"personabot/internal/settings"
	"personabot/internal/storage"
	logx "personabot/pkg/logx"
	"personabot/pkg/tgui"
)

const htmlMode = "HTML"

// documents above this size go out as a file instead of a message
const inlineJSONLimit = 3500

// trackRecipient records the sender so broadcasts can reach them later.
// Best-effort: a storage error never blocks the command.
func (h *Handlers) trackRecipient(ctx context.Context, req *core.Request) {
	msg := req.Sender()
	if msg == nil || msg.IsGroup {
		return
	}
	err := h.store.UpsertRecipient(ctx, storage.Recipient{
		UserID:    msg.FromID,
		ChatID:    msg.ChatID,
		Username:  msg.FromUsername,
		FirstName: msg.FromFirstName,
	})
	if err != nil {
		req.Log.Warn("recipient upsert failed", logx.Err(err))
	}
}

func (h *Handlers) handleStart(ctx context.Context, req *core.Request) error {
	h.trackRecipient(ctx, req)

	text := tgui.JoinH("\n",
		tgui.B("Welcome!"),
		tgui.Esc("I generate synthetic personal profiles for testing and prototyping."),
		"",
		tgui.Esc("/generate - generate a profile"),
		tgui.Esc("/settings - configure generation"),
		tgui.Esc("/help - all commands"),
	).String()
	_, err := req.Adapter.SendText(ctx, req.Chat, text, &kit.SendOptions{ParseMode: htmlMode})
	return err
}

func (h *Handlers) handleGenerate(ctx context.Context, req *core.Request) error {
	h.trackRecipient(ctx, req)
	return h.generate(ctx, req, req.BoolFlags["json"])
}

func (h *Handlers) handleGenerateJSON(ctx context.Context, req *core.Request) error {
	h.trackRecipient(ctx, req)
	return h.generate(ctx, req, true)
}

func (h *Handlers) generate(ctx context.Context, req *core.Request, asJSON bool) error {
	st := h.settings.Get(ctx, req.FromID)

	count := st.Count
	if len(req.Args) > 0 {
		n, err := strconv.Atoi(req.Args[0])
		if err != nil || n < 1 {
			_, _ = req.Adapter.SendText(ctx, req.Chat,
				fmt.Sprintf("usage: /%s [count]", req.Command), nil)
			return nil
		}
		count = n
	}
	if max := h.settings.MaxCount(); max > 0 && count > max {
		count = max
	}

	locale := strings.ToUpper(strings.TrimSpace(req.Flags["locale"]))
	gender := strings.ToLower(strings.TrimSpace(req.Flags["gender"]))
	if gender == "" {
		gender = st.Gender
	}

	profiles := make([]generator.Profile, 0, count)
	pool := st.LocalePool()
	for i := 0; i < count; i++ {
		loc := locale
		if loc == "" {
			loc = h.pickLocale(pool)
		}
		profiles = append(profiles, h.gen.Generate(generator.Options{
			Locale:       loc,
			Gender:       gender,
			PasswordSpec: st.PasswordSpec,
		}))
	}

	if asJSON {
		return h.sendJSON(ctx, req, profiles, st)
	}

	text := renderProfiles(profiles, st)
	_, err := req.Adapter.SendText(ctx, req.Chat, text, &kit.SendOptions{ParseMode: htmlMode, DisablePreview: true})
	return err
}

func (h *Handlers) sendJSON(ctx context.Context, req *core.Request, profiles []generator.Profile, st settings.Settings) error {
	data, err := profilesJSON(profiles, st)
	if err != nil {
		return err
	}
	if len(data) <= inlineJSONLimit {
		text := tgui.Pre(string(data)).String()
		_, err = req.Adapter.SendText(ctx, req.Chat, text, &kit.SendOptions{ParseMode: htmlMode})
		return err
	}
	_, err = req.Adapter.SendDocument(ctx, req.Chat, kit.Document{
		Name:    "profiles.json",
		Caption: fmt.Sprintf("%d profiles", len(profiles)),
		Data:    data,
	})
	return err
}

func (h *Handlers) pickLocale(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	if len(pool) == 1 {
		return pool[0]
	}
	h.rngMu.Lock()
	defer h.rngMu.Unlock()
	return pool[h.rng.Intn(len(pool))]
}

func (h *Handlers) handleSetPassword(ctx context.Context, req *core.Request) error {
	if len(req.Args) == 0 {
		_, err := req.Adapter.SendText(ctx, req.Chat,
			"usage: /set_password <spec>\nexample: /set_password 10-14,lower,upper,number,special", nil)
		return err
	}
	spec := strings.Join(req.Args, "")

	st := h.settings.Get(ctx, req.FromID)
	st.PasswordSpec = spec
	if err := h.settings.Put(ctx, req.FromID, st); err != nil {
		return err
	}
	parsed := generator.ParsePasswordSpec(spec)
	_, err := req.Adapter.SendText(ctx, req.Chat,
		fmt.Sprintf("Password spec saved: length %d-%d, charsets %s",
			parsed.MinLen, parsed.MaxLen, strings.Join(parsed.Charsets, ",")), nil)
	return err
}
