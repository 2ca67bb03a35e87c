// Package handlers wires bot commands and inline callbacks to the profile
// generator, per-user settings and the broadcast engine.
package handlers

import (
	"math/rand"
	"sync"
	"time"

	"personabot/internal/broadcast"
	"personabot/internal/core"
	"personabot/internal/generator"
	"personabot/internal/kit"
	"personabot/internal/settings"
	"personabot/internal/storage"
	logx "personabot/pkg/logx"
)

type Deps struct {
	Store    storage.Store
	Settings *settings.Service
	Gen      *generator.Generator
	Engine   *broadcast.Engine
	Adapter  kit.Adapter
	Log      logx.Logger
}

type Handlers struct {
	store    storage.Store
	settings *settings.Service
	gen      *generator.Generator
	engine   *broadcast.Engine
	adapter  kit.Adapter
	log      logx.Logger

	rngMu sync.Mutex
	rng   *rand.Rand
}

func New(d Deps) *Handlers {
	log := d.Log
	if log.IsZero() {
		log = logx.Nop()
	}
	return &Handlers{
		store:    d.Store,
		settings: d.Settings,
		gen:      d.Gen,
		engine:   d.Engine,
		adapter:  d.Adapter,
		log:      log,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Register installs all commands and callback routes on the router.
func Register(r *core.Router, d Deps) *Handlers {
	h := New(d)

	cmds := []core.Command{
		{
			Name:        "start",
			Description: "start the bot",
			Usage:       "/start",
			Handle:      h.handleStart,
		},
		{
			Name:        "generate",
			Aliases:     []string{"gen"},
			Description: "generate profiles",
			Usage:       "/generate [count]",
			Timeout:     30 * time.Second,
			Handle:      h.handleGenerate,
		},
		{
			Name:        "generate_json",
			Description: "generate profiles as JSON",
			Usage:       "/generate_json [count]",
			Timeout:     30 * time.Second,
			Handle:      h.handleGenerateJSON,
		},
		{
			Name:        "settings",
			Description: "generation settings",
			Usage:       "/settings",
			Handle:      h.handleSettings,
		},
		{
			Name:        "set_password",
			Description: "set the password format",
			Usage:       "/set_password <spec>",
			Hidden:      true,
			Handle:      h.handleSetPassword,
		},
		{
			Name:        "admin",
			Description: "admin panel",
			Usage:       "/admin",
			Access:      core.AccessAdminOnly,
			Handle:      h.handleAdmin,
		},
		{
			Name:        "broadcast",
			Description: "stage a broadcast to all recipients",
			Usage:       "/broadcast <message>",
			Access:      core.AccessAdminOnly,
			Handle:      h.handleBroadcast,
		},
		{
			Name:        "cancel_broadcast",
			Description: "cancel the running broadcast",
			Usage:       "/cancel_broadcast",
			Access:      core.AccessAdminOnly,
			Handle:      h.handleCancelBroadcast,
		},
		{
			Name:        "broadcast_status",
			Description: "running broadcast progress",
			Usage:       "/broadcast_status",
			Access:      core.AccessAdminOnly,
			Handle:      h.handleBroadcastStatus,
		},
		{
			Name:        "broadcast_history",
			Description: "recent broadcasts",
			Usage:       "/broadcast_history",
			Access:      core.AccessAdminOnly,
			Handle:      h.handleBroadcastHistory,
		},
	}

	cbs := []core.CallbackRoute{
		{NS: settingsNS, Action: "menu", Handle: h.cbSettingsMenu},
		{NS: settingsNS, Action: "gender_menu", Handle: h.cbGenderMenu},
		{NS: settingsNS, Action: "gender", Handle: h.cbGender},
		{NS: settingsNS, Action: "nat_menu", Handle: h.cbNatMenu},
		{NS: settingsNS, Action: "nat", Handle: h.cbNat},
		{NS: settingsNS, Action: "count_menu", Handle: h.cbCountMenu},
		{NS: settingsNS, Action: "count", Handle: h.cbCount},
		{NS: settingsNS, Action: "fields_menu", Handle: h.cbFieldsMenu},
		{NS: settingsNS, Action: "field", Handle: h.cbField},
		{NS: settingsNS, Action: "password", Handle: h.cbPasswordHelp},
		{NS: settingsNS, Action: "reset", Handle: h.cbReset},

		{NS: adminNS, Action: "export", Access: core.AccessAdminOnly, Handle: h.cbExportRecipients},
		{NS: broadcastNS, Action: "confirm", Access: core.AccessAdminOnly, Handle: h.cbBroadcastConfirm},
		{NS: broadcastNS, Action: "cancel", Access: core.AccessAdminOnly, Handle: h.cbBroadcastCancel},
	}

	r.SetRegistry(cmds, cbs)
	return h
}
