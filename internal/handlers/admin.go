package handlers

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"personabot/internal/broadcast"
	"personabot/internal/core"
	"personabot/internal/kit"
	logx "personabot/pkg/logx"
	"personabot/pkg/tgui"
)

const (
	adminNS     = "admin"
	broadcastNS = "bcast"
)

func (h *Handlers) handleAdmin(ctx context.Context, req *core.Request) error {
	recipients, err := h.store.CountRecipients(ctx)
	if err != nil {
		return err
	}
	history, err := h.store.ListBroadcasts(ctx, 1)
	if err != nil {
		return err
	}
	last := "never"
	if len(history) > 0 {
		last = history[0].StartedAt.Format("2006-01-02 15:04")
	}

	text := tgui.JoinH("\n",
		tgui.B("Admin panel"),
		tgui.Esc(fmt.Sprintf("Known recipients: %d", recipients)),
		tgui.Esc("Last broadcast: "+last),
		"",
		tgui.Esc("/broadcast <message> - stage a broadcast"),
		tgui.Esc("/broadcast_history - recent runs"),
	).String()
	markup := tgui.NewInline().
		Row(tgui.Btn("Export recipients (CSV)", tgui.Data(adminNS, "export", ""))).
		Markup()
	_, err = req.Adapter.SendText(ctx, req.Chat, text,
		&kit.SendOptions{ParseMode: htmlMode, ReplyMarkupAdapter: markup})
	return err
}

func (h *Handlers) cbExportRecipients(ctx context.Context, req *core.Request, _ string) error {
	recipients, err := h.store.ListRecipients(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"user_id", "chat_id", "username", "first_name", "added_at"})
	for _, r := range recipients {
		_ = w.Write([]string{
			strconv.FormatInt(r.UserID, 10),
			strconv.FormatInt(r.ChatID, 10),
			r.Username,
			r.FirstName,
			r.AddedAt.Format(time.RFC3339),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	_, err = req.Adapter.SendDocument(ctx, req.Chat, kit.Document{
		Name:    "recipients.csv",
		Caption: fmt.Sprintf("%d recipients", len(recipients)),
		Data:    buf.Bytes(),
	})
	return err
}

func (h *Handlers) handleBroadcast(ctx context.Context, req *core.Request) error {
	// keep the message verbatim, including newlines the tokenizer would eat
	text := ""
	if msg := req.Sender(); msg != nil {
		t := strings.TrimSpace(msg.Text)
		if i := strings.IndexAny(t, " \t\n"); i >= 0 {
			text = strings.TrimSpace(t[i+1:])
		}
	}
	if err := h.engine.Stage(req.FromID, text); err != nil {
		return h.replyBroadcastErr(ctx, req, err)
	}

	total, err := h.store.CountRecipients(ctx)
	if err != nil {
		return err
	}

	preview := tgui.JoinH("\n",
		tgui.B("Broadcast preview"),
		tgui.Esc(text),
		"",
		tgui.Esc(fmt.Sprintf("Recipients: %d. Send?", total)),
	).String()
	markup := tgui.ConfirmInline(
		tgui.Btn("Send", tgui.Data(broadcastNS, "confirm", "")),
		tgui.Btn("Cancel", tgui.Data(broadcastNS, "cancel", "")),
	).Markup()
	_, err = req.Adapter.SendText(ctx, req.Chat, preview,
		&kit.SendOptions{ParseMode: htmlMode, ReplyMarkupAdapter: markup})
	return err
}

func (h *Handlers) cbBroadcastConfirm(ctx context.Context, req *core.Request, _ string) error {
	// drop the confirm keyboard so a second tap can't double-start
	_ = req.Adapter.EditText(ctx, callbackRef(req), "Broadcast confirmed.", nil)

	initiator := req.FromID
	log := req.Log

	// The fan-out outlives the callback request: it runs with its own detached
	// context and reports progress to the initiator itself.
	go func() {
		runCtx := context.WithoutCancel(ctx)
		if _, err := h.engine.Confirm(runCtx, initiator); err != nil {
			log.Warn("broadcast confirm failed", logx.Err(err))
			_, _ = h.adapter.SendText(runCtx, kit.ChatTarget{ChatID: initiator},
				broadcastErrText(err), nil)
		}
	}()
	return nil
}

func (h *Handlers) cbBroadcastCancel(ctx context.Context, req *core.Request, _ string) error {
	if h.engine.CancelPending(req.FromID) {
		return req.Adapter.EditText(ctx, callbackRef(req), "Broadcast cancelled.", nil)
	}
	return req.Adapter.EditText(ctx, callbackRef(req), "Nothing to cancel.", nil)
}

func (h *Handlers) handleCancelBroadcast(ctx context.Context, req *core.Request) error {
	if err := h.engine.Cancel(req.FromID); err != nil {
		return h.replyBroadcastErr(ctx, req, err)
	}
	_, err := req.Adapter.SendText(ctx, req.Chat, "Cancelling after the current recipient.", nil)
	return err
}

func (h *Handlers) handleBroadcastStatus(ctx context.Context, req *core.Request) error {
	p, ok := h.engine.Status(req.FromID)
	if !ok {
		_, err := req.Adapter.SendText(ctx, req.Chat, "No broadcast running.", nil)
		return err
	}
	_, err := req.Adapter.SendText(ctx, req.Chat,
		fmt.Sprintf("Running: %d/%d (sent %d, failed %d)", p.Processed, p.Total, p.Sent, p.Failed), nil)
	return err
}

func (h *Handlers) handleBroadcastHistory(ctx context.Context, req *core.Request) error {
	records, err := h.store.ListBroadcasts(ctx, 10)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		_, err := req.Adapter.SendText(ctx, req.Chat, "No broadcasts yet.", nil)
		return err
	}

	parts := make([]tgui.H, 0, len(records)+1)
	parts = append(parts, tgui.B("Recent broadcasts"))
	for _, r := range records {
		line := fmt.Sprintf("%s  %s  %d/%d sent",
			r.StartedAt.Format("2006-01-02 15:04"), r.Status, r.Sent, r.Total)
		if r.Failed > 0 {
			line += fmt.Sprintf(" (%d failed)", r.Failed)
		}
		parts = append(parts, tgui.JoinH("\n", tgui.Esc(line), tgui.I(r.Snippet)))
	}
	_, err = req.Adapter.SendText(ctx, req.Chat, tgui.JoinH("\n\n", parts...).String(),
		&kit.SendOptions{ParseMode: htmlMode})
	return err
}

func (h *Handlers) replyBroadcastErr(ctx context.Context, req *core.Request, err error) error {
	_, sendErr := req.Adapter.SendText(ctx, req.Chat, broadcastErrText(err), nil)
	return sendErr
}

func broadcastErrText(err error) string {
	switch {
	case errors.Is(err, broadcast.ErrEmptyMessage):
		return "usage: /broadcast <message>"
	case errors.Is(err, broadcast.ErrNoPending):
		return "No staged broadcast. Use /broadcast <message> first."
	case errors.Is(err, broadcast.ErrNoRecipients):
		return "No recipients known yet."
	case errors.Is(err, broadcast.ErrRunActive):
		return "A broadcast is already running. /cancel_broadcast to stop it."
	case errors.Is(err, broadcast.ErrNoActiveRun):
		return "No broadcast is running."
	case errors.Is(err, broadcast.ErrUnauthorized):
		return "unauthorized"
	default:
		return "broadcast error: " + err.Error()
	}
}
