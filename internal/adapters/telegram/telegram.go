// Package telegram adapts telebot long polling to the kit.Adapter contract.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	tele "gopkg.in/telebot.v4"

	"personabot/internal/kit"
	logx "personabot/pkg/logx"
)

const (
	defaultPollTimeout = 10 * time.Second
	apiTimeout         = 8 * time.Second
	dropReportPeriod   = 5 * time.Second
	stopGrace          = 2 * time.Second
)

type Adapter struct {
	cfg Config
	log logx.Logger
	bot *tele.Bot

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	// updates that found the consumer channel full; reported in batches
	dropped atomic.Uint64

	menuMu   sync.Mutex
	menuHash uint64
	http     *http.Client
}

func New(cfg Config, log logx.Logger) (*Adapter, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, errors.New("telegram token is empty")
	}
	poll := cfg.PollTimeout
	if poll <= 0 {
		poll = defaultPollTimeout
	}
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: poll},
	})
	if err != nil {
		return nil, err
	}
	return &Adapter{
		cfg:  cfg,
		log:  log,
		bot:  bot,
		http: &http.Client{Timeout: apiTimeout},
	}, nil
}

func (a *Adapter) Start(ctx context.Context, out chan<- kit.Update) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.running {
		return nil
	}
	a.running = true

	rctx, cancel := context.WithCancel(ctx)
	a.cancel = cancel

	a.bot.Handle(tele.OnText, func(c tele.Context) error {
		a.enqueue(out, messageUpdate(c))
		return nil
	})
	a.bot.Handle(tele.OnCallback, func(c tele.Context) error {
		a.enqueue(out, callbackUpdate(c))
		return nil
	})

	a.wg.Add(2)
	go a.reportDrops(rctx, cap(out))
	go func() {
		defer a.wg.Done()
		go func() {
			<-rctx.Done()
			a.bot.Stop()
		}()
		a.log.Info("polling started")
		a.bot.Start()
	}()
	return nil
}

// enqueue hands an update to the consumer without blocking the poll loop.
func (a *Adapter) enqueue(out chan<- kit.Update, up kit.Update) {
	if up.Kind == "" {
		return
	}
	select {
	case out <- up:
	default:
		a.dropped.Add(1)
	}
}

func messageUpdate(c tele.Context) kit.Update {
	m := c.Message()
	if m == nil || m.Sender == nil {
		return kit.Update{}
	}
	return kit.Update{
		Kind: kit.UpdateMessage,
		Message: &kit.Message{
			ID:            m.ID,
			ChatID:        m.Chat.ID,
			FromID:        m.Sender.ID,
			FromUsername:  m.Sender.Username,
			FromFirstName: m.Sender.FirstName,
			Text:          m.Text,
			IsGroup:       m.Chat.Type != tele.ChatPrivate,
		},
	}
}

func callbackUpdate(c tele.Context) kit.Update {
	cb := c.Callback()
	m := c.Message()
	if cb == nil || m == nil {
		return kit.Update{}
	}
	return kit.Update{
		Kind: kit.UpdateCallback,
		Callback: &kit.Callback{
			ID:        cb.ID,
			ChatID:    m.Chat.ID,
			FromID:    cb.Sender.ID,
			MessageID: m.ID,
			Data:      strings.TrimPrefix(cb.Data, "\f"),
		},
	}
}

// reportDrops logs dropped-update totals in batches instead of per update.
func (a *Adapter) reportDrops(ctx context.Context, chanCap int) {
	defer a.wg.Done()
	flush := func() {
		if n := a.dropped.Swap(0); n > 0 {
			a.log.Warn("incoming updates dropped, channel full",
				logx.Int64("count", int64(n)), logx.Int("chan_cap", chanCap))
		}
	}
	ticker := time.NewTicker(dropReportPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			flush()
			return
		case <-ticker.C:
			flush()
		}
	}
}

// Stop cancels polling and waits briefly. A hanging getUpdates call must not
// hold up process shutdown, so the wait is bounded by a short grace window.
func (a *Adapter) Stop(ctx context.Context) error {
	a.mu.Lock()
	cancel := a.cancel
	a.cancel = nil
	wasRunning := a.running
	a.running = false
	a.mu.Unlock()

	if !wasRunning {
		return nil
	}
	a.log.Info("stopping polling")
	if cancel != nil {
		cancel()
	}
	go a.bot.Stop()

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()

	grace := stopGrace
	if dl, ok := ctx.Deadline(); ok {
		if rem := time.Until(dl); rem > 0 && rem < grace {
			grace = rem
		}
	}
	timer := time.NewTimer(grace)
	defer timer.Stop()

	select {
	case <-done:
		a.log.Info("polling stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		a.log.Warn("stop grace elapsed, continuing shutdown")
		return nil
	}
}

func toSendOptions(opt *kit.SendOptions) *tele.SendOptions {
	if opt == nil {
		return &tele.SendOptions{}
	}
	so := &tele.SendOptions{
		ParseMode:             opt.ParseMode,
		DisableWebPagePreview: opt.DisablePreview,
	}
	if rm, ok := opt.ReplyMarkupAdapter.(*tele.ReplyMarkup); ok {
		so.ReplyMarkup = rm
	}
	return so
}

func (a *Adapter) SendText(ctx context.Context, to kit.ChatTarget, text string, opt *kit.SendOptions) (kit.MessageRef, error) {
	msg, err := a.bot.Send(&tele.Chat{ID: to.ChatID}, text, toSendOptions(opt))
	if err != nil {
		return kit.MessageRef{}, err
	}
	return kit.MessageRef{ChatID: to.ChatID, MessageID: msg.ID}, nil
}

func (a *Adapter) EditText(ctx context.Context, ref kit.MessageRef, text string, opt *kit.SendOptions) error {
	target := &tele.Message{ID: ref.MessageID, Chat: &tele.Chat{ID: ref.ChatID}}
	_, err := a.bot.Edit(target, text, toSendOptions(opt))
	return err
}

func (a *Adapter) SendDocument(ctx context.Context, to kit.ChatTarget, doc kit.Document) (kit.MessageRef, error) {
	msg, err := a.bot.Send(&tele.Chat{ID: to.ChatID}, &tele.Document{
		File:     tele.FromReader(bytes.NewReader(doc.Data)),
		FileName: doc.Name,
		Caption:  doc.Caption,
	})
	if err != nil {
		return kit.MessageRef{}, err
	}
	return kit.MessageRef{ChatID: to.ChatID, MessageID: msg.ID}, nil
}

func (a *Adapter) AnswerCallback(ctx context.Context, callbackID string, text string) error {
	return a.bot.Respond(&tele.Callback{ID: callbackID}, &tele.CallbackResponse{Text: text})
}

type menuCommand struct {
	Command     string `json:"command"`
	Description string `json:"description"`
}

func menuPayload(cmds []kit.BotCommand) []menuCommand {
	out := make([]menuCommand, 0, len(cmds))
	for _, c := range cmds {
		if c.Command == "" {
			continue
		}
		desc := c.Description
		if desc == "" {
			desc = c.Command
		}
		if len(desc) > 256 {
			desc = desc[:256]
		}
		out = append(out, menuCommand{Command: c.Command, Description: desc})
		// Bot API caps the menu at 100 entries
		if len(out) == 100 {
			break
		}
	}
	return out
}

func menuDigest(cmds []menuCommand) uint64 {
	h := fnv.New64a()
	for _, c := range cmds {
		h.Write([]byte(c.Command))
		h.Write([]byte{0})
		h.Write([]byte(c.Description))
		h.Write([]byte{0})
	}
	return h.Sum64()
}

// UpdateMenuCommands publishes the command menu via setMyCommands, skipping
// the network call when the list has not changed since the last push.
func (a *Adapter) UpdateMenuCommands(ctx context.Context, cmds []kit.BotCommand) error {
	a.menuMu.Lock()
	defer a.menuMu.Unlock()

	payload := menuPayload(cmds)
	digest := menuDigest(payload)
	if digest == a.menuHash {
		return nil
	}

	body, err := json.Marshal(struct {
		Commands []menuCommand `json:"commands"`
	}{payload})
	if err != nil {
		return err
	}

	url := "https://api.telegram.org/bot" + strings.TrimSpace(a.cfg.Token) + "/setMyCommands"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	client := a.http
	if client == nil {
		client = &http.Client{Timeout: apiTimeout}
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var apiResp struct {
		OK          bool   `json:"ok"`
		ErrorCode   int    `json:"error_code"`
		Description string `json:"description"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&apiResp)
	if resp.StatusCode/100 != 2 || !apiResp.OK {
		if apiResp.Description != "" {
			return fmt.Errorf("setMyCommands: %s (code=%d http=%d)", apiResp.Description, apiResp.ErrorCode, resp.StatusCode)
		}
		return fmt.Errorf("setMyCommands: http=%d", resp.StatusCode)
	}

	a.menuHash = digest
	a.log.Info("menu commands updated", logx.Int("count", len(payload)))
	return nil
}
