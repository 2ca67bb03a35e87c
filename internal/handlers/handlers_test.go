package handlers

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"personabot/internal/broadcast"
	"personabot/internal/core"
	"personabot/internal/generator"
	"personabot/internal/kit"
	"personabot/internal/settings"
	"personabot/internal/storage"
	logx "personabot/pkg/logx"
)

type fakeAdapter struct {
	mu   sync.Mutex
	sent []string
	docs []kit.Document
	edit []string
}

func (f *fakeAdapter) Start(ctx context.Context, out chan<- kit.Update) error { return nil }
func (f *fakeAdapter) Stop(ctx context.Context) error                         { return nil }

func (f *fakeAdapter) SendText(ctx context.Context, to kit.ChatTarget, text string, opt *kit.SendOptions) (kit.MessageRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, text)
	return kit.MessageRef{ChatID: to.ChatID, MessageID: len(f.sent)}, nil
}

func (f *fakeAdapter) EditText(ctx context.Context, ref kit.MessageRef, text string, opt *kit.SendOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.edit = append(f.edit, text)
	return nil
}

func (f *fakeAdapter) SendDocument(ctx context.Context, to kit.ChatTarget, doc kit.Document) (kit.MessageRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs = append(f.docs, doc)
	return kit.MessageRef{ChatID: to.ChatID, MessageID: 1}, nil
}

func (f *fakeAdapter) AnswerCallback(ctx context.Context, callbackID string, text string) error {
	return nil
}

func (f *fakeAdapter) lastSent(t *testing.T) string {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.sent) == 0 {
		t.Fatal("nothing sent")
	}
	return f.sent[len(f.sent)-1]
}

func newTestHandlers(t *testing.T, admins ...int64) (*Handlers, *fakeAdapter, storage.Store) {
	t.Helper()
	store := storage.NewMemory()
	ad := &fakeAdapter{}
	isAdmin := func(id int64) bool {
		for _, a := range admins {
			if a == id {
				return true
			}
		}
		return false
	}
	h := New(Deps{
		Store:    store,
		Settings: settings.NewService(store, 10, logx.Nop()),
		Gen:      generator.New(rand.New(rand.NewSource(42))),
		Engine:   broadcast.NewEngine(store, ad, isAdmin, broadcast.Config{}, logx.Nop()),
		Adapter:  ad,
		Log:      logx.Nop(),
	})
	return h, ad, store
}

func msgRequest(ad kit.Adapter, from int64, text string, args ...string) *core.Request {
	return &core.Request{
		Update: kit.Update{
			Kind:    kit.UpdateMessage,
			Message: &kit.Message{ID: 1, ChatID: from, FromID: from, FromUsername: "tester", Text: text},
		},
		Chat:    kit.ChatTarget{ChatID: from},
		FromID:  from,
		Args:    args,
		Adapter: ad,
		Log:     logx.Nop(),
	}
}

func cbRequest(ad kit.Adapter, from int64, data string) *core.Request {
	return &core.Request{
		Update: kit.Update{
			Kind:     kit.UpdateCallback,
			Callback: &kit.Callback{ID: "cb", ChatID: from, FromID: from, MessageID: 5, Data: data},
		},
		Chat:    kit.ChatTarget{ChatID: from},
		FromID:  from,
		Adapter: ad,
		Log:     logx.Nop(),
	}
}

func TestStartTracksRecipient(t *testing.T) {
	t.Parallel()
	h, ad, store := newTestHandlers(t)
	ctx := context.Background()

	if err := h.handleStart(ctx, msgRequest(ad, 42, "/start")); err != nil {
		t.Fatalf("start: %v", err)
	}

	n, err := store.CountRecipients(ctx)
	if err != nil || n != 1 {
		t.Fatalf("recipients = %d, err %v", n, err)
	}
	if !strings.Contains(ad.lastSent(t), "Welcome") {
		t.Errorf("welcome missing: %q", ad.lastSent(t))
	}
}

func TestGenerateSendsProfile(t *testing.T) {
	t.Parallel()
	h, ad, _ := newTestHandlers(t)

	if err := h.handleGenerate(context.Background(), msgRequest(ad, 42, "/generate")); err != nil {
		t.Fatalf("generate: %v", err)
	}
	out := ad.lastSent(t)
	for _, want := range []string{"<b>Name</b>", "<b>Email</b>", "<b>Password</b>"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateCountClamped(t *testing.T) {
	t.Parallel()
	h, ad, _ := newTestHandlers(t)

	if err := h.handleGenerate(context.Background(), msgRequest(ad, 42, "/generate 500", "500")); err != nil {
		t.Fatalf("generate: %v", err)
	}
	out := ad.lastSent(t)
	if !strings.Contains(out, "Profile 10") {
		t.Errorf("expected clamp to 10 profiles:\n%.200s", out)
	}
	if strings.Contains(out, "Profile 11") {
		t.Error("count not clamped")
	}
}

func TestGenerateBadCountShowsUsage(t *testing.T) {
	t.Parallel()
	h, ad, _ := newTestHandlers(t)

	req := msgRequest(ad, 42, "/generate abc", "abc")
	req.Command = "generate"
	if err := h.handleGenerate(context.Background(), req); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(ad.lastSent(t), "usage:") {
		t.Errorf("no usage hint: %q", ad.lastSent(t))
	}
}

func TestGenerateJSONDocumentForLargeBatch(t *testing.T) {
	t.Parallel()
	h, ad, _ := newTestHandlers(t)

	if err := h.handleGenerateJSON(context.Background(), msgRequest(ad, 42, "/generate_json 10", "10")); err != nil {
		t.Fatalf("generate_json: %v", err)
	}
	ad.mu.Lock()
	defer ad.mu.Unlock()
	if len(ad.docs) != 1 {
		t.Fatalf("docs = %d, want document for large batch", len(ad.docs))
	}
	if ad.docs[0].Name != "profiles.json" {
		t.Errorf("doc name = %q", ad.docs[0].Name)
	}
}

func TestSetPasswordPersists(t *testing.T) {
	t.Parallel()
	h, ad, _ := newTestHandlers(t)
	ctx := context.Background()

	req := msgRequest(ad, 42, "/set_password 10-14,lower,special", "10-14,lower,special")
	if err := h.handleSetPassword(ctx, req); err != nil {
		t.Fatalf("set_password: %v", err)
	}
	st := h.settings.Get(ctx, 42)
	if st.PasswordSpec != "10-14,lower,special" {
		t.Errorf("spec = %q", st.PasswordSpec)
	}
}

func TestGenderCallbackUpdatesSettings(t *testing.T) {
	t.Parallel()
	h, ad, _ := newTestHandlers(t)
	ctx := context.Background()

	if err := h.cbGender(ctx, cbRequest(ad, 42, "settings:gender:female"), "female"); err != nil {
		t.Fatalf("cbGender: %v", err)
	}
	if got := h.settings.Get(ctx, 42).Gender; got != "female" {
		t.Errorf("gender = %q", got)
	}

	if err := h.cbGender(ctx, cbRequest(ad, 42, "settings:gender:any"), "any"); err != nil {
		t.Fatalf("cbGender: %v", err)
	}
	if got := h.settings.Get(ctx, 42).Gender; got != "" {
		t.Errorf("gender after any = %q", got)
	}
}

func TestNatCallbackToggles(t *testing.T) {
	t.Parallel()
	h, ad, _ := newTestHandlers(t)
	ctx := context.Background()

	if err := h.cbNat(ctx, cbRequest(ad, 42, "settings:nat:DE"), "DE"); err != nil {
		t.Fatalf("cbNat: %v", err)
	}
	if got := h.settings.Get(ctx, 42).Nationalities; len(got) != 1 || got[0] != "DE" {
		t.Errorf("nationalities = %v", got)
	}

	if err := h.cbNat(ctx, cbRequest(ad, 42, "settings:nat:DE"), "DE"); err != nil {
		t.Fatalf("cbNat: %v", err)
	}
	if got := h.settings.Get(ctx, 42).Nationalities; len(got) != 0 {
		t.Errorf("nationalities after toggle off = %v", got)
	}
}

func TestFieldCallbackTogglesExclude(t *testing.T) {
	t.Parallel()
	h, ad, _ := newTestHandlers(t)
	ctx := context.Background()

	if err := h.cbField(ctx, cbRequest(ad, 42, "settings:field:login"), "login"); err != nil {
		t.Fatalf("cbField: %v", err)
	}
	if h.settings.Get(ctx, 42).FieldEnabled("login") {
		t.Error("login still enabled after toggle")
	}

	if err := h.cbField(ctx, cbRequest(ad, 42, "settings:field:login"), "login"); err != nil {
		t.Fatalf("cbField: %v", err)
	}
	if !h.settings.Get(ctx, 42).FieldEnabled("login") {
		t.Error("login not re-enabled")
	}
}

func TestBroadcastStageAndCancel(t *testing.T) {
	t.Parallel()
	h, ad, store := newTestHandlers(t, 99)
	ctx := context.Background()

	_ = store.UpsertRecipient(ctx, storage.Recipient{UserID: 1, ChatID: 1})

	if err := h.handleBroadcast(ctx, msgRequest(ad, 99, "/broadcast hello everyone")); err != nil {
		t.Fatalf("broadcast: %v", err)
	}
	if !strings.Contains(ad.lastSent(t), "Broadcast preview") {
		t.Errorf("no preview: %q", ad.lastSent(t))
	}
	if text, ok := h.engine.PendingText(99); !ok || text != "hello everyone" {
		t.Errorf("pending = %q, %v", text, ok)
	}

	if err := h.cbBroadcastCancel(ctx, cbRequest(ad, 99, "bcast:cancel"), ""); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if _, ok := h.engine.PendingText(99); ok {
		t.Error("pending survived cancel")
	}
}

func TestBroadcastEmptyShowsUsage(t *testing.T) {
	t.Parallel()
	h, ad, _ := newTestHandlers(t, 99)

	if err := h.handleBroadcast(context.Background(), msgRequest(ad, 99, "/broadcast")); err != nil {
		t.Fatalf("broadcast: %v", err)
	}
	if !strings.Contains(ad.lastSent(t), "usage: /broadcast") {
		t.Errorf("no usage hint: %q", ad.lastSent(t))
	}
}

func TestExportRecipientsCSV(t *testing.T) {
	t.Parallel()
	h, ad, store := newTestHandlers(t, 99)
	ctx := context.Background()

	_ = store.UpsertRecipient(ctx, storage.Recipient{UserID: 1, ChatID: 1, Username: "alice"})
	_ = store.UpsertRecipient(ctx, storage.Recipient{UserID: 2, ChatID: 2, Username: "bob"})

	if err := h.cbExportRecipients(ctx, cbRequest(ad, 99, "admin:export"), ""); err != nil {
		t.Fatalf("export: %v", err)
	}

	ad.mu.Lock()
	defer ad.mu.Unlock()
	if len(ad.docs) != 1 {
		t.Fatalf("docs = %d", len(ad.docs))
	}
	body := string(ad.docs[0].Data)
	if !strings.HasPrefix(body, "user_id,chat_id,username,first_name,added_at") {
		t.Errorf("missing header: %.80q", body)
	}
	if !strings.Contains(body, "alice") || !strings.Contains(body, "bob") {
		t.Errorf("rows missing:\n%s", body)
	}
}

func TestBroadcastHistoryEmpty(t *testing.T) {
	t.Parallel()
	h, ad, _ := newTestHandlers(t, 99)

	if err := h.handleBroadcastHistory(context.Background(), msgRequest(ad, 99, "/broadcast_history")); err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(ad.lastSent(t), "No broadcasts yet") {
		t.Errorf("unexpected: %q", ad.lastSent(t))
	}
}
