package broadcast

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"personabot/internal/kit"
	"personabot/internal/storage"
	logx "personabot/pkg/logx"
)

const admin int64 = 9000

// fakeAdapter records deliveries and can fail selected chats or run a hook
// after each delivery.
type fakeAdapter struct {
	mu        sync.Mutex
	delivered []int64 // chat ids of delivery sends, status messages excluded
	edits     []string
	failChats map[int64]bool
	afterSend func(n int) // called with the delivery count so far
}

func (f *fakeAdapter) Start(ctx context.Context, out chan<- kit.Update) error { return nil }
func (f *fakeAdapter) Stop(ctx context.Context) error                         { return nil }

func (f *fakeAdapter) SendText(ctx context.Context, to kit.ChatTarget, text string, opt *kit.SendOptions) (kit.MessageRef, error) {
	if to.ChatID == admin {
		// status message to the initiator
		return kit.MessageRef{ChatID: to.ChatID, MessageID: 1}, nil
	}
	f.mu.Lock()
	fail := f.failChats[to.ChatID]
	if !fail {
		f.delivered = append(f.delivered, to.ChatID)
	}
	n := len(f.delivered)
	hook := f.afterSend
	f.mu.Unlock()
	if hook != nil {
		hook(n)
	}
	if fail {
		return kit.MessageRef{}, errors.New("blocked by peer")
	}
	return kit.MessageRef{ChatID: to.ChatID, MessageID: 2}, nil
}

func (f *fakeAdapter) EditText(ctx context.Context, ref kit.MessageRef, text string, opt *kit.SendOptions) error {
	f.mu.Lock()
	f.edits = append(f.edits, text)
	f.mu.Unlock()
	return nil
}

func (f *fakeAdapter) SendDocument(ctx context.Context, to kit.ChatTarget, doc kit.Document) (kit.MessageRef, error) {
	return kit.MessageRef{}, nil
}

func (f *fakeAdapter) AnswerCallback(ctx context.Context, id, text string) error { return nil }

func (f *fakeAdapter) deliveredIDs() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int64(nil), f.delivered...)
}

func testEngine(t *testing.T, recipients []int64, fake *fakeAdapter) (*Engine, storage.Store) {
	t.Helper()
	store := storage.NewMemory()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range recipients {
		err := store.UpsertRecipient(ctx, storage.Recipient{
			UserID: id, ChatID: id, AddedAt: base.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("seed recipient: %v", err)
		}
	}
	cfg := Config{SendInterval: time.Millisecond, ProgressEvery: 2, ProgressInterval: time.Hour}
	eng := NewEngine(store, fake, func(id int64) bool { return id == admin }, cfg, logx.Nop())
	return eng, store
}

func lastRecord(t *testing.T, store storage.Store) storage.BroadcastRecord {
	t.Helper()
	recs, err := store.ListBroadcasts(context.Background(), 1)
	if err != nil || len(recs) != 1 {
		t.Fatalf("want exactly one record, got %d (err %v)", len(recs), err)
	}
	return recs[0]
}

func TestStageAuthorization(t *testing.T) {
	t.Parallel()
	eng, _ := testEngine(t, nil, &fakeAdapter{})

	if err := eng.Stage(123, "hi"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("Stage by non-admin = %v, want ErrUnauthorized", err)
	}
	if err := eng.Stage(admin, ""); !errors.Is(err, ErrEmptyMessage) {
		t.Errorf("empty text = %v, want ErrEmptyMessage", err)
	}
}

func TestStageOverwritesPending(t *testing.T) {
	t.Parallel()
	eng, _ := testEngine(t, nil, &fakeAdapter{})

	if err := eng.Stage(admin, "first"); err != nil {
		t.Fatalf("stage: %v", err)
	}
	if err := eng.Stage(admin, "second"); err != nil {
		t.Fatalf("restage: %v", err)
	}
	text, ok := eng.PendingText(admin)
	if !ok || text != "second" {
		t.Errorf("pending = %q, %v; want second", text, ok)
	}
}

func TestCancelPending(t *testing.T) {
	t.Parallel()
	eng, store := testEngine(t, []int64{1}, &fakeAdapter{})

	if eng.CancelPending(admin) {
		t.Error("nothing staged; CancelPending should report false")
	}
	_ = eng.Stage(admin, "x")
	if !eng.CancelPending(admin) {
		t.Error("CancelPending should discard the staged payload")
	}
	if _, err := eng.Confirm(context.Background(), admin); !errors.Is(err, ErrNoPending) {
		t.Errorf("confirm after cancel-pending = %v, want ErrNoPending", err)
	}
	if recs, _ := store.ListBroadcasts(context.Background(), 10); len(recs) != 0 {
		t.Errorf("cancelled staging must not write a record, got %d", len(recs))
	}
}

func TestConfirmWithoutPending(t *testing.T) {
	t.Parallel()
	eng, _ := testEngine(t, []int64{1}, &fakeAdapter{})
	if _, err := eng.Confirm(context.Background(), admin); !errors.Is(err, ErrNoPending) {
		t.Errorf("err = %v, want ErrNoPending", err)
	}
}

func TestConfirmEmptyRecipients(t *testing.T) {
	t.Parallel()
	fake := &fakeAdapter{}
	eng, store := testEngine(t, nil, fake)

	_ = eng.Stage(admin, "hello")
	_, err := eng.Confirm(context.Background(), admin)
	if !errors.Is(err, ErrNoRecipients) {
		t.Fatalf("err = %v, want ErrNoRecipients", err)
	}
	if len(fake.deliveredIDs()) != 0 {
		t.Error("no deliveries expected")
	}
	if recs, _ := store.ListBroadcasts(context.Background(), 10); len(recs) != 0 {
		t.Errorf("empty-set confirm must not write a record, got %d", len(recs))
	}
}

func TestCompletedRunCounts(t *testing.T) {
	t.Parallel()
	fake := &fakeAdapter{}
	eng, store := testEngine(t, []int64{1001, 1002, 1003}, fake)

	_ = eng.Stage(admin, "Hello")
	res, err := eng.Confirm(context.Background(), admin)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if res.Status != StatusCompleted || res.Total != 3 || res.Sent != 3 || res.Failed != 0 {
		t.Errorf("result = %+v", res)
	}
	if len(res.FailedIDs) != 0 {
		t.Errorf("failed ids = %v", res.FailedIDs)
	}

	got := fake.deliveredIDs()
	want := []int64{1001, 1002, 1003}
	if len(got) != len(want) {
		t.Fatalf("delivered = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("delivery order = %v, want %v", got, want)
			break
		}
	}

	rec := lastRecord(t, store)
	if rec.Total != 3 || rec.Sent != 3 || rec.Failed != 0 || rec.Status != string(StatusCompleted) {
		t.Errorf("record = %+v", rec)
	}
}

func TestDeliveryFailureIsNonFatal(t *testing.T) {
	t.Parallel()
	fake := &fakeAdapter{failChats: map[int64]bool{2002: true}}
	eng, store := testEngine(t, []int64{2001, 2002, 2003}, fake)

	_ = eng.Stage(admin, "Hello")
	res, err := eng.Confirm(context.Background(), admin)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if res.Sent != 2 || res.Failed != 1 {
		t.Errorf("result = %+v", res)
	}
	if len(res.FailedIDs) != 1 || res.FailedIDs[0] != 2002 {
		t.Errorf("failed ids = %v, want [2002]", res.FailedIDs)
	}
	// 2003 still processed after 2002 failed.
	got := fake.deliveredIDs()
	if len(got) != 2 || got[1] != 2003 {
		t.Errorf("delivered = %v", got)
	}
	rec := lastRecord(t, store)
	if rec.Failed != 1 || len(rec.FailedIDs) != 1 || rec.FailedIDs[0] != 2002 {
		t.Errorf("record = %+v", rec)
	}
	if res.Sent+res.Failed != res.Total {
		t.Errorf("sent+failed != total: %+v", res)
	}
}

func TestCancelMidRun(t *testing.T) {
	t.Parallel()
	var eng *Engine
	fake := &fakeAdapter{}
	fake.afterSend = func(n int) {
		if n == 2 {
			if err := eng.Cancel(admin); err != nil {
				t.Errorf("cancel: %v", err)
			}
		}
	}
	var store storage.Store
	eng, store = testEngine(t, []int64{1, 2, 3, 4, 5}, fake)
	_ = eng.Stage(admin, "stop me")
	res, err := eng.Confirm(context.Background(), admin)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if res.Status != StatusCancelled {
		t.Fatalf("status = %s, want cancelled", res.Status)
	}
	if res.Sent != 2 || res.Failed != 0 {
		t.Errorf("prefix counts = %+v", res)
	}
	if got := fake.deliveredIDs(); len(got) != 2 {
		t.Errorf("recipients after cancel point were processed: %v", got)
	}
	rec := lastRecord(t, store)
	if rec.Status != string(StatusCancelled) || rec.Sent != 2 || rec.Total != 5 {
		t.Errorf("record = %+v", rec)
	}
}

func TestCancelWithoutRun(t *testing.T) {
	t.Parallel()
	eng, _ := testEngine(t, []int64{1}, &fakeAdapter{})
	if err := eng.Cancel(admin); !errors.Is(err, ErrNoActiveRun) {
		t.Errorf("err = %v, want ErrNoActiveRun", err)
	}
	if err := eng.Cancel(123); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized", err)
	}
}

func TestStageRejectedWhileRunning(t *testing.T) {
	t.Parallel()
	var eng *Engine
	var stageErr error
	fake := &fakeAdapter{}
	fake.afterSend = func(n int) {
		if n == 1 {
			stageErr = eng.Stage(admin, "second while running")
		}
	}
	eng, _ = testEngine(t, []int64{1, 2, 3}, fake)
	_ = eng.Stage(admin, "first")
	if _, err := eng.Confirm(context.Background(), admin); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if !errors.Is(stageErr, ErrRunActive) {
		t.Errorf("stage during run = %v, want ErrRunActive", stageErr)
	}
}

func TestStatusDuringRun(t *testing.T) {
	t.Parallel()
	var eng *Engine
	var mid Progress
	var midOK bool
	fake := &fakeAdapter{}
	fake.afterSend = func(n int) {
		if n == 2 {
			mid, midOK = eng.Status(admin)
		}
	}
	eng, _ = testEngine(t, []int64{1, 2, 3, 4}, fake)
	_ = eng.Stage(admin, "x")
	if _, err := eng.Confirm(context.Background(), admin); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if !midOK {
		t.Fatal("Status should report a running job")
	}
	if mid.Total != 4 || mid.Sent < 1 {
		t.Errorf("mid progress = %+v", mid)
	}
	if _, ok := eng.Status(admin); ok {
		t.Error("Status should miss after the run finished")
	}
}

func TestProgressEdits(t *testing.T) {
	t.Parallel()
	fake := &fakeAdapter{}
	eng, _ := testEngine(t, []int64{1, 2, 3, 4, 5, 6}, fake)

	_ = eng.Stage(admin, "x")
	if _, err := eng.Confirm(context.Background(), admin); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	fake.mu.Lock()
	edits := len(fake.edits)
	fake.mu.Unlock()
	// ProgressEvery=2 over 6 recipients: 3 step edits plus the final one.
	if edits != 4 {
		t.Errorf("edits = %d, want 4", edits)
	}
}

func TestIndependentInitiatorsNotAffected(t *testing.T) {
	t.Parallel()
	// The per-initiator registry means a cancel for an unknown initiator
	// does not disturb a pending payload of another.
	eng, _ := testEngine(t, []int64{1}, &fakeAdapter{})
	_ = eng.Stage(admin, "keep me")
	if err := eng.Cancel(admin); !errors.Is(err, ErrNoActiveRun) {
		t.Fatalf("cancel = %v", err)
	}
	if text, ok := eng.PendingText(admin); !ok || text != "keep me" {
		t.Errorf("pending lost: %q %v", text, ok)
	}
}
