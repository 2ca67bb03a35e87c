package broadcast

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"personabot/internal/kit"
	"personabot/internal/storage"
	logx "personabot/pkg/logx"
)

// Engine orchestrates administrator-initiated broadcast fan-outs.
//
// State machine per initiator: Idle -> Confirming -> Running -> terminal
// (Completed, Cancelled, Failed). Stage creates or overwrites the pending
// payload, Confirm runs the fan-out synchronously in the caller's goroutine,
// Cancel flips a cooperative flag observed between recipients.
type Engine struct {
	store   storage.Store
	adapter kit.Adapter
	isAdmin func(int64) bool
	log     logx.Logger
	cfg     Config

	now func() time.Time

	mu      sync.Mutex
	pending map[int64]pending
	jobs    map[int64]*job
}

func NewEngine(store storage.Store, adapter kit.Adapter, isAdmin func(int64) bool, cfg Config, log logx.Logger) *Engine {
	if log.IsZero() {
		log = logx.Nop()
	}
	return &Engine{
		store:   store,
		adapter: adapter,
		isAdmin: isAdmin,
		log:     log,
		cfg:     cfg.withDefaults(),
		now:     time.Now,
		pending: map[int64]pending{},
		jobs:    map[int64]*job{},
	}
}

// Stage stores text as the initiator's pending payload, overwriting any
// previous one. Nothing is sent yet.
func (e *Engine) Stage(initiator int64, text string) error {
	if !e.isAdmin(initiator) {
		return ErrUnauthorized
	}
	if text == "" {
		return ErrEmptyMessage
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if _, running := e.jobs[initiator]; running {
		return ErrRunActive
	}
	e.pending[initiator] = pending{Text: text, StagedAt: e.now()}
	return nil
}

// PendingText returns the staged payload, if any.
func (e *Engine) PendingText(initiator int64) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	p, ok := e.pending[initiator]
	return p.Text, ok
}

// CancelPending discards the staged payload without running. Reports whether
// anything was discarded.
func (e *Engine) CancelPending(initiator int64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.pending[initiator]; !ok {
		return false
	}
	delete(e.pending, initiator)
	return true
}

// Confirm starts the fan-out for the staged payload and blocks until the run
// reaches a terminal state. The recipient snapshot is taken once at entry;
// recipients registered later are not included in this run.
func (e *Engine) Confirm(ctx context.Context, initiator int64) (Result, error) {
	if !e.isAdmin(initiator) {
		return Result{}, ErrUnauthorized
	}

	e.mu.Lock()
	if _, running := e.jobs[initiator]; running {
		e.mu.Unlock()
		return Result{}, ErrRunActive
	}
	p, ok := e.pending[initiator]
	if !ok {
		e.mu.Unlock()
		return Result{}, ErrNoPending
	}
	e.mu.Unlock()

	snapshot, err := e.store.ListRecipients(ctx)
	if err != nil {
		e.log.Error("recipient snapshot failed", logx.Int64("initiator", initiator), logx.Err(err))
		return Result{}, fmt.Errorf("list recipients: %w", err)
	}
	if len(snapshot) == 0 {
		// Informational no-op: no record, no deliveries.
		return Result{}, ErrNoRecipients
	}

	j := &job{initiator: initiator, total: len(snapshot), startedAt: e.now()}

	e.mu.Lock()
	if _, running := e.jobs[initiator]; running {
		e.mu.Unlock()
		return Result{}, ErrRunActive
	}
	e.jobs[initiator] = j
	delete(e.pending, initiator)
	e.mu.Unlock()

	res := e.run(ctx, j, p.Text, snapshot)

	e.mu.Lock()
	delete(e.jobs, initiator)
	e.mu.Unlock()

	e.persist(initiator, p.Text, res)
	return res, nil
}

// Cancel requests cancellation of the initiator's running job. Cooperative:
// the run observes the flag before the next delivery, never mid-flight.
func (e *Engine) Cancel(initiator int64) error {
	if !e.isAdmin(initiator) {
		return ErrUnauthorized
	}
	e.mu.Lock()
	j, ok := e.jobs[initiator]
	e.mu.Unlock()
	if !ok {
		return ErrNoActiveRun
	}
	j.cancelled.Store(true)
	return nil
}

// Status reports live progress of the initiator's running job.
func (e *Engine) Status(initiator int64) (Progress, bool) {
	e.mu.Lock()
	j, ok := e.jobs[initiator]
	e.mu.Unlock()
	if !ok {
		return Progress{}, false
	}
	return Progress{
		Total:     j.total,
		Processed: int(j.processed.Load()),
		Sent:      int(j.sent.Load()),
		Failed:    int(j.failed.Load()),
	}, true
}

// run executes the fan-out loop. Any panic inside is caught at this boundary
// and turns the run into a Failed terminal state with the counts accumulated
// so far.
func (e *Engine) run(ctx context.Context, j *job, text string, snapshot []storage.Recipient) (res Result) {
	res = Result{
		Status:    StatusRunning,
		Total:     j.total,
		StartedAt: j.startedAt,
	}
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("broadcast run panicked",
				logx.Int64("initiator", j.initiator),
				logx.Any("panic", r),
			)
			res.Status = StatusFailed
		}
		res.Sent = int(j.sent.Load())
		res.Failed = int(j.failed.Load())
		res.FinishedAt = e.now()
	}()

	statusRef, statusOK := e.emitInitial(ctx, j)

	limiter := rate.NewLimiter(rate.Every(e.cfg.SendInterval), 1)
	lastEdit := e.now()

	for _, r := range snapshot {
		if j.cancelled.Load() {
			res.Status = StatusCancelled
			break
		}

		// Fixed inter-message delay; the first recipient goes immediately.
		if err := limiter.Wait(ctx); err != nil {
			e.log.Warn("broadcast interrupted", logx.Int64("initiator", j.initiator), logx.Err(err))
			res.Status = StatusCancelled
			break
		}

		_, err := e.adapter.SendText(ctx, kit.ChatTarget{ChatID: r.ChatID}, text, nil)
		if err != nil {
			j.failed.Add(1)
			res.FailedIDs = append(res.FailedIDs, r.UserID)
			e.log.Debug("broadcast delivery failed",
				logx.Int64("initiator", j.initiator),
				logx.Int64("recipient", r.UserID),
				logx.Err(err),
			)
		} else {
			j.sent.Add(1)
		}
		processed := int(j.processed.Add(1))

		if statusOK && (processed%e.cfg.ProgressEvery == 0 || e.now().Sub(lastEdit) >= e.cfg.ProgressInterval) {
			e.emitProgress(ctx, statusRef, j, processed)
			lastEdit = e.now()
		}
	}

	if res.Status == StatusRunning {
		res.Status = StatusCompleted
	}
	if statusOK {
		e.emitFinal(ctx, statusRef, j, res.Status)
	}
	return res
}

// persist writes the BroadcastRecord exactly once per terminal state.
// Failure is logged; the run outcome already reported stands regardless.
func (e *Engine) persist(initiator int64, text string, res Result) {
	rec := storage.BroadcastRecord{
		InitiatorID: initiator,
		Snippet:     snippet(text),
		Total:       res.Total,
		Sent:        res.Sent,
		Failed:      res.Failed,
		FailedIDs:   res.FailedIDs,
		Status:      string(res.Status),
		StartedAt:   res.StartedAt,
		FinishedAt:  res.FinishedAt,
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.store.AppendBroadcast(ctx, rec); err != nil {
		e.log.Error("broadcast record not persisted",
			logx.Int64("initiator", initiator),
			logx.String("status", string(res.Status)),
			logx.Err(err),
		)
	}
}

func (e *Engine) emitInitial(ctx context.Context, j *job) (kit.MessageRef, bool) {
	ref, err := e.adapter.SendText(ctx, kit.ChatTarget{ChatID: j.initiator},
		fmt.Sprintf("Broadcast started: 0/%d", j.total), nil)
	if err != nil {
		e.log.Warn("broadcast status message failed", logx.Int64("initiator", j.initiator), logx.Err(err))
		return kit.MessageRef{}, false
	}
	return ref, true
}

func (e *Engine) emitProgress(ctx context.Context, ref kit.MessageRef, j *job, processed int) {
	text := fmt.Sprintf("Broadcast: %d/%d (sent %d, failed %d)",
		processed, j.total, j.sent.Load(), j.failed.Load())
	if err := e.adapter.EditText(ctx, ref, text, nil); err != nil {
		e.log.Debug("broadcast progress edit failed", logx.Int64("initiator", j.initiator), logx.Err(err))
	}
}

func (e *Engine) emitFinal(ctx context.Context, ref kit.MessageRef, j *job, st Status) {
	var text string
	switch st {
	case StatusCancelled:
		text = fmt.Sprintf("Broadcast cancelled: sent %d, failed %d of %d",
			j.sent.Load(), j.failed.Load(), j.total)
	case StatusFailed:
		text = fmt.Sprintf("Broadcast failed: sent %d, failed %d of %d",
			j.sent.Load(), j.failed.Load(), j.total)
	default:
		text = fmt.Sprintf("Broadcast finished: sent %d, failed %d of %d",
			j.sent.Load(), j.failed.Load(), j.total)
	}
	if err := e.adapter.EditText(ctx, ref, text, nil); err != nil {
		e.log.Debug("broadcast final edit failed", logx.Int64("initiator", j.initiator), logx.Err(err))
	}
}

const snippetMax = 120

func snippet(text string) string {
	runes := []rune(text)
	if len(runes) <= snippetMax {
		return text
	}
	return string(runes[:snippetMax]) + "…"
}
