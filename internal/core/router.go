package core

import (
	"context"
	"runtime"
	"runtime/debug"
	"sort"
	"strings"
	"sync"

	"personabot/internal/config"
	"personabot/internal/kit"
	logx "personabot/pkg/logx"
)

// Router owns the command and callback registries and fans incoming updates
// out to a bounded worker pool.
type Router struct {
	mu       sync.RWMutex
	commands map[string]*Command // name -> command
	alias    map[string]*Command // alias -> command
	admins   []int64

	cbMu      sync.RWMutex
	callbacks map[string]map[string]CallbackRoute // ns -> action -> route

	log     logx.Logger
	adapter kit.Adapter
	cfgm    *config.Manager

	jobs chan func()
}

func NewRouter(log logx.Logger, adapter kit.Adapter, cfgm *config.Manager, admins []int64) *Router {
	// copy to avoid callers mutating the slice after construction
	adminCopy := append([]int64(nil), admins...)
	return &Router{
		commands:  map[string]*Command{},
		alias:     map[string]*Command{},
		callbacks: map[string]map[string]CallbackRoute{},
		log:       log,
		adapter:   adapter,
		cfgm:      cfgm,
		admins:    adminCopy,
		jobs:      make(chan func(), 256),
	}
}

// SetAdmins updates the admin list used for AccessAdminOnly checks.
// Safe to call during hot-reload.
func (m *Router) SetAdmins(admins []int64) {
	adminCopy := append([]int64(nil), admins...)
	m.mu.Lock()
	m.admins = adminCopy
	m.mu.Unlock()
}

func (m *Router) adminsSnapshot() []int64 {
	m.mu.RLock()
	cp := append([]int64(nil), m.admins...)
	m.mu.RUnlock()
	return cp
}

func (m *Router) SetRegistry(cmds []Command, cbs []CallbackRoute) {
	// always inject help
	helper := Command{
		Name:        "help",
		Aliases:     []string{"h"},
		Description: "show available commands",
		Usage:       "/help",
		Access:      AccessEveryone,
		Handle: func(ctx context.Context, req *Request) error {
			text := m.helpText(isAdmin(req.FromID, m.adminsSnapshot()))
			_, _ = req.Adapter.SendText(ctx, req.Chat, text, &kit.SendOptions{DisablePreview: true})
			return nil
		},
	}
	cmds = append(cmds, helper)

	commands := map[string]*Command{}
	alias := map[string]*Command{}
	for _, c := range cmds {
		name := strings.TrimSpace(strings.TrimPrefix(c.Name, "/"))
		if name == "" || c.Handle == nil {
			continue
		}
		cc := c // copy
		cc.Name = name
		commands[name] = &cc
		for _, a := range c.Aliases {
			a = strings.TrimSpace(a)
			if a == "" || strings.Contains(a, " ") {
				continue
			}
			alias[a] = &cc
		}
	}

	cb := map[string]map[string]CallbackRoute{}
	for _, r := range cbs {
		ns := strings.TrimSpace(r.NS)
		action := strings.TrimSpace(r.Action)
		if ns == "" || action == "" || r.Handle == nil {
			continue
		}
		if cb[ns] == nil {
			cb[ns] = map[string]CallbackRoute{}
		}
		cb[ns][action] = r
	}

	m.mu.Lock()
	m.commands = commands
	m.alias = alias
	m.mu.Unlock()

	m.cbMu.Lock()
	m.callbacks = cb
	m.cbMu.Unlock()
}

// MenuCommands returns the visible, non-admin command list for the platform
// command menu, sorted by name.
func (m *Router) MenuCommands() []kit.BotCommand {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]kit.BotCommand, 0, len(m.commands))
	for _, c := range m.commands {
		if c.Hidden || c.Access != AccessEveryone {
			continue
		}
		out = append(out, kit.BotCommand{Command: c.Name, Description: c.Description})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Command < out[j].Command })
	return out
}

func (m *Router) helpText(admin bool) string {
	m.mu.RLock()
	cmds := make([]*Command, 0, len(m.commands))
	for _, c := range m.commands {
		cmds = append(cmds, c)
	}
	m.mu.RUnlock()

	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })

	var b strings.Builder
	b.WriteString("Commands:\n")
	for _, c := range cmds {
		if c.Hidden {
			continue
		}
		if c.Access == AccessAdminOnly && !admin {
			continue
		}
		usage := c.Usage
		if usage == "" {
			usage = "/" + c.Name
		}
		b.WriteString(usage)
		if c.Description != "" {
			b.WriteString(" - ")
			b.WriteString(c.Description)
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Router) DispatchLoop(ctx context.Context, updates <-chan kit.Update) error {
	// bounded worker pool
	workers := runtime.NumCPU()
	if workers < 2 {
		workers = 2
	}

	m.log.Info("dispatcher started", logx.Int("workers", workers), logx.Int("job_queue_cap", cap(m.jobs)))

	var (
		wg        sync.WaitGroup
		closeOnce sync.Once
	)
	closeJobs := func() {
		closeOnce.Do(func() { close(m.jobs) })
	}

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		idx := i
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					m.log.Error("panic in dispatch worker", logx.Int("worker", idx), logx.Any("panic", r), logx.String("stack", string(debug.Stack())))
				}
			}()
			for {
				select {
				case <-ctx.Done():
					return
				case job, ok := <-m.jobs:
					if !ok {
						return
					}
					if job == nil {
						continue
					}
					job()
				}
			}
		}()
	}

	defer func() {
		closeJobs()
		wg.Wait()
		m.log.Info("dispatcher stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case up, ok := <-updates:
			if !ok {
				m.log.Info("dispatcher stopped (updates channel closed)")
				return nil
			}
			m.routeUpdate(ctx, up)
		}
	}
}

func (m *Router) routeUpdate(root context.Context, up kit.Update) {
	switch up.Kind {
	case kit.UpdateMessage:
		m.routeMessage(root, up)
	case kit.UpdateCallback:
		m.routeCallback(root, up)
	}
}

func (m *Router) routeMessage(root context.Context, up kit.Update) {
	if up.Message == nil {
		return
	}
	msg := up.Message
	text := strings.TrimSpace(msg.Text)
	if !strings.HasPrefix(text, "/") {
		return
	}

	parts := tokenizeCommandLine(text)
	if len(parts) == 0 {
		return
	}
	word := strings.TrimPrefix(parts[0], "/")
	if i := strings.IndexByte(word, '@'); i >= 0 {
		word = word[:i]
	}
	args := []string{}
	if len(parts) > 1 {
		args = parts[1:]
	}

	m.mu.RLock()
	cmd, ok := m.commands[word]
	if !ok {
		cmd, ok = m.alias[word]
	}
	m.mu.RUnlock()

	if !ok {
		// stay quiet in groups, hint in private chats
		if !msg.IsGroup {
			_, _ = m.adapter.SendText(root, kit.ChatTarget{ChatID: msg.ChatID}, "unknown command. try /help", nil)
		}
		return
	}

	pos, flags, bools := parseFlags(args)
	m.enqueueCommand(root, up, *cmd, pos, args, flags, bools)
}

func (m *Router) enqueueCommand(root context.Context, up kit.Update, cmd Command, args []string, raw []string, flags map[string]string, bools map[string]bool) {
	msg := up.Message
	if msg == nil {
		return
	}

	admins := m.adminsSnapshot()
	if cmd.Access == AccessAdminOnly && !isAdmin(msg.FromID, admins) {
		_, _ = m.adapter.SendText(root, kit.ChatTarget{ChatID: msg.ChatID}, "unauthorized", nil)
		return
	}

	rid := newReqID()
	reqLog := m.log.With(
		logx.String("rid", rid),
		logx.Int64("chat_id", msg.ChatID),
		logx.Int64("from_id", msg.FromID),
		logx.String("cmd", cmd.Name),
	)

	req := &Request{
		Update:    up,
		Chat:      kit.ChatTarget{ChatID: msg.ChatID},
		FromID:    msg.FromID,
		Command:   cmd.Name,
		Args:      args,
		RawArgs:   raw,
		Flags:     flags,
		BoolFlags: bools,
		ReqID:     rid,
		Adapter:   m.adapter,
		Config:    m.cfgm.Get(),
		Log:       reqLog,
	}

	final := Chain(
		cmd.Handle,
		MWPanicRecover(m.log),
		MWRequestLog(m.log),
		MWTimeout(cmd.Timeout),
	)

	select {
	case m.jobs <- func() { _ = final(root, req) }:
	default:
		_, _ = m.adapter.SendText(root, req.Chat, "busy, try again", nil)
	}
}

func (m *Router) routeCallback(root context.Context, up kit.Update) {
	if up.Callback == nil {
		return
	}
	cb := up.Callback
	data := strings.TrimSpace(cb.Data)
	parts := strings.SplitN(data, ":", 3)
	if len(parts) < 2 {
		return
	}
	ns := parts[0]
	action := parts[1]
	payload := ""
	if len(parts) == 3 {
		payload = parts[2]
	}

	m.cbMu.RLock()
	actions := m.callbacks[ns]
	route, ok := actions[action]
	m.cbMu.RUnlock()
	if !ok {
		return
	}

	if route.Access == AccessAdminOnly && !isAdmin(cb.FromID, m.adminsSnapshot()) {
		_ = m.adapter.AnswerCallback(root, cb.ID, "unauthorized")
		return
	}

	rid := newReqID()
	reqLog := m.log.With(
		logx.String("rid", rid),
		logx.Int64("chat_id", cb.ChatID),
		logx.Int64("from_id", cb.FromID),
		logx.String("cmd", "cb:"+ns+":"+action),
	)
	req := &Request{
		Update:  up,
		Chat:    kit.ChatTarget{ChatID: cb.ChatID},
		FromID:  cb.FromID,
		Command: "cb:" + ns + ":" + action,
		Payload: payload,
		ReqID:   rid,
		Adapter: m.adapter,
		Config:  m.cfgm.Get(),
		Log:     reqLog,
	}

	h := func(ctx context.Context, r *Request) error { return route.Handle(ctx, r, payload) }

	final := Chain(
		h,
		MWPanicRecover(m.log),
		MWRequestLog(m.log),
		MWTimeout(route.Timeout),
	)

	select {
	case m.jobs <- func() {
		_ = final(root, req)
		// best-effort to stop the "loading" spinner
		_ = m.adapter.AnswerCallback(root, cb.ID, "")
	}:
	default:
		_ = m.adapter.AnswerCallback(root, cb.ID, "busy")
	}
}

func isAdmin(id int64, admins []int64) bool {
	for _, a := range admins {
		if a == id {
			return true
		}
	}
	return false
}
