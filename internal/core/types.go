package core

import (
	"context"
	"time"

	"personabot/internal/config"
	"personabot/internal/kit"
	logx "personabot/pkg/logx"
)

type Access int

const (
	AccessEveryone Access = iota
	AccessAdminOnly
)

type HandlerFunc func(ctx context.Context, req *Request) error

type CallbackHandlerFunc func(ctx context.Context, req *Request, payload string) error

// Command is a single slash command, e.g. "/generate".
type Command struct {
	Name        string   // without the leading slash
	Aliases     []string // e.g. ["gen"] for "generate"
	Description string
	Usage       string
	Access      Access
	Hidden      bool // kept out of /help and the Telegram command menu

	Timeout time.Duration // optional per-command override
	Handle  HandlerFunc
}

// CallbackRoute handles inline-keyboard callbacks addressed as "ns:action:payload".
type CallbackRoute struct {
	NS      string
	Action  string
	Access  Access
	Timeout time.Duration
	Handle  CallbackHandlerFunc
}

// Request carries one inbound command or callback through the middleware
// chain into its handler.
type Request struct {
	Update  kit.Update
	Chat    kit.ChatTarget
	FromID  int64
	Command string
	Args    []string // positional args (flags stripped)
	Payload string   // callback payload (raw string)

	RawArgs   []string
	Flags     map[string]string
	BoolFlags map[string]bool
	ReqID     string

	Adapter kit.Adapter
	Config  *config.Config
	Log     logx.Logger
}

// Sender returns the message sender for message updates, nil otherwise.
func (r *Request) Sender() *kit.Message {
	if r.Update.Kind == kit.UpdateMessage {
		return r.Update.Message
	}
	return nil
}
