// Package app assembles the bot: config, logging, storage, the Telegram
// adapter, the command router and the background services.
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"personabot/internal/adapters/telegram"
	"personabot/internal/broadcast"
	"personabot/internal/config"
	"personabot/internal/core"
	"personabot/internal/generator"
	"personabot/internal/handlers"
	"personabot/internal/kit"
	"personabot/internal/retention"
	"personabot/internal/settings"
	"personabot/internal/storage"
	logx "personabot/pkg/logx"
)

type App struct {
	cfgPath string
	cfgm    *config.Manager

	log  logx.Logger
	logs *logx.Service

	adapter kit.Adapter
	store   storage.Store
	engine  *broadcast.Engine
	prune   *retention.Service
	router  *core.Router

	cancel  context.CancelFunc
	runErr  chan error
	wg      sync.WaitGroup
	updates chan kit.Update
}

func New(cfgPath string) (*App, error) {
	cfgm := config.NewManager(cfgPath)
	cfg, err := cfgm.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	logSvc, log := logx.New(logx.Config{
		Level:   cfg.Logging.Level,
		Console: cfg.Logging.Console,
		File: logx.FileConfig{
			Enabled: cfg.Logging.File.Enabled,
			Path:    cfg.Logging.File.Path,
		},
	})
	log = log.With(logx.String("comp", "app"))

	cfgm.SetLogger(log.With(logx.String("comp", "config")))
	cfgm.SetValidator(func(ctx context.Context, c *config.Config) error {
		return c.Validate()
	})

	ad, err := telegram.New(telegram.Config{
		Token:       cfg.Telegram.Token,
		PollTimeout: cfg.PollTimeout(),
	}, log.With(logx.String("comp", "telegram")))
	if err != nil {
		logSvc.Close()
		return nil, fmt.Errorf("telegram: %w", err)
	}

	busy, _ := config.ParseDurationOrDefault("storage.busy_timeout", cfg.Storage.BusyTimeout, 0)
	store, err := storage.Open(storage.Config{
		Driver:      cfg.Storage.Driver,
		Path:        cfg.Storage.Path,
		BusyTimeout: busy,
	}, log.With(logx.String("comp", "storage")))
	if err != nil {
		logSvc.Close()
		return nil, fmt.Errorf("storage: %w", err)
	}

	router := core.NewRouter(log.With(logx.String("comp", "router")), ad, cfgm, cfg.Telegram.AdminUserIDs)

	engine := broadcast.NewEngine(store, ad,
		func(id int64) bool { return cfgm.Get().IsAdmin(id) },
		broadcast.Config{
			SendInterval:     cfg.SendInterval(),
			ProgressEvery:    cfg.ProgressEvery(),
			ProgressInterval: cfg.ProgressInterval(),
		},
		log.With(logx.String("comp", "broadcast")))

	handlers.Register(router, handlers.Deps{
		Store:    store,
		Settings: settings.NewService(store, cfg.MaxCount(), log.With(logx.String("comp", "settings"))),
		Gen:      generator.New(nil),
		Engine:   engine,
		Adapter:  ad,
		Log:      log.With(logx.String("comp", "handlers")),
	})

	var prune *retention.Service
	if cfg.Retention.Enabled {
		prune = retention.New(store, cfg.RetentionSchedule(), cfg.RetentionKeep(),
			log.With(logx.String("comp", "retention")))
	}

	return &App{
		cfgPath: cfgPath,
		cfgm:    cfgm,
		log:     log,
		logs:    logSvc,
		adapter: ad,
		store:   store,
		engine:  engine,
		prune:   prune,
		router:  router,
		runErr:  make(chan error, 4),
		updates: make(chan kit.Update, 256),
	}, nil
}

func (a *App) Start(ctx context.Context) error {
	rctx, cancel := context.WithCancel(ctx)
	a.cancel = cancel

	if err := a.adapter.Start(rctx, a.updates); err != nil {
		cancel()
		return err
	}

	if a.prune != nil {
		if err := a.prune.Start(); err != nil {
			cancel()
			return fmt.Errorf("retention: %w", err)
		}
	}

	a.go1("dispatch", func() error { return a.router.DispatchLoop(rctx, a.updates) })
	a.go1("config.watch", func() error { return a.cfgm.Watch(rctx) })
	a.go1("config.reload", func() error { a.reloadLoop(rctx); return nil })

	// publish the command menu, best-effort
	if mu, ok := a.adapter.(kit.CommandMenuUpdater); ok {
		mctx, mcancel := context.WithTimeout(rctx, 10*time.Second)
		if err := mu.UpdateMenuCommands(mctx, a.router.MenuCommands()); err != nil {
			a.log.Warn("command menu update failed", logx.Err(err))
		}
		mcancel()
	}

	a.log.Info("app started")
	return nil
}

func (a *App) go1(name string, fn func() error) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := fn(); err != nil {
			a.log.Error("background task failed", logx.String("task", name), logx.Err(err))
			select {
			case a.runErr <- fmt.Errorf("%s: %w", name, err):
			default:
			}
		}
	}()
}

// Err yields the first fatal background error, if any.
func (a *App) Err() <-chan error { return a.runErr }

// reloadLoop applies accepted config hot-reloads: log level, admin list.
// Pacing and storage settings stay fixed until restart.
func (a *App) reloadLoop(ctx context.Context) {
	sub := a.cfgm.Subscribe(8)
	defer a.cfgm.Unsubscribe(sub)
	for {
		select {
		case <-ctx.Done():
			return
		case cfg, ok := <-sub:
			if !ok {
				return
			}
			// coalesce bursts, keep only the newest
			for {
				select {
				case newer := <-sub:
					if newer != nil {
						cfg = newer
					}
				default:
					goto APPLY
				}
			}
		APPLY:
			a.logs.Apply(logx.Config{
				Level:   cfg.Logging.Level,
				Console: cfg.Logging.Console,
				File: logx.FileConfig{
					Enabled: cfg.Logging.File.Enabled,
					Path:    cfg.Logging.File.Path,
				},
			})
			a.router.SetAdmins(cfg.Telegram.AdminUserIDs)
			a.log.Info("config reloaded")
		}
	}
}

func (a *App) Stop(ctx context.Context) error {
	a.log.Info("stopping")
	if a.cancel != nil {
		a.cancel()
	}

	if a.prune != nil {
		a.prune.Stop()
	}
	if err := a.adapter.Stop(ctx); err != nil {
		a.log.Warn("adapter stop", logx.Err(err))
	}

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		a.log.Warn("shutdown deadline reached before background tasks finished")
	}

	if err := a.store.Close(); err != nil {
		a.log.Warn("storage close", logx.Err(err))
	}
	a.log.Info("stopped")
	a.logs.Close()
	return nil
}
