package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/quizbot/config"
	"github.com/m3rciful/quizbot/core/bootstrap"
	"github.com/m3rciful/quizbot/core/logger"
	coretelegram "github.com/m3rciful/quizbot/core/telegram"
	"github.com/m3rciful/quizbot/core/telegram/commands"
	"github.com/m3rciful/quizbot/core/telegram/router"
	"github.com/m3rciful/quizbot/core/telegram/state"
	"github.com/m3rciful/quizbot/core/telegram/ui"
	"github.com/m3rciful/quizbot/services/broadcast"
	"github.com/m3rciful/quizbot/services/quiz"
	"github.com/m3rciful/quizbot/services/users"

	tele "gopkg.in/telebot.v4"
	"log/slog"
)

// Handlers groups the bot-facing handlers with the services they drive.
type Handlers struct {
	cfg    *config.Config
	engine *quiz.Engine
	users  *users.Service
	caster *broadcast.Orchestrator
	fsm    state.Manager
	ref    *botRef
}

// App owns the wired application: storage, services, and the handler set.
type App struct {
	cfg      *config.Config
	db       *sqlx.DB
	handlers *Handlers
}

// serviceProvider assembles the quiz services on top of the shared storage.
var serviceProvider bootstrap.TypedServiceProviderFunc[*Handlers] = func(ctx context.Context, cfgAny interface{}, storage bootstrap.Storage) (*Handlers, error) {
	cfg, ok := cfgAny.(*config.Config)
	if !ok {
		return nil, fmt.Errorf("bot: unexpected config type %T", cfgAny)
	}
	db, ok := storage.(*sqlx.DB)
	if !ok {
		return nil, fmt.Errorf("bot: unexpected storage type %T", storage)
	}

	ref := &botRef{}
	userSvc := users.NewService(users.NewRepository(db))
	gate := quiz.NewGate(ref, cfg.Quiz.ChannelID)
	notifier := newOperatorNotifier(ref, cfg.Core.Telegram.AdminID)
	engine := quiz.NewEngine(gate, userSvc, notifier)

	pacing := broadcast.DefaultPacing
	if cfg.Quiz.BroadcastPacingMS > 0 {
		pacing = time.Duration(cfg.Quiz.BroadcastPacingMS) * time.Millisecond
	}

	return &Handlers{
		cfg:    cfg,
		engine: engine,
		users:  userSvc,
		caster: broadcast.New(userSvc, pacing),
		fsm:    state.NewMemoryManager(),
		ref:    ref,
	}, nil
}

// NewApp initializes infrastructure and wires the application services.
func NewApp(cfg *config.Config) (*App, error) {
	res, err := bootstrap.Run(bootstrap.Options{
		Config:   &cfg.Core,
		Database: cfg.Database,
	})
	if err != nil {
		return nil, err
	}

	handlers, err := serviceProvider.ProvideTyped(context.Background(), cfg, res.DB)
	if err != nil {
		_ = res.DB.Close()
		return nil, err
	}

	return &App{
		cfg:      cfg,
		db:       res.DB,
		handlers: handlers,
	}, nil
}

// TelegramRunOptions builds the registry, middleware chain, and routes.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	h := a.handlers
	reg := coretelegram.NewRegistry()

	reg.RegisterCommand("/start", commands.Command{
		Handler:     h.onStart,
		Description: "Начать тест",
	})
	reg.RegisterCommand("/cancel", commands.Command{
		Handler:     h.onCancel,
		Description: "Прервать текущий тест",
	})
	reg.RegisterCommand("/message", commands.Command{
		Handler:     h.onMessage,
		Description: "Рассылка всем пользователям",
		AdminOnly:   true,
	})
	reg.RegisterCommand("/stats", commands.Command{
		Handler:     h.onStats,
		Description: "Статистика за день",
		AdminOnly:   true,
		Hidden:      true,
	})

	callbackHandlers := map[string]tele.HandlerFunc{
		cbAbout:             h.onAbout,
		cbCheckSubscription: h.onCheckSubscription,
		cbStartTest:         h.onStartTest,
		cbPrevQuestion:      h.onPrevQuestion,
	}
	for _, l := range quiz.Labels {
		callbackHandlers[answerToken(l)] = h.onAnswer(l)
	}
	for key, handler := range callbackHandlers {
		if err := reg.RegisterCallback(key, handler); err != nil {
			return coretelegram.RunOptions{}, err
		}
	}

	var fallbacks ui.FallbackProvider = h
	reg.SetCallbackNotFound(fallbacks.UnknownCallback())
	reg.SetTextFallback(fallbacks.UnknownText())

	state.RegisterHandler(stateBroadcast, h.onBroadcastContent)

	routes := router.CommandRoutes(reg, router.CommandRouteOptions{
		AdminID:       a.cfg.Core.Telegram.AdminID,
		OnAdminReject: h.onAdminReject,
	})
	routes = append(routes, router.CallbackRoute(reg, router.CallbackOptions{
		NotFound: fallbacks.UnknownCallback(),
	}))
	routes = append(routes, router.TextRoutes(h.fsm, reg, router.TextOptions{
		UnknownText:     fallbacks.UnknownText(),
		UnknownDocument: fallbacks.UnknownDocument(),
	})...)

	return coretelegram.RunOptions{
		Config:      a.cfg.CoreConfig(),
		Registry:    reg,
		Middlewares: coretelegram.DefaultMiddlewares(a.cfg.CoreConfig(), nil),
		Routes:      routes,
		OnStart: func(ctx context.Context, rt coretelegram.Runtime) error {
			h.ref.set(rt.Bot)
			logger.TG.Info("bot online",
				slog.String("event", "online"),
				slog.String("username", rt.Bot.Me.Username),
				slog.Int64("bot_id", rt.Bot.Me.ID),
				slog.Int64("admin_id", a.cfg.Core.Telegram.AdminID),
				slog.String("channel", a.cfg.Quiz.ChannelID),
				slog.String("contact", a.cfg.Quiz.PsychologistUsername),
			)
			return nil
		},
		OnStop: func(ctx context.Context, rt coretelegram.Runtime) error {
			if n := rt.Dispatcher.ErrorCount(); n > 0 {
				logger.TG.Warn("sender finished with failures",
					slog.String("event", "sender.summary"),
					slog.Uint64("failed_sends", n),
				)
			}
			return a.db.Close()
		},
	}, nil
}
