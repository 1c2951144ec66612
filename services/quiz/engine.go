package quiz

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m3rciful/quizbot/core/logger"
)

// Profile carries the identity fields captured from the messenger at
// first contact. The store treats them as first-write-wins.
type Profile struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
}

// SubscriptionGate is the channel-membership precondition.
type SubscriptionGate interface {
	IsMember(ctx context.Context, userID int64) bool
}

// Store is the durable user-record collaborator the engine mutates.
type Store interface {
	UpsertUser(ctx context.Context, p Profile) error
	RecordResult(ctx context.Context, userID int64, result Label, answers []Label) error
}

// Notifier delivers the best-effort completion notice to the operator.
type Notifier interface {
	TestCompleted(ctx context.Context, p Profile, result Label, answers []Label) error
}

// Template selects which message the presentation layer should render.
// The engine decides the template; the bot layer owns the actual text,
// keyboards, and formatting.
type Template string

const (
	RenderGateRequired     Template = "gate_required"
	RenderGateConfirmed    Template = "gate_confirmed"
	RenderGateNotConfirmed Template = "gate_not_confirmed"
	RenderQuestion         Template = "question"
	RenderResult           Template = "result"
	RenderCannotGoBack     Template = "cannot_go_back"
	RenderRestartRequired  Template = "restart_required"
	RenderCancelled        Template = "cancelled"
	RenderNothingToCancel  Template = "nothing_to_cancel"
)

// Render is the engine's instruction to the presentation layer.
type Render struct {
	Template Template
	Question int   // 1-based question number when Template is RenderQuestion
	Result   Label // classified label when Template is RenderResult
	Alert    bool  // raise a transient alert in addition to the message body
}

// Engine is the conversation state machine. It owns all quiz sessions,
// consults the gate before quiz entry, classifies on completion, and
// persists the outcome. Sessions live only in memory.
type Engine struct {
	gate     SubscriptionGate
	store    Store
	notifier Notifier
	sessions *sessionStore
}

// NewEngine wires the state machine with its collaborators.
func NewEngine(gate SubscriptionGate, store Store, notifier Notifier) *Engine {
	return &Engine{
		gate:     gate,
		store:    store,
		notifier: notifier,
		sessions: newSessionStore(),
	}
}

// Start resets the user's session, re-registers the user record, and
// renders the subscription prompt. An already subscribed user gets the
// confirmed variant but still has to press the start button explicitly.
// Upsert failures degrade gracefully: the conversation proceeds.
func (e *Engine) Start(ctx context.Context, p Profile) Render {
	lock := e.sessions.userLock(p.ID)
	lock.Lock()
	defer lock.Unlock()

	e.sessions.put(p.ID, Session{State: StateSubscription})

	if err := e.store.UpsertUser(ctx, p); err != nil {
		logger.Warn(ctx, "service.quiz", "start.upsert",
			slog.String("status", "fail"),
			slog.Int64("user_id", p.ID),
			slog.String("err", err.Error()),
		)
	}

	if e.gate.IsMember(ctx, p.ID) {
		return Render{Template: RenderGateConfirmed}
	}
	return Render{Template: RenderGateRequired}
}

// StartTest re-validates the gate and, if it holds, enters question 1
// with a cleared answer list. A failed gate keeps the user at the
// subscription prompt and raises a transient alert.
func (e *Engine) StartTest(ctx context.Context, userID int64) Render {
	lock := e.sessions.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	if !e.gate.IsMember(ctx, userID) {
		e.sessions.put(userID, Session{State: StateSubscription})
		return Render{Template: RenderGateRequired, Alert: true}
	}

	e.sessions.put(userID, Session{State: StateQuestion1})
	logger.Info(ctx, "service.quiz", "test.start",
		slog.String("status", "ok"),
		slog.Int64("user_id", userID),
	)
	return Render{Template: RenderQuestion, Question: 1}
}

// Recheck re-runs the gate without changing state.
func (e *Engine) Recheck(ctx context.Context, userID int64) Render {
	if e.gate.IsMember(ctx, userID) {
		return Render{Template: RenderGateConfirmed}
	}
	return Render{Template: RenderGateNotConfirmed, Alert: true}
}

// Answer accepts the selected label for the current question. Below the
// last question it advances; on question 8 it classifies, persists, and
// notifies the operator. A store failure on the final write propagates:
// the session stays on question 8 with the final answer uncommitted so
// the user can submit it again.
func (e *Engine) Answer(ctx context.Context, p Profile, raw string) (Render, error) {
	lock := e.sessions.userLock(p.ID)
	lock.Lock()
	defer lock.Unlock()

	label, ok := ParseLabel(raw)
	if !ok {
		return e.reset(ctx, p.ID, "bad_label"), nil
	}

	sess := e.sessions.get(p.ID)
	n, ok := QuestionNumber(sess.State)
	if !ok || len(sess.Answers) != n-1 {
		return e.reset(ctx, p.ID, "state_mismatch"), nil
	}

	answers := append(append([]Label(nil), sess.Answers...), label)

	if n < QuestionCount {
		next, _ := QuestionState(n + 1)
		e.sessions.put(p.ID, Session{State: next, Answers: answers})
		return Render{Template: RenderQuestion, Question: n + 1}, nil
	}

	result := Classify(answers)
	if err := e.store.RecordResult(ctx, p.ID, result, answers); err != nil {
		logger.Error(ctx, "service.quiz", "test.persist",
			slog.String("status", "fail"),
			slog.Int64("user_id", p.ID),
			slog.String("result", string(result)),
			slog.String("err", err.Error()),
		)
		return Render{}, fmt.Errorf("record test result: %w", err)
	}

	logger.Info(ctx, "service.quiz", "test.completed",
		slog.String("status", "ok"),
		slog.Int64("user_id", p.ID),
		slog.String("result", string(result)),
	)

	if e.notifier != nil {
		if err := e.notifier.TestCompleted(ctx, p, result, answers); err != nil {
			logger.Warn(ctx, "service.quiz", "test.notify",
				slog.String("status", "fail"),
				slog.Int64("user_id", p.ID),
				slog.String("err", err.Error()),
			)
		}
	}

	e.sessions.clear(p.ID)
	return Render{Template: RenderResult, Result: result}, nil
}

// GoBack steps to the previous question, dropping the last accepted
// answer. On question 1 or outside the questionnaire it is a no-op with
// a dedicated notice.
func (e *Engine) GoBack(ctx context.Context, userID int64) Render {
	lock := e.sessions.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	sess := e.sessions.get(userID)
	n, ok := QuestionNumber(sess.State)
	if !ok || n == 1 {
		return Render{Template: RenderCannotGoBack, Alert: true}
	}

	answers := append([]Label(nil), sess.Answers...)
	if len(answers) > 0 {
		answers = answers[:len(answers)-1]
	}
	prev, _ := QuestionState(n - 1)
	e.sessions.put(userID, Session{State: prev, Answers: answers})
	return Render{Template: RenderQuestion, Question: n - 1}
}

// Cancel drops an active session, or reports that nothing was active.
func (e *Engine) Cancel(ctx context.Context, userID int64) Render {
	lock := e.sessions.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	if !e.sessions.active(userID) {
		return Render{Template: RenderNothingToCancel}
	}
	e.sessions.clear(userID)
	logger.Info(ctx, "service.quiz", "session.cancel",
		slog.String("status", "ok"),
		slog.Int64("user_id", userID),
	)
	return Render{Template: RenderCancelled}
}

// InProgress reports whether the user has an active quiz session.
func (e *Engine) InProgress(userID int64) bool {
	return e.sessions.active(userID)
}

// reset is the self-healing fallback for sessions found in a shape no
// handler recognises: wipe it and ask the user to restart.
func (e *Engine) reset(ctx context.Context, userID int64, reason string) Render {
	logger.Warn(ctx, "service.quiz", "session.reset",
		slog.String("status", "skip"),
		slog.Int64("user_id", userID),
		slog.String("reason", reason),
	)
	e.sessions.clear(userID)
	return Render{Template: RenderRestartRequired}
}
