// Package broadcast replays one operator message to every known user.
package broadcast

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/m3rciful/quizbot/core/logger"

	tele "gopkg.in/telebot.v4"
)

// DefaultPacing is the courtesy delay between consecutive sends.
const DefaultPacing = 50 * time.Millisecond

// Audience enumerates broadcast recipients.
type Audience interface {
	AllIDs(ctx context.Context) ([]int64, error)
}

// Deliver sends one copy of the operator message to a single recipient.
type Deliver func(userID int64) error

// Report aggregates the outcome of one broadcast run.
type Report struct {
	Total   int
	Success int
	Failed  int
}

// Orchestrator walks a snapshot of the audience, tolerating individual
// delivery failures. It never retries a recipient beyond honouring one
// flood-control wait, and it never aborts the batch.
type Orchestrator struct {
	audience Audience
	pacing   time.Duration
}

// New builds an orchestrator; pacing <= 0 falls back to DefaultPacing.
func New(audience Audience, pacing time.Duration) *Orchestrator {
	if pacing <= 0 {
		pacing = DefaultPacing
	}
	return &Orchestrator{audience: audience, pacing: pacing}
}

// Run snapshots the audience once and delivers to each recipient in turn.
// Per-recipient failures are counted and skipped. The returned report
// always satisfies Success+Failed == Total.
func (o *Orchestrator) Run(ctx context.Context, deliver Deliver) (Report, error) {
	ids, err := o.audience.AllIDs(ctx)
	if err != nil {
		return Report{}, err
	}

	start := time.Now()
	rep := Report{Total: len(ids)}

	for i, id := range ids {
		if err := o.send(id, deliver); err != nil {
			rep.Failed++
			logger.Warn(ctx, "service.broadcast", "broadcast.send",
				slog.String("status", "fail"),
				slog.Int64("user_id", id),
				slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
			)
		} else {
			rep.Success++
		}

		if i < len(ids)-1 {
			time.Sleep(o.pacing)
		}
	}

	logger.Info(ctx, "service.broadcast", "broadcast.summary",
		slog.String("status", "ok"),
		slog.Int("recipients", rep.Total),
		slog.Int("success", rep.Success),
		slog.Int("failed", rep.Failed),
		slog.Duration("duration", logger.Took(start)),
	)
	return rep, nil
}

// send delivers to one recipient, waiting out a single Telegram flood
// response before the final attempt.
func (o *Orchestrator) send(id int64, deliver Deliver) error {
	err := deliver(id)
	if err == nil {
		return nil
	}

	var flood tele.FloodError
	if errors.As(err, &flood) && flood.RetryAfter > 0 {
		time.Sleep(time.Duration(flood.RetryAfter) * time.Second)
		return deliver(id)
	}
	return err
}
