package bot

import (
	"fmt"
	"strings"

	"github.com/m3rciful/quizbot/bot/texts"
	tghelpers "github.com/m3rciful/quizbot/core/telegram/helpers"
	"github.com/m3rciful/quizbot/core/telegram/state"
	"github.com/m3rciful/quizbot/services/quiz"

	tele "gopkg.in/telebot.v4"
)

// stateBroadcast marks the operator as awaiting the broadcast content.
const stateBroadcast state.State = "broadcast_await"

func (h *Handlers) isAdmin(c tele.Context) bool {
	return c.Sender().ID == h.cfg.Core.Telegram.AdminID
}

// onAdminReject answers any admin-only command from a non-operator.
func (h *Handlers) onAdminReject(c tele.Context) error {
	return tghelpers.SendText(c, texts.AdminDenied)
}

// onMessage arms the broadcast flow: the next text from the operator is
// the content to replay to every user.
func (h *Handlers) onMessage(c tele.Context) error {
	h.fsm.SetState(c.Sender().ID, stateBroadcast)
	return tghelpers.SendText(c, texts.AdminBroadcastStart)
}

// onBroadcastContent runs once the operator supplies the message. The
// audience snapshot, pacing, and per-recipient failure accounting live
// in the orchestrator; delivery copies the operator's message as-is.
func (h *Handlers) onBroadcastContent(c tele.Context) error {
	userID := c.Sender().ID
	if !h.isAdmin(c) {
		h.fsm.ClearState(userID)
		return nil
	}

	ctx := tghelpers.BuildContext(c)
	msg := c.Message()
	bot := c.Bot()

	rep, err := h.caster.Run(ctx, func(recipient int64) error {
		_, err := bot.Copy(&tele.User{ID: recipient}, msg)
		return err
	})
	h.fsm.ClearState(userID)
	if err != nil {
		return fmt.Errorf("broadcast: %w", err)
	}

	return tghelpers.SendText(c, fmt.Sprintf(texts.AdminBroadcastComplete, rep.Total, rep.Success, rep.Failed))
}

// onCancel aborts whatever flow the sender has active: the operator's
// pending broadcast or the user's quiz session.
func (h *Handlers) onCancel(c tele.Context) error {
	userID := c.Sender().ID
	if h.fsm.HasState(userID) {
		h.fsm.ClearState(userID)
		return tghelpers.SendText(c, texts.Cancelled)
	}

	ctx := tghelpers.BuildContext(c)
	render := h.engine.Cancel(ctx, userID)
	if render.Template == quiz.RenderCancelled {
		return tghelpers.SendText(c, texts.Cancelled)
	}
	return tghelpers.SendText(c, texts.NothingToCancel)
}

// onStats reports totals and today's registrations, naming up to the
// first five of today's users.
func (h *Handlers) onStats(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	stats, err := h.users.DailyStats(ctx)
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, texts.AdminStatsHeader, stats.Total, len(stats.Today))
	if len(stats.Today) == 0 {
		b.WriteString(texts.AdminStatsEmptyToday)
	} else {
		for i, u := range stats.Today {
			if i == 5 {
				break
			}
			result := texts.IncompleteTest
			if u.TestResult.Valid {
				result = u.TestResult.String
			}
			fmt.Fprintf(&b, "\n• %s (%s) — %s", u.FullName(), u.Handle(), result)
		}
	}
	return tghelpers.SendText(c, b.String())
}
