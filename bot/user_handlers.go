package bot

import (
	"fmt"

	"github.com/m3rciful/quizbot/bot/texts"
	tghelpers "github.com/m3rciful/quizbot/core/telegram/helpers"
	"github.com/m3rciful/quizbot/services/quiz"

	tele "gopkg.in/telebot.v4"
)

func profileFrom(c tele.Context) quiz.Profile {
	u := c.Sender()
	return quiz.Profile{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func respondAlert(c tele.Context, text string) {
	_ = c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: true})
}

// onStart resets the conversation and shows the subscription gate.
func (h *Handlers) onStart(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	render := h.engine.Start(ctx, profileFrom(c))

	if render.Template == quiz.RenderGateConfirmed {
		return tghelpers.SendHTML(c, texts.AlreadySubscribed, gateConfirmedKeyboard())
	}
	return tghelpers.SendHTML(c, texts.SubscribeRequired, gateRequiredKeyboard(h.cfg.Quiz.ChannelInviteLink))
}

// onAbout shows the test description screen.
func (h *Handlers) onAbout(c tele.Context) error {
	_ = c.Respond()
	return tghelpers.EditOrSendHTML(c, texts.AboutText, aboutKeyboard())
}

// onCheckSubscription re-runs the gate on user request.
func (h *Handlers) onCheckSubscription(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	render := h.engine.Recheck(ctx, c.Sender().ID)

	if render.Template == quiz.RenderGateConfirmed {
		_ = c.Respond()
		return tghelpers.EditOrSendHTML(c, texts.SubscribeConfirmed, gateConfirmedKeyboard())
	}
	respondAlert(c, texts.AlertNotSubscribed)
	return tghelpers.EditOrSendHTML(c, texts.SubscribeNotConfirmed, gateRequiredKeyboard(h.cfg.Quiz.ChannelInviteLink))
}

// onStartTest enters question 1 after a final gate check.
func (h *Handlers) onStartTest(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	render := h.engine.StartTest(ctx, c.Sender().ID)

	if render.Template != quiz.RenderQuestion {
		respondAlert(c, texts.AlertSubscriptionRequired)
		return tghelpers.EditOrSendHTML(c, texts.SubscribeRequired, gateRequiredKeyboard(h.cfg.Quiz.ChannelInviteLink))
	}
	_ = c.Respond()
	return tghelpers.EditOrSendHTML(c, questionBody(render.Question), questionKeyboard(render.Question))
}

// onPrevQuestion steps back one question.
func (h *Handlers) onPrevQuestion(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	render := h.engine.GoBack(ctx, c.Sender().ID)

	if render.Template != quiz.RenderQuestion {
		respondAlert(c, texts.AlertCannotGoBack)
		return nil
	}
	_ = c.Respond()
	return tghelpers.EditOrSendHTML(c, questionBody(render.Question), questionKeyboard(render.Question))
}

// onAnswer handles a selected option for the current question. The
// engine propagates a failed result write; the user is asked to submit
// the final answer again instead of silently losing the outcome.
func (h *Handlers) onAnswer(label quiz.Label) tele.HandlerFunc {
	return func(c tele.Context) error {
		ctx := tghelpers.BuildContext(c)
		render, err := h.engine.Answer(ctx, profileFrom(c), string(label))
		if err != nil {
			respondAlert(c, "⚠️ Не удалось сохранить результат. Нажмите ответ ещё раз.")
			return fmt.Errorf("answer %s: %w", label, err)
		}

		switch render.Template {
		case quiz.RenderQuestion:
			_ = c.Respond()
			return tghelpers.EditOrSendHTML(c, questionBody(render.Question), questionKeyboard(render.Question))
		case quiz.RenderResult:
			_ = c.Respond()
			return tghelpers.EditOrSendHTML(c, resultBody(render.Result),
				resultKeyboard(h.cfg.Quiz.PsychologistUsername, h.cfg.Quiz.ChannelInviteLink))
		default:
			_ = c.Respond()
			return tghelpers.SendText(c, texts.RestartRequired)
		}
	}
}
