package bot

import (
	"github.com/m3rciful/quizbot/bot/texts"
	tghelpers "github.com/m3rciful/quizbot/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

// Fallback handlers for updates that map to nothing. Satisfies the
// shape of ui.FallbackProvider.

// UnknownText nudges the user back to the command flow.
func (h *Handlers) UnknownText() tele.HandlerFunc {
	return func(c tele.Context) error {
		return tghelpers.SendText(c, texts.UnknownText)
	}
}

// UnknownDocument ignores stray attachments.
func (h *Handlers) UnknownDocument() tele.HandlerFunc {
	return func(c tele.Context) error {
		return nil
	}
}

// UnknownCallback acknowledges stale or foreign buttons.
func (h *Handlers) UnknownCallback() tele.HandlerFunc {
	return func(c tele.Context) error {
		return c.Respond(&tele.CallbackResponse{Text: texts.RestartRequired})
	}
}
