package bot

import (
	"fmt"
	"strings"

	"github.com/m3rciful/quizbot/bot/texts"
	"github.com/m3rciful/quizbot/core/telegram/keyboard"
	"github.com/m3rciful/quizbot/services/quiz"

	tele "gopkg.in/telebot.v4"
)

// Callback tokens carried by inline buttons. These are stable: old
// messages with old keyboards keep working after a redeploy.
const (
	cbAbout             = "about"
	cbCheckSubscription = "check_subscription"
	cbStartTest         = "start_test"
	cbPrevQuestion      = "prev_question"
	cbAnswerPrefix      = "ans_"
)

func answerToken(l quiz.Label) string {
	return cbAnswerPrefix + string(l)
}

func gateRequiredKeyboard(inviteLink string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := [][]tele.Btn{}
	if inviteLink != "" {
		rows = append(rows, []tele.Btn{markup.URL("🔗 Подписаться на канал", inviteLink)})
	}
	rows = append(rows,
		[]tele.Btn{markup.Data("✅ Я подписалась", cbCheckSubscription)},
		[]tele.Btn{markup.Data("ℹ️ О тесте", cbAbout)},
	)
	markup.InlineKeyboard = keyboard.ToInlineKeyboard(rows)
	return markup
}

func gateConfirmedKeyboard() *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{{Text: "🚀 Начать тест", Unique: cbStartTest}},
		[]keyboard.InlineBtn{{Text: "ℹ️ О тесте", Unique: cbAbout}},
	)
}

func aboutKeyboard() *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{{Text: "⬅️ Назад", Unique: cbCheckSubscription}},
	)
}

// questionKeyboard renders the three answer buttons plus, from the
// second question on, the back button.
func questionKeyboard(n int) *tele.ReplyMarkup {
	rows := [][]keyboard.InlineBtn{}
	for _, l := range quiz.Labels {
		rows = append(rows, []keyboard.InlineBtn{{
			Text:   fmt.Sprintf("%s %s", texts.Markers[l], string(l)),
			Unique: answerToken(l),
		}})
	}
	if n > 1 {
		rows = append(rows, []keyboard.InlineBtn{{Text: "⬅️ Назад", Unique: cbPrevQuestion}})
	}
	return keyboard.InlineButtonsRows(rows...)
}

func resultKeyboard(psychologist, inviteLink string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := [][]tele.Btn{
		{markup.URL("💬 Написать психологу", "https://t.me/"+strings.TrimPrefix(psychologist, "@"))},
	}
	if inviteLink != "" {
		rows = append(rows, []tele.Btn{markup.URL("📢 Наш канал", inviteLink)})
	}
	rows = append(rows, []tele.Btn{markup.Data("🔄 Пройти тест ещё раз", cbStartTest)})
	markup.InlineKeyboard = keyboard.ToInlineKeyboard(rows)
	return markup
}

// questionBody builds the HTML body for question n: progress header,
// question text, and the three options.
func questionBody(n int) string {
	q := texts.Questions[n-1]
	var b strings.Builder
	fmt.Fprintf(&b, "<b>Вопрос %d из %d</b>\n\n%s\n", n, quiz.QuestionCount, q.Text)
	for _, l := range quiz.Labels {
		fmt.Fprintf(&b, "\n%s <b>%s)</b> %s", texts.Markers[l], string(l), q.Options[l])
	}
	return b.String()
}

// resultBody assembles the completion screen for the classified label.
func resultBody(result quiz.Label) string {
	return texts.ResultCompleted + "\n\n" +
		texts.ResultHeaders[result] + "\n\n" +
		texts.ResultInterpretations[result] + "\n\n" +
		texts.FinalMessage
}
