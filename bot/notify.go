package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m3rciful/quizbot/bot/texts"
	"github.com/m3rciful/quizbot/core/telegram/format"
	"github.com/m3rciful/quizbot/services/quiz"

	tele "gopkg.in/telebot.v4"
)

// operatorNotifier sends the completed-test notice to the operator chat.
// It satisfies quiz.Notifier; the engine treats failures as best-effort.
type operatorNotifier struct {
	ref     *botRef
	adminID int64
}

func newOperatorNotifier(ref *botRef, adminID int64) *operatorNotifier {
	return &operatorNotifier{ref: ref, adminID: adminID}
}

// TestCompleted formats and delivers the operator notification.
func (n *operatorNotifier) TestCompleted(ctx context.Context, p quiz.Profile, result quiz.Label, answers []quiz.Label) error {
	fullName := strings.TrimSpace(p.FirstName + " " + p.LastName)
	handle := "не указан"
	if p.Username != "" {
		handle = "@" + p.Username
	}

	msg := fmt.Sprintf(texts.AdminNotification,
		time.Now().Format("02.01.2006 15:04"),
		p.ID,
		format.EscapeHTML(fullName),
		format.EscapeHTML(handle),
		string(result),
		formatAnswers(answers),
	)

	return n.ref.Send(
		&tele.User{ID: n.adminID},
		msg,
		&tele.SendOptions{ParseMode: tele.ModeHTML},
	)
}

// formatAnswers lays out the per-question answer breakdown for the
// operator: marker, question number and text, chosen label.
func formatAnswers(answers []quiz.Label) string {
	lines := make([]string, 0, len(answers))
	for i, a := range answers {
		if i >= len(texts.Questions) {
			break
		}
		lines = append(lines, fmt.Sprintf("%s <b>%d.</b> %s\n   → Ответ: <b>%s</b>",
			texts.Markers[a], i+1, texts.Questions[i].Text, string(a)))
	}
	return strings.Join(lines, "\n\n")
}
