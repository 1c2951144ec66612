package bot

import (
	"strings"
	"testing"

	"github.com/m3rciful/quizbot/bot/texts"
	"github.com/m3rciful/quizbot/services/quiz"
)

func TestQuestionnaireTextsComplete(t *testing.T) {
	if len(texts.Questions) != quiz.QuestionCount {
		t.Fatalf("questions = %d, want %d", len(texts.Questions), quiz.QuestionCount)
	}
	for i, q := range texts.Questions {
		if strings.TrimSpace(q.Text) == "" {
			t.Fatalf("question %d has empty text", i+1)
		}
		for _, l := range quiz.Labels {
			if strings.TrimSpace(q.Options[l]) == "" {
				t.Fatalf("question %d is missing option %s", i+1, l)
			}
		}
	}
	for _, l := range quiz.Labels {
		if texts.ResultHeaders[l] == "" || texts.ResultInterpretations[l] == "" {
			t.Fatalf("result texts missing for label %s", l)
		}
		if texts.Markers[l] == "" {
			t.Fatalf("marker missing for label %s", l)
		}
	}
}

func TestAnswerToken(t *testing.T) {
	want := map[quiz.Label]string{
		quiz.LabelA: "ans_A",
		quiz.LabelB: "ans_B",
		quiz.LabelC: "ans_C",
	}
	for l, token := range want {
		if got := answerToken(l); got != token {
			t.Fatalf("answerToken(%s) = %q, want %q", l, got, token)
		}
	}
}

func TestQuestionKeyboardRows(t *testing.T) {
	first := questionKeyboard(1)
	if len(first.InlineKeyboard) != 3 {
		t.Fatalf("question 1 keyboard has %d rows, want 3", len(first.InlineKeyboard))
	}
	for i, l := range quiz.Labels {
		if got := first.InlineKeyboard[i][0].Unique; got != answerToken(l) {
			t.Fatalf("row %d unique = %q, want %q", i, got, answerToken(l))
		}
	}

	later := questionKeyboard(2)
	if len(later.InlineKeyboard) != 4 {
		t.Fatalf("question 2 keyboard has %d rows, want 4", len(later.InlineKeyboard))
	}
	back := later.InlineKeyboard[3][0]
	if back.Unique != cbPrevQuestion {
		t.Fatalf("back button unique = %q, want %q", back.Unique, cbPrevQuestion)
	}
}

func TestGateRequiredKeyboard(t *testing.T) {
	kb := gateRequiredKeyboard("https://t.me/channel")
	if len(kb.InlineKeyboard) != 3 {
		t.Fatalf("keyboard has %d rows, want 3", len(kb.InlineKeyboard))
	}
	if kb.InlineKeyboard[0][0].URL != "https://t.me/channel" {
		t.Fatalf("invite url = %q", kb.InlineKeyboard[0][0].URL)
	}
	if kb.InlineKeyboard[1][0].Unique != cbCheckSubscription {
		t.Fatalf("check unique = %q", kb.InlineKeyboard[1][0].Unique)
	}

	// No invite link configured: the URL row is omitted.
	kb = gateRequiredKeyboard("")
	if len(kb.InlineKeyboard) != 2 {
		t.Fatalf("keyboard without link has %d rows, want 2", len(kb.InlineKeyboard))
	}
	if kb.InlineKeyboard[0][0].Unique != cbCheckSubscription {
		t.Fatalf("first row unique = %q", kb.InlineKeyboard[0][0].Unique)
	}
}

func TestResultKeyboardContactLink(t *testing.T) {
	kb := resultKeyboard("@helper", "https://t.me/channel")
	if len(kb.InlineKeyboard) != 3 {
		t.Fatalf("keyboard has %d rows, want 3", len(kb.InlineKeyboard))
	}
	if got := kb.InlineKeyboard[0][0].URL; got != "https://t.me/helper" {
		t.Fatalf("contact url = %q, want https://t.me/helper", got)
	}
	if got := kb.InlineKeyboard[2][0].Unique; got != cbStartTest {
		t.Fatalf("retake button unique = %q, want %q", got, cbStartTest)
	}

	// Without an invite link the channel row is omitted; the retake row stays.
	kb = resultKeyboard("@helper", "")
	if len(kb.InlineKeyboard) != 2 {
		t.Fatalf("keyboard without link has %d rows, want 2", len(kb.InlineKeyboard))
	}
	if got := kb.InlineKeyboard[1][0].Unique; got != cbStartTest {
		t.Fatalf("retake button unique = %q, want %q", got, cbStartTest)
	}
}

func TestQuestionBody(t *testing.T) {
	body := questionBody(3)
	if !strings.Contains(body, "Вопрос 3 из 8") {
		t.Fatalf("body missing progress header: %q", body)
	}
	if !strings.Contains(body, texts.Questions[2].Text) {
		t.Fatal("body missing question text")
	}
	for _, l := range quiz.Labels {
		if !strings.Contains(body, texts.Questions[2].Options[l]) {
			t.Fatalf("body missing option %s", l)
		}
	}
}

func TestResultBody(t *testing.T) {
	for _, l := range quiz.Labels {
		body := resultBody(l)
		if !strings.Contains(body, texts.ResultHeaders[l]) {
			t.Fatalf("result body for %s missing header", l)
		}
		if !strings.Contains(body, texts.ResultInterpretations[l]) {
			t.Fatalf("result body for %s missing interpretation", l)
		}
		if !strings.Contains(body, texts.FinalMessage) {
			t.Fatalf("result body for %s missing closing message", l)
		}
	}
}

func TestFormatAnswersBreakdown(t *testing.T) {
	answers := []quiz.Label{
		quiz.LabelA, quiz.LabelB, quiz.LabelC, quiz.LabelA,
		quiz.LabelB, quiz.LabelC, quiz.LabelA, quiz.LabelB,
	}
	out := formatAnswers(answers)
	blocks := strings.Split(out, "\n\n")
	if len(blocks) != len(answers) {
		t.Fatalf("blocks = %d, want %d", len(blocks), len(answers))
	}
	for i, block := range blocks {
		if !strings.Contains(block, texts.Questions[i].Text) {
			t.Fatalf("block %d missing question text", i+1)
		}
		if !strings.Contains(block, string(answers[i])) {
			t.Fatalf("block %d missing the chosen label", i+1)
		}
	}
}
