package quiz

import (
	"context"
	"errors"
	"testing"
)

type stubGate struct{ member bool }

func (g *stubGate) IsMember(ctx context.Context, userID int64) bool { return g.member }

type recordingStore struct {
	upserts    []Profile
	upsertErr  error
	recordErr  error
	resultUser int64
	result     Label
	answers    []Label
	recorded   int
}

func (s *recordingStore) UpsertUser(ctx context.Context, p Profile) error {
	s.upserts = append(s.upserts, p)
	return s.upsertErr
}

func (s *recordingStore) RecordResult(ctx context.Context, userID int64, result Label, answers []Label) error {
	if s.recordErr != nil {
		return s.recordErr
	}
	s.recorded++
	s.resultUser = userID
	s.result = result
	s.answers = append([]Label(nil), answers...)
	return nil
}

type recordingNotifier struct {
	calls int
	err   error
}

func (n *recordingNotifier) TestCompleted(ctx context.Context, p Profile, result Label, answers []Label) error {
	n.calls++
	return n.err
}

func newTestEngine(member bool) (*Engine, *recordingStore, *recordingNotifier) {
	store := &recordingStore{}
	notifier := &recordingNotifier{}
	return NewEngine(&stubGate{member: member}, store, notifier), store, notifier
}

func answerAll(t *testing.T, e *Engine, p Profile, labels []Label) Render {
	t.Helper()
	var last Render
	for i, l := range labels {
		render, err := e.Answer(context.Background(), p, string(l))
		if err != nil {
			t.Fatalf("answer %d: %v", i+1, err)
		}
		last = render
	}
	return last
}

func TestStartSubscribedUser(t *testing.T) {
	e, store, _ := newTestEngine(true)
	p := Profile{ID: 1, Username: "alice"}

	render := e.Start(context.Background(), p)
	if render.Template != RenderGateConfirmed {
		t.Fatalf("template = %s, want %s", render.Template, RenderGateConfirmed)
	}
	if len(store.upserts) != 1 || store.upserts[0].ID != 1 {
		t.Fatalf("upserts = %+v, want one record for user 1", store.upserts)
	}
}

func TestStartUnsubscribedUser(t *testing.T) {
	e, _, _ := newTestEngine(false)

	render := e.Start(context.Background(), Profile{ID: 1})
	if render.Template != RenderGateRequired {
		t.Fatalf("template = %s, want %s", render.Template, RenderGateRequired)
	}
}

func TestStartSurvivesUpsertFailure(t *testing.T) {
	e, store, _ := newTestEngine(true)
	store.upsertErr = errors.New("db down")

	render := e.Start(context.Background(), Profile{ID: 1})
	if render.Template != RenderGateConfirmed {
		t.Fatalf("upsert failure must not block the conversation, got %s", render.Template)
	}
}

func TestStartTestRequiresGate(t *testing.T) {
	gate := &stubGate{member: true}
	e := NewEngine(gate, &recordingStore{}, nil)
	e.Start(context.Background(), Profile{ID: 1})

	// Subscription revoked between /start and the button press.
	gate.member = false
	render := e.StartTest(context.Background(), 1)
	if render.Template != RenderGateRequired || !render.Alert {
		t.Fatalf("render = %+v, want gate_required with alert", render)
	}

	gate.member = true
	render = e.StartTest(context.Background(), 1)
	if render.Template != RenderQuestion || render.Question != 1 {
		t.Fatalf("render = %+v, want question 1", render)
	}
}

func TestLinearCompletionPersistsAll(t *testing.T) {
	e, store, notifier := newTestEngine(true)
	p := Profile{ID: 9, Username: "bob"}
	e.Start(context.Background(), p)
	e.StartTest(context.Background(), p.ID)

	labels := []Label{LabelA, LabelB, LabelC, LabelA, LabelB, LabelA, LabelA, LabelC}
	render := answerAll(t, e, p, labels)

	if render.Template != RenderResult || render.Result != LabelA {
		t.Fatalf("render = %+v, want result A", render)
	}
	if store.recorded != 1 || store.resultUser != 9 {
		t.Fatalf("recorded=%d user=%d, want one record for user 9", store.recorded, store.resultUser)
	}
	if len(store.answers) != QuestionCount {
		t.Fatalf("persisted %d answers, want %d", len(store.answers), QuestionCount)
	}
	for i, l := range labels {
		if store.answers[i] != l {
			t.Fatalf("answer %d = %s, want %s", i+1, store.answers[i], l)
		}
	}
	if notifier.calls != 1 {
		t.Fatalf("notifier calls = %d, want 1", notifier.calls)
	}
	if e.InProgress(p.ID) {
		t.Fatal("session must be cleared after completion")
	}
}

func TestAnswerAdvancesOneQuestionAtATime(t *testing.T) {
	e, _, _ := newTestEngine(true)
	p := Profile{ID: 2}
	e.Start(context.Background(), p)
	e.StartTest(context.Background(), p.ID)

	for n := 1; n < QuestionCount; n++ {
		render, err := e.Answer(context.Background(), p, "B")
		if err != nil {
			t.Fatalf("answer %d: %v", n, err)
		}
		if render.Template != RenderQuestion || render.Question != n+1 {
			t.Fatalf("after answer %d render = %+v, want question %d", n, render, n+1)
		}
	}
}

func TestGoBackDropsLastAnswer(t *testing.T) {
	e, store, _ := newTestEngine(true)
	p := Profile{ID: 3}
	e.Start(context.Background(), p)
	e.StartTest(context.Background(), p.ID)

	// Answer 1 and 2, step back, and re-answer 2 differently.
	if _, err := e.Answer(context.Background(), p, "A"); err != nil {
		t.Fatalf("answer 1: %v", err)
	}
	if _, err := e.Answer(context.Background(), p, "A"); err != nil {
		t.Fatalf("answer 2: %v", err)
	}
	render := e.GoBack(context.Background(), p.ID)
	if render.Template != RenderQuestion || render.Question != 2 {
		t.Fatalf("go back render = %+v, want question 2", render)
	}

	labels := []Label{LabelC, LabelC, LabelC, LabelC, LabelC, LabelC, LabelC}
	final := answerAll(t, e, p, labels)
	if final.Template != RenderResult || final.Result != LabelC {
		t.Fatalf("final = %+v, want result C", final)
	}
	want := append([]Label{LabelA}, labels...)
	for i, l := range want {
		if store.answers[i] != l {
			t.Fatalf("answer %d = %s, want %s", i+1, store.answers[i], l)
		}
	}
}

func TestGoBackAtBoundaries(t *testing.T) {
	e, _, _ := newTestEngine(true)
	p := Profile{ID: 4}

	// Not in the questionnaire at all.
	render := e.GoBack(context.Background(), p.ID)
	if render.Template != RenderCannotGoBack || !render.Alert {
		t.Fatalf("idle go back = %+v, want cannot_go_back alert", render)
	}

	e.Start(context.Background(), p)
	render = e.GoBack(context.Background(), p.ID)
	if render.Template != RenderCannotGoBack {
		t.Fatalf("subscription go back = %+v, want cannot_go_back", render)
	}

	e.StartTest(context.Background(), p.ID)
	render = e.GoBack(context.Background(), p.ID)
	if render.Template != RenderCannotGoBack {
		t.Fatalf("question 1 go back = %+v, want cannot_go_back", render)
	}
}

func TestAnswerOutsideQuestionnaireResets(t *testing.T) {
	e, _, _ := newTestEngine(true)
	p := Profile{ID: 5}
	e.Start(context.Background(), p)

	// Stale answer button pressed while still at the subscription prompt.
	render, err := e.Answer(context.Background(), p, "A")
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if render.Template != RenderRestartRequired {
		t.Fatalf("render = %+v, want restart_required", render)
	}
	if e.InProgress(p.ID) {
		t.Fatal("broken session must be wiped")
	}
}

func TestAnswerRejectsUnknownLabel(t *testing.T) {
	e, _, _ := newTestEngine(true)
	p := Profile{ID: 6}
	e.Start(context.Background(), p)
	e.StartTest(context.Background(), p.ID)

	render, err := e.Answer(context.Background(), p, "Z")
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if render.Template != RenderRestartRequired {
		t.Fatalf("render = %+v, want restart_required", render)
	}
}

func TestFinalPersistFailureKeepsSessionRetryable(t *testing.T) {
	e, store, notifier := newTestEngine(true)
	p := Profile{ID: 7}
	e.Start(context.Background(), p)
	e.StartTest(context.Background(), p.ID)

	seven := []Label{LabelB, LabelB, LabelB, LabelB, LabelB, LabelB, LabelB}
	answerAll(t, e, p, seven)

	store.recordErr = errors.New("db down")
	if _, err := e.Answer(context.Background(), p, "B"); err == nil {
		t.Fatal("expected persistence error to propagate")
	}
	if notifier.calls != 0 {
		t.Fatal("operator must not be notified on a failed write")
	}
	if !e.InProgress(p.ID) {
		t.Fatal("session must survive a failed final write")
	}

	// The final answer was not committed: the same tap succeeds now.
	store.recordErr = nil
	render, err := e.Answer(context.Background(), p, "B")
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if render.Template != RenderResult || render.Result != LabelB {
		t.Fatalf("retry render = %+v, want result B", render)
	}
	if len(store.answers) != QuestionCount {
		t.Fatalf("persisted %d answers, want %d", len(store.answers), QuestionCount)
	}
}

func TestNotifierFailureIsBestEffort(t *testing.T) {
	e, _, notifier := newTestEngine(true)
	notifier.err = errors.New("operator unreachable")
	p := Profile{ID: 8}
	e.Start(context.Background(), p)
	e.StartTest(context.Background(), p.ID)

	render := answerAll(t, e, p, []Label{LabelA, LabelA, LabelA, LabelA, LabelA, LabelA, LabelA, LabelA})
	if render.Template != RenderResult {
		t.Fatalf("render = %+v, want result despite notifier failure", render)
	}
}

func TestCancel(t *testing.T) {
	e, _, _ := newTestEngine(true)
	p := Profile{ID: 10}

	render := e.Cancel(context.Background(), p.ID)
	if render.Template != RenderNothingToCancel {
		t.Fatalf("idle cancel = %+v, want nothing_to_cancel", render)
	}

	e.Start(context.Background(), p)
	e.StartTest(context.Background(), p.ID)
	render = e.Cancel(context.Background(), p.ID)
	if render.Template != RenderCancelled {
		t.Fatalf("cancel = %+v, want cancelled", render)
	}
	if e.InProgress(p.ID) {
		t.Fatal("cancel must clear the session")
	}
}

func TestRestartDuringQuizResetsAnswers(t *testing.T) {
	e, store, _ := newTestEngine(true)
	p := Profile{ID: 11}
	e.Start(context.Background(), p)
	e.StartTest(context.Background(), p.ID)
	answerAll(t, e, p, []Label{LabelA, LabelA, LabelA})

	// /start mid-quiz resets to the subscription prompt.
	e.Start(context.Background(), p)
	render := e.StartTest(context.Background(), p.ID)
	if render.Question != 1 {
		t.Fatalf("after restart question = %d, want 1", render.Question)
	}

	final := answerAll(t, e, p, []Label{LabelC, LabelC, LabelC, LabelC, LabelC, LabelC, LabelC, LabelC})
	if final.Result != LabelC {
		t.Fatalf("result = %s, want C (earlier answers discarded)", final.Result)
	}
	if len(store.answers) != QuestionCount {
		t.Fatalf("persisted %d answers, want %d", len(store.answers), QuestionCount)
	}
}

func TestRetakeAfterCompletion(t *testing.T) {
	e, store, _ := newTestEngine(true)
	p := Profile{ID: 12}
	e.Start(context.Background(), p)
	e.StartTest(context.Background(), p.ID)
	answerAll(t, e, p, []Label{LabelA, LabelA, LabelA, LabelA, LabelA, LabelA, LabelA, LabelA})

	// The result screen offers a retake: straight back to question 1.
	render := e.StartTest(context.Background(), p.ID)
	if render.Template != RenderQuestion || render.Question != 1 {
		t.Fatalf("retake render = %+v, want question 1", render)
	}

	final := answerAll(t, e, p, []Label{LabelB, LabelB, LabelB, LabelB, LabelB, LabelB, LabelB, LabelB})
	if final.Result != LabelB {
		t.Fatalf("retake result = %s, want B", final.Result)
	}
	if store.recorded != 2 {
		t.Fatalf("recorded = %d, want 2", store.recorded)
	}
}

func TestSessionsAreIsolatedPerUser(t *testing.T) {
	e, _, _ := newTestEngine(true)
	alice := Profile{ID: 21}
	bob := Profile{ID: 22}

	e.Start(context.Background(), alice)
	e.StartTest(context.Background(), alice.ID)
	e.Start(context.Background(), bob)
	e.StartTest(context.Background(), bob.ID)

	answerAll(t, e, alice, []Label{LabelA, LabelA, LabelA})
	render, err := e.Answer(context.Background(), bob, "B")
	if err != nil {
		t.Fatalf("bob answer: %v", err)
	}
	if render.Question != 2 {
		t.Fatalf("bob at question %d, want 2", render.Question)
	}
}
