package users

import (
	"testing"

	"github.com/m3rciful/quizbot/services/quiz"
)

func TestFullName(t *testing.T) {
	cases := []struct {
		first, last, want string
	}{
		{"Анна", "Иванова", "Анна Иванова"},
		{"Анна", "", "Анна"},
		{"", "Иванова", "Иванова"},
		{"", "", "Без имени"},
	}
	for _, tc := range cases {
		u := User{FirstName: tc.first, LastName: tc.last}
		if got := u.FullName(); got != tc.want {
			t.Fatalf("FullName(%q, %q) = %q, want %q", tc.first, tc.last, got, tc.want)
		}
	}
}

func TestHandle(t *testing.T) {
	if got := (User{Username: "anna"}).Handle(); got != "@anna" {
		t.Fatalf("Handle = %q, want @anna", got)
	}
	if got := (User{}).Handle(); got != "—" {
		t.Fatalf("Handle = %q, want placeholder", got)
	}
}

func TestJoinAnswers(t *testing.T) {
	got := JoinAnswers([]quiz.Label{quiz.LabelA, quiz.LabelB, quiz.LabelA})
	if got != "A,B,A" {
		t.Fatalf("JoinAnswers = %q, want A,B,A", got)
	}
	if got := JoinAnswers(nil); got != "" {
		t.Fatalf("JoinAnswers(nil) = %q, want empty", got)
	}
}
