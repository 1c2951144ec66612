package quiz

// Label is one of the three answer categories. The same set is used both
// for per-question answers and for the final classified result.
type Label string

const (
	LabelA Label = "A"
	LabelB Label = "B"
	LabelC Label = "C"
)

// Labels lists all valid labels in classifier priority order.
var Labels = []Label{LabelA, LabelB, LabelC}

// QuestionCount is the fixed length of the questionnaire.
const QuestionCount = 8

// State identifies the user's position in the quiz conversation.
type State string

const (
	StateIdle         State = "idle"
	StateSubscription State = "subscription"
	StateQuestion1    State = "q1"
	StateQuestion2    State = "q2"
	StateQuestion3    State = "q3"
	StateQuestion4    State = "q4"
	StateQuestion5    State = "q5"
	StateQuestion6    State = "q6"
	StateQuestion7    State = "q7"
	StateQuestion8    State = "q8"
)

// questionStates maps a 1-based question number to its state.
var questionStates = [QuestionCount + 1]State{
	1: StateQuestion1,
	2: StateQuestion2,
	3: StateQuestion3,
	4: StateQuestion4,
	5: StateQuestion5,
	6: StateQuestion6,
	7: StateQuestion7,
	8: StateQuestion8,
}

// questionIndex is the inverse of questionStates.
var questionIndex = map[State]int{
	StateQuestion1: 1,
	StateQuestion2: 2,
	StateQuestion3: 3,
	StateQuestion4: 4,
	StateQuestion5: 5,
	StateQuestion6: 6,
	StateQuestion7: 7,
	StateQuestion8: 8,
}

// QuestionState returns the state for a 1-based question number.
func QuestionState(n int) (State, bool) {
	if n < 1 || n > QuestionCount {
		return StateIdle, false
	}
	return questionStates[n], true
}

// QuestionNumber returns the 1-based question number for a state,
// or false when the state is not a question state.
func QuestionNumber(st State) (int, bool) {
	n, ok := questionIndex[st]
	return n, ok
}

// ParseLabel validates a raw answer token.
func ParseLabel(raw string) (Label, bool) {
	switch Label(raw) {
	case LabelA, LabelB, LabelC:
		return Label(raw), true
	}
	return "", false
}
