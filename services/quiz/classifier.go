package quiz

// Classify reduces an ordered sequence of answers to the final result
// label. The most frequent label wins; ties resolve to the earliest label
// in priority order A, B, C. Input is assumed validated by the engine:
// exactly QuestionCount labels, each one of {A,B,C}.
func Classify(answers []Label) Label {
	counts := make(map[Label]int, len(Labels))
	for _, a := range answers {
		counts[a]++
	}

	max := 0
	for _, n := range counts {
		if n > max {
			max = n
		}
	}

	for _, l := range Labels {
		if counts[l] == max {
			return l
		}
	}
	return LabelB
}
