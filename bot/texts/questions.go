// Package texts is the static content table of the bot: questions,
// result interpretations, and service messages. Handlers read it; nothing
// here is generated at runtime.
package texts

import "github.com/m3rciful/quizbot/services/quiz"

// Question pairs the question body with its three answer options.
type Question struct {
	Text    string
	Options map[quiz.Label]string
}

// Markers decorate options and answers per label, matching the result
// screen styling.
var Markers = map[quiz.Label]string{
	quiz.LabelA: "◽️",
	quiz.LabelB: "◾️",
	quiz.LabelC: "▪️",
}

// Questions is the fixed eight-step questionnaire, in order.
var Questions = []Question{
	{
		Text: "Когда вы думаете о своих отношениях, вы чаще чувствуете:",
		Options: map[quiz.Label]string{
			quiz.LabelA: "пустоту и отдалённость",
			quiz.LabelB: "усталость и раздражение",
			quiz.LabelC: "тоску по близости, которой нет",
		},
	},
	{
		Text: "Когда вам больно или обидно, вы обычно:",
		Options: map[quiz.Label]string{
			quiz.LabelA: "молчите и ждёте, пока пройдёт",
			quiz.LabelB: "срываетесь или замыкаетесь от перегрузки",
			quiz.LabelC: "прячете чувства, чтобы не оттолкнуть",
		},
	},
	{
		Text: "В отношениях вы чаще ощущаете себя:",
		Options: map[quiz.Label]string{
			quiz.LabelA: "соседями, живущими рядом",
			quiz.LabelB: "человеком, который всё тянет на себе",
			quiz.LabelC: "тем, кто боится попросить о тепле",
		},
	},
	{
		Text: "Ощущение, что вас по-настоящему слышат:",
		Options: map[quiz.Label]string{
			quiz.LabelA: "почти исчезло",
			quiz.LabelB: "бывает, но только когда вы настаиваете",
			quiz.LabelC: "возникает редко и быстро проходит",
		},
	},
	{
		Text: "Если вы перестанете быть удобной, вам кажется, что:",
		Options: map[quiz.Label]string{
			quiz.LabelA: "ничего не изменится — всем всё равно",
			quiz.LabelB: "всё развалится без вас",
			quiz.LabelC: "вас перестанут любить",
		},
	},
	{
		Text: "Какая мысль вам ближе:",
		Options: map[quiz.Label]string{
			quiz.LabelA: "«Мы стали чужими»",
			quiz.LabelB: "«Я больше не вывожу»",
			quiz.LabelC: "«Я хочу близости, но боюсь её»",
		},
	},
	{
		Text: "Если представить будущее через несколько лет, вам:",
		Options: map[quiz.Label]string{
			quiz.LabelA: "видится всё та же тишина",
			quiz.LabelB: "страшно от того, сколько всего на вас ляжет",
			quiz.LabelC: "хочется верить, что станет теплее",
		},
	},
	{
		Text: "Самая точная фраза про ваше состояние сейчас:",
		Options: map[quiz.Label]string{
			quiz.LabelA: "«Я как будто одна, даже когда мы вместе»",
			quiz.LabelB: "«Я очень устала»",
			quiz.LabelC: "«Мне не хватает нежности»",
		},
	},
}
