package texts

import "github.com/m3rciful/quizbot/services/quiz"

// ResultHeaders name the three terminal categories.
var ResultHeaders = map[quiz.Label]string{
	quiz.LabelA: "◽️ <b>Результат: «Тихий тупик»</b>",
	quiz.LabelB: "◾️ <b>Результат: «Перегруженная женщина»</b>",
	quiz.LabelC: "▪️ <b>Результат: «Подавленная близость»</b>",
}

// ResultInterpretations describe each category on the result screen.
var ResultInterpretations = map[quiz.Label]string{
	quiz.LabelA: "Вы давно живёте рядом, а не вместе. Разговоры стали короче, " +
		"тишина — привычнее. Это не конец: отдалённость — это сигнал, " +
		"что близость можно и нужно возвращать.",
	quiz.LabelB: "Вы несёте на себе слишком много и почти не оставляете места " +
		"для себя. Усталость накапливается и превращается в раздражение. " +
		"Первый шаг — разрешить себе опору, а не новую нагрузку.",
	quiz.LabelC: "Вам хочется тепла и близости, но страшно попросить о них. " +
		"Чувства прячутся так глубоко, что их перестают замечать. " +
		"С этим можно бережно работать — и возвращать себе право на нежность.",
}

// ResultCompleted is the banner above the result header.
const ResultCompleted = "✅ <b>Тест завершён</b>"

// FinalMessage closes the result screen and invites to a consultation.
const FinalMessage = "Если захотите разобраться глубже — напишите психологу. " +
	"Первая консультация поможет понять, с чего начать."
