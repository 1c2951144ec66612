package texts

// Subscription gate screens. The bot re-renders these on /start, on the
// manual recheck, and whenever the gate rejects a quiz entry.
const (
	SubscribeRequired = "👋 Здравствуйте!\n\n" +
		"Это тест «Что происходит с вашими отношениями» — 8 коротких вопросов.\n\n" +
		"Чтобы начать, подпишитесь на наш канал: там выходят разборы и материалы, " +
		"которые дополняют результат теста. После подписки нажмите «Я подписалась»."

	SubscribeConfirmed = "✅ Подписка подтверждена!\n\n" +
		"Можно начинать тест: 8 вопросов, в каждом — три варианта ответа. " +
		"Выбирайте тот, что ближе всего. Вернуться к предыдущему вопросу можно кнопкой «Назад»."

	SubscribeNotConfirmed = "😔 Пока не видим вашей подписки.\n\n" +
		"Подпишитесь на канал и нажмите «Я подписалась» ещё раз."

	AlreadySubscribed = "👋 Рады видеть вас снова!\n\n" +
		"Вы уже подписаны на канал — можно сразу переходить к тесту."
)

// Transient alerts raised on top of the persistent message body.
const (
	AlertNotSubscribed        = "❌ Вы не подписаны на канал"
	AlertSubscriptionRequired = "🔐 Требуется подписка на канал"
	AlertCannotGoBack         = "Невозможно вернуться назад"
)

// AboutText is the "about the test" screen.
const AboutText = "ℹ️ <b>О тесте</b>\n\n" +
	"Тест состоит из 8 вопросов о том, как вы чувствуете себя в отношениях. " +
	"По ответам определяется одно из трёх состояний, и вы получаете короткую " +
	"интерпретацию с рекомендацией.\n\n" +
	"Результат не является диагнозом — это повод для разговора с психологом."

// Service notices for broken or cancelled flows.
const (
	RestartRequired = "Ошибка состояния. Начните тест заново: /start"
	Cancelled       = "Операция отменена ✅"
	NothingToCancel = "Нет активных операций для отмены"
	UnknownText     = "Я понимаю только команды и кнопки. Начните с /start"
)
