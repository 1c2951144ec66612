package texts

// Operator command texts.
const (
	AdminDenied = "❌ У вас нет прав для использования этой команды"

	AdminBroadcastStart = "📣 Отправьте сообщение для рассылки.\n\n" +
		"Оно будет скопировано всем пользователям бота. Отмена: /cancel"

	// AdminBroadcastComplete expects total, success, failed.
	AdminBroadcastComplete = "📊 Рассылка завершена\n\n" +
		"Всего: %d\nДоставлено: %d\nНе доставлено: %d"

	// AdminStatsHeader expects total and today counts.
	AdminStatsHeader = "📈 Статистика\n\nВсего пользователей: %d\nНовых сегодня: %d"

	AdminStatsEmptyToday = "\nСегодня новых пользователей нет"

	IncompleteTest = "не завершил(а) тест"
)

// AdminNotification expects date, user id, full name, handle, result,
// and the formatted answer breakdown.
const AdminNotification = "🆕 <b>Новый пройденный тест</b>\n\n" +
	"📅 %s\n" +
	"🆔 <code>%d</code>\n" +
	"👤 %s (%s)\n" +
	"🏷 Результат: <b>%s</b>\n\n%s"
