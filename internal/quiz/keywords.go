package quiz

import "strings"

// greetingKeywords — ключевые слова приветствия, включая "привет",
// набранное в английской раскладке.
var greetingKeywords = []string{"hello", "ghbdtn", "привет", "здравствуйте", "hi"}

// respondFreeText подбирает ответ на нераспознанное текстовое сообщение.
// Текст приводится к нижнему регистру и проверяется на вхождение ключевых
// слов приветствия. Функция чистая, движок вызывает её только в состояниях
// без активного побочного диалога.
func respondFreeText(text string) string {
	processed := strings.ToLower(text)

	for _, keyword := range greetingKeywords {
		if strings.Contains(processed, keyword) {
			return msgGreeting + "\n" + msgMenuHint
		}
	}

	return msgMenuHint
}
