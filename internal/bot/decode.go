package bot

import (
	"strconv"
	"strings"

	"github.com/letsssgooo/zoobot/internal/client"
	"github.com/letsssgooo/zoobot/internal/quiz"
)

// inbound — событие движка вместе с адресацией ответа: чат и сообщение,
// вызвавшее событие (callbackID пуст для обычных сообщений).
type inbound struct {
	user       quiz.User
	event      quiz.Event
	chatID     int64
	promptID   int
	callbackID string
}

// decodeUpdate разбирает обновление Telegram в типизированное событие движка.
// Полезная нагрузка callback-кнопок декодируется только здесь: число — выбор
// варианта ответа, всё остальное — пункт меню. Движок сырых строк не видит.
func decodeUpdate(update client.Update) (inbound, bool) {
	if update.CallbackQuery != nil {
		return decodeCallback(update.CallbackQuery)
	}

	if update.Message != nil {
		return decodeMessage(update.Message)
	}

	return inbound{}, false
}

func decodeMessage(message *client.Message) (inbound, bool) {
	if message.From == nil || message.Chat == nil {
		return inbound{}, false
	}

	in := inbound{
		user:   decodeUser(message.From),
		chatID: message.Chat.ID,
	}

	switch strings.TrimSpace(message.Text) {
	case "/start":
		in.event = quiz.Event{Type: quiz.EventMenuSelect, Option: quiz.OptionStart}
	case "/help":
		in.event = quiz.Event{Type: quiz.EventMenuSelect, Option: quiz.OptionHelp}
	case "/cancel":
		in.event = quiz.Event{Type: quiz.EventCancel}
	case "":
		return inbound{}, false
	default:
		in.event = quiz.Event{Type: quiz.EventFreeText, Text: message.Text}
	}

	return in, true
}

func decodeCallback(callback *client.CallbackQuery) (inbound, bool) {
	if callback.From == nil || callback.Message == nil || callback.Message.Chat == nil {
		return inbound{}, false
	}

	in := inbound{
		user:       decodeUser(callback.From),
		chatID:     callback.Message.Chat.ID,
		promptID:   callback.Message.MessageID,
		callbackID: callback.ID,
	}

	if points, err := strconv.Atoi(callback.Data); err == nil {
		in.event = quiz.Event{Type: quiz.EventAnswerSelect, Points: points}
		return in, true
	}

	// Неизвестный пункт меню движок отклонит как некорректное событие.
	in.event = quiz.Event{Type: quiz.EventMenuSelect, Option: quiz.MenuOption(callback.Data)}

	return in, true
}

func decodeUser(user *client.User) quiz.User {
	return quiz.User{
		ID:        user.ID,
		FirstName: user.FirstName,
		Username:  user.Username,
	}
}
