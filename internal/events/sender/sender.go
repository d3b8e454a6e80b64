package sender

import (
	"fmt"
	"strconv"

	"github.com/letsssgooo/zoobot/internal/client"
	"github.com/letsssgooo/zoobot/internal/quiz"
)

// TelegramSender реализует отрисовку представлений движка через Telegram Bot
// API: пункты меню и варианты ответов становятся inline-кнопками, карточка
// результата — фотографией с подписью, внешние ссылки — кнопками-ссылками.
type TelegramSender struct {
	client client.Client
}

// NewTelegramSender создает новый объект структуры TelegramSender.
func NewTelegramSender(client client.Client) *TelegramSender {
	return &TelegramSender{client: client}
}

// Render отрисовывает представления в чате chatID по порядку.
func (s *TelegramSender) Render(chatID int64, promptID int, presentations []quiz.Presentation) error {
	for _, p := range presentations {
		if err := s.render(chatID, promptID, p); err != nil {
			return err
		}
	}

	return nil
}

func (s *TelegramSender) render(chatID int64, promptID int, p quiz.Presentation) error {
	if p.Kind == quiz.PresentDeletePrompt {
		if promptID == 0 {
			return nil
		}

		return s.client.DeleteMessage(chatID, promptID)
	}

	opts := &client.SendOptions{ReplyMarkup: buildMarkup(p)}

	if p.Kind == quiz.PresentCompletion && p.WithPhoto {
		_, err := s.client.SendPhoto(chatID, p.PhotoURL, p.Body, opts)
		return err
	}

	if p.Edit && promptID != 0 {
		return s.client.EditMessage(chatID, promptID, p.Body, opts)
	}

	_, err := s.client.SendMessage(chatID, p.Body, opts)

	return err
}

// buildMarkup собирает inline клавиатуру представления: варианты ответов,
// затем ссылка "поделиться", внешние ссылки и кнопки-действия.
// Возвращает nil, если кнопок нет.
func buildMarkup(p quiz.Presentation) *client.InlineKeyboardMarkup {
	var rows [][]client.InlineKeyboardButton

	for i, option := range p.Options {
		rows = append(rows, []client.InlineKeyboardButton{{
			Text:         fmt.Sprintf("%d: %s", i+1, option.Label),
			CallbackData: strconv.Itoa(option.Points),
		}})
	}

	if p.ShareURL != "" {
		rows = append(rows, []client.InlineKeyboardButton{{
			Text: shareButtonLabel,
			URL:  p.ShareURL,
		}})
	}

	for _, link := range p.Links {
		rows = append(rows, []client.InlineKeyboardButton{{
			Text: link.Label,
			URL:  link.URL,
		}})
	}

	for _, action := range p.Actions {
		rows = append(rows, []client.InlineKeyboardButton{{
			Text:         action.Label,
			CallbackData: string(action.Option),
		}})
	}

	if len(rows) == 0 {
		return nil
	}

	return &client.InlineKeyboardMarkup{InlineKeyboard: rows}
}

const shareButtonLabel = `Поделиться результатом`
