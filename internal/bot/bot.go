package bot

import (
	"context"
	"log/slog"
	"time"

	"github.com/letsssgooo/zoobot/internal/client"
	"github.com/letsssgooo/zoobot/internal/events/fetcher"
	"github.com/letsssgooo/zoobot/internal/events/sender"
	"github.com/letsssgooo/zoobot/internal/quiz"
)

const (
	pollTimeout    = 25 // секунд, long polling
	pollRetryDelay = time.Second
)

// Bot связывает получение обновлений, движок викторины и отрисовку ответов.
type Bot struct {
	fetcher fetcher.Fetcher
	sender  sender.Sender
	client  client.Client
	engine  *quiz.Engine
}

// New создаёт нового бота.
func New(f fetcher.Fetcher, s sender.Sender, c client.Client, engine *quiz.Engine) *Bot {
	return &Bot{
		fetcher: f,
		sender:  s,
		client:  c,
		engine:  engine,
	}
}

// Run запускает бота (long polling) и блокируется до отмены контекста.
// Обновления обрабатываются параллельно: порядок для одного пользователя
// обеспечивает движок своей блокировкой по внешнему идентификатору.
func (b *Bot) Run(ctx context.Context) error {
	slog.Info("polling..")

	for {
		updates, err := b.fetcher.GetUpdates(ctx, pollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			slog.Error("failed to get updates", "err", err)
			time.Sleep(pollRetryDelay)

			continue
		}

		for _, update := range updates {
			go b.handleUpdate(ctx, update)
		}
	}
}

// handleUpdate обрабатывает одно обновление: декодирует событие, прогоняет
// его через движок и отрисовывает ответ. Ошибки отрисовки логируются и не
// останавливают обработку остальных обновлений.
func (b *Bot) handleUpdate(ctx context.Context, update client.Update) {
	in, ok := decodeUpdate(update)
	if !ok {
		slog.Debug("skipping undecodable update", "update_id", update.UpdateID)
		return
	}

	if in.callbackID != "" {
		if err := b.client.AnswerCallback(in.callbackID, ""); err != nil {
			slog.Warn("failed to answer callback", "user_id", in.user.ID, "err", err)
		}
	}

	presentations := b.engine.HandleEvent(ctx, in.user, in.event)

	if err := b.sender.Render(in.chatID, in.promptID, presentations); err != nil {
		slog.Error("failed to render reply", "user_id", in.user.ID, "err", err)
	}
}
