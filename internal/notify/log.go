package notify

import (
	"context"
	"log/slog"
)

// LogSink реализует Sink записью в лог. Используется при локальной разработке,
// когда SMTP не настроен: сообщения пользователей не теряются молча, а
// попадают в вывод процесса.
type LogSink struct{}

// NewLogSink создаёт новый LogSink.
func NewLogSink() *LogSink {
	return &LogSink{}
}

// Deliver пишет уведомление в лог и всегда завершается успешно.
func (s *LogSink) Deliver(ctx context.Context, subject, body string, recipient RecipientClass) error {
	slog.Info("notification",
		"recipient_class", string(recipient),
		"subject", subject,
		"body", body,
	)

	return nil
}
