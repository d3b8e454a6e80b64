package notify

import "context"

// RecipientClass — класс получателей уведомления.
type RecipientClass string

const (
	// RecipientStaff — сотрудники зоопарка, отвечающие на вопросы посетителей.
	RecipientStaff RecipientClass = "staff_questions"

	// RecipientFeedback — получатели отзывов о работе бота.
	RecipientFeedback RecipientClass = "feedback"
)

// Sink определяет интерфейс для доставки уведомлений во внешний канал.
type Sink interface {
	// Deliver доставляет сообщение получателям класса recipient.
	// Возвращает ошибку, если доставка не состоялась.
	Deliver(ctx context.Context, subject, body string, recipient RecipientClass) error
}
