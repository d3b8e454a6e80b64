package sender

import (
	"github.com/letsssgooo/zoobot/internal/quiz"
)

// Sender определяет основной интерфейс для отрисовки представлений движка.
type Sender interface {
	// Render отрисовывает представления в чате chatID.
	// promptID — сообщение, вызвавшее событие (0, если его нет); оно
	// редактируется или удаляется, когда представление об этом просит.
	Render(chatID int64, promptID int, presentations []quiz.Presentation) error
}
