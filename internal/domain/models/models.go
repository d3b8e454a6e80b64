package models

// Файл для работы с моделями пользовательских данных, которые доступны извне.
// Движок викторины заполняет модели данными и передает их в хранилище,
// хранилище отдает их обратно при каждом входящем событии.

// Status — статус прохождения викторины пользователем.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Label возвращает человекочитаемый статус для писем сотрудникам.
// Исторически в хранилище использовались именно эти строки.
func (s Status) Label() string {
	if s == StatusCompleted {
		return "Пройдено"
	}

	return "Не пройдено"
}

// TotemUndetermined — значение тотема до завершения викторины.
const TotemUndetermined = "Не определено"

// Profile определяет модель прогресса пользователя.
// ExternalID — идентификатор пользователя в Telegram, неизменяем после создания.
// Question — номер следующего вопроса (нумерация с единицы); после завершения
// викторины равен количеству вопросов плюс один.
type Profile struct {
	ExternalID int64
	Name       string
	Status     Status
	Question   int
	Points     int
	Totem      string
}

// NewProfile создаёт профиль с начальным прогрессом.
func NewProfile(externalID int64, name string) *Profile {
	return &Profile{
		ExternalID: externalID,
		Name:       name,
		Status:     StatusNotStarted,
		Question:   1,
		Points:     0,
		Totem:      TotemUndetermined,
	}
}

// Reset возвращает прогресс в начальное состояние. Вызывающая сторона обязана
// держать блокировку пользователя и сохранить профиль после вызова.
func (p *Profile) Reset() {
	p.Status = StatusNotStarted
	p.Question = 1
	p.Points = 0
	p.Totem = TotemUndetermined
}

// Clone возвращает независимую копию профиля.
func (p *Profile) Clone() *Profile {
	cp := *p
	return &cp
}
