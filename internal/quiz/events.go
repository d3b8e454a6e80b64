package quiz

// EventType — тип входящего события.
type EventType string

const (
	EventMenuSelect   EventType = "menu_select"
	EventAnswerSelect EventType = "answer_select"
	EventFreeText     EventType = "free_text"
	EventCancel       EventType = "cancel"
)

// MenuOption — пункт меню, выбранный пользователем.
type MenuOption string

const (
	OptionStart    MenuOption = "start"
	OptionHelp     MenuOption = "help"
	OptionQuiz     MenuOption = "quiz"
	OptionInfo     MenuOption = "info"
	OptionContact  MenuOption = "contact"
	OptionFeedback MenuOption = "feedback"
	OptionNext     MenuOption = "next"
	OptionReset    MenuOption = "reset"
)

// Event представляет входящее событие от транспорта. Полезная нагрузка
// разбирается на границе транспорта: движок никогда не сравнивает сырые
// строки callback-данных.
type Event struct {
	Type   EventType
	Option MenuOption // для EventMenuSelect
	Points int        // для EventAnswerSelect
	Text   string     // для EventFreeText
}

// User — отправитель события. ID является стабильным внешним идентификатором
// пользователя в Telegram.
type User struct {
	ID        int64
	FirstName string
	Username  string
}

// DisplayName возвращает имя для профиля и писем: username, если он задан,
// иначе имя из Telegram.
func (u User) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}

	return u.FirstName
}
