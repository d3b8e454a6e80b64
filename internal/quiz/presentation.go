package quiz

// PresentationKind — вид исходящего представления.
type PresentationKind string

const (
	PresentMenu         PresentationKind = "menu"
	PresentQuestion     PresentationKind = "question"
	PresentCompletion   PresentationKind = "completion"
	PresentText         PresentationKind = "text"
	PresentInfo         PresentationKind = "info"
	PresentDeletePrompt PresentationKind = "delete_prompt"
)

// Action — кнопка, порождающая новое событие для движка.
type Action struct {
	Label  string
	Option MenuOption
}

// Link — кнопка-ссылка на внешний ресурс.
type Link struct {
	Label string
	URL   string
}

// Presentation — абстрактная единица вывода, которую транспорт отображает
// средствами Telegram (inline-кнопки, фотографии, карточки со ссылками).
// Никакого знания о форматировании Telegram здесь нет.
//
// Edit просит транспорт заменить сообщение, вызвавшее событие, вместо
// отправки нового; при отсутствии такого сообщения транспорт отправляет новое.
type Presentation struct {
	Kind    PresentationKind
	Body    string
	Edit    bool
	Actions []Action

	// Для PresentQuestion.
	Options []AnswerOption

	// Для PresentCompletion.
	Totem     string
	PhotoURL  string
	ShareURL  string
	WithPhoto bool

	// Для PresentCompletion и PresentInfo.
	Links []Link
}

func deletePrompt() Presentation {
	return Presentation{Kind: PresentDeletePrompt}
}

func text(body string, actions ...Action) Presentation {
	return Presentation{Kind: PresentText, Body: body, Actions: actions}
}

func editText(body string, actions ...Action) Presentation {
	return Presentation{Kind: PresentText, Body: body, Edit: true, Actions: actions}
}
