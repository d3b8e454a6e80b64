package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sync"

	"github.com/letsssgooo/zoobot/internal/domain/models"
	"github.com/letsssgooo/zoobot/internal/notify"
	"github.com/letsssgooo/zoobot/internal/storage"
)

// conversationMode — режим побочного диалога пользователя.
// Прогресс викторины живёт в профиле; режим — в памяти движка.
type conversationMode int

const (
	modeIdle conversationMode = iota
	modeAskStaff
	modeFeedback
)

// Engine реализует диалоговую машину состояний бота. Один вызов HandleEvent
// обрабатывает одно входящее событие; внутренних горутин у движка нет.
//
// События разных пользователей обрабатываются полностью параллельно.
// События одного пользователя сериализуются блокировкой по ExternalID:
// чтение-изменение-сохранение профиля атомарно относительно конкурентно
// пришедших событий того же пользователя.
type Engine struct {
	store       storage.Store
	sink        notify.Sink
	content     *Content
	botUsername string

	mu    sync.Mutex
	modes map[int64]conversationMode
	locks map[int64]*sync.Mutex
}

// NewEngine создаёт движок викторины.
// botUsername — username бота без @, используется для формирования
// ссылки "поделиться результатом".
func NewEngine(store storage.Store, sink notify.Sink, content *Content, botUsername string) *Engine {
	return &Engine{
		store:       store,
		sink:        sink,
		content:     content,
		botUsername: botUsername,
		modes:       make(map[int64]conversationMode),
		locks:       make(map[int64]*sync.Mutex),
	}
}

// HandleEvent обрабатывает одно событие пользователя и возвращает
// представления для отрисовки транспортом.
//
// Все ошибки коллабораторов перехватываются здесь и превращаются в
// представления: наружу не уходит ни одной сырой ошибки, сбой обработки
// события одного пользователя не влияет на других.
func (e *Engine) HandleEvent(ctx context.Context, user User, ev Event) []Presentation {
	lock := e.lockFor(user.ID)
	lock.Lock()
	defer lock.Unlock()

	profile, err := e.store.GetOrCreate(ctx, user.ID, user.DisplayName())
	if err != nil {
		slog.Error("failed to load profile", "user_id", user.ID, "err", err)
		return []Presentation{text(msgTryAgainLater)}
	}

	switch ev.Type {
	case EventCancel:
		return e.handleCancel(user)
	case EventFreeText:
		return e.handleFreeText(ctx, user, profile, ev.Text)
	case EventAnswerSelect:
		return e.handleAnswer(ctx, user, profile, ev.Points)
	case EventMenuSelect:
		return e.handleMenu(ctx, user, profile, ev.Option)
	}

	slog.Warn("unknown event type", "user_id", user.ID, "type", string(ev.Type))

	return []Presentation{text(msgMenuHint)}
}

// lockFor возвращает блокировку пользователя, создавая её при первом событии.
func (e *Engine) lockFor(externalID int64) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()

	lock, ok := e.locks[externalID]
	if !ok {
		lock = &sync.Mutex{}
		e.locks[externalID] = lock
	}

	return lock
}

func (e *Engine) mode(externalID int64) conversationMode {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.modes[externalID]
}

func (e *Engine) setMode(externalID int64, mode conversationMode) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if mode == modeIdle {
		delete(e.modes, externalID)
		return
	}

	e.modes[externalID] = mode
}

func (e *Engine) handleMenu(
	ctx context.Context,
	user User,
	profile *models.Profile,
	option MenuOption,
) []Presentation {
	switch option {
	case OptionStart:
		return []Presentation{e.mainMenu()}
	case OptionHelp:
		return []Presentation{text(msgHelp)}
	case OptionQuiz:
		return e.presentQuizEntry(profile)
	case OptionNext:
		return e.presentQuestion(user, profile)
	case OptionReset:
		return e.handleReset(ctx, user, profile)
	case OptionInfo:
		return []Presentation{{
			Kind:  PresentInfo,
			Body:  msgInfo,
			Edit:  true,
			Links: []Link{{Label: btnZooSite, URL: zooSiteURL}},
		}}
	case OptionContact:
		e.setMode(user.ID, modeAskStaff)
		return []Presentation{deletePrompt(), text(msgContactInstructions)}
	case OptionFeedback:
		e.setMode(user.ID, modeFeedback)
		return []Presentation{deletePrompt(), text(msgFeedbackInstructions)}
	}

	slog.Warn("malformed menu option", "user_id", user.ID, "option", string(option))

	return e.rerender(profile)
}

// mainMenu — главное меню бота.
func (e *Engine) mainMenu() Presentation {
	return Presentation{
		Kind: PresentMenu,
		Body: msgGreeting,
		Actions: []Action{
			{Label: btnQuiz, Option: OptionQuiz},
			{Label: btnInfo, Option: OptionInfo},
			{Label: btnContact, Option: OptionContact},
			{Label: btnFeedback, Option: OptionFeedback},
		},
	}
}

// presentQuizEntry обрабатывает выбор викторины в меню: предлагает начать,
// продолжить либо показывает итог, если викторина уже пройдена.
func (e *Engine) presentQuizEntry(profile *models.Profile) []Presentation {
	if profile.Status == models.StatusCompleted {
		return []Presentation{e.completionView(profile, false, true)}
	}

	if profile.Question == 1 {
		return []Presentation{editText(msgQuizStart, Action{Label: btnNextFirst, Option: OptionNext})}
	}

	return []Presentation{editText(
		msgQuizContinueOrRestart,
		Action{Label: btnNextContinue, Option: OptionNext},
		Action{Label: btnRestart, Option: OptionReset},
	)}
}

// presentQuestion показывает текущий вопрос с вариантами ответов.
func (e *Engine) presentQuestion(user User, profile *models.Profile) []Presentation {
	question, ok := e.content.QuestionAt(profile.Question)
	if !ok {
		slog.Warn("next requested past the last question",
			"user_id", user.ID,
			"question", profile.Question,
		)

		return e.rerender(profile)
	}

	return []Presentation{{
		Kind:    PresentQuestion,
		Body:    question.Prompt,
		Edit:    true,
		Options: question.Options,
	}}
}

// handleAnswer применяет выбранный вариант ответа: начисляет очки, сдвигает
// номер вопроса и при ответе на последний вопрос присваивает тотемное
// животное. Профиль сохраняется до отрисовки результата: при сбое между
// сохранением и отправкой пользователь при следующем обращении увидит
// состояние, согласованное с записанным.
func (e *Engine) handleAnswer(
	ctx context.Context,
	user User,
	profile *models.Profile,
	points int,
) []Presentation {
	if !e.content.HasOptionWithPoints(profile.Question, points) {
		slog.Warn("malformed answer selection",
			"user_id", user.ID,
			"question", profile.Question,
			"points", points,
		)

		return e.rerender(profile)
	}

	profile.Points += points
	profile.Question++

	if profile.Question > e.content.TotalQuestions() {
		outcome, ok := e.content.Classify(profile.Points)
		if !ok {
			// Таблица диапазонов проверяется при загрузке, сюда попадать некуда.
			slog.Error("no outcome for points", "user_id", user.ID, "points", profile.Points)
			return []Presentation{text(msgTryAgainLater)}
		}

		profile.Status = models.StatusCompleted
		profile.Totem = outcome.Totem

		if err := e.store.Save(ctx, profile); err != nil {
			slog.Error("failed to persist completion", "user_id", user.ID, "err", err)
			return []Presentation{text(msgTryAgainLater)}
		}

		return []Presentation{deletePrompt(), e.completionView(profile, true, false)}
	}

	profile.Status = models.StatusInProgress

	if err := e.store.Save(ctx, profile); err != nil {
		slog.Error("failed to persist answer", "user_id", user.ID, "err", err)
		return []Presentation{text(msgTryAgainLater)}
	}

	return []Presentation{editText(msgAnswerAccepted, Action{Label: btnNext, Option: OptionNext})}
}

// handleReset атомарно сбрасывает прогресс и возвращает пользователя к началу.
func (e *Engine) handleReset(ctx context.Context, user User, profile *models.Profile) []Presentation {
	profile.Reset()

	if err := e.store.Save(ctx, profile); err != nil {
		slog.Error("failed to persist reset", "user_id", user.ID, "err", err)
		return []Presentation{text(msgTryAgainLater)}
	}

	e.setMode(user.ID, modeIdle)

	return []Presentation{
		deletePrompt(),
		text(msgQuizReady, Action{Label: btnNextGo, Option: OptionNext}),
	}
}

func (e *Engine) handleFreeText(
	ctx context.Context,
	user User,
	profile *models.Profile,
	msg string,
) []Presentation {
	switch e.mode(user.ID) {
	case modeAskStaff:
		return e.forwardStaffQuestion(ctx, user, profile, msg)
	case modeFeedback:
		return e.forwardFeedback(ctx, user, msg)
	}

	slog.Info("free text message", "user_id", user.ID, "text", msg)

	return []Presentation{text(respondFreeText(msg))}
}

// forwardStaffQuestion пересылает вопрос пользователя сотрудникам зоопарка
// вместе с текущим прогрессом викторины и обратной ссылкой для связи.
// При сбое доставки пользователь остаётся в режиме вопроса и может отправить
// сообщение повторно.
func (e *Engine) forwardStaffQuestion(
	ctx context.Context,
	user User,
	profile *models.Profile,
	question string,
) []Presentation {
	slog.Info("staff question", "user_id", user.ID, "text", question)

	subject := fmt.Sprintf("Вопрос сотруднику от пользователя %s", user.FirstName)
	body := staffQuestionBody(user, profile, question)

	if err := e.sink.Deliver(ctx, subject, body, notify.RecipientStaff); err != nil {
		slog.Error("failed to deliver staff question", "user_id", user.ID, "err", err)
		return []Presentation{text(msgDeliveryFailed)}
	}

	e.setMode(user.ID, modeIdle)

	return []Presentation{text(msgQuestionForwarded)}
}

// forwardFeedback пересылает отзыв пользователя.
func (e *Engine) forwardFeedback(ctx context.Context, user User, feedback string) []Presentation {
	slog.Info("feedback", "user_id", user.ID, "text", feedback)

	subject := fmt.Sprintf("Отзыв о работе телеграм-бота от пользователя %s", user.FirstName)
	body := fmt.Sprintf("Пользователь telegram %s оставил отзыв: %q.", user.FirstName, feedback)

	if err := e.sink.Deliver(ctx, subject, body, notify.RecipientFeedback); err != nil {
		slog.Error("failed to deliver feedback", "user_id", user.ID, "err", err)
		return []Presentation{text(msgDeliveryFailed)}
	}

	e.setMode(user.ID, modeIdle)

	return []Presentation{text(msgFeedbackThanks)}
}

// handleCancel прерывает побочный диалог без отправки уведомления.
func (e *Engine) handleCancel(user User) []Presentation {
	mode := e.mode(user.ID)
	e.setMode(user.ID, modeIdle)

	switch mode {
	case modeAskStaff:
		slog.Info("staff question cancelled", "user_id", user.ID)
		return []Presentation{text(msgContactCancelled)}
	case modeFeedback:
		slog.Info("feedback cancelled", "user_id", user.ID)
		return []Presentation{text(msgFeedbackCancelled)}
	}

	return []Presentation{text(msgMenuHint)}
}

// rerender показывает текущее состояние заново, ничего не меняя. Используется
// при некорректных событиях: машина состояний не падает и не сдвигается.
func (e *Engine) rerender(profile *models.Profile) []Presentation {
	if profile.Status == models.StatusCompleted {
		return []Presentation{e.completionView(profile, false, false)}
	}

	if question, ok := e.content.QuestionAt(profile.Question); ok && profile.Status == models.StatusInProgress {
		return []Presentation{{
			Kind:    PresentQuestion,
			Body:    question.Prompt,
			Options: question.Options,
		}}
	}

	return []Presentation{text(msgMenuHint)}
}

// completionView собирает карточку результата: тотем, ссылку "поделиться",
// ссылку на программу опеки и кнопку перезапуска. fresh добавляет фотографию
// животного и поздравительную подпись; edit просит транспорт заменить
// исходное сообщение.
func (e *Engine) completionView(profile *models.Profile, fresh bool, edit bool) Presentation {
	outcome, ok := e.content.OutcomeByTotem(profile.Totem)
	if !ok {
		outcome, _ = e.content.Classify(profile.Points)
	}

	body := fmt.Sprintf(fmtCompletionSummary, outcome.Totem)
	resetLabel := btnReset

	if fresh {
		body = fmt.Sprintf(fmtCompletionFresh, outcome.Totem)
		resetLabel = btnRetry
	}

	return Presentation{
		Kind:      PresentCompletion,
		Body:      body,
		Edit:      edit,
		Totem:     outcome.Totem,
		PhotoURL:  outcome.PhotoURL,
		ShareURL:  e.shareURL(outcome),
		WithPhoto: fresh,
		Links: []Link{
			{Label: btnGuardianship, URL: guardianshipURL},
		},
		Actions: []Action{
			{Label: resetLabel, Option: OptionReset},
		},
	}
}

// shareURL строит ссылку публикации результата в социальной сети.
func (e *Engine) shareURL(outcome OutcomeRange) string {
	shareText := fmt.Sprintf(fmtShareText, outcome.Totem, e.botUsername)

	return "https://vk.com/share.php?url=" + url.QueryEscape(outcome.PhotoURL) +
		"&title=" + url.QueryEscape(outcome.Totem) +
		"&comment=" + url.QueryEscape(shareText)
}

// staffQuestionBody собирает письмо сотруднику: вопрос, прогресс викторины
// и обратная ссылка на пользователя.
func staffQuestionBody(user User, profile *models.Profile, question string) string {
	contact := fmt.Sprintf("tg://openmessage?user_id=%d", user.ID)
	if user.Username != "" {
		contact = fmt.Sprintf("https://t.me/%s", user.Username)
	}

	return fmt.Sprintf(
		"Пользователь telegram %s задал боту вопрос: %q. "+
			"\nСтатус прохождения викторины: %s"+
			"\nКоличество отвеченных вопросов: %d"+
			"\nКоличество заработанных очков: %d"+
			"\nТотемное животное: %s"+
			"\n\nСвязь с пользователем: %s",
		user.FirstName,
		question,
		profile.Status.Label(),
		profile.Question-1,
		profile.Points,
		profile.Totem,
		contact,
	)
}
