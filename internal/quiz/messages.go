package quiz

const msgGreeting = `Вас приветствует телеграмм-бот Московского зоопарка!`

const msgHelp = `Для начала работы бота введите /start`

const msgMenuHint = `Воспользуйтесь меню или введите /help для вывода основных команд.`

const msgQuizStart = `Приступим!`

const msgQuizContinueOrRestart = `Вы уже приступили к прохождению викторины. Хотите продолжить или начать заново?`

const msgQuizReady = `Готовы к прохождению?`

const msgAnswerAccepted = `Ваш ответ учтен!`

const msgInfo = `Московский зоопарк — один из старейших зоопарков Европы. ` +
	`Он был открыт 31 января 1864 года по старому стилю и назывался тогда зоосадом.` + "\n" +
	`Московский зоопарк был организован Императорским русским обществом акклиматизации животных и растений. ` +
	`Начало его существования связано с замечательными именами профессоров Московского Университета ` +
	`Карла Францевича Рулье, Анатолия Петровича Богданова и Сергея Алексеевича Усова.`

const msgContactInstructions = `Вы можете задать вопрос сотруднику зоопарка или обратиться за помощью. ` +
	`Связь c Вами будет осуществлена через Telegram, убедитесь, что указали "Имя пользователя" в настройках. ` +
	`Задайте Ваши вопросы сотруднику зоопарка в следующем сообщении. ` +
	`Если передумали, то введите /cancel.`

const msgFeedbackInstructions = `Оставьте отзыв о работе телеграм-бота в следующем сообщении. ` +
	`Если передумали, то введите /cancel.`

const msgQuestionForwarded = `Ваш вопрос будет переадресован сотруднику зоопарка. ` +
	`Как только сотрудник подготовит ответ, то свяжется с Вами через Телеграмм. ` +
	`Спасибо за проявленный интерес!`

const msgFeedbackThanks = `Спасибо за Ваш отзыв!`

const msgContactCancelled = `Если возникнет вопрос, Вы всегда можете обратиться к сотруднику, ` +
	`воспользовавшись основным меню (/start).`

const msgFeedbackCancelled = `При желании Вы можете оставить отзыв, воспользовавшись основным меню (/start).`

const msgDeliveryFailed = `Не удалось передать Ваше сообщение. Попробуйте отправить его ещё раз ` +
	`или введите /cancel.`

const msgTryAgainLater = `Что-то пошло не так. Попробуйте повторить действие чуть позже.`

// fmtCompletionFresh подставляет тотемное животное в подпись к фотографии
// при завершении викторины.
const fmtCompletionFresh = "Поздравляем с прохождением викторины!" +
	"\nВаше тотемное животное: %s." +
	"\nВы можете поделиться результатом прохождения викторины в социальной сети." +
	"\nА также Вы можете принять участие в программе опеки \"Клуб друзей зоопарка\"." +
	"\nИ в дополнение, можно перезапустить викторину и попробовать пройти еще раз."

// fmtCompletionSummary — текст для пользователя, уже прошедшего викторину.
const fmtCompletionSummary = "Вы уже прошли викторину. Ваше тотемное животное: %s." +
	"\nВы можете поделиться результатом прохождения викторины в социальной сети." +
	"\nА также можете принять участие в программе опеки \"Клуб друзей зоопарка\"." +
	"\nХотите перезапустить и начать заново?"

// fmtShareText — текст, которым пользователь делится в социальной сети.
const fmtShareText = "Моё тотемное животное: %s! Узнай и ты своё: https://t.me/%s"

// Подписи кнопок.
const (
	btnQuiz         = `Викторина: "Ваше тотемное животное"`
	btnInfo         = `Информация о Московском зоопарке`
	btnContact      = `Связь с сотрудником зоопарка`
	btnFeedback     = `Оставить отзыв`
	btnNextFirst    = `Вперед!`
	btnNextContinue = `Продолжаю!`
	btnNextGo       = `Поехали!`
	btnNext         = `Следующий вопрос`
	btnRestart      = `Начать заново.`
	btnReset        = `Перезапускаем!`
	btnRetry        = `Попробовать еще раз.`
	btnGuardianship = `Программа опеки "Клуб друзей зоопарка"`
	btnZooSite      = `Сайт Московского зоопарка`
)

const (
	zooSiteURL      = "https://moscowzoo.ru"
	guardianshipURL = "https://moscowzoo.ru/about/guardianship"
)
