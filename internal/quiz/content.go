package quiz

import (
	"encoding/json"
	"fmt"
)

// AnswerOption представляет вариант ответа на вопрос.
type AnswerOption struct {
	Label  string `json:"label"`
	Points int    `json:"points"`
}

// Question представляет вопрос викторины.
type Question struct {
	Prompt  string         `json:"prompt"`
	Options []AnswerOption `json:"options"`
}

// OutcomeRange — диапазон очков, соответствующий одному тотемному животному.
// MaxPoints = -1 обозначает открытый сверху диапазон.
type OutcomeRange struct {
	MinPoints int    `json:"min_points"`
	MaxPoints int    `json:"max_points"`
	Totem     string `json:"totem"`
	PhotoURL  string `json:"photo_url"`
}

// Content — статичное содержимое викторины. Загружается один раз при старте
// процесса и далее только читается.
type Content struct {
	Questions []Question     `json:"questions"`
	Outcomes  []OutcomeRange `json:"outcomes"`
}

// LoadContent парсит JSON и проверяет содержимое викторины.
func LoadContent(data []byte) (*Content, error) {
	content := &Content{}
	if err := json.Unmarshal(data, content); err != nil {
		return nil, err
	}

	if err := isCorrectContent(content); err != nil {
		return nil, fmt.Errorf("can not load quiz content, %w", err)
	}

	return content, nil
}

// TotalQuestions возвращает количество вопросов викторины.
func (c *Content) TotalQuestions() int {
	return len(c.Questions)
}

// QuestionAt возвращает вопрос с номером number (нумерация с единицы).
func (c *Content) QuestionAt(number int) (Question, bool) {
	if number < 1 || number > len(c.Questions) {
		return Question{}, false
	}

	return c.Questions[number-1], true
}

// HasOptionWithPoints сообщает, есть ли у вопроса number вариант ответа
// с указанным количеством очков.
func (c *Content) HasOptionWithPoints(number int, points int) bool {
	question, ok := c.QuestionAt(number)
	if !ok {
		return false
	}

	for _, option := range question.Options {
		if option.Points == points {
			return true
		}
	}

	return false
}

// isCorrectContent проверяет на корректность содержимое викторины.
func isCorrectContent(content *Content) error {
	if content.Questions == nil {
		return fmt.Errorf("missing field questions")
	}

	if len(content.Questions) == 0 {
		return fmt.Errorf("need at least one question")
	}

	for i, question := range content.Questions {
		if question.Prompt == "" {
			return fmt.Errorf("missing field prompt of %d question", i)
		}

		if question.Options == nil {
			return fmt.Errorf("missing field options of %d question", i)
		}

		if len(question.Options) < 2 {
			return fmt.Errorf("amount of options must be at least two in %d question", i)
		}

		for j, option := range question.Options {
			if option.Label == "" {
				return fmt.Errorf("missing label of %d option in %d question", j, i)
			}

			if option.Points < 0 {
				return fmt.Errorf("points must not be negative in %d option of %d question", j, i)
			}
		}
	}

	return validateOutcomes(content.Outcomes)
}

// DefaultContent возвращает встроенное содержимое викторины
// "Ваше тотемное животное".
func DefaultContent() *Content {
	return &Content{
		Questions: []Question{
			{
				Prompt: "Как Вы предпочитаете проводить выходной день?",
				Options: []AnswerOption{
					{Label: "Сплю до обеда и никуда не тороплюсь", Points: 1},
					{Label: "Гуляю в парке с семьёй", Points: 2},
					{Label: "Встречаюсь с друзьями", Points: 3},
					{Label: "Ищу новые впечатления и приключения", Points: 4},
				},
			},
			{
				Prompt: "Какое время суток Вам ближе?",
				Options: []AnswerOption{
					{Label: "Ночь", Points: 1},
					{Label: "Раннее утро", Points: 2},
					{Label: "День", Points: 3},
					{Label: "Закат", Points: 4},
				},
			},
			{
				Prompt: "Что для Вас важнее всего?",
				Options: []AnswerOption{
					{Label: "Спокойствие и уединение", Points: 1},
					{Label: "Семья и близкие", Points: 2},
					{Label: "Свобода", Points: 3},
					{Label: "Сила и уверенность", Points: 4},
				},
			},
			{
				Prompt: "Как Вы реагируете на трудности?",
				Options: []AnswerOption{
					{Label: "Пережидаю, пока всё решится само", Points: 1},
					{Label: "Спокойно обдумываю план", Points: 2},
					{Label: "Действую вместе с близкими", Points: 3},
					{Label: "Иду напролом", Points: 4},
				},
			},
		},
		Outcomes: []OutcomeRange{
			{MinPoints: 0, MaxPoints: 5, Totem: "сова", PhotoURL: "https://moscowzoo.ru/upload/totem/owl.jpg"},
			{MinPoints: 6, MaxPoints: 10, Totem: "волк", PhotoURL: "https://moscowzoo.ru/upload/totem/wolf.jpg"},
			{MinPoints: 11, MaxPoints: 15, Totem: "лев", PhotoURL: "https://moscowzoo.ru/upload/totem/lion.jpg"},
			{MinPoints: 16, MaxPoints: -1, Totem: "змея", PhotoURL: "https://moscowzoo.ru/upload/totem/snake.jpg"},
		},
	}
}
