package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadContent_Valid(t *testing.T) {
	data := []byte(`{
		"questions": [
			{
				"prompt": "Какое время суток Вам ближе?",
				"options": [
					{"label": "Ночь", "points": 1},
					{"label": "Утро", "points": 2}
				]
			}
		],
		"outcomes": [
			{"min_points": 0, "max_points": 1, "totem": "сова", "photo_url": "https://example.com/owl.jpg"},
			{"min_points": 2, "max_points": -1, "totem": "волк", "photo_url": "https://example.com/wolf.jpg"}
		]
	}`)

	content, err := LoadContent(data)
	require.NoError(t, err)
	require.NotNil(t, content)

	assert.Equal(t, 1, content.TotalQuestions())

	question, ok := content.QuestionAt(1)
	require.True(t, ok)
	assert.Equal(t, "Какое время суток Вам ближе?", question.Prompt)
	assert.Len(t, question.Options, 2)
	assert.Equal(t, 2, question.Options[1].Points)
}

func TestLoadContent_InvalidJSON(t *testing.T) {
	content, err := LoadContent([]byte(`{invalid json}`))
	assert.Error(t, err)
	assert.Nil(t, content)
}

func TestLoadContent_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{
			name: "missing questions",
			data: `{
				"outcomes": [{"min_points": 0, "max_points": -1, "totem": "сова"}]
			}`,
		},
		{
			name: "empty questions",
			data: `{
				"questions": [],
				"outcomes": [{"min_points": 0, "max_points": -1, "totem": "сова"}]
			}`,
		},
		{
			name: "missing prompt",
			data: `{
				"questions": [{
					"options": [{"label": "А", "points": 1}, {"label": "Б", "points": 2}]
				}],
				"outcomes": [{"min_points": 0, "max_points": -1, "totem": "сова"}]
			}`,
		},
		{
			name: "too few options",
			data: `{
				"questions": [{
					"prompt": "Вопрос?",
					"options": [{"label": "А", "points": 1}]
				}],
				"outcomes": [{"min_points": 0, "max_points": -1, "totem": "сова"}]
			}`,
		},
		{
			name: "negative points",
			data: `{
				"questions": [{
					"prompt": "Вопрос?",
					"options": [{"label": "А", "points": -1}, {"label": "Б", "points": 2}]
				}],
				"outcomes": [{"min_points": 0, "max_points": -1, "totem": "сова"}]
			}`,
		},
		{
			name: "missing option label",
			data: `{
				"questions": [{
					"prompt": "Вопрос?",
					"options": [{"points": 1}, {"label": "Б", "points": 2}]
				}],
				"outcomes": [{"min_points": 0, "max_points": -1, "totem": "сова"}]
			}`,
		},
		{
			name: "missing outcomes",
			data: `{
				"questions": [{
					"prompt": "Вопрос?",
					"options": [{"label": "А", "points": 1}, {"label": "Б", "points": 2}]
				}]
			}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			content, err := LoadContent([]byte(tc.data))
			assert.Error(t, err)
			assert.Nil(t, content)
		})
	}
}

func TestDefaultContent_IsValid(t *testing.T) {
	content := DefaultContent()

	require.NoError(t, isCorrectContent(content))
	assert.Equal(t, 4, content.TotalQuestions())
}

func TestContent_QuestionAt_OutOfRange(t *testing.T) {
	content := DefaultContent()

	_, ok := content.QuestionAt(0)
	assert.False(t, ok)

	_, ok = content.QuestionAt(content.TotalQuestions() + 1)
	assert.False(t, ok)
}

func TestContent_HasOptionWithPoints(t *testing.T) {
	content := DefaultContent()

	assert.True(t, content.HasOptionWithPoints(1, 3))
	assert.False(t, content.HasOptionWithPoints(1, 42))
	assert.False(t, content.HasOptionWithPoints(5, 1))
}
