package sender

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letsssgooo/zoobot/internal/client"
	"github.com/letsssgooo/zoobot/internal/quiz"
)

// call — одна запись о вызове Telegram клиента.
type call struct {
	method    string
	chatID    int64
	messageID int
	text      string
	photoURL  string
	markup    *client.InlineKeyboardMarkup
}

// fakeClient запоминает вызовы вместо обращения к Telegram API.
type fakeClient struct {
	calls []call
}

func (c *fakeClient) SendMessage(chatID int64, text string, opts *client.SendOptions) (*client.Message, error) {
	c.calls = append(c.calls, call{method: "send", chatID: chatID, text: text, markup: markupOf(opts)})
	return &client.Message{MessageID: 1}, nil
}

func (c *fakeClient) SendPhoto(chatID int64, photoURL string, caption string, opts *client.SendOptions) (*client.Message, error) {
	c.calls = append(c.calls, call{
		method: "photo", chatID: chatID, text: caption, photoURL: photoURL, markup: markupOf(opts),
	})
	return &client.Message{MessageID: 2}, nil
}

func (c *fakeClient) EditMessage(chatID int64, messageID int, text string, opts *client.SendOptions) error {
	c.calls = append(c.calls, call{
		method: "edit", chatID: chatID, messageID: messageID, text: text, markup: markupOf(opts),
	})
	return nil
}

func (c *fakeClient) DeleteMessage(chatID int64, messageID int) error {
	c.calls = append(c.calls, call{method: "delete", chatID: chatID, messageID: messageID})
	return nil
}

func (c *fakeClient) AnswerCallback(callbackID string, text string) error {
	return nil
}

func (c *fakeClient) GetUpdates(ctx context.Context, offset int, timeout int) ([]client.Update, error) {
	return nil, nil
}

func markupOf(opts *client.SendOptions) *client.InlineKeyboardMarkup {
	if opts == nil {
		return nil
	}

	return opts.ReplyMarkup
}

func TestRender_DeletePrompt(t *testing.T) {
	fake := &fakeClient{}
	s := NewTelegramSender(fake)

	err := s.Render(100, 20, []quiz.Presentation{{Kind: quiz.PresentDeletePrompt}})
	require.NoError(t, err)

	require.Len(t, fake.calls, 1)
	assert.Equal(t, "delete", fake.calls[0].method)
	assert.Equal(t, 20, fake.calls[0].messageID)
}

func TestRender_DeletePrompt_WithoutPrompt(t *testing.T) {
	fake := &fakeClient{}
	s := NewTelegramSender(fake)

	err := s.Render(100, 0, []quiz.Presentation{{Kind: quiz.PresentDeletePrompt}})
	require.NoError(t, err)
	assert.Empty(t, fake.calls)
}

func TestRender_EditFallsBackToSend(t *testing.T) {
	fake := &fakeClient{}
	s := NewTelegramSender(fake)

	presentation := quiz.Presentation{Kind: quiz.PresentText, Body: "текст", Edit: true}

	require.NoError(t, s.Render(100, 20, []quiz.Presentation{presentation}))
	require.NoError(t, s.Render(100, 0, []quiz.Presentation{presentation}))

	require.Len(t, fake.calls, 2)
	assert.Equal(t, "edit", fake.calls[0].method)
	assert.Equal(t, "send", fake.calls[1].method)
}

func TestRender_Question_NumbersOptions(t *testing.T) {
	fake := &fakeClient{}
	s := NewTelegramSender(fake)

	err := s.Render(100, 20, []quiz.Presentation{{
		Kind: quiz.PresentQuestion,
		Body: "Вопрос?",
		Edit: true,
		Options: []quiz.AnswerOption{
			{Label: "Ночь", Points: 1},
			{Label: "Утро", Points: 2},
		},
	}})
	require.NoError(t, err)

	require.Len(t, fake.calls, 1)
	markup := fake.calls[0].markup
	require.NotNil(t, markup)
	require.Len(t, markup.InlineKeyboard, 2)
	assert.Equal(t, "1: Ночь", markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, "1", markup.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "2: Утро", markup.InlineKeyboard[1][0].Text)
	assert.Equal(t, "2", markup.InlineKeyboard[1][0].CallbackData)
}

func TestRender_Completion_WithPhoto(t *testing.T) {
	fake := &fakeClient{}
	s := NewTelegramSender(fake)

	err := s.Render(100, 0, []quiz.Presentation{{
		Kind:      quiz.PresentCompletion,
		Body:      "Поздравляем!",
		Totem:     "волк",
		PhotoURL:  "https://example.com/wolf.jpg",
		ShareURL:  "https://vk.com/share.php?url=x",
		WithPhoto: true,
		Links:     []quiz.Link{{Label: "Опека", URL: "https://example.com/care"}},
		Actions:   []quiz.Action{{Label: "Ещё раз", Option: quiz.OptionReset}},
	}})
	require.NoError(t, err)

	require.Len(t, fake.calls, 1)
	assert.Equal(t, "photo", fake.calls[0].method)
	assert.Equal(t, "https://example.com/wolf.jpg", fake.calls[0].photoURL)

	markup := fake.calls[0].markup
	require.NotNil(t, markup)
	require.Len(t, markup.InlineKeyboard, 3)
	assert.Equal(t, "https://vk.com/share.php?url=x", markup.InlineKeyboard[0][0].URL)
	assert.Equal(t, "https://example.com/care", markup.InlineKeyboard[1][0].URL)
	assert.Equal(t, "reset", markup.InlineKeyboard[2][0].CallbackData)
}

func TestRender_TextWithoutButtons(t *testing.T) {
	fake := &fakeClient{}
	s := NewTelegramSender(fake)

	err := s.Render(100, 0, []quiz.Presentation{{Kind: quiz.PresentText, Body: "просто текст"}})
	require.NoError(t, err)

	require.Len(t, fake.calls, 1)
	assert.Nil(t, fake.calls[0].markup)
}
