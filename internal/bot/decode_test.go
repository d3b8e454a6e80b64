package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letsssgooo/zoobot/internal/client"
	"github.com/letsssgooo/zoobot/internal/quiz"
)

func messageUpdate(text string) client.Update {
	return client.Update{
		UpdateID: 1,
		Message: &client.Message{
			MessageID: 10,
			From:      &client.User{ID: 100, FirstName: "Иван", Username: "ivan"},
			Chat:      &client.Chat{ID: 100, Type: "private"},
			Text:      text,
		},
	}
}

func callbackUpdate(data string) client.Update {
	return client.Update{
		UpdateID: 2,
		CallbackQuery: &client.CallbackQuery{
			ID:   "cb-1",
			From: &client.User{ID: 100, FirstName: "Иван", Username: "ivan"},
			Message: &client.Message{
				MessageID: 20,
				Chat:      &client.Chat{ID: 100, Type: "private"},
			},
			Data: data,
		},
	}
}

func TestDecodeUpdate_Messages(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want quiz.Event
	}{
		{
			name: "start command",
			text: "/start",
			want: quiz.Event{Type: quiz.EventMenuSelect, Option: quiz.OptionStart},
		},
		{
			name: "help command",
			text: "/help",
			want: quiz.Event{Type: quiz.EventMenuSelect, Option: quiz.OptionHelp},
		},
		{
			name: "cancel command",
			text: "/cancel",
			want: quiz.Event{Type: quiz.EventCancel},
		},
		{
			name: "command with surrounding spaces",
			text: "  /start  ",
			want: quiz.Event{Type: quiz.EventMenuSelect, Option: quiz.OptionStart},
		},
		{
			name: "free text",
			text: "Когда вы открыты?",
			want: quiz.Event{Type: quiz.EventFreeText, Text: "Когда вы открыты?"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in, ok := decodeUpdate(messageUpdate(tc.text))
			require.True(t, ok)
			assert.Equal(t, tc.want, in.event)
			assert.Equal(t, int64(100), in.chatID)
			assert.Equal(t, int64(100), in.user.ID)
			assert.Empty(t, in.callbackID)
		})
	}
}

func TestDecodeUpdate_Callbacks(t *testing.T) {
	testCases := []struct {
		name string
		data string
		want quiz.Event
	}{
		{
			name: "menu option",
			data: "quiz",
			want: quiz.Event{Type: quiz.EventMenuSelect, Option: quiz.OptionQuiz},
		},
		{
			name: "next option",
			data: "next",
			want: quiz.Event{Type: quiz.EventMenuSelect, Option: quiz.OptionNext},
		},
		{
			name: "answer by point value",
			data: "3",
			want: quiz.Event{Type: quiz.EventAnswerSelect, Points: 3},
		},
		{
			name: "unknown data stays a menu option",
			data: "bogus",
			want: quiz.Event{Type: quiz.EventMenuSelect, Option: quiz.MenuOption("bogus")},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in, ok := decodeUpdate(callbackUpdate(tc.data))
			require.True(t, ok)
			assert.Equal(t, tc.want, in.event)
			assert.Equal(t, 20, in.promptID)
			assert.Equal(t, "cb-1", in.callbackID)
		})
	}
}

func TestDecodeUpdate_Skipped(t *testing.T) {
	testCases := []struct {
		name   string
		update client.Update
	}{
		{name: "empty update", update: client.Update{UpdateID: 3}},
		{name: "message without sender", update: client.Update{
			Message: &client.Message{Chat: &client.Chat{ID: 1}, Text: "hi"},
		}},
		{name: "empty text", update: messageUpdate("")},
		{name: "callback without message", update: client.Update{
			CallbackQuery: &client.CallbackQuery{ID: "cb", From: &client.User{ID: 1}, Data: "quiz"},
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := decodeUpdate(tc.update)
			assert.False(t, ok)
		})
	}
}
