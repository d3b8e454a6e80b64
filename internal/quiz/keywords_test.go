package quiz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespondFreeText(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		greeting bool
	}{
		{name: "russian greeting", text: "Привет", greeting: true},
		{name: "english greeting", text: "Hi there", greeting: true},
		{name: "wrong layout greeting", text: "ghbdtn", greeting: true},
		{name: "greeting inside sentence", text: "ну здравствуйте, бот", greeting: true},
		{name: "upper case", text: "HELLO", greeting: true},
		{name: "unrelated text", text: "xyz", greeting: false},
		{name: "empty text", text: "", greeting: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			response := respondFreeText(tc.text)

			if tc.greeting {
				assert.True(t, strings.Contains(response, msgGreeting))
			} else {
				assert.Equal(t, msgMenuHint, response)
			}
		})
	}
}
