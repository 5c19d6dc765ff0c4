package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain object", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"prose around", "Here you go: {\"a\":{\"b\":2}} hope it helps", `{"a":{"b":2}}`},
		{"brace in string", `{"text":"use } carefully"}`, `{"text":"use } carefully"}`},
		{"escaped quote", `{"text":"say \"}\" now"}`, `{"text":"say \"}\" now"}`},
		{"no object", "nothing here", ""},
		{"unbalanced", `{"a":1`, ""},
		{"first of two", `{"a":1} {"b":2}`, `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractJSON(tt.input))
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	var out struct {
		Keywords []string `json:"keywords"`
	}

	t.Run("decodes fenced reply", func(t *testing.T) {
		err := DecodeJSON("```json\n{\"keywords\":[\"预算\",\"交付\"]}\n```", &out)
		require.NoError(t, err)
		assert.Equal(t, []string{"预算", "交付"}, out.Keywords)
	})

	t.Run("missing object", func(t *testing.T) {
		err := DecodeJSON("sorry, I cannot help", &out)
		assert.ErrorIs(t, err, ErrNoJSON)
	})

	t.Run("wrong shape", func(t *testing.T) {
		err := DecodeJSON(`{"keywords":"not a list"}`, &out)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoJSON)
	})
}
