package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n{\"summary\": \"ok\"}\n```",
			expected: `{"summary": "ok"}`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"summary\": \"ok\"}\n```",
			expected: `{"summary": "ok"}`,
		},
		{
			name:     "code block with other language tag",
			input:    "```javascript\n{\"summary\": \"ok\"}\n```",
			expected: `{"summary": "ok"}`,
		},
		{
			name:     "plain JSON untouched",
			input:    `{"summary": "ok"}`,
			expected: `{"summary": "ok"}`,
		},
		{
			name:     "surrounding whitespace",
			input:    "\n\n  {\"summary\": \"ok\"}  \n",
			expected: `{"summary": "ok"}`,
		},
		{
			name:     "preamble before object",
			input:    "Here is your career analysis:\n{\"primary_interests\": [\"Arts & Creative\"]}",
			expected: `{"primary_interests": ["Arts & Creative"]}`,
		},
		{
			name:     "preamble before array",
			input:    "Sure, the list:\n[1, 2, 3]",
			expected: `[1, 2, 3]`,
		},
		{
			name:     "preamble without closing brace left alone",
			input:    "I could not produce the {expected output",
			expected: "I could not produce the {expected output",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}
