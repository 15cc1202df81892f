package blogservice

import "testing"

func TestSanitizeText(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text",
			input:    `{"text": "hello"}`,
			expected: `{"text": "hello"}`,
		},
		{
			name:     "script tag",
			input:    `{"text": "<script>alert(1)</script>hello"}`,
			expected: `{"text": "hello"}`,
		},
		{
			name:     "script tag with attributes",
			input:    `{"text": "<script type='text/javascript'>alert(1)</script>"}`,
			expected: `{"text": ""}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := sanitizeText(tc.input)
			if got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}
