package literal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/uuidkit/reversible"
)

func TestParse(t *testing.T) {
	hello := "héllo"
	testCases := []struct {
		description string
		input       string
		expected    *Literal
		shouldError bool
	}{
		{
			description: "ints",
			input:       "ints(1, -2, 0x10)",
			expected:    &Literal{Width: reversible.Int, Values: []string{"1", "-2", "0x10"}},
		},
		{
			description: "singular width with spaces",
			input:       "  long ( 42 )  ",
			expected:    &Literal{Width: reversible.Long, Values: []string{"42"}},
		},
		{
			description: "empty",
			input:       "longs()",
			expected:    &Literal{Width: reversible.Long, Values: []string{}},
		},
		{
			description: "floats with exponent",
			input:       "doubles(1.5e-3,-Inf)",
			expected:    &Literal{Width: reversible.Double, Values: []string{"1.5e-3", "-Inf"}},
		},
		{
			description: "quoted chars",
			input:       `chars("héllo")`,
			expected:    &Literal{Width: reversible.Char, Values: []string{}, Text: &hello},
		},
		{
			description: "quoted text requires chars",
			input:       `ints("abc")`,
			shouldError: true,
		},
		{
			description: "unknown width",
			input:       "words(1)",
			shouldError: true,
		},
		{
			description: "missing parenthesis",
			input:       "ints(1, 2",
			shouldError: true,
		},
		{
			description: "dangling comma",
			input:       "ints(1,)",
			shouldError: true,
		},
		{
			description: "trailing input",
			input:       "ints(1) ints(2)",
			shouldError: true,
		},
		{
			description: "missing width",
			input:       "(1)",
			shouldError: true,
		},
	}
	for _, testCase := range testCases {
		actual, err := Parse([]byte(testCase.input))
		if testCase.shouldError {
			assert.Error(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expected, actual, testCase.description)
	}
}
