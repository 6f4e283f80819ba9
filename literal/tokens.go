package literal

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	whitespaceCode = iota + 1
	widthCode
	openParenCode
	closeParenCode
	commaCode
	numberCode
	quotedCode
)

var (
	whitespaceToken = parsly.NewToken(whitespaceCode, "Whitespace", matcher.NewWhiteSpace())
	widthToken      = parsly.NewToken(widthCode, "Width", &wordMatcher{})
	openParenToken  = parsly.NewToken(openParenCode, "(", matcher.NewByte('('))
	closeParenToken = parsly.NewToken(closeParenCode, ")", matcher.NewByte(')'))
	commaToken      = parsly.NewToken(commaCode, ",", matcher.NewByte(','))
	numberToken     = parsly.NewToken(numberCode, "Number", &numberMatcher{})
	quotedToken     = parsly.NewToken(quotedCode, "Quoted", &quoteMatcher{})
)

// wordMatcher matches a run of letters.
type wordMatcher struct{}

func (m *wordMatcher) Match(cursor *parsly.Cursor) int {
	matched := 0
	for i := cursor.Pos; i < cursor.InputSize; i++ {
		if !isLetter(cursor.Input[i]) {
			break
		}
		matched++
	}
	return matched
}

// numberMatcher matches a signed decimal, hex or float literal including Inf
// and NaN; the value itself is validated when converted.
type numberMatcher struct{}

func (m *numberMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	if pos >= cursor.InputSize {
		return 0
	}
	start := pos
	if input[pos] == '-' || input[pos] == '+' {
		pos++
	}
	if pos >= cursor.InputSize || !(isDigit(input[pos]) || isLetter(input[pos]) || input[pos] == '.') {
		return 0
	}
	for ; pos < cursor.InputSize; pos++ {
		c := input[pos]
		if isDigit(c) || isLetter(c) || c == '.' || c == '_' {
			continue
		}
		if (c == '-' || c == '+') && (input[pos-1] == 'e' || input[pos-1] == 'E' || input[pos-1] == 'p' || input[pos-1] == 'P') {
			continue
		}
		break
	}
	return pos - start
}

// quoteMatcher matches a double quoted string with backslash escapes.
type quoteMatcher struct{}

func (m *quoteMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	if pos >= cursor.InputSize || input[pos] != '"' {
		return 0
	}
	for i := pos + 1; i < cursor.InputSize; i++ {
		switch input[i] {
		case '\\':
			i++
		case '"':
			return i - pos + 1
		}
	}
	return 0
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
