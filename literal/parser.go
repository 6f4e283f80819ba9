package literal

import (
	"fmt"
	"strconv"

	"github.com/viant/parsly"
	"github.com/viant/uuidkit/reversible"
)

// Literal is a parsed typed array literal.
type Literal struct {
	Width reversible.Width
	// Values holds the raw numeric element texts.
	Values []string
	// Text is set for the chars("...") form instead of Values.
	Text *string
}

// Parse parses input in the form width(value, ...) or chars("text").
func Parse(input []byte) (*Literal, error) {
	cursor := parsly.NewCursor("", input, 0)
	matched := cursor.MatchAfterOptional(whitespaceToken, widthToken)
	if matched.Code != widthCode {
		return nil, cursor.NewError(widthToken)
	}
	width, err := reversible.ParseWidth(matched.Text(cursor))
	if err != nil {
		return nil, err
	}
	ret := &Literal{Width: width, Values: []string{}}

	matched = cursor.MatchAfterOptional(whitespaceToken, openParenToken)
	if matched.Code != openParenCode {
		return nil, cursor.NewError(openParenToken)
	}

	matched = cursor.MatchAfterOptional(whitespaceToken, closeParenToken, quotedToken, numberToken)
	switch matched.Code {
	case closeParenCode:
	case quotedCode:
		if width != reversible.Char {
			return nil, fmt.Errorf("literal: quoted text is only supported for chars, got %v", width)
		}
		text, err := strconv.Unquote(matched.Text(cursor))
		if err != nil {
			return nil, fmt.Errorf("literal: invalid quoted text: %w", err)
		}
		ret.Text = &text
		if matched = cursor.MatchAfterOptional(whitespaceToken, closeParenToken); matched.Code != closeParenCode {
			return nil, cursor.NewError(closeParenToken)
		}
	case numberCode:
		ret.Values = append(ret.Values, matched.Text(cursor))
		if err := parseTail(cursor, ret); err != nil {
			return nil, err
		}
	default:
		return nil, cursor.NewError(closeParenToken, quotedToken, numberToken)
	}

	cursor.MatchOne(whitespaceToken)
	if cursor.HasMore() {
		return nil, fmt.Errorf("literal: unexpected input at %d: %q", cursor.Pos, input[cursor.Pos:])
	}
	return ret, nil
}

// parseTail consumes ", value" pairs up to the closing parenthesis.
func parseTail(cursor *parsly.Cursor, literal *Literal) error {
	for {
		matched := cursor.MatchAfterOptional(whitespaceToken, commaToken, closeParenToken)
		switch matched.Code {
		case closeParenCode:
			return nil
		case commaCode:
			matched = cursor.MatchAfterOptional(whitespaceToken, numberToken)
			if matched.Code != numberCode {
				return cursor.NewError(numberToken)
			}
			literal.Values = append(literal.Values, matched.Text(cursor))
		default:
			return cursor.NewError(commaToken, closeParenToken)
		}
	}
}
