package reversible

import (
	"unicode/utf16"

	"github.com/google/uuid"
)

// FromString packs the UTF-16 code units of s (at most MaxChars) into a UUID.
// s must be valid UTF-8 for ToString to give it back.
func FromString(s string) (*uuid.UUID, error) {
	units := utf16.Encode([]rune(s))
	if units == nil {
		units = []uint16{}
	}
	return FromChars(units)
}

// ToString decodes the MaxChars code units of id. Padding is kept, so the
// result of a FromString round trip ends with NUL characters.
func ToString(id *uuid.UUID) string {
	chars := ToChars(id)
	if chars == nil {
		return ""
	}
	return string(utf16.Decode(chars))
}
