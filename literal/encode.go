package literal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/google/uuid"
	"github.com/viant/uuidkit/reversible"
)

// Encode converts the literal into a UUID with the reversible converter.
// Values are range checked against the literal width.
func (l *Literal) Encode() (*uuid.UUID, error) {
	switch l.Width {
	case reversible.Byte:
		values, err := convert(l, func(text string) (byte, error) {
			v, err := strconv.ParseInt(text, 0, 16)
			if err == nil && (v < -128 || v > 255) {
				err = strconv.ErrRange
			}
			return byte(v), err
		})
		if err != nil {
			return nil, err
		}
		return reversible.FromBytes(values)
	case reversible.Short:
		values, err := convert(l, func(text string) (int16, error) {
			v, err := strconv.ParseInt(text, 0, 16)
			return int16(v), err
		})
		if err != nil {
			return nil, err
		}
		return reversible.FromShorts(values)
	case reversible.Char:
		if l.Text != nil {
			return reversible.FromChars(utf16.Encode([]rune(*l.Text)))
		}
		values, err := convert(l, func(text string) (uint16, error) {
			v, err := strconv.ParseUint(text, 0, 16)
			return uint16(v), err
		})
		if err != nil {
			return nil, err
		}
		return reversible.FromChars(values)
	case reversible.Int:
		values, err := convert(l, func(text string) (int32, error) {
			v, err := strconv.ParseInt(text, 0, 32)
			return int32(v), err
		})
		if err != nil {
			return nil, err
		}
		return reversible.FromInts(values)
	case reversible.Long:
		values, err := convert(l, func(text string) (int64, error) {
			return strconv.ParseInt(text, 0, 64)
		})
		if err != nil {
			return nil, err
		}
		return reversible.FromLongs(values)
	case reversible.Float:
		values, err := convert(l, func(text string) (float32, error) {
			if bits, ok, err := parseBits(text, 32); ok {
				return math.Float32frombits(uint32(bits)), err
			}
			v, err := strconv.ParseFloat(text, 32)
			return float32(v), err
		})
		if err != nil {
			return nil, err
		}
		return reversible.FromFloats(values)
	case reversible.Double:
		values, err := convert(l, func(text string) (float64, error) {
			if bits, ok, err := parseBits(text, 64); ok {
				return math.Float64frombits(bits), err
			}
			return strconv.ParseFloat(text, 64)
		})
		if err != nil {
			return nil, err
		}
		return reversible.FromDoubles(values)
	}
	return nil, fmt.Errorf("literal: unsupported width %v", l.Width)
}

// parseBits reads an unsigned hex literal without a binary exponent as raw
// IEEE-754 bits, so NaN payloads survive a Format/Encode round trip.
func parseBits(text string, bitSize int) (uint64, bool, error) {
	if !strings.HasPrefix(text, "0x") && !strings.HasPrefix(text, "0X") {
		return 0, false, nil
	}
	if strings.ContainsAny(text, "pP") {
		return 0, false, nil
	}
	bits, err := strconv.ParseUint(text, 0, bitSize)
	return bits, true, err
}

func convert[T any](l *Literal, parse func(text string) (T, error)) ([]T, error) {
	result := make([]T, 0, len(l.Values))
	for _, text := range l.Values {
		value, err := parse(text)
		if err != nil {
			return nil, fmt.Errorf("literal: invalid %v value %q: %w", l.Width, text, err)
		}
		result = append(result, value)
	}
	return result, nil
}

// Encode parses and encodes input in one step.
func Encode(input string) (*uuid.UUID, error) {
	parsed, err := Parse([]byte(input))
	if err != nil {
		return nil, err
	}
	return parsed.Encode()
}
