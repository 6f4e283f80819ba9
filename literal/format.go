package literal

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/google/uuid"
	"github.com/viant/uuidkit/reversible"
)

// Format renders id decoded at width as a literal accepted by Parse. All
// capacity elements are listed. Chars are quoted unless they hold unpaired
// surrogates. NaN values are written as raw hex bits. A nil id yields an empty string.
func Format(width reversible.Width, id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	var values []string
	switch width {
	case reversible.Byte:
		values = formatAll(reversible.ToBytes(id), func(v byte) string { return strconv.FormatUint(uint64(v), 10) })
	case reversible.Short:
		values = formatAll(reversible.ToShorts(id), func(v int16) string { return strconv.FormatInt(int64(v), 10) })
	case reversible.Char:
		chars := reversible.ToChars(id)
		text := reversible.ToString(id)
		if slices.Equal(utf16.Encode([]rune(text)), chars) {
			return "chars(" + strconv.Quote(text) + ")"
		}
		values = formatAll(chars, func(v uint16) string { return strconv.FormatUint(uint64(v), 10) })
	case reversible.Int:
		values = formatAll(reversible.ToInts(id), func(v int32) string { return strconv.FormatInt(int64(v), 10) })
	case reversible.Long:
		values = formatAll(reversible.ToLongs(id), func(v int64) string { return strconv.FormatInt(v, 10) })
	case reversible.Float:
		values = formatAll(reversible.ToFloats(id), formatFloat)
	case reversible.Double:
		values = formatAll(reversible.ToDoubles(id), formatDouble)
	default:
		return ""
	}
	return width.String() + "s(" + strings.Join(values, ", ") + ")"
}

func formatAll[T any](values []T, format func(T) string) []string {
	result := make([]string, len(values))
	for i, v := range values {
		result[i] = format(v)
	}
	return result
}

func formatFloat(v float32) string {
	if math.IsNaN(float64(v)) {
		return fmt.Sprintf("0x%08x", math.Float32bits(v))
	}
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func formatDouble(v float64) string {
	if math.IsNaN(v) {
		return fmt.Sprintf("0x%016x", math.Float64bits(v))
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
