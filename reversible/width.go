package reversible

import (
	"fmt"
	"strings"
)

// UUIDBytes is the number of bytes in a UUID.
const UUIDBytes = 16

// Capacity per element width.
const (
	MaxBytes   = UUIDBytes / 1
	MaxShorts  = UUIDBytes / 2
	MaxChars   = UUIDBytes / 2
	MaxInts    = UUIDBytes / 4
	MaxFloats  = UUIDBytes / 4
	MaxLongs   = UUIDBytes / 8
	MaxDoubles = UUIDBytes / 8
)

// Width identifies the primitive element type packed into a UUID.
type Width int

const (
	Byte Width = iota + 1
	Short
	Char
	Int
	Long
	Float
	Double
)

var widthNames = map[Width]string{
	Byte:   "byte",
	Short:  "short",
	Char:   "char",
	Int:    "int",
	Long:   "long",
	Float:  "float",
	Double: "double",
}

// Size returns the element size in bytes, or 0 for an unknown width.
func (w Width) Size() int {
	switch w {
	case Byte:
		return 1
	case Short, Char:
		return 2
	case Int, Float:
		return 4
	case Long, Double:
		return 8
	}
	return 0
}

// Capacity returns how many elements of the width fit into one UUID.
func (w Width) Capacity() int {
	if size := w.Size(); size > 0 {
		return UUIDBytes / size
	}
	return 0
}

func (w Width) String() string {
	if name, ok := widthNames[w]; ok {
		return name
	}
	return fmt.Sprintf("width(%d)", int(w))
}

// ParseWidth resolves a width by name; singular and plural forms are accepted
// case-insensitively ("int", "Ints").
func ParseWidth(name string) (Width, error) {
	candidate := strings.ToLower(strings.TrimSpace(name))
	candidate = strings.TrimSuffix(candidate, "s")
	for w, n := range widthNames {
		if n == candidate {
			return w, nil
		}
	}
	return 0, fmt.Errorf("reversible: unknown width %q", name)
}
