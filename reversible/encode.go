package reversible

import (
	"encoding/binary"
	"math"

	"github.com/google/uuid"
)

// encode packs values big-endian into a zeroed buffer. nil values yield a nil
// UUID without a capacity check.
func encode[T any](width Width, values []T, put func(dest []byte, value T)) (*uuid.UUID, error) {
	if values == nil {
		return nil, nil
	}
	if len(values) > width.Capacity() {
		return nil, &OutOfCapacityError{Width: width, Length: len(values)}
	}
	var buf [UUIDBytes]byte
	size := width.Size()
	for i, value := range values {
		put(buf[i*size:], value)
	}
	return fromBuffer(buf), nil
}

// FromBytes converts up to MaxBytes bytes into a UUID.
func FromBytes(values []byte) (*uuid.UUID, error) {
	return encode(Byte, values, func(dest []byte, value byte) { dest[0] = value })
}

// FromShorts converts up to MaxShorts 16-bit integers into a UUID.
func FromShorts(values []int16) (*uuid.UUID, error) {
	return encode(Short, values, func(dest []byte, value int16) {
		binary.BigEndian.PutUint16(dest, uint16(value))
	})
}

// FromChars converts up to MaxChars UTF-16 code units into a UUID.
func FromChars(values []uint16) (*uuid.UUID, error) {
	return encode(Char, values, binary.BigEndian.PutUint16)
}

// FromInts converts up to MaxInts 32-bit integers into a UUID.
func FromInts(values []int32) (*uuid.UUID, error) {
	return encode(Int, values, func(dest []byte, value int32) {
		binary.BigEndian.PutUint32(dest, uint32(value))
	})
}

// FromLongs converts up to MaxLongs 64-bit integers into a UUID.
func FromLongs(values []int64) (*uuid.UUID, error) {
	return encode(Long, values, func(dest []byte, value int64) {
		binary.BigEndian.PutUint64(dest, uint64(value))
	})
}

// FromFloats converts up to MaxFloats float32 values into a UUID, keeping
// their exact IEEE-754 bits.
func FromFloats(values []float32) (*uuid.UUID, error) {
	return encode(Float, values, func(dest []byte, value float32) {
		binary.BigEndian.PutUint32(dest, math.Float32bits(value))
	})
}

// FromDoubles converts up to MaxDoubles float64 values into a UUID, keeping
// their exact IEEE-754 bits.
func FromDoubles(values []float64) (*uuid.UUID, error) {
	return encode(Double, values, func(dest []byte, value float64) {
		binary.BigEndian.PutUint64(dest, math.Float64bits(value))
	})
}
