package reversible

import (
	"encoding/binary"
	"math"

	"github.com/google/uuid"
)

func decode[T any](width Width, id *uuid.UUID, get func(src []byte) T) []T {
	if id == nil {
		return nil
	}
	buf := toBuffer(*id)
	size := width.Size()
	result := make([]T, width.Capacity())
	for i := range result {
		result[i] = get(buf[i*size:])
	}
	return result
}

// ToBytes returns the MaxBytes bytes of id.
func ToBytes(id *uuid.UUID) []byte {
	return decode(Byte, id, func(src []byte) byte { return src[0] })
}

// ToShorts returns id as MaxShorts 16-bit integers.
func ToShorts(id *uuid.UUID) []int16 {
	return decode(Short, id, func(src []byte) int16 { return int16(binary.BigEndian.Uint16(src)) })
}

// ToChars returns id as MaxChars UTF-16 code units.
func ToChars(id *uuid.UUID) []uint16 {
	return decode(Char, id, binary.BigEndian.Uint16)
}

// ToInts returns id as MaxInts 32-bit integers.
func ToInts(id *uuid.UUID) []int32 {
	return decode(Int, id, func(src []byte) int32 { return int32(binary.BigEndian.Uint32(src)) })
}

// ToLongs returns id as MaxLongs 64-bit integers.
func ToLongs(id *uuid.UUID) []int64 {
	return decode(Long, id, func(src []byte) int64 { return int64(binary.BigEndian.Uint64(src)) })
}

// ToFloats returns id as MaxFloats float32 values.
func ToFloats(id *uuid.UUID) []float32 {
	return decode(Float, id, func(src []byte) float32 { return math.Float32frombits(binary.BigEndian.Uint32(src)) })
}

// ToDoubles returns id as MaxDoubles float64 values.
func ToDoubles(id *uuid.UUID) []float64 {
	return decode(Double, id, func(src []byte) float64 { return math.Float64frombits(binary.BigEndian.Uint64(src)) })
}
