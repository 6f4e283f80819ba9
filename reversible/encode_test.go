package reversible

import (
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBytes(t *testing.T) {
	testCases := []struct {
		description string
		input       []byte
		expected    []byte
	}{
		{
			description: "partial input is zero padded",
			input:       []byte{1, 2, 3},
			expected:    []byte{1, 2, 3, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			description: "empty input yields zero uuid",
			input:       []byte{},
			expected:    make([]byte, MaxBytes),
		},
		{
			description: "full capacity",
			input:       []byte{0xff, 0xfe, 0xfd, 0xfc, 0xfb, 0xfa, 0xf9, 0xf8, 0xf7, 0xf6, 0xf5, 0xf4, 0xf3, 0xf2, 0xf1, 0xf0},
			expected:    []byte{0xff, 0xfe, 0xfd, 0xfc, 0xfb, 0xfa, 0xf9, 0xf8, 0xf7, 0xf6, 0xf5, 0xf4, 0xf3, 0xf2, 0xf1, 0xf0},
		},
	}
	for _, testCase := range testCases {
		id, err := FromBytes(testCase.input)
		require.NoError(t, err, testCase.description)
		require.NotNil(t, id, testCase.description)
		assert.Equal(t, testCase.expected, ToBytes(id), testCase.description)
		assert.Equal(t, testCase.expected, id[:], testCase.description)
	}
}

func TestOutOfCapacity(t *testing.T) {
	testCases := []struct {
		description string
		encode      func() (*uuid.UUID, error)
		width       Width
		length      int
	}{
		{description: "bytes", encode: func() (*uuid.UUID, error) { return FromBytes(make([]byte, 17)) }, width: Byte, length: 17},
		{description: "shorts", encode: func() (*uuid.UUID, error) { return FromShorts(make([]int16, 9)) }, width: Short, length: 9},
		{description: "chars", encode: func() (*uuid.UUID, error) { return FromChars(make([]uint16, 12)) }, width: Char, length: 12},
		{description: "ints", encode: func() (*uuid.UUID, error) { return FromInts(make([]int32, 5)) }, width: Int, length: 5},
		{description: "longs", encode: func() (*uuid.UUID, error) { return FromLongs(make([]int64, 3)) }, width: Long, length: 3},
		{description: "floats", encode: func() (*uuid.UUID, error) { return FromFloats(make([]float32, 5)) }, width: Float, length: 5},
		{description: "doubles", encode: func() (*uuid.UUID, error) { return FromDoubles(make([]float64, 100)) }, width: Double, length: 100},
	}
	for _, testCase := range testCases {
		id, err := testCase.encode()
		assert.Nil(t, id, testCase.description)
		require.Error(t, err, testCase.description)
		assert.True(t, errors.Is(err, ErrOutOfCapacity), testCase.description)
		var capacityErr *OutOfCapacityError
		require.True(t, errors.As(err, &capacityErr), testCase.description)
		assert.Equal(t, testCase.length, capacityErr.Length, testCase.description)
		assert.Equal(t, testCase.width, capacityErr.Width, testCase.description)
	}
}

func TestNilPropagation(t *testing.T) {
	encoders := map[string]func() (*uuid.UUID, error){
		"bytes":   func() (*uuid.UUID, error) { return FromBytes(nil) },
		"shorts":  func() (*uuid.UUID, error) { return FromShorts(nil) },
		"chars":   func() (*uuid.UUID, error) { return FromChars(nil) },
		"ints":    func() (*uuid.UUID, error) { return FromInts(nil) },
		"longs":   func() (*uuid.UUID, error) { return FromLongs(nil) },
		"floats":  func() (*uuid.UUID, error) { return FromFloats(nil) },
		"doubles": func() (*uuid.UUID, error) { return FromDoubles(nil) },
	}
	for name, encode := range encoders {
		id, err := encode()
		assert.NoError(t, err, name)
		assert.Nil(t, id, name)
	}

	assert.Nil(t, ToBytes(nil))
	assert.Nil(t, ToShorts(nil))
	assert.Nil(t, ToChars(nil))
	assert.Nil(t, ToInts(nil))
	assert.Nil(t, ToLongs(nil))
	assert.Nil(t, ToFloats(nil))
	assert.Nil(t, ToDoubles(nil))
	assert.Equal(t, "", ToString(nil))
}

func TestRoundTrip(t *testing.T) {
	t.Run("shorts", func(t *testing.T) {
		id, err := FromShorts([]int16{math.MinInt16, -1, 0, math.MaxInt16})
		require.NoError(t, err)
		assert.Equal(t, []int16{math.MinInt16, -1, 0, math.MaxInt16, 0, 0, 0, 0}, ToShorts(id))
	})
	t.Run("chars", func(t *testing.T) {
		id, err := FromChars([]uint16{'a', 0xffff, 0xd83d})
		require.NoError(t, err)
		assert.Equal(t, []uint16{'a', 0xffff, 0xd83d, 0, 0, 0, 0, 0}, ToChars(id))
	})
	t.Run("ints", func(t *testing.T) {
		id, err := FromInts([]int32{math.MinInt32, 7, math.MaxInt32, -42})
		require.NoError(t, err)
		assert.Equal(t, []int32{math.MinInt32, 7, math.MaxInt32, -42}, ToInts(id))
	})
	t.Run("longs", func(t *testing.T) {
		id, err := FromLongs([]int64{math.MinInt64})
		require.NoError(t, err)
		assert.Equal(t, []int64{math.MinInt64, 0}, ToLongs(id))
		assert.Equal(t, uint64(1)<<63, High(*id))
		assert.Equal(t, uint64(0), Low(*id))
	})
	t.Run("floats", func(t *testing.T) {
		nan := math.Float32frombits(0x7fc00abc)
		id, err := FromFloats([]float32{1.5, float32(math.Inf(-1)), nan})
		require.NoError(t, err)
		floats := ToFloats(id)
		require.Len(t, floats, MaxFloats)
		assert.Equal(t, float32(1.5), floats[0])
		assert.True(t, math.IsInf(float64(floats[1]), -1))
		assert.Equal(t, uint32(0x7fc00abc), math.Float32bits(floats[2]))
		assert.Equal(t, float32(0), floats[3])
	})
	t.Run("doubles", func(t *testing.T) {
		negativeZero := math.Copysign(0, -1)
		id, err := FromDoubles([]float64{math.Pi, negativeZero})
		require.NoError(t, err)
		doubles := ToDoubles(id)
		assert.Equal(t, math.Pi, doubles[0])
		assert.Equal(t, math.Float64bits(negativeZero), math.Float64bits(doubles[1]))
	})
}

func TestEmptyLongs(t *testing.T) {
	id, err := FromLongs([]int64{})
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, uuid.Nil, *id)
	assert.Equal(t, []int64{0, 0}, ToLongs(id))
}

func TestBigEndianLayout(t *testing.T) {
	id, err := FromInts([]int32{0x01020304})
	require.NoError(t, err)
	assert.Equal(t, "01020304-0000-0000-0000-000000000000", id.String())

	id, err = FromLongs([]int64{0x0102030405060708, 0x090a0b0c0d0e0f10})
	require.NoError(t, err)
	assert.Equal(t, New(0x0102030405060708, 0x090a0b0c0d0e0f10), *id)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, ToBytes(id))
	assert.Equal(t, []int16{0x0102, 0x0304, 0x0506, 0x0708, 0x090a, 0x0b0c, 0x0d0e, 0x0f10}, ToShorts(id))
}

func TestCrossWidth(t *testing.T) {
	id, err := FromBytes([]byte{0x3f, 0xf0})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0}, ToDoubles(id))
}
