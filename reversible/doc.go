// Package reversible converts between a UUID and short arrays of primitive
// values in a lossless, bit-exact way.
//
// A UUID is handled as 16 bytes holding two big-endian 64-bit words. Encoding
// writes the elements big-endian from offset 0 into a zeroed 16-byte buffer;
// decoding reads the buffer back at the same width and always returns a full
// capacity slice, so a shorter input comes back zero padded:
//
//	id, _ := reversible.FromInts([]int32{7, 42})
//	ints := reversible.ToInts(id) // [7 42 0 0]
//
// This is useful to give a legacy record with a numeric key a UUID that can be
// turned back into the original key later on.
//
// A nil input yields a nil result rather than an error; an input longer than
// the width capacity yields an *OutOfCapacityError.
package reversible
