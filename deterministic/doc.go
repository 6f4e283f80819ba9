// Package deterministic generates reproducible UUIDs from content.
//
// Given the same input the functions always return the same UUID, so two
// parts of a system that receive the same file or message can independently
// compute a matching reference UUID and later reconcile what they produced.
// The UUIDs are not universally unique: anybody hashing the same bytes gets
// the same value.
//
// The digest is MD5 with the RFC 4122 version 3 and variant bits set, which
// makes FromBytes bit-for-bit compatible with Java's
// UUID.nameUUIDFromBytes(byte[]). MD5 is used for its 128-bit output and good
// entropy, not as a one-way function.
//
// Absent input (nil slice, nil reader, nil buffer) yields a nil UUID.
package deterministic
