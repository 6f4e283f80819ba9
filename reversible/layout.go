package reversible

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// New builds a UUID from its most (high) and least (low) significant words.
func New(high, low uint64) uuid.UUID {
	var id uuid.UUID
	binary.BigEndian.PutUint64(id[:8], high)
	binary.BigEndian.PutUint64(id[8:], low)
	return id
}

// High returns the most significant 64 bits of id.
func High(id uuid.UUID) uint64 { return binary.BigEndian.Uint64(id[:8]) }

// Low returns the least significant 64 bits of id.
func Low(id uuid.UUID) uint64 { return binary.BigEndian.Uint64(id[8:]) }

// toBuffer lays id out as its two big-endian words.
func toBuffer(id uuid.UUID) [UUIDBytes]byte {
	var buf [UUIDBytes]byte
	binary.BigEndian.PutUint64(buf[:8], High(id))
	binary.BigEndian.PutUint64(buf[8:], Low(id))
	return buf
}

func fromBuffer(buf [UUIDBytes]byte) *uuid.UUID {
	id := New(binary.BigEndian.Uint64(buf[:8]), binary.BigEndian.Uint64(buf[8:]))
	return &id
}
