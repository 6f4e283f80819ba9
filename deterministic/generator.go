package deterministic

import (
	"bytes"
	"crypto"
	_ "crypto/md5"
	"fmt"
	"hash"
	"io"

	"github.com/google/uuid"
)

const (
	// DefaultBufferSize is the chunk size used to digest readers.
	DefaultBufferSize = 8192
	uuidBytes         = 16
)

// Generator derives UUIDs from content. It holds no mutable state and is safe
// for concurrent use; every call allocates its own digest.
type Generator struct {
	hash       crypto.Hash
	bufferSize int
}

// BufferSize returns the chunk size used to digest readers.
func (g *Generator) BufferSize() int {
	return g.bufferSize
}

// FromBytes generates a UUID from data.
func (g *Generator) FromBytes(data []byte) *uuid.UUID {
	if data == nil {
		return nil
	}
	h := g.hash.New()
	h.Write(data)
	return digest(h)
}

// FromString generates a UUID from the UTF-8 bytes of s.
func (g *Generator) FromString(s string) *uuid.UUID {
	return g.FromBytes([]byte(s))
}

// FromBuffer generates a UUID from the unread portion of buffer; the buffer
// is left untouched.
func (g *Generator) FromBuffer(buffer *bytes.Buffer) *uuid.UUID {
	if buffer == nil {
		return nil
	}
	h := g.hash.New()
	h.Write(buffer.Bytes())
	return digest(h)
}

// FromReader generates a UUID from everything readable from reader. Data is
// digested in BufferSize chunks, so input of any size can be processed. Read
// errors are returned as is. The reader is not closed.
func (g *Generator) FromReader(reader io.Reader) (*uuid.UUID, error) {
	if reader == nil {
		return nil, nil
	}
	h := g.hash.New()
	buffer := make([]byte, g.bufferSize)
	for {
		n, err := reader.Read(buffer)
		if n > 0 {
			h.Write(buffer[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return digest(h), nil
}

// FromStream is FromReader that always closes stream before returning. A
// close error is reported only when reading succeeded.
func (g *Generator) FromStream(stream io.ReadCloser) (id *uuid.UUID, err error) {
	if stream == nil {
		return nil, nil
	}
	defer func() {
		if closeErr := stream.Close(); closeErr != nil && err == nil {
			id, err = nil, fmt.Errorf("deterministic: failed to close stream: %w", closeErr)
		}
	}()
	return g.FromReader(stream)
}

// FromUUIDs generates a UUID from other UUIDs. No input yields nil and a
// single UUID is returned unchanged without hashing. Two or more are hashed
// in order, so permuting them changes the result.
func (g *Generator) FromUUIDs(ids ...uuid.UUID) *uuid.UUID {
	switch len(ids) {
	case 0:
		return nil
	case 1:
		id := ids[0]
		return &id
	}
	data := make([]byte, 0, len(ids)*uuidBytes)
	for _, id := range ids {
		data = append(data, id[:]...)
	}
	return g.FromBytes(data)
}

// FromName generates a name based UUID within namespace; with the default
// digest the result equals uuid.NewMD5(namespace, name). A nil name is
// treated as empty.
func (g *Generator) FromName(namespace uuid.UUID, name []byte) *uuid.UUID {
	h := g.hash.New()
	h.Write(namespace[:])
	h.Write(name)
	return digest(h)
}

// digest turns the sum into a version 3, RFC 4122 variant UUID the way
// Java's UUID.nameUUIDFromBytes does.
func digest(h hash.Hash) *uuid.UUID {
	sum := h.Sum(nil)
	sum[6] = sum[6]&0x0f | 0x30
	sum[8] = sum[8]&0x3f | 0x80
	id, err := uuid.FromBytes(sum)
	if err != nil {
		panic(err) // New guarantees a 16-byte digest
	}
	return &id
}

// New creates a Generator. The digest is verified eagerly; ErrDigestUnavailable
// is returned when it cannot be used.
func New(options ...Option) (*Generator, error) {
	ret := &Generator{hash: crypto.MD5, bufferSize: DefaultBufferSize}
	for _, option := range options {
		option(ret)
	}
	if ret.bufferSize <= 0 {
		ret.bufferSize = DefaultBufferSize
	}
	if !ret.hash.Available() {
		return nil, fmt.Errorf("%w: %v is not linked", ErrDigestUnavailable, ret.hash)
	}
	if size := ret.hash.Size(); size != uuidBytes {
		return nil, fmt.Errorf("%w: %v produces %d bytes, expected %d", ErrDigestUnavailable, ret.hash, size, uuidBytes)
	}
	return ret, nil
}

// MustNew is New that panics on error.
func MustNew(options ...Option) *Generator {
	ret, err := New(options...)
	if err != nil {
		panic(err)
	}
	return ret
}
