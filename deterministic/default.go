package deterministic

import (
	"bytes"
	"io"

	"github.com/google/uuid"
)

var defaultGenerator = MustNew()

// Default returns the package level MD5 generator.
func Default() *Generator { return defaultGenerator }

// FromBytes generates a UUID from data, see Generator.FromBytes.
func FromBytes(data []byte) *uuid.UUID { return defaultGenerator.FromBytes(data) }

// FromString generates a UUID from s, see Generator.FromString.
func FromString(s string) *uuid.UUID { return defaultGenerator.FromString(s) }

// FromBuffer generates a UUID from buffer, see Generator.FromBuffer.
func FromBuffer(buffer *bytes.Buffer) *uuid.UUID { return defaultGenerator.FromBuffer(buffer) }

// FromReader generates a UUID from reader, see Generator.FromReader.
func FromReader(reader io.Reader) (*uuid.UUID, error) { return defaultGenerator.FromReader(reader) }

// FromStream generates a UUID from stream and closes it, see Generator.FromStream.
func FromStream(stream io.ReadCloser) (*uuid.UUID, error) { return defaultGenerator.FromStream(stream) }

// FromUUIDs combines ids, see Generator.FromUUIDs.
func FromUUIDs(ids ...uuid.UUID) *uuid.UUID { return defaultGenerator.FromUUIDs(ids...) }

// FromName generates a name based UUID, see Generator.FromName.
func FromName(namespace uuid.UUID, name []byte) *uuid.UUID {
	return defaultGenerator.FromName(namespace, name)
}
