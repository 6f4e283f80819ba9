package deterministic

import "crypto"

// Option customises a Generator.
type Option func(g *Generator)

// WithHash sets the digest algorithm. It must produce a 16-byte sum.
func WithHash(hash crypto.Hash) Option {
	return func(g *Generator) {
		g.hash = hash
	}
}

// WithBufferSize sets the chunk size used when digesting readers; a
// non-positive size keeps the default.
func WithBufferSize(size int) Option {
	return func(g *Generator) {
		g.bufferSize = size
	}
}
