package uuidkit

import (
	"github.com/viant/afs"
	"github.com/viant/uuidkit/deterministic"
	"github.com/viant/uuidkit/reconcile"
)

// Option customises a Service.
type Option func(s *Service)

// WithConfig sets the configuration; nil keeps DefaultConfig.
func WithConfig(config *Config) Option {
	return func(s *Service) {
		s.config = config
	}
}

// WithFs sets the storage service used to read locations
func WithFs(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithGenerator sets the deterministic generator, overriding stream config
func WithGenerator(generator *deterministic.Generator) Option {
	return func(s *Service) {
		s.generator = generator
	}
}

// WithLedgerDAO sets the reconciliation store, overriding ledger config
func WithLedgerDAO(dao reconcile.DAO) Option {
	return func(s *Service) {
		s.ledgerDAO = dao
	}
}
