package uuidkit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	"github.com/viant/afs"
	"github.com/viant/uuidkit/deterministic"
	"github.com/viant/uuidkit/literal"
	"github.com/viant/uuidkit/reconcile"
	"github.com/viant/uuidkit/reversible"
	"github.com/viant/uuidkit/tracing"
)

// Service exposes the toolkit with configured storage, ledger and tracing.
type Service struct {
	config    *Config
	fs        afs.Service
	generator *deterministic.Generator
	ledgerDAO reconcile.DAO
	ledger    *reconcile.Ledger
	closers   []io.Closer
}

func (s *Service) init(options []Option) error {
	for _, option := range options {
		option(s)
	}
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if err := s.config.Validate(); err != nil {
		return err
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	if s.generator == nil {
		generator, err := deterministic.New(deterministic.WithBufferSize(s.config.Stream.BufferSize))
		if err != nil {
			return err
		}
		s.generator = generator
	}
	if tracingConfig := s.config.Tracing; tracingConfig.Enabled {
		if err := tracing.Init(tracingConfig.ServiceName, tracingConfig.ServiceVersion, tracingConfig.OutputFile); err != nil {
			log.Printf("uuidkit: failed to initialise tracing: %v", err)
		}
	}
	if s.ledgerDAO == nil {
		dao, err := s.newLedgerDAO()
		if err != nil {
			return err
		}
		s.ledgerDAO = dao
	}
	s.ledger = reconcile.NewLedger(s.ledgerDAO, s.generator)
	return nil
}

func (s *Service) newLedgerDAO() (reconcile.DAO, error) {
	switch s.config.Ledger.Store {
	case StoreFs:
		return reconcile.NewFsDAO(s.fs, s.config.Ledger.URL)
	case StorePebble:
		dao, err := reconcile.OpenPebbleDAO(reconcile.PebbleOptions{DataDir: s.config.Ledger.URL})
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, dao)
		return dao, nil
	}
	return reconcile.NewMemoryDAO(), nil
}

// Config returns the effective configuration.
func (s *Service) Config() *Config { return s.config }

// Generator returns the deterministic generator.
func (s *Service) Generator() *deterministic.Generator { return s.generator }

// Ledger returns the reconciliation ledger.
func (s *Service) Ledger() *reconcile.Ledger { return s.ledger }

// FromURL generates a deterministic UUID from the content at URL. The
// content is streamed and the underlying reader is always closed.
func (s *Service) FromURL(ctx context.Context, URL string) (id *uuid.UUID, err error) {
	ctx, span := tracing.StartSpan(ctx, "uuidkit.FromURL")
	defer func() {
		if id != nil {
			span.WithAttributes(map[string]string{"url": URL, "uuid": id.String()})
		}
		tracing.EndSpan(span, err)
	}()
	reader, err := s.fs.OpenURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", URL, err)
	}
	if id, err = s.generator.FromStream(reader); err != nil {
		return nil, fmt.Errorf("failed to digest %s: %w", URL, err)
	}
	return id, nil
}

// ReportURL digests the content at URL and reports it to the ledger on
// behalf of party.
func (s *Service) ReportURL(ctx context.Context, party, URL string, expected int) (*reconcile.Group, bool, error) {
	id, err := s.FromURL(ctx, URL)
	if err != nil {
		return nil, false, err
	}
	if id == nil {
		return nil, false, reconcile.ErrNoContent
	}
	return s.ledger.Report(ctx, party, *id, expected)
}

// Encode converts a typed literal such as ints(1, 2) into a UUID.
func (s *Service) Encode(input string) (*uuid.UUID, error) {
	return literal.Encode(input)
}

// Decode renders id as a literal of the named width.
func (s *Service) Decode(width string, id *uuid.UUID) (string, error) {
	w, err := reversible.ParseWidth(width)
	if err != nil {
		return "", err
	}
	return literal.Format(w, id), nil
}

// Close releases stores opened by the service.
func (s *Service) Close() error {
	var errs []error
	for _, closer := range s.closers {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}

// New creates a Service. Invalid configuration or an unusable digest is
// reported as an error.
func New(options ...Option) (*Service, error) {
	ret := &Service{}
	if err := ret.init(options); err != nil {
		return nil, err
	}
	return ret, nil
}
