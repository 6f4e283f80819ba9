package uuidkit

import (
	"context"
	"errors"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/uuidkit/deterministic"
	"gopkg.in/yaml.v3"
)

// Ledger store kinds.
const (
	StoreMemory = "memory"
	StoreFs     = "fs"
	StorePebble = "pebble"
)

// Config is a serialisable representation of the service configuration. It
// can be populated from JSON or YAML; LoadConfig starts from DefaultConfig so
// omitted fields keep their defaults.
type Config struct {
	Stream    StreamConfig    `json:"stream" yaml:"stream"`
	Processor ProcessorConfig `json:"processor" yaml:"processor"`
	Ledger    LedgerConfig    `json:"ledger" yaml:"ledger"`
	Tracing   TracingConfig   `json:"tracing" yaml:"tracing"`
}

type StreamConfig struct {
	BufferSize int `json:"bufferSize" yaml:"bufferSize"`
}

type ProcessorConfig struct {
	WorkerCount int `json:"workers" yaml:"workers"`
}

// LedgerConfig selects the reconciliation store. URL is the base location
// for fs and the data directory for pebble.
type LedgerConfig struct {
	Store string `json:"store" yaml:"store"`
	URL   string `json:"url,omitempty" yaml:"url,omitempty"`
}

type TracingConfig struct {
	Enabled        bool   `json:"enabled" yaml:"enabled"`
	ServiceName    string `json:"serviceName,omitempty" yaml:"serviceName,omitempty"`
	ServiceVersion string `json:"serviceVersion,omitempty" yaml:"serviceVersion,omitempty"`
	OutputFile     string `json:"outputFile,omitempty" yaml:"outputFile,omitempty"`
}

// DefaultConfig returns a Config populated with the package defaults.
func DefaultConfig() *Config {
	return &Config{
		Stream:    StreamConfig{BufferSize: deterministic.DefaultBufferSize},
		Processor: ProcessorConfig{WorkerCount: 8},
		Ledger:    LedgerConfig{Store: StoreMemory},
		Tracing:   TracingConfig{ServiceName: "uuidkit"},
	}
}

// Validate returns aggregated error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Stream.BufferSize <= 0 {
		errs = append(errs, fmt.Errorf("stream.bufferSize must be > 0"))
	}
	if c.Processor.WorkerCount <= 0 {
		errs = append(errs, fmt.Errorf("processor.workers must be > 0"))
	}
	switch c.Ledger.Store {
	case "", StoreMemory:
	case StoreFs, StorePebble:
		if c.Ledger.URL == "" {
			errs = append(errs, fmt.Errorf("ledger.url is required for %s store", c.Ledger.Store))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported ledger.store: %q", c.Ledger.Store))
	}
	return errors.Join(errs...)
}

// LoadConfig reads a YAML (or JSON) configuration from URL.
func LoadConfig(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	if fs == nil {
		fs = afs.New()
	}
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", URL, err)
	}
	ret := DefaultConfig()
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", URL, err)
	}
	if err := ret.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", URL, err)
	}
	return ret, nil
}
