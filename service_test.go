package uuidkit_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/uuidkit"
	"github.com/viant/uuidkit/deterministic"
	"github.com/viant/uuidkit/reconcile"
)

const helloID = "5d41402a-bc4b-3a76-b971-9d911017c592"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	location := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(location, []byte(content), 0o644))
	return location
}

func TestService_FromURL(t *testing.T) {
	dir := t.TempDir()
	srv, err := uuidkit.New()
	require.NoError(t, err)
	defer srv.Close()
	ctx := context.Background()

	id, err := srv.FromURL(ctx, writeFile(t, dir, "hello.txt", "hello"))
	require.NoError(t, err)
	assert.Equal(t, helloID, id.String())

	id, err = srv.FromURL(ctx, filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
	assert.Nil(t, id)
}

func TestService_DigestURLs(t *testing.T) {
	dir := t.TempDir()
	config := uuidkit.DefaultConfig()
	config.Processor.WorkerCount = 3
	config.Stream.BufferSize = 2
	srv, err := uuidkit.New(uuidkit.WithConfig(config))
	require.NoError(t, err)
	defer srv.Close()

	var URLs []string
	var expect []*uuid.UUID
	for i, content := range []string{"hello", "", "a longer body spanning several chunks", "x", "hello"} {
		URLs = append(URLs, writeFile(t, dir, string(rune('a'+i))+".txt", content))
		expect = append(expect, deterministic.FromString(content))
	}
	URLs = append(URLs, filepath.Join(dir, "missing.txt"))

	results := srv.DigestURLs(context.Background(), URLs...)
	require.Len(t, results, len(URLs))
	for i, result := range results[:len(expect)] {
		assert.Equal(t, URLs[i], result.URL)
		assert.NoError(t, result.Err)
		assert.Equal(t, expect[i], result.ID)
	}
	last := results[len(results)-1]
	assert.Error(t, last.Err)
	assert.Nil(t, last.ID)
	assert.Equal(t, results[0].ID, results[4].ID)

	assert.Empty(t, srv.DigestURLs(context.Background()))
}

func TestService_DigestURLsCancelled(t *testing.T) {
	dir := t.TempDir()
	srv, err := uuidkit.New()
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results := srv.DigestURLs(ctx, writeFile(t, dir, "a.txt", "a"), writeFile(t, dir, "b.txt", "b"))
	for _, result := range results {
		assert.True(t, errors.Is(result.Err, context.Canceled))
		assert.Nil(t, result.ID)
	}
}

func TestService_Codec(t *testing.T) {
	srv, err := uuidkit.New()
	require.NoError(t, err)

	id, err := srv.Encode("shorts(1, -1)")
	require.NoError(t, err)
	assert.Equal(t, "0001ffff-0000-0000-0000-000000000000", id.String())

	text, err := srv.Decode("shorts", id)
	require.NoError(t, err)
	assert.Equal(t, "shorts(1, -1, 0, 0, 0, 0, 0, 0)", text)

	_, err = srv.Decode("nibbles", id)
	assert.Error(t, err)
}

func TestService_Ledger(t *testing.T) {
	testCases := []struct {
		description string
		ledger      func(dir string) uuidkit.LedgerConfig
	}{
		{description: "memory", ledger: func(string) uuidkit.LedgerConfig { return uuidkit.LedgerConfig{Store: uuidkit.StoreMemory} }},
		{description: "fs", ledger: func(dir string) uuidkit.LedgerConfig {
			return uuidkit.LedgerConfig{Store: uuidkit.StoreFs, URL: filepath.Join(dir, "ledger")}
		}},
		{description: "pebble", ledger: func(dir string) uuidkit.LedgerConfig {
			return uuidkit.LedgerConfig{Store: uuidkit.StorePebble, URL: filepath.Join(dir, "pebble")}
		}},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			dir := t.TempDir()
			config := uuidkit.DefaultConfig()
			config.Ledger = testCase.ledger(dir)
			srv, err := uuidkit.New(uuidkit.WithConfig(config))
			require.NoError(t, err)
			defer func() { assert.NoError(t, srv.Close()) }()
			ctx := context.Background()
			location := writeFile(t, dir, "hello.txt", "hello")

			group, complete, err := srv.ReportURL(ctx, "billing", location, 2)
			require.NoError(t, err)
			assert.False(t, complete)
			assert.Equal(t, helloID, group.ID.String())

			group, complete, err = srv.Ledger().ReportContent(ctx, "shipping", []byte("hello"), 2)
			require.NoError(t, err)
			assert.True(t, complete)
			assert.True(t, group.Done())
		})
	}
}

func TestService_Options(t *testing.T) {
	dao := reconcile.NewMemoryDAO()
	generator := deterministic.MustNew(deterministic.WithBufferSize(16))
	srv, err := uuidkit.New(uuidkit.WithGenerator(generator), uuidkit.WithLedgerDAO(dao))
	require.NoError(t, err)
	assert.Same(t, generator, srv.Generator())

	_, _, err = srv.Ledger().ReportContent(context.Background(), "billing", []byte("hello"), 1)
	require.NoError(t, err)
	groups, err := dao.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, groups, 1)

	config := uuidkit.DefaultConfig()
	config.Ledger.Store = "redis"
	_, err = uuidkit.New(uuidkit.WithConfig(config))
	assert.Error(t, err)
}

type emptyOpenFs struct {
	afs.Service
}

func (f *emptyOpenFs) OpenURL(ctx context.Context, URL string, options ...storage.Option) (io.ReadCloser, error) {
	return nil, nil
}

func TestService_ReportURLWithoutContent(t *testing.T) {
	srv, err := uuidkit.New(uuidkit.WithFs(&emptyOpenFs{}))
	require.NoError(t, err)
	defer srv.Close()

	group, complete, err := srv.ReportURL(context.Background(), "billing", "mem://localhost/empty", 2)
	assert.ErrorIs(t, err, reconcile.ErrNoContent)
	assert.Nil(t, group)
	assert.False(t, complete)
}
