package reconcile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

// FsDAO stores each group as a JSON object under a base URL of any afs
// supported storage (local file system, memory, cloud buckets).
type FsDAO struct {
	baseURL string
	fs      afs.Service
	mu      sync.RWMutex
}

var _ DAO = (*FsDAO)(nil)

// Save persists a group
func (s *FsDAO) Save(ctx context.Context, g *Group) error {
	if g == nil {
		return ErrNilGroup
	}
	g.mu.Lock()
	data, err := json.Marshal(g)
	g.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to marshal group: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	URL := s.groupURL(g.ID)
	if err = s.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to save group to %s: %w", URL, err)
	}
	return nil
}

// Load retrieves a group
func (s *FsDAO) Load(ctx context.Context, id uuid.UUID) (*Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	URL := s.groupURL(id)
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to check if group exists: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read group %s: %w", URL, err)
	}
	g := &Group{}
	if err := json.Unmarshal(data, g); err != nil {
		return nil, fmt.Errorf("failed to unmarshal group %s: %w", URL, err)
	}
	return g, nil
}

// Delete removes a group; deleting an unknown group is not an error
func (s *FsDAO) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	URL := s.groupURL(id)
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return fmt.Errorf("failed to check if group exists: %w", err)
	}
	if !exists {
		return nil
	}
	if err := s.fs.Delete(ctx, URL); err != nil {
		return fmt.Errorf("failed to delete group %s: %w", URL, err)
	}
	return nil
}

// List returns all stored groups, skipping unreadable objects
func (s *FsDAO) List(ctx context.Context) ([]*Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	objects, err := s.fs.List(ctx, s.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	var groups []*Group
	for _, object := range objects {
		if object.IsDir() || !strings.HasSuffix(object.Name(), ".json") {
			continue
		}
		data, err := s.fs.Download(ctx, object)
		if err != nil {
			log.Printf("reconcile: failed to read group %s: %v", object.URL(), err)
			continue
		}
		g := &Group{}
		if err := json.Unmarshal(data, g); err != nil {
			log.Printf("reconcile: failed to unmarshal group %s: %v", object.URL(), err)
			continue
		}
		groups = append(groups, g)
	}
	return groups, nil
}

func (s *FsDAO) groupURL(id uuid.UUID) string {
	return url.Join(s.baseURL, id.String()+".json")
}

// NewFsDAO creates a DAO storing groups under baseURL, creating it if needed.
func NewFsDAO(fs afs.Service, baseURL string) (*FsDAO, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL cannot be empty")
	}
	if fs == nil {
		fs = afs.New()
	}
	baseURL = url.Normalize(baseURL, file.Scheme)
	ctx := context.Background()
	exists, err := fs.Exists(ctx, baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to check base location %s: %w", baseURL, err)
	}
	if !exists {
		if err := fs.Create(ctx, baseURL, file.DefaultDirOsMode, true); err != nil {
			return nil, fmt.Errorf("failed to create base location: %w", err)
		}
	}
	return &FsDAO{baseURL: baseURL, fs: fs}, nil
}
