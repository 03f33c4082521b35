// Package profiletest provides in-memory stand-ins for the profile store,
// score cache and directory index used by the profile workers' tests.
package profiletest

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"exhibitor-profile/internal/common/database"
	"exhibitor-profile/internal/common/errors"
	"exhibitor-profile/internal/models"
	"exhibitor-profile/internal/profile"
)

var FixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// Store mirrors database.ProfileStore: versions start at 1 and Save is a
// compare-and-swap on the version.
type Store struct {
	mu       sync.Mutex
	profiles map[string]models.ExhibitorProfile

	GetErr    error
	SaveErr   error
	CreateErr error
	Saves     int
}

func NewStore() *Store {
	return &Store{profiles: make(map[string]models.ExhibitorProfile)}
}

// Put stores p as-is, bypassing versioning.
func (s *Store) Put(p models.ExhibitorProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.ID] = p.Clone()
}

func (s *Store) Create(_ context.Context, p models.ExhibitorProfile) (models.ExhibitorProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.CreateErr != nil {
		return p, s.CreateErr
	}
	if _, ok := s.profiles[p.ID]; ok {
		return p, errors.NewProfileVersionConflictError(p.ID, 0)
	}
	out := p.Clone()
	out.Version = 1
	out.UpdatedAt = FixedNow
	s.profiles[out.ID] = out.Clone()
	return out, nil
}

func (s *Store) Get(_ context.Context, id string) (models.ExhibitorProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return models.ExhibitorProfile{}, s.GetErr
	}
	p, ok := s.profiles[id]
	if !ok {
		return models.ExhibitorProfile{}, errors.NewProfileNotFoundError(id)
	}
	return p.Clone(), nil
}

func (s *Store) Save(_ context.Context, p models.ExhibitorProfile, expectedVersion int64) (models.ExhibitorProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return p, s.SaveErr
	}
	current, ok := s.profiles[p.ID]
	if !ok {
		return p, errors.NewProfileNotFoundError(p.ID)
	}
	if current.Version != expectedVersion {
		return p, errors.NewProfileVersionConflictError(p.ID, expectedVersion)
	}
	out := p.Clone()
	out.Version = expectedVersion + 1
	out.UpdatedAt = FixedNow
	s.profiles[out.ID] = out.Clone()
	s.Saves++
	return out, nil
}

// Cache mirrors database.ScoreCache.
type Cache struct {
	mu      sync.Mutex
	entries map[string]profile.CompletionResult

	GetErr      error
	SetErr      error
	Sets        int
	Invalidated []string
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]profile.CompletionResult)}
}

func cacheKey(id string, version int64) string {
	return fmt.Sprintf("%s:%d", id, version)
}

func (c *Cache) Get(_ context.Context, id string, version int64) (profile.CompletionResult, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.GetErr != nil {
		return profile.CompletionResult{}, false, c.GetErr
	}
	r, ok := c.entries[cacheKey(id, version)]
	return r, ok, nil
}

func (c *Cache) Set(_ context.Context, id string, version int64, result profile.CompletionResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.SetErr != nil {
		return c.SetErr
	}
	c.entries[cacheKey(id, version)] = result
	c.Sets++
	return nil
}

func (c *Cache) Invalidate(_ context.Context, id string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Invalidated = append(c.Invalidated, id)
	return 0, nil
}

// Has reports whether a result is cached for id at version.
func (c *Cache) Has(id string, version int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[cacheKey(id, version)]
	return ok
}

// Directory records indexed documents by profile id.
type Directory struct {
	mu   sync.Mutex
	Docs map[string]database.DirectoryDocument

	IndexErr  error
	DeleteErr error
	Deleted   []string
}

func NewDirectory() *Directory {
	return &Directory{Docs: make(map[string]database.DirectoryDocument)}
}

func (d *Directory) Index(_ context.Context, doc database.DirectoryDocument) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.IndexErr != nil {
		return "", d.IndexErr
	}
	result := "created"
	if _, ok := d.Docs[doc.ProfileID]; ok {
		result = "updated"
	}
	d.Docs[doc.ProfileID] = doc
	return result, nil
}

func (d *Directory) Delete(_ context.Context, profileID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.DeleteErr != nil {
		return d.DeleteErr
	}
	delete(d.Docs, profileID)
	d.Deleted = append(d.Deleted, profileID)
	return nil
}

// CreateTestProfile builds a fresh de+en profile with the default catalog.
func CreateTestProfile(t testing.TB, pkg models.PackageType) models.ExhibitorProfile {
	t.Helper()
	p, err := profile.NewProfile("Acme Messebau GmbH", models.LocaleDE, []models.Locale{models.LocaleEN}, pkg, models.DefaultCatalog())
	if err != nil {
		t.Fatalf("create test profile: %v", err)
	}
	return p
}

// Seed stores a fresh profile at version 1 and returns it.
func Seed(t testing.TB, s *Store, pkg models.PackageType) models.ExhibitorProfile {
	t.Helper()
	p, err := s.Create(context.Background(), CreateTestProfile(t, pkg))
	if err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return p
}
