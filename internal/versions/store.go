package versions

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/resume-engine/internal/types"
)

// Store is the persistence boundary for resume versions. Implementations
// return (nil, nil) for lookups that find nothing; the manager translates
// that into typed errors.
type Store interface {
	Create(ctx context.Context, version *types.ResumeVersion) error
	Get(ctx context.Context, id uuid.UUID) (*types.ResumeVersion, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*types.ResumeVersion, error)
	Update(ctx context.Context, version *types.ResumeVersion) error
	Delete(ctx context.Context, id uuid.UUID) error
	// SetActive deactivates every version of the owner and activates the
	// target in one logical transaction.
	SetActive(ctx context.Context, ownerID, versionID uuid.UUID) error
}

// MemoryStore is an in-memory Store used by tests and the CLI render path.
type MemoryStore struct {
	mu       sync.RWMutex
	versions map[uuid.UUID]*types.ResumeVersion
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{versions: make(map[uuid.UUID]*types.ResumeVersion)}
}

// Create stores a copy of the version.
func (s *MemoryStore) Create(_ context.Context, version *types.ResumeVersion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *version
	s.versions[version.ID] = &copied
	return nil
}

// Get returns a copy of the version, or (nil, nil) when absent.
func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (*types.ResumeVersion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.versions[id]
	if !ok {
		return nil, nil
	}
	copied := *stored
	return &copied, nil
}

// ListByOwner returns the owner's versions ordered by version number descending.
func (s *MemoryStore) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*types.ResumeVersion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []*types.ResumeVersion
	for _, stored := range s.versions {
		if stored.OwnerID == ownerID {
			copied := *stored
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].VersionNumber > result[j].VersionNumber
	})
	return result, nil
}

// Update replaces the stored version.
func (s *MemoryStore) Update(_ context.Context, version *types.ResumeVersion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.versions[version.ID]; !ok {
		return &NotFoundError{VersionID: version.ID}
	}
	copied := *version
	s.versions[version.ID] = &copied
	return nil
}

// Delete removes the version. Deleting an absent version is not an error.
func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.versions, id)
	return nil
}

// SetActive deactivates every version of the owner and activates the target.
func (s *MemoryStore) SetActive(_ context.Context, ownerID, versionID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	target, ok := s.versions[versionID]
	if !ok || target.OwnerID != ownerID {
		return &NotFoundError{VersionID: versionID}
	}
	for _, stored := range s.versions {
		if stored.OwnerID == ownerID {
			stored.IsActive = false
		}
	}
	target.IsActive = true
	return nil
}
