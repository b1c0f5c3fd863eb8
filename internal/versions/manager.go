package versions

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jonathan/resume-engine/internal/types"
)

// Manager owns the version lifecycle for all owners. Activation and deletion
// serialize per owner so the single-active-version invariant holds under
// concurrent requests; operations for different owners never contend.
type Manager struct {
	store Store

	mu     sync.Mutex
	owners map[uuid.UUID]*sync.Mutex
}

// NewManager returns a Manager backed by the given store.
func NewManager(store Store) *Manager {
	return &Manager{
		store:  store,
		owners: make(map[uuid.UUID]*sync.Mutex),
	}
}

// ownerLock returns the serialization point for one owner.
func (m *Manager) ownerLock(ownerID uuid.UUID) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	lock, ok := m.owners[ownerID]
	if !ok {
		lock = &sync.Mutex{}
		m.owners[ownerID] = lock
	}
	return lock
}

// List returns all versions for the owner, newest version number first.
func (m *Manager) List(ctx context.Context, ownerID uuid.UUID) ([]*types.ResumeVersion, error) {
	return m.store.ListByOwner(ctx, ownerID)
}

// Get returns the owner's version by ID.
func (m *Manager) Get(ctx context.Context, ownerID, versionID uuid.UUID) (*types.ResumeVersion, error) {
	version, err := m.store.Get(ctx, versionID)
	if err != nil {
		return nil, err
	}
	if version == nil || version.OwnerID != ownerID {
		return nil, &NotFoundError{VersionID: versionID}
	}
	return version, nil
}

// GetActive returns the owner's active version, or a NotFoundError when the
// owner has no versions yet.
func (m *Manager) GetActive(ctx context.Context, ownerID uuid.UUID) (*types.ResumeVersion, error) {
	all, err := m.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for _, version := range all {
		if version.IsActive {
			return version, nil
		}
	}
	return nil, &NotFoundError{VersionID: uuid.Nil}
}

// GetBase returns the owner's base version.
func (m *Manager) GetBase(ctx context.Context, ownerID uuid.UUID) (*types.ResumeVersion, error) {
	all, err := m.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for _, version := range all {
		if version.IsBaseVersion {
			return version, nil
		}
	}
	return nil, &NotFoundError{VersionID: uuid.Nil}
}

// Create persists a new version for the owner. The first version for an
// owner becomes the active base version; later versions are created inactive
// with the next monotonic version number.
func (m *Manager) Create(ctx context.Context, version *types.ResumeVersion) (*types.ResumeVersion, error) {
	lock := m.ownerLock(version.OwnerID)
	lock.Lock()
	defer lock.Unlock()

	existing, err := m.store.ListByOwner(ctx, version.OwnerID)
	if err != nil {
		return nil, err
	}

	highest := 0
	for _, v := range existing {
		if v.VersionNumber > highest {
			highest = v.VersionNumber
		}
	}

	now := time.Now().UTC()
	version.ID = uuid.New()
	version.VersionNumber = highest + 1
	version.CreatedAt = now
	version.UpdatedAt = now
	if len(existing) == 0 {
		version.IsBaseVersion = true
		version.IsActive = true
	}

	if err := m.store.Create(ctx, version); err != nil {
		return nil, fmt.Errorf("failed to create version: %w", err)
	}
	log.Info().Str("owner_id", version.OwnerID.String()).Int("version", version.VersionNumber).
		Bool("base", version.IsBaseVersion).Msg("created resume version")
	return version, nil
}

// CreateDraft clones a source version (the base version when sourceID is nil)
// into a new named draft. Drafts start inactive and carry the job description
// they target, if any.
func (m *Manager) CreateDraft(ctx context.Context, ownerID uuid.UUID, draftName, jobDescription string, sourceID *uuid.UUID) (*types.ResumeVersion, error) {
	var source *types.ResumeVersion
	var err error
	if sourceID != nil {
		source, err = m.Get(ctx, ownerID, *sourceID)
	} else {
		source, err = m.GetBase(ctx, ownerID)
	}
	if err != nil {
		return nil, err
	}

	draft := source.Clone()
	draft.DraftName = draftName
	draft.IsBaseVersion = false
	draft.IsActive = false
	parentID := source.ID
	draft.ParentVersionID = &parentID
	draft.JobDescription = jobDescription
	return m.Create(ctx, draft)
}

// Update persists section or metadata edits to an existing version.
func (m *Manager) Update(ctx context.Context, ownerID uuid.UUID, version *types.ResumeVersion) (*types.ResumeVersion, error) {
	current, err := m.Get(ctx, ownerID, version.ID)
	if err != nil {
		return nil, err
	}
	// Lifecycle fields are owned by the manager, not by callers.
	version.OwnerID = current.OwnerID
	version.VersionNumber = current.VersionNumber
	version.IsBaseVersion = current.IsBaseVersion
	version.IsActive = current.IsActive
	version.CreatedAt = current.CreatedAt
	version.UpdatedAt = time.Now().UTC()
	if err := m.store.Update(ctx, version); err != nil {
		return nil, fmt.Errorf("failed to update version: %w", err)
	}
	return version, nil
}

// Activate makes the target version the owner's single active version.
// Activating the already-active version is a no-op.
func (m *Manager) Activate(ctx context.Context, ownerID, versionID uuid.UUID) (*types.ResumeVersion, error) {
	lock := m.ownerLock(ownerID)
	lock.Lock()
	defer lock.Unlock()

	version, err := m.Get(ctx, ownerID, versionID)
	if err != nil {
		return nil, err
	}
	if version.IsActive {
		return version, nil
	}

	if err := m.store.SetActive(ctx, ownerID, versionID); err != nil {
		return nil, err
	}
	version.IsActive = true
	log.Info().Str("owner_id", ownerID.String()).Str("version_id", versionID.String()).Msg("activated resume version")
	return version, nil
}

// Delete removes a version. A base version with live tailored children is
// protected by a ConflictError, and the owner's only version cannot be
// deleted. Deleting the active version activates the base version.
func (m *Manager) Delete(ctx context.Context, ownerID, versionID uuid.UUID) error {
	lock := m.ownerLock(ownerID)
	lock.Lock()
	defer lock.Unlock()

	version, err := m.Get(ctx, ownerID, versionID)
	if err != nil {
		return err
	}

	all, err := m.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return err
	}
	if len(all) == 1 {
		return &LastVersionError{VersionID: versionID}
	}

	if version.IsBaseVersion {
		children := 0
		for _, v := range all {
			if v.ParentVersionID != nil && *v.ParentVersionID == versionID {
				children++
			}
		}
		if children > 0 {
			return &ConflictError{VersionID: versionID, TailoredCount: children}
		}
	}

	if err := m.store.Delete(ctx, versionID); err != nil {
		return fmt.Errorf("failed to delete version: %w", err)
	}

	if version.IsActive {
		var successor *types.ResumeVersion
		for _, v := range all {
			if v.ID == versionID {
				continue
			}
			if v.IsBaseVersion {
				successor = v
				break
			}
			if successor == nil {
				successor = v
			}
		}
		if successor != nil {
			if err := m.store.SetActive(ctx, ownerID, successor.ID); err != nil {
				return fmt.Errorf("failed to promote base version: %w", err)
			}
		}
	}

	log.Info().Str("owner_id", ownerID.String()).Str("version_id", versionID.String()).Msg("deleted resume version")
	return nil
}
