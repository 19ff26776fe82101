package storage

import (
	"log"
	"sync"
	"time"

	"rfqportal/models"

	"github.com/google/uuid"
)

// SnapshotStore owns the one record set fetched per process start. The
// loader installs a snapshot exactly once; every other component only reads.
// The lock exists for the window between server start and load completion.
type SnapshotStore struct {
	mu        sync.RWMutex
	snap      *models.Snapshot
	loaded    bool
	loadError string
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{snap: emptySnapshot()}
}

func emptySnapshot() *models.Snapshot {
	return &models.Snapshot{
		ID:       uuid.NewString(),
		LoadedAt: time.Now(),
		Pending:  []models.RFQ{},
		Confirm:  []models.RFQ{},
		Decline:  []models.RFQ{},
	}
}

// Install publishes a freshly loaded snapshot and marks loading complete.
// Nil partitions are replaced with empty slices so views never see nil.
func (s *SnapshotStore) Install(snap *models.Snapshot) {
	if snap.Pending == nil {
		snap.Pending = []models.RFQ{}
	}
	if snap.Confirm == nil {
		snap.Confirm = []models.RFQ{}
	}
	if snap.Decline == nil {
		snap.Decline = []models.RFQ{}
	}
	snap.ID = uuid.NewString()
	snap.LoadedAt = time.Now()

	s.mu.Lock()
	s.snap = snap
	s.loaded = true
	s.loadError = ""
	s.mu.Unlock()

	log.Printf("Snapshot %s installed: %d pending, %d confirm, %d decline",
		snap.ID, len(snap.Pending), len(snap.Confirm), len(snap.Decline))
}

// InstallEmpty marks loading complete with an empty record set after a load
// failure. The UI proceeds in its "no data" state rather than hanging.
func (s *SnapshotStore) InstallEmpty(loadErr string) {
	s.mu.Lock()
	s.snap = emptySnapshot()
	s.loaded = true
	s.loadError = loadErr
	s.mu.Unlock()

	log.Printf("Snapshot load failed, serving empty record set: %s", loadErr)
}

// Get returns the current snapshot. Never nil.
func (s *SnapshotStore) Get() *models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Loaded reports whether the single load attempt has finished, and the load
// error message when it failed.
func (s *SnapshotStore) Loaded() (bool, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded, s.loadError
}
