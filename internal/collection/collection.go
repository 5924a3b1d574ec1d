// Package collection holds the in-memory, ordered, uniquely keyed list of
// portfolio entries together with its derived filtered views.
//
// The collection owns the entry list for the whole session. Every mutation
// re-persists the list through the store as a best-effort side effect;
// persistence failures are logged by the store and never reach callers.
package collection

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Abhi22shek/portfolio-core/internal/models"
	"github.com/Abhi22shek/portfolio-core/internal/store"
	"go.uber.org/zap"
)

var (
	// ErrDuplicateID is returned by Add when an entry with the same ID
	// already exists. Callers generate IDs, so hitting this is a caller bug
	// and must fail loudly rather than silently overwrite.
	ErrDuplicateID = errors.New("duplicate entry id")

	// ErrNotFound is returned when no entry matches the requested ID.
	ErrNotFound = errors.New("entry not found")
)

// Collection is the session-scoped owner of the entry list.
// It is safe for use from multiple goroutines.
type Collection struct {
	mu       sync.Mutex
	entries  []models.Entry
	hydrated bool

	// st persists snapshots of the entry list under key.
	st  *store.FileStore
	key string
	log *zap.Logger
}

// New constructs an empty, not yet hydrated collection persisting under the
// given store key. Until Hydrate is called every query returns an empty view.
func New(st *store.FileStore, key string, log *zap.Logger) *Collection {
	if log == nil {
		log = zap.NewNop()
	}
	return &Collection{st: st, key: key, log: log}
}

// Hydrate loads the persisted entry list, falling back to the provided seed.
// Persisted data, when present, completely replaces the seed (no merge):
// the seed exists only to prime the first-run experience. An empty persisted
// list is still persisted data and wins over the seed.
func (c *Collection) Hydrate(seed []models.Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	persisted := store.Load(c.st, c.key, []models.Entry(nil))
	if persisted != nil {
		c.entries = persisted
		c.log.Info("collection hydrated from store",
			zap.String("key", c.key), zap.Int("entries", len(persisted)))
	} else {
		c.entries = append([]models.Entry(nil), seed...)
		c.log.Info("collection hydrated from seed",
			zap.String("key", c.key), zap.Int("entries", len(seed)))
	}
	c.hydrated = true
}

// Add prepends a new entry so the newest addition always shows first.
// A colliding ID fails with ErrDuplicateID and leaves the list untouched.
func (c *Collection) Add(entry models.Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.entries {
		if e.ID == entry.ID {
			return fmt.Errorf("%w: %s", ErrDuplicateID, entry.ID)
		}
	}
	c.entries = append([]models.Entry{entry}, c.entries...)
	c.persistLocked()
	return nil
}

// ToggleFeatured flips the featured flag on the matching entry. Featured is
// the only field mutable in place after creation.
func (c *Collection) ToggleFeatured(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.entries {
		if c.entries[i].ID == id {
			c.entries[i].Featured = !c.entries[i].Featured
			c.persistLocked()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Remove hard-deletes the matching entry. The original curation flow was
// append-only; removal exists as an explicit admin escape hatch.
func (c *Collection) Remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.entries {
		if c.entries[i].ID == id {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			c.persistLocked()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Get returns a copy of the entry with the given ID.
func (c *Collection) Get(id string) (models.Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Entries returns a snapshot of the full list in insertion order,
// newest first. Empty before hydration.
func (c *Collection) Entries() []models.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.hydrated {
		return nil
	}
	return append([]models.Entry(nil), c.entries...)
}

// FilteredBy projects the view selected by the filter. The FilterAll
// sentinel returns featured entries only (the highlight reel, not a literal
// union); a concrete tag returns every entry carrying it, featured or not.
// Order follows the collection's newest-first insertion order.
func (c *Collection) FilteredBy(f models.Filter) []models.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.hydrated {
		return nil
	}
	var view []models.Entry
	for _, e := range c.entries {
		if f.ActiveTag == models.FilterAll {
			if e.Featured {
				view = append(view, e)
			}
		} else if e.HasTag(f.ActiveTag) {
			view = append(view, e)
		}
	}
	return view
}

// Reset clears the collection and its persisted document. Debug/reset flow
// only; nothing in the normal curation path destroys entries wholesale.
func (c *Collection) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = nil
	c.st.Remove(c.key)
	c.log.Info("collection reset", zap.String("key", c.key))
}

// persistLocked writes the current list through the store. Best-effort:
// the store logs failures and the in-memory list stays authoritative.
// Callers must hold c.mu.
func (c *Collection) persistLocked() {
	// Non-nil so an emptied list persists as [] and still counts as
	// persisted data on the next hydration.
	snapshot := make([]models.Entry, 0, len(c.entries))
	snapshot = append(snapshot, c.entries...)
	store.Save(c.st, c.key, snapshot)
}
