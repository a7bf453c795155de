package interaction

import (
	"errors"
	"strconv"
	"sync"

	"github.com/naruebet/storefront-admin/internal/datastore"
)

var ErrNotFound = errors.New("interaction not found")

type Repository interface {
	List() ([]Interaction, error)
	// ForPair returns every interaction recorded for a (user, product)
	// pair. There should be at most one, but concurrent toggles can leave
	// more behind, so callers get the full set.
	ForPair(userID, productID datastore.ID) ([]Interaction, error)
	Create(it Interaction) (Interaction, error)
	Delete(id datastore.ID) error
}

// InMemoryRepository is a simple in-memory implementation useful for tests.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Interaction
	nextID  int
}

func NewInMemoryRepository(seed []Interaction) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Interaction, 0, len(seed)), nextID: 1}
	for _, it := range seed {
		r.storage = append(r.storage, it)
		if n, err := strconv.Atoi(it.ID.String()); err == nil && n >= r.nextID {
			r.nextID = n + 1
		}
	}
	return r
}

func (r *InMemoryRepository) List() ([]Interaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Interaction, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) ForPair(userID, productID datastore.ID) ([]Interaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Interaction, 0, 1)
	for _, it := range r.storage {
		if it.UserID == userID && it.ProductID == productID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Create(it Interaction) (Interaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if it.ID.IsZero() {
		it.ID = datastore.ID(strconv.Itoa(r.nextID))
		r.nextID++
	}
	r.storage = append(r.storage, it)
	return it, nil
}

func (r *InMemoryRepository) Delete(id datastore.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.storage {
		if existing.ID == id {
			r.storage = append(r.storage[:i], r.storage[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
