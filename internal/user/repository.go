package user

import (
	"errors"
	"strconv"
	"sync"

	"github.com/naruebet/storefront-admin/internal/datastore"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Repository provides access to user records.
type Repository interface {
	List() ([]User, error)
	GetByID(id datastore.ID) (User, error)
	// FindByCredentials returns every user matching the username/password
	// pair. The store does a plain field filter; callers take the first match.
	FindByCredentials(username, password string) ([]User, error)
	Create(u User) (User, error)
	Update(id datastore.ID, u User) (User, error)
	Delete(id datastore.ID) error
}

// InMemoryRepository is a simple in-memory implementation useful for tests.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []User
	nextID  int
}

func NewInMemoryRepository(seed []User) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]User, 0, len(seed)), nextID: 1}
	for _, u := range seed {
		r.storage = append(r.storage, u)
		if n, err := strconv.Atoi(u.ID.String()); err == nil && n >= r.nextID {
			r.nextID = n + 1
		}
	}
	return r
}

func (r *InMemoryRepository) List() ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]User, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) GetByID(id datastore.ID) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.storage {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *InMemoryRepository) FindByCredentials(username, password string) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]User, 0)
	for _, u := range r.storage {
		if u.Username == username && u.Password == password {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Create(u User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID.IsZero() {
		u.ID = datastore.ID(strconv.Itoa(r.nextID))
		r.nextID++
	}
	r.storage = append(r.storage, u)
	return u, nil
}

func (r *InMemoryRepository) Update(id datastore.ID, u User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.storage {
		if existing.ID == id {
			u.ID = id
			r.storage[i] = u
			return u, nil
		}
	}
	return User{}, ErrNotFound
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
