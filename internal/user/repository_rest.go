package user

import (
	"errors"

	"github.com/naruebet/storefront-admin/internal/datastore"
)

// RESTRepository stores users in the backing REST data store.
type RESTRepository struct {
	store *datastore.Client
}

func NewRESTRepository(store *datastore.Client) *RESTRepository {
	return &RESTRepository{store: store}
}

func (r *RESTRepository) List() ([]User, error) {
	var users []User
	if err := r.store.List(datastore.Users, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *RESTRepository) GetByID(id datastore.ID) (User, error) {
	var u User
	if err := r.store.Get(datastore.Users, id, &u); err != nil {
		if errors.Is(err, datastore.ErrNotFound) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *RESTRepository) FindByCredentials(username, password string) ([]User, error) {
	var users []User
	err := r.store.Query(datastore.Users, map[string]string{
		"username": username,
		"password": password,
	}, &users)
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *RESTRepository) Create(u User) (User, error) {
	var created User
	if err := r.store.Create(datastore.Users, u, &created); err != nil {
		return User{}, err
	}
	return created, nil
}

func (r *RESTRepository) Update(id datastore.ID, u User) (User, error) {
	u.ID = id
	var updated User
	if err := r.store.Update(datastore.Users, id, u, &updated); err != nil {
		if errors.Is(err, datastore.ErrNotFound) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return updated, nil
}

func (r *RESTRepository) Delete(id datastore.ID) error {
	if err := r.store.Delete(datastore.Users, id); err != nil {
		if errors.Is(err, datastore.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
