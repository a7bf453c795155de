package category

import (
	"errors"

	"github.com/naruebet/storefront-admin/internal/datastore"
)

// RESTRepository stores categories in the backing REST data store.
type RESTRepository struct {
	store *datastore.Client
}

func NewRESTRepository(store *datastore.Client) *RESTRepository {
	return &RESTRepository{store: store}
}

func (r *RESTRepository) List() ([]Category, error) {
	var cats []Category
	if err := r.store.List(datastore.Categories, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *RESTRepository) GetByID(id datastore.ID) (Category, error) {
	var c Category
	if err := r.store.Get(datastore.Categories, id, &c); err != nil {
		if errors.Is(err, datastore.ErrNotFound) {
			return Category{}, ErrNotFound
		}
		return Category{}, err
	}
	return c, nil
}

func (r *RESTRepository) Create(c Category) (Category, error) {
	var created Category
	if err := r.store.Create(datastore.Categories, c, &created); err != nil {
		return Category{}, err
	}
	return created, nil
}

func (r *RESTRepository) Update(id datastore.ID, c Category) (Category, error) {
	c.ID = id
	var updated Category
	if err := r.store.Update(datastore.Categories, id, c, &updated); err != nil {
		if errors.Is(err, datastore.ErrNotFound) {
			return Category{}, ErrNotFound
		}
		return Category{}, err
	}
	return updated, nil
}

func (r *RESTRepository) Delete(id datastore.ID) error {
	if err := r.store.Delete(datastore.Categories, id); err != nil {
		if errors.Is(err, datastore.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
