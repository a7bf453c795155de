package product

import (
	"errors"

	"github.com/naruebet/storefront-admin/internal/datastore"
)

// RESTRepository stores products in the backing REST data store.
type RESTRepository struct {
	store *datastore.Client
}

func NewRESTRepository(store *datastore.Client) *RESTRepository {
	return &RESTRepository{store: store}
}

func (r *RESTRepository) List() ([]Product, error) {
	var prods []Product
	if err := r.store.List(datastore.Products, &prods); err != nil {
		return nil, err
	}
	return prods, nil
}

func (r *RESTRepository) GetByID(id datastore.ID) (Product, error) {
	var p Product
	if err := r.store.Get(datastore.Products, id, &p); err != nil {
		if errors.Is(err, datastore.ErrNotFound) {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return p, nil
}

func (r *RESTRepository) Create(p Product) (Product, error) {
	var created Product
	if err := r.store.Create(datastore.Products, p, &created); err != nil {
		return Product{}, err
	}
	return created, nil
}

func (r *RESTRepository) Update(id datastore.ID, p Product) (Product, error) {
	p.ID = id
	var updated Product
	if err := r.store.Update(datastore.Products, id, p, &updated); err != nil {
		if errors.Is(err, datastore.ErrNotFound) {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return updated, nil
}

func (r *RESTRepository) Delete(id datastore.ID) error {
	if err := r.store.Delete(datastore.Products, id); err != nil {
		if errors.Is(err, datastore.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
