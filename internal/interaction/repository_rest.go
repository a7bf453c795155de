package interaction

import (
	"errors"

	"github.com/naruebet/storefront-admin/internal/datastore"
)

// RESTRepository stores interactions in the backing REST data store.
type RESTRepository struct {
	store *datastore.Client
}

func NewRESTRepository(store *datastore.Client) *RESTRepository {
	return &RESTRepository{store: store}
}

func (r *RESTRepository) List() ([]Interaction, error) {
	var ints []Interaction
	if err := r.store.List(datastore.Interactions, &ints); err != nil {
		return nil, err
	}
	return ints, nil
}

func (r *RESTRepository) ForPair(userID, productID datastore.ID) ([]Interaction, error) {
	var ints []Interaction
	err := r.store.Query(datastore.Interactions, map[string]string{
		"userId":    userID.String(),
		"productId": productID.String(),
	}, &ints)
	if err != nil {
		return nil, err
	}
	return ints, nil
}

func (r *RESTRepository) Create(it Interaction) (Interaction, error) {
	var created Interaction
	if err := r.store.Create(datastore.Interactions, it, &created); err != nil {
		return Interaction{}, err
	}
	return created, nil
}

func (r *RESTRepository) Delete(id datastore.ID) error {
	if err := r.store.Delete(datastore.Interactions, id); err != nil {
		if errors.Is(err, datastore.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
