package category

import "github.com/naruebet/storefront-admin/internal/datastore"

type Category struct {
	ID          datastore.ID `json:"id,omitempty"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
}
