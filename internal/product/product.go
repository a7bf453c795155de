package product

import "github.com/naruebet/storefront-admin/internal/datastore"

type Product struct {
	ID          datastore.ID `json:"id,omitempty"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Price       float64      `json:"price"`
	CategoryID  datastore.ID `json:"categoryId"`
	// Image is an inline base64 data URL uploaded through the product form.
	Image     string `json:"image,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// View is a product plus its resolved category name, the shape the listing
// and detail endpoints return. A dangling categoryId resolves to "-".
type View struct {
	Product
	CategoryName string `json:"categoryName"`
}

// MissingCategoryName is the placeholder rendered when a product's category
// reference cannot be resolved.
const MissingCategoryName = "-"
