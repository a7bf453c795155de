package interaction

import "github.com/naruebet/storefront-admin/internal/datastore"

// Reaction types. A user holds at most one reaction per product, of exactly
// one of these types.
const (
	TypeLike    = "like"
	TypeDislike = "dislike"
)

type Interaction struct {
	ID        datastore.ID `json:"id,omitempty"`
	ProductID datastore.ID `json:"productId"`
	UserID    datastore.ID `json:"userId"`
	Type      string       `json:"type"`
}

// ValidType reports whether t is a known reaction type.
func ValidType(t string) bool {
	return t == TypeLike || t == TypeDislike
}
