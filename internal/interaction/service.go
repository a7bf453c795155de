package interaction

import (
	"errors"

	"github.com/naruebet/storefront-admin/internal/datastore"
)

var ErrBadType = errors.New("reaction type must be like or dislike")

// Toggle outcomes.
const (
	ActionNone     = "none"
	ActionCreated  = "created"
	ActionRemoved  = "removed"
	ActionReplaced = "replaced"
)

// Result describes what a toggle did to the (user, product) pair. Current is
// nil when the pair ends up with no reaction.
type Result struct {
	Action  string       `json:"action"`
	Current *Interaction `json:"current,omitempty"`
}

// Counts are the reaction totals for one product, plus the viewer's own
// reaction type when the viewer is known.
type Counts struct {
	Likes    int    `json:"likes"`
	Dislikes int    `json:"dislikes"`
	UserType string `json:"userType,omitempty"`
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Toggle flips a user's reaction on a product: no reaction becomes the
// requested one, the same reaction is removed, the opposite one is replaced.
// After it returns without error the pair holds at most one interaction.
func (s *Service) Toggle(userID, productID datastore.ID, requested string) (Result, error) {
	if !ValidType(requested) {
		return Result{}, ErrBadType
	}
	// no session, no reaction: anonymous clicks never reach the store
	if userID.IsZero() {
		return Result{Action: ActionNone}, nil
	}

	existing, err := s.repo.ForPair(userID, productID)
	if err != nil {
		return Result{}, err
	}

	if len(existing) == 0 {
		created, err := s.repo.Create(Interaction{ProductID: productID, UserID: userID, Type: requested})
		if err != nil {
			return Result{}, err
		}
		return Result{Action: ActionCreated, Current: &created}, nil
	}

	// Clear the pair first. Concurrent toggles can leave more than one row
	// behind; deleting them all restores the one-per-pair invariant.
	same := existing[0].Type == requested
	for _, it := range existing {
		if err := s.repo.Delete(it.ID); err != nil {
			return Result{}, err
		}
	}

	if same {
		return Result{Action: ActionRemoved}, nil
	}

	// Delete-then-create stands in for an update; the store has no partial
	// update. A failure here leaves the pair with no reaction at all, which
	// is the accepted degraded state.
	created, err := s.repo.Create(Interaction{ProductID: productID, UserID: userID, Type: requested})
	if err != nil {
		return Result{}, err
	}
	return Result{Action: ActionReplaced, Current: &created}, nil
}

// CountsFor tallies likes and dislikes for a product over the full
// interaction list, and picks out the viewer's own reaction when userID is
// set.
func (s *Service) CountsFor(productID, userID datastore.ID) (Counts, error) {
	all, err := s.repo.List()
	if err != nil {
		return Counts{}, err
	}

	var counts Counts
	for _, it := range all {
		if it.ProductID != productID {
			continue
		}
		switch it.Type {
		case TypeLike:
			counts.Likes++
		case TypeDislike:
			counts.Dislikes++
		}
		if !userID.IsZero() && it.UserID == userID {
			counts.UserType = it.Type
		}
	}
	return counts, nil
}
