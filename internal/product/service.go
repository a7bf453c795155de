package product

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/naruebet/storefront-admin/internal/category"
	"github.com/naruebet/storefront-admin/internal/datastore"
)

var ErrInvalid = errors.New("invalid product")

type Service struct {
	repo       Repository
	categories category.Repository
}

func NewService(repo Repository, categories category.Repository) *Service {
	return &Service{repo: repo, categories: categories}
}

// List returns products with their category names resolved, optionally
// restricted to one category. A failed category fetch degrades to the
// placeholder name rather than failing the listing.
func (s *Service) List(categoryID datastore.ID) ([]View, error) {
	prods, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	names := map[datastore.ID]string{}
	if cats, err := s.categories.List(); err == nil {
		for _, c := range cats {
			names[c.ID] = c.Name
		}
	}

	out := make([]View, 0, len(prods))
	for _, p := range prods {
		if !categoryID.IsZero() && p.CategoryID != categoryID {
			continue
		}
		out = append(out, View{Product: p, CategoryName: resolveName(names, p.CategoryID)})
	}
	return out, nil
}

func (s *Service) GetByID(id datastore.ID) (View, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return View{}, err
	}

	name := MissingCategoryName
	if !p.CategoryID.IsZero() {
		if c, err := s.categories.GetByID(p.CategoryID); err == nil {
			name = c.Name
		}
	}
	return View{Product: p, CategoryName: name}, nil
}

func (s *Service) Create(p Product) (Product, error) {
	if err := validate(p); err != nil {
		return Product{}, err
	}
	p.ID = ""
	p.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.repo.Create(p)
}

func (s *Service) Update(id datastore.ID, p Product) (Product, error) {
	if err := validate(p); err != nil {
		return Product{}, err
	}
	return s.repo.Update(id, p)
}

func (s *Service) Delete(id datastore.ID) error {
	return s.repo.Delete(id)
}

func validate(p Product) error {
	if len(strings.TrimSpace(p.Name)) < 2 {
		return fmt.Errorf("%w: name must be at least 2 characters", ErrInvalid)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalid)
	}
	if p.CategoryID.IsZero() {
		return fmt.Errorf("%w: categoryId is required", ErrInvalid)
	}
	return nil
}

func resolveName(names map[datastore.ID]string, id datastore.ID) string {
	if id.IsZero() {
		return MissingCategoryName
	}
	if name, ok := names[id]; ok {
		return name
	}
	return MissingCategoryName
}
