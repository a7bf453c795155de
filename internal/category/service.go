package category

import (
	"errors"
	"fmt"
	"strings"

	"github.com/naruebet/storefront-admin/internal/datastore"
)

var ErrInvalid = errors.New("invalid category")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Category, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id datastore.ID) (Category, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(c Category) (Category, error) {
	if err := validate(c); err != nil {
		return Category{}, err
	}
	c.ID = ""
	return s.repo.Create(c)
}

func (s *Service) Update(id datastore.ID, c Category) (Category, error) {
	if err := validate(c); err != nil {
		return Category{}, err
	}
	return s.repo.Update(id, c)
}

// Delete removes the category. Products still pointing at it keep their
// categoryId and render a placeholder name; no cascading happens here.
func (s *Service) Delete(id datastore.ID) error {
	return s.repo.Delete(id)
}

func validate(c Category) error {
	if len(strings.TrimSpace(c.Name)) < 2 {
		return fmt.Errorf("%w: name must be at least 2 characters", ErrInvalid)
	}
	return nil
}
