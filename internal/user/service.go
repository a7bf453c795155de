package user

import "github.com/naruebet/storefront-admin/internal/datastore"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]User, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id datastore.ID) (User, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(u User) (User, error) {
	u.ID = ""
	return s.repo.Create(u)
}

func (s *Service) Update(id datastore.ID, u User) (User, error) {
	return s.repo.Update(id, u)
}

func (s *Service) Delete(id datastore.ID) error {
	return s.repo.Delete(id)
}

// Authenticate runs the store's filtered lookup on username and password.
// Several rows can match; the first one wins, uniqueness is only ever
// enforced by the registration pre-check.
func (s *Service) Authenticate(username, password string) (User, error) {
	matches, err := s.repo.FindByCredentials(username, password)
	if err != nil {
		return User{}, err
	}
	if len(matches) == 0 {
		return User{}, ErrInvalidCredentials
	}
	return matches[0], nil
}

// Register creates a new account. The username is pre-checked against the
// full users list; on a hit no create call reaches the store. New accounts
// always get the plain user role, whatever the payload asked for.
func (s *Service) Register(u User) (User, error) {
	existing, err := s.repo.List()
	if err != nil {
		return User{}, err
	}
	for _, e := range existing {
		if e.Username == u.Username {
			return User{}, ErrUsernameTaken
		}
	}

	u.ID = ""
	u.Role = RoleUser
	return s.repo.Create(u)
}
