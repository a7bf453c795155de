package user

import "github.com/naruebet/storefront-admin/internal/datastore"

// Roles a user record may carry. Some seeded records use "Admin" with a
// capital A; role checks must treat that as admin too.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID       datastore.ID `json:"id,omitempty"`
	Username string       `json:"username"`
	Password string       `json:"password,omitempty"`
	FullName string       `json:"fullName"`
	Email    string       `json:"email"`
	Phone    string       `json:"phone"`
	Address  string       `json:"address"`
	Role     string       `json:"role"`
}

func sanitizeUser(u User) User {
	u.Password = ""
	return u
}
