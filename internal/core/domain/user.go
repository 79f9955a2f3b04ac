package domain

import "time"

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// User models an authenticated actor in the system.
type User struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	Email          string    `json:"email" bson:"email"`
	PasswordHash   string    `json:"-" bson:"password_hash"`
	Roles          []string  `json:"roles" bson:"roles"`
	EmailConfirmed bool      `json:"isEmailConfirmed" bson:"email_confirmed"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}

// HasRole reports whether the user carries the given role claim.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
