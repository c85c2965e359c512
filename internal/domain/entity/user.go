package entity

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

func IsValidRole(r string) bool {
	return r == RoleUser || r == RoleAdmin
}

// User mirrors the users/{uid} document, keyed by the auth identity.
type User struct {
	ID       string `json:"id" firestore:"id"`
	Email    string `json:"email" firestore:"email"`
	Name     string `json:"name" firestore:"name"`
	Role     string `json:"role" firestore:"role"`
	PhotoURL string `json:"photo_url,omitempty" firestore:"photoURL,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
