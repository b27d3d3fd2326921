package domain

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleOrganizer Role = "organizer"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleOrganizer, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) Principal() *Principal {
	return &Principal{ID: u.ID, Role: u.Role}
}

// Principal is the authenticated caller. A nil *Principal is an anonymous caller.
type Principal struct {
	ID   string
	Role Role
}

func (p *Principal) Is(role Role) bool {
	return p != nil && p.Role == role
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     Role
}

type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *User
}
