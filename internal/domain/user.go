package domain

import (
	"context"
	"time"
)

// User roles
const (
	RoleTalent = "talent"
	RoleAdmin  = "admin"
)

// TalentProfile holds the fields that only exist for talent users.
type TalentProfile struct {
	Location string   `json:"location,omitempty"`
	Skills   []string `json:"skills,omitempty"`
}

// User represents an account in the marketplace. Talent is non-nil exactly
// when Role == RoleTalent, so code reading talent-only fields has to go
// through the variant instead of guessing at optional columns.
type User struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	PasswordHash string         `json:"-"`
	Role         string         `json:"role"`
	Talent       *TalentProfile `json:"talent,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// IsTalent reports whether the user can apply to or be matched with jobs.
func (u *User) IsTalent() bool {
	return u.Role == RoleTalent
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Fetch(ctx context.Context, role string) ([]User, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*User, string, error)
	Login(ctx context.Context, email, password string) (*User, string, error)
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}

// RegisterInput carries validated registration data into the auth usecase.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Location string
	Skills   []string
}

type UserUsecase interface {
	ListUsers(ctx context.Context, role string) ([]User, error)
	ListTalents(ctx context.Context) ([]User, error)
}
