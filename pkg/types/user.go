package types

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleVolunteer    Role = "volunteer"
	RoleOrganization Role = "organization"
)

func (r Role) Valid() bool {
	return r == RoleVolunteer || r == RoleOrganization
}

type User struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Role         Role     `json:"role"`
	Skills       []string `json:"skills"`
	Location     string   `json:"location"`
	Availability string   `json:"availability"`
}

// NewUser carries the registration fields; the id is assigned on register.
type NewUser struct {
	Name         string   `form:"name"`
	Email        string   `form:"email"`
	Role         Role     `form:"role"`
	Skills       []string `form:"skills"`
	Location     string   `form:"location"`
	Availability string   `form:"availability"`
}

func (u NewUser) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(u.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if !u.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, u.Role)
	}
	return nil
}

func (u User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("user is missing id")
	}
	if u.Email == "" {
		return fmt.Errorf("user %s is missing email", u.ID)
	}
	if !u.Role.Valid() {
		return fmt.Errorf("user %s has unknown role %q", u.ID, u.Role)
	}
	return nil
}
