// Package auth provides authentication domain logic.
package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"eventum/internal/core/apperror"
	"eventum/internal/core/entity"
	"eventum/internal/listing"
)

// Roles in ascending order of privilege.
const (
	RoleViewer  = "viewer"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

// User represents an application user.
type User struct {
	entity.Base

	Email        string     `db:"email" json:"email"`
	Name         string     `db:"name" json:"name"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Role         string     `db:"role" json:"role"`
	Active       bool       `db:"active" json:"active"`
	FailedLogins int        `db:"failed_logins" json:"-"`
	LockedUntil  *time.Time `db:"locked_until" json:"-"`
	LastLoginAt  *time.Time `db:"last_login_at" json:"lastLoginAt,omitempty"`
}

// NewUser creates an active user with the viewer role.
func NewUser(email, name, passwordHash string) *User {
	return &User{
		Base:         entity.NewBase(),
		Email:        strings.ToLower(email),
		Name:         name,
		PasswordHash: passwordHash,
		Role:         RoleViewer,
		Active:       true,
	}
}

// CanLogin checks whether the account may authenticate right now.
func (u *User) CanLogin() error {
	if !u.Active {
		return apperror.NewForbidden("account is disabled")
	}
	if u.LockedUntil != nil && u.LockedUntil.After(time.Now()) {
		return apperror.NewForbidden(
			fmt.Sprintf("account is locked until %s", u.LockedUntil.Format(time.RFC3339)))
	}
	return nil
}

// RecordFailedLogin increments the failure counter and locks the account
// once the limit is reached.
func (u *User) RecordFailedLogin(maxAttempts int, lockFor time.Duration) {
	u.FailedLogins++
	if u.FailedLogins >= maxAttempts {
		until := time.Now().Add(lockFor)
		u.LockedUntil = &until
	}
}

// RecordSuccessfulLogin resets the failure counter.
func (u *User) RecordSuccessfulLogin() {
	now := time.Now().UTC()
	u.FailedLogins = 0
	u.LockedUntil = nil
	u.LastLoginAt = &now
}

// Validate implements entity.Validatable.
func (u *User) Validate(ctx context.Context) error {
	if u.Email == "" {
		return apperror.NewValidation("email is required").WithDetail("field", "email")
	}
	if !strings.Contains(u.Email, "@") {
		return apperror.NewValidation("email is not a valid address").WithDetail("field", "email")
	}
	switch u.Role {
	case RoleViewer, RoleManager, RoleAdmin:
	default:
		return apperror.NewValidation("unknown role").WithDetail("field", "role")
	}
	return nil
}

// Descriptor configures the list pipeline for users.
func Descriptor() listing.Descriptor[*User] {
	return listing.Descriptor[*User]{
		SearchFields: []func(*User) string{
			func(u *User) string { return u.Name },
			func(u *User) string { return u.Email },
		},
		FilterFields: map[string]func(*User) string{
			"role": func(u *User) string { return u.Role },
		},
		Stats: []listing.StatSpec[*User]{
			listing.CountStat[*User]("total", nil),
		},
	}
}

// Credentials are login inputs.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest are the inputs for creating a user.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}
