package user

import (
	"time"

	"service-broker/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrAgencyRequired = errs.Wrap(errs.ErrValidation, "agency users must belong to an agency")

// User is the login principal. Agency staff carry the agency they act for.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	agencyID     *uuid.UUID
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, passwordHash string, role Role, agencyID *uuid.UUID) (*User, error) {
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	if role == RoleAgency && agencyID == nil {
		return nil, ErrAgencyRequired
	}
	if role != RoleAgency {
		agencyID = nil
	}
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		agencyID:     agencyID,
		isActive:     true,
	}, nil
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) AgencyID() *uuid.UUID  { return u.agencyID }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
