//go:build unit || e2e

package builder

import (
	"time"

	"service-broker/internal/domain/user"
	sqlc "service-broker/internal/infra/sqlc/generated"
	"service-broker/internal/usecase/queries"
	"service-broker/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	AgencyID     *uuid.UUID
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         string(user.RoleApplicant),
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, u.PasswordHash, role, u.AgencyID)
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	now := time.Now()
	var agencyID pgtype.UUID
	if u.AgencyID != nil {
		agencyID = pgtype.UUID{Bytes: *u.AgencyID, Valid: true}
	}

	return sqlc.Users{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		AgencyID:     agencyID,
		LastLogin:    pgtype.Timestamptz{},
		IsActive:     u.IsActive,
		CreatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       u.ID,
		Email:    u.Email,
		Role:     u.Role,
		AgencyID: u.AgencyID,
		IsActive: u.IsActive,
	}
}

func (u *UserBuilder) BuildActor() shared.Actor {
	return shared.Actor{UserID: u.ID, Role: user.Role(u.Role), AgencyID: u.AgencyID}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithAgencyID(agencyID *uuid.UUID) *UserBuilder {
	u.AgencyID = agencyID
	return u
}

func (u *UserBuilder) AsApplicant() *UserBuilder {
	u.Role = string(user.RoleApplicant)
	u.AgencyID = nil
	return u
}

// AsAgency makes the user staff of the given agency.
func (u *UserBuilder) AsAgency(agencyID uuid.UUID) *UserBuilder {
	u.Role = string(user.RoleAgency)
	u.AgencyID = &agencyID
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = string(user.RoleAdmin)
	u.AgencyID = nil
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
