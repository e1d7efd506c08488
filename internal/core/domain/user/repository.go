package user

import (
	"context"
	c "exchanger/internal/core/domain/common"
	"time"
)

type CreateUserInput struct {
	Username     Username
	Email        c.Email
	Phone        c.Phone
	PasswordHash PasswordHash
	IsSuperuser  bool
	CreatedAt    time.Time
}

// UpdateUserInput is keyed by the current username; absent fields keep their
// stored values.
type UpdateUserInput struct {
	Username     Username
	NewUsername  c.Optional[Username]
	Email        c.Optional[c.Email]
	PasswordHash c.Optional[PasswordHash]
	IsSuperuser  c.Optional[bool]
}

type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByID(ctx context.Context, id ID) (User, error)
	GetByUsername(ctx context.Context, username Username) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	GetByPhone(ctx context.Context, phone c.Phone) (User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, input UpdateUserInput) (User, error)
	SetPassword(ctx context.Context, id ID, password PasswordHash) error
	Delete(ctx context.Context, username Username) error
}
