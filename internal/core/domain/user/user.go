package user

import (
	c "exchanger/internal/core/domain/common"
	"time"
)

type ID int64

type Username string

// PasswordHash is always the output of the password hasher, never a raw
// value. Masked in logs.
type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type User struct {
	ID           ID
	Username     Username
	Email        c.Email
	Phone        c.Phone
	PasswordHash PasswordHash
	IsSuperuser  bool
	CreatedAt    time.Time
}
