package user

import "context"

// PasswordResetToken is derived from the user state and the current time
// bucket. It is recomputed and compared on every verification, never stored.
type PasswordResetToken string

type PasswordResetLink string

type PasswordResetter interface {
	GenerateToken(u User) PasswordResetToken
	ValidateToken(u User, token PasswordResetToken) bool
}

type PasswordResetLinkSender interface {
	SendResetLink(ctx context.Context, u User, link PasswordResetLink) error
}
