package user

type PasswordHasher interface {
	HashPassword(password RawPassword) (PasswordHash, error)
	ValidatePassword(password RawPassword, hash PasswordHash) bool
	// IsHash reports whether the value is already a hasher output, so a
	// record round-trip never hashes twice.
	IsHash(value string) bool
}
