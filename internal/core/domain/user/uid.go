package user

import (
	"encoding/base64"
	"strconv"
)

// EncodeID encodes a user ID for use in password reset links.
func EncodeID(id ID) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strconv.FormatInt(int64(id), 10)))
}

// DecodeID is the inverse of EncodeID.
func DecodeID(encoded string) (ID, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return 0, ErrInvalidResetLink
	}
	id, err := strconv.ParseInt(string(decoded), 10, 64)
	if err != nil {
		return 0, ErrInvalidResetLink
	}
	return ID(id), nil
}
