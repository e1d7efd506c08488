package user

import "errors"

var (
	ErrUserDoesNotExist      = errors.New("user does not exist")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrPhoneAlreadyExists    = errors.New("phone already exists")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrNotSuperuser          = errors.New("user is not a superuser")

	ErrInvalidResetLink    = errors.New("invalid password reset link")
	ErrInvalidResetToken   = errors.New("invalid or expired password reset token")
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")
	ErrPasswordTooShort    = errors.New("password is too short")
	ErrResetDeliveryFailed = errors.New("could not deliver password reset link")

	ErrInvalidAccessToken = errors.New("invalid access token")
)
