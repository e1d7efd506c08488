package resetpassword

import (
	"context"
	"errors"
	e "exchanger/internal/core/domain/errors"
	"exchanger/internal/core/domain/logging"
	"exchanger/internal/core/domain/user"
	"exchanger/internal/core/services"
	"unicode/utf8"
)

const minPasswordLen = 8

type Input struct {
	EncodedUserID        string
	Token                user.PasswordResetToken
	NewPassword          user.RawPassword
	PasswordConfirmation user.RawPassword
}

type Result struct{}

type service struct {
	log              logging.Logger
	userRepository   user.UserRepository
	passwordResetter user.PasswordResetter
	passwordHasher   user.PasswordHasher
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	passwordResetter user.PasswordResetter,
	passwordHasher user.PasswordHasher,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if passwordResetter == nil {
		panic(e.NewNilArgumentError("passwordResetter"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	return &service{
		log:              log,
		userRepository:   userRepository,
		passwordResetter: passwordResetter,
		passwordHasher:   passwordHasher,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	id, err := user.DecodeID(input.EncodedUserID)
	if err != nil {
		return result, err
	}
	u, err := s.userRepository.GetByID(ctx, id)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return result, user.ErrInvalidResetLink
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for password reset.",
			logging.Entry("userID", id),
			logging.Entry("err", err),
		)
		return result, err
	}
	if !s.passwordResetter.ValidateToken(u, input.Token) {
		return result, user.ErrInvalidResetToken
	}
	if input.NewPassword != input.PasswordConfirmation {
		return result, user.ErrPasswordsDoNotMatch
	}
	if utf8.RuneCountInString(string(input.NewPassword)) < minPasswordLen {
		return result, user.ErrPasswordTooShort
	}

	hash, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not hash new password.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}
	if err := s.userRepository.SetPassword(ctx, u.ID, hash); err != nil {
		if errors.Is(err, context.Canceled) {
			return result, err
		}
		s.log.Error(
			ctx,
			"Could not set new password.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Password successfully reset.",
		logging.Entry("userID", u.ID),
	)
	return result, nil
}
