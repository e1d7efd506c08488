package authenticate

import (
	"context"
	"errors"
	e "exchanger/internal/core/domain/errors"
	"exchanger/internal/core/domain/logging"
	"exchanger/internal/core/domain/user"
	"exchanger/internal/core/services"
)

type Input struct {
	Username user.Username
	Password user.RawPassword
}

func (i Input) GetRateLimitKey() string {
	return "authenticate::" + string(i.Username)
}

type Result struct {
	TokenPair user.TokenPair
}

type service struct {
	log             logging.Logger
	userRepository  user.UserRepository
	passwordHasher  user.PasswordHasher
	tokenPairIssuer user.TokenPairIssuer
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	passwordHasher user.PasswordHasher,
	tokenPairIssuer user.TokenPairIssuer,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if tokenPairIssuer == nil {
		panic(e.NewNilArgumentError("tokenPairIssuer"))
	}
	return &service{
		log:             log,
		userRepository:  userRepository,
		passwordHasher:  passwordHasher,
		tokenPairIssuer: tokenPairIssuer,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByUsername(ctx, input.Username)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for authentication.",
			logging.Entry("username", input.Username),
			logging.Entry("err", err),
		)
		return result, err
	}
	if !s.passwordHasher.ValidatePassword(input.Password, u.PasswordHash) {
		return result, user.ErrInvalidCredentials
	}

	pair, err := s.tokenPairIssuer.IssueTokenPair(u)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not issue token pair for user.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"User successfully authenticated, token pair issued.",
		logging.Entry("userID", u.ID),
	)
	return Result{TokenPair: pair}, nil
}
