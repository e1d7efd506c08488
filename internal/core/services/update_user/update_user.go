package updateuser

import (
	"context"
	"errors"
	c "exchanger/internal/core/domain/common"
	e "exchanger/internal/core/domain/errors"
	"exchanger/internal/core/domain/logging"
	"exchanger/internal/core/domain/user"
	"exchanger/internal/core/services"
)

type Input struct {
	Username    user.Username
	NewUsername user.Username
	Email       c.Email
	IsSuperuser bool
	Password    c.Optional[string]
}

type Result struct {
	User user.User
}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
	passwordHasher user.PasswordHasher
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	passwordHasher user.PasswordHasher,
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
	return &service{
		log:            log,
		userRepository: userRepository,
		passwordHasher: passwordHasher,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	update := user.UpdateUserInput{
		Username:    input.Username,
		NewUsername: c.NewOptional(input.NewUsername, true),
		Email:       c.NewOptional(input.Email, true),
		IsSuperuser: c.NewOptional(input.IsSuperuser, true),
	}
	if input.Password.IsPresent {
		// Clients sometimes echo back the stored hash instead of a new
		// password, keep it as is in that case.
		if s.passwordHasher.IsHash(input.Password.Value) {
			update.PasswordHash = c.NewOptional(user.PasswordHash(input.Password.Value), true)
		} else {
			hash, err := s.passwordHasher.HashPassword(user.RawPassword(input.Password.Value))
			if err != nil {
				s.log.Error(
					ctx,
					"Could not hash new password for user.",
					logging.Entry("username", input.Username),
					logging.Entry("err", err),
				)
				return result, err
			}
			update.PasswordHash = c.NewOptional(hash, true)
		}
	}

	updated, err := s.userRepository.Update(ctx, update)
	if err != nil {
		if errors.Is(err, context.Canceled) ||
			errors.Is(err, user.ErrUserDoesNotExist) ||
			errors.Is(err, user.ErrUsernameAlreadyExists) ||
			errors.Is(err, user.ErrEmailAlreadyExists) {
			return result, err
		}
		s.log.Error(
			ctx,
			"Could not update user.",
			logging.Entry("username", input.Username),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"User updated.",
		logging.Entry("userID", updated.ID),
	)
	return Result{User: updated}, nil
}
