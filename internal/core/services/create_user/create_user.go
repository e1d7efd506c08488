package createuser

import (
	"context"
	"errors"
	c "exchanger/internal/core/domain/common"
	e "exchanger/internal/core/domain/errors"
	"exchanger/internal/core/domain/logging"
	"exchanger/internal/core/domain/user"
	"exchanger/internal/core/services"
	"time"
)

type Input struct {
	Username    user.Username
	Email       c.Email
	Phone       c.Phone
	Password    user.RawPassword
	IsSuperuser bool
}

type Result struct {
	User user.User
}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
	passwordHasher user.PasswordHasher
	now            func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	passwordHasher user.PasswordHasher,
	now func() time.Time,
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
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
		passwordHasher: passwordHasher,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	hash, err := s.passwordHasher.HashPassword(input.Password)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not hash password for new user.",
			logging.Entry("username", input.Username),
			logging.Entry("err", err),
		)
		return result, err
	}

	created, err := s.userRepository.Create(ctx, user.CreateUserInput{
		Username:     input.Username,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: hash,
		IsSuperuser:  input.IsSuperuser,
		CreatedAt:    s.now(),
	})
	if err != nil {
		if errors.Is(err, context.Canceled) ||
			errors.Is(err, user.ErrUsernameAlreadyExists) ||
			errors.Is(err, user.ErrEmailAlreadyExists) ||
			errors.Is(err, user.ErrPhoneAlreadyExists) {
			return result, err
		}
		s.log.Error(
			ctx,
			"Could not create user.",
			logging.Entry("username", input.Username),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"User created.",
		logging.Entry("userID", created.ID),
	)
	return Result{User: created}, nil
}
