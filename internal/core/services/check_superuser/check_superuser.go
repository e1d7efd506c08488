package checksuperuser

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
}

type Result struct {
	IsSuperuser bool
}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	return &service{log: log, userRepository: userRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByUsername(ctx, input.Username)
	if errors.Is(err, context.Canceled) || errors.Is(err, user.ErrUserDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for superuser check.",
			logging.Entry("username", input.Username),
			logging.Entry("err", err),
		)
		return result, err
	}
	return Result{IsSuperuser: u.IsSuperuser}, nil
}
