package clearevents

import (
	"context"
	"errors"
	e "exchanger/internal/core/domain/errors"
	"exchanger/internal/core/domain/event"
	"exchanger/internal/core/domain/logging"
	"exchanger/internal/core/domain/user"
	"exchanger/internal/core/services"
)

// Input carries the superuser credentials that must be re-checked
// before the event log is wiped.
type Input struct {
	Username user.Username
	Password user.RawPassword
}

type Result struct{}

type service struct {
	log             logging.Logger
	userRepository  user.UserRepository
	passwordHasher  user.PasswordHasher
	eventRepository event.EventRepository
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	passwordHasher user.PasswordHasher,
	eventRepository event.EventRepository,
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
	if eventRepository == nil {
		panic(e.NewNilArgumentError("eventRepository"))
	}
	return &service{
		log:             log,
		userRepository:  userRepository,
		passwordHasher:  passwordHasher,
		eventRepository: eventRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByUsername(ctx, input.Username)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return result, user.ErrInvalidCredentials
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for clearing events.",
			logging.Entry("username", input.Username),
			logging.Entry("err", err),
		)
		return result, err
	}
	if !u.IsSuperuser {
		return result, user.ErrNotSuperuser
	}
	if !s.passwordHasher.ValidatePassword(input.Password, u.PasswordHash) {
		return result, user.ErrInvalidCredentials
	}

	if err := s.eventRepository.DeleteAll(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return result, err
		}
		s.log.Error(
			ctx,
			"Could not delete all events.",
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"All events deleted.",
		logging.Entry("userID", u.ID),
	)
	return result, nil
}
