package deleteevent

import (
	"context"
	"errors"
	e "exchanger/internal/core/domain/errors"
	"exchanger/internal/core/domain/event"
	"exchanger/internal/core/domain/logging"
	"exchanger/internal/core/services"
)

type Input struct {
	ID event.ID
}

type Result struct{}

type service struct {
	log             logging.Logger
	eventRepository event.EventRepository
}

func New(
	log logging.Logger,
	eventRepository event.EventRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if eventRepository == nil {
		panic(e.NewNilArgumentError("eventRepository"))
	}
	return &service{log: log, eventRepository: eventRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	err = s.eventRepository.Delete(ctx, input.ID)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, event.ErrEventDoesNotExist) {
			return result, err
		}
		s.log.Error(
			ctx,
			"Could not delete event.",
			logging.Entry("eventID", input.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Event deleted.",
		logging.Entry("eventID", input.ID),
	)
	return result, nil
}
