package listevents

import (
	"context"
	"errors"
	e "exchanger/internal/core/domain/errors"
	"exchanger/internal/core/domain/event"
	"exchanger/internal/core/domain/logging"
	"exchanger/internal/core/services"
)

type Input struct{}

type Result struct {
	Events []event.Event
}

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
	events, err := s.eventRepository.List(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return result, err
		}
		s.log.Error(ctx, "Could not list events.", logging.Entry("err", err))
		return result, err
	}
	return Result{Events: events}, nil
}
