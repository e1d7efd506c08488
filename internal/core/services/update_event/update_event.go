package updateevent

import (
	"context"
	"errors"
	e "exchanger/internal/core/domain/errors"
	"exchanger/internal/core/domain/event"
	"exchanger/internal/core/domain/logging"
	"exchanger/internal/core/services"
	createevent "exchanger/internal/core/services/create_event"
)

// Input does not carry the date, updates keep the original one.
type Input struct {
	ID       event.ID
	Type     string
	Currency string
	Amount   float64
	Rate     float64
}

type Result struct {
	Event event.Event
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
	updated, err := s.eventRepository.Update(ctx, event.UpdateEventInput{
		ID:       input.ID,
		Type:     input.Type,
		Currency: input.Currency,
		Amount:   input.Amount,
		Rate:     input.Rate,
		Total:    createevent.RoundTotal(input.Amount * input.Rate),
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, event.ErrEventDoesNotExist) {
			return result, err
		}
		s.log.Error(
			ctx,
			"Could not update event.",
			logging.Entry("eventID", input.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Event updated.",
		logging.Entry("eventID", updated.ID),
	)
	return Result{Event: updated}, nil
}
