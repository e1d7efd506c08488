package createevent

import (
	"context"
	"errors"
	e "exchanger/internal/core/domain/errors"
	"exchanger/internal/core/domain/event"
	"exchanger/internal/core/domain/logging"
	"exchanger/internal/core/services"
	"math"

	"github.com/golang-module/carbon/v2"
)

// DateLayout is the wire format for event dates, day and month only.
const DateLayout = "02.01"

type Input struct {
	Type     string
	Currency string
	Amount   float64
	Date     string
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
	if input.Date == "" {
		return result, event.ErrInvalidEventDate
	}
	if parsed := carbon.ParseByLayout(input.Date, DateLayout); parsed.Error != nil {
		return result, event.ErrInvalidEventDate
	}

	created, err := s.eventRepository.Create(ctx, event.CreateEventInput{
		Type:     input.Type,
		Currency: input.Currency,
		Amount:   input.Amount,
		Date:     input.Date,
		Rate:     input.Rate,
		Total:    RoundTotal(input.Amount * input.Rate),
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return result, err
		}
		s.log.Error(
			ctx,
			"Could not create event.",
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Event created.",
		logging.Entry("eventID", created.ID),
	)
	return Result{Event: created}, nil
}

// RoundTotal rounds a derived total to two decimal places, the same
// precision the totals are stored with.
func RoundTotal(total float64) float64 {
	return math.Round(total*100) / 100
}
