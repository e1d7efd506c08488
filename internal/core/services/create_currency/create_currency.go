package createcurrency

import (
	"context"
	"errors"
	"exchanger/internal/core/domain/currency"
	e "exchanger/internal/core/domain/errors"
	"exchanger/internal/core/domain/logging"
	"exchanger/internal/core/services"
)

type Input struct {
	Name string
}

type Result struct {
	Currency currency.Currency
}

type service struct {
	log                logging.Logger
	currencyRepository currency.CurrencyRepository
}

func New(
	log logging.Logger,
	currencyRepository currency.CurrencyRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if currencyRepository == nil {
		panic(e.NewNilArgumentError("currencyRepository"))
	}
	return &service{log: log, currencyRepository: currencyRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	created, err := s.currencyRepository.Create(ctx, input.Name)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, currency.ErrCurrencyAlreadyExists) {
			return result, err
		}
		s.log.Error(
			ctx,
			"Could not create currency.",
			logging.Entry("name", input.Name),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Currency created.",
		logging.Entry("currencyID", created.ID),
		logging.Entry("name", created.Name),
	)
	return Result{Currency: created}, nil
}
