package listcurrencies

import (
	"context"
	"errors"
	"exchanger/internal/core/domain/currency"
	e "exchanger/internal/core/domain/errors"
	"exchanger/internal/core/domain/logging"
	"exchanger/internal/core/services"
)

type Input struct{}

type Result struct {
	Currencies []currency.Currency
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
	currencies, err := s.currencyRepository.List(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return result, err
		}
		s.log.Error(ctx, "Could not list currencies.", logging.Entry("err", err))
		return result, err
	}
	return Result{Currencies: currencies}, nil
}
