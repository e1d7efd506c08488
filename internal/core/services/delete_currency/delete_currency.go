package deletecurrency

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

type Result struct{}

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
	err = s.currencyRepository.Delete(ctx, input.Name)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, currency.ErrCurrencyDoesNotExist) {
			return result, err
		}
		s.log.Error(
			ctx,
			"Could not delete currency.",
			logging.Entry("name", input.Name),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Currency deleted.",
		logging.Entry("name", input.Name),
	)
	return result, nil
}
