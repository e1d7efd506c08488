package renamecurrency

import (
	"context"
	"errors"
	"exchanger/internal/core/domain/currency"
	e "exchanger/internal/core/domain/errors"
	"exchanger/internal/core/domain/logging"
	"exchanger/internal/core/services"
)

type Input struct {
	OldName string
	NewName string
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
	renamed, err := s.currencyRepository.Rename(ctx, input.OldName, input.NewName)
	if err != nil {
		if errors.Is(err, context.Canceled) ||
			errors.Is(err, currency.ErrCurrencyDoesNotExist) ||
			errors.Is(err, currency.ErrCurrencyAlreadyExists) {
			return result, err
		}
		s.log.Error(
			ctx,
			"Could not rename currency.",
			logging.Entry("oldName", input.OldName),
			logging.Entry("newName", input.NewName),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Currency renamed.",
		logging.Entry("currencyID", renamed.ID),
		logging.Entry("name", renamed.Name),
	)
	return Result{Currency: renamed}, nil
}
