package currency

import "errors"

var (
	ErrCurrencyDoesNotExist  = errors.New("currency does not exist")
	ErrCurrencyAlreadyExists = errors.New("currency already exists")
)
