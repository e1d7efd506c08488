package currency

import (
	"context"
	"fmt"
	"sync"
)

type FakeCurrencyRepository struct {
	Currencies  []Currency
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeCurrencyRepository() *FakeCurrencyRepository {
	return &FakeCurrencyRepository{Currencies: make([]Currency, 0, 10)}
}

func (r *FakeCurrencyRepository) Create(ctx context.Context, name string) (c Currency, err error) {
	if r.ReturnError {
		return c, fmt.Errorf("could not create currency %s", name)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, existing := range r.Currencies {
		if existing.Name == name {
			return c, ErrCurrencyAlreadyExists
		}
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	c = Currency{ID: maxID + 1, Name: name}
	r.Currencies = append(r.Currencies, c)
	return c, nil
}

func (r *FakeCurrencyRepository) List(ctx context.Context) ([]Currency, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not list currencies")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	currencies := make([]Currency, len(r.Currencies))
	copy(currencies, r.Currencies)
	return currencies, nil
}

func (r *FakeCurrencyRepository) Rename(ctx context.Context, oldName string, newName string) (c Currency, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Currencies {
		if r.Currencies[ix].Name == oldName {
			r.Currencies[ix].Name = newName
			return r.Currencies[ix], nil
		}
	}
	return c, ErrCurrencyDoesNotExist
}

func (r *FakeCurrencyRepository) Delete(ctx context.Context, name string) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Currencies {
		if r.Currencies[ix].Name == name {
			r.Currencies = append(r.Currencies[:ix], r.Currencies[ix+1:]...)
			return nil
		}
	}
	return ErrCurrencyDoesNotExist
}
