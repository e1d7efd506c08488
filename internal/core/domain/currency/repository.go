package currency

import "context"

type CurrencyRepository interface {
	Create(ctx context.Context, name string) (Currency, error)
	List(ctx context.Context) ([]Currency, error)
	Rename(ctx context.Context, oldName string, newName string) (Currency, error)
	Delete(ctx context.Context, name string) error
}
