package currency

import (
	"context"
	"errors"
	"exchanger/internal/core/domain/currency"
	"exchanger/internal/db"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const NAME_CONSTRAINT_NAME = "currencies_name_idx"

type PgxCurrencyRepository struct {
	db db.DBTX
}

func NewPgxRepository(db db.DBTX) *PgxCurrencyRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxCurrencyRepository{db: db}
}

func (r *PgxCurrencyRepository) Create(ctx context.Context, name string) (c currency.Currency, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO currencies (name) VALUES ($1) RETURNING id, name`,
		name,
	)
	c, err = scanCurrency(row)
	if err != nil {
		return c, decodeUniqueConstraintError(err)
	}
	return c, nil
}

func (r *PgxCurrencyRepository) List(ctx context.Context) ([]currency.Currency, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM currencies ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	currencies := make([]currency.Currency, 0)
	for rows.Next() {
		c, err := scanCurrency(rows)
		if err != nil {
			return nil, err
		}
		currencies = append(currencies, c)
	}
	return currencies, rows.Err()
}

func (r *PgxCurrencyRepository) Rename(ctx context.Context, oldName string, newName string) (c currency.Currency, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE currencies SET name = $2 WHERE name = $1 RETURNING id, name`,
		oldName,
		newName,
	)
	c, err = scanCurrency(row)
	if err != nil {
		return c, decodeUniqueConstraintError(err)
	}
	return c, nil
}

func (r *PgxCurrencyRepository) Delete(ctx context.Context, name string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM currencies WHERE name = $1`, name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return currency.ErrCurrencyDoesNotExist
	}
	return nil
}

func scanCurrency(row pgx.Row) (c currency.Currency, err error) {
	var id int64
	var name string
	err = row.Scan(&id, &name)
	if errors.Is(err, pgx.ErrNoRows) {
		return c, currency.ErrCurrencyDoesNotExist
	}
	if err != nil {
		return c, err
	}
	return currency.Currency{ID: currency.ID(id), Name: name}, nil
}

func decodeUniqueConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) &&
		pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE &&
		pgErr.ConstraintName == NAME_CONSTRAINT_NAME {
		return currency.ErrCurrencyAlreadyExists
	}
	return err
}
