package event

import (
	"context"
	"errors"
	"exchanger/internal/core/domain/event"
	"exchanger/internal/db"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

type PgxEventRepository struct {
	db db.DBTX
}

func NewPgxRepository(db db.DBTX) *PgxEventRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxEventRepository{db: db}
}

const eventColumns = "id, type, currency, amount, date, rate, total"

func (r *PgxEventRepository) Create(ctx context.Context, input event.CreateEventInput) (event.Event, error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO events (type, currency, amount, date, rate, total)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+eventColumns,
		input.Type,
		input.Currency,
		input.Amount,
		input.Date,
		input.Rate,
		input.Total,
	)
	return scanEvent(row)
}

func (r *PgxEventRepository) List(ctx context.Context) ([]event.Event, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+eventColumns+` FROM events ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]event.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *PgxEventRepository) Update(ctx context.Context, input event.UpdateEventInput) (event.Event, error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE events
		 SET type = $2, currency = $3, amount = $4, rate = $5, total = $6
		 WHERE id = $1
		 RETURNING `+eventColumns,
		int64(input.ID),
		input.Type,
		input.Currency,
		input.Amount,
		input.Rate,
		input.Total,
	)
	return scanEvent(row)
}

func (r *PgxEventRepository) Delete(ctx context.Context, id event.ID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return event.ErrEventDoesNotExist
	}
	return nil
}

func (r *PgxEventRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM events`)
	return err
}

func scanEvent(row pgx.Row) (e event.Event, err error) {
	var (
		id                  int64
		amount, rate, total pgtype.Numeric
	)
	err = row.Scan(&id, &e.Type, &e.Currency, &amount, &e.Date, &rate, &total)
	if errors.Is(err, pgx.ErrNoRows) {
		return e, event.ErrEventDoesNotExist
	}
	if err != nil {
		return e, err
	}
	e.ID = event.ID(id)
	if err := amount.AssignTo(&e.Amount); err != nil {
		return e, err
	}
	if err := rate.AssignTo(&e.Rate); err != nil {
		return e, err
	}
	if err := total.AssignTo(&e.Total); err != nil {
		return e, err
	}
	return e, nil
}
