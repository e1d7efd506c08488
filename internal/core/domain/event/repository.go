package event

import "context"

type CreateEventInput struct {
	Type     string
	Currency string
	Amount   float64
	Date     string
	Rate     float64
	Total    float64
}

type UpdateEventInput struct {
	ID       ID
	Type     string
	Currency string
	Amount   float64
	Rate     float64
	Total    float64
}

type EventRepository interface {
	Create(ctx context.Context, input CreateEventInput) (Event, error)
	List(ctx context.Context) ([]Event, error)
	Update(ctx context.Context, input UpdateEventInput) (Event, error)
	Delete(ctx context.Context, id ID) error
	DeleteAll(ctx context.Context) error
}
