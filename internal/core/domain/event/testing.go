package event

import (
	"context"
	"fmt"
	"sync"
)

type FakeEventRepository struct {
	Events      []Event
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeEventRepository() *FakeEventRepository {
	return &FakeEventRepository{Events: make([]Event, 0, 10)}
}

func (r *FakeEventRepository) Create(ctx context.Context, input CreateEventInput) (e Event, err error) {
	if r.ReturnError {
		return e, fmt.Errorf("could not create event")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, existing := range r.Events {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	e = Event{
		ID:       maxID + 1,
		Type:     input.Type,
		Currency: input.Currency,
		Amount:   input.Amount,
		Date:     input.Date,
		Rate:     input.Rate,
		Total:    input.Total,
	}
	r.Events = append(r.Events, e)
	return e, nil
}

func (r *FakeEventRepository) List(ctx context.Context) ([]Event, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not list events")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	events := make([]Event, len(r.Events))
	copy(events, r.Events)
	return events, nil
}

func (r *FakeEventRepository) Update(ctx context.Context, input UpdateEventInput) (e Event, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Events {
		if r.Events[ix].ID != input.ID {
			continue
		}
		r.Events[ix].Type = input.Type
		r.Events[ix].Currency = input.Currency
		r.Events[ix].Amount = input.Amount
		r.Events[ix].Rate = input.Rate
		r.Events[ix].Total = input.Total
		return r.Events[ix], nil
	}
	return e, ErrEventDoesNotExist
}

func (r *FakeEventRepository) Delete(ctx context.Context, id ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Events {
		if r.Events[ix].ID == id {
			r.Events = append(r.Events[:ix], r.Events[ix+1:]...)
			return nil
		}
	}
	return ErrEventDoesNotExist
}

func (r *FakeEventRepository) DeleteAll(ctx context.Context) error {
	if r.ReturnError {
		return fmt.Errorf("could not delete events")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Events = r.Events[:0]
	return nil
}
