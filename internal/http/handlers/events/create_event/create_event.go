package createevent

import (
	"encoding/json"
	"errors"
	"exchanger/internal/core/domain/event"
	"exchanger/internal/core/services"
	createevent "exchanger/internal/core/services/create_event"
	"exchanger/internal/http/handlers/response"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[createevent.Input, createevent.Result]
}

func New(
	service services.Service[createevent.Input, createevent.Result],
) *Handler {
	return &Handler{service: service}
}

type Input struct {
	Type     string  `json:"type"`
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
	Rate     float64 `json:"rate"`
}

type Result struct {
	Event response.Event `json:"event"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Type, validation.Required, validation.Length(0, 64)),
		validation.Field(&i.Currency, validation.Required, validation.Length(0, 64)),
		validation.Field(&i.Amount, validation.Required, validation.Min(0.0)),
		validation.Field(&i.Date, validation.Required, validation.Length(5, 5)),
		validation.Field(&i.Rate, validation.Required, validation.Min(0.0)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		createevent.Input{
			Type:     input.Type,
			Currency: input.Currency,
			Amount:   input.Amount,
			Date:     input.Date,
			Rate:     input.Rate,
		},
	)
	if errors.Is(err, event.ErrInvalidEventDate) {
		response.RenderError(rw, "invalid event date", http.StatusBadRequest)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	created := response.Event{}
	created.FromDomainEvent(result.Event)
	response.Render(rw, Result{Event: created}, http.StatusCreated)
}
