package updateevent

import (
	"encoding/json"
	"errors"
	"exchanger/internal/core/domain/event"
	"exchanger/internal/core/services"
	updateevent "exchanger/internal/core/services/update_event"
	"exchanger/internal/http/handlers/response"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[updateevent.Input, updateevent.Result]
}

func New(
	service services.Service[updateevent.Input, updateevent.Result],
) *Handler {
	return &Handler{service: service}
}

type Input struct {
	Type     string  `json:"type"`
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount"`
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
		validation.Field(&i.Rate, validation.Required, validation.Min(0.0)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid event ID", http.StatusBadRequest)
		return
	}
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
		updateevent.Input{
			ID:       event.ID(eventID),
			Type:     input.Type,
			Currency: input.Currency,
			Amount:   input.Amount,
			Rate:     input.Rate,
		},
	)
	if errors.Is(err, event.ErrEventDoesNotExist) {
		response.RenderError(rw, "event not found", http.StatusNotFound)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	updated := response.Event{}
	updated.FromDomainEvent(result.Event)
	response.Render(rw, Result{Event: updated}, http.StatusOK)
}
