package createcurrency

import (
	"encoding/json"
	"errors"
	"exchanger/internal/core/domain/currency"
	"exchanger/internal/core/services"
	createcurrency "exchanger/internal/core/services/create_currency"
	"exchanger/internal/http/handlers/response"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[createcurrency.Input, createcurrency.Result]
}

func New(
	service services.Service[createcurrency.Input, createcurrency.Result],
) *Handler {
	return &Handler{service: service}
}

type Input struct {
	Name string `json:"name"`
}

type Result struct {
	Currency response.Currency `json:"currency"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.Length(0, 64)),
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

	result, err := h.service.Run(r.Context(), createcurrency.Input{Name: input.Name})
	if errors.Is(err, currency.ErrCurrencyAlreadyExists) {
		response.RenderError(rw, "currency already exists", http.StatusBadRequest)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	created := response.Currency{}
	created.FromDomainCurrency(result.Currency)
	response.Render(rw, Result{Currency: created}, http.StatusCreated)
}
