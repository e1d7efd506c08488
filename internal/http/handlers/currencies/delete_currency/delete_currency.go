package deletecurrency

import (
	"encoding/json"
	"errors"
	"exchanger/internal/core/domain/currency"
	"exchanger/internal/core/services"
	deletecurrency "exchanger/internal/core/services/delete_currency"
	"exchanger/internal/http/handlers/response"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[deletecurrency.Input, deletecurrency.Result]
}

func New(
	service services.Service[deletecurrency.Input, deletecurrency.Result],
) *Handler {
	return &Handler{service: service}
}

type Input struct {
	Name string `json:"name"`
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

	_, err := h.service.Run(r.Context(), deletecurrency.Input{Name: input.Name})
	if errors.Is(err, currency.ErrCurrencyDoesNotExist) {
		response.RenderError(rw, "currency not found", http.StatusNotFound)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	rw.WriteHeader(http.StatusNoContent)
}
