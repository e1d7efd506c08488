package renamecurrency

import (
	"encoding/json"
	"errors"
	"exchanger/internal/core/domain/currency"
	"exchanger/internal/core/services"
	renamecurrency "exchanger/internal/core/services/rename_currency"
	"exchanger/internal/http/handlers/response"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[renamecurrency.Input, renamecurrency.Result]
}

func New(
	service services.Service[renamecurrency.Input, renamecurrency.Result],
) *Handler {
	return &Handler{service: service}
}

type Input struct {
	OldName string `json:"old_name"`
	NewName string `json:"new_name"`
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
		validation.Field(&i.OldName, validation.Required, validation.Length(0, 64)),
		validation.Field(&i.NewName, validation.Required, validation.Length(0, 64)),
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
		renamecurrency.Input{OldName: input.OldName, NewName: input.NewName},
	)
	if errors.Is(err, currency.ErrCurrencyDoesNotExist) {
		response.RenderError(rw, "currency not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, currency.ErrCurrencyAlreadyExists) {
		response.RenderError(rw, "currency already exists", http.StatusBadRequest)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	renamed := response.Currency{}
	renamed.FromDomainCurrency(result.Currency)
	response.Render(rw, Result{Currency: renamed}, http.StatusOK)
}
