package clearevents

import (
	"encoding/json"
	"errors"
	"exchanger/internal/core/domain/user"
	"exchanger/internal/core/services"
	clearevents "exchanger/internal/core/services/clear_events"
	"exchanger/internal/http/handlers/response"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[clearevents.Input, clearevents.Result]
}

func New(
	service services.Service[clearevents.Input, clearevents.Result],
) *Handler {
	return &Handler{service: service}
}

type Input struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Result struct{}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Username, validation.Required, validation.Length(0, 512)),
		validation.Field(&i.Password, validation.Required, validation.Length(0, 512)),
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

	_, err := h.service.Run(
		r.Context(),
		clearevents.Input{
			Username: user.Username(input.Username),
			Password: user.RawPassword(input.Password),
		},
	)
	if errors.Is(err, user.ErrInvalidCredentials) || errors.Is(err, user.ErrNotSuperuser) {
		response.RenderError(rw, "invalid credentials", http.StatusBadRequest)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, Result{}, http.StatusOK)
}
