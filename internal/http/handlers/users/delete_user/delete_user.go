package deleteuser

import (
	"encoding/json"
	"errors"
	"exchanger/internal/core/domain/user"
	"exchanger/internal/core/services"
	deleteuser "exchanger/internal/core/services/delete_user"
	"exchanger/internal/http/handlers/response"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[deleteuser.Input, deleteuser.Result]
}

func New(
	service services.Service[deleteuser.Input, deleteuser.Result],
) *Handler {
	return &Handler{service: service}
}

type Input struct {
	Username string `json:"username"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Username, validation.Required, validation.Length(0, 150)),
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

	_, err := h.service.Run(r.Context(), deleteuser.Input{Username: user.Username(input.Username)})
	if errors.Is(err, user.ErrUserDoesNotExist) {
		response.RenderError(rw, "user not found", http.StatusNotFound)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	rw.WriteHeader(http.StatusNoContent)
}
