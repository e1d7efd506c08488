package updateuser

import (
	"encoding/json"
	"errors"
	c "exchanger/internal/core/domain/common"
	"exchanger/internal/core/domain/user"
	"exchanger/internal/core/services"
	updateuser "exchanger/internal/core/services/update_user"
	"exchanger/internal/http/handlers/response"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[updateuser.Input, updateuser.Result]
}

func New(
	service services.Service[updateuser.Input, updateuser.Result],
) *Handler {
	return &Handler{service: service}
}

type Input struct {
	Username    string  `json:"username"`
	NewUsername string  `json:"new_username"`
	Email       string  `json:"email"`
	IsSuperuser bool    `json:"is_superuser"`
	Password    *string `json:"password"`
}

type Result struct {
	User response.User `json:"user"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Username, validation.Required, validation.Length(0, 150)),
		validation.Field(&i.NewUsername, validation.Required, validation.Length(0, 150)),
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.Password, validation.Length(1, 512)),
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

	serviceInput := updateuser.Input{
		Username:    user.Username(input.Username),
		NewUsername: user.Username(input.NewUsername),
		Email:       c.NewEmail(input.Email),
		IsSuperuser: input.IsSuperuser,
	}
	if input.Password != nil {
		serviceInput.Password = c.NewOptional(*input.Password, true)
	}

	result, err := h.service.Run(r.Context(), serviceInput)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		response.RenderError(rw, "user not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, user.ErrUsernameAlreadyExists) {
		response.RenderError(rw, "username already exists", http.StatusBadRequest)
		return
	}
	if errors.Is(err, user.ErrEmailAlreadyExists) {
		response.RenderError(rw, "email already exists", http.StatusBadRequest)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	updated := response.User{}
	updated.FromDomainUser(result.User)
	response.Render(rw, Result{User: updated}, http.StatusOK)
}
