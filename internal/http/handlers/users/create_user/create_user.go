package createuser

import (
	"encoding/json"
	"errors"
	c "exchanger/internal/core/domain/common"
	"exchanger/internal/core/domain/user"
	"exchanger/internal/core/services"
	createuser "exchanger/internal/core/services/create_user"
	"exchanger/internal/http/handlers/response"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[createuser.Input, createuser.Result]
}

func New(
	service services.Service[createuser.Input, createuser.Result],
) *Handler {
	return &Handler{service: service}
}

type Input struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Password    string `json:"password"`
	IsSuperuser bool   `json:"is_superuser"`
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
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.Phone, validation.Length(0, 32)),
		validation.Field(&i.Password, validation.Required, validation.Length(8, 512)),
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
		createuser.Input{
			Username:    user.Username(input.Username),
			Email:       c.NewEmail(input.Email),
			Phone:       c.NewPhone(input.Phone),
			Password:    user.RawPassword(input.Password),
			IsSuperuser: input.IsSuperuser,
		},
	)
	if errors.Is(err, user.ErrUsernameAlreadyExists) {
		response.RenderError(rw, "username already exists", http.StatusBadRequest)
		return
	}
	if errors.Is(err, user.ErrEmailAlreadyExists) {
		response.RenderError(rw, "email already exists", http.StatusBadRequest)
		return
	}
	if errors.Is(err, user.ErrPhoneAlreadyExists) {
		response.RenderError(rw, "phone already exists", http.StatusBadRequest)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	created := response.User{}
	created.FromDomainUser(result.User)
	response.Render(rw, Result{User: created}, http.StatusCreated)
}
