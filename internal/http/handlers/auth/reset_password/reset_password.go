package resetpassword

import (
	"encoding/json"
	"errors"
	"exchanger/internal/core/domain/user"
	"exchanger/internal/core/services"
	resetpassword "exchanger/internal/core/services/reset_password"
	"exchanger/internal/http/handlers/response"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[resetpassword.Input, resetpassword.Result]
}

func New(
	service services.Service[resetpassword.Input, resetpassword.Result],
) *Handler {
	return &Handler{service: service}
}

type Input struct {
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type Result struct{}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.NewPassword, validation.Required, validation.Length(0, 512)),
		validation.Field(&i.ConfirmPassword, validation.Required, validation.Length(0, 512)),
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
		resetpassword.Input{
			EncodedUserID:        chi.URLParam(r, "uid"),
			Token:                user.PasswordResetToken(chi.URLParam(r, "token")),
			NewPassword:          user.RawPassword(input.NewPassword),
			PasswordConfirmation: user.RawPassword(input.ConfirmPassword),
		},
	)
	if errors.Is(err, user.ErrInvalidResetLink) {
		response.RenderError(rw, "invalid reset link", http.StatusBadRequest)
		return
	}
	if errors.Is(err, user.ErrInvalidResetToken) {
		response.RenderError(rw, "invalid or expired reset token", http.StatusBadRequest)
		return
	}
	if errors.Is(err, user.ErrPasswordsDoNotMatch) {
		response.RenderError(rw, "passwords do not match", http.StatusUnprocessableEntity)
		return
	}
	if errors.Is(err, user.ErrPasswordTooShort) {
		response.RenderError(rw, "password is too short", http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, Result{}, http.StatusOK)
}
