package authenticate

import (
	"encoding/json"
	"errors"
	ratelimiter "exchanger/internal/core/domain/rate_limiter"
	"exchanger/internal/core/domain/user"
	"exchanger/internal/core/services"
	authenticate "exchanger/internal/core/services/authenticate"
	"exchanger/internal/http/handlers/response"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[authenticate.Input, authenticate.Result]
}

func New(
	service services.Service[authenticate.Input, authenticate.Result],
) *Handler {
	return &Handler{service: service}
}

type Input struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Result struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

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

	result, err := h.service.Run(
		r.Context(),
		authenticate.Input{
			Username: user.Username(input.Username),
			Password: user.RawPassword(input.Password),
		},
	)
	if errors.Is(err, ratelimiter.ErrRateLimitExceeded) {
		response.RenderRateLimitExceeded(rw)
		return
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		response.RenderError(rw, "user not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, user.ErrInvalidCredentials) {
		response.RenderError(rw, "invalid password", http.StatusBadRequest)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(
		rw,
		Result{
			AccessToken:  string(result.TokenPair.Access),
			RefreshToken: string(result.TokenPair.Refresh),
		},
		http.StatusOK,
	)
}
