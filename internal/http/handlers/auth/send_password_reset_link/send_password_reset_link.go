package sendpasswordresetlink

import (
	"encoding/json"
	"errors"
	c "exchanger/internal/core/domain/common"
	ratelimiter "exchanger/internal/core/domain/rate_limiter"
	"exchanger/internal/core/domain/user"
	"exchanger/internal/core/services"
	sendpasswordresetlink "exchanger/internal/core/services/send_password_reset_link"
	"exchanger/internal/http/handlers/response"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service    services.Service[sendpasswordresetlink.Input, sendpasswordresetlink.Result]
	isTestMode bool
}

func New(
	service services.Service[sendpasswordresetlink.Input, sendpasswordresetlink.Result],
	isTestMode bool,
) *Handler {
	return &Handler{service: service, isTestMode: isTestMode}
}

type Input struct {
	Contact string `json:"contact"`
}

type Result struct {
	Token string `json:"token,omitempty"`
	Link  string `json:"link,omitempty"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Contact, validation.Required, validation.Length(0, 512)),
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
		sendpasswordresetlink.Input{Contact: c.ParseContact(input.Contact)},
	)
	if errors.Is(err, ratelimiter.ErrRateLimitExceeded) {
		response.RenderRateLimitExceeded(rw)
		return
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		response.RenderError(rw, "user not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, user.ErrResetDeliveryFailed) {
		response.RenderError(rw, "could not deliver reset link", http.StatusInternalServerError)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	// The token is only ever echoed back in test mode, end to end tests
	// have no inbox to read it from otherwise.
	if h.isTestMode {
		response.Render(rw, Result{Token: string(result.Token), Link: string(result.Link)}, http.StatusOK)
		return
	}
	response.Render(rw, Result{}, http.StatusOK)
}
