package getuser

import (
	"errors"
	"exchanger/internal/core/domain/user"
	"exchanger/internal/core/services"
	getuser "exchanger/internal/core/services/get_user"
	"exchanger/internal/http/handlers/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[getuser.Input, getuser.Result]
}

func New(
	service services.Service[getuser.Input, getuser.Result],
) *Handler {
	return &Handler{service: service}
}

type Result struct {
	User response.User `json:"user"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(
		r.Context(),
		getuser.Input{Username: user.Username(chi.URLParam(r, "username"))},
	)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		response.RenderError(rw, "user not found", http.StatusNotFound)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	found := response.User{}
	found.FromDomainUser(result.User)
	response.Render(rw, Result{User: found}, http.StatusOK)
}
