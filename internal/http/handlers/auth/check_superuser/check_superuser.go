package checksuperuser

import (
	"errors"
	"exchanger/internal/core/domain/user"
	"exchanger/internal/core/services"
	checksuperuser "exchanger/internal/core/services/check_superuser"
	"exchanger/internal/http/handlers/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[checksuperuser.Input, checksuperuser.Result]
}

func New(
	service services.Service[checksuperuser.Input, checksuperuser.Result],
) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(
		r.Context(),
		checksuperuser.Input{Username: user.Username(chi.URLParam(r, "username"))},
	)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		response.RenderError(rw, "user is not a superuser", http.StatusBadRequest)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}
	if !result.IsSuperuser {
		response.RenderError(rw, "user is not a superuser", http.StatusBadRequest)
		return
	}

	rw.WriteHeader(http.StatusNoContent)
}
