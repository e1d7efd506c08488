package listusers

import (
	"exchanger/internal/core/services"
	listusers "exchanger/internal/core/services/list_users"
	"exchanger/internal/http/handlers/response"
	"net/http"
)

type Handler struct {
	service services.Service[listusers.Input, listusers.Result]
}

func New(
	service services.Service[listusers.Input, listusers.Result],
) *Handler {
	return &Handler{service: service}
}

type Result struct {
	Users []response.User `json:"users"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), listusers.Input{})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	users := make([]response.User, len(result.Users))
	for ix, domainUser := range result.Users {
		users[ix].FromDomainUser(domainUser)
	}
	response.Render(rw, Result{Users: users}, http.StatusOK)
}
