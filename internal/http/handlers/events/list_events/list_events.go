package listevents

import (
	"exchanger/internal/core/services"
	listevents "exchanger/internal/core/services/list_events"
	"exchanger/internal/http/handlers/response"
	"net/http"
)

type Handler struct {
	service services.Service[listevents.Input, listevents.Result]
}

func New(
	service services.Service[listevents.Input, listevents.Result],
) *Handler {
	return &Handler{service: service}
}

type Result struct {
	Events []response.Event `json:"events"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), listevents.Input{})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	events := make([]response.Event, len(result.Events))
	for ix, domainEvent := range result.Events {
		events[ix].FromDomainEvent(domainEvent)
	}
	response.Render(rw, Result{Events: events}, http.StatusOK)
}
