package deleteevent

import (
	"errors"
	"exchanger/internal/core/domain/event"
	"exchanger/internal/core/services"
	deleteevent "exchanger/internal/core/services/delete_event"
	"exchanger/internal/http/handlers/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[deleteevent.Input, deleteevent.Result]
}

func New(
	service services.Service[deleteevent.Input, deleteevent.Result],
) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid event ID", http.StatusBadRequest)
		return
	}

	_, err = h.service.Run(r.Context(), deleteevent.Input{ID: event.ID(eventID)})
	if errors.Is(err, event.ErrEventDoesNotExist) {
		response.RenderError(rw, "event not found", http.StatusNotFound)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	rw.WriteHeader(http.StatusNoContent)
}
