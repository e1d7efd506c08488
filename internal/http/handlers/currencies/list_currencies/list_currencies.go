package listcurrencies

import (
	"exchanger/internal/core/services"
	listcurrencies "exchanger/internal/core/services/list_currencies"
	"exchanger/internal/http/handlers/response"
	"net/http"
)

type Handler struct {
	service services.Service[listcurrencies.Input, listcurrencies.Result]
}

func New(
	service services.Service[listcurrencies.Input, listcurrencies.Result],
) *Handler {
	return &Handler{service: service}
}

type Result struct {
	Currencies []response.Currency `json:"currencies"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), listcurrencies.Input{})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	currencies := make([]response.Currency, len(result.Currencies))
	for ix, domainCurrency := range result.Currencies {
		currencies[ix].FromDomainCurrency(domainCurrency)
	}
	response.Render(rw, Result{Currencies: currencies}, http.StatusOK)
}
