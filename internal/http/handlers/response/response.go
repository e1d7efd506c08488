package response

import (
	"encoding/json"
	"exchanger/internal/core/domain/currency"
	"exchanger/internal/core/domain/event"
	"exchanger/internal/core/domain/user"
	"net/http"
)

type errorResponse struct {
	Error string `json:"error"`
}

func RenderUnauthorized(rw http.ResponseWriter) {
	RenderError(rw, "invalid authentication token", http.StatusUnauthorized)
}

func RenderInternalError(rw http.ResponseWriter) {
	RenderError(rw, "internal error", http.StatusInternalServerError)
}

func RenderRateLimitExceeded(rw http.ResponseWriter) {
	RenderError(rw, "rate limit exceeded", http.StatusTooManyRequests)
}

func RenderError(rw http.ResponseWriter, msg string, status int) {
	Render(rw, errorResponse{Error: msg}, status)
}

func Render(rw http.ResponseWriter, res interface{}, status int) {
	rw.Header().Set("Content-Type", "application/json")

	content, err := json.Marshal(res)
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.WriteHeader(status)
	rw.Write(content)
}

type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	IsSuperuser bool   `json:"is_superuser"`
}

func (u *User) FromDomainUser(du user.User) {
	u.ID = int64(du.ID)
	u.Username = string(du.Username)
	u.Email = string(du.Email)
	u.Phone = string(du.Phone)
	u.IsSuperuser = du.IsSuperuser
}

type Event struct {
	ID       int64   `json:"id"`
	Type     string  `json:"type"`
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
	Rate     float64 `json:"rate"`
	Total    float64 `json:"total"`
}

func (e *Event) FromDomainEvent(de event.Event) {
	e.ID = int64(de.ID)
	e.Type = de.Type
	e.Currency = de.Currency
	e.Amount = de.Amount
	e.Date = de.Date
	e.Rate = de.Rate
	e.Total = de.Total
}

type Currency struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (c *Currency) FromDomainCurrency(dc currency.Currency) {
	c.ID = int64(dc.ID)
	c.Name = dc.Name
}
