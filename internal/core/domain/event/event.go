package event

type ID int64

// Event is a single exchange transaction. Total is always derived as
// Amount * Rate at write time, never accepted from the client.
type Event struct {
	ID       ID
	Type     string
	Currency string
	Amount   float64
	Date     string
	Rate     float64
	Total    float64
}
