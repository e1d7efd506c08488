package currency

type ID int64

type Currency struct {
	ID   ID
	Name string
}
