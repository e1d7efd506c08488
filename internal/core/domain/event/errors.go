package event

import "errors"

var (
	ErrEventDoesNotExist = errors.New("event does not exist")
	ErrInvalidEventDate  = errors.New("invalid event date")
)
