package common

import (
	"fmt"
	"strings"
)

type Optional[T any] struct {
	Value     T
	IsPresent bool
}

func (p *Optional[T]) String() string {
	if !p.IsPresent {
		return "[-]"
	}
	return fmt.Sprintf("[%v]", p.Value)
}

func NewOptional[T any](value T, isPresent bool) Optional[T] {
	return Optional[T]{Value: value, IsPresent: isPresent}
}

type Email string

func NewEmail(rawEmail string) Email {
	return Email(strings.ToLower(strings.TrimSpace(rawEmail)))
}

type Phone string

func NewPhone(rawPhone string) Phone {
	return Phone(strings.TrimSpace(rawPhone))
}

// Contact is a tagged union of the two supported contact channels. Exactly
// one of Email or Phone is present.
type Contact struct {
	Email Optional[Email]
	Phone Optional[Phone]
}

func NewEmailContact(email Email) Contact {
	return Contact{Email: NewOptional(email, true)}
}

func NewPhoneContact(phone Phone) Contact {
	return Contact{Phone: NewOptional(phone, true)}
}

// ParseContact resolves a user-submitted contact string to a channel once,
// at the edge. A leading "+" or a missing "@" means a phone number,
// everything else is treated as an email address.
func ParseContact(raw string) Contact {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "+") || !strings.Contains(raw, "@") {
		return NewPhoneContact(NewPhone(raw))
	}
	return NewEmailContact(NewEmail(raw))
}
