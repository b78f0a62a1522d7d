package domain

import "strings"

// Email is an immutable e-mail address.
type Email struct {
	Notifiable
	address string
}

// NewEmail trims and validates address.
func NewEmail(address string) Email {
	e := Email{address: strings.TrimSpace(address)}
	e.Validate()
	return e
}

// Validate re-evaluates the address rules, replacing any previous result.
func (e *Email) Validate() {
	e.clearNotifications()
	c := NewContract().IsNotEmpty(e.address, "Email.Address", "E-mail is required")
	if e.address != "" {
		c.IsEmail(e.address, "Email.Address", "E-mail is invalid")
	}
	e.AddNotifications(c)
}

func (e Email) Address() string { return e.address }

func (e Email) String() string { return e.address }
