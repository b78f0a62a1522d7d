package domain

import (
	"fmt"
	"strings"
)

// Name is a person's first and last name, or the trade name of a company.
// Like every value object, store it in a variable before calling IsValid.
type Name struct {
	Notifiable
	firstName string
	lastName  string
	company   bool
}

// NewName builds a Name and validates it. The returned value is always usable,
// check IsValid for the outcome.
func NewName(firstName, lastName string) Name {
	n := Name{firstName: firstName, lastName: lastName}
	n.Validate()
	return n
}

// NewCompanyName builds the Name of a legal entity. The whole trade name is kept as
// the first name and only its presence is required.
func NewCompanyName(name string) Name {
	n := Name{firstName: strings.TrimSpace(name), company: true}
	n.Validate()
	return n
}

// Validate re-evaluates the name rules, replacing any previous result.
func (n *Name) Validate() {
	n.clearNotifications()
	if n.company {
		n.AddNotifications(NewContract().
			IsNotEmpty(n.firstName, "Name.FirstName", "Company name is required"))
		return
	}
	n.AddNotifications(NewContract().
		IsGreaterThan(n.firstName, 3, "Name.FirstName", "First name must have more than 3 characters").
		IsGreaterThan(n.lastName, 3, "Name.LastName", "Last name must have more than 3 characters").
		IsLowerThan(n.firstName, 40, "Name.FirstName", "First name must have fewer than 40 characters"))
}

func (n Name) FirstName() string { return n.firstName }
func (n Name) LastName() string  { return n.lastName }
func (n Name) IsCompany() bool   { return n.company }

// String returns the display name.
func (n Name) String() string {
	if n.company {
		return n.firstName
	}
	return fmt.Sprintf("%s %s", n.firstName, n.lastName)
}
