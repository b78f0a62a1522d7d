/**
 * @description
 * Contract is a small fluent rule builder. Each rule evaluates a predicate and, when it
 * does not hold, records the (field, message) pair it was given. Objects build a contract
 * in their constructor and merge its notifications into their own.
 */
package domain

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Contract accumulates the failures of the rules applied to it.
type Contract struct {
	Notifiable
}

// NewContract returns an empty contract.
func NewContract() *Contract {
	return &Contract{}
}

// IsTrue fails when cond is false.
func (c *Contract) IsTrue(cond bool, field, message string) *Contract {
	if !cond {
		c.AddNotification(field, message)
	}
	return c
}

// IsNotEmpty fails for blank strings.
func (c *Contract) IsNotEmpty(value, field, message string) *Contract {
	return c.IsTrue(strings.TrimSpace(value) != "", field, message)
}

// IsGreaterThan fails unless value has more than length characters.
func (c *Contract) IsGreaterThan(value string, length int, field, message string) *Contract {
	return c.IsTrue(utf8.RuneCountInString(value) > length, field, message)
}

// IsLowerThan fails unless value has fewer than length characters.
func (c *Contract) IsLowerThan(value string, length int, field, message string) *Contract {
	return c.IsTrue(utf8.RuneCountInString(value) < length, field, message)
}

// IsEmail fails when value is not a bare RFC 5322 address.
func (c *Contract) IsEmail(value, field, message string) *Contract {
	addr, err := mail.ParseAddress(value)
	return c.IsTrue(err == nil && addr.Address == value, field, message)
}

// IsGreaterThanDecimal fails unless value > comparer.
func (c *Contract) IsGreaterThanDecimal(value, comparer decimal.Decimal, field, message string) *Contract {
	return c.IsTrue(value.GreaterThan(comparer), field, message)
}

// IsGreaterOrEqualsThanDecimal fails unless value >= comparer.
func (c *Contract) IsGreaterOrEqualsThanDecimal(value, comparer decimal.Decimal, field, message string) *Contract {
	return c.IsTrue(value.GreaterThanOrEqual(comparer), field, message)
}
