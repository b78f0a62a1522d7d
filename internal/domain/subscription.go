/**
 * @description
 * This file defines the Subscription entity. A subscription owns the payments made
 * towards it and is active from creation until it is deactivated.
 */
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is a student's access period to the platform.
type Subscription struct {
	Notifiable
	ID             uuid.UUID
	CreateDate     time.Time
	LastUpdateDate time.Time
	ExpireDate     time.Time
	Active         bool
	payments       []*Payment
}

// NewSubscription creates an active subscription expiring at expireDate.
func NewSubscription(now, expireDate time.Time) *Subscription {
	return &Subscription{
		ID:             uuid.New(),
		CreateDate:     now,
		LastUpdateDate: now,
		ExpireDate:     expireDate,
		Active:         true,
	}
}

// AddPayment appends a payment.
func (s *Subscription) AddPayment(payment *Payment) {
	s.payments = append(s.payments, payment)
}

// Payments returns the payments in insertion order.
func (s *Subscription) Payments() []*Payment {
	out := make([]*Payment, len(s.payments))
	copy(out, s.payments)
	return out
}

func (s *Subscription) Activate(at time.Time) {
	s.Active = true
	s.LastUpdateDate = at
}

func (s *Subscription) Deactivate(at time.Time) {
	s.Active = false
	s.LastUpdateDate = at
}

// IsExpired reports whether the subscription's period ended before at.
func (s *Subscription) IsExpired(at time.Time) bool {
	return !s.ExpireDate.After(at)
}
