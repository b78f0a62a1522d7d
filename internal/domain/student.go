package domain

import "github.com/google/uuid"

// Student is the subscriber aggregate root.
type Student struct {
	Notifiable
	ID            uuid.UUID
	Name          Name
	Document      Document
	Email         Email
	subscriptions []*Subscription
}

// NewStudent creates a student. The value objects are not re-validated here.
func NewStudent(name Name, document Document, email Email) *Student {
	return &Student{
		ID:       uuid.New(),
		Name:     name,
		Document: document,
		Email:    email,
	}
}

// AddSubscription appends a subscription.
func (s *Student) AddSubscription(subscription *Subscription) {
	s.subscriptions = append(s.subscriptions, subscription)
}

// Subscriptions returns the subscriptions in insertion order.
func (s *Student) Subscriptions() []*Subscription {
	out := make([]*Subscription, len(s.subscriptions))
	copy(out, s.subscriptions)
	return out
}

// ActiveSubscription returns the first active subscription, or nil.
func (s *Student) ActiveSubscription() *Subscription {
	for _, sub := range s.subscriptions {
		if sub.Active {
			return sub
		}
	}
	return nil
}
