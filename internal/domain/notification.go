/**
 * @description
 * This file defines the notification primitives used by every validated object in the
 * domain. Validation failures are collected as (field, message) pairs instead of being
 * returned as errors, so a caller can see every problem of a request in one pass.
 */
package domain

// Notification is a single validation failure attached to a field.
type Notification struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validatable is implemented by anything that carries notifications.
type Validatable interface {
	Notifications() []Notification
}

// Notifiable is embedded by value objects, entities and commands to record failures.
// Its methods have pointer receivers, so a value object returned by its constructor must
// be stored in a variable before IsValid or Notifications can be called on it.
type Notifiable struct {
	notifications []Notification
}

// AddNotification appends a failure to the receiver's own list.
func (n *Notifiable) AddNotification(field, message string) {
	n.notifications = append(n.notifications, Notification{Field: field, Message: message})
}

// AddNotifications merges the failures of every given object into the receiver.
func (n *Notifiable) AddNotifications(items ...Validatable) {
	for _, item := range items {
		if item == nil {
			continue
		}
		n.notifications = append(n.notifications, item.Notifications()...)
	}
}

// AddPrefixedNotifications merges like AddNotifications but reports every field as
// "prefix.field", so two objects of the same type stay distinguishable.
func (n *Notifiable) AddPrefixedNotifications(prefix string, items ...Validatable) {
	for _, item := range items {
		if item == nil {
			continue
		}
		for _, notification := range item.Notifications() {
			n.AddNotification(prefix+"."+notification.Field, notification.Message)
		}
	}
}

// Notifications returns a copy of the recorded failures.
func (n *Notifiable) Notifications() []Notification {
	if len(n.notifications) == 0 {
		return nil
	}
	out := make([]Notification, len(n.notifications))
	copy(out, n.notifications)
	return out
}

// IsValid reports whether no failure has been recorded.
func (n *Notifiable) IsValid() bool {
	return len(n.notifications) == 0
}

func (n *Notifiable) clearNotifications() {
	n.notifications = nil
}
