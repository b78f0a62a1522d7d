/**
 * @description
 * This file defines the events published by the enrollment-service. They are the
 * contract with the notification service that consumes them from RabbitMQ.
 */
package domain

import "time"

// EmailRequestedEvent asks the notification service to deliver an e-mail.
type EmailRequestedEvent struct {
	ToName      string    `json:"to_name"`
	ToAddress   string    `json:"to_address"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body"`
	RequestedAt time.Time `json:"requested_at"`
}
