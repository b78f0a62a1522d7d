/**
 * @description
 * This file defines the commands accepted by the subscription use case and the result
 * returned for them. Commands are plain data carriers with a cheap fail-fast Validate
 * step that runs before any repository call.
 */
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubscriptionCommand holds the fields shared by every payment method.
type SubscriptionCommand struct {
	Notifiable `json:"-"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Document  string `json:"document"`
	Email     string `json:"email"`

	PaymentNumber     string          `json:"payment_number"`
	PaidDate          time.Time       `json:"paid_date"`
	ExpireDate        time.Time       `json:"expire_date"`
	Total             decimal.Decimal `json:"total"`
	TotalPaid         decimal.Decimal `json:"total_paid"`
	Payer             string          `json:"payer"`
	PayerDocument     string          `json:"payer_document"`
	PayerDocumentType DocumentType    `json:"payer_document_type"`
	PayerEmail        string          `json:"payer_email"`

	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	ZipCode      string `json:"zip_code"`
}

// Validate runs the fail-fast rules. Calling it again replaces the previous result.
func (c *SubscriptionCommand) Validate() {
	c.clearNotifications()
	c.AddNotifications(NewContract().
		IsGreaterThan(c.FirstName, 3, "FirstName", "First name must have more than 3 characters").
		IsGreaterThan(c.LastName, 3, "LastName", "Last name must have more than 3 characters").
		IsLowerThan(c.FirstName, 40, "FirstName", "First name must have fewer than 40 characters"))
}

// CreateBoletoSubscriptionCommand subscribes a student paying with a bank slip.
type CreateBoletoSubscriptionCommand struct {
	SubscriptionCommand
	BarCode      string `json:"bar_code"`
	BoletoNumber string `json:"boleto_number"`
}

// CreatePayPalSubscriptionCommand subscribes a student paying through PayPal.
type CreatePayPalSubscriptionCommand struct {
	SubscriptionCommand
	TransactionCode string `json:"transaction_code"`
}

// CreateCreditCardSubscriptionCommand subscribes a student paying by credit card.
type CreateCreditCardSubscriptionCommand struct {
	SubscriptionCommand
	CardHolderName        string `json:"card_holder_name"`
	CardNumber            string `json:"card_number"`
	LastTransactionNumber string `json:"last_transaction_number"`
}

// CommandResult is returned for every handled command.
type CommandResult struct {
	Success       bool           `json:"success"`
	Message       string         `json:"message"`
	Notifications []Notification `json:"notifications,omitempty"`
}
