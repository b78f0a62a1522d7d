/**
 * @description
 * This file defines the Payment entity. A payment has a shared shape (totals, dates and
 * payer data) and exactly one method-specific payload selected by the Method tag.
 */
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod tags the payload a Payment carries.
type PaymentMethod string

const (
	PaymentMethodBoleto     PaymentMethod = "boleto"
	PaymentMethodPayPal     PaymentMethod = "paypal"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
)

const paymentNumberLength = 10

// BoletoDetails is the bank slip payload.
type BoletoDetails struct {
	BarCode      string
	BoletoNumber string
}

// PayPalDetails is the PayPal payload.
type PayPalDetails struct {
	TransactionCode string
}

// CreditCardDetails is the credit card payload.
type CreditCardDetails struct {
	CardHolderName        string
	CardNumber            string
	LastTransactionNumber string
}

// PaymentInfo groups the fields shared by every payment method.
type PaymentInfo struct {
	PaidDate   time.Time
	ExpireDate time.Time
	Total      decimal.Decimal
	TotalPaid  decimal.Decimal
	Payer      Name
	Document   Document
	Address    Address
	Email      Email
}

// Payment is a single payment towards a subscription. It cannot be changed after
// construction; read it through the accessors.
type Payment struct {
	Notifiable
	id         uuid.UUID
	number     string
	paidDate   time.Time
	expireDate time.Time
	total      decimal.Decimal
	totalPaid  decimal.Decimal
	payer      Name
	document   Document
	address    Address
	email      Email

	method     PaymentMethod
	boleto     BoletoDetails
	payPal     PayPalDetails
	creditCard CreditCardDetails
}

// NewBoletoPayment creates a bank slip payment.
func NewBoletoPayment(details BoletoDetails, info PaymentInfo) *Payment {
	p := newPayment(PaymentMethodBoleto, info)
	p.boleto = details
	return p
}

// NewPayPalPayment creates a PayPal payment.
func NewPayPalPayment(details PayPalDetails, info PaymentInfo) *Payment {
	p := newPayment(PaymentMethodPayPal, info)
	p.payPal = details
	return p
}

// NewCreditCardPayment creates a credit card payment.
func NewCreditCardPayment(details CreditCardDetails, info PaymentInfo) *Payment {
	p := newPayment(PaymentMethodCreditCard, info)
	p.creditCard = details
	return p
}

func newPayment(method PaymentMethod, info PaymentInfo) *Payment {
	p := &Payment{
		id:         uuid.New(),
		number:     newPaymentNumber(),
		paidDate:   info.PaidDate,
		expireDate: info.ExpireDate,
		total:      info.Total,
		totalPaid:  info.TotalPaid,
		payer:      info.Payer,
		document:   info.Document,
		address:    info.Address,
		email:      info.Email,
		method:     method,
	}
	// Nested value objects validate themselves; only the totals are checked here.
	p.AddNotifications(NewContract().
		IsGreaterThanDecimal(p.total, decimal.Zero, "Payment.Total", "Total must be greater than zero").
		IsGreaterOrEqualsThanDecimal(p.total, p.totalPaid, "Payment.TotalPaid", "Total paid cannot exceed the payment total"))
	return p
}

func (p *Payment) ID() uuid.UUID              { return p.id }
func (p *Payment) Number() string             { return p.number }
func (p *Payment) PaidDate() time.Time        { return p.paidDate }
func (p *Payment) ExpireDate() time.Time      { return p.expireDate }
func (p *Payment) Total() decimal.Decimal     { return p.total }
func (p *Payment) TotalPaid() decimal.Decimal { return p.totalPaid }
func (p *Payment) Payer() Name                { return p.payer }
func (p *Payment) Document() Document         { return p.document }
func (p *Payment) Address() Address           { return p.address }
func (p *Payment) Email() Email               { return p.email }
func (p *Payment) Method() PaymentMethod      { return p.method }

// Boleto returns the bank slip payload; ok is false for other methods.
func (p *Payment) Boleto() (BoletoDetails, bool) {
	return p.boleto, p.method == PaymentMethodBoleto
}

// PayPal returns the PayPal payload; ok is false for other methods.
func (p *Payment) PayPal() (PayPalDetails, bool) {
	return p.payPal, p.method == PaymentMethodPayPal
}

// CreditCard returns the credit card payload; ok is false for other methods.
func (p *Payment) CreditCard() (CreditCardDetails, bool) {
	return p.creditCard, p.method == PaymentMethodCreditCard
}

func newPaymentNumber() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:paymentNumberLength])
}
