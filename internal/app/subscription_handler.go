/**
 * @description
 * This file contains the subscription use case. The handler validates the incoming
 * command, checks document and e-mail uniqueness, builds the Student -> Subscription ->
 * Payment graph, aggregates every validation failure and only then persists the graph
 * and sends the welcome e-mail.
 *
 * @notes
 * - Validation failures are returned inside CommandResult, never as errors.
 * - Errors are reserved for collaborator failures (database, conflicts on insert).
 */
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/transfa/enrollment-service/internal/domain"
)

const (
	msgSubscriptionFailed    = "Unable to complete the subscription"
	msgSubscriptionSucceeded = "Subscription completed successfully"
	msgDocumentInUse         = "This document is already in use"
	msgEmailInUse            = "This e-mail is already in use"

	payerFieldPrefix = "Payer"
)

// StudentRepository is the storage contract the handler depends on.
type StudentRepository interface {
	DocumentExists(ctx context.Context, document string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	CreateSubscription(ctx context.Context, student *domain.Student) error
}

// EmailService delivers e-mails.
type EmailService interface {
	SendEmail(ctx context.Context, toName, toAddress, subject, body string) error
}

// WelcomeMessage is the e-mail sent after a successful subscription.
type WelcomeMessage struct {
	Subject string
	Body    string
}

// SubscriptionHandler creates subscriptions for the three supported payment methods.
type SubscriptionHandler struct {
	repo    StudentRepository
	email   EmailService
	welcome WelcomeMessage
	logger  *slog.Logger
	now     func() time.Time
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(repo StudentRepository, email EmailService, welcome WelcomeMessage, logger *slog.Logger) *SubscriptionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SubscriptionHandler{
		repo:    repo,
		email:   email,
		welcome: welcome,
		logger:  logger,
		now:     time.Now,
	}
}

// HandleBoleto subscribes a student paying with a bank slip.
func (h *SubscriptionHandler) HandleBoleto(ctx context.Context, cmd domain.CreateBoletoSubscriptionCommand) (domain.CommandResult, error) {
	details := domain.BoletoDetails{BarCode: cmd.BarCode, BoletoNumber: cmd.BoletoNumber}
	return h.subscribe(ctx, &cmd.SubscriptionCommand, func(info domain.PaymentInfo) *domain.Payment {
		return domain.NewBoletoPayment(details, info)
	})
}

// HandlePayPal subscribes a student paying through PayPal.
func (h *SubscriptionHandler) HandlePayPal(ctx context.Context, cmd domain.CreatePayPalSubscriptionCommand) (domain.CommandResult, error) {
	details := domain.PayPalDetails{TransactionCode: cmd.TransactionCode}
	return h.subscribe(ctx, &cmd.SubscriptionCommand, func(info domain.PaymentInfo) *domain.Payment {
		return domain.NewPayPalPayment(details, info)
	})
}

// HandleCreditCard subscribes a student paying by credit card.
func (h *SubscriptionHandler) HandleCreditCard(ctx context.Context, cmd domain.CreateCreditCardSubscriptionCommand) (domain.CommandResult, error) {
	details := domain.CreditCardDetails{
		CardHolderName:        cmd.CardHolderName,
		CardNumber:            cmd.CardNumber,
		LastTransactionNumber: cmd.LastTransactionNumber,
	}
	return h.subscribe(ctx, &cmd.SubscriptionCommand, func(info domain.PaymentInfo) *domain.Payment {
		return domain.NewCreditCardPayment(details, info)
	})
}

func (h *SubscriptionHandler) subscribe(
	ctx context.Context,
	cmd *domain.SubscriptionCommand,
	newPayment func(domain.PaymentInfo) *domain.Payment,
) (domain.CommandResult, error) {
	// Fail fast before touching the repository.
	cmd.Validate()
	if !cmd.IsValid() {
		return failure(cmd.Notifications()), nil
	}

	name := domain.NewName(cmd.FirstName, cmd.LastName)
	document := domain.NewDocument(cmd.Document, domain.DocumentTypeCPF)
	email := domain.NewEmail(cmd.Email)
	address := domain.NewAddress(cmd.Street, cmd.Number, cmd.Complement, cmd.Neighborhood,
		cmd.City, cmd.State, cmd.Country, cmd.ZipCode)

	payer := newPayerName(cmd.Payer, cmd.PayerDocumentType)
	payerDocument := domain.NewDocument(cmd.PayerDocument, cmd.PayerDocumentType)
	payerEmail := domain.NewEmail(firstNonBlank(cmd.PayerEmail, cmd.Email))

	// Per-request accumulator; the handler itself is shared between requests.
	var result domain.Notifiable

	documentInUse, err := h.repo.DocumentExists(ctx, document.Number())
	if err != nil {
		return failure(nil), fmt.Errorf("check document: %w", err)
	}
	if documentInUse {
		result.AddNotification("Document", msgDocumentInUse)
	}

	emailInUse, err := h.repo.EmailExists(ctx, email.Address())
	if err != nil {
		return failure(nil), fmt.Errorf("check email: %w", err)
	}
	if emailInUse {
		result.AddNotification("Email", msgEmailInUse)
	}

	now := h.now()
	student := domain.NewStudent(name, document, email)
	subscription := domain.NewSubscription(now, now.AddDate(0, 1, 0))
	payment := newPayment(domain.PaymentInfo{
		PaidDate:   cmd.PaidDate,
		ExpireDate: cmd.ExpireDate,
		Total:      cmd.Total,
		TotalPaid:  cmd.TotalPaid,
		Payer:      payer,
		Document:   payerDocument,
		Address:    address,
		Email:      payerEmail,
	})

	subscription.AddPayment(payment)
	student.AddSubscription(subscription)

	result.AddNotifications(&name, &document, &email, &address, student, subscription, payment)
	result.AddPrefixedNotifications(payerFieldPrefix, &payer, &payerDocument, &payerEmail)
	if !result.IsValid() {
		return failure(result.Notifications()), nil
	}

	if err := h.repo.CreateSubscription(ctx, student); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			result.AddNotification("Student", err.Error())
			return failure(result.Notifications()), fmt.Errorf("create subscription: %w", err)
		}
		return failure(nil), fmt.Errorf("create subscription: %w", err)
	}

	if err := h.email.SendEmail(ctx, student.Name.String(), student.Email.Address(), h.welcome.Subject, h.welcome.Body); err != nil {
		// The subscription is already stored; a lost welcome e-mail must not fail the request.
		h.logger.Error("failed to send welcome email", "student_id", student.ID, "error", err)
	}

	h.logger.Info("subscription created",
		"student_id", student.ID,
		"subscription_id", subscription.ID,
		"payment_number", payment.Number(),
		"method", payment.Method(),
	)
	return domain.CommandResult{Success: true, Message: msgSubscriptionSucceeded}, nil
}

func failure(notifications []domain.Notification) domain.CommandResult {
	return domain.CommandResult{
		Success:       false,
		Message:       msgSubscriptionFailed,
		Notifications: notifications,
	}
}

// newPayerName treats a CNPJ payer as a company and any other payer as a person.
func newPayerName(payer string, documentType domain.DocumentType) domain.Name {
	if documentType == domain.DocumentTypeCNPJ {
		return domain.NewCompanyName(payer)
	}
	return domain.NewName(splitPayerName(payer))
}

// splitPayerName splits "First Rest Of Name" at the first space.
func splitPayerName(payer string) (string, string) {
	first, last, _ := strings.Cut(strings.TrimSpace(payer), " ")
	return first, strings.TrimSpace(last)
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
