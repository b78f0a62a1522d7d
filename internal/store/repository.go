/**
 * @description
 * This file implements the data access layer for the enrollment-service. It persists
 * the Student -> Subscription -> Payment graph in a single transaction and answers the
 * uniqueness questions asked by the subscription handler.
 *
 * @dependencies
 * - github.com/jackc/pgx/v5: PostgreSQL driver, pool and error types.
 */
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/transfa/enrollment-service/internal/domain"
)

const uniqueViolationCode = "23505"

// Repository handles database operations for students and their subscriptions.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// DocumentExists reports whether a student already uses the document number.
// The number is expected in the digits-only form produced by domain.NewDocument.
func (r *Repository) DocumentExists(ctx context.Context, document string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM students WHERE document_number = $1)`
	if err := r.db.QueryRow(ctx, query, document).Scan(&exists); err != nil {
		return false, fmt.Errorf("query document: %w", err)
	}
	return exists, nil
}

// EmailExists reports whether a student already uses the e-mail, ignoring case.
func (r *Repository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM students WHERE LOWER(email) = LOWER($1))`
	if err := r.db.QueryRow(ctx, query, strings.TrimSpace(email)).Scan(&exists); err != nil {
		return false, fmt.Errorf("query email: %w", err)
	}
	return exists, nil
}

// CreateSubscription stores the student with all of its subscriptions and payments.
// Either everything is written or nothing is.
func (r *Repository) CreateSubscription(ctx context.Context, student *domain.Student) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := insertStudent(ctx, tx, student); err != nil {
			return err
		}
		for _, sub := range student.Subscriptions() {
			if err := insertSubscription(ctx, tx, student.ID.String(), sub); err != nil {
				return err
			}
			for _, payment := range sub.Payments() {
				if err := insertPayment(ctx, tx, sub.ID.String(), payment); err != nil {
					return err
				}
			}
		}
		return nil
	})
	return translateError(err)
}

// DeactivateExpiredSubscriptions marks every active subscription that expired before
// now as inactive and returns how many were changed.
func (r *Repository) DeactivateExpiredSubscriptions(ctx context.Context, now time.Time) (int64, error) {
	query := `
        UPDATE subscriptions
        SET active = FALSE, last_update_date = $1
        WHERE active AND expire_date <= $1
    `
	tag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("deactivate expired subscriptions: %w", err)
	}
	return tag.RowsAffected(), nil
}

func insertStudent(ctx context.Context, tx pgx.Tx, s *domain.Student) error {
	query := `
        INSERT INTO students (id, first_name, last_name, document_number, document_type, email)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := tx.Exec(ctx, query,
		s.ID.String(),
		s.Name.FirstName(),
		s.Name.LastName(),
		s.Document.Number(),
		string(s.Document.Type()),
		s.Email.Address(),
	)
	return err
}

func insertSubscription(ctx context.Context, tx pgx.Tx, studentID string, s *domain.Subscription) error {
	query := `
        INSERT INTO subscriptions (id, student_id, create_date, last_update_date, expire_date, active)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := tx.Exec(ctx, query,
		s.ID.String(),
		studentID,
		s.CreateDate,
		s.LastUpdateDate,
		s.ExpireDate,
		s.Active,
	)
	return err
}

func insertPayment(ctx context.Context, tx pgx.Tx, subscriptionID string, p *domain.Payment) error {
	query := `
        INSERT INTO payments (
            id, subscription_id, number, method, paid_date, expire_date, total, total_paid,
            payer_first_name, payer_last_name, payer_document_number, payer_document_type, payer_email,
            street, street_number, complement, neighborhood, city, state, country, zip_code,
            bar_code, boleto_number, transaction_code, card_holder_name, card_number_masked,
            last_transaction_number
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8,
            $9, $10, $11, $12, $13,
            $14, $15, $16, $17, $18, $19, $20, $21,
            $22, $23, $24, $25, $26,
            $27
        )
    `
	v := paymentVariantColumns(p)
	payer, document, address := p.Payer(), p.Document(), p.Address()
	_, err := tx.Exec(ctx, query,
		p.ID().String(), subscriptionID, p.Number(), string(p.Method()), p.PaidDate(), p.ExpireDate(),
		p.Total().StringFixed(2), p.TotalPaid().StringFixed(2),
		payer.FirstName(), payer.LastName(), document.Number(), string(document.Type()), p.Email().Address(),
		address.Street(), address.Number(), address.Complement(), address.Neighborhood(),
		address.City(), address.State(), address.Country(), address.ZipCode(),
		v.BarCode, v.BoletoNumber, v.TransactionCode, v.CardHolderName, v.CardNumberMasked,
		v.LastTransactionNumber,
	)
	return err
}

// variantColumns holds the nullable method-specific payment columns.
type variantColumns struct {
	BarCode               *string
	BoletoNumber          *string
	TransactionCode       *string
	CardHolderName        *string
	CardNumberMasked      *string
	LastTransactionNumber *string
}

func paymentVariantColumns(p *domain.Payment) variantColumns {
	var v variantColumns
	if boleto, ok := p.Boleto(); ok {
		v.BarCode = &boleto.BarCode
		v.BoletoNumber = &boleto.BoletoNumber
	}
	if paypal, ok := p.PayPal(); ok {
		v.TransactionCode = &paypal.TransactionCode
	}
	if card, ok := p.CreditCard(); ok {
		masked := maskCardNumber(card.CardNumber)
		v.CardHolderName = &card.CardHolderName
		v.CardNumberMasked = &masked
		v.LastTransactionNumber = &card.LastTransactionNumber
	}
	return v
}

// maskCardNumber keeps only the last four digits.
func maskCardNumber(number string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
	if len(digits) <= 4 {
		return digits
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

// translateError maps unique violations to domain.ErrConflict.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return fmt.Errorf("%w: %s", domain.ErrConflict, conflictSubject(pgErr.ConstraintName))
	}
	return err
}

func conflictSubject(constraint string) string {
	switch constraint {
	case "students_document_number_key":
		return "document already registered"
	case "students_email_key":
		return "e-mail already registered"
	case "payments_number_key":
		return "payment number already registered"
	default:
		return constraint
	}
}
