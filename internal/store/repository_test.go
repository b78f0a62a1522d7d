package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/transfa/enrollment-service/internal/domain"
)

func TestTranslateErrorMapsUniqueViolations(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		wantText   string
	}{
		{name: "document", constraint: "students_document_number_key", wantText: "document already registered"},
		{name: "email", constraint: "students_email_key", wantText: "e-mail already registered"},
		{name: "unknown constraint", constraint: "other_key", wantText: "other_key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pgErr := &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: tt.constraint}
			err := translateError(fmt.Errorf("insert student: %w", pgErr))
			if !errors.Is(err, domain.ErrConflict) {
				t.Fatalf("expected ErrConflict, got %v", err)
			}
			want := domain.ErrConflict.Error() + ": " + tt.wantText
			if err.Error() != want {
				t.Fatalf("expected %q, got %q", want, err.Error())
			}
		})
	}
}

func TestTranslateErrorPassesOtherErrorsThrough(t *testing.T) {
	if translateError(nil) != nil {
		t.Fatal("expected nil for nil error")
	}

	fkErr := &pgconn.PgError{Code: "23503"}
	if err := translateError(fkErr); errors.Is(err, domain.ErrConflict) || err != fkErr {
		t.Fatalf("expected foreign key error to pass through unchanged, got %v", err)
	}

	plain := errors.New("connection reset")
	if err := translateError(plain); err != plain {
		t.Fatalf("expected plain error unchanged, got %v", err)
	}
}

func TestMaskCardNumber(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "4111 1111 1111 1234", want: "************1234"},
		{input: "5500-0000-0000-0004", want: "************0004"},
		{input: "123", want: "123"},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := maskCardNumber(tt.input); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestPaymentVariantColumns(t *testing.T) {
	info := domain.PaymentInfo{
		PaidDate:   time.Now(),
		ExpireDate: time.Now().AddDate(0, 0, 5),
		Total:      decimal.RequireFromString("100.00"),
		TotalPaid:  decimal.RequireFromString("100.00"),
	}

	boleto := paymentVariantColumns(domain.NewBoletoPayment(domain.BoletoDetails{BarCode: "2379", BoletoNumber: "0001"}, info))
	if boleto.BarCode == nil || *boleto.BarCode != "2379" || boleto.BoletoNumber == nil || *boleto.BoletoNumber != "0001" {
		t.Fatalf("unexpected boleto columns: %+v", boleto)
	}
	if boleto.TransactionCode != nil || boleto.CardNumberMasked != nil {
		t.Fatalf("expected only boleto columns to be set: %+v", boleto)
	}

	paypal := paymentVariantColumns(domain.NewPayPalPayment(domain.PayPalDetails{TransactionCode: "PP-1"}, info))
	if paypal.TransactionCode == nil || *paypal.TransactionCode != "PP-1" || paypal.BarCode != nil {
		t.Fatalf("unexpected paypal columns: %+v", paypal)
	}

	card := paymentVariantColumns(domain.NewCreditCardPayment(domain.CreditCardDetails{
		CardHolderName:        "ANA SOUZA",
		CardNumber:            "4111111111111234",
		LastTransactionNumber: "T-9",
	}, info))
	if card.CardNumberMasked == nil || *card.CardNumberMasked != "************1234" {
		t.Fatalf("expected masked card number, got %+v", card)
	}
	if card.CardHolderName == nil || *card.CardHolderName != "ANA SOUZA" || card.TransactionCode != nil {
		t.Fatalf("unexpected card columns: %+v", card)
	}
}
