package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/transfa/enrollment-service/internal/domain"
)

const testSecret = "test-secret"

type serviceStub struct {
	result domain.CommandResult
	err    error

	boleto     *domain.CreateBoletoSubscriptionCommand
	paypal     *domain.CreatePayPalSubscriptionCommand
	creditCard *domain.CreateCreditCardSubscriptionCommand
}

func (s *serviceStub) HandleBoleto(ctx context.Context, cmd domain.CreateBoletoSubscriptionCommand) (domain.CommandResult, error) {
	s.boleto = &cmd
	return s.result, s.err
}

func (s *serviceStub) HandlePayPal(ctx context.Context, cmd domain.CreatePayPalSubscriptionCommand) (domain.CommandResult, error) {
	s.paypal = &cmd
	return s.result, s.err
}

func (s *serviceStub) HandleCreditCard(ctx context.Context, cmd domain.CreateCreditCardSubscriptionCommand) (domain.CommandResult, error) {
	s.creditCard = &cmd
	return s.result, s.err
}

func signToken(t *testing.T, secret string, method jwt.SigningMethod, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func validToken(t *testing.T) string {
	return signToken(t, testSecret, jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "checkout-service",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
}

func doRequest(t *testing.T, router http.Handler, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSubscriptionRoutes_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		result     domain.CommandResult
		err        error
		wantStatus int
	}{
		{name: "success", result: domain.CommandResult{Success: true, Message: "ok"}, wantStatus: http.StatusCreated},
		{
			name: "validation failure",
			result: domain.CommandResult{
				Message:       "failed",
				Notifications: []domain.Notification{{Field: "Document", Message: "in use"}},
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "conflict",
			result:     domain.CommandResult{Message: "failed"},
			err:        fmt.Errorf("create subscription: %w", domain.ErrConflict),
			wantStatus: http.StatusConflict,
		},
		{name: "infrastructure error", err: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &serviceStub{result: tt.result, err: tt.err}
			router := NewRouter(NewHandler(svc), testSecret)

			rec := doRequest(t, router, "/subscriptions/boleto", `{"first_name":"Maria","bar_code":"2379"}`, validToken(t))
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
			if tt.err == nil || errors.Is(tt.err, domain.ErrConflict) {
				var got domain.CommandResult
				if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
					t.Fatalf("expected JSON result: %v", err)
				}
				if got.Success != tt.result.Success || len(got.Notifications) != len(tt.result.Notifications) {
					t.Fatalf("unexpected body %+v", got)
				}
			}
		})
	}
}

func TestSubscriptionRoutes_DecodeEachMethod(t *testing.T) {
	svc := &serviceStub{result: domain.CommandResult{Success: true}}
	router := NewRouter(NewHandler(svc), testSecret)
	token := validToken(t)

	doRequest(t, router, "/subscriptions/boleto", `{"first_name":"Maria","boleto_number":"0001"}`, token)
	doRequest(t, router, "/subscriptions/paypal", `{"first_name":"Maria","transaction_code":"PAYID"}`, token)
	doRequest(t, router, "/subscriptions/credit-card", `{"first_name":"Maria","card_holder_name":"MARIA"}`, token)

	if svc.boleto == nil || svc.boleto.BoletoNumber != "0001" || svc.boleto.FirstName != "Maria" {
		t.Fatalf("unexpected boleto command %+v", svc.boleto)
	}
	if svc.paypal == nil || svc.paypal.TransactionCode != "PAYID" {
		t.Fatalf("unexpected paypal command %+v", svc.paypal)
	}
	if svc.creditCard == nil || svc.creditCard.CardHolderName != "MARIA" {
		t.Fatalf("unexpected credit card command %+v", svc.creditCard)
	}
}

func TestSubscriptionRoutes_RejectsMalformedBody(t *testing.T) {
	svc := &serviceStub{}
	router := NewRouter(NewHandler(svc), testSecret)

	rec := doRequest(t, router, "/subscriptions/paypal", `{"first_name":`, validToken(t))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if svc.paypal != nil {
		t.Fatal("expected service not to be called")
	}
}

func TestJWTAuthMiddleware(t *testing.T) {
	expired := signToken(t, testSecret, jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "checkout-service",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	wrongKey := signToken(t, "another-secret", jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "checkout-service",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	noExpiry := signToken(t, testSecret, jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "checkout-service"})
	noSubject := signToken(t, testSecret, jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	wrongAlg := signToken(t, testSecret, jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "checkout-service",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid", header: "Bearer " + validToken(t), wantStatus: http.StatusOK},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", header: "Token abc", wantStatus: http.StatusUnauthorized},
		{name: "expired", header: "Bearer " + expired, wantStatus: http.StatusUnauthorized},
		{name: "wrong key", header: "Bearer " + wrongKey, wantStatus: http.StatusUnauthorized},
		{name: "no expiry", header: "Bearer " + noExpiry, wantStatus: http.StatusUnauthorized},
		{name: "no subject", header: "Bearer " + noSubject, wantStatus: http.StatusUnauthorized},
		{name: "wrong algorithm", header: "Bearer " + wrongAlg, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var subject string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				subject, _ = SubjectFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			JWTAuthMiddleware(testSecret)(next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
			if tt.wantStatus == http.StatusOK && subject != "checkout-service" {
				t.Fatalf("expected subject in context, got %q", subject)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	router := NewRouter(NewHandler(&serviceStub{}), testSecret)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSubscriptionRoutes_RequireToken(t *testing.T) {
	svc := &serviceStub{}
	router := NewRouter(NewHandler(svc), testSecret)

	rec := doRequest(t, router, "/subscriptions/boleto", `{}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if svc.boleto != nil {
		t.Fatal("expected service not to be called without a token")
	}
}
