/**
 * @description
 * This file contains the HTTP handler functions for the enrollment-service.
 * Handlers decode the command, call the subscription use case and map the outcome
 * to an HTTP status.
 */
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/transfa/enrollment-service/internal/domain"
)

// SubscriptionService is the use case behind the handlers.
type SubscriptionService interface {
	HandleBoleto(ctx context.Context, cmd domain.CreateBoletoSubscriptionCommand) (domain.CommandResult, error)
	HandlePayPal(ctx context.Context, cmd domain.CreatePayPalSubscriptionCommand) (domain.CommandResult, error)
	HandleCreditCard(ctx context.Context, cmd domain.CreateCreditCardSubscriptionCommand) (domain.CommandResult, error)
}

// Handler holds the application service that handlers will interact with.
type Handler struct {
	service SubscriptionService
}

// NewHandler creates a new Handler with the given service.
func NewHandler(service SubscriptionService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) handleCreateBoleto(w http.ResponseWriter, r *http.Request) {
	var cmd domain.CreateBoletoSubscriptionCommand
	if !decodeCommand(w, r, &cmd) {
		return
	}
	result, err := h.service.HandleBoleto(r.Context(), cmd)
	respondWithResult(w, result, err)
}

func (h *Handler) handleCreatePayPal(w http.ResponseWriter, r *http.Request) {
	var cmd domain.CreatePayPalSubscriptionCommand
	if !decodeCommand(w, r, &cmd) {
		return
	}
	result, err := h.service.HandlePayPal(r.Context(), cmd)
	respondWithResult(w, result, err)
}

func (h *Handler) handleCreateCreditCard(w http.ResponseWriter, r *http.Request) {
	var cmd domain.CreateCreditCardSubscriptionCommand
	if !decodeCommand(w, r, &cmd) {
		return
	}
	result, err := h.service.HandleCreditCard(r.Context(), cmd)
	respondWithResult(w, result, err)
}

func decodeCommand(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// respondWithResult maps a use case outcome to a status code.
func respondWithResult(w http.ResponseWriter, result domain.CommandResult, err error) {
	switch {
	case errors.Is(err, domain.ErrConflict):
		respondWithJSON(w, http.StatusConflict, result)
	case err != nil:
		log.Printf("subscription request failed: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	case !result.Success:
		respondWithJSON(w, http.StatusUnprocessableEntity, result)
	default:
		respondWithJSON(w, http.StatusCreated, result)
	}
}

// respondWithJSON is a helper function to write JSON responses.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
