// internal/api/handler/wallet.go
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"wallet-ledger/internal/api/types"
	"wallet-ledger/internal/service"
	"wallet-ledger/internal/util"
)

// DefaultTimeout bounds request handling at the router level.
const DefaultTimeout = 30 * time.Second

// IdempotencyKeyHeader is the caller-supplied request key required on every
// mutating endpoint.
const IdempotencyKeyHeader = "Idempotency-Key"

// WalletHandler handles HTTP requests for the wallet ledger.
type WalletHandler struct {
	service  service.WalletService
	logger   *slog.Logger
	validate *validator.Validate
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(svc service.WalletService, logger *slog.Logger) *WalletHandler {
	return &WalletHandler{
		service:  svc,
		logger:   logger,
		validate: validator.New(),
	}
}

// respondWithJSON sends a JSON response.
func (h *WalletHandler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithError maps service errors to HTTP statuses in one place.
func (h *WalletHandler) respondWithError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	var insufficientFunds *util.InsufficientFundsError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &validationErrs):
		details := make(map[string]string, len(validationErrs))
		for _, fieldErr := range validationErrs {
			details[fieldErr.Field()] = fmt.Sprintf("failed validation on %q", fieldErr.Tag())
		}
		h.respondWithJSON(w, http.StatusBadRequest, types.ErrorResponse{Error: "Validation failed", Details: details})
		return
	case errors.As(err, &insufficientFunds):
		h.respondWithJSON(w, http.StatusUnprocessableEntity, types.ErrorResponse{
			Error: "Insufficient funds",
			Details: map[string]string{
				"account_id":    fmt.Sprint(insufficientFunds.AccountID),
				"asset_type_id": fmt.Sprint(insufficientFunds.AssetTypeID),
				"available":     fmt.Sprint(insufficientFunds.Available),
				"requested":     fmt.Sprint(insufficientFunds.Requested),
			},
		})
		return
	case util.IsError(err, util.ErrInsufficientFunds):
		statusCode = http.StatusUnprocessableEntity
		message = "Insufficient funds"
	case util.IsError(err, util.ErrMissingIdempotencyKey):
		statusCode = http.StatusBadRequest
		message = util.ErrMissingIdempotencyKey.Error()
	case util.IsError(err, util.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case util.IsError(err, util.ErrAccountNotFound),
		util.IsError(err, util.ErrAssetTypeNotFound),
		util.IsError(err, util.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "Resource not found"
	case util.IsError(err, util.ErrConflictRace):
		statusCode = http.StatusConflict
		message = util.ErrConflictRace.Error()
	case util.IsError(err, util.ErrSystemAccountMissing):
		h.logger.Error("System account missing, check seed data", "error", err)
	default:
		h.logger.Error("Unhandled service error", "error", err)
	}

	h.respondWithJSON(w, statusCode, types.ErrorResponse{Error: message})
}
