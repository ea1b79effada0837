// internal/api/handler/transaction.go
package handler

import (
	"encoding/json"
	"net/http"

	"wallet-ledger/internal/api/types"
	"wallet-ledger/internal/domain"
	"wallet-ledger/internal/service"
	"wallet-ledger/internal/util"
)

// TransferRequestBody is the request body shared by the three transfer
// endpoints.
type TransferRequestBody struct {
	AccountID   int64  `json:"account_id" validate:"required,gt=0"`
	AssetTypeID int64  `json:"asset_type_id" validate:"required,gt=0"`
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	Description string `json:"description"`
}

// Topup handles POST /api/v1/transactions/topup.
func (h *WalletHandler) Topup(w http.ResponseWriter, r *http.Request) {
	h.handleTransfer(w, r, domain.TransactionTypeTopup)
}

// Bonus handles POST /api/v1/transactions/bonus.
func (h *WalletHandler) Bonus(w http.ResponseWriter, r *http.Request) {
	h.handleTransfer(w, r, domain.TransactionTypeBonus)
}

// Spend handles POST /api/v1/transactions/spend.
func (h *WalletHandler) Spend(w http.ResponseWriter, r *http.Request) {
	h.handleTransfer(w, r, domain.TransactionTypeSpend)
}

// handleTransfer enforces the caller protocol (idempotency key, body shape)
// and dispatches to the engine. 201 signals a newly applied transfer, 200 a
// replay of a previously applied one.
func (h *WalletHandler) handleTransfer(w http.ResponseWriter, r *http.Request, txType domain.TransactionType) {
	idempotencyKey := r.Header.Get(IdempotencyKeyHeader)
	if idempotencyKey == "" {
		h.respondWithError(w, util.ErrMissingIdempotencyKey)
		return
	}

	var body TransferRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		h.respondWithError(w, err)
		return
	}

	req := service.TransferRequest{
		AccountID:      body.AccountID,
		AssetTypeID:    body.AssetTypeID,
		Amount:         body.Amount,
		Description:    body.Description,
		IdempotencyKey: idempotencyKey,
	}

	var result *service.TransferResult
	var err error
	switch txType {
	case domain.TransactionTypeTopup:
		result, err = h.service.Topup(r.Context(), req)
	case domain.TransactionTypeBonus:
		result, err = h.service.Bonus(r.Context(), req)
	case domain.TransactionTypeSpend:
		result, err = h.service.Spend(r.Context(), req)
	}
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	h.respondWithJSON(w, status, types.TransactionResponse{
		Transaction:   result.Transaction,
		LedgerEntries: result.Entries,
		Idempotent:    result.Replayed,
	})
}
