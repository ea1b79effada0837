// internal/api/handler/account.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"wallet-ledger/internal/api/types"
	"wallet-ledger/internal/domain"
	"wallet-ledger/internal/util"
)

// CreateAccountRequestBody is the request body for account creation.
type CreateAccountRequestBody struct {
	Type string `json:"type" validate:"required,oneof=user system"`
	Name string `json:"name" validate:"required"`
}

// ListAccounts handles GET /api/v1/accounts.
func (h *WalletHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.service.ListAccounts(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, accounts)
}

// CreateAccount handles POST /api/v1/accounts.
func (h *WalletHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var body CreateAccountRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		h.respondWithError(w, err)
		return
	}

	account, err := h.service.CreateAccount(r.Context(), domain.AccountType(body.Type), body.Name)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusCreated, account)
}

// ListAssetTypes handles GET /api/v1/asset-types.
func (h *WalletHandler) ListAssetTypes(w http.ResponseWriter, r *http.Request) {
	assetTypes, err := h.service.ListAssetTypes(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, assetTypes)
}

// GetBalance handles GET /api/v1/accounts/{accountID}/balance?asset_type_id=N.
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "accountID")
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	assetTypeID, err := queryInt64(r, "asset_type_id")
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	balance, err := h.service.GetBalance(r.Context(), accountID, assetTypeID)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.BalanceResponse{
		AccountID:     balance.AccountID,
		AssetTypeID:   balance.AssetTypeID,
		Balance:       balance.Balance,
		DisplayAmount: balance.DisplayAmount,
	})
}

// GetLedger handles GET /api/v1/accounts/{accountID}/ledger.
func (h *WalletHandler) GetLedger(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "accountID")
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	assetTypeID, err := queryInt64(r, "asset_type_id")
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	page := queryIntDefault(r, "page", 1)
	pageSize := queryIntDefault(r, "page_size", 20)

	ledger, err := h.service.GetLedger(r.Context(), accountID, assetTypeID, page, pageSize)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.LedgerResponse{
		Entries:  ledger.Entries,
		Total:    ledger.Total,
		Page:     ledger.Page,
		PageSize: ledger.PageSize,
	})
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, util.ErrInvalidInput
	}
	return id, nil
}

func queryInt64(r *http.Request, name string) (int64, error) {
	value, err := strconv.ParseInt(r.URL.Query().Get(name), 10, 64)
	if err != nil || value <= 0 {
		return 0, util.ErrInvalidInput
	}
	return value, nil
}

func queryIntDefault(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
