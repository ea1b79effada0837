// internal/api/types/response.go
package types

import "wallet-ledger/internal/domain"

// TransactionResponse is the payload returned by the transfer endpoints.
// Idempotent is true when the response was replayed from a previously
// processed request with the same Idempotency-Key.
type TransactionResponse struct {
	Transaction   *domain.Transaction  `json:"transaction"`
	LedgerEntries []domain.LedgerEntry `json:"ledger_entries"`
	Idempotent    bool                 `json:"idempotent"`
}

// BalanceResponse carries a derived balance. DisplayAmount is the balance
// shifted by the asset type's decimals, for presentation only.
type BalanceResponse struct {
	AccountID     int64  `json:"account_id"`
	AssetTypeID   int64  `json:"asset_type_id"`
	Balance       int64  `json:"balance"`
	DisplayAmount string `json:"display_amount"`
}

// LedgerResponse is one page of an account's entry history, newest first.
type LedgerResponse struct {
	Entries  []domain.LedgerEntryView `json:"entries"`
	Total    int64                    `json:"total"`
	Page     int                      `json:"page"`
	PageSize int                      `json:"page_size"`
}

// ErrorResponse is the uniform error payload. Details carries per-field
// validation messages when present.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}
