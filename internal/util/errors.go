// internal/util/errors.go
package util

import (
	"errors"
	"fmt"
)

// Common application-specific errors.
var (
	ErrNotFound              = errors.New("resource not found")
	ErrAccountNotFound       = errors.New("account not found")
	ErrAssetTypeNotFound     = errors.New("asset type not found")
	ErrInvalidInput          = errors.New("invalid input provided")
	ErrMissingIdempotencyKey = errors.New("idempotency key is required")
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrConflictRace          = errors.New("concurrent request with the same idempotency key; retry is safe")
	ErrSystemAccountMissing  = errors.New("system account missing")
)

// InsufficientFundsError reports a balance-checked transfer that found the
// source wallet short. It unwraps to ErrInsufficientFunds so callers can
// branch with errors.Is.
type InsufficientFundsError struct {
	AccountID   int64
	AssetTypeID int64
	Available   int64
	Requested   int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: account %d, asset type %d, available %d, requested %d",
		e.AccountID, e.AssetTypeID, e.Available, e.Requested)
}

func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}

// IsError reports whether err wraps target.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
