// internal/service/wallet_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"wallet-ledger/internal/domain"
	"wallet-ledger/internal/metrics"
	"wallet-ledger/internal/repository"
	"wallet-ledger/internal/util"
	"wallet-ledger/pkg/db"
)

// TransferRequest carries the caller-facing parameters of a topup, bonus or
// spend.
type TransferRequest struct {
	AccountID      int64
	AssetTypeID    int64
	Amount         int64
	Description    string
	IdempotencyKey string
}

// TransferResult is the outcome of a transfer. Replayed is true when the
// idempotency key had already been applied and the prior transaction was
// returned instead of running the transfer again.
type TransferResult struct {
	Transaction *domain.Transaction
	Entries     []domain.LedgerEntry
	Replayed    bool
}

// BalanceResult is a derived balance together with its presentation form.
type BalanceResult struct {
	AccountID     int64
	AssetTypeID   int64
	Balance       int64
	DisplayAmount string
}

// LedgerPage is one page of an account's entry history, newest first.
type LedgerPage struct {
	Entries  []domain.LedgerEntryView
	Total    int64
	Page     int
	PageSize int
}

// WalletService defines the ledger engine's operations.
type WalletService interface {
	Topup(ctx context.Context, req TransferRequest) (*TransferResult, error)
	Bonus(ctx context.Context, req TransferRequest) (*TransferResult, error)
	Spend(ctx context.Context, req TransferRequest) (*TransferResult, error)
	GetBalance(ctx context.Context, accountID, assetTypeID int64) (*BalanceResult, error)
	GetLedger(ctx context.Context, accountID, assetTypeID int64, page, pageSize int) (*LedgerPage, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	CreateAccount(ctx context.Context, accountType domain.AccountType, name string) (*domain.Account, error)
	ListAssetTypes(ctx context.Context) ([]domain.AssetType, error)
}

// walletService implements the WalletService interface on top of the
// repositories. Every transfer runs as one database transaction; the
// pessimistic wallet locks inside it are the only serialization points, so
// transfers on disjoint wallet sets proceed fully in parallel.
type walletService struct {
	dbBeginner      db.DBTxBeginner       // For starting units of work (e.g. *sqlx.DB)
	dbExecutor      repository.DBExecutor // For non-transactional reads (e.g. *sqlx.DB)
	accountRepo     repository.AccountRepository
	assetTypeRepo   repository.AssetTypeRepository
	walletRepo      repository.WalletRepository
	transactionRepo repository.TransactionRepository
	ledgerRepo      repository.LedgerRepository
	beginTx         db.BeginTxFunc
	commitTx        db.CommitTxFunc
	rollbackTx      db.RollbackTxFunc
	metrics         *metrics.Metrics
}

// NewWalletService creates a new instance of WalletService.
func NewWalletService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	accountRepo repository.AccountRepository,
	assetTypeRepo repository.AssetTypeRepository,
	walletRepo repository.WalletRepository,
	transactionRepo repository.TransactionRepository,
	ledgerRepo repository.LedgerRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
	m *metrics.Metrics,
) WalletService {
	return &walletService{
		dbBeginner:      dbBeginner,
		dbExecutor:      dbExecutor,
		accountRepo:     accountRepo,
		assetTypeRepo:   assetTypeRepo,
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		ledgerRepo:      ledgerRepo,
		beginTx:         beginTx,
		commitTx:        commitTx,
		rollbackTx:      rollbackTx,
		metrics:         m,
	}
}

// Topup credits a user's wallet from the Treasury system account.
func (s *walletService) Topup(ctx context.Context, req TransferRequest) (*TransferResult, error) {
	return s.observe(ctx, domain.TransactionTypeTopup, req, "Wallet top-up")
}

// Bonus issues free credits from the Treasury to a user's wallet. Mechanically
// identical to Topup; the distinct type label exists for reporting.
func (s *walletService) Bonus(ctx context.Context, req TransferRequest) (*TransferResult, error) {
	return s.observe(ctx, domain.TransactionTypeBonus, req, "Bonus credit")
}

// Spend debits a user's wallet into the Revenue system account. The source
// balance is checked while the wallet lock is held, so a committed spend can
// never leave a user wallet negative.
func (s *walletService) Spend(ctx context.Context, req TransferRequest) (*TransferResult, error) {
	return s.observe(ctx, domain.TransactionTypeSpend, req, "Credit spend")
}

// observe wraps transfer with metrics.
func (s *walletService) observe(ctx context.Context, txType domain.TransactionType, req TransferRequest, defaultDescription string) (*TransferResult, error) {
	started := time.Now()
	result, err := s.transfer(ctx, txType, req, defaultDescription)
	switch {
	case err == nil && result.Replayed:
		s.metrics.ObserveTransfer(string(txType), metrics.ResultReplayed, started)
	case err == nil:
		s.metrics.ObserveTransfer(string(txType), metrics.ResultOK, started)
	case util.IsError(err, util.ErrInsufficientFunds):
		s.metrics.ObserveTransfer(string(txType), metrics.ResultInsufficientFunds, started)
	default:
		s.metrics.ObserveTransfer(string(txType), metrics.ResultError, started)
	}
	return result, err
}

// transfer executes one money-moving unit of work:
//
//  1. fast-fail validation of the account and asset type (no mutation)
//  2. idempotency gate; a duplicate key short-circuits to the prior result
//  3. wallet resolution for both parties (get-or-create)
//  4. row locks on both wallets in ascending ID order
//  5. optional source-balance check while the locks are held
//  6. two balanced ledger entries (-amount source, +amount destination)
//  7. commit
//
// Any failure before commit rolls the whole unit of work back, including the
// transaction row and its idempotency key, so a retry with the same key is
// always safe.
func (s *walletService) transfer(ctx context.Context, txType domain.TransactionType, req TransferRequest, defaultDescription string) (*TransferResult, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", util.ErrInvalidInput)
	}
	if req.IdempotencyKey == "" {
		return nil, util.ErrMissingIdempotencyKey
	}

	// Step 1: validate referenced entities before opening a unit of work.
	if _, err := s.accountRepo.GetByID(ctx, s.dbExecutor, req.AccountID); err != nil {
		return nil, err
	}
	if _, err := s.assetTypeRepo.GetByID(ctx, s.dbExecutor, req.AssetTypeID); err != nil {
		return nil, err
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to begin transaction: %w", txType, err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("%s: transaction controller does not implement DBExecutor", txType)
	}

	description := req.Description
	if description == "" {
		description = defaultDescription
	}

	// Step 2: idempotency gate.
	admitted, err := s.transactionRepo.InsertIfNew(ctx, txExecutor, req.IdempotencyKey, txType, description)
	if err != nil {
		return nil, fmt.Errorf("%s: idempotency gate failed: %w", txType, err)
	}

	txn, err := s.transactionRepo.GetByIdempotencyKey(ctx, txExecutor, req.IdempotencyKey)
	if err != nil {
		if !admitted && util.IsError(err, util.ErrNotFound) {
			// We lost the insert race but the winner's row is not visible:
			// it rolled back between our two statements. The caller may
			// retry the same key.
			return nil, util.ErrConflictRace
		}
		return nil, fmt.Errorf("%s: failed to read transaction for key: %w", txType, err)
	}

	if !admitted {
		// Replay: return the prior transaction untouched. The deferred
		// rollback is a no-op since nothing was written.
		entries, err := s.ledgerRepo.GetByTransactionID(ctx, txExecutor, txn.ID)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to read replayed entries: %w", txType, err)
		}
		return &TransferResult{Transaction: txn, Entries: entries, Replayed: true}, nil
	}

	// Step 3: resolve both wallets. The system counterparty depends on the
	// flow: Treasury funds topups and bonuses, Revenue receives spends.
	systemName := domain.TreasuryAccountName
	if txType == domain.TransactionTypeSpend {
		systemName = domain.RevenueAccountName
	}
	systemAccount, err := s.accountRepo.GetByName(ctx, txExecutor, systemName)
	if err != nil {
		if util.IsError(err, util.ErrAccountNotFound) {
			return nil, fmt.Errorf("%w: %q", util.ErrSystemAccountMissing, systemName)
		}
		return nil, fmt.Errorf("%s: failed to resolve system account: %w", txType, err)
	}

	userWallet, err := s.walletRepo.GetOrCreate(ctx, txExecutor, req.AccountID, req.AssetTypeID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to resolve user wallet: %w", txType, err)
	}
	systemWallet, err := s.walletRepo.GetOrCreate(ctx, txExecutor, systemAccount.ID, req.AssetTypeID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to resolve system wallet: %w", txType, err)
	}

	source, dest := systemWallet, userWallet
	checkSourceBalance := false
	if txType == domain.TransactionTypeSpend {
		source, dest = userWallet, systemWallet
		checkSourceBalance = true
	}

	// Step 4: lock both wallets. Both wallets exist at this point; locking
	// never precedes creation.
	if err := s.walletRepo.LockWallets(ctx, txExecutor, []int64{source.ID, dest.ID}); err != nil {
		return nil, fmt.Errorf("%s: failed to lock wallets: %w", txType, err)
	}

	// Step 5: balance check under the lock. Concurrent transfers touching the
	// source wallet have either committed before our lock was granted or are
	// queued behind it, so this read is serialized.
	if checkSourceBalance {
		balance, err := s.ledgerRepo.GetWalletBalance(ctx, txExecutor, source.ID)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to read source balance: %w", txType, err)
		}
		if balance < req.Amount {
			return nil, &util.InsufficientFundsError{
				AccountID:   req.AccountID,
				AssetTypeID: req.AssetTypeID,
				Available:   balance,
				Requested:   req.Amount,
			}
		}
	}

	// Step 6: append the balanced entry pair.
	if err := s.ledgerRepo.Insert(ctx, txExecutor, txn.ID, source.ID, -req.Amount); err != nil {
		return nil, fmt.Errorf("%s: failed to write debit entry: %w", txType, err)
	}
	if err := s.ledgerRepo.Insert(ctx, txExecutor, txn.ID, dest.ID, req.Amount); err != nil {
		return nil, fmt.Errorf("%s: failed to write credit entry: %w", txType, err)
	}

	entries, err := s.ledgerRepo.GetByTransactionID(ctx, txExecutor, txn.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read written entries: %w", txType, err)
	}

	// Step 7: commit.
	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("%s: failed to commit transaction: %w", txType, err)
	}
	s.metrics.AddEntriesWritten(len(entries))

	return &TransferResult{Transaction: txn, Entries: entries, Replayed: false}, nil
}

// GetBalance derives the balance for (accountID, assetTypeID) from the entry
// log. Two successive calls are independent reads; no repeatable-read
// guarantee holds across them.
func (s *walletService) GetBalance(ctx context.Context, accountID, assetTypeID int64) (*BalanceResult, error) {
	if _, err := s.accountRepo.GetByID(ctx, s.dbExecutor, accountID); err != nil {
		return nil, err
	}
	assetType, err := s.assetTypeRepo.GetByID(ctx, s.dbExecutor, assetTypeID)
	if err != nil {
		return nil, err
	}

	balance, err := s.ledgerRepo.GetAccountBalance(ctx, s.dbExecutor, accountID, assetTypeID)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}
	s.metrics.IncBalanceReads()

	return &BalanceResult{
		AccountID:     accountID,
		AssetTypeID:   assetTypeID,
		Balance:       balance,
		DisplayAmount: displayAmount(balance, assetType.Decimals),
	}, nil
}

// GetLedger returns one page of the account's entry history for an asset
// type, newest first. Page is clamped to >= 1 and pageSize to [1, 100];
// a non-positive pageSize falls back to the default of 20.
func (s *walletService) GetLedger(ctx context.Context, accountID, assetTypeID int64, page, pageSize int) (*LedgerPage, error) {
	if _, err := s.accountRepo.GetByID(ctx, s.dbExecutor, accountID); err != nil {
		return nil, err
	}
	if _, err := s.assetTypeRepo.GetByID(ctx, s.dbExecutor, assetTypeID); err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	entries, err := s.ledgerRepo.GetLedger(ctx, s.dbExecutor, accountID, assetTypeID, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("get ledger: %w", err)
	}
	total, err := s.ledgerRepo.CountLedger(ctx, s.dbExecutor, accountID, assetTypeID)
	if err != nil {
		return nil, fmt.Errorf("get ledger: %w", err)
	}

	return &LedgerPage{Entries: entries, Total: total, Page: page, PageSize: pageSize}, nil
}

// ListAccounts returns all accounts.
func (s *walletService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepo.List(ctx, s.dbExecutor)
}

// CreateAccount creates a user or system account with a unique name.
func (s *walletService) CreateAccount(ctx context.Context, accountType domain.AccountType, name string) (*domain.Account, error) {
	if accountType != domain.AccountTypeUser && accountType != domain.AccountTypeSystem {
		return nil, fmt.Errorf("%w: account type must be 'user' or 'system'", util.ErrInvalidInput)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: account name is required", util.ErrInvalidInput)
	}

	account := &domain.Account{Type: accountType, Name: name}
	if err := s.accountRepo.Create(ctx, s.dbExecutor, account); err != nil {
		return nil, err
	}
	return account, nil
}

// ListAssetTypes returns all asset types.
func (s *walletService) ListAssetTypes(ctx context.Context) ([]domain.AssetType, error) {
	return s.assetTypeRepo.List(ctx, s.dbExecutor)
}

// displayAmount renders an integer smallest-unit amount using the asset
// type's decimals metadata. Presentation only; the ledger itself never
// scales amounts.
func displayAmount(amount int64, decimals int16) string {
	return decimal.New(amount, -int32(decimals)).String()
}
