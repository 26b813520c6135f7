package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lancarbooks/lancar_backend/internal/apperrors"
	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	portsrepo "github.com/lancarbooks/lancar_backend/internal/core/ports/repositories"
	"github.com/lancarbooks/lancar_backend/internal/dto"
	"github.com/lancarbooks/lancar_backend/internal/textenc"
	"github.com/lancarbooks/lancar_backend/internal/utils/accounting"
)

// csvImportHeader is the required column order of a transaction import file.
var csvImportHeader = []string{"date", "account_code", "direction", "amount", "description"}

// transactionService records monetary movements and keeps the cached account
// balances in step with them.
type transactionService struct {
	BaseService
	txnRepo     portsrepo.TransactionRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewTransactionService creates the transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, userRepo portsrepo.UserReader) *transactionService {
	return &transactionService{
		BaseService: BaseService{UserRepo: userRepo},
		txnRepo:     txnRepo,
		accountRepo: accountRepo,
	}
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction by ID", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error) {
	txns, nextToken, err := s.txnRepo.ListTransactions(ctx, portsrepo.TransactionFilter{
		AccountID:   params.AccountID,
		Direction:   domain.TransactionDirection(params.Direction),
		DateFrom:    params.DateFrom,
		DateTo:      params.DateTo,
		Description: params.Description,
		Limit:       params.Limit,
		NextToken:   params.NextToken,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, nextToken, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}
	if !account.IsActive {
		return nil, fmt.Errorf("account %s is inactive: %w", account.Code, apperrors.ErrValidation)
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		AccountID:       req.AccountID,
		TransactionDate: req.TransactionDate,
		Amount:          req.Amount,
		Direction:       req.Direction,
		Description:     req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := accounting.ValidateAmount(txn); err != nil {
		return nil, err
	}

	delta, err := accounting.SignedAmount(txn, account.AccountType)
	if err != nil {
		return nil, err
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn, delta); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("account_id", txn.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created", slog.String("transaction_id", txn.TransactionID), slog.String("account_id", txn.AccountID))
	return &txn, nil
}

// UpdateTransaction replaces the transaction record and reconciles the cached
// balance of every account involved: the old signed amount is reversed on the
// old account and the new signed amount applied to the new one.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error) {
	existing, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	oldAccount, err := s.accountRepo.FindAccountByID(ctx, existing.AccountID)
	if err != nil {
		return nil, err
	}
	newAccount := oldAccount
	if req.AccountID != existing.AccountID {
		newAccount, err = s.accountRepo.FindAccountByID(ctx, req.AccountID)
		if err != nil {
			return nil, err
		}
		if !newAccount.IsActive {
			return nil, fmt.Errorf("account %s is inactive: %w", newAccount.Code, apperrors.ErrValidation)
		}
	}

	updated := *existing
	updated.AccountID = req.AccountID
	updated.TransactionDate = req.TransactionDate
	updated.Amount = req.Amount
	updated.Direction = req.Direction
	updated.Description = req.Description
	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = userID

	if err := accounting.ValidateAmount(updated); err != nil {
		return nil, err
	}

	oldSigned, err := accounting.SignedAmount(*existing, oldAccount.AccountType)
	if err != nil {
		return nil, err
	}
	newSigned, err := accounting.SignedAmount(updated, newAccount.AccountType)
	if err != nil {
		return nil, err
	}

	deltas := map[string]decimal.Decimal{
		existing.AccountID: oldSigned.Neg(),
	}
	deltas[updated.AccountID] = deltas[updated.AccountID].Add(newSigned)

	if err := s.txnRepo.UpdateTransaction(ctx, updated, deltas); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	return &updated, nil
}

// ImportTransactionsCSV parses a charset-detected CSV file and records its
// rows atomically. Validation covers the whole file before anything is
// written: one bad row rejects the import and every problem is reported.
func (s *transactionService) ImportTransactionsCSV(ctx context.Context, r io.Reader, userID string) (*dto.ImportTransactionsResult, error) {
	utf8Reader, err := textenc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to detect file encoding: %w", apperrors.ErrValidation)
	}

	reader := csv.NewReader(utf8Reader)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", apperrors.ErrValidation)
	}
	if err := validateImportHeader(header); err != nil {
		return nil, err
	}

	result := &dto.ImportTransactionsResult{}
	now := time.Now()

	var (
		txns   []domain.Transaction
		deltas = make(map[string]decimal.Decimal)
		// Account lookups are cached per code so a long file costs one
		// query per distinct account.
		accountsByCode = make(map[string]*domain.Account)
	)

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		if isBlankRecord(record) {
			result.Skipped++
			continue
		}

		txn, account, rowErr := s.parseImportRow(ctx, record, accountsByCode, userID, now)
		if rowErr != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, rowErr))
			continue
		}

		signed, err := accounting.SignedAmount(*txn, account.AccountType)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		txns = append(txns, *txn)
		deltas[txn.AccountID] = deltas[txn.AccountID].Add(signed)
	}

	if len(result.Errors) > 0 {
		s.LogInfo(ctx, "CSV import rejected", slog.Int("error_count", len(result.Errors)))
		return result, apperrors.ErrValidation
	}
	if len(txns) == 0 {
		return result, nil
	}

	if err := s.txnRepo.SaveTransactions(ctx, txns, deltas); err != nil {
		s.LogError(ctx, err, "Failed to save imported transactions", slog.Int("count", len(txns)))
		return nil, err
	}

	result.Imported = len(txns)
	s.LogInfo(ctx, "CSV import completed", slog.Int("imported", result.Imported), slog.Int("skipped", result.Skipped))
	return result, nil
}

func (s *transactionService) parseImportRow(ctx context.Context, record []string, accountsByCode map[string]*domain.Account, userID string, now time.Time) (*domain.Transaction, *domain.Account, error) {
	if len(record) < len(csvImportHeader) {
		return nil, nil, fmt.Errorf("expected %d columns, got %d", len(csvImportHeader), len(record))
	}

	date, err := time.Parse("2006-01-02", strings.TrimSpace(record[0]))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid date %q", record[0])
	}

	code := strings.TrimSpace(record[1])
	account, ok := accountsByCode[code]
	if !ok {
		account, err = s.accountRepo.FindAccountByCode(ctx, code)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, nil, fmt.Errorf("unknown account code %q", code)
			}
			return nil, nil, err
		}
		accountsByCode[code] = account
	}
	if !account.IsActive {
		return nil, nil, fmt.Errorf("account %q is inactive", code)
	}

	direction := domain.TransactionDirection(strings.ToUpper(strings.TrimSpace(record[2])))
	if direction != domain.Debit && direction != domain.Credit {
		return nil, nil, fmt.Errorf("invalid direction %q", record[2])
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(record[3]))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid amount %q", record[3])
	}
	if !amount.IsPositive() {
		return nil, nil, fmt.Errorf("amount must be positive, got %s", amount)
	}

	txn := &domain.Transaction{
		TransactionID:   uuid.NewString(),
		AccountID:       account.AccountID,
		TransactionDate: date,
		Amount:          amount,
		Direction:       direction,
		Description:     strings.TrimSpace(record[4]),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	return txn, account, nil
}

func validateImportHeader(header []string) error {
	if len(header) < len(csvImportHeader) {
		return fmt.Errorf("CSV header must be %s: %w", strings.Join(csvImportHeader, ","), apperrors.ErrValidation)
	}
	for i, want := range csvImportHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return fmt.Errorf("CSV header must be %s: %w", strings.Join(csvImportHeader, ","), apperrors.ErrValidation)
		}
	}
	return nil
}

func isBlankRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
