package accounting

import (
	"fmt"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount applies the correct sign to a transaction amount based on the
// account type and the transaction direction. The convention is applied
// uniformly across the application:
//
//	DEBIT to ASSET/EXPENSE -> Positive (+)
//	CREDIT to ASSET/EXPENSE -> Negative (-)
//	DEBIT to LIABILITY/EQUITY/REVENUE -> Negative (-)
//	CREDIT to LIABILITY/EQUITY/REVENUE -> Positive (+)
func SignedAmount(txn domain.Transaction, accountType domain.AccountType) (decimal.Decimal, error) {
	signedAmount := txn.Amount
	isDebit := txn.Direction == domain.Debit

	switch accountType {
	case domain.Asset, domain.Expense:
		if !isDebit { // Credit to Asset/Expense
			signedAmount = signedAmount.Neg()
		}
	case domain.Liability, domain.Equity, domain.Revenue:
		if isDebit { // Debit to Liability/Equity/Revenue
			signedAmount = signedAmount.Neg()
		}
	default:
		return decimal.Zero, fmt.Errorf("unknown account type '%s' encountered for account ID %s", accountType, txn.AccountID)
	}
	return signedAmount, nil
}

// FoldRunningBalance folds a date-ascending sequence of transactions for one
// account into ledger entries carrying the accumulated balance. The
// accumulator starts at zero; each entry records the post-update value. The
// returned closing balance is the final accumulator, zero for an empty input.
func FoldRunningBalance(transactions []domain.Transaction, accountType domain.AccountType) ([]domain.LedgerEntry, decimal.Decimal, error) {
	entries := make([]domain.LedgerEntry, 0, len(transactions))
	balance := decimal.Zero

	for _, txn := range transactions {
		signed, err := SignedAmount(txn, accountType)
		if err != nil {
			return nil, decimal.Zero, err
		}
		balance = balance.Add(signed)
		entries = append(entries, domain.LedgerEntry{
			Transaction:    txn,
			RunningBalance: balance,
		})
	}

	return entries, balance, nil
}

// ValidateAmount checks the invariant that transaction amounts are strictly positive.
func ValidateAmount(txn domain.Transaction) error {
	if txn.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("transaction amount must be positive for transaction ID %s", txn.TransactionID)
	}
	return nil
}
