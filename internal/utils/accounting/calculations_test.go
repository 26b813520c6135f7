package accounting_test

import (
	"testing"
	"time"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	"github.com/lancarbooks/lancar_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(direction domain.TransactionDirection, amount int64, day int) domain.Transaction {
	return domain.Transaction{
		TransactionID:   "txn-" + string(direction),
		AccountID:       "acc-1",
		TransactionDate: time.Date(2023, 4, day, 0, 0, 0, 0, time.UTC),
		Amount:          decimal.NewFromInt(amount),
		Direction:       direction,
	}
}

func TestSignedAmount(t *testing.T) {
	tests := []struct {
		name        string
		accountType domain.AccountType
		direction   domain.TransactionDirection
		want        int64
	}{
		{"debit to asset adds", domain.Asset, domain.Debit, 100},
		{"credit to asset subtracts", domain.Asset, domain.Credit, -100},
		{"debit to expense adds", domain.Expense, domain.Debit, 100},
		{"credit to expense subtracts", domain.Expense, domain.Credit, -100},
		{"debit to liability subtracts", domain.Liability, domain.Debit, -100},
		{"credit to liability adds", domain.Liability, domain.Credit, 100},
		{"debit to equity subtracts", domain.Equity, domain.Debit, -100},
		{"credit to equity adds", domain.Equity, domain.Credit, 100},
		{"debit to revenue subtracts", domain.Revenue, domain.Debit, -100},
		{"credit to revenue adds", domain.Revenue, domain.Credit, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := accounting.SignedAmount(txn(tt.direction, 100, 1), tt.accountType)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "got %s", got)
		})
	}
}

func TestSignedAmount_UnknownAccountType(t *testing.T) {
	_, err := accounting.SignedAmount(txn(domain.Debit, 100, 1), domain.AccountType("BOGUS"))
	assert.Error(t, err)
}

func TestFoldRunningBalance_Empty(t *testing.T) {
	entries, closing, err := accounting.FoldRunningBalance(nil, domain.Asset)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.True(t, closing.IsZero())
}

func TestFoldRunningBalance_SingleTransaction(t *testing.T) {
	entries, closing, err := accounting.FoldRunningBalance(
		[]domain.Transaction{txn(domain.Debit, 250, 1)}, domain.Asset)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, closing.Equal(decimal.NewFromInt(250)))
	assert.True(t, entries[0].RunningBalance.Equal(closing))
}

func TestFoldRunningBalance_AssetAccountExample(t *testing.T) {
	// Credit 1,000,000 then debit 5,000,000 against an asset account:
	// running balances [-1,000,000, 4,000,000], closing 4,000,000.
	transactions := []domain.Transaction{
		txn(domain.Credit, 1_000_000, 1),
		txn(domain.Debit, 5_000_000, 5),
	}

	entries, closing, err := accounting.FoldRunningBalance(transactions, domain.Asset)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].RunningBalance.Equal(decimal.NewFromInt(-1_000_000)), "got %s", entries[0].RunningBalance)
	assert.True(t, entries[1].RunningBalance.Equal(decimal.NewFromInt(4_000_000)), "got %s", entries[1].RunningBalance)
	assert.True(t, closing.Equal(decimal.NewFromInt(4_000_000)))
}

func TestFoldRunningBalance_PrefixConsistency(t *testing.T) {
	transactions := []domain.Transaction{
		txn(domain.Debit, 300, 1),
		txn(domain.Credit, 120, 2),
		txn(domain.Debit, 75, 3),
		txn(domain.Credit, 510, 4),
	}

	entries, closing, err := accounting.FoldRunningBalance(transactions, domain.Liability)
	require.NoError(t, err)
	require.Len(t, entries, len(transactions))

	prev := decimal.Zero
	sum := decimal.Zero
	for i, e := range entries {
		signed, serr := accounting.SignedAmount(transactions[i], domain.Liability)
		require.NoError(t, serr)
		sum = sum.Add(signed)
		assert.True(t, e.RunningBalance.Equal(prev.Add(signed)), "entry %d", i)
		prev = e.RunningBalance
	}
	assert.True(t, closing.Equal(sum), "closing balance must equal the signed sum")
}

func TestValidateAmount(t *testing.T) {
	bad := txn(domain.Debit, 0, 1)
	assert.Error(t, accounting.ValidateAmount(bad))

	neg := txn(domain.Debit, 1, 1)
	neg.Amount = decimal.NewFromInt(-5)
	assert.Error(t, accounting.ValidateAmount(neg))

	assert.NoError(t, accounting.ValidateAmount(txn(domain.Credit, 1, 1)))
}
