package domain

import "github.com/shopspring/decimal"

// LedgerEntry is a transaction decorated with the running balance of its
// account after the transaction is applied.
type LedgerEntry struct {
	Transaction
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// LedgerView is the per-account ordered view of transactions with a running
// balance. ClosingBalance equals the running balance of the last entry, or
// zero when the filtered set is empty.
type LedgerView struct {
	AccountID      string          `json:"accountID"`
	AccountName    string          `json:"accountName"`
	AccountType    AccountType     `json:"accountType"`
	Entries        []LedgerEntry   `json:"entries"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}
