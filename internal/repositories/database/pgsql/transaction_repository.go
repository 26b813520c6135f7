package pgsql

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/lancarbooks/lancar_backend/internal/apperrors"
	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	portsrepo "github.com/lancarbooks/lancar_backend/internal/core/ports/repositories"
	"github.com/lancarbooks/lancar_backend/internal/models"
	"github.com/lancarbooks/lancar_backend/internal/utils/mapping"
	"github.com/lancarbooks/lancar_backend/internal/utils/pagination"
)

type PgxTransactionRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepositoryFacade
}

// newPgxTransactionRepository creates a new repository for the transaction log.
func newPgxTransactionRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepositoryFacade) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryWithTx
var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, account_id, transaction_date, amount, direction, description, created_at, created_by, last_updated_at, last_updated_by`

const insertTransactionQuery = `
	INSERT INTO transactions (` + transactionColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
`

func transactionInsertArgs(m models.Transaction) []interface{} {
	return []interface{}{
		m.TransactionID,
		m.AccountID,
		m.TransactionDate,
		m.Amount,
		m.Direction,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	}
}

func scanTransactionRow(row pgx.Row) (*models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.AccountID,
		&m.TransactionDate,
		&m.Amount,
		&m.Direction,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	m, err := scanTransactionRow(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction by ID "+transactionID, err)
	}
	d := mapping.ToDomainTransaction(*m)
	return &d, nil
}

// ListTransactions retrieves a page of transactions matching the filter using
// token-based pagination. Ordering is date ascending, with creation time and
// transaction ID as tie-breakers; the returned token resumes after the last
// row of this page.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, *string, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to determine whether a next page exists.
	fetchLimit := limit + 1

	query := `SELECT ` + transactionColumns + ` FROM transactions`
	clauses := []string{}
	args := []interface{}{}

	if filter.AccountID != "" {
		args = append(args, filter.AccountID)
		clauses = append(clauses, "account_id = $"+strconv.Itoa(len(args)))
	}
	if filter.Direction != "" {
		args = append(args, filter.Direction)
		clauses = append(clauses, "direction = $"+strconv.Itoa(len(args)))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		clauses = append(clauses, "transaction_date >= $"+strconv.Itoa(len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		clauses = append(clauses, "transaction_date <= $"+strconv.Itoa(len(args)))
	}
	if filter.Description != "" {
		args = append(args, "%"+filter.Description+"%")
		clauses = append(clauses, "description ILIKE $"+strconv.Itoa(len(args)))
	}
	if filter.NextToken != nil && *filter.NextToken != "" {
		lastDate, lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*filter.NextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		// Tuple comparison resumes strictly after the cursor row. The ID
		// component keeps the tuple unique when batch-imported rows share a
		// date and creation time.
		args = append(args, lastDate, lastCreatedAt, lastID)
		clauses = append(clauses, "(transaction_date, created_at, transaction_id) > ($"+strconv.Itoa(len(args)-2)+", $"+strconv.Itoa(len(args)-1)+", $"+strconv.Itoa(len(args))+")")
	}

	for i, clause := range clauses {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}
	args = append(args, fetchLimit)
	query += " ORDER BY transaction_date ASC, created_at ASC, transaction_id ASC LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()

	fetched := make([]models.Transaction, 0, fetchLimit)
	for rows.Next() {
		m, err := scanTransactionRow(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		fetched = append(fetched, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}

	var nextTokenVal *string
	results := fetched
	if len(fetched) > limit {
		results = fetched[:limit]
		last := results[limit-1]
		token := pagination.EncodeToken(last.TransactionDate, last.CreatedAt, last.TransactionID)
		nextTokenVal = &token
	}

	return mapping.ToDomainTransactionSlice(results), nextTokenVal, nil
}

// SaveTransaction persists a new transaction and applies the signed balance
// delta to the referenced account's cached balance in one DB transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, balanceDelta decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := r.accountRepo.FindAccountByIDForUpdate(ctx, tx, txn.AccountID); err != nil {
		return err
	}

	m := mapping.ToModelTransaction(txn)
	if _, err := tx.Exec(ctx, insertTransactionQuery, transactionInsertArgs(m)...); err != nil {
		if cerr := constraintError(err); cerr != nil {
			return cerr
		}
		return apperrors.NewAppError(500, "failed to insert transaction "+m.TransactionID, err)
	}

	if err := r.accountRepo.ApplyBalanceDeltaInTx(ctx, tx, txn.AccountID, balanceDelta, txn.CreatedBy, txn.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// SaveTransactions persists a batch of transactions and applies the per-account
// balance deltas atomically. Used by CSV import.
func (r *PgxTransactionRepository) SaveTransactions(ctx context.Context, txns []domain.Transaction, balanceDeltas map[string]decimal.Decimal) error {
	if len(txns) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	// Lock affected accounts in a stable order to avoid deadlocks between
	// concurrent imports.
	accountIDs := make([]string, 0, len(balanceDeltas))
	for accountID := range balanceDeltas {
		accountIDs = append(accountIDs, accountID)
	}
	sort.Strings(accountIDs)
	for _, accountID := range accountIDs {
		if _, err := r.accountRepo.FindAccountByIDForUpdate(ctx, tx, accountID); err != nil {
			return err
		}
	}

	batch := &pgx.Batch{}
	for _, txn := range txns {
		batch.Queue(insertTransactionQuery, transactionInsertArgs(mapping.ToModelTransaction(txn))...)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		if cerr := constraintError(err); cerr != nil {
			return cerr
		}
		return apperrors.NewAppError(500, "failed to execute transaction insert batch", err)
	}

	userID := txns[0].CreatedBy
	now := txns[0].CreatedAt
	for _, accountID := range accountIDs {
		if err := r.accountRepo.ApplyBalanceDeltaInTx(ctx, tx, accountID, balanceDeltas[accountID], userID, now); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// UpdateTransaction full-record replaces a transaction and adjusts the cached
// balances of the affected accounts by the supplied deltas in one DB
// transaction.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction, balanceDeltas map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	accountIDs := make([]string, 0, len(balanceDeltas))
	for accountID := range balanceDeltas {
		accountIDs = append(accountIDs, accountID)
	}
	sort.Strings(accountIDs)
	for _, accountID := range accountIDs {
		if _, err := r.accountRepo.FindAccountByIDForUpdate(ctx, tx, accountID); err != nil {
			return err
		}
	}

	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions
		SET account_id = $2, transaction_date = $3, amount = $4, direction = $5,
		    description = $6, last_updated_at = $7, last_updated_by = $8
		WHERE transaction_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.AccountID,
		m.TransactionDate,
		m.Amount,
		m.Direction,
		m.Description,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			return cerr
		}
		return apperrors.NewAppError(500, "failed to update transaction "+m.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	for _, accountID := range accountIDs {
		if err := r.accountRepo.ApplyBalanceDeltaInTx(ctx, tx, accountID, balanceDeltas[accountID], txn.LastUpdatedBy, txn.LastUpdatedAt); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}
