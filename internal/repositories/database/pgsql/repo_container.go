package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/lancarbooks/lancar_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool, accountRepo)
	bankAccountRepo := newPgxBankAccountRepository(dbPool)
	debtRepo := newPgxDebtRepository(dbPool)
	partyRepo := newPgxPartyRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	currencyRepo := newPgxCurrencyRepository(dbPool)
	rateRepo := newPgxCurrencyRateRepository(dbPool)
	settingsRepo := newPgxSettingsRepository(dbPool)
	apiKeyRepo := newPgxAPIKeyRepository(dbPool)
	reportRepo := newPgxReportRepository(dbPool)
	backupRepo := newPgxBackupRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:     accountRepo,
		TransactionRepo: transactionRepo,
		BankAccountRepo: bankAccountRepo,
		DebtRepo:        debtRepo,
		PartyRepo:       partyRepo,
		UserRepo:        userRepo,
		CurrencyRepo:    currencyRepo,
		RateRepo:        rateRepo,
		SettingsRepo:    settingsRepo,
		APIKeyRepo:      apiKeyRepo,
		ReportRepo:      reportRepo,
		BackupRepo:      backupRepo,
	}
}
