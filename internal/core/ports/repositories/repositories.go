package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo     AccountRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	BankAccountRepo BankAccountRepository
	DebtRepo        DebtRepository
	PartyRepo       PartyRepository
	UserRepo        UserRepositoryFacade
	CurrencyRepo    CurrencyRepository
	RateRepo        CurrencyRateRepository
	SettingsRepo    SettingsRepository
	APIKeyRepo      APIKeyRepository
	ReportRepo      ReportRepository
	BackupRepo      BackupRepository
}
