package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Account      AccountSvcFacade
	Transaction  TransactionSvcFacade
	Ledger       LedgerSvcFacade
	BankAccount  BankAccountSvcFacade
	Debt         DebtSvcFacade
	Party        PartySvcFacade
	User         UserSvcFacade
	Token        TokenSvcFacade
	Currency     CurrencySvcFacade
	CurrencyRate CurrencyRateSvcFacade
	Reporting    ReportingSvcFacade
	Settings     SettingsSvcFacade
	APIKey       APIKeySvcFacade
	Backup       BackupSvcFacade
}
