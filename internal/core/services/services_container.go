package services

import (
	portsrepo "github.com/lancarbooks/lancar_backend/internal/core/ports/repositories"
	portssvc "github.com/lancarbooks/lancar_backend/internal/core/ports/services"
	"github.com/lancarbooks/lancar_backend/internal/platform/config"
	"github.com/lancarbooks/lancar_backend/internal/rateprovider"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo, repos.UserRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.AccountRepo, repos.UserRepo)
	container.Ledger = NewLedgerService(repos.TransactionRepo, repos.AccountRepo)
	container.BankAccount = NewBankAccountService(repos.BankAccountRepo)
	container.Debt = NewDebtService(repos.DebtRepo)
	container.Party = NewPartyService(repos.PartyRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg, repos.UserRepo)
	container.Currency = NewCurrencyService(repos.CurrencyRepo)

	fetcher := rateprovider.NewClient(cfg.RateProviderURL, cfg.RateRequestTimeout)
	container.CurrencyRate = NewExchangeRateService(repos.RateRepo, repos.SettingsRepo, fetcher)

	container.Reporting = NewReportingService(repos.AccountRepo, repos.TransactionRepo, repos.DebtRepo, repos.SettingsRepo, repos.ReportRepo)
	container.Settings = NewSettingsService(repos.SettingsRepo, repos.CurrencyRepo, repos.UserRepo)
	container.APIKey = NewAPIKeyService(repos.APIKeyRepo, repos.UserRepo)
	container.Backup = NewBackupService(repos.BackupRepo, repos.UserRepo)

	return container
}

// Compile-time interface checks
var (
	_ portssvc.AccountSvcFacade      = (*accountService)(nil)
	_ portssvc.TransactionSvcFacade  = (*transactionService)(nil)
	_ portssvc.LedgerSvcFacade       = (*ledgerService)(nil)
	_ portssvc.BankAccountSvcFacade  = (*bankAccountService)(nil)
	_ portssvc.DebtSvcFacade         = (*debtService)(nil)
	_ portssvc.PartySvcFacade        = (*partyService)(nil)
	_ portssvc.UserSvcFacade         = (*userService)(nil)
	_ portssvc.TokenSvcFacade        = (*tokenService)(nil)
	_ portssvc.CurrencySvcFacade     = (*currencyService)(nil)
	_ portssvc.CurrencyRateSvcFacade = (*exchangeRateService)(nil)
	_ portssvc.ReportingSvcFacade    = (*reportingService)(nil)
	_ portssvc.SettingsSvcFacade     = (*settingsService)(nil)
	_ portssvc.APIKeySvcFacade       = (*apiKeyService)(nil)
	_ portssvc.BackupSvcFacade       = (*backupService)(nil)
)
