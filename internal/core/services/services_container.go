package services

import (
	"github.com/pasindulk/expense_chat_app/internal/core/parsing"
	portsrepo "github.com/pasindulk/expense_chat_app/internal/core/ports/repositories"
	portssvc "github.com/pasindulk/expense_chat_app/internal/core/ports/services"
	"github.com/pasindulk/expense_chat_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized
// dependencies. Provider clients are passed in, never constructed here, so
// tests can substitute doubles.
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	sheetAppender portssvc.SheetAppender,
	messageSender portssvc.MessageSender,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo, cfg.ChannelPrefix, cfg.CountryCallingCode)
	container.Expense = NewExpenseService(repos.ExpenseRepo, cfg.LedgerMode)
	container.Identity = NewIdentityService(repos.AccountRepo, cfg.ChannelPrefix, cfg.CountryCallingCode)
	container.Mirror = NewMirrorService(sheetAppender)
	container.Notifier = NewNotifierService(messageSender, cfg.ChannelPrefix)
	container.Webhook = NewWebhookService(container.Identity, parsing.NewParser(), container.Expense, container.Mirror, container.Notifier)

	return container
}
