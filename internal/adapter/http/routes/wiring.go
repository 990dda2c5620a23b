package routes

import (
	"go.uber.org/zap"

	"eisen_qms/internal/adapter/http/handlers"
	"eisen_qms/internal/adapter/persistence/repository"
	"eisen_qms/internal/usecase"
	"eisen_qms/internal/usecase/interfaces"
)

// Services is the wired application: repositories over one document store,
// the HTTP handlers and the status refresh used by the scheduler.
type Services struct {
	Repositories  usecase.Repositories
	Handlers      Handlers
	StatusRefresh *usecase.StatusRefreshUseCase
}

func NewRepositories(store interfaces.IDocumentStore) usecase.Repositories {
	return usecase.Repositories{
		Clients:     repository.NewClientRepository(store),
		Projects:    repository.NewProjectRepository(store),
		Tickets:     repository.NewTicketRepository(store),
		Weeks:       repository.NewWeekRepository(store),
		Inspections: repository.NewInspectionRepository(store),
		Invoices:    repository.NewInvoiceRepository(store),
		Payments:    repository.NewPaymentRepository(store),
	}
}

func Wire(store interfaces.IDocumentStore, settings usecase.Settings, log *zap.Logger) Services {
	repos := NewRepositories(store)

	clientUseCase := usecase.NewClientUseCase(repos.Clients, log)
	projectUseCase := usecase.NewProjectUseCase(repos.Projects, repos.Weeks, repos.Invoices, settings, log)
	ticketUseCase := usecase.NewTicketUseCase(repos.Tickets, repos.Clients, settings, log)
	weekUseCase := usecase.NewWeekUseCase(repos.Weeks, repos.Invoices, settings, log)
	inspectionUseCase := usecase.NewInspectionUseCase(repos.Inspections, repos.Projects, settings, log)
	invoiceUseCase := usecase.NewInvoiceUseCase(repos.Invoices, repos.Payments, repos.Weeks, log)
	paymentUseCase := usecase.NewPaymentUseCase(repos.Payments, repos.Invoices, repos.Weeks, log)
	dashboardUseCase := usecase.NewDashboardUseCase(repos, settings, log)

	return Services{
		Repositories: repos,
		Handlers: Handlers{
			Clients:     handlers.NewClientHandler(clientUseCase, log),
			Projects:    handlers.NewProjectHandler(projectUseCase, log),
			Tickets:     handlers.NewTicketHandler(ticketUseCase, log),
			Weeks:       handlers.NewWeekHandler(weekUseCase, log),
			Inspections: handlers.NewInspectionHandler(inspectionUseCase, log),
			Invoices:    handlers.NewInvoiceHandler(invoiceUseCase, log),
			Payments:    handlers.NewPaymentHandler(paymentUseCase, log),
			Dashboard:   handlers.NewDashboardHandler(dashboardUseCase, log),
		},
		StatusRefresh: usecase.NewStatusRefreshUseCase(repos, settings, log),
	}
}
