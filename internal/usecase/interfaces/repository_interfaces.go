//go:generate mockgen -source=repository_interfaces.go -destination=mocks/repository_interfaces_mock.go -package=mock_interfaces

package interfaces

import (
	"context"
	"time"

	"eisen_qms/internal/domain/entities"
)

// Repositories return a zero-value entity (empty ID) and a nil error when the
// id does not exist.

type IClientRepository interface {
	Save(ctx context.Context, c entities.Client) error
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	UpdateContact(ctx context.Context, c entities.Client) error
	UpdateStatus(ctx context.Context, id string, status entities.ClientStatus) error
}

type IProjectRepository interface {
	Save(ctx context.Context, p entities.Project) error
	GetByID(ctx context.Context, id string) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus) error
	// UpdateTotals writes status and the running totals.
	UpdateTotals(ctx context.Context, p entities.Project) error
}

type ITicketRepository interface {
	Save(ctx context.Context, t entities.Ticket) error
	GetByID(ctx context.Context, id string) (entities.Ticket, error)
	List(ctx context.Context) ([]entities.Ticket, error)
	// UpdateStatus writes status together with the purchase order it depends on.
	UpdateStatus(ctx context.Context, id string, status entities.TicketStatus, po string) error
}

type IWeekRepository interface {
	Save(ctx context.Context, w entities.ProjectWeek) error
	GetByID(ctx context.Context, id string) (entities.ProjectWeek, error)
	List(ctx context.Context) ([]entities.ProjectWeek, error)
	UpdateStatus(ctx context.Context, id string, status entities.WeekStatus, invoiceID string) error
	// UpdateCompliance writes the derived status and score read by other consumers.
	UpdateCompliance(ctx context.Context, id string, status entities.WeekStatus, score int) error
}

type IInspectionRepository interface {
	Save(ctx context.Context, i entities.DailyInspection) error
	GetByID(ctx context.Context, id string) (entities.DailyInspection, error)
	List(ctx context.Context) ([]entities.DailyInspection, error)
}

type IInvoiceRepository interface {
	Save(ctx context.Context, inv entities.Invoice) error
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context) ([]entities.Invoice, error)
	// UpdatePayments writes the payment list and the status it produced.
	UpdatePayments(ctx context.Context, inv entities.Invoice) error
	UpdateAging(ctx context.Context, id string, status entities.InvoiceStatus, dueDate time.Time, daysUntilDue int) error
}

type IPaymentRepository interface {
	Save(ctx context.Context, p entities.Payment) error
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	List(ctx context.Context) ([]entities.Payment, error)
	// UpdateConfirmation writes status, reference, bank and date.
	UpdateConfirmation(ctx context.Context, p entities.Payment) error
	UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) error
}
