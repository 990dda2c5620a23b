package rules

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"eisen_qms/internal/domain/entities"
)

// Snapshot is one read of every collection the dashboard folds over.
type Snapshot struct {
	Projects    []entities.Project
	Weeks       []entities.ProjectWeek
	Invoices    []entities.Invoice
	Payments    []entities.Payment
	Tickets     []entities.Ticket
	Inspections []entities.DailyInspection
}

type ProjectSummary struct {
	ProjectID  string
	Name       string
	ClientName string
	Status     entities.ProjectStatus
	Hours      decimal.Decimal
	Invoiced   decimal.Decimal
	Collected  decimal.Decimal
	Pending    decimal.Decimal
}

type Dashboard struct {
	AsOf time.Time

	TotalAR         decimal.Decimal
	TotalOverdue    decimal.Decimal
	OpenInvoices    int
	OverdueInvoices int
	PaidInvoices    int

	ComplianceRate  decimal.Decimal
	ReadyWeeks      int
	BlockedWeeks    int
	WIPReady        decimal.Decimal
	BlockedExposure decimal.Decimal

	ActiveTickets  int
	WaitingTickets int
	ClosedTickets  int

	PaymentsByStatus map[entities.PaymentStatus]decimal.Decimal

	InspectedPieces int
	OKPieces        int
	NOKPieces       int
	NOKRate         decimal.Decimal
	NOKAlerts       int

	Projects []ProjectSummary
}

type reportOptions struct {
	policy       CompliancePolicy
	nokThreshold decimal.Decimal
}

type ReportOption func(*reportOptions)

func WithCompliancePolicy(p CompliancePolicy) ReportOption {
	return func(o *reportOptions) { o.policy = p }
}

func WithNOKThreshold(t decimal.Decimal) ReportOption {
	return func(o *reportOptions) { o.nokThreshold = t }
}

// BuildDashboard derives every week, invoice and payment status as of asOf and
// folds the snapshot into KPIs. All folds are sums, so input order does not matter.
func BuildDashboard(s Snapshot, asOf time.Time, opts ...ReportOption) Dashboard {
	o := reportOptions{policy: DefaultCompliancePolicy(), nokThreshold: DefaultNOKThreshold}
	for _, opt := range opts {
		opt(&o)
	}

	d := Dashboard{
		AsOf:            DateOf(asOf),
		TotalAR:         decimal.Zero,
		TotalOverdue:    decimal.Zero,
		ComplianceRate:  decimal.Zero,
		WIPReady:        decimal.Zero,
		BlockedExposure: decimal.Zero,
		NOKRate:         decimal.Zero,
		PaymentsByStatus: map[entities.PaymentStatus]decimal.Decimal{
			entities.PaymentStatusPendiente:  decimal.Zero,
			entities.PaymentStatusConfirmado: decimal.Zero,
			entities.PaymentStatusVencido:    decimal.Zero,
		},
	}

	invoices := make([]entities.Invoice, 0, len(s.Invoices))
	for _, inv := range s.Invoices {
		inv = DeriveInvoiceStatus(inv, asOf)
		invoices = append(invoices, inv)

		switch inv.Status {
		case entities.InvoiceStatusPagada:
			d.PaidInvoices++
			continue
		case entities.InvoiceStatusVencida:
			d.OverdueInvoices++
			d.TotalOverdue = d.TotalOverdue.Add(inv.Total)
		}
		d.OpenInvoices++
		d.TotalAR = d.TotalAR.Add(inv.Total)
	}

	weeks := make([]entities.ProjectWeek, 0, len(s.Weeks))
	compliant := 0
	for _, w := range s.Weeks {
		w = DeriveWeekStatus(w, o.policy)
		weeks = append(weeks, w)

		switch w.Status {
		case entities.WeekStatusBloqueada:
			d.BlockedWeeks++
			d.BlockedExposure = d.BlockedExposure.Add(WeekAmount(w))
			continue
		case entities.WeekStatusListaParaFacturar:
			d.ReadyWeeks++
			d.WIPReady = d.WIPReady.Add(WeekAmount(w))
		}
		compliant++
	}
	if len(weeks) > 0 {
		d.ComplianceRate = decimal.NewFromInt(int64(compliant)).Div(decimal.NewFromInt(int64(len(weeks))))
	}

	for _, t := range s.Tickets {
		switch t.Status {
		case entities.TicketStatusEnProceso:
			d.ActiveTickets++
		case entities.TicketStatusEnEspera:
			d.WaitingTickets++
		case entities.TicketStatusCerrado:
			d.ClosedTickets++
		}
	}

	for _, p := range s.Payments {
		status := ClassifyPayment(p, asOf)
		d.PaymentsByStatus[status] = d.PaymentsByStatus[status].Add(p.Amount)
	}

	for _, i := range s.Inspections {
		d.InspectedPieces += i.Total
		d.OKPieces += i.OK
		d.NOKPieces += i.NOK
		if NOKAlert(NOKRate(i.NOK, i.Total), o.nokThreshold) {
			d.NOKAlerts++
		}
	}
	d.NOKRate = NOKRate(d.NOKPieces, d.InspectedPieces)

	d.Projects = make([]ProjectSummary, 0, len(s.Projects))
	for _, p := range s.Projects {
		p = DeriveProjectStatus(p, weeks)
		t := ComputeProjectTotals(p.ID, weeks, invoices)
		d.Projects = append(d.Projects, ProjectSummary{
			ProjectID:  p.ID,
			Name:       p.Name,
			ClientName: p.ClientName,
			Status:     p.Status,
			Hours:      t.Hours,
			Invoiced:   t.Invoiced,
			Collected:  t.Collected,
			Pending:    t.Pending,
		})
	}
	sort.Slice(d.Projects, func(i, j int) bool { return d.Projects[i].ProjectID < d.Projects[j].ProjectID })

	return d
}
