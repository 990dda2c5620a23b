// Package seed writes the reference dataset the dashboard was first demoed with:
// two clients, two tickets, the Eurospec sorting project with two weeks, two
// inspections, one invoice and its expected payment.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"eisen_qms/internal/domain/entities"
	"eisen_qms/internal/domain/rules"
	"eisen_qms/internal/usecase"
)

type Dataset struct {
	Clients     []entities.Client
	Projects    []entities.Project
	Tickets     []entities.Ticket
	Weeks       []entities.ProjectWeek
	Inspections []entities.DailyInspection
	Invoices    []entities.Invoice
	Payments    []entities.Payment
}

type Report struct {
	Clients     int
	Projects    int
	Tickets     int
	Weeks       int
	Inspections int
	Invoices    int
	Payments    int
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fullDocs(po string) entities.DocumentSet {
	return entities.DocumentSet{
		POD:           entities.DocumentSlot{Present: true},
		Report:        entities.DocumentSlot{Present: true},
		Signature:     entities.DocumentSlot{Present: true},
		PurchaseOrder: entities.DocumentSlot{Present: true, Number: po},
	}
}

func Reference() Dataset {
	rate := decimal.NewFromInt(40)
	hours := decimal.NewFromInt(40)
	weekTotal := decimal.NewFromInt(1600)

	return Dataset{
		Clients: []entities.Client{
			{
				ID:      "CLI-001",
				Name:    "Eurospec Mfg.",
				Contact: "James Whitfield",
				Email:   "j.whitfield@eurospec.com",
				Phone:   "+1 519 555 0142",
				Country: "Canada",
				Plants:  []entities.Plant{{Name: "Fisher Dynamics", City: "Newmarket, ON"}},
				Status:  entities.ClientStatusActivo,
			},
			{
				ID:      "CLI-002",
				Name:    "Ranger Die Inc.",
				Contact: "Bob Ranger",
				Email:   "b.ranger@rangerdie.com",
				Phone:   "+1 519 555 0198",
				Country: "Mexico",
				Plants:  []entities.Plant{{Name: "Adient", City: "Matamoros, MX"}},
				Status:  entities.ClientStatusActivo,
			},
		},
		Projects: []entities.Project{
			{
				ID:          "EM26-01",
				Name:        "Missing Tabs — Mal Troquelado",
				ClientName:  "Eurospec Mfg.",
				Contact:     "James Whitfield",
				Plant:       "Fisher Dynamics",
				City:        "Newmarket, ON",
				PartNumber:  "195364",
				LotNumber:   "02226",
				Quantity:    9720,
				Rate:        rate,
				Supervisor:  "A. Serrano",
				StartDate:   day(2026, time.February, 2),
				Status:      entities.ProjectStatusActivo,
				Description: "Inspección 100% del lote en planta por tabs faltantes.",
			},
		},
		Tickets: []entities.Ticket{
			{
				ID:          "EM26-01",
				ClientName:  "Eurospec Mfg.",
				Contact:     "James Whitfield",
				Plant:       "Fisher Dynamics",
				City:        "Newmarket, ON",
				Issue:       "Missing Tabs — Mal Troquelado",
				Description: "Piezas con tabs faltantes detectadas en línea de producción. Cliente requiere inspección 100% del lote en planta.",
				PartNumber:  "195364",
				LotNumber:   "02226",
				Quantity:    9720,
				Assignee:    "A. Serrano",
				Rate:        rate,
				Week:        "Sem 07",
				Status:      entities.TicketStatusEnProceso,
				OpenedOn:    day(2026, time.February, 10),
			},
			{
				ID:            "RD26-01",
				ClientName:    "Ranger Die Inc.",
				Contact:       "Bob Ranger",
				Plant:         "Adient",
				City:          "Matamoros, MX",
				Issue:         "Metal Split — Bkt Reinforcement",
				Description:   "Metal split encontrado en bracket de refuerzo. Lote completo en warehouse pendiente de disposición.",
				PartNumber:    "3232903",
				LotNumber:     "32825",
				Quantity:      6290,
				PurchaseOrder: "PO-31764",
				RequiresPO:    true,
				Assignee:      "O. Pech",
				Rate:          rate,
				Week:          "Sem 07",
				Status:        entities.TicketStatusEnEspera,
				OpenedOn:      day(2026, time.February, 12),
			},
		},
		Weeks: []entities.ProjectWeek{
			{
				ID:         "SEM-07-EM",
				ProjectID:  "EM26-01",
				ClientName: "Eurospec Mfg.",
				Plant:      "Fisher Dynamics",
				Label:      "Sem 07",
				StartDate:  day(2026, time.February, 9),
				EndDate:    day(2026, time.February, 14),
				Supervisor: "A. Serrano",
				DaysWorked: 5,
				Hours:      hours,
				Rate:       rate,
				Amount:     weekTotal,
				Documents:  fullDocs("PO-31764"),
				Status:     entities.WeekStatusListaParaFacturar,
			},
			{
				ID:         "SEM-06-EM",
				ProjectID:  "EM26-01",
				ClientName: "Eurospec Mfg.",
				Plant:      "Fisher Dynamics",
				Label:      "Sem 06",
				StartDate:  day(2026, time.February, 2),
				EndDate:    day(2026, time.February, 7),
				Supervisor: "A. Serrano",
				DaysWorked: 5,
				Hours:      hours,
				Rate:       rate,
				Amount:     weekTotal,
				Documents:  fullDocs("PO-31764"),
				InvoiceID:  "FAC-001",
				Status:     entities.WeekStatusFacturada,
			},
		},
		Inspections: []entities.DailyInspection{
			{
				ID:         "INS-001",
				ProjectID:  "EM26-01",
				Week:       "Sem 07",
				ClientName: "Eurospec Mfg.",
				Plant:      "Fisher Dynamics",
				Date:       day(2026, time.February, 14),
				Weekday:    "Sábado",
				Supervisor: "A. Serrano",
				Shift:      "Matutino",
				Total:      1944,
				OK:         1900,
				NOK:        44,
				Signed:     true,
			},
			{
				ID:         "INS-002",
				ProjectID:  "EM26-01",
				Week:       "Sem 07",
				ClientName: "Eurospec Mfg.",
				Plant:      "Fisher Dynamics",
				Date:       day(2026, time.February, 13),
				Weekday:    "Viernes",
				Supervisor: "A. Serrano",
				Shift:      "Matutino",
				Total:      1920,
				OK:         1915,
				NOK:        5,
				Signed:     true,
			},
		},
		Invoices: []entities.Invoice{
			{
				ID:            "FAC-001",
				ProjectID:     "EM26-01",
				WeekID:        "SEM-06-EM",
				WeekLabel:     "Sem 06",
				ClientName:    "Eurospec Mfg.",
				Plant:         "Fisher Dynamics",
				IssueDate:     day(2026, time.February, 10),
				CreditDays:    29,
				Hours:         hours,
				Rate:          rate,
				Subtotal:      weekTotal,
				Total:         weekTotal,
				PurchaseOrder: "PO-31764",
				Status:        entities.InvoiceStatusEnviada,
				Payments:      []entities.PaymentRecord{},
			},
		},
		Payments: []entities.Payment{
			{
				ID:         "PAG-001",
				InvoiceID:  "FAC-001",
				ClientName: "Eurospec Mfg.",
				ProjectID:  "EM26-01",
				Date:       day(2026, time.March, 11),
				Amount:     weekTotal,
				Method:     entities.PaymentMethodWireTransfer,
				Status:     entities.PaymentStatusPendiente,
			},
		},
	}
}

// Load upserts every document of ds, so running it twice leaves the same data.
// Invoices are aged as of asOf before they are written.
func Load(ctx context.Context, repos usecase.Repositories, ds Dataset, asOf time.Time, log *zap.Logger) (Report, error) {
	var r Report

	for _, c := range ds.Clients {
		if err := repos.Clients.Save(ctx, c); err != nil {
			return r, fmt.Errorf("seed client %s: %w", c.ID, err)
		}
		r.Clients++
	}
	for _, p := range ds.Projects {
		if err := repos.Projects.Save(ctx, p); err != nil {
			return r, fmt.Errorf("seed project %s: %w", p.ID, err)
		}
		r.Projects++
	}
	for _, t := range ds.Tickets {
		if err := repos.Tickets.Save(ctx, t); err != nil {
			return r, fmt.Errorf("seed ticket %s: %w", t.ID, err)
		}
		r.Tickets++
	}
	for _, w := range ds.Weeks {
		w = rules.DeriveWeekStatus(w, rules.DefaultCompliancePolicy())
		if err := repos.Weeks.Save(ctx, w); err != nil {
			return r, fmt.Errorf("seed week %s: %w", w.ID, err)
		}
		r.Weeks++
	}
	for _, i := range ds.Inspections {
		if err := repos.Inspections.Save(ctx, i); err != nil {
			return r, fmt.Errorf("seed inspection %s: %w", i.ID, err)
		}
		r.Inspections++
	}
	for _, inv := range ds.Invoices {
		inv = rules.DeriveInvoiceStatus(inv, asOf)
		if err := repos.Invoices.Save(ctx, inv); err != nil {
			return r, fmt.Errorf("seed invoice %s: %w", inv.ID, err)
		}
		r.Invoices++
	}
	for _, p := range ds.Payments {
		p.Status = rules.ClassifyPayment(p, asOf)
		if err := repos.Payments.Save(ctx, p); err != nil {
			return r, fmt.Errorf("seed payment %s: %w", p.ID, err)
		}
		r.Payments++
	}

	log.Info("seed completed",
		zap.Int("clients", r.Clients),
		zap.Int("projects", r.Projects),
		zap.Int("tickets", r.Tickets),
		zap.Int("weeks", r.Weeks),
		zap.Int("inspections", r.Inspections),
		zap.Int("invoices", r.Invoices),
		zap.Int("payments", r.Payments),
	)
	return r, nil
}
