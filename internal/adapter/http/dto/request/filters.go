package request

import (
	"slices"
	"strings"

	"eisen_qms/internal/domain"
	"eisen_qms/internal/domain/entities"
	"eisen_qms/internal/domain/rules"
)

// statusFilter parses the ?estado= list filter. Blank means no filter.
func statusFilter[S ~string](raw string, allowed ...S) (S, error) {
	s := S(strings.TrimSpace(raw))
	if s == "" || slices.Contains(allowed, s) {
		return s, nil
	}
	return "", domain.NewValidationError("estado", "unknown status "+raw)
}

func TicketStatusFilter(raw string) (entities.TicketStatus, error) {
	return statusFilter(raw,
		entities.TicketStatusEnEspera,
		entities.TicketStatusEnProceso,
		entities.TicketStatusCerrado,
	)
}

func WeekStatusFilter(raw string) (entities.WeekStatus, error) {
	return statusFilter(raw,
		entities.WeekStatusListaParaFacturar,
		entities.WeekStatusBloqueada,
		entities.WeekStatusFacturada,
		entities.WeekStatusPagada,
	)
}

func InvoiceStatusFilter(raw string) (entities.InvoiceStatus, error) {
	return statusFilter(raw,
		entities.InvoiceStatusEnviada,
		entities.InvoiceStatusVencida,
		entities.InvoiceStatusPagada,
	)
}

func PaymentStatusFilter(raw string) (entities.PaymentStatus, error) {
	return statusFilter(raw,
		entities.PaymentStatusPendiente,
		entities.PaymentStatusConfirmado,
		entities.PaymentStatusVencido,
	)
}

func ComplianceStatusFilter(raw string) (rules.ComplianceStatus, error) {
	return statusFilter(raw, rules.ComplianceCompleto, rules.ComplianceIncompleto)
}
