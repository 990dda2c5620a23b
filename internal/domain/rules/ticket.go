package rules

import (
	"strings"

	"eisen_qms/internal/domain"
	"eisen_qms/internal/domain/entities"
)

const entityTicket = "ticket"

// InitialTicketStatus returns the status a new ticket starts in.
func InitialTicketStatus(po string, requiresPO bool) entities.TicketStatus {
	if requiresPO && strings.TrimSpace(po) == "" {
		return entities.TicketStatusEnEspera
	}
	return entities.TicketStatusEnProceso
}

// RegisterPO records the purchase order that releases a waiting ticket.
// Registering the same PO again on an in-progress ticket succeeds without change.
func RegisterPO(t entities.Ticket, po string) (entities.Ticket, error) {
	po = strings.TrimSpace(po)
	if po == "" {
		return t, domain.NewValidationError("oc", "PO number required")
	}

	switch t.Status {
	case entities.TicketStatusEnEspera:
		t.PurchaseOrder = po
		t.Status = entities.TicketStatusEnProceso
		return t, nil
	case entities.TicketStatusEnProceso:
		if t.PurchaseOrder == po {
			return t, nil
		}
	}
	return t, domain.NewStateError(entityTicket, string(t.Status), "register-po")
}

func CloseTicket(t entities.Ticket) (entities.Ticket, error) {
	if t.Status != entities.TicketStatusEnProceso {
		return t, domain.NewStateError(entityTicket, string(t.Status), "close")
	}
	t.Status = entities.TicketStatusCerrado
	return t, nil
}

// ValidateTicket checks the fields a new ticket needs.
func ValidateTicket(t entities.Ticket) error {
	switch {
	case strings.TrimSpace(t.ID) == "":
		return domain.NewValidationError("id", "ticket code required")
	case strings.TrimSpace(t.ClientName) == "":
		return domain.NewValidationError("cliente", "client required")
	case strings.TrimSpace(t.Issue) == "":
		return domain.NewValidationError("issue", "issue title required")
	case t.Quantity < 0:
		return domain.NewValidationError("qty", "quantity cannot be negative")
	case t.Rate.IsNegative():
		return domain.NewValidationError("tarifa", "rate cannot be negative")
	}
	return nil
}
