package rules

import (
	"math"

	"eisen_qms/internal/domain/entities"
)

type ComplianceStatus string

const (
	ComplianceCompleto   ComplianceStatus = "Completo"
	ComplianceIncompleto ComplianceStatus = "Incompleto"
)

// CompliancePolicy lists the documents a week must carry before invoicing.
// With AcceptTermsForPO a signed terms-and-conditions agreement stands in for the PO.
type CompliancePolicy struct {
	Required         []entities.DocumentKind
	AcceptTermsForPO bool
}

func DefaultCompliancePolicy() CompliancePolicy {
	return CompliancePolicy{
		Required: []entities.DocumentKind{
			entities.DocumentPOD,
			entities.DocumentReporte,
			entities.DocumentFirma,
			entities.DocumentOC,
		},
		AcceptTermsForPO: true,
	}
}

type ComplianceResult struct {
	Complete bool
	Score    int
	Missing  []entities.DocumentKind
}

func (r ComplianceResult) Status() ComplianceStatus {
	if r.Complete {
		return ComplianceCompleto
	}
	return ComplianceIncompleto
}

// Evaluate scores docs against policy. Score is round(100 * present / required)
// and Missing keeps the policy order.
func Evaluate(docs entities.DocumentSet, termsSigned bool, policy CompliancePolicy) ComplianceResult {
	missing := []entities.DocumentKind{}
	present := 0

	for _, kind := range policy.Required {
		if slot, ok := docs.Slot(kind); ok && slot.Present {
			present++
			continue
		}
		if kind == entities.DocumentOC && policy.AcceptTermsForPO && termsSigned {
			present++
			continue
		}
		missing = append(missing, kind)
	}

	score := 100
	if n := len(policy.Required); n > 0 {
		score = int(math.Round(100 * float64(present) / float64(n)))
	}

	return ComplianceResult{
		Complete: len(missing) == 0,
		Score:    score,
		Missing:  missing,
	}
}
