package rules

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"eisen_qms/internal/domain"
	"eisen_qms/internal/domain/entities"
)

// DefaultNOKThreshold is the NOK rate above which an inspection raises an alert.
var DefaultNOKThreshold = decimal.RequireFromString("0.03")

// ValidateInspection enforces NOK == total - OK == sum of defect quantities.
func ValidateInspection(i entities.DailyInspection) error {
	switch {
	case strings.TrimSpace(i.ProjectID) == "":
		return domain.NewValidationError("proyecto", "project required")
	case i.Date.IsZero():
		return domain.NewValidationError("fecha", "date required")
	case i.Total <= 0:
		return domain.NewValidationError("total", "inspected total must be positive")
	case i.OK < 0 || i.OK > i.Total:
		return domain.NewValidationError("ok", "ok count must be between 0 and total")
	case i.NOK != i.Total-i.OK:
		return domain.NewValidationError("nok", fmt.Sprintf("nok %d does not match total - ok = %d", i.NOK, i.Total-i.OK))
	}

	sum := 0
	for _, d := range i.Defects {
		if strings.TrimSpace(d.Description) == "" {
			return domain.NewValidationError("defectos", "defect description required")
		}
		if d.Quantity <= 0 {
			return domain.NewValidationError("defectos", "defect quantity must be positive")
		}
		sum += d.Quantity
	}
	if sum != i.NOK {
		return domain.NewValidationError("defectos", fmt.Sprintf("defect quantities add up to %d, nok is %d", sum, i.NOK))
	}
	return nil
}

// NOKRate is nok/total, zero when nothing was inspected.
func NOKRate(nok, total int) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(nok)).Div(decimal.NewFromInt(int64(total)))
}

func NOKAlert(rate, threshold decimal.Decimal) bool {
	return rate.GreaterThan(threshold)
}
