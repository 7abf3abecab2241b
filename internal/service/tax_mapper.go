package service

import (
	"time"

	ierr "hrm/internal/errors"
	"hrm/internal/model"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

func newTaxFromCreateRequest(req CreateTaxRequest) (*model.Tax, error) {
	if err := requireBracket(req.SalaryMin, req.SalaryMax, req.Percent); err != nil {
		return nil, err
	}
	low, high := orderedBounds(*req.SalaryMin, *req.SalaryMax)
	return &model.Tax{
		SalaryMin: low,
		SalaryMax: high,
		Percent:   *req.Percent,
	}, nil
}

// applyUpdateRequest overwrites the bracket of tax; status and timestamp are kept.
func applyUpdateRequest(tax *model.Tax, req UpdateTaxRequest) error {
	if err := requireBracket(req.SalaryMin, req.SalaryMax, req.Percent); err != nil {
		return err
	}
	tax.SalaryMin, tax.SalaryMax = orderedBounds(*req.SalaryMin, *req.SalaryMax)
	tax.Percent = *req.Percent
	return nil
}

func toTaxResponse(t model.Tax) TaxResponse {
	return TaxResponse{
		ID:         t.ID,
		SalaryMin:  t.SalaryMin,
		SalaryMax:  t.SalaryMax,
		Percent:    t.Percent,
		Status:     t.Status.String(),
		StatusCode: int(t.Status),
		Timestamp:  t.Timestamp.UTC().Format(time.RFC3339),
	}
}

func toTaxResponses(taxes []model.Tax) []TaxResponse {
	return lo.Map(taxes, func(t model.Tax, _ int) TaxResponse {
		return toTaxResponse(t)
	})
}

func orderedBounds(a, b decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	if a.GreaterThan(b) {
		return b, a
	}
	return a, b
}

// normalizeSalaryRange swaps the ends only when both are supplied and reversed.
func normalizeSalaryRange(min, max *decimal.Decimal) (*decimal.Decimal, *decimal.Decimal) {
	if min != nil && max != nil && min.GreaterThan(*max) {
		return max, min
	}
	return min, max
}

func normalizePercentRange(min, max *float64) (*float64, *float64) {
	if min != nil && max != nil && *min > *max {
		return max, min
	}
	return min, max
}

func requireBracket(min, max *decimal.Decimal, percent *float64) error {
	var details []ierr.ErrorDetail
	if min == nil {
		details = append(details, requiredField("salary_min"))
	}
	if max == nil {
		details = append(details, requiredField("salary_max"))
	}
	if percent == nil {
		details = append(details, requiredField("percent"))
	}
	if len(details) == 0 {
		return nil
	}
	return ierr.NewError("tax bracket is incomplete").
		WithHint("Salary bounds and percent are required.").
		WithDetails(details...).
		Mark(ierr.ErrValidation)
}

func requiredField(field string) ierr.ErrorDetail {
	return ierr.ErrorDetail{Field: field, Descriptions: []string{field + " is required"}}
}
