package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TaxStatus is stored as an integer code in the tax_status column.
type TaxStatus int

const (
	TaxStatusInUse    TaxStatus = 1
	TaxStatusNotInUse TaxStatus = 2
)

var taxStatusNames = map[TaxStatus]string{
	TaxStatusInUse:    "InUse",
	TaxStatusNotInUse: "NotInUse",
}

func (s TaxStatus) String() string {
	if name, ok := taxStatusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Valid reports whether s is one of the defined status codes.
func (s TaxStatus) Valid() bool {
	_, ok := taxStatusNames[s]
	return ok
}

// ParseTaxStatus resolves a canonical status name, ignoring case.
func ParseTaxStatus(name string) (TaxStatus, bool) {
	name = strings.TrimSpace(name)
	for status, canonical := range taxStatusNames {
		if strings.EqualFold(canonical, name) {
			return status, true
		}
	}
	return 0, false
}

// TaxOrderBy selects the sort key of a filtered tax listing.
type TaxOrderBy int

const (
	TaxOrderBySalaryMinAsc TaxOrderBy = iota + 1
	TaxOrderBySalaryMinDesc
	TaxOrderBySalaryMaxAsc
	TaxOrderBySalaryMaxDesc
	TaxOrderByPercentAsc
	TaxOrderByPercentDesc
	TaxOrderByTimestampAsc
	TaxOrderByTimestampDesc
)

var taxOrderByNames = map[TaxOrderBy]string{
	TaxOrderBySalaryMinAsc:  "SalaryMinAscending",
	TaxOrderBySalaryMinDesc: "SalaryMinDescending",
	TaxOrderBySalaryMaxAsc:  "SalaryMaxAscending",
	TaxOrderBySalaryMaxDesc: "SalaryMaxDescending",
	TaxOrderByPercentAsc:    "PercentAscending",
	TaxOrderByPercentDesc:   "PercentDescending",
	TaxOrderByTimestampAsc:  "TimestampAscending",
	TaxOrderByTimestampDesc: "TimestampDescending",
}

func (o TaxOrderBy) String() string {
	return taxOrderByNames[o]
}

func ParseTaxOrderBy(name string) (TaxOrderBy, bool) {
	name = strings.TrimSpace(name)
	for orderBy, canonical := range taxOrderByNames {
		if strings.EqualFold(canonical, name) {
			return orderBy, true
		}
	}
	return 0, false
}

// Tax is a salary bracket with the percentage withheld inside it.
type Tax struct {
	ID        int             `gorm:"primaryKey;autoIncrement" json:"id"`
	SalaryMin decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"salary_min"`
	SalaryMax decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"salary_max"`
	Percent   float64         `gorm:"not null" json:"percent"`
	Status    TaxStatus       `gorm:"column:tax_status;not null;index" json:"status"`
	Timestamp time.Time       `gorm:"column:recorded_at;not null;index" json:"timestamp"` // Set once on create
}

func (Tax) TableName() string { return "taxes" }
