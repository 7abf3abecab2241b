package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	ierr "hrm/internal/errors"
	"hrm/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TaxNotFoundMessage is the client facing text of a missing tax lookup.
const TaxNotFoundMessage = "The Tax with inputted ID does not exist in the System."

// TaxFilter narrows a tax listing. Nil fields apply no predicate.
type TaxFilter struct {
	MinSalary      *decimal.Decimal
	MaxSalary      *decimal.Decimal
	MinPercent     *float64
	MaxPercent     *float64
	AddedOnOrAfter *time.Time
	StatusCode     *int
	OrderBy        *string // canonical model.TaxOrderBy name
}

// TaxRepository is the data-access object for tax brackets. Lookups and deletes of a
// missing id fail with ierr.ErrNotFound, every other failure with ierr.ErrDatabase.
type TaxRepository interface {
	AddNew(ctx context.Context, tax *model.Tax) error
	GetByID(ctx context.Context, id int) (*model.Tax, error)
	GetAll(ctx context.Context) ([]model.Tax, error)
	GetFiltered(ctx context.Context, filter TaxFilter) ([]model.Tax, error)
	Update(ctx context.Context, tax *model.Tax) error
	DeleteByID(ctx context.Context, id int) error
}

var taxOrderClauses = map[string]string{
	model.TaxOrderBySalaryMinAsc.String():  "salary_min ASC, id ASC",
	model.TaxOrderBySalaryMinDesc.String(): "salary_min DESC, id ASC",
	model.TaxOrderBySalaryMaxAsc.String():  "salary_max ASC, id ASC",
	model.TaxOrderBySalaryMaxDesc.String(): "salary_max DESC, id ASC",
	model.TaxOrderByPercentAsc.String():    "percent ASC, id ASC",
	model.TaxOrderByPercentDesc.String():   "percent DESC, id ASC",
	model.TaxOrderByTimestampAsc.String():  "recorded_at ASC, id ASC",
	model.TaxOrderByTimestampDesc.String(): "recorded_at DESC, id ASC",
}

type taxRepository struct {
	db *gorm.DB
}

func NewTaxRepository(db *gorm.DB) TaxRepository {
	return &taxRepository{db: db}
}

func (r *taxRepository) AddNew(ctx context.Context, tax *model.Tax) error {
	if err := GetDB(ctx, r.db).Create(tax).Error; err != nil {
		return ierr.WithError(err).WithMessage("failed to create tax").Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *taxRepository) GetByID(ctx context.Context, id int) (*model.Tax, error) {
	var tax model.Tax
	if err := GetDB(ctx, r.db).First(&tax, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, taxNotFound(id)
		}
		return nil, ierr.WithError(err).WithMessage("failed to fetch tax").Mark(ierr.ErrDatabase)
	}
	return &tax, nil
}

func (r *taxRepository) GetAll(ctx context.Context) ([]model.Tax, error) {
	var taxes []model.Tax
	if err := GetDB(ctx, r.db).Find(&taxes).Error; err != nil {
		return nil, ierr.WithError(err).WithMessage("failed to fetch taxes").Mark(ierr.ErrDatabase)
	}
	return taxes, nil
}

func (r *taxRepository) GetFiltered(ctx context.Context, filter TaxFilter) ([]model.Tax, error) {
	order := "id ASC"
	if filter.OrderBy != nil {
		clause, ok := taxOrderClauses[*filter.OrderBy]
		if !ok {
			return nil, ierr.NewError("unknown tax order").
				WithHintf("Cannot order taxes by %q.", *filter.OrderBy).
				Mark(ierr.ErrValidation)
		}
		order = clause
	}

	query := GetDB(ctx, r.db).Model(&model.Tax{})
	if filter.MinSalary != nil {
		query = query.Where("salary_min >= ?", *filter.MinSalary)
	}
	if filter.MaxSalary != nil {
		query = query.Where("salary_max <= ?", *filter.MaxSalary)
	}
	if filter.MinPercent != nil {
		query = query.Where("percent >= ?", *filter.MinPercent)
	}
	if filter.MaxPercent != nil {
		query = query.Where("percent <= ?", *filter.MaxPercent)
	}
	if filter.AddedOnOrAfter != nil {
		query = query.Where("recorded_at >= ?", *filter.AddedOnOrAfter)
	}
	if filter.StatusCode != nil {
		query = query.Where("tax_status = ?", *filter.StatusCode)
	}

	var taxes []model.Tax
	if err := query.Order(order).Find(&taxes).Error; err != nil {
		return nil, ierr.WithError(err).WithMessage("failed to filter taxes").Mark(ierr.ErrDatabase)
	}
	return taxes, nil
}

// Update writes bounds, percent and status. The creation timestamp is never rewritten.
func (r *taxRepository) Update(ctx context.Context, tax *model.Tax) error {
	result := GetDB(ctx, r.db).Model(&model.Tax{}).Where("id = ?", tax.ID).Updates(map[string]interface{}{
		"salary_min": tax.SalaryMin,
		"salary_max": tax.SalaryMax,
		"percent":    tax.Percent,
		"tax_status": int(tax.Status),
	})
	if result.Error != nil {
		return ierr.WithError(result.Error).WithMessage("failed to update tax").Mark(ierr.ErrDatabase)
	}
	if result.RowsAffected == 0 {
		return taxNotFound(tax.ID)
	}
	return nil
}

func (r *taxRepository) DeleteByID(ctx context.Context, id int) error {
	result := GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Tax{})
	if result.Error != nil {
		return ierr.WithError(result.Error).WithMessage("failed to delete tax").Mark(ierr.ErrDatabase)
	}
	if result.RowsAffected == 0 {
		return taxNotFound(id)
	}
	return nil
}

func taxNotFound(id int) error {
	return ierr.NewError(fmt.Sprintf("tax %d not found", id)).
		WithHint(TaxNotFoundMessage).
		WithDetails(ierr.ErrorDetail{Field: "id", Descriptions: []string{TaxNotFoundMessage}}).
		Mark(ierr.ErrNotFound)
}
