package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	ierr "hrm/internal/errors"
	"hrm/internal/logger"
	"hrm/internal/model"
	"hrm/internal/repository"
	"hrm/internal/requestctx"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// --- DTOs ---

type CreateTaxRequest struct {
	SalaryMin *decimal.Decimal `json:"salary_min" binding:"required"`
	SalaryMax *decimal.Decimal `json:"salary_max" binding:"required"`
	Percent   *float64         `json:"percent" binding:"required"`
}

type UpdateTaxRequest struct {
	SalaryMin *decimal.Decimal `json:"salary_min" binding:"required"`
	SalaryMax *decimal.Decimal `json:"salary_max" binding:"required"`
	Percent   *float64         `json:"percent" binding:"required"`
}

type UpdateTaxStatusRequest struct {
	Status string `json:"status" binding:"required"` // InUse or NotInUse
}

// TaxFilterRequest narrows GetFilteredTaxes. Nil fields are not applied.
type TaxFilterRequest struct {
	MinSalary      *decimal.Decimal
	MaxSalary      *decimal.Decimal
	MinPercent     *float64
	MaxPercent     *float64
	AddedOnOrAfter *time.Time
	Status         *model.TaxStatus
	OrderBy        *model.TaxOrderBy
}

type TaxResponse struct {
	ID         int             `json:"id"`
	SalaryMin  decimal.Decimal `json:"salary_min"`
	SalaryMax  decimal.Decimal `json:"salary_max"`
	Percent    float64         `json:"percent"`
	Status     string          `json:"status"`
	StatusCode int             `json:"status_code"`
	Timestamp  string          `json:"timestamp"`
}

// Events published after a tax mutation commits.
const (
	EventTaxCreated       = "tax.created"
	EventTaxUpdated       = "tax.updated"
	EventTaxStatusChanged = "tax.status_changed"
	EventTaxDeleted       = "tax.deleted"
)

// EventPublisher receives committed tax changes.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, data interface{})
}

// --- Interface ---

type TaxService interface {
	CreateTax(ctx context.Context, req CreateTaxRequest) (TaxResponse, error)
	DeleteTax(ctx context.Context, id int) error
	GetTax(ctx context.Context, id int) (TaxResponse, error)
	GetTaxes(ctx context.Context) ([]TaxResponse, error)
	GetFilteredTaxes(ctx context.Context, filter TaxFilterRequest) ([]TaxResponse, error)
	UpdateTax(ctx context.Context, id int, req UpdateTaxRequest) (TaxResponse, error)
	UpdateTaxStatus(ctx context.Context, id int, status model.TaxStatus) (TaxResponse, error)
}

type TaxServiceOption func(*taxService)

// WithClock replaces the clock used to stamp new taxes.
func WithClock(now func() time.Time) TaxServiceOption {
	return func(s *taxService) { s.now = now }
}

// WithPublisher sets where committed changes are announced.
func WithPublisher(p EventPublisher) TaxServiceOption {
	return func(s *taxService) { s.publisher = p }
}

type taxService struct {
	uow       repository.UnitOfWork
	taxes     repository.TaxRepository
	audits    repository.AuditRepository
	publisher EventPublisher
	log       *zap.Logger
	now       func() time.Time
}

func NewTaxService(
	uow repository.UnitOfWork,
	taxes repository.TaxRepository,
	audits repository.AuditRepository,
	log *zap.Logger,
	opts ...TaxServiceOption,
) TaxService {
	s := &taxService{
		uow:    uow,
		taxes:  taxes,
		audits: audits,
		log:    log.Named("tax.service"),
		now: func() time.Time {
			return time.Now().UTC().Truncate(time.Microsecond)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// --- Implementation ---

func (s *taxService) CreateTax(ctx context.Context, req CreateTaxRequest) (TaxResponse, error) {
	tax, err := newTaxFromCreateRequest(req)
	if err != nil {
		return TaxResponse{}, err
	}
	tax.Timestamp = s.now()
	tax.Status = model.TaxStatusInUse

	err = s.uow.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.taxes.AddNew(txCtx, tax); err != nil {
			return err
		}
		s.writeAuditLog(txCtx, model.ActionCreateTax, tax, req)
		return nil
	})
	if err != nil {
		return TaxResponse{}, s.fail(ctx, "create", err)
	}

	resp := toTaxResponse(*tax)
	s.publish(ctx, EventTaxCreated, resp)
	return resp, nil
}

func (s *taxService) DeleteTax(ctx context.Context, id int) error {
	err := s.uow.RunInTx(ctx, func(txCtx context.Context) error {
		tax, err := s.taxes.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := s.taxes.DeleteByID(txCtx, id); err != nil {
			return err
		}
		s.writeAuditLog(txCtx, model.ActionDeleteTax, tax, map[string]int{"deleted_id": id})
		return nil
	})
	if err != nil {
		return s.fail(ctx, "delete", err)
	}

	s.publish(ctx, EventTaxDeleted, map[string]int{"id": id})
	return nil
}

func (s *taxService) GetTax(ctx context.Context, id int) (TaxResponse, error) {
	tax, err := s.taxes.GetByID(ctx, id)
	if err != nil {
		return TaxResponse{}, s.fail(ctx, "get", err)
	}
	return toTaxResponse(*tax), nil
}

func (s *taxService) GetTaxes(ctx context.Context) ([]TaxResponse, error) {
	taxes, err := s.taxes.GetAll(ctx)
	if err != nil {
		return nil, s.fail(ctx, "list", err)
	}
	return toTaxResponses(taxes), nil
}

func (s *taxService) GetFilteredTaxes(ctx context.Context, req TaxFilterRequest) ([]TaxResponse, error) {
	filter := repository.TaxFilter{AddedOnOrAfter: req.AddedOnOrAfter}
	filter.MinSalary, filter.MaxSalary = normalizeSalaryRange(req.MinSalary, req.MaxSalary)
	filter.MinPercent, filter.MaxPercent = normalizePercentRange(req.MinPercent, req.MaxPercent)

	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, invalidStatus(*req.Status)
		}
		code := int(*req.Status)
		filter.StatusCode = &code
	}
	if req.OrderBy != nil {
		name := req.OrderBy.String()
		if name == "" {
			return nil, ierr.NewError("unknown tax order").
				WithHintf("Unknown order %d.", int(*req.OrderBy)).
				Mark(ierr.ErrValidation)
		}
		filter.OrderBy = &name
	}

	taxes, err := s.taxes.GetFiltered(ctx, filter)
	if err != nil {
		return nil, s.fail(ctx, "filter", err)
	}
	return toTaxResponses(taxes), nil
}

func (s *taxService) UpdateTax(ctx context.Context, id int, req UpdateTaxRequest) (TaxResponse, error) {
	var updated *model.Tax
	err := s.uow.RunInTx(ctx, func(txCtx context.Context) error {
		tax, err := s.taxes.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := applyUpdateRequest(tax, req); err != nil {
			return err
		}
		if err := s.taxes.Update(txCtx, tax); err != nil {
			return err
		}
		s.writeAuditLog(txCtx, model.ActionUpdateTax, tax, req)
		updated = tax
		return nil
	})
	if err != nil {
		return TaxResponse{}, s.fail(ctx, "update", err)
	}

	resp := toTaxResponse(*updated)
	s.publish(ctx, EventTaxUpdated, resp)
	return resp, nil
}

func (s *taxService) UpdateTaxStatus(ctx context.Context, id int, status model.TaxStatus) (TaxResponse, error) {
	if !status.Valid() {
		return TaxResponse{}, invalidStatus(status)
	}

	var updated *model.Tax
	err := s.uow.RunInTx(ctx, func(txCtx context.Context) error {
		tax, err := s.taxes.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		tax.Status = status
		if err := s.taxes.Update(txCtx, tax); err != nil {
			return err
		}
		s.writeAuditLog(txCtx, model.ActionUpdateTaxStatus, tax, map[string]string{"status": status.String()})
		updated = tax
		return nil
	})
	if err != nil {
		return TaxResponse{}, s.fail(ctx, "update_status", err)
	}

	resp := toTaxResponse(*updated)
	s.publish(ctx, EventTaxStatusChanged, resp)
	return resp, nil
}

// --- Helpers ---

// fail logs unexpected failures; expected kinds pass through quietly.
func (s *taxService) fail(ctx context.Context, op string, err error) error {
	if !ierr.IsNotFound(err) && !ierr.IsValidation(err) {
		logger.WithContext(ctx, s.log).Error("tax operation failed", zap.String("op", op), zap.Error(err))
	}
	return err
}

func (s *taxService) publish(ctx context.Context, eventType string, data interface{}) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(ctx, eventType, data)
}

// writeAuditLog is best-effort: a failed audit write is logged and the operation proceeds.
func (s *taxService) writeAuditLog(ctx context.Context, action string, tax *model.Tax, details interface{}) {
	detailsJSON, _ := json.Marshal(details)

	entry := model.AuditLog{
		UserID:     requestctx.Actor(ctx),
		Action:     action,
		EntityID:   fmt.Sprintf("%d", tax.ID),
		EntityName: fmt.Sprintf("%s-%s @ %g%%", tax.SalaryMin.String(), tax.SalaryMax.String(), tax.Percent),
		Details:    string(detailsJSON),
	}
	if err := s.audits.Log(ctx, &entry); err != nil {
		logger.WithContext(ctx, s.log).Warn("failed to write audit log", zap.String("action", action), zap.Error(err))
	}
}

func invalidStatus(status model.TaxStatus) error {
	return ierr.NewError(fmt.Sprintf("invalid tax status %d", int(status))).
		WithHint("Status must be InUse or NotInUse.").
		WithDetails(ierr.ErrorDetail{Field: "status", Descriptions: []string{"must be InUse or NotInUse"}}).
		Mark(ierr.ErrValidation)
}
