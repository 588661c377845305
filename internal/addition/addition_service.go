package addition

import (
	"context"
	"errors"

	additionerrors "go-payroll/internal/addition/errors"
	"go-payroll/internal/additiontype"
	additiontypeerrors "go-payroll/internal/additiontype/errors"
	"go-payroll/internal/domain"
	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=addition_service.go -destination=mock/addition_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateAdditionRequest) (AdditionResponse, error)
	GetAll(ctx context.Context, employeeID int64) ([]AdditionResponse, error)
	GetByID(ctx context.Context, id int64) (AdditionResponse, error)
	Update(ctx context.Context, id int64, req UpdateAdditionRequest) (AdditionResponse, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo         Repository
	typeRepo     additiontype.Repository
	employeeRepo employee.Repository
	logger       *zap.Logger
}

func NewService(repo Repository, typeRepo additiontype.Repository, employeeRepo employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("addition.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("addition.service")
	}
	return &service{
		repo:         repo,
		typeRepo:     typeRepo,
		employeeRepo: employeeRepo,
		logger:       l,
	}
}

func (s *service) Create(ctx context.Context, req CreateAdditionRequest) (AdditionResponse, error) {
	empl, err := s.employeeRepo.FindByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AdditionResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return AdditionResponse{}, err
	}

	at, err := s.typeRepo.FindByID(ctx, req.TypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AdditionResponse{}, additiontypeerrors.ErrAdditionTypeNotFound
		}
		return AdditionResponse{}, err
	}

	amount, metadata, err := resolveAmount(req.Amount, req.Hours, req.HourRate, req.Multiplier, empl)
	if err != nil {
		return AdditionResponse{}, err
	}

	if at.FrequencyType == domain.FrequencyMonthly {
		count, err := s.repo.CountByEmployeeAndType(ctx, req.EmployeeID, req.TypeID, 0)
		if err != nil {
			return AdditionResponse{}, err
		}
		if count > 0 {
			return AdditionResponse{}, additionerrors.ErrDuplicateMonthlyAddition
		}
	}

	add := &Addition{
		EmployeeID:  req.EmployeeID,
		TypeID:      req.TypeID,
		Amount:      amount,
		Description: req.Description,
		Metadata:    metadata,
	}

	if err := s.repo.Create(ctx, add); err != nil {
		s.logger.Error("create addition persist failed", zap.Error(err))
		return AdditionResponse{}, err
	}

	s.logger.Info("create addition success",
		zap.Int64("addition_id", add.ID),
		zap.Int64("employee_id", add.EmployeeID),
		zap.String("amount", amount.String()),
	)

	return mapToResponse(*add), nil
}

func (s *service) GetAll(ctx context.Context, employeeID int64) ([]AdditionResponse, error) {
	adds, err := s.repo.FindAll(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	res := make([]AdditionResponse, len(adds))
	for i, a := range adds {
		res[i] = mapToResponse(a)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (AdditionResponse, error) {
	add, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AdditionResponse{}, additionerrors.ErrAdditionNotFound
		}
		return AdditionResponse{}, err
	}

	return mapToResponse(*add), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateAdditionRequest) (AdditionResponse, error) {
	add, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AdditionResponse{}, additionerrors.ErrAdditionNotFound
		}
		return AdditionResponse{}, err
	}

	empl, err := s.employeeRepo.FindByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AdditionResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return AdditionResponse{}, err
	}

	at, err := s.typeRepo.FindByID(ctx, req.TypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AdditionResponse{}, additiontypeerrors.ErrAdditionTypeNotFound
		}
		return AdditionResponse{}, err
	}

	amount, metadata, err := resolveAmount(req.Amount, req.Hours, req.HourRate, req.Multiplier, empl)
	if err != nil {
		return AdditionResponse{}, err
	}

	if at.FrequencyType == domain.FrequencyMonthly {
		count, err := s.repo.CountByEmployeeAndType(ctx, req.EmployeeID, req.TypeID, id)
		if err != nil {
			return AdditionResponse{}, err
		}
		if count > 0 {
			return AdditionResponse{}, additionerrors.ErrDuplicateMonthlyAddition
		}
	}

	add.EmployeeID = req.EmployeeID
	add.TypeID = req.TypeID
	add.Amount = amount
	add.Description = req.Description
	add.Metadata = metadata

	if err := s.repo.Update(ctx, add); err != nil {
		s.logger.Error("update addition persist failed", zap.Error(err))
		return AdditionResponse{}, err
	}

	return mapToResponse(*add), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return additionerrors.ErrAdditionNotFound
	}

	return nil
}

// resolveAmount applies the amount-or-hours rule: a direct amount and an
// hours triple are mutually exclusive, and an hours entry falls back to the
// employee's hour rate when none is given. The derived amount is computed
// once, here, with decimal arithmetic.
func resolveAmount(
	amount *decimal.Decimal,
	hours *float64,
	hourRate *decimal.Decimal,
	multiplier *float64,
	empl *employee.Employee,
) (decimal.Decimal, *domain.HoursMetadata, error) {
	hasHours := hours != nil

	switch {
	case amount != nil && hasHours:
		return decimal.Zero, nil, additionerrors.ErrAmountAndHoursExclusive
	case amount != nil:
		return *amount, nil, nil
	case !hasHours:
		return decimal.Zero, nil, additionerrors.ErrAmountOrHoursRequired
	}

	rate := hourRate
	if rate == nil {
		rate = empl.HourRate
	}
	if rate == nil {
		return decimal.Zero, nil, additionerrors.ErrHourRateUnavailable
	}

	mult := 1.0
	if multiplier != nil {
		mult = *multiplier
	}

	derived := decimal.NewFromFloat(*hours).
		Mul(*rate).
		Mul(decimal.NewFromFloat(mult)).
		Round(2)

	metadata := &domain.HoursMetadata{
		Hours:      *hours,
		HourRate:   rate.InexactFloat64(),
		Multiplier: mult,
	}

	return derived, metadata, nil
}

func mapToResponse(add Addition) AdditionResponse {
	resp := AdditionResponse{
		ID:          add.ID,
		EmployeeID:  add.EmployeeID,
		TypeID:      add.TypeID,
		Amount:      add.Amount.String(),
		Description: add.Description,
		CreatedAt:   add.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if add.Metadata != nil {
		resp.Metadata = &MetadataPayload{
			Hours:      add.Metadata.Hours,
			HourRate:   add.Metadata.HourRate,
			Multiplier: add.Metadata.Multiplier,
		}
	}
	return resp
}
