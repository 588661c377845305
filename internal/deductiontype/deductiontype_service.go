package deductiontype

import (
	"context"
	"errors"

	deductiontypeerrors "go-payroll/internal/deductiontype/errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=deductiontype_service.go -destination=mock/deductiontype_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDeductionTypeRequest) (DeductionTypeResponse, error)
	GetAll(ctx context.Context) ([]DeductionTypeResponse, error)
	GetByID(ctx context.Context, id int64) (DeductionTypeResponse, error)
	Update(ctx context.Context, id int64, req UpdateDeductionTypeRequest) (DeductionTypeResponse, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateDeductionTypeRequest) (DeductionTypeResponse, error) {
	at := &DeductionType{
		Name:          req.Name,
		Description:   req.Description,
		FrequencyType: req.FrequencyType,
	}

	if err := s.repo.Create(ctx, at); err != nil {
		return DeductionTypeResponse{}, err
	}

	return mapToResponse(*at), nil
}

func (s *service) GetAll(ctx context.Context) ([]DeductionTypeResponse, error) {
	types, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(types), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (DeductionTypeResponse, error) {
	at, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DeductionTypeResponse{}, deductiontypeerrors.ErrDeductionTypeNotFound
		}
		return DeductionTypeResponse{}, err
	}

	return mapToResponse(*at), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateDeductionTypeRequest) (DeductionTypeResponse, error) {
	at, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DeductionTypeResponse{}, deductiontypeerrors.ErrDeductionTypeNotFound
		}
		return DeductionTypeResponse{}, err
	}

	at.Name = req.Name
	at.Description = req.Description
	at.FrequencyType = req.FrequencyType

	if err := s.repo.Update(ctx, at); err != nil {
		return DeductionTypeResponse{}, err
	}

	return mapToResponse(*at), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return deductiontypeerrors.ErrDeductionTypeNotFound
	}

	return nil
}

func mapToResponse(at DeductionType) DeductionTypeResponse {
	return DeductionTypeResponse{
		ID:            at.ID,
		Name:          at.Name,
		Description:   at.Description,
		FrequencyType: at.FrequencyType,
	}
}

func mapToListResponse(types []DeductionType) []DeductionTypeResponse {
	res := make([]DeductionTypeResponse, len(types))
	for i, at := range types {
		res[i] = mapToResponse(at)
	}
	return res
}
