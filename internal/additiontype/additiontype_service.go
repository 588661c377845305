package additiontype

import (
	"context"
	"errors"

	additiontypeerrors "go-payroll/internal/additiontype/errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=additiontype_service.go -destination=mock/additiontype_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateAdditionTypeRequest) (AdditionTypeResponse, error)
	GetAll(ctx context.Context) ([]AdditionTypeResponse, error)
	GetByID(ctx context.Context, id int64) (AdditionTypeResponse, error)
	Update(ctx context.Context, id int64, req UpdateAdditionTypeRequest) (AdditionTypeResponse, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateAdditionTypeRequest) (AdditionTypeResponse, error) {
	at := &AdditionType{
		Name:          req.Name,
		Description:   req.Description,
		FrequencyType: req.FrequencyType,
	}

	if err := s.repo.Create(ctx, at); err != nil {
		return AdditionTypeResponse{}, err
	}

	return mapToResponse(*at), nil
}

func (s *service) GetAll(ctx context.Context) ([]AdditionTypeResponse, error) {
	types, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(types), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (AdditionTypeResponse, error) {
	at, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AdditionTypeResponse{}, additiontypeerrors.ErrAdditionTypeNotFound
		}
		return AdditionTypeResponse{}, err
	}

	return mapToResponse(*at), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateAdditionTypeRequest) (AdditionTypeResponse, error) {
	at, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AdditionTypeResponse{}, additiontypeerrors.ErrAdditionTypeNotFound
		}
		return AdditionTypeResponse{}, err
	}

	at.Name = req.Name
	at.Description = req.Description
	at.FrequencyType = req.FrequencyType

	if err := s.repo.Update(ctx, at); err != nil {
		return AdditionTypeResponse{}, err
	}

	return mapToResponse(*at), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return additiontypeerrors.ErrAdditionTypeNotFound
	}

	return nil
}

func mapToResponse(at AdditionType) AdditionTypeResponse {
	return AdditionTypeResponse{
		ID:            at.ID,
		Name:          at.Name,
		Description:   at.Description,
		FrequencyType: at.FrequencyType,
	}
}

func mapToListResponse(types []AdditionType) []AdditionTypeResponse {
	res := make([]AdditionTypeResponse, len(types))
	for i, at := range types {
		res[i] = mapToResponse(at)
	}
	return res
}
