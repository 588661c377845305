package user

import (
	"context"
	"errors"
	"strconv"

	"go-payroll/internal/auth"
	"go-payroll/internal/domain"
	"go-payroll/internal/shared/contextutil"
	usererrors "go-payroll/internal/user/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock

type Service interface {
	GetAll(ctx context.Context) ([]UserResponse, error)
	GetByEmail(ctx context.Context, email string) (UserResponse, error)
	UpdateRole(ctx context.Context, id int64, role string) (UserResponse, error)
	Delete(ctx context.Context, id int64, actorID int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}

	return resp, nil
}

func (s *service) GetByEmail(ctx context.Context, email string) (UserResponse, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}

	return mapToResponse(*u), nil
}

func (s *service) UpdateRole(ctx context.Context, id int64, role string) (UserResponse, error) {
	l := contextutil.GetLogger(ctx, nil)

	if role != domain.RoleAdmin && role != domain.RoleHR {
		return UserResponse{}, usererrors.ErrInvalidRole
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}

	u.Role = role
	if err := s.repo.Update(ctx, u); err != nil {
		l.Error("failed to update user role", zap.Error(err))
		return UserResponse{}, err
	}

	l.Info("user role updated",
		zap.Int64("user_id", id),
		zap.String("role", role),
	)

	return mapToResponse(*u), nil
}

func (s *service) Delete(ctx context.Context, id int64, actorID int64) error {
	if id == actorID {
		return usererrors.ErrCannotDeleteSelf
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return usererrors.ErrUserNotFound
	}

	return nil
}

func mapToResponse(u auth.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// ParseID converts a path id into an int64.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, usererrors.ErrInvalidUserID
	}
	return id, nil
}
