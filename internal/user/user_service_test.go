package user_test

import (
	"context"
	"testing"

	"go-payroll/internal/auth"
	"go-payroll/internal/domain"
	"go-payroll/internal/user"
	usererrors "go-payroll/internal/user/errors"
	userMock "go-payroll/internal/user/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestService_UpdateRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMock.NewMockRepository(ctrl)
	service := user.NewService(mockRepo)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		existing := &auth.User{ID: 7, FirstName: "Jane", Email: "jane@example.com", Role: domain.RoleHR}

		mockRepo.EXPECT().FindByID(ctx, int64(7)).Return(existing, nil)
		mockRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		resp, err := service.UpdateRole(ctx, 7, domain.RoleAdmin)
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, resp.Role)
	})

	t.Run("Invalid Role", func(t *testing.T) {
		_, err := service.UpdateRole(ctx, 7, "MANAGER")
		assert.Equal(t, usererrors.ErrInvalidRole, err)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, gorm.ErrRecordNotFound)

		_, err := service.UpdateRole(ctx, 99, domain.RoleHR)
		assert.Equal(t, usererrors.ErrUserNotFound, err)
	})
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMock.NewMockRepository(ctrl)
	service := user.NewService(mockRepo)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo.EXPECT().Delete(ctx, int64(3)).Return(int64(1), nil)

		err := service.Delete(ctx, 3, 1)
		assert.NoError(t, err)
	})

	t.Run("Self Delete Rejected", func(t *testing.T) {
		err := service.Delete(ctx, 1, 1)
		assert.Equal(t, usererrors.ErrCannotDeleteSelf, err)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockRepo.EXPECT().Delete(ctx, int64(404)).Return(int64(0), nil)

		err := service.Delete(ctx, 404, 1)
		assert.Equal(t, usererrors.ErrUserNotFound, err)
	})
}

func TestService_GetByEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMock.NewMockRepository(ctrl)
	service := user.NewService(mockRepo)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByEmail(ctx, "jane@example.com").
			Return(&auth.User{ID: 7, Email: "jane@example.com", Role: domain.RoleHR}, nil)

		resp, err := service.GetByEmail(ctx, "jane@example.com")
		assert.NoError(t, err)
		assert.Equal(t, int64(7), resp.ID)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByEmail(ctx, "ghost@example.com").
			Return(nil, gorm.ErrRecordNotFound)

		_, err := service.GetByEmail(ctx, "ghost@example.com")
		assert.Equal(t, usererrors.ErrUserNotFound, err)
	})
}
