package employee_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"
	employeeMock "go-payroll/internal/employee/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := employeeMock.NewMockRepository(ctrl)
	rdb, rmock := redismock.NewClientMock()
	service := employee.NewService(mockRepo, rdb, zap.NewNop())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		req := employee.CreateEmployeeRequest{
			FirstName:   "John",
			LastName:    "Doe",
			Email:       "john.doe@example.com",
			Position:    "Engineer",
			BasicSalary: decimal.NewFromInt(50000),
			HireDate:    "2024-01-15",
		}

		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee) error {
				e.ID = 1
				return nil
			})
		rmock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

		resp, err := service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "50000", resp.BasicSalary)
		assert.Equal(t, "2024-01-15", resp.HireDate)
		assert.NoError(t, rmock.ExpectationsWereMet())
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		req := employee.CreateEmployeeRequest{
			FirstName:   "John",
			LastName:    "Doe",
			Email:       "john.doe@example.com",
			BasicSalary: decimal.NewFromInt(50000),
		}

		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_email"})

		_, err := service.Create(ctx, req)
		assert.Equal(t, employeeerrors.ErrEmployeeAlreadyExists, err)
	})

	t.Run("Invalid Hire Date", func(t *testing.T) {
		req := employee.CreateEmployeeRequest{
			FirstName:   "John",
			LastName:    "Doe",
			Email:       "john.doe@example.com",
			BasicSalary: decimal.NewFromInt(50000),
			HireDate:    "15-01-2024",
		}

		_, err := service.Create(ctx, req)
		assert.Equal(t, employeeerrors.ErrInvalidDateFormat, err)
	})

	t.Run("Termination Before Hire", func(t *testing.T) {
		req := employee.CreateEmployeeRequest{
			FirstName:       "John",
			LastName:        "Doe",
			Email:           "john.doe@example.com",
			BasicSalary:     decimal.NewFromInt(50000),
			HireDate:        "2024-01-15",
			TerminationDate: "2023-12-31",
		}

		_, err := service.Create(ctx, req)
		assert.Equal(t, employeeerrors.ErrTerminationBeforeHire, err)
	})
}

func TestService_GetOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("Cache Hit", func(t *testing.T) {
		mockRepo := employeeMock.NewMockRepository(ctrl)
		rdb, rmock := redismock.NewClientMock()
		service := employee.NewService(mockRepo, rdb, zap.NewNop())

		cached := []employee.EmployeeOption{{ID: 1, Name: "John Doe"}}
		payload, _ := json.Marshal(cached)
		rmock.ExpectGet(employee.EmployeeOptionsKey).SetVal(string(payload))

		opts, err := service.GetOptions(ctx)

		assert.NoError(t, err)
		assert.Equal(t, cached, opts)
		assert.NoError(t, rmock.ExpectationsWereMet())
	})

	t.Run("Cache Miss Falls Back To Repo", func(t *testing.T) {
		mockRepo := employeeMock.NewMockRepository(ctrl)
		rdb, rmock := redismock.NewClientMock()
		service := employee.NewService(mockRepo, rdb, zap.NewNop())

		rmock.ExpectGet(employee.EmployeeOptionsKey).RedisNil()
		mockRepo.EXPECT().
			FindOptions(ctx).
			Return([]employee.Employee{
				{ID: 1, FirstName: "John", LastName: "Doe"},
				{ID: 2, FirstName: "Jane", LastName: "Smith"},
			}, nil)

		expected := []employee.EmployeeOption{
			{ID: 1, Name: "John Doe"},
			{ID: 2, Name: "Jane Smith"},
		}
		payload, _ := json.Marshal(expected)
		rmock.ExpectSet(employee.EmployeeOptionsKey, payload, 1*time.Hour).SetVal("OK")

		opts, err := service.GetOptions(ctx)

		assert.NoError(t, err)
		assert.Equal(t, expected, opts)
		assert.NoError(t, rmock.ExpectationsWereMet())
	})
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := employeeMock.NewMockRepository(ctrl)
	rdb, rmock := redismock.NewClientMock()
	service := employee.NewService(mockRepo, rdb, zap.NewNop())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo.EXPECT().Delete(ctx, int64(1)).Return(int64(1), nil)
		rmock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

		err := service.Delete(ctx, 1)
		assert.NoError(t, err)
	})

	t.Run("Absent ID Is Not Found", func(t *testing.T) {
		mockRepo.EXPECT().Delete(ctx, int64(999999)).Return(int64(0), nil)

		err := service.Delete(ctx, 999999)
		assert.Equal(t, employeeerrors.ErrEmployeeNotFound, err)
	})
}
