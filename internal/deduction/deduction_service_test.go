package deduction_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go-payroll/internal/deduction"
	deductionerrors "go-payroll/internal/deduction/errors"
	"go-payroll/internal/deductiontype"
	"go-payroll/internal/domain"
	"go-payroll/internal/employee"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// =========================================
// Fakes
// =========================================

type fakeDeductionRepo struct {
	created    *deduction.Deduction
	countByKey map[string]int64
	byID       map[int64]*deduction.Deduction
}

func newFakeDeductionRepo() *fakeDeductionRepo {
	return &fakeDeductionRepo{
		countByKey: map[string]int64{},
		byID:       map[int64]*deduction.Deduction{},
	}
}

func countKey(employeeID, typeID int64) string {
	return fmt.Sprintf("%d:%d", employeeID, typeID)
}

func (f *fakeDeductionRepo) Create(_ context.Context, add *deduction.Deduction) error {
	add.ID = 1
	f.created = add
	return nil
}

func (f *fakeDeductionRepo) FindAll(_ context.Context, _ int64) ([]deduction.Deduction, error) {
	return nil, nil
}

func (f *fakeDeductionRepo) FindByID(_ context.Context, id int64) (*deduction.Deduction, error) {
	if a, ok := f.byID[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDeductionRepo) Update(_ context.Context, add *deduction.Deduction) error {
	f.byID[add.ID] = add
	return nil
}

func (f *fakeDeductionRepo) Delete(_ context.Context, id int64) (int64, error) {
	if _, ok := f.byID[id]; ok {
		delete(f.byID, id)
		return 1, nil
	}
	return 0, nil
}

func (f *fakeDeductionRepo) CountByEmployeeAndType(_ context.Context, employeeID, typeID, _ int64) (int64, error) {
	return f.countByKey[countKey(employeeID, typeID)], nil
}

func (f *fakeDeductionRepo) FindMonthlyByEmployee(_ context.Context, _ int64) ([]deduction.EnrichedDeduction, error) {
	return nil, nil
}

func (f *fakeDeductionRepo) FindSpecialByEmployee(_ context.Context, _ int64, _, _ time.Time) ([]deduction.EnrichedDeduction, error) {
	return nil, nil
}

type fakeTypeRepo struct {
	types map[int64]*deductiontype.DeductionType
}

func (f *fakeTypeRepo) Create(_ context.Context, _ *deductiontype.DeductionType) error { return nil }
func (f *fakeTypeRepo) FindAll(_ context.Context) ([]deductiontype.DeductionType, error) {
	return nil, nil
}
func (f *fakeTypeRepo) FindByID(_ context.Context, id int64) (*deductiontype.DeductionType, error) {
	if t, ok := f.types[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeTypeRepo) Update(_ context.Context, _ *deductiontype.DeductionType) error { return nil }
func (f *fakeTypeRepo) Delete(_ context.Context, _ int64) (int64, error)             { return 0, nil }

type fakeEmployeeRepo struct {
	employees map[int64]*employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, _ *employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) FindAll(_ context.Context) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) FindByID(_ context.Context, id int64) (*employee.Employee, error) {
	if e, ok := f.employees[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEmployeeRepo) FindOptions(_ context.Context) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) Update(_ context.Context, _ *employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) Delete(_ context.Context, _ int64) (int64, error)     { return 0, nil }

// =========================================
// Tests
// =========================================

func newTestService(repo *fakeDeductionRepo) (deduction.Service, *fakeTypeRepo, *fakeEmployeeRepo) {
	hourRate := decimal.NewFromInt(40)
	typeRepo := &fakeTypeRepo{types: map[int64]*deductiontype.DeductionType{
		10: {ID: 10, Name: "Health Insurance", FrequencyType: domain.FrequencyMonthly},
		20: {ID: 20, Name: "Late Penalty", FrequencyType: domain.FrequencySpecial},
	}}
	emplRepo := &fakeEmployeeRepo{employees: map[int64]*employee.Employee{
		1: {ID: 1, FirstName: "John", LastName: "Doe", BasicSalary: decimal.NewFromInt(50000), HourRate: &hourRate},
		2: {ID: 2, FirstName: "Jane", LastName: "Smith", BasicSalary: decimal.NewFromInt(60000)},
	}}
	return deduction.NewService(repo, typeRepo, emplRepo), typeRepo, emplRepo
}

func TestService_Create_DirectAmount(t *testing.T) {
	repo := newFakeDeductionRepo()
	service, _, _ := newTestService(repo)

	amount := decimal.NewFromInt(700)
	resp, err := service.Create(context.Background(), deduction.CreateDeductionRequest{
		EmployeeID: 1,
		TypeID:     10,
		Amount:     &amount,
	})

	assert.NoError(t, err)
	assert.Equal(t, "700", resp.Amount)
	assert.Nil(t, resp.Metadata)
	assert.Nil(t, repo.created.Metadata)
}

func TestService_Create_HoursDerivedAmount(t *testing.T) {
	repo := newFakeDeductionRepo()
	service, _, _ := newTestService(repo)

	hours := 10.0
	rate := decimal.NewFromInt(50)
	multiplier := 2.0
	resp, err := service.Create(context.Background(), deduction.CreateDeductionRequest{
		EmployeeID: 1,
		TypeID:     20,
		Hours:      &hours,
		HourRate:   &rate,
		Multiplier: &multiplier,
	})

	assert.NoError(t, err)
	assert.Equal(t, "1000", resp.Amount)
	assert.NotNil(t, resp.Metadata)
	assert.Equal(t, 10.0, resp.Metadata.Hours)
	assert.Equal(t, 50.0, resp.Metadata.HourRate)
	assert.Equal(t, 2.0, resp.Metadata.Multiplier)
}

func TestService_Create_HourRateFallsBackToEmployee(t *testing.T) {
	repo := newFakeDeductionRepo()
	service, _, _ := newTestService(repo)

	hours := 5.0
	resp, err := service.Create(context.Background(), deduction.CreateDeductionRequest{
		EmployeeID: 1,
		TypeID:     20,
		Hours:      &hours,
	})

	assert.NoError(t, err)
	// 5h at the employee's 40/h rate, multiplier defaults to 1
	assert.Equal(t, "200", resp.Amount)
	assert.Equal(t, 1.0, resp.Metadata.Multiplier)
}

func TestService_Create_NoHourRateAnywhere(t *testing.T) {
	repo := newFakeDeductionRepo()
	service, _, _ := newTestService(repo)

	hours := 5.0
	_, err := service.Create(context.Background(), deduction.CreateDeductionRequest{
		EmployeeID: 2,
		TypeID:     20,
		Hours:      &hours,
	})

	assert.Equal(t, deductionerrors.ErrHourRateUnavailable, err)
}

func TestService_Create_AmountAndHoursExclusive(t *testing.T) {
	repo := newFakeDeductionRepo()
	service, _, _ := newTestService(repo)

	amount := decimal.NewFromInt(700)
	hours := 10.0
	_, err := service.Create(context.Background(), deduction.CreateDeductionRequest{
		EmployeeID: 1,
		TypeID:     10,
		Amount:     &amount,
		Hours:      &hours,
	})

	assert.Equal(t, deductionerrors.ErrAmountAndHoursExclusive, err)
}

func TestService_Create_AmountOrHoursRequired(t *testing.T) {
	repo := newFakeDeductionRepo()
	service, _, _ := newTestService(repo)

	_, err := service.Create(context.Background(), deduction.CreateDeductionRequest{
		EmployeeID: 1,
		TypeID:     10,
	})

	assert.Equal(t, deductionerrors.ErrAmountOrHoursRequired, err)
}

func TestService_Create_DuplicateMonthlyType(t *testing.T) {
	repo := newFakeDeductionRepo()
	repo.countByKey[countKey(1, 10)] = 1
	service, _, _ := newTestService(repo)

	amount := decimal.NewFromInt(700)
	_, err := service.Create(context.Background(), deduction.CreateDeductionRequest{
		EmployeeID: 1,
		TypeID:     10,
		Amount:     &amount,
	})

	assert.Equal(t, deductionerrors.ErrDuplicateMonthlyDeduction, err)
}

func TestService_Delete_AbsentIDIsNotFound(t *testing.T) {
	repo := newFakeDeductionRepo()
	service, _, _ := newTestService(repo)

	err := service.Delete(context.Background(), 999999)
	assert.Equal(t, deductionerrors.ErrDeductionNotFound, err)
}
