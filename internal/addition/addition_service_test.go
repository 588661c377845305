package addition_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go-payroll/internal/addition"
	additionerrors "go-payroll/internal/addition/errors"
	"go-payroll/internal/additiontype"
	"go-payroll/internal/domain"
	"go-payroll/internal/employee"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// =========================================
// Fakes
// =========================================

type fakeAdditionRepo struct {
	created    *addition.Addition
	countByKey map[string]int64
	byID       map[int64]*addition.Addition
}

func newFakeAdditionRepo() *fakeAdditionRepo {
	return &fakeAdditionRepo{
		countByKey: map[string]int64{},
		byID:       map[int64]*addition.Addition{},
	}
}

func countKey(employeeID, typeID int64) string {
	return fmt.Sprintf("%d:%d", employeeID, typeID)
}

func (f *fakeAdditionRepo) Create(_ context.Context, add *addition.Addition) error {
	add.ID = 1
	f.created = add
	return nil
}

func (f *fakeAdditionRepo) FindAll(_ context.Context, _ int64) ([]addition.Addition, error) {
	return nil, nil
}

func (f *fakeAdditionRepo) FindByID(_ context.Context, id int64) (*addition.Addition, error) {
	if a, ok := f.byID[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAdditionRepo) Update(_ context.Context, add *addition.Addition) error {
	f.byID[add.ID] = add
	return nil
}

func (f *fakeAdditionRepo) Delete(_ context.Context, id int64) (int64, error) {
	if _, ok := f.byID[id]; ok {
		delete(f.byID, id)
		return 1, nil
	}
	return 0, nil
}

func (f *fakeAdditionRepo) CountByEmployeeAndType(_ context.Context, employeeID, typeID, _ int64) (int64, error) {
	return f.countByKey[countKey(employeeID, typeID)], nil
}

func (f *fakeAdditionRepo) FindMonthlyByEmployee(_ context.Context, _ int64) ([]addition.EnrichedAddition, error) {
	return nil, nil
}

func (f *fakeAdditionRepo) FindSpecialByEmployee(_ context.Context, _ int64, _, _ time.Time) ([]addition.EnrichedAddition, error) {
	return nil, nil
}

type fakeTypeRepo struct {
	types map[int64]*additiontype.AdditionType
}

func (f *fakeTypeRepo) Create(_ context.Context, _ *additiontype.AdditionType) error { return nil }
func (f *fakeTypeRepo) FindAll(_ context.Context) ([]additiontype.AdditionType, error) {
	return nil, nil
}
func (f *fakeTypeRepo) FindByID(_ context.Context, id int64) (*additiontype.AdditionType, error) {
	if t, ok := f.types[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeTypeRepo) Update(_ context.Context, _ *additiontype.AdditionType) error { return nil }
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

func newTestService(repo *fakeAdditionRepo) (addition.Service, *fakeTypeRepo, *fakeEmployeeRepo) {
	hourRate := decimal.NewFromInt(40)
	typeRepo := &fakeTypeRepo{types: map[int64]*additiontype.AdditionType{
		10: {ID: 10, Name: "Transport Allowance", FrequencyType: domain.FrequencyMonthly},
		20: {ID: 20, Name: "Overtime", FrequencyType: domain.FrequencySpecial},
	}}
	emplRepo := &fakeEmployeeRepo{employees: map[int64]*employee.Employee{
		1: {ID: 1, FirstName: "John", LastName: "Doe", BasicSalary: decimal.NewFromInt(50000), HourRate: &hourRate},
		2: {ID: 2, FirstName: "Jane", LastName: "Smith", BasicSalary: decimal.NewFromInt(60000)},
	}}
	return addition.NewService(repo, typeRepo, emplRepo), typeRepo, emplRepo
}

func TestService_Create_DirectAmount(t *testing.T) {
	repo := newFakeAdditionRepo()
	service, _, _ := newTestService(repo)

	amount := decimal.NewFromInt(700)
	resp, err := service.Create(context.Background(), addition.CreateAdditionRequest{
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
	repo := newFakeAdditionRepo()
	service, _, _ := newTestService(repo)

	hours := 10.0
	rate := decimal.NewFromInt(50)
	multiplier := 2.0
	resp, err := service.Create(context.Background(), addition.CreateAdditionRequest{
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
	repo := newFakeAdditionRepo()
	service, _, _ := newTestService(repo)

	hours := 5.0
	resp, err := service.Create(context.Background(), addition.CreateAdditionRequest{
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
	repo := newFakeAdditionRepo()
	service, _, _ := newTestService(repo)

	hours := 5.0
	_, err := service.Create(context.Background(), addition.CreateAdditionRequest{
		EmployeeID: 2,
		TypeID:     20,
		Hours:      &hours,
	})

	assert.Equal(t, additionerrors.ErrHourRateUnavailable, err)
}

func TestService_Create_AmountAndHoursExclusive(t *testing.T) {
	repo := newFakeAdditionRepo()
	service, _, _ := newTestService(repo)

	amount := decimal.NewFromInt(700)
	hours := 10.0
	_, err := service.Create(context.Background(), addition.CreateAdditionRequest{
		EmployeeID: 1,
		TypeID:     10,
		Amount:     &amount,
		Hours:      &hours,
	})

	assert.Equal(t, additionerrors.ErrAmountAndHoursExclusive, err)
}

func TestService_Create_AmountOrHoursRequired(t *testing.T) {
	repo := newFakeAdditionRepo()
	service, _, _ := newTestService(repo)

	_, err := service.Create(context.Background(), addition.CreateAdditionRequest{
		EmployeeID: 1,
		TypeID:     10,
	})

	assert.Equal(t, additionerrors.ErrAmountOrHoursRequired, err)
}

func TestService_Create_DuplicateMonthlyType(t *testing.T) {
	repo := newFakeAdditionRepo()
	repo.countByKey[countKey(1, 10)] = 1
	service, _, _ := newTestService(repo)

	amount := decimal.NewFromInt(700)
	_, err := service.Create(context.Background(), addition.CreateAdditionRequest{
		EmployeeID: 1,
		TypeID:     10,
		Amount:     &amount,
	})

	assert.Equal(t, additionerrors.ErrDuplicateMonthlyAddition, err)
}

func TestService_Delete_AbsentIDIsNotFound(t *testing.T) {
	repo := newFakeAdditionRepo()
	service, _, _ := newTestService(repo)

	err := service.Delete(context.Background(), 999999)
	assert.Equal(t, additionerrors.ErrAdditionNotFound, err)
}
