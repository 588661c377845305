package additiontype_test

import (
	"context"
	"testing"

	"go-payroll/internal/additiontype"
	additiontypeerrors "go-payroll/internal/additiontype/errors"
	"go-payroll/internal/domain"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeTypeRepo struct {
	nextID int64
	byID   map[int64]*additiontype.AdditionType
}

func newFakeTypeRepo() *fakeTypeRepo {
	return &fakeTypeRepo{byID: map[int64]*additiontype.AdditionType{}}
}

func (f *fakeTypeRepo) Create(_ context.Context, at *additiontype.AdditionType) error {
	f.nextID++
	at.ID = f.nextID
	f.byID[at.ID] = at
	return nil
}

func (f *fakeTypeRepo) FindAll(_ context.Context) ([]additiontype.AdditionType, error) {
	types := make([]additiontype.AdditionType, 0, len(f.byID))
	for _, at := range f.byID {
		types = append(types, *at)
	}
	return types, nil
}

func (f *fakeTypeRepo) FindByID(_ context.Context, id int64) (*additiontype.AdditionType, error) {
	if at, ok := f.byID[id]; ok {
		return at, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTypeRepo) Update(_ context.Context, at *additiontype.AdditionType) error {
	f.byID[at.ID] = at
	return nil
}

func (f *fakeTypeRepo) Delete(_ context.Context, id int64) (int64, error) {
	if _, ok := f.byID[id]; ok {
		delete(f.byID, id)
		return 1, nil
	}
	return 0, nil
}

func TestAdditionTypeService_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTypeRepo()
	svc := additiontype.NewService(repo)

	created, err := svc.Create(ctx, additiontype.CreateAdditionTypeRequest{
		Name:          "Transport Allowance",
		FrequencyType: domain.FrequencyMonthly,
	})
	assert.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, domain.FrequencyMonthly, created.FrequencyType)

	got, err := svc.GetByID(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Transport Allowance", got.Name)
}

func TestAdditionTypeService_GetByID_NotFound(t *testing.T) {
	svc := additiontype.NewService(newFakeTypeRepo())

	_, err := svc.GetByID(context.Background(), 999999)
	assert.ErrorIs(t, err, additiontypeerrors.ErrAdditionTypeNotFound)
}

func TestAdditionTypeService_Update(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTypeRepo()
	svc := additiontype.NewService(repo)

	created, err := svc.Create(ctx, additiontype.CreateAdditionTypeRequest{
		Name:          "Overtime",
		FrequencyType: domain.FrequencySpecial,
	})
	assert.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, additiontype.UpdateAdditionTypeRequest{
		Name:          "Weekend Overtime",
		Description:   "1.5x rate on weekends",
		FrequencyType: domain.FrequencySpecial,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Weekend Overtime", updated.Name)
	assert.Equal(t, "1.5x rate on weekends", updated.Description)
}

func TestAdditionTypeService_Delete_AbsentIsNotFound(t *testing.T) {
	svc := additiontype.NewService(newFakeTypeRepo())

	err := svc.Delete(context.Background(), 999999)
	assert.ErrorIs(t, err, additiontypeerrors.ErrAdditionTypeNotFound)
}
