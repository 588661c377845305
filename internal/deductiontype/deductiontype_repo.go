package deductiontype

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=deductiontype_repo.go -destination=mock/deductiontype_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, at *DeductionType) error
	FindAll(ctx context.Context) ([]DeductionType, error)
	FindByID(ctx context.Context, id int64) (*DeductionType, error)
	Update(ctx context.Context, at *DeductionType) error
	Delete(ctx context.Context, id int64) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, at *DeductionType) error {
	return r.db.WithContext(ctx).Create(at).Error
}

func (r *repository) FindAll(ctx context.Context) ([]DeductionType, error) {
	var types []DeductionType
	err := r.db.WithContext(ctx).Order("name").Find(&types).Error
	return types, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*DeductionType, error) {
	var at DeductionType
	err := r.db.WithContext(ctx).First(&at, "id = ?", id).Error
	return &at, err
}

func (r *repository) Update(ctx context.Context, at *DeductionType) error {
	return r.db.WithContext(ctx).Save(at).Error
}

func (r *repository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&DeductionType{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
