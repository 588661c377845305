package additiontype

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=additiontype_repo.go -destination=mock/additiontype_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, at *AdditionType) error
	FindAll(ctx context.Context) ([]AdditionType, error)
	FindByID(ctx context.Context, id int64) (*AdditionType, error)
	Update(ctx context.Context, at *AdditionType) error
	Delete(ctx context.Context, id int64) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, at *AdditionType) error {
	return r.db.WithContext(ctx).Create(at).Error
}

func (r *repository) FindAll(ctx context.Context) ([]AdditionType, error) {
	var types []AdditionType
	err := r.db.WithContext(ctx).Order("name").Find(&types).Error
	return types, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*AdditionType, error) {
	var at AdditionType
	err := r.db.WithContext(ctx).First(&at, "id = ?", id).Error
	return &at, err
}

func (r *repository) Update(ctx context.Context, at *AdditionType) error {
	return r.db.WithContext(ctx).Save(at).Error
}

func (r *repository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&AdditionType{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
