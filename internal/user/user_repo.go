package user

import (
	"context"

	"go-payroll/internal/auth"

	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock

type Repository interface {
	FindAll(ctx context.Context) ([]auth.User, error)
	FindByID(ctx context.Context, id int64) (*auth.User, error)
	FindByEmail(ctx context.Context, email string) (*auth.User, error)
	Update(ctx context.Context, user *auth.User) error
	Delete(ctx context.Context, id int64) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]auth.User, error) {
	var users []auth.User
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*auth.User, error) {
	var user auth.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	return &user, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	var user auth.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *repository) Update(ctx context.Context, user *auth.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *repository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&auth.User{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
