package deduction

import (
	"context"
	"time"

	"go-payroll/internal/domain"

	"gorm.io/gorm"
)

//go:generate mockgen -source=deduction_repo.go -destination=mock/deduction_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, add *Deduction) error
	FindAll(ctx context.Context, employeeID int64) ([]Deduction, error)
	FindByID(ctx context.Context, id int64) (*Deduction, error)
	Update(ctx context.Context, add *Deduction) error
	Delete(ctx context.Context, id int64) (int64, error)

	// CountByEmployeeAndType backs the monthly at-most-one rule.
	CountByEmployeeAndType(ctx context.Context, employeeID, typeID int64, excludeID int64) (int64, error)

	FindMonthlyByEmployee(ctx context.Context, employeeID int64) ([]EnrichedDeduction, error)
	FindSpecialByEmployee(ctx context.Context, employeeID int64, start, end time.Time) ([]EnrichedDeduction, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, add *Deduction) error {
	return r.db.WithContext(ctx).Create(add).Error
}

func (r *repository) FindAll(ctx context.Context, employeeID int64) ([]Deduction, error) {
	var adds []Deduction
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if employeeID > 0 {
		q = q.Where("employee_id = ?", employeeID)
	}
	err := q.Find(&adds).Error
	return adds, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Deduction, error) {
	var add Deduction
	err := r.db.WithContext(ctx).First(&add, "id = ?", id).Error
	return &add, err
}

func (r *repository) Update(ctx context.Context, add *Deduction) error {
	return r.db.WithContext(ctx).Save(add).Error
}

func (r *repository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Deduction{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *repository) CountByEmployeeAndType(ctx context.Context, employeeID, typeID int64, excludeID int64) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&Deduction{}).
		Where("employee_id = ?", employeeID).
		Where("type_id = ?", typeID)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count, err
}

func (r *repository) FindMonthlyByEmployee(ctx context.Context, employeeID int64) ([]EnrichedDeduction, error) {
	return r.findEnriched(ctx, employeeID, domain.FrequencyMonthly, nil, nil)
}

func (r *repository) FindSpecialByEmployee(ctx context.Context, employeeID int64, start, end time.Time) ([]EnrichedDeduction, error) {
	return r.findEnriched(ctx, employeeID, domain.FrequencySpecial, &start, &end)
}

func (r *repository) findEnriched(ctx context.Context, employeeID int64, frequency string, start, end *time.Time) ([]EnrichedDeduction, error) {
	var rows []EnrichedDeduction
	q := r.db.WithContext(ctx).
		Table("deductions AS d").
		Select("d.id, d.employee_id, d.type_id, t.name, t.description, d.amount, d.metadata").
		Joins("JOIN deduction_types t ON t.id = d.type_id").
		Where("d.employee_id = ?", employeeID).
		Where("t.frequency_type = ?", frequency)
	if start != nil && end != nil {
		q = q.Where("d.created_at BETWEEN ? AND ?", *start, *end)
	}
	err := q.Scan(&rows).Error
	return rows, err
}
