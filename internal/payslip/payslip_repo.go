package payslip

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payslip_repo.go -destination=mock/payslip_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Payslip, items []PayslipItem) error
	FindOverlapping(ctx context.Context, employeeIDs []int64, start, end time.Time) ([]int64, error)
	FindAll(ctx context.Context) ([]Payslip, error)
	FindByID(ctx context.Context, id int64) (*Payslip, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, p *Payslip, items []PayslipItem) error {
	if r.tx != nil {
		return r.createTx(ctx, p, items)
	}
	p.Items = items
	return r.db.WithContext(ctx).Create(p).Error
}

// createTx writes the header and its items on the caller's transaction so
// they commit or roll back together with the outbox row.
func (r *repository) createTx(ctx context.Context, p *Payslip, items []PayslipItem) error {
	const insertHeader = `
		INSERT INTO payslips (
			number, employee_id, employee_name,
			company_name, company_address, company_logo,
			pay_period_start, pay_period_end,
			basic_salary, total_additions, total_deductions, net_salary,
			status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING id
	`

	err := r.tx.QueryRowContext(ctx, insertHeader,
		p.Number, p.EmployeeID, p.EmployeeName,
		p.CompanyName, p.CompanyAddress, p.CompanyLogo,
		p.PayPeriodStart, p.PayPeriodEnd,
		p.BasicSalary, p.TotalAdditions, p.TotalDeductions, p.NetSalary,
		p.Status,
	).Scan(&p.ID)
	if err != nil {
		return err
	}

	const insertItem = `
		INSERT INTO payslip_items (
			payslip_id, direction, name, description, amount, metadata, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`

	for i := range items {
		items[i].PayslipID = p.ID
		_, err := r.tx.ExecContext(ctx, insertItem,
			p.ID, items[i].Direction, items[i].Name,
			items[i].Description, items[i].Amount, items[i].Metadata,
		)
		if err != nil {
			return err
		}
	}

	p.Items = items
	return nil
}

func (r *repository) FindOverlapping(ctx context.Context, employeeIDs []int64, start, end time.Time) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&Payslip{}).
		Distinct("employee_id").
		Where("employee_id IN ?", employeeIDs).
		Where("(pay_period_start BETWEEN ? AND ?) OR (pay_period_end BETWEEN ? AND ?)",
			start, end, start, end).
		Order("employee_id").
		Pluck("employee_id", &ids).Error
	return ids, err
}

func (r *repository) FindAll(ctx context.Context) ([]Payslip, error) {
	var payslips []Payslip
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&payslips).Error
	return payslips, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Payslip, error) {
	var p Payslip
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id int64, status string) error {
	return r.db.WithContext(ctx).
		Model(&Payslip{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *repository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Payslip{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
