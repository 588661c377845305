package payslip

import (
	"time"

	"go-payroll/internal/domain"
	"go-payroll/internal/employee"

	"github.com/shopspring/decimal"
)

// Payslip denormalizes the employee name and company letterhead so the
// record stays a faithful historical document even after the employee or
// company data changes.
type Payslip struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	Number          string          `gorm:"type:varchar(20);uniqueIndex;not null"`
	EmployeeID      int64           `gorm:"not null;uniqueIndex:uq_payslip_employee_period"`
	EmployeeName    string          `gorm:"type:varchar(101);not null"`
	CompanyName     string          `gorm:"type:varchar(50);not null"`
	CompanyAddress  string          `gorm:"type:varchar(100);not null"`
	CompanyLogo     string          `gorm:"type:text"`
	PayPeriodStart  time.Time       `gorm:"type:date;not null;uniqueIndex:uq_payslip_employee_period"`
	PayPeriodEnd    time.Time       `gorm:"type:date;not null;uniqueIndex:uq_payslip_employee_period"`
	BasicSalary     decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	TotalAdditions  decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	TotalDeductions decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	NetSalary       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Status          string          `gorm:"type:varchar(20);not null;default:'DRAFT'"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Employee *employee.Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE" json:"-"`
	Items    []PayslipItem      `gorm:"foreignKey:PayslipID"`
}

type PayslipItem struct {
	ID          int64                 `gorm:"primaryKey;autoIncrement"`
	PayslipID   int64                 `gorm:"not null;index"`
	Direction   string                `gorm:"type:varchar(10);not null"`
	Name        string                `gorm:"type:varchar(100);not null"`
	Description string                `gorm:"type:text"`
	Amount      decimal.Decimal       `gorm:"type:numeric(10,2);not null"`
	Metadata    *domain.HoursMetadata `gorm:"type:jsonb"`
	CreatedAt   time.Time

	Payslip *Payslip `gorm:"foreignKey:PayslipID;constraint:OnDelete:CASCADE" json:"-"`
}
