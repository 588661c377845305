package deduction

import (
	"time"

	"go-payroll/internal/deductiontype"
	"go-payroll/internal/domain"
	"go-payroll/internal/employee"

	"github.com/shopspring/decimal"
)

type Deduction struct {
	ID          int64                 `gorm:"primaryKey;autoIncrement"`
	EmployeeID  int64                 `gorm:"not null;index"`
	TypeID      int64                 `gorm:"not null;index"`
	Amount      decimal.Decimal       `gorm:"type:numeric(10,2);not null"`
	Description string                `gorm:"type:text"`
	Metadata    *domain.HoursMetadata `gorm:"type:jsonb"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Employee *employee.Employee         `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE" json:"-"`
	Type     *deductiontype.DeductionType `gorm:"foreignKey:TypeID;constraint:OnDelete:CASCADE" json:"-"`
}

// EnrichedDeduction is a deduction joined with its type, the shape the
// payslip engine consumes.
type EnrichedDeduction struct {
	ID          int64
	EmployeeID  int64
	TypeID      int64
	Name        string
	Description string
	Amount      decimal.Decimal
	Metadata    *domain.HoursMetadata
}
