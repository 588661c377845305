package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID              int64            `gorm:"primaryKey;autoIncrement"`
	FirstName       string           `gorm:"type:varchar(50);not null"`
	LastName        string           `gorm:"type:varchar(50);not null"`
	Email           string           `gorm:"type:varchar(100);uniqueIndex:uq_employee_email;not null"`
	Phone           string           `gorm:"type:varchar(15)"`
	Position        string           `gorm:"type:varchar(50)"`
	Department      string           `gorm:"type:varchar(50)"`
	Location        string           `gorm:"type:varchar(50)"`
	BasicSalary     decimal.Decimal  `gorm:"type:numeric(10,2);not null"`
	HourRate        *decimal.Decimal `gorm:"type:numeric(10,2)"`
	HireDate        *time.Time       `gorm:"type:date"`
	TerminationDate *time.Time       `gorm:"type:date"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
