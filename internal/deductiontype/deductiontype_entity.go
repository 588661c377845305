package deductiontype

import "time"

type DeductionType struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Name          string `gorm:"type:varchar(100);not null"`
	Description   string `gorm:"type:text"`
	FrequencyType string `gorm:"type:varchar(10);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (DeductionType) TableName() string {
	return "deduction_types"
}
