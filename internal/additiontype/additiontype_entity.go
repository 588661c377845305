package additiontype

import "time"

type AdditionType struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Name          string `gorm:"type:varchar(100);not null"`
	Description   string `gorm:"type:text"`
	FrequencyType string `gorm:"type:varchar(10);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (AdditionType) TableName() string {
	return "addition_types"
}
