package deduction

import "github.com/shopspring/decimal"

type CreateDeductionRequest struct {
	EmployeeID  int64            `json:"employeeId" binding:"required"`
	TypeID      int64            `json:"typeId" binding:"required"`
	Amount      *decimal.Decimal `json:"amount"`
	Hours       *float64         `json:"hours"`
	HourRate    *decimal.Decimal `json:"hourRate"`
	Multiplier  *float64         `json:"multiplier"`
	Description string           `json:"description"`
}

type UpdateDeductionRequest struct {
	EmployeeID  int64            `json:"employeeId" binding:"required"`
	TypeID      int64            `json:"typeId" binding:"required"`
	Amount      *decimal.Decimal `json:"amount"`
	Hours       *float64         `json:"hours"`
	HourRate    *decimal.Decimal `json:"hourRate"`
	Multiplier  *float64         `json:"multiplier"`
	Description string           `json:"description"`
}

type DeductionResponse struct {
	ID          int64            `json:"id"`
	EmployeeID  int64            `json:"employeeId"`
	TypeID      int64            `json:"typeId"`
	Amount      string           `json:"amount"`
	Description string           `json:"description,omitempty"`
	Metadata    *MetadataPayload `json:"metadata,omitempty"`
	CreatedAt   string           `json:"createdAt"`
}

type MetadataPayload struct {
	Hours      float64 `json:"hours"`
	HourRate   float64 `json:"hourRate"`
	Multiplier float64 `json:"multiplier"`
}
