package payslip

type GeneratePayslipsRequest struct {
	EmployeeIDs    []int64 `json:"employeeIds" binding:"required,min=1,dive,gt=0"`
	PayPeriodStart string  `json:"payPeriodStart" binding:"required"`
	PayPeriodEnd   string  `json:"payPeriodEnd" binding:"required"`
	PayslipStatus  string  `json:"payslipStatus" binding:"required,oneof=DRAFT PROCESSED PAID"`
	CompanyName    string  `json:"companyName" binding:"required,max=50"`
	CompanyAddress string  `json:"companyAddress" binding:"required,max=100"`
	CompanyLogo    string  `json:"companyLogo"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=DRAFT PROCESSED PAID"`
}

// GenerationError records one employee's failure without failing the batch.
type GenerationError struct {
	EmployeeID int64  `json:"employeeId"`
	Error      string `json:"error"`
}

type GeneratePayslipsResponse struct {
	Success []PayslipResponse `json:"success"`
	Errors  []GenerationError `json:"errors"`
}

type PayslipResponse struct {
	ID              int64                 `json:"id"`
	Number          string                `json:"number"`
	EmployeeID      int64                 `json:"employeeId"`
	EmployeeName    string                `json:"employeeName"`
	CompanyName     string                `json:"companyName"`
	CompanyAddress  string                `json:"companyAddress"`
	CompanyLogo     string                `json:"companyLogo,omitempty"`
	PayPeriodStart  string                `json:"payPeriodStart"`
	PayPeriodEnd    string                `json:"payPeriodEnd"`
	BasicSalary     string                `json:"basicSalary"`
	TotalAdditions  string                `json:"totalAdditions"`
	TotalDeductions string                `json:"totalDeductions"`
	NetSalary       string                `json:"netSalary"`
	PayslipStatus   string                `json:"payslipStatus"`
	Items           []PayslipItemResponse `json:"items,omitempty"`
	CreatedAt       string                `json:"createdAt"`
}

type PayslipItemResponse struct {
	ID          int64            `json:"id"`
	Direction   string           `json:"direction"`
	Name        string           `json:"name"`
	Amount      string           `json:"amount"`
	Description string           `json:"description,omitempty"`
	Metadata    *MetadataPayload `json:"metadata,omitempty"`
}

type MetadataPayload struct {
	Hours      float64 `json:"hours"`
	HourRate   float64 `json:"hourRate"`
	Multiplier float64 `json:"multiplier"`
}
