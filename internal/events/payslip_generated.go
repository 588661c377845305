package events

import "time"

const PayslipGeneratedTopic = "payroll.payslip.generated.v1"

type PayslipGeneratedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	PayslipID     int64     `json:"payslip_id"`
	PayslipNumber string    `json:"payslip_number"`
	EmployeeID    int64     `json:"employee_id"`
	EmployeeName  string    `json:"employee_name"`
	NetSalary     string    `json:"net_salary"`
	OccurredAt    time.Time `json:"occurred_at"`
}
