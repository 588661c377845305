package domain

const (
	RoleAdmin = "ADMIN"
	RoleHR    = "HR"
)

const (
	FrequencyMonthly = "MONTHLY"
	FrequencySpecial = "SPECIAL"
)

const (
	DirectionAddition  = "ADDITION"
	DirectionDeduction = "DEDUCTION"
)

const (
	PayslipStatusDraft     = "DRAFT"
	PayslipStatusProcessed = "PROCESSED"
	PayslipStatusPaid      = "PAID"
)
