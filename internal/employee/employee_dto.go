package employee

import "github.com/shopspring/decimal"

type CreateEmployeeRequest struct {
	FirstName       string           `json:"firstName" binding:"required,max=50"`
	LastName        string           `json:"lastName" binding:"required,max=50"`
	Email           string           `json:"email" binding:"required,email,max=100"`
	Phone           string           `json:"phone" binding:"max=15"`
	Position        string           `json:"position" binding:"max=50"`
	Department      string           `json:"department" binding:"max=50"`
	Location        string           `json:"location" binding:"max=50"`
	BasicSalary     decimal.Decimal  `json:"basicSalary" binding:"required"`
	HourRate        *decimal.Decimal `json:"hourRate"`
	HireDate        string           `json:"hireDate"`
	TerminationDate string           `json:"terminationDate"`
}

type UpdateEmployeeRequest struct {
	FirstName       string           `json:"firstName" binding:"required,max=50"`
	LastName        string           `json:"lastName" binding:"required,max=50"`
	Email           string           `json:"email" binding:"required,email,max=100"`
	Phone           string           `json:"phone" binding:"max=15"`
	Position        string           `json:"position" binding:"max=50"`
	Department      string           `json:"department" binding:"max=50"`
	Location        string           `json:"location" binding:"max=50"`
	BasicSalary     decimal.Decimal  `json:"basicSalary" binding:"required"`
	HourRate        *decimal.Decimal `json:"hourRate"`
	HireDate        string           `json:"hireDate"`
	TerminationDate string           `json:"terminationDate"`
}

type EmployeeResponse struct {
	ID              int64   `json:"id"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone,omitempty"`
	Position        string  `json:"position,omitempty"`
	Department      string  `json:"department,omitempty"`
	Location        string  `json:"location,omitempty"`
	BasicSalary     string  `json:"basicSalary"`
	HourRate        *string `json:"hourRate,omitempty"`
	HireDate        string  `json:"hireDate,omitempty"`
	TerminationDate string  `json:"terminationDate,omitempty"`
}

// EmployeeOption is the slim shape served to form dropdowns.
type EmployeeOption struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
