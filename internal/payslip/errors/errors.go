package paysliperrors

import (
	"fmt"
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrPayslipNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payslip not found",
		http.StatusNotFound,
	)
	ErrInvalidPayslipID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid payslip ID",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"Pay period end must be after pay period start",
		http.StatusBadRequest,
	)
	ErrPayslipPeriodTaken = apperror.New(
		apperror.CodeConflict,
		"Employee already has a payslip overlapping the requested period",
		http.StatusBadRequest,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"Payslip status can only advance from DRAFT to PROCESSED to PAID",
		http.StatusBadRequest,
	)
)

// OverlappingPeriod rejects the whole batch before anything is written,
// naming the employees that already have a payslip in the window.
func OverlappingPeriod(employeeIDs []int64) *apperror.AppError {
	return apperror.New(
		apperror.CodeConflict,
		fmt.Sprintf("Employees %v already have payslips overlapping the requested period", employeeIDs),
		http.StatusBadRequest,
	)
}
