package deductionerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrDeductionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Deduction not found",
		http.StatusNotFound,
	)
	ErrInvalidDeductionID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid deduction ID",
		http.StatusBadRequest,
	)
	ErrAmountOrHoursRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Either amount or hours must be provided",
		http.StatusBadRequest,
	)
	ErrAmountAndHoursExclusive = apperror.New(
		apperror.CodeInvalidInput,
		"Amount and hours cannot be combined",
		http.StatusBadRequest,
	)
	ErrHourRateUnavailable = apperror.New(
		apperror.CodeInvalidInput,
		"No hour rate provided and the employee has none on record",
		http.StatusBadRequest,
	)
	ErrDuplicateMonthlyDeduction = apperror.New(
		apperror.CodeInvalidInput,
		"Employee already has a deduction of this monthly type",
		http.StatusBadRequest,
	)
)
