package additionerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrAdditionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Addition not found",
		http.StatusNotFound,
	)
	ErrInvalidAdditionID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid addition ID",
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
	ErrDuplicateMonthlyAddition = apperror.New(
		apperror.CodeInvalidInput,
		"Employee already has an addition of this monthly type",
		http.StatusBadRequest,
	)
)
