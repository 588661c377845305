package deductiontypeerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrDeductionTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Deduction type not found",
		http.StatusNotFound,
	)
	ErrInvalidDeductionTypeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid deduction type ID",
		http.StatusBadRequest,
	)
)
