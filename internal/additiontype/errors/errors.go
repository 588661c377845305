package additiontypeerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrAdditionTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Addition type not found",
		http.StatusNotFound,
	)
	ErrInvalidAdditionTypeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid addition type ID",
		http.StatusBadRequest,
	)
)
