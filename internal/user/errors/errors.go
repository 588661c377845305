package usererrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)
	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Role must be ADMIN or HR",
		http.StatusBadRequest,
	)
	ErrCannotDeleteSelf = apperror.New(
		apperror.CodeInvalidInput,
		"You cannot delete your own account",
		http.StatusBadRequest,
	)
)
