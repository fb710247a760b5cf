package paysliperrors

import (
	"net/http"

	"hr-payroll/internal/shared/apperror"
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
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrMissingFile = apperror.New(
		apperror.CodeInvalidInput,
		"payslip file is required",
		http.StatusBadRequest,
	)
)
