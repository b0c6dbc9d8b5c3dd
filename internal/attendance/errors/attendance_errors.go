package attendanceerrors

import (
	"net/http"

	"github.com/natthaphattoichatturat/payroll-system/internal/shared/apperror"
)

var (
	ErrPeriodNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll period not found",
		http.StatusNotFound,
	)

	ErrNoEmployees = apperror.New(
		apperror.CodePreconditionFailed,
		"No employees available for calculation",
		http.StatusPreconditionFailed,
	)

	ErrAggregateNotFound = apperror.New(
		apperror.CodeNotFound,
		"Daily attendance not found for this employee and period",
		http.StatusNotFound,
	)
)
