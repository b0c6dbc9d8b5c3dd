package perioderrors

import (
	"net/http"

	"github.com/natthaphattoichatturat/payroll-system/internal/shared/apperror"
)

var (
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be on or before end_date",
		http.StatusBadRequest,
	)

	ErrPeriodNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll period not found",
		http.StatusNotFound,
	)

	ErrDuplicatePeriodName = apperror.New(
		apperror.CodeConflict,
		"A payroll period with this name already exists",
		http.StatusConflict,
	)
)
