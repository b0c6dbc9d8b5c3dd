package payrollerrors

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

	ErrNoAttendance = apperror.New(
		apperror.CodePreconditionFailed,
		"No attendance aggregates exist for this period; run the attendance calculation first",
		http.StatusPreconditionFailed,
	)
)
