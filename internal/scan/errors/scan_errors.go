package scanerrors

import (
	"net/http"

	"github.com/natthaphattoichatturat/payroll-system/internal/shared/apperror"
)

var (
	ErrNoValidRecords = apperror.New(
		apperror.CodeInvalidInput,
		"No valid attendance records found in the provided text",
		http.StatusBadRequest,
	)

	ErrNoKnownEmployees = apperror.New(
		apperror.CodeInvalidInput,
		"None of the scanned employee ids exist in the directory",
		http.StatusBadRequest,
	)
)
