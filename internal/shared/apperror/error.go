package apperror

import "fmt"

// AppError is the error type carried across the service/handler boundary.
// Sentinels in each feature's errors package are built from it, so
// errors.Is comparisons work by pointer identity.
type AppError struct {
	Code       string // machine-readable code (e.g. PERIOD_NOT_FOUND)
	Message    string // client-facing message
	HTTPStatus int    // status the handler layer responds with
	Err        error  // wrapped cause, nil for sentinels
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the cause to errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New builds a sentinel AppError with no cause attached.
func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap attaches a cause to a new AppError. A nil cause yields nil so
// callers can wrap unconditionally.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}
