package errors

import "github.com/muhammadheryan/shop-console/constant"

// CustomError is the single error shape surfaced to callers. Message overrides
// the default text of the error type when the backend supplied one.
type CustomError struct {
	errType constant.ErrorType
	message string
	status  int
}

func (c CustomError) Error() string {
	if c.message != "" {
		return c.message
	}
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

// Status is the backend response status, zero when no response was received.
func (c CustomError) Status() int {
	return c.status
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

func NewCustomError(errorType constant.ErrorType, message string) CustomError {
	return CustomError{
		errType: errorType,
		message: message,
	}
}

func NewResponseError(errorType constant.ErrorType, status int, message string) CustomError {
	return CustomError{
		errType: errorType,
		message: message,
		status:  status,
	}
}
