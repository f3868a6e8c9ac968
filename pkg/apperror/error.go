package apperror

import "fmt"

type Error struct {
	Raw       error
	HTTPCode  int
	ErrorCode string
	Message   string
}

func NewError(err error, httpCode int, errorCode string, message string) Error {
	return Error{
		Raw:       err,
		HTTPCode:  httpCode,
		ErrorCode: errorCode,
		Message:   message,
	}
}

func (e Error) Error() string {
	if e.Raw == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %v", e.Message, e.Raw)
}

func (e Error) Unwrap() error {
	return e.Raw
}

// Detail is the client facing message, prefixed with context.
func (e Error) Detail() string {
	return e.Error()
}
