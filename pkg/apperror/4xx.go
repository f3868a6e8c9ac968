package apperror

import (
	"net/http"
)

const (
	BindingCode         = "400001"
	InvalidFileTypeCode = "400003"
	EntityTooLargeCode  = "413004"
)

// 400 Bad Request
func ErrInvalidRequest(err error) Error {
	return NewError(err, http.StatusBadRequest, BindingCode, "Invalid request")
}

func ErrInvalidFileType(err error) Error {
	return NewError(err, http.StatusBadRequest, InvalidFileTypeCode, "Invalid file type. Please upload an image")
}

// 413 Request Entity Too Large
func ErrEntityTooLarge(err error) Error {
	return NewError(err, http.StatusRequestEntityTooLarge, EntityTooLargeCode, "File too large")
}
