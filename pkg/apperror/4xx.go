package apperror

import (
	"net/http"
)

const (
	BindingCode            = "400001"
	ValidationCode         = "400002"
	NoInquiryCriteriaCode  = "400003"
	InvalidCustomerIDCode  = "400004"
	InvalidEmailCode       = "400005"
	InvalidCursorCode      = "400006"
	EntityNotFoundCode     = "404007"
	EntityAlreadyExistCode = "409008"
)

// 400 Bad Request
func ErrInvalidRequest(err error) Error {
	return NewError(err, http.StatusBadRequest, BindingCode, "Invalid request")
}

func ErrInvalidParam(err error) Error {
	return NewError(err, http.StatusBadRequest, ValidationCode, "Invalid param")
}

func ErrNoInquiryCriteria(err error) Error {
	return NewError(err, http.StatusBadRequest, NoInquiryCriteriaCode, "No inquiry criteria")
}

func ErrInvalidCustomerID(err error) Error {
	return NewError(err, http.StatusBadRequest, InvalidCustomerIDCode, "Invalid Customer Id")
}

func ErrInvalidEmail(err error) Error {
	return NewError(err, http.StatusBadRequest, InvalidEmailCode, "Invalid Email")
}

func ErrInvalidCursor(err error) Error {
	return NewError(err, http.StatusBadRequest, InvalidCursorCode, "Invalid cursor")
}

// 404 Not Found
func ErrEntityNotFound(err error) Error {
	return NewError(err, http.StatusNotFound, EntityNotFoundCode, "Customer not found")
}

// 409 Conflict
func ErrEntityAlreadyExists(err error) Error {
	return NewError(err, http.StatusConflict, EntityAlreadyExistCode, "Customer already exists")
}
