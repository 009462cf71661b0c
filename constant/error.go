package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrForbidden
	ErrInvalidField
	ErrIncompatibleOperator
	ErrMalformedValue
	ErrUnsupportedEntity
	ErrTimeout
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:              "success",
	ErrInternal:             "error internal",
	ErrNotFound:             "data not found",
	ErrInvalidRequest:       "invalid request",
	ErrUnauthorize:          "unauthorize request",
	ErrForbidden:            "forbidden",
	ErrInvalidField:         "invalid filter field",
	ErrIncompatibleOperator: "operator not supported for field",
	ErrMalformedValue:       "malformed filter value",
	ErrUnsupportedEntity:    "unsupported search entity",
	ErrTimeout:              "request timed out",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:              http.StatusOK,
	ErrInternal:             http.StatusInternalServerError,
	ErrNotFound:             http.StatusNotFound,
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrUnauthorize:          http.StatusUnauthorized,
	ErrForbidden:            http.StatusForbidden,
	ErrInvalidField:         http.StatusBadRequest,
	ErrIncompatibleOperator: http.StatusBadRequest,
	ErrMalformedValue:       http.StatusBadRequest,
	ErrUnsupportedEntity:    http.StatusBadRequest,
	ErrTimeout:              http.StatusGatewayTimeout,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:              "0000",
	ErrInternal:             "0001",
	ErrNotFound:             "0002",
	ErrInvalidRequest:       "0003",
	ErrUnauthorize:          "0004",
	ErrForbidden:            "0005",
	ErrInvalidField:         "0101",
	ErrIncompatibleOperator: "0102",
	ErrMalformedValue:       "0103",
	ErrUnsupportedEntity:    "0104",
	ErrTimeout:              "0105",
}
