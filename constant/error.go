package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidPassword
	ErrUserNotFound
	ErrAdNotFound
	ErrCommentNotFound
	ErrForbidden
	ErrInvalidCurrentPassword
	ErrStorageIO
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                "success",
	ErrInternal:               "error internal",
	ErrNotFound:               "data not found",
	ErrInvalidRequest:         "invalid request",
	ErrUnauthorize:            "unauthorize request",
	ErrCredentialExists:       "email or username already exists",
	ErrInvalidPassword:        "password invalid",
	ErrUserNotFound:           "user not found",
	ErrAdNotFound:             "ad not found",
	ErrCommentNotFound:        "comment not found",
	ErrForbidden:              "permission denied",
	ErrInvalidCurrentPassword: "current password invalid",
	ErrStorageIO:              "image storage failure",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                http.StatusOK,
	ErrInternal:               http.StatusInternalServerError,
	ErrNotFound:               http.StatusNotFound,
	ErrInvalidRequest:         http.StatusBadRequest,
	ErrUnauthorize:            http.StatusUnauthorized,
	ErrCredentialExists:       http.StatusBadRequest,
	ErrInvalidPassword:        http.StatusUnauthorized,
	ErrUserNotFound:           http.StatusNotFound,
	ErrAdNotFound:             http.StatusNotFound,
	ErrCommentNotFound:        http.StatusNotFound,
	ErrForbidden:              http.StatusForbidden,
	ErrInvalidCurrentPassword: http.StatusForbidden,
	ErrStorageIO:              http.StatusInternalServerError,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                "0000",
	ErrInternal:               "0001",
	ErrNotFound:               "0002",
	ErrInvalidRequest:         "0003",
	ErrUnauthorize:            "0004",
	ErrCredentialExists:       "0005",
	ErrInvalidPassword:        "0006",
	ErrUserNotFound:           "0007",
	ErrAdNotFound:             "0008",
	ErrCommentNotFound:        "0009",
	ErrForbidden:              "0010",
	ErrInvalidCurrentPassword: "0011",
	ErrStorageIO:              "0012",
}
