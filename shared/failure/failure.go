package failure

import (
	"errors"
	"net/http"
)

// Failure is an error that carries the HTTP status it should be reported with.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

func (e *Failure) Error() string {
	return e.Message
}

func newFailure(code int, message string) error {
	return &Failure{
		Code:    code,
		Message: message,
	}
}

// BadRequest wraps a validation error. A nil error stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return newFailure(http.StatusBadRequest, err.Error())
}

func BadRequestFromString(msg string) error {
	return newFailure(http.StatusBadRequest, msg)
}

func Unauthorized(msg string) error {
	return newFailure(http.StatusUnauthorized, msg)
}

func Forbidden(msg string) error {
	return newFailure(http.StatusForbidden, msg)
}

// NotFound reports a missing entity. The message is usually the entity name.
func NotFound(entityName string) error {
	return newFailure(http.StatusNotFound, entityName)
}

// Conflict reports an operation refused by the current state of a room, booking or sync run.
func Conflict(message string) error {
	return newFailure(http.StatusConflict, message)
}

// ConfirmationRequired reports an operation that may proceed once the caller confirms it,
// such as a checkout with an outstanding balance.
func ConfirmationRequired(message string) error {
	return newFailure(http.StatusPreconditionRequired, message)
}

// GetCode returns the status carried by err, or 500 for errors that are not failures.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetMessage returns the message of the failure wrapped in err, without the context added
// by callers on the way up. Errors that are not failures report their full text.
func GetMessage(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Message
	}

	return err.Error()
}
