package checkin

import "fmt"

type DomainError struct {
	Code    string
	Message string
	// Status carries the observed row status on duplicate check-ins, for
	// client-side diagnostics.
	Status string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

const (
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeInvalidArgument  = "INVALID_ARGUMENT"
	ErrCodeAlreadyCheckedIn = "ALREADY_CHECKED_IN"
	ErrCodeInternal         = "INTERNAL"
)

func NewNotFoundError(msg string) error {
	return &DomainError{
		Code:    ErrCodeNotFound,
		Message: msg,
	}
}

func NewInvalidArgumentError(msg string) error {
	return &DomainError{
		Code:    ErrCodeInvalidArgument,
		Message: msg,
	}
}

func NewAlreadyCheckedInError(observed string) error {
	return &DomainError{
		Code:    ErrCodeAlreadyCheckedIn,
		Message: "您已完成報到，無需重複操作。",
		Status:  observed,
	}
}

func NewInternalError(msg string) error {
	return &DomainError{
		Code:    ErrCodeInternal,
		Message: msg,
	}
}
