package model

import "fmt"

type ErrorCode string

const (
	ErrInvalidArgument    ErrorCode = "INVALID_ARGUMENT"
	ErrStructural         ErrorCode = "STRUCTURAL"
	ErrNotSupported       ErrorCode = "NOT_SUPPORTED"
	ErrInvariantViolation ErrorCode = "INVARIANT_VIOLATION"
	ErrInvalidCID         ErrorCode = "INVALID_CID"
	ErrNotFound           ErrorCode = "NOT_FOUND"
	ErrInternal           ErrorCode = "INTERNAL"
)

// CodedError is a stable error with a machine-readable code and a human message.
type CodedError struct {
	Code    ErrorCode `json:"code"`
	RuleID  string    `json:"ruleId,omitempty"`
	Message string    `json:"message"`
}

func (e *CodedError) Error() string {
	if e == nil {
		return ""
	}
	if e.RuleID != "" {
		return fmt.Sprintf("%s (%s): %s", e.Code, e.RuleID, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewError(code ErrorCode, message string) *CodedError {
	return &CodedError{Code: code, Message: message}
}
