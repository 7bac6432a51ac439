package domain

import "fmt"

// 错误码（由边界层统一映射为 HTTP 状态）
const (
	CodeNotFound           = "NOT_FOUND"
	CodeAlreadyExists      = "ALREADY_EXISTS"
	CodeInvalidState       = "INVALID_STATE"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeValidation         = "VALIDATION"
)

// Error 领域错误：Code 决定类别，Message 原样返回给调用方
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

// Is 按 Code 比较，errors.Is(err, domain.ErrNotFound) 可用
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

var (
	ErrNotFound           = &Error{Code: CodeNotFound, Message: "resource not found"}
	ErrAlreadyExists      = &Error{Code: CodeAlreadyExists, Message: "resource already exists"}
	ErrInvalidState       = &Error{Code: CodeInvalidState, Message: "operation not allowed in current state"}
	ErrInvalidCredentials = &Error{Code: CodeInvalidCredentials, Message: "invalid credentials"}
	ErrUnauthorized       = &Error{Code: CodeUnauthorized, Message: "Unauthorized Access"}
	ErrValidation         = &Error{Code: CodeValidation, Message: "validation failed"}
)

func NotFound(format string, args ...any) error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func AlreadyExists(format string, args ...any) error {
	return &Error{Code: CodeAlreadyExists, Message: fmt.Sprintf(format, args...)}
}

func InvalidState(format string, args ...any) error {
	return &Error{Code: CodeInvalidState, Message: fmt.Sprintf(format, args...)}
}

func InvalidCredentials(format string, args ...any) error {
	return &Error{Code: CodeInvalidCredentials, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...any) error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}
