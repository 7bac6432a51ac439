package ez

import (
	"context"
	"errors"
	"net/http"

	"go-gin-gorm-inventory/internal/domain"
)

// AErr 带 HTTP 状态码的错误
type AErr struct {
	Code int
	Msg  string
	Err  error
}

func (e *AErr) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "action error"
}

func (e *AErr) Unwrap() error { return e.Err }

func BadRequest(msg string) error   { return &AErr{Code: http.StatusBadRequest, Msg: msg} }
func Unauthorized(msg string) error { return &AErr{Code: http.StatusUnauthorized, Msg: msg} }
func Forbidden(msg string) error    { return &AErr{Code: http.StatusForbidden, Msg: msg} }
func NotFound(msg string) error     { return &AErr{Code: http.StatusNotFound, Msg: msg} }
func Internal(msg string, err error) error {
	return &AErr{Code: http.StatusInternalServerError, Msg: msg, Err: err}
}

// StatusOf 错误 → HTTP 状态码
//
// 校验失败 422，未授权 401，其余领域错误 400，AErr 取自身状态码，超时 504，其他 500。
func StatusOf(err error) int {
	var ae *AErr
	if errors.As(err, &ae) {
		return ae.Code
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	}
	var de *domain.Error
	if errors.As(err, &de) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
