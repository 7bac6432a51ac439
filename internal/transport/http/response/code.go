package response

import "net/http"

// 错误码直接使用 HTTP 状态码
const (
	CodeBadRequest     = http.StatusBadRequest
	CodeUnauthorized   = http.StatusUnauthorized
	CodeForbidden      = http.StatusForbidden
	CodeNotFound       = http.StatusNotFound
	CodeTooLarge       = http.StatusRequestEntityTooLarge
	CodeUnprocessable  = http.StatusUnprocessableEntity
	CodeTooManyRequest = http.StatusTooManyRequests
	CodeServerError    = http.StatusInternalServerError
	CodeUnavailable    = http.StatusServiceUnavailable
	CodeTimeout        = http.StatusGatewayTimeout
)

// CodeMsgMap 未提供自定义 msg 时的默认文案
var CodeMsgMap = map[int]string{
	CodeBadRequest:     "Bad Request",
	CodeUnauthorized:   "Unauthorized Access",
	CodeForbidden:      "Forbidden",
	CodeNotFound:       "Not Found",
	CodeTooLarge:       "request body too large",
	CodeUnprocessable:  "Unprocessable Entity",
	CodeTooManyRequest: "too many requests",
	CodeServerError:    "Internal Server Error",
	CodeUnavailable:    "server busy",
	CodeTimeout:        "timeout",
}
