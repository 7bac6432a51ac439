package response

import "net/http"

// Resp 失败响应体，成功时直接返回数据本身
type Resp struct {
	Message string `json:"message"`
}

// Error customMsg 为空时用默认文案
func Error(code int, customMsg string) Resp {
	if customMsg != "" {
		return Resp{Message: customMsg}
	}
	if msg, ok := CodeMsgMap[code]; ok {
		return Resp{Message: msg}
	}
	return Resp{Message: http.StatusText(code)}
}
