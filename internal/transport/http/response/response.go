package response

// Resp 错误响应体；成功响应直接回传 DTO
type Resp struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// Error 失败响应（可以传自定义 msg 覆盖默认）
func Error(code int, customMsg string) Resp {
	msg := CodeMsgMap[code]
	if customMsg != "" {
		msg = customMsg
	}
	return Resp{Code: code, Msg: msg}
}
