package service

import (
	"errors"
	"fmt"
)

// Error 业务错误，Code 直接基于 HTTP 语义（同 response 包）
type Error struct {
	Code int
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func Invalidf(format string, args ...any) error {
	return &Error{Code: 400, Msg: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...any) error {
	return &Error{Code: 404, Msg: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...any) error {
	return &Error{Code: 409, Msg: fmt.Sprintf(format, args...)}
}

// CodeOf 取业务错误码；其余错误按 500 处理
func CodeOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return 500
}
