package errorc

import (
	"fmt"
)

type Error struct {
	*ErrorCode
	Msg      string
	Cause    error
	Stack    string `json:"-"`
	TraceID  string
	Entry    string `json:"-"`
	FileName string `json:"-"`
	Line     int    `json:"-"`
	FuncName string `json:"-"`
}

// Unwrap 支持 errors.Is / errors.As 沿 Cause 继续查找
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

type ErrorCode struct {
	Code int
	Name string
}

func (c *ErrorCode) String() string {
	return fmt.Sprintf("%d: %s", c.Code, c.Name)
}

var (
	ErrorCodeUnknown  *ErrorCode = &ErrorCode{500, "Unknown"}
	ErrorCodeDB       *ErrorCode = &ErrorCode{501, "DB"}
	ErrorCodeValid    *ErrorCode = &ErrorCode{400, "Valid"}
	ErrorCodeNotFound *ErrorCode = &ErrorCode{404, "NotFound"}
)
