package common

import (
	"fmt"
	"strings"
	"time"
)

// 支持的时间格式列表
var timeFormats = []string{
	time.RFC3339,              // "2006-01-02T15:04:05Z07:00"
	"2006-01-02T15:04:05",     // "2006-01-02T15:04:05"
	"2006-01-02 15:04:05",     // "2006-01-02 15:04:05"
	"2006-01-02T15:04",        // <input type="datetime-local">
	"2006-01-02 15:04",        // "2006-01-02 15:04"
	"2006-01-02T15:04:05.999", // "2006-01-02T15:04:05.999"
	"2006-01-02 15:04:05.999", // "2006-01-02 15:04:05.999"
	"2006-01-02",              // "2006-01-02"
	"2006/01/02",              // "2006/01/02"
	"2006/01/02 15:04:05",     // "2006/01/02 15:04:05"
	time.RFC3339Nano,          // "2006-01-02T15:04:05.999999999Z07:00"
}

// ParseTime 依次尝试支持的时间格式，全部失败时返回最后一个错误
func ParseTime(str string) (time.Time, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return time.Time{}, fmt.Errorf("时间字符串为空")
	}

	var parseErr error
	for _, format := range timeFormats {
		parsed, err := time.ParseInLocation(format, str, time.Local)
		if err == nil {
			return parsed, nil
		}
		parseErr = err
	}
	return time.Time{}, fmt.Errorf("无法解析时间格式: %s, 错误: %v", str, parseErr)
}

// ParseTimeOrNow 为空或解析失败时返回当前时间
func ParseTimeOrNow(str string) time.Time {
	t, err := ParseTime(str)
	if err != nil {
		return time.Now()
	}
	return t
}
