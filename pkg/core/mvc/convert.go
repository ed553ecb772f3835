package mvc

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	errorc "bloodbank/pkg/core/err"
	"bloodbank/pkg/core/model/common"
	"bloodbank/utils"
)

// MaxStringLength 字符串字段的最大长度
const MaxStringLength = 45

// ValidateForm 校验表单结构体，所有不合法的字段合并到一个校验错误里
func ValidateForm(b *errorc.ErrorBuilder, form interface{}) error {
	if msg, err := utils.Validate(form); err != nil {
		return b.New(msg, err).Valid()
	}
	return nil
}

// ParseID 参数中存在 key 时解析为整数ID；不存在时返回 0
func ParseID(b *errorc.ErrorBuilder, params Params, key string) (int64, error) {
	value, ok := params.First(key)
	if !ok {
		return 0, nil
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, b.New(fmt.Sprintf("%s必须是整数: %s", key, value), err).Valid()
	}
	return id, nil
}

// ParseInt 严格解析整数，格式错误返回校验错误
func ParseInt(b *errorc.ErrorBuilder, field, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, b.New(fmt.Sprintf("%s必须是整数: %s", field, value), err).Valid()
	}
	return n, nil
}

// ParseOptionalID 解析可选的关联ID，空值返回 nil
func ParseOptionalID(b *errorc.ErrorBuilder, field, value string) (*int64, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return nil, b.New(fmt.Sprintf("%s必须是整数: %s", field, value), err).Valid()
	}
	return &id, nil
}

// ParseBool 宽松解析布尔值：忽略大小写等于 "true" 为真，其余一律为假
func ParseBool(value string) bool {
	return strings.EqualFold(strings.TrimSpace(value), "true")
}

// ParseDate 宽松解析日期：为空或无法解析时取当前时间
func ParseDate(value string) time.Time {
	return common.ParseTimeOrNow(value)
}
