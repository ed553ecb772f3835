package utils

import (
	"errors"
	"sync"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	translator   ut.Translator
	validateOnce sync.Once
)

// GetValidator 获取全局验证器实例
func GetValidator() (*validator.Validate, ut.Translator) {
	validateOnce.Do(func() {
		validate, translator = NewValidator()
	})
	return validate, translator
}

// Validate 验证结构体并返回中文错误信息
func Validate(data interface{}) (string, error) {
	v, trans := GetValidator()
	return ValidateStruct(v, trans, data)
}

// ValidationMessages 取出每个字段的中文错误描述
func ValidationMessages(err error) []string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		if err == nil {
			return nil
		}
		return []string{err.Error()}
	}
	_, trans := GetValidator()
	return TranslateAll(errs, trans)
}
