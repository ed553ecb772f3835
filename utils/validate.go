package utils

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
)

// 常见中文错误信息映射，{0} 为字段名，{1} 为规则参数
var customErrorMessages = map[string]string{
	"required": "{0}不能为空",
	"notblank": "{0}不能为空",
	"max":      "{0}长度不能超过{1}个字符",
	"min":      "{0}长度必须至少为{1}个字符",
	"oneof":    "{0}必须是[{1}]中的一个",
	"numeric":  "{0}必须是有效的数值",
	"gte":      "{0}必须大于或等于{1}",
	"lte":      "{0}必须小于或等于{1}",
}

// NewValidator 创建一个支持中文错误信息的验证器
func NewValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()

	// 字段名依次取 comment、form、json 标签
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"comment", "form", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return fld.Name
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	// 去掉首尾空白后为空也视为空值
	_ = validate.RegisterValidation("notblank", validators.NotBlank)

	zhTrans := zh.New()
	uni := ut.New(zhTrans, zhTrans)
	trans, _ := uni.GetTranslator("zh")

	_ = zh_translations.RegisterDefaultTranslations(validate, trans)

	for tag, msg := range customErrorMessages {
		registerCustomTranslation(validate, trans, tag, msg)
	}

	return validate, trans
}

// 注册自定义翻译
func registerCustomTranslation(validate *validator.Validate, trans ut.Translator, tag string, message string) {
	_ = validate.RegisterTranslation(tag, trans, func(ut ut.Translator) error {
		return ut.Add(tag, message, true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, err := ut.T(fe.Tag(), fe.Field(), fe.Param())
		if err != nil {
			return fe.Field() + ": " + fe.Tag()
		}
		return t
	})
}

// ValidateStruct 验证结构体，返回全部字段的中文错误信息
func ValidateStruct(validate *validator.Validate, trans ut.Translator, s interface{}) (string, error) {
	err := validate.Struct(s)
	if err == nil {
		return "", nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error(), err
	}
	return strings.Join(TranslateAll(errs, trans), "; "), err
}

// TranslateAll 逐条翻译校验错误，顺序与结构体字段顺序一致
func TranslateAll(errs validator.ValidationErrors, trans ut.Translator) []string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Translate(trans))
	}
	return msgs
}
