package mvc

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/go-playground/form/v4"
)

var formDecoder = form.NewDecoder()

// Params 请求参数映射，同名字段重复提交时保留全部值
type Params map[string][]string

// Has 是否包含某个键（值可以为空）
func (p Params) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// First 返回某个键的第一个值，不存在时 ok 为 false
func (p Params) First(key string) (string, bool) {
	values, ok := p[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// Get 返回某个键的第一个值，不存在时返回空串
func (p Params) Get(key string) string {
	v, _ := p.First(key)
	return v
}

// Set 覆盖某个键的值
func (p Params) Set(key, value string) {
	p[key] = []string{value}
}

// Decode 按 form 标签把参数填入表单结构体，重复的键取第一个值
func (p Params) Decode(dst interface{}) error {
	first := make(url.Values, len(p))
	for k, values := range p {
		if len(values) > 0 {
			first[k] = values[:1]
		}
	}
	return formDecoder.Decode(dst, first)
}

// String 按键排序输出，用于页面回显提交内容
func (p Params) String() string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("Key=%s, Value/s=[%s]\n", k, strings.Join(p[k], ", ")))
	}
	return sb.String()
}
