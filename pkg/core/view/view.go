package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/gofiber/fiber/v2"
)

//go:embed templates/*.html
var templateFS embed.FS

// 表单控件类型
const (
	FieldText   = "text"
	FieldNumber = "number"
	FieldDate   = "date"
	FieldSelect = "select"
)

// Field 表单中的一个输入项，Name 与参数键一致
type Field struct {
	Label   string
	Name    string
	Type    string
	Options []string
}

// FormPage 新增页面
type FormPage struct {
	Title     string
	Action    string
	TableLink string
	Fields    []Field
	// Error 本次请求的校验错误，为空时不展示
	Error string
	// Submitted 提交内容的回显
	Submitted string
}

// TablePage 列表页面
type TablePage struct {
	Title      string
	Action     string
	CreateLink string
	Search     string
	Columns    []string
	Rows       [][]interface{}
}

type Renderer struct {
	tmpl *template.Template
}

func New() (*Renderer, error) {
	tmpl, err := template.New("pages").
		Funcs(template.FuncMap{"cell": cell}).
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// MustNew 模板随二进制嵌入，解析失败只可能是模板本身有误
func MustNew() *Renderer {
	r, err := New()
	if err != nil {
		panic(fmt.Sprintf("解析页面模板失败: %v", err))
	}
	return r
}

func (r *Renderer) Form(c *fiber.Ctx, page FormPage) error {
	return r.render(c, "form", page)
}

func (r *Renderer) Table(c *fiber.Ctx, page TablePage) error {
	return r.render(c, "table", page)
}

func (r *Renderer) render(c *fiber.Ctx, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

func cell(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case time.Time:
		return t.Format("2006-01-02 15:04:05")
	case *time.Time:
		if t == nil {
			return ""
		}
		return t.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprint(v)
	}
}
