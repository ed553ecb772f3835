package controller

import (
	errorc "bloodbank/pkg/core/err"
	"bloodbank/pkg/core/logger"
	"bloodbank/pkg/core/metrics"
	"bloodbank/pkg/core/util"
	"bloodbank/pkg/core/view"
	"bloodbank/system/person/api/dto"
	internalapp "bloodbank/system/person/internal/app"

	"github.com/gofiber/fiber/v2"
)

const entityName = "Person"

var personFields = []view.Field{
	{Label: "First Name", Name: dto.FirstName, Type: view.FieldText},
	{Label: "Last Name", Name: dto.LastName, Type: view.FieldText},
	{Label: "Phone", Name: dto.Phone, Type: view.FieldText},
	{Label: "Address", Name: dto.Address, Type: view.FieldText},
	{Label: "Birth", Name: dto.Birth, Type: view.FieldDate},
}

// PersonController 人员页面控制器
type PersonController struct {
	app     *internalapp.App
	views   *view.Renderer
	metrics *metrics.Metrics
	log     *logger.Log
}

// NewPersonController 创建人员页面控制器
func NewPersonController(app *internalapp.App, views *view.Renderer, m *metrics.Metrics) *PersonController {
	return &PersonController{
		app:     app,
		views:   views,
		metrics: m,
		log:     logger.GetLogger().WithEntryName("PersonController"),
	}
}

// RegisterRoutes 注册路由
func (c *PersonController) RegisterRoutes(web fiber.Router) {
	web.Get("/CreatePerson", c.CreateForm)
	web.Post("/CreatePerson", c.Create)
	web.Get("/PersonTable", c.Table)
}

func (c *PersonController) page(submitted string, errMsg string) view.FormPage {
	return view.FormPage{
		Title:     "Create Person",
		Action:    "CreatePerson",
		TableLink: "PersonTable",
		Fields:    personFields,
		Error:     errMsg,
		Submitted: submitted,
	}
}

// CreateForm 空白表单
func (c *PersonController) CreateForm(ctx *fiber.Ctx) error {
	return c.views.Form(ctx, c.page(util.Params(ctx).String(), ""))
}

// Create 保存提交的人员；点击 view 时跳转到列表，否则回到表单
func (c *PersonController) Create(ctx *fiber.Ctx) error {
	params := util.Params(ctx)
	isNew := !params.Has(dto.ID)

	if _, err := c.app.Submit(util.Context(ctx), params); err != nil {
		if !errorc.IsValidation(err) {
			return err
		}
		c.log.WithTrace(util.Context(ctx)).WithField("Err", errorc.ParseError(err).Message()).Debug("人员表单校验失败")
		c.metrics.IncrementValidationFailed(entityName)
		return c.views.Form(ctx, c.page(params.String(), errorc.ParseError(err).Message()))
	}

	if isNew {
		c.metrics.IncrementCreated(entityName)
	} else {
		c.metrics.IncrementUpdated(entityName)
	}

	if params.Has("view") {
		return ctx.Redirect("/PersonTable", fiber.StatusSeeOther)
	}
	return c.views.Form(ctx, c.page(params.String(), ""))
}

// Table 人员列表，支持 search 关键字
func (c *PersonController) Table(ctx *fiber.Ctx) error {
	params := util.Params(ctx)
	persons, err := c.app.Query(util.Context(ctx), params)
	if err != nil {
		return err
	}

	return c.views.Table(ctx, view.TablePage{
		Title:      "Persons",
		Action:     "PersonTable",
		CreateLink: "CreatePerson",
		Search:     params.Get("search"),
		Columns:    c.app.PersonService.GetColumnNames(),
		Rows:       c.app.Rows(persons),
	})
}
