package controller

import (
	errorc "bloodbank/pkg/core/err"
	"bloodbank/pkg/core/logger"
	"bloodbank/pkg/core/metrics"
	"bloodbank/pkg/core/util"
	"bloodbank/pkg/core/view"
	"bloodbank/system/bloodbank/api/dto"
	internalapp "bloodbank/system/bloodbank/internal/app"

	"github.com/gofiber/fiber/v2"
)

const entityName = "BloodBank"

var bloodBankFields = []view.Field{
	{Label: "Owner_ID", Name: dto.OwnerID, Type: view.FieldText},
	{Label: "Privately Owned", Name: dto.PrivatelyOwned, Type: view.FieldSelect, Options: []string{"True", "False"}},
	{Label: "Established", Name: dto.Established, Type: view.FieldDate},
	{Label: "Name", Name: dto.Name, Type: view.FieldText},
	{Label: "Employee Count", Name: dto.EmployeeCount, Type: view.FieldNumber},
}

// BloodBankController 血库页面控制器
type BloodBankController struct {
	app     *internalapp.App
	views   *view.Renderer
	metrics *metrics.Metrics
	log     *logger.Log
}

// NewBloodBankController 创建血库页面控制器
func NewBloodBankController(app *internalapp.App, views *view.Renderer, m *metrics.Metrics) *BloodBankController {
	return &BloodBankController{
		app:     app,
		views:   views,
		metrics: m,
		log:     logger.GetLogger().WithEntryName("BloodBankController"),
	}
}

// RegisterRoutes 注册路由
func (c *BloodBankController) RegisterRoutes(web fiber.Router) {
	web.Get("/CreateBloodBank", c.CreateForm)
	web.Post("/CreateBloodBank", c.Create)
	web.Get("/BloodBankTable", c.Table)
}

func (c *BloodBankController) page(submitted, errMsg string) view.FormPage {
	return view.FormPage{
		Title:     "Create Blood Bank",
		Action:    "CreateBloodBank",
		TableLink: "BloodBankTable",
		Fields:    bloodBankFields,
		Error:     errMsg,
		Submitted: submitted,
	}
}

// CreateForm 空白表单
func (c *BloodBankController) CreateForm(ctx *fiber.Ctx) error {
	return c.views.Form(ctx, c.page(util.Params(ctx).String(), ""))
}

// Create 保存提交的血库；点击 view 时跳转到列表，否则回到表单
func (c *BloodBankController) Create(ctx *fiber.Ctx) error {
	params := util.Params(ctx)
	isNew := !params.Has(dto.ID)

	if _, err := c.app.Submit(util.Context(ctx), params); err != nil {
		if !errorc.IsValidation(err) {
			return err
		}
		c.log.WithTrace(util.Context(ctx)).WithField("Err", errorc.ParseError(err).Message()).Debug("血库表单校验失败")
		c.metrics.IncrementValidationFailed(entityName)
		return c.views.Form(ctx, c.page(params.String(), errorc.ParseError(err).Message()))
	}

	if isNew {
		c.metrics.IncrementCreated(entityName)
	} else {
		c.metrics.IncrementUpdated(entityName)
	}

	if params.Has("view") {
		return ctx.Redirect("/BloodBankTable", fiber.StatusSeeOther)
	}
	return c.views.Form(ctx, c.page(params.String(), ""))
}

// Table 血库列表，支持 search 关键字
func (c *BloodBankController) Table(ctx *fiber.Ctx) error {
	params := util.Params(ctx)
	banks, err := c.app.Query(util.Context(ctx), params)
	if err != nil {
		return err
	}

	return c.views.Table(ctx, view.TablePage{
		Title:      "Blood Banks",
		Action:     "BloodBankTable",
		CreateLink: "CreateBloodBank",
		Search:     params.Get("search"),
		Columns:    c.app.BloodBankService.GetColumnNames(),
		Rows:       c.app.Rows(banks),
	})
}
