package controller

import (
	errorc "bloodbank/pkg/core/err"
	"bloodbank/pkg/core/logger"
	"bloodbank/pkg/core/metrics"
	"bloodbank/pkg/core/util"
	"bloodbank/pkg/core/view"
	"bloodbank/system/blooddonation/api/dto"
	internalapp "bloodbank/system/blooddonation/internal/app"
	"bloodbank/system/blooddonation/internal/model"

	"github.com/gofiber/fiber/v2"
)

const entityName = "BloodDonation"

var bloodDonationFields = []view.Field{
	{Label: "Bank_ID", Name: dto.BankID, Type: view.FieldText},
	{Label: "Milliliters", Name: dto.Milliliters, Type: view.FieldNumber},
	{Label: "Blood Group", Name: dto.BloodGroup, Type: view.FieldSelect, Options: []string{
		string(model.BloodGroupA), string(model.BloodGroupB), string(model.BloodGroupAB), string(model.BloodGroupO),
	}},
	{Label: "RHD", Name: dto.RhesusFactor, Type: view.FieldSelect, Options: []string{
		string(model.RhesusPositive), string(model.RhesusNegative),
	}},
	{Label: "Created", Name: dto.Created, Type: view.FieldDate},
}

// BloodDonationController 献血页面控制器
type BloodDonationController struct {
	app     *internalapp.App
	views   *view.Renderer
	metrics *metrics.Metrics
	log     *logger.Log
}

// NewBloodDonationController 创建献血页面控制器
func NewBloodDonationController(app *internalapp.App, views *view.Renderer, m *metrics.Metrics) *BloodDonationController {
	return &BloodDonationController{
		app:     app,
		views:   views,
		metrics: m,
		log:     logger.GetLogger().WithEntryName("BloodDonationController"),
	}
}

// RegisterRoutes 注册路由
func (c *BloodDonationController) RegisterRoutes(web fiber.Router) {
	web.Get("/CreateBloodDonation", c.CreateForm)
	web.Post("/CreateBloodDonation", c.Create)
	web.Get("/BloodDonationTable", c.Table)
}

func (c *BloodDonationController) page(submitted, errMsg string) view.FormPage {
	return view.FormPage{
		Title:     "Create Blood Donation",
		Action:    "CreateBloodDonation",
		TableLink: "BloodDonationTable",
		Fields:    bloodDonationFields,
		Error:     errMsg,
		Submitted: submitted,
	}
}

// CreateForm 空白表单
func (c *BloodDonationController) CreateForm(ctx *fiber.Ctx) error {
	return c.views.Form(ctx, c.page(util.Params(ctx).String(), ""))
}

// Create 保存提交的献血；点击 view 时跳转到列表，否则回到表单
func (c *BloodDonationController) Create(ctx *fiber.Ctx) error {
	params := util.Params(ctx)
	isNew := !params.Has(dto.ID)

	if _, err := c.app.Submit(util.Context(ctx), params); err != nil {
		if !errorc.IsValidation(err) {
			return err
		}
		c.log.WithTrace(util.Context(ctx)).WithField("Err", errorc.ParseError(err).Message()).Debug("献血表单校验失败")
		c.metrics.IncrementValidationFailed(entityName)
		return c.views.Form(ctx, c.page(params.String(), errorc.ParseError(err).Message()))
	}

	if isNew {
		c.metrics.IncrementCreated(entityName)
	} else {
		c.metrics.IncrementUpdated(entityName)
	}

	if params.Has("view") {
		return ctx.Redirect("/BloodDonationTable", fiber.StatusSeeOther)
	}
	return c.views.Form(ctx, c.page(params.String(), ""))
}

// Table 献血列表
func (c *BloodDonationController) Table(ctx *fiber.Ctx) error {
	params := util.Params(ctx)
	donations, err := c.app.Query(util.Context(ctx), params)
	if err != nil {
		return err
	}

	return c.views.Table(ctx, view.TablePage{
		Title:      "Blood Donations",
		Action:     "BloodDonationTable",
		CreateLink: "CreateBloodDonation",
		Columns:    c.app.BloodDonationService.GetColumnNames(),
		Rows:       c.app.Rows(donations),
	})
}
