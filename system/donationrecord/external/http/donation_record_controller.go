package controller

import (
	errorc "bloodbank/pkg/core/err"
	"bloodbank/pkg/core/logger"
	"bloodbank/pkg/core/metrics"
	"bloodbank/pkg/core/util"
	"bloodbank/pkg/core/view"
	"bloodbank/system/donationrecord/api/dto"
	internalapp "bloodbank/system/donationrecord/internal/app"

	"github.com/gofiber/fiber/v2"
)

const entityName = "DonationRecord"

var donationRecordFields = []view.Field{
	{Label: "Person_ID", Name: dto.PersonID, Type: view.FieldText},
	{Label: "Administrator", Name: dto.Administrator, Type: view.FieldText},
	{Label: "Hospital", Name: dto.Hospital, Type: view.FieldText},
	{Label: "Donation_ID", Name: dto.DonationID, Type: view.FieldText},
	{Label: "Tested", Name: dto.Tested, Type: view.FieldSelect, Options: []string{"True", "False"}},
	{Label: "Created", Name: dto.Created, Type: view.FieldDate},
}

// DonationRecordController 献血登记页面控制器
type DonationRecordController struct {
	app     *internalapp.App
	views   *view.Renderer
	metrics *metrics.Metrics
	log     *logger.Log
}

// NewDonationRecordController 创建献血登记页面控制器
func NewDonationRecordController(app *internalapp.App, views *view.Renderer, m *metrics.Metrics) *DonationRecordController {
	return &DonationRecordController{
		app:     app,
		views:   views,
		metrics: m,
		log:     logger.GetLogger().WithEntryName("DonationRecordController"),
	}
}

// RegisterRoutes 注册路由
func (c *DonationRecordController) RegisterRoutes(web fiber.Router) {
	web.Get("/CreateDonationRecord", c.CreateForm)
	web.Post("/CreateDonationRecord", c.Create)
	web.Get("/DonationRecordTable", c.Table)
}

func (c *DonationRecordController) page(submitted, errMsg string) view.FormPage {
	return view.FormPage{
		Title:     "Create Donation Record",
		Action:    "CreateDonationRecord",
		TableLink: "DonationRecordTable",
		Fields:    donationRecordFields,
		Error:     errMsg,
		Submitted: submitted,
	}
}

// CreateForm 空白表单
func (c *DonationRecordController) CreateForm(ctx *fiber.Ctx) error {
	return c.views.Form(ctx, c.page(util.Params(ctx).String(), ""))
}

// Create 保存提交的登记
//
// 献血人或献血不存在属于校验错误，与其它校验错误一样显示在表单下方；
// 保存成功且点击 view 时跳转到列表，否则回到表单。
func (c *DonationRecordController) Create(ctx *fiber.Ctx) error {
	params := util.Params(ctx)
	isNew := !params.Has(dto.ID)

	if _, err := c.app.Submit(util.Context(ctx), params); err != nil {
		if !errorc.IsValidation(err) {
			return err
		}
		c.log.WithTrace(util.Context(ctx)).WithField("Err", errorc.ParseError(err).Message()).Debug("献血登记表单校验失败")
		c.metrics.IncrementValidationFailed(entityName)
		return c.views.Form(ctx, c.page(params.String(), errorc.ParseError(err).Message()))
	}

	if isNew {
		c.metrics.IncrementCreated(entityName)
	} else {
		c.metrics.IncrementUpdated(entityName)
	}

	if params.Has("view") {
		return ctx.Redirect("/DonationRecordTable", fiber.StatusSeeOther)
	}
	return c.views.Form(ctx, c.page(params.String(), ""))
}

// Table 献血登记列表
func (c *DonationRecordController) Table(ctx *fiber.Ctx) error {
	params := util.Params(ctx)
	records, err := c.app.Query(util.Context(ctx), params)
	if err != nil {
		return err
	}

	return c.views.Table(ctx, view.TablePage{
		Title:      "Donation Records",
		Action:     "DonationRecordTable",
		CreateLink: "CreateDonationRecord",
		Columns:    c.app.DonationRecordService.GetColumnNames(),
		Rows:       c.app.Rows(records),
	})
}
