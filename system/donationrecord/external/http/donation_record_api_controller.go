package controller

import (
	"strconv"

	errorc "bloodbank/pkg/core/err"
	"bloodbank/pkg/core/metrics"
	"bloodbank/pkg/core/result"
	"bloodbank/pkg/core/util"
	"bloodbank/system/donationrecord/api/dto"
	internalapp "bloodbank/system/donationrecord/internal/app"

	"github.com/gofiber/fiber/v2"
)

// DonationRecordAPIController 献血登记 JSON 接口
type DonationRecordAPIController struct {
	app     *internalapp.App
	metrics *metrics.Metrics
	err     *errorc.ErrorBuilder
}

// NewDonationRecordAPIController 创建献血登记 JSON 接口控制器
func NewDonationRecordAPIController(app *internalapp.App, m *metrics.Metrics) *DonationRecordAPIController {
	return &DonationRecordAPIController{
		app:     app,
		metrics: m,
		err:     errorc.NewErrorBuilder("DonationRecordAPIController"),
	}
}

// RegisterRoutes 注册路由
func (c *DonationRecordAPIController) RegisterRoutes(api fiber.Router) {
	router := api.Group("/donation-records")
	router.Get("/", c.List)
	router.Post("/", c.Create)
	router.Get("/:id", c.Get)
	router.Put("/:id", c.Update)
	router.Delete("/:id", c.Delete)
}

func (c *DonationRecordAPIController) pathID(ctx *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return 0, c.err.BadRequest("ID参数错误").WithCause(err).WithTraceID(util.Context(ctx))
	}
	return id, nil
}

// List 查询登记列表，支持 personId/donationId/tested/administrator/hospital/created
func (c *DonationRecordAPIController) List(ctx *fiber.Ctx) error {
	records, err := c.app.Query(util.Context(ctx), util.Params(ctx))
	if err != nil {
		return err
	}

	list := make([]*dto.DonationRecordDTO, 0, len(records))
	for _, r := range records {
		list = append(list, internalapp.ToDTO(r))
	}
	return result.OK(ctx, fiber.Map{
		"total":   len(list),
		"content": list,
	})
}

// Get 获取登记详情
func (c *DonationRecordAPIController) Get(ctx *fiber.Ctx) error {
	id, err := c.pathID(ctx)
	if err != nil {
		return err
	}

	record, err := c.app.DonationRecordService.GetWithId(util.Context(ctx), id)
	if err != nil {
		return err
	}
	if record == nil {
		return c.err.NotFound("献血登记不存在")
	}
	return result.OK(ctx, internalapp.ToDTO(record))
}

// Create 新增登记，请求体为表单编码
func (c *DonationRecordAPIController) Create(ctx *fiber.Ctx) error {
	params := util.Params(ctx)
	delete(params, dto.ID)

	record, err := c.app.Submit(util.Context(ctx), params)
	if err != nil {
		if errorc.IsValidation(err) {
			c.metrics.IncrementValidationFailed(entityName)
		}
		return err
	}
	c.metrics.IncrementCreated(entityName)
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"status": fiber.StatusCreated, "data": internalapp.ToDTO(record)})
}

// Update 按路径中的 ID 更新登记
func (c *DonationRecordAPIController) Update(ctx *fiber.Ctx) error {
	id, err := c.pathID(ctx)
	if err != nil {
		return err
	}

	params := util.Params(ctx)
	params.Set(dto.ID, strconv.FormatInt(id, 10))

	record, err := c.app.Submit(util.Context(ctx), params)
	if err != nil {
		if errorc.IsValidation(err) {
			c.metrics.IncrementValidationFailed(entityName)
		}
		return err
	}
	c.metrics.IncrementUpdated(entityName)
	return result.OK(ctx, internalapp.ToDTO(record))
}

// Delete 删除登记
func (c *DonationRecordAPIController) Delete(ctx *fiber.Ctx) error {
	id, err := c.pathID(ctx)
	if err != nil {
		return err
	}

	return result.Once(ctx, nil, c.app.DonationRecordService.Delete(util.Context(ctx), id))
}
