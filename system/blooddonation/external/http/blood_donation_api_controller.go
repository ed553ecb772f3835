package controller

import (
	"strconv"

	errorc "bloodbank/pkg/core/err"
	"bloodbank/pkg/core/metrics"
	"bloodbank/pkg/core/result"
	"bloodbank/pkg/core/util"
	"bloodbank/system/blooddonation/api/dto"
	internalapp "bloodbank/system/blooddonation/internal/app"

	"github.com/gofiber/fiber/v2"
)

// BloodDonationAPIController 献血 JSON 接口
type BloodDonationAPIController struct {
	app     *internalapp.App
	metrics *metrics.Metrics
	err     *errorc.ErrorBuilder
}

// NewBloodDonationAPIController 创建献血 JSON 接口控制器
func NewBloodDonationAPIController(app *internalapp.App, m *metrics.Metrics) *BloodDonationAPIController {
	return &BloodDonationAPIController{
		app:     app,
		metrics: m,
		err:     errorc.NewErrorBuilder("BloodDonationAPIController"),
	}
}

// RegisterRoutes 注册路由
func (c *BloodDonationAPIController) RegisterRoutes(api fiber.Router) {
	router := api.Group("/blood-donations")
	router.Get("/", c.List)
	router.Post("/", c.Create)
	router.Get("/:id", c.Get)
	router.Put("/:id", c.Update)
	router.Delete("/:id", c.Delete)
}

func (c *BloodDonationAPIController) pathID(ctx *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return 0, c.err.BadRequest("ID参数错误").WithCause(err).WithTraceID(util.Context(ctx))
	}
	return id, nil
}

// List 查询献血列表，支持 bankId/milliliters/bloodGroup/rhesusFactor/created
func (c *BloodDonationAPIController) List(ctx *fiber.Ctx) error {
	donations, err := c.app.Query(util.Context(ctx), util.Params(ctx))
	if err != nil {
		return err
	}

	list := make([]*dto.BloodDonationDTO, 0, len(donations))
	for _, d := range donations {
		list = append(list, internalapp.ToDTO(d))
	}
	return result.OK(ctx, fiber.Map{
		"total":   len(list),
		"content": list,
	})
}

// Get 获取献血详情
func (c *BloodDonationAPIController) Get(ctx *fiber.Ctx) error {
	id, err := c.pathID(ctx)
	if err != nil {
		return err
	}

	donation, err := c.app.BloodDonationService.GetWithId(util.Context(ctx), id)
	if err != nil {
		return err
	}
	if donation == nil {
		return c.err.NotFound("献血记录不存在")
	}
	return result.OK(ctx, internalapp.ToDTO(donation))
}

// Create 新增献血，请求体为表单编码
func (c *BloodDonationAPIController) Create(ctx *fiber.Ctx) error {
	params := util.Params(ctx)
	delete(params, dto.ID)

	donation, err := c.app.Submit(util.Context(ctx), params)
	if err != nil {
		if errorc.IsValidation(err) {
			c.metrics.IncrementValidationFailed(entityName)
		}
		return err
	}
	c.metrics.IncrementCreated(entityName)
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"status": fiber.StatusCreated, "data": internalapp.ToDTO(donation)})
}

// Update 按路径中的 ID 更新献血
func (c *BloodDonationAPIController) Update(ctx *fiber.Ctx) error {
	id, err := c.pathID(ctx)
	if err != nil {
		return err
	}

	params := util.Params(ctx)
	params.Set(dto.ID, strconv.FormatInt(id, 10))

	donation, err := c.app.Submit(util.Context(ctx), params)
	if err != nil {
		if errorc.IsValidation(err) {
			c.metrics.IncrementValidationFailed(entityName)
		}
		return err
	}
	c.metrics.IncrementUpdated(entityName)
	return result.OK(ctx, internalapp.ToDTO(donation))
}

// Delete 删除献血
func (c *BloodDonationAPIController) Delete(ctx *fiber.Ctx) error {
	id, err := c.pathID(ctx)
	if err != nil {
		return err
	}

	return result.Once(ctx, nil, c.app.BloodDonationService.Delete(util.Context(ctx), id))
}
