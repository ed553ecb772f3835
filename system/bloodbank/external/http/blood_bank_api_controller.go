package controller

import (
	"strconv"

	errorc "bloodbank/pkg/core/err"
	"bloodbank/pkg/core/metrics"
	"bloodbank/pkg/core/result"
	"bloodbank/pkg/core/util"
	"bloodbank/system/bloodbank/api/dto"
	internalapp "bloodbank/system/bloodbank/internal/app"

	"github.com/gofiber/fiber/v2"
)

// BloodBankAPIController 血库 JSON 接口
type BloodBankAPIController struct {
	app     *internalapp.App
	metrics *metrics.Metrics
	err     *errorc.ErrorBuilder
}

// NewBloodBankAPIController 创建血库 JSON 接口控制器
func NewBloodBankAPIController(app *internalapp.App, m *metrics.Metrics) *BloodBankAPIController {
	return &BloodBankAPIController{
		app:     app,
		metrics: m,
		err:     errorc.NewErrorBuilder("BloodBankAPIController"),
	}
}

// RegisterRoutes 注册路由
func (c *BloodBankAPIController) RegisterRoutes(api fiber.Router) {
	router := api.Group("/blood-banks")
	router.Get("/", c.List)
	router.Post("/", c.Create)
	router.Get("/:id", c.Get)
	router.Put("/:id", c.Update)
	router.Delete("/:id", c.Delete)
}

func (c *BloodBankAPIController) pathID(ctx *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return 0, c.err.BadRequest("ID参数错误").WithCause(err).WithTraceID(util.Context(ctx))
	}
	return id, nil
}

// List 查询血库列表
// 支持 search/name/privatelyOwned/established/employeeCount/minEmployeeCount/ownerId
func (c *BloodBankAPIController) List(ctx *fiber.Ctx) error {
	banks, err := c.app.Query(util.Context(ctx), util.Params(ctx))
	if err != nil {
		return err
	}

	list := make([]*dto.BloodBankDTO, 0, len(banks))
	for _, b := range banks {
		list = append(list, internalapp.ToDTO(b))
	}
	return result.OK(ctx, fiber.Map{
		"total":   len(list),
		"content": list,
	})
}

// Get 获取血库详情
func (c *BloodBankAPIController) Get(ctx *fiber.Ctx) error {
	id, err := c.pathID(ctx)
	if err != nil {
		return err
	}

	bank, err := c.app.BloodBankService.GetWithId(util.Context(ctx), id)
	if err != nil {
		return err
	}
	if bank == nil {
		return c.err.NotFound("血库不存在")
	}
	return result.OK(ctx, internalapp.ToDTO(bank))
}

// Create 新增血库，请求体为表单编码
func (c *BloodBankAPIController) Create(ctx *fiber.Ctx) error {
	params := util.Params(ctx)
	delete(params, dto.ID)

	bank, err := c.app.Submit(util.Context(ctx), params)
	if err != nil {
		if errorc.IsValidation(err) {
			c.metrics.IncrementValidationFailed(entityName)
		}
		return err
	}
	c.metrics.IncrementCreated(entityName)
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"status": fiber.StatusCreated, "data": internalapp.ToDTO(bank)})
}

// Update 按路径中的 ID 更新血库
func (c *BloodBankAPIController) Update(ctx *fiber.Ctx) error {
	id, err := c.pathID(ctx)
	if err != nil {
		return err
	}

	params := util.Params(ctx)
	params.Set(dto.ID, strconv.FormatInt(id, 10))

	bank, err := c.app.Submit(util.Context(ctx), params)
	if err != nil {
		if errorc.IsValidation(err) {
			c.metrics.IncrementValidationFailed(entityName)
		}
		return err
	}
	c.metrics.IncrementUpdated(entityName)
	return result.OK(ctx, internalapp.ToDTO(bank))
}

// Delete 删除血库
func (c *BloodBankAPIController) Delete(ctx *fiber.Ctx) error {
	id, err := c.pathID(ctx)
	if err != nil {
		return err
	}

	return result.Once(ctx, nil, c.app.BloodBankService.Delete(util.Context(ctx), id))
}
