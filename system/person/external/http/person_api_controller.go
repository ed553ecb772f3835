package controller

import (
	"strconv"

	errorc "bloodbank/pkg/core/err"
	"bloodbank/pkg/core/metrics"
	"bloodbank/pkg/core/result"
	"bloodbank/pkg/core/util"
	"bloodbank/system/person/api/dto"
	internalapp "bloodbank/system/person/internal/app"

	"github.com/gofiber/fiber/v2"
)

// PersonAPIController 人员 JSON 接口
type PersonAPIController struct {
	app     *internalapp.App
	metrics *metrics.Metrics
	err     *errorc.ErrorBuilder
}

// NewPersonAPIController 创建人员 JSON 接口控制器
func NewPersonAPIController(app *internalapp.App, m *metrics.Metrics) *PersonAPIController {
	return &PersonAPIController{
		app:     app,
		metrics: m,
		err:     errorc.NewErrorBuilder("PersonAPIController"),
	}
}

// RegisterRoutes 注册路由
func (c *PersonAPIController) RegisterRoutes(api fiber.Router) {
	router := api.Group("/persons")
	router.Get("/", c.List)
	router.Post("/", c.Create)
	router.Get("/:id", c.Get)
	router.Put("/:id", c.Update)
	router.Delete("/:id", c.Delete)
}

func (c *PersonAPIController) pathID(ctx *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return 0, c.err.BadRequest("ID参数错误").WithCause(err).WithTraceID(util.Context(ctx))
	}
	return id, nil
}

// List 查询人员列表，支持 search/firstName/lastName/phone/birth 过滤
func (c *PersonAPIController) List(ctx *fiber.Ctx) error {
	persons, err := c.app.Query(util.Context(ctx), util.Params(ctx))
	if err != nil {
		return err
	}

	list := make([]*dto.PersonDTO, 0, len(persons))
	for _, p := range persons {
		list = append(list, internalapp.ToDTO(p))
	}
	return result.OK(ctx, fiber.Map{
		"total":   len(list),
		"content": list,
	})
}

// Get 获取人员详情
func (c *PersonAPIController) Get(ctx *fiber.Ctx) error {
	id, err := c.pathID(ctx)
	if err != nil {
		return err
	}

	person, err := c.app.PersonService.GetWithId(util.Context(ctx), id)
	if err != nil {
		return err
	}
	if person == nil {
		return c.err.NotFound("人员不存在")
	}
	return result.OK(ctx, internalapp.ToDTO(person))
}

// Create 新增人员，请求体为表单编码
func (c *PersonAPIController) Create(ctx *fiber.Ctx) error {
	params := util.Params(ctx)
	delete(params, dto.ID)

	person, err := c.app.Submit(util.Context(ctx), params)
	if err != nil {
		if errorc.IsValidation(err) {
			c.metrics.IncrementValidationFailed(entityName)
		}
		return err
	}
	c.metrics.IncrementCreated(entityName)
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"status": fiber.StatusCreated, "data": internalapp.ToDTO(person)})
}

// Update 按路径中的 ID 更新人员
func (c *PersonAPIController) Update(ctx *fiber.Ctx) error {
	id, err := c.pathID(ctx)
	if err != nil {
		return err
	}

	params := util.Params(ctx)
	params.Set(dto.ID, strconv.FormatInt(id, 10))

	person, err := c.app.Submit(util.Context(ctx), params)
	if err != nil {
		if errorc.IsValidation(err) {
			c.metrics.IncrementValidationFailed(entityName)
		}
		return err
	}
	c.metrics.IncrementUpdated(entityName)
	return result.OK(ctx, internalapp.ToDTO(person))
}

// Delete 删除人员
func (c *PersonAPIController) Delete(ctx *fiber.Ctx) error {
	id, err := c.pathID(ctx)
	if err != nil {
		return err
	}

	return result.Once(ctx, nil, c.app.PersonService.Delete(util.Context(ctx), id))
}
