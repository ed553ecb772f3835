package result

import (
	"github.com/gofiber/fiber/v2"
)

func OK(c *fiber.Ctx, v interface{}) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": fiber.StatusOK, "data": v})
}

func Once(c *fiber.Ctx, v interface{}, err error) error {
	if err != nil {
		return err
	}
	return OK(c, v)
}
