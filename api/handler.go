package api

import (
	"github.com/gofiber/fiber/v2"
)

type ForwardHandler interface {
	PostEvent(ctx *fiber.Ctx) error
	GetStats(ctx *fiber.Ctx) error
}
