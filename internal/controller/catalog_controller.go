package controller

import (
	"musichub-be/internal/pkg/logger"
	"musichub-be/internal/pkg/serverutils"
	"musichub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	ListTags(ctx *fiber.Ctx) error
	ListTimeSignatures(ctx *fiber.Ctx) error
}

type catalogController struct {
	catalogService service.ICatalogService
	logger         logger.ILogger
}

func NewCatalogController(catalogService service.ICatalogService, sysLogger logger.ILogger) ICatalogController {
	return &catalogController{
		catalogService: catalogService,
		logger:         sysLogger,
	}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	r.Get("/tags", c.ListTags)
	r.Get("/time-signatures", c.ListTimeSignatures)
}

func (c *catalogController) ListTags(ctx *fiber.Ctx) error {
	res, err := c.catalogService.ListTags(ctx.UserContext(), pageRequest(ctx))
	if err != nil {
		c.logger.Error("CATALOG", "ListTags failed", map[string]interface{}{"error": err.Error()})
		return fiber.NewError(fiber.StatusInternalServerError, serverutils.MessageError)
	}
	return ctx.JSON(res)
}

func (c *catalogController) ListTimeSignatures(ctx *fiber.Ctx) error {
	res, err := c.catalogService.ListTimeSignatures(ctx.UserContext(), pageRequest(ctx))
	if err != nil {
		c.logger.Error("CATALOG", "ListTimeSignatures failed", map[string]interface{}{"error": err.Error()})
		return fiber.NewError(fiber.StatusInternalServerError, serverutils.MessageError)
	}
	return ctx.JSON(res)
}
