package controller

import (
	"craftguide-be/internal/dto"
	"craftguide-be/internal/pkg/serverutils"
	"craftguide-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IToolController interface {
	RegisterRoutes(r fiber.Router)
	Recommend(ctx *fiber.Ctx) error
}

type toolController struct {
	service service.IToolService
}

func NewToolController(service service.IToolService) IToolController {
	return &toolController{service: service}
}

func (c *toolController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tools/v1")
	h.Post("recommendations", c.Recommend)
}

func (c *toolController) Recommend(ctx *fiber.Ctx) error {
	var req dto.ToolRecommendationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success recommend tools", c.service.Recommend(&req)))
}
