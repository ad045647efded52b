package controller

import (
	"craftguide-be/internal/dto"
	"craftguide-be/internal/pkg/serverutils"
	"craftguide-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IGuidanceController interface {
	RegisterRoutes(r fiber.Router)
	Compose(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Feedback(ctx *fiber.Ctx) error
}

type guidanceController struct {
	service service.IGuidanceService
	auth    fiber.Handler
}

func NewGuidanceController(service service.IGuidanceService, auth fiber.Handler) IGuidanceController {
	return &guidanceController{service: service, auth: auth}
}

func (c *guidanceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/guidance/v1")
	h.Use(c.auth)
	h.Post("", c.Compose)
	h.Get(":queryId", c.Show)
	h.Post(":queryId/feedback", c.Feedback)
}

func currentUser(ctx *fiber.Ctx) (uuid.UUID, error) {
	userIdStr, _ := ctx.Locals(serverutils.LocalUserID).(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return uuid.Nil, serverutils.ErrUnauthorized
	}
	return userId, nil
}

func queryIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("queryId"))
	if err != nil {
		return uuid.Nil, serverutils.BadRequest("Invalid query id")
	}
	return id, nil
}

func (c *guidanceController) Compose(ctx *fiber.Ctx) error {
	userId, err := currentUser(ctx)
	if err != nil {
		return err
	}

	var req dto.ComposeGuidanceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Compose(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success compose guidance", res))
}

func (c *guidanceController) Show(ctx *fiber.Ctx) error {
	userId, err := currentUser(ctx)
	if err != nil {
		return err
	}
	queryId, err := queryIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.UserContext(), userId, queryId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show guidance", res))
}

func (c *guidanceController) Feedback(ctx *fiber.Ctx) error {
	userId, err := currentUser(ctx)
	if err != nil {
		return err
	}
	queryId, err := queryIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.GuidanceFeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SubmitFeedback(ctx.UserContext(), userId, queryId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success submit feedback", res))
}
