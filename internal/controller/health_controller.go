package controller

import (
	"craftguide-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
}

// CorpusCounter reports how many articles the serving store holds.
type CorpusCounter func() (int64, error)

type healthController struct {
	countArticles CorpusCounter
	storeKind     string
}

func NewHealthController(storeKind string, countArticles CorpusCounter) IHealthController {
	return &healthController{storeKind: storeKind, countArticles: countArticles}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
}

func (c *healthController) Health(ctx *fiber.Ctx) error {
	count, err := c.countArticles()
	if err != nil {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(serverutils.ErrorResponse(fiber.StatusServiceUnavailable, "Knowledge store unavailable"))
	}
	return ctx.JSON(serverutils.SuccessResponse("OK", fiber.Map{
		"store":    c.storeKind,
		"articles": count,
	}))
}
