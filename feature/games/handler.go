package games

import (
	"errors"

	"common-games/core/logger"
	"common-games/core/secrets"
	"common-games/feature/games/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the games feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the games routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/games")
	group.Post("/common", h.HandleCommonGames)
}

// HandleCommonGames returns the games owned by all requested users.
// @Summary Common Games
// @Description Returns the titles owned by every requested user, optionally filtered to multiplayer-capable ones.
// @Tags games
// @Accept json
// @Produce json
// @Param request body models.CommonGamesRequest true "User identifiers (canonical or vanity, >=2) and filter flag"
// @Success 200 {object} models.Envelope "Result set"
// @Failure 400 {object} models.Envelope "Validation failures"
// @Failure 404 {object} models.Envelope "Unresolved vanity / too few ids / user without games"
// @Failure 500 {object} models.Envelope "Infrastructural failure"
// @Router /games/common [post]
func (h *Handler) HandleCommonGames(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req models.CommonGamesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Envelope{
			Success: false,
			Body:    "invalid request body",
		})
	}

	games, err := h.service.CommonGames(c.Context(), req.SteamIds, req.MultiplayerOnly)
	if err != nil {
		return h.respondError(c, l, err)
	}

	return c.JSON(models.Envelope{Success: true, Body: games})
}

// respondError maps the domain error taxonomy onto HTTP statuses.
func (h *Handler) respondError(c *fiber.Ctx, l *zap.Logger, err error) error {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(models.Envelope{
			Success: false,
			Body:    validationErr.Failures,
		})
	}

	var vanityErr *VanityResolutionError
	var noGamesErr *NoGamesError
	switch {
	case errors.As(err, &vanityErr), errors.As(err, &noGamesErr), errors.Is(err, ErrTooFewIDs):
		return c.Status(fiber.StatusNotFound).JSON(models.Envelope{
			Success: false,
			Body:    err.Error(),
		})
	}

	var secretErr *secrets.RetrievalError
	if errors.As(err, &secretErr) {
		l.Error("Secret retrieval failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.Envelope{
			Success: false,
			Body:    "secret retrieval failed",
		})
	}

	l.Error("Common games request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(models.Envelope{
		Success: false,
		Body:    "internal error",
	})
}
