package server

import (
	"log/slog"

	"agencybot/internal/middleware"
	"agencybot/internal/models"
	"agencybot/internal/rag"

	"github.com/gofiber/fiber/v2"
)

// Ask handles POST /api/chat. The answerer is best-effort: when it fails, the
// apology text is recorded as the answer and the turn still lands in history.
func (s *Server) Ask(c *fiber.Ctx) error {
	username := c.Locals("username").(string)

	var req struct {
		Question string `json:"question"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Question == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Question is required"))
	}

	outcome := rag.Ask(c.Context(), s.answerer, req.Question)
	if outcome.Failed() {
		middleware.Logger.Warn("answer pipeline failed",
			slog.String("username", username),
			slog.String("error", outcome.Err.Error()))
	}

	answer := outcome.Message()
	if err := s.chats.Append(c.Context(), username, req.Question, answer); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"question": req.Question,
		"answer":   answer,
		"fallback": outcome.Failed(),
	})
}

// History handles GET /api/chat/history, replaying the full history for the
// session user in insertion order.
func (s *Server) History(c *fiber.Ctx) error {
	username := c.Locals("username").(string)

	records, err := s.chats.ListByUsername(c.Context(), username)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"username": username,
		"history":  records,
	})
}
