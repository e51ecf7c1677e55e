package server

import (
	"agencybot/internal/models"

	"github.com/gofiber/fiber/v2"
)

// MeetingStatus handles GET /api/meeting. The flag decides whether the UI
// offers "schedule" or "reschedule"; the link is returned either way.
func (s *Server) MeetingStatus(c *fiber.Ctx) error {
	username := c.Locals("username").(string)

	scheduled, err := s.users.HasScheduledMeeting(c.Context(), username)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"scheduled": scheduled,
		"link":      s.config.CalendlyLink,
	})
}

// ScheduleMeeting handles POST /api/meeting/schedule. Idempotent: scheduling
// an already-scheduled meeting leaves the flag true.
func (s *Server) ScheduleMeeting(c *fiber.Ctx) error {
	username := c.Locals("username").(string)

	if err := s.users.SetMeetingScheduled(c.Context(), username, true); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"scheduled": true,
		"link":      s.config.CalendlyLink,
	})
}

// CancelMeeting handles POST /api/meeting/cancel.
func (s *Server) CancelMeeting(c *fiber.Ctx) error {
	username := c.Locals("username").(string)

	if err := s.users.SetMeetingScheduled(c.Context(), username, false); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"scheduled": false,
	})
}
