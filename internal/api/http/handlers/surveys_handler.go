package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/api/dto"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/service"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/pkg/util"
)

// SurveysHandler exposes the survey record endpoints.
type SurveysHandler struct {
	surveys *service.SurveyService
}

// NewSurveysHandler constructs handler.
func NewSurveysHandler(surveyService *service.SurveyService) *SurveysHandler {
	return &SurveysHandler{surveys: surveyService}
}

// Create handles POST /surveys. Open to guests; the record owner is the
// submitting account when one is logged in.
func (h *SurveysHandler) Create(c *fiber.Ctx) error {
	var req dto.SurveyRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewDomainError("INVALID_PAYLOAD", "invalid request body", http.StatusBadRequest, nil)
	}

	record, err := h.surveys.Create(c.UserContext(), currentSession(c), req.Form())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewSurveyResponse(*record)})
}

// List handles GET /surveys. The optional keyword query narrows the result
// to matching name, email, location or comments.
func (h *SurveysHandler) List(c *fiber.Ctx) error {
	records, err := h.surveys.List(c.UserContext(), c.Query("keyword"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data":  dto.NewSurveyList(records),
		"total": len(records),
	})
}

// Sample handles GET /surveys/sample, returning a randomized prefilled form.
func (h *SurveysHandler) Sample(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": dto.NewSampleForm(h.surveys.Sample())})
}

// Update handles PUT /surveys/:id, admin only.
func (h *SurveysHandler) Update(c *fiber.Ctx) error {
	var req dto.SurveyRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewDomainError("INVALID_PAYLOAD", "invalid request body", http.StatusBadRequest, nil)
	}

	record, err := h.surveys.Update(c.UserContext(), currentSession(c), c.Params("id"), req.Form())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSurveyResponse(*record)})
}

// Delete handles DELETE /surveys/:id, admin only. The removed record lands
// on the undo buffer.
func (h *SurveysHandler) Delete(c *fiber.Ctx) error {
	if err := h.surveys.Delete(c.UserContext(), currentSession(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Undo handles POST /surveys/undo, admin only. Restores the most recently
// deleted record.
func (h *SurveysHandler) Undo(c *fiber.Ctx) error {
	record, err := h.surveys.Undo(c.UserContext(), currentSession(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSurveyResponse(*record)})
}
