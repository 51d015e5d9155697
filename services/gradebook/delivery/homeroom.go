package delivery

import (
	"errors"
	"fmt"
	"strconv"

	"gradebook/config"
	"gradebook/domain"
	"gradebook/middleware"
	"gradebook/services/gradebook/ai"

	"github.com/gofiber/fiber/v2"
)

type homeroomHandler struct {
	reportUC domain.ReportUseCase
}

func NewHomeroomHandler(app *fiber.App, reportUC domain.ReportUseCase) {
	handler := &homeroomHandler{
		reportUC: reportUC,
	}

	group := app.Group("/homeroom", middleware.AuthRequired(), middleware.RoleRequired(domain.RoleHomeroom))

	group.Get("/class/report", handler.GetClassReport)
	group.Get("/class/top", handler.GetTopStudents)
	group.Get("/class/subject-averages", handler.GetSubjectAverages)
	group.Post("/students/:id/comment", handler.GenerateComment)
	group.Get("/class/report/export", handler.ExportReport)
}

func (h *homeroomHandler) GetClassReport(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	report, err := h.reportUC.GetClassReport(c.Context(), userToken.UserID)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "GetClassReport")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to build class report",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "GetClassReport")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Class report retrieved successfully",
		"data":    report,
	})
}

func (h *homeroomHandler) GetTopStudents(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	n, err := strconv.Atoi(c.Query("n", "3"))
	if err != nil || n < 1 {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "GetTopStudents")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "n must be a positive integer",
		})
	}

	entries, err := h.reportUC.GetTopStudents(c.Context(), userToken.UserID, n)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "GetTopStudents")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to get top students",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "GetTopStudents")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Top students retrieved successfully",
		"data":    entries,
	})
}

func (h *homeroomHandler) GetSubjectAverages(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	averages, err := h.reportUC.GetClassSubjectAverages(c.Context(), userToken.UserID)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "GetSubjectAverages")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to get subject averages",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "GetSubjectAverages")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Subject averages retrieved successfully",
		"data":    averages,
	})
}

func (h *homeroomHandler) GenerateComment(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	studentID, err := paramID(c)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "GenerateComment")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid student ID",
		})
	}

	comment, err := h.reportUC.GenerateStudentComment(c.Context(), userToken.UserID, studentID)
	if err != nil {
		if errors.Is(err, ai.ErrUnavailable) {
			config.PrintLogInfo(&userToken.Username, fiber.StatusServiceUnavailable, "GenerateComment")
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
				"message": "Comment service unavailable, try again later",
			})
		}
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "GenerateComment")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to generate comment",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "GenerateComment")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Comment generated successfully",
		"data":    comment,
	})
}

func (h *homeroomHandler) ExportReport(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	content, filename, err := h.reportUC.ExportClassReport(c.Context(), userToken.UserID)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "ExportReport")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to export class report",
		})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "ExportReport")
	return c.Status(fiber.StatusOK).Send(content)
}
