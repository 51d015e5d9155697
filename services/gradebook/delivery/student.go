package delivery

import (
	"strconv"

	"gradebook/config"
	"gradebook/domain"
	"gradebook/middleware"

	"github.com/gofiber/fiber/v2"
)

type studentHandler struct {
	reportUC domain.ReportUseCase
}

func NewStudentHandler(app *fiber.App, reportUC domain.ReportUseCase) {
	handler := &studentHandler{
		reportUC: reportUC,
	}

	group := app.Group("/student", middleware.AuthRequired(), middleware.RoleRequired(domain.RoleStudent))

	group.Get("/grades", handler.GetMyGrades)
	group.Get("/attendance", handler.GetMyAttendance)
}

func (h *studentHandler) GetMyGrades(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	var semesterID *int
	if raw := c.Query("semester_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "GetMyGrades")
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "semester_id must be an integer",
			})
		}
		semesterID = &id
	}

	report, err := h.reportUC.GetStudentGrades(c.Context(), userToken.UserID, semesterID)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "GetMyGrades")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to get grades",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "GetMyGrades")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Grades retrieved successfully",
		"data":    report,
	})
}

func (h *studentHandler) GetMyAttendance(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	summary, err := h.reportUC.GetStudentAttendance(c.Context(), userToken.UserID)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "GetMyAttendance")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to get attendance summary",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "GetMyAttendance")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Attendance retrieved successfully",
		"data":    summary,
	})
}
