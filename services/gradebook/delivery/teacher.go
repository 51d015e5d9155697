package delivery

import (
	"strconv"

	"gradebook/config"
	"gradebook/domain"
	"gradebook/middleware"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type teacherHandler struct {
	academicUC   domain.AcademicUseCase
	gradeUC      domain.GradeUseCase
	attendanceUC domain.AttendanceUseCase
}

func NewTeacherHandler(app *fiber.App, academicUC domain.AcademicUseCase, gradeUC domain.GradeUseCase, attendanceUC domain.AttendanceUseCase) {
	handler := &teacherHandler{
		academicUC:   academicUC,
		gradeUC:      gradeUC,
		attendanceUC: attendanceUC,
	}

	group := app.Group("/teacher", middleware.AuthRequired(), middleware.RoleRequired(domain.RoleTeacher, domain.RoleHomeroom))

	group.Get("/assignments", handler.GetMyAssignments)
	group.Get("/classes/:id/students", handler.GetClassRoster)
	group.Post("/grades", handler.SubmitGrades)
	group.Get("/grades", handler.GetMyGrades)
	group.Post("/attendances", handler.SubmitAttendance)
}

func (h *teacherHandler) GetMyAssignments(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	assignments, err := h.academicUC.GetTeacherAssignments(c.Context(), userToken.UserID)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "GetMyAssignments")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to get assignments",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "GetMyAssignments")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Assignments retrieved successfully",
		"data":    assignments,
	})
}

func (h *teacherHandler) GetClassRoster(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	classID, err := paramID(c)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "GetClassRoster")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid class ID",
		})
	}

	roster, err := h.academicUC.GetClassRoster(c.Context(), classID)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "GetClassRoster")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to get class roster",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "GetClassRoster")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Roster retrieved successfully",
		"data":    roster,
	})
}

func (h *teacherHandler) SubmitGrades(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	var payload domain.BulkGradePayload
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "SubmitGrades")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	if _, err := govalidator.ValidateStruct(&payload); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "SubmitGrades")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"errors":  govalidator.ErrorsByField(err),
			"message": "Invalid request body",
		})
	}

	report, err := h.gradeUC.BulkUpsertGrades(c.Context(), userToken.UserID, &payload)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "SubmitGrades")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to submit grades",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "SubmitGrades")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Grades processed",
		"data":    report,
	})
}

func (h *teacherHandler) GetMyGrades(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	classID, err := strconv.Atoi(c.Query("class_id"))
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "GetMyGrades")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "class_id query parameter is required",
		})
	}
	subjectID, err := strconv.Atoi(c.Query("subject_id"))
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "GetMyGrades")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "subject_id query parameter is required",
		})
	}

	grades, err := h.gradeUC.GetTeacherGrades(c.Context(), userToken.UserID, classID, subjectID)
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
		"data":    grades,
	})
}

func (h *teacherHandler) SubmitAttendance(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	var payload domain.BulkAttendancePayload
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "SubmitAttendance")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	if _, err := govalidator.ValidateStruct(&payload); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "SubmitAttendance")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"errors":  govalidator.ErrorsByField(err),
			"message": "Invalid request body",
		})
	}

	report, err := h.attendanceUC.BulkUpsertAttendance(c.Context(), userToken.UserID, &payload)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "SubmitAttendance")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to submit attendance",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "SubmitAttendance")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Attendance processed",
		"data":    report,
	})
}
