package delivery

import (
	"fmt"
	"strconv"

	"gradebook/config"
	"gradebook/domain"
	"gradebook/middleware"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type adminHandler struct {
	userUC     domain.UserUseCase
	academicUC domain.AcademicUseCase
	settingUC  domain.SettingUseCase
}

func NewAdminHandler(app *fiber.App, userUC domain.UserUseCase, academicUC domain.AcademicUseCase, settingUC domain.SettingUseCase) {
	handler := &adminHandler{
		userUC:     userUC,
		academicUC: academicUC,
		settingUC:  settingUC,
	}

	group := app.Group("/admin", middleware.AuthRequired(), middleware.RoleRequired(domain.RoleAdmin))

	group.Post("/users", handler.CreateStaff)
	group.Post("/students", handler.CreateStudent)
	group.Get("/users", handler.GetAllUsers)
	group.Get("/users/:id", handler.GetUserDetail)
	group.Put("/users/:id", handler.ModifyUser)
	group.Delete("/users/:id", handler.DeleteUser)
	group.Put("/students/:id/class", handler.ReassignStudentClass)

	group.Post("/classes", handler.CreateClass)
	group.Get("/classes", handler.GetAllClasses)
	group.Get("/classes/:id", handler.GetClassDetail)
	group.Put("/classes/:id", handler.ModifyClass)
	group.Delete("/classes/:id", handler.DeleteClass)

	group.Post("/subjects", handler.CreateSubject)
	group.Get("/subjects", handler.GetAllSubjects)
	group.Get("/subjects/:id", handler.GetSubjectDetail)
	group.Put("/subjects/:id", handler.ModifySubject)
	group.Delete("/subjects/:id", handler.DeleteSubject)

	group.Post("/semesters", handler.CreateSemester)
	group.Get("/semesters", handler.GetAllSemesters)
	group.Delete("/semesters/:id", handler.DeleteSemester)

	group.Post("/assignments", handler.CreateAssignment)
	group.Get("/assignments", handler.GetAllAssignments)
	group.Delete("/assignments/:id", handler.DeleteAssignment)

	group.Put("/settings/active-semester", handler.SetActiveSemester)
	group.Get("/settings", handler.GetAllSettings)
	group.Get("/activity-logs", handler.GetActivityLogs)
}

func claimsFromCtx(c *fiber.Ctx) *domain.Claims {
	claims, _ := c.Locals("user").(*domain.Claims)
	if claims == nil {
		claims = &domain.Claims{}
	}
	return claims
}

func paramID(c *fiber.Ctx) (int, error) {
	return strconv.Atoi(c.Params("id"))
}

func (h *adminHandler) CreateStaff(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	var user domain.User
	if err := c.BodyParser(&user); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "CreateStaff")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	if _, err := govalidator.ValidateStruct(&user); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "CreateStaff")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"errors":  govalidator.ErrorsByField(err),
			"message": "Invalid request body",
		})
	}

	if err := h.userUC.CreateStaff(c.Context(), &user); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "CreateStaff")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to create user",
		})
	}

	h.settingUC.RecordActivity(c.Context(), userToken, "create_staff", fmt.Sprintf("created %s (%s)", user.Username, user.Role))

	config.PrintLogInfo(&userToken.Username, fiber.StatusCreated, "CreateStaff")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User created successfully",
	})
}

func (h *adminHandler) CreateStudent(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	var payload domain.CreateStudentPayload
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "CreateStudent")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	if _, err := govalidator.ValidateStruct(&payload); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "CreateStudent")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"errors":  govalidator.ErrorsByField(err),
			"message": "Invalid request body",
		})
	}

	if err := h.userUC.CreateStudent(c.Context(), &payload); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "CreateStudent")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to create student",
		})
	}

	h.settingUC.RecordActivity(c.Context(), userToken, "create_student", fmt.Sprintf("created student %s in class %d", payload.Username, payload.ClassID))

	config.PrintLogInfo(&userToken.Username, fiber.StatusCreated, "CreateStudent")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Student created successfully",
	})
}

func (h *adminHandler) GetAllUsers(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	var roleFilter *domain.Role
	if raw := c.Query("role"); raw != "" {
		role, ok := domain.ParseRole(raw)
		if !ok {
			config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "GetAllUsers")
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   fmt.Sprintf("unknown role: %s", raw),
			})
		}
		roleFilter = &role
	}

	users, err := h.userUC.GetAllUsers(c.Context(), roleFilter)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "GetAllUsers")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to get users",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "GetAllUsers")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Users retrieved successfully",
		"data":    users,
	})
}

func (h *adminHandler) GetUserDetail(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	id, err := paramID(c)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "GetUserDetail")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid user ID",
		})
	}

	user, err := h.userUC.GetUserDetail(c.Context(), id)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusNotFound, "GetUserDetail")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "User not found",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "GetUserDetail")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "User retrieved successfully",
		"data":    user,
	})
}

func (h *adminHandler) ModifyUser(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	id, err := paramID(c)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "ModifyUser")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid user ID",
		})
	}

	var payload domain.UpdateUserPayload
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "ModifyUser")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	if err := h.userUC.ModifyUser(c.Context(), id, &payload); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "ModifyUser")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to update user",
		})
	}

	h.settingUC.RecordActivity(c.Context(), userToken, "modify_user", fmt.Sprintf("updated user %d", id))

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "ModifyUser")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "User updated successfully",
	})
}

func (h *adminHandler) DeleteUser(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	id, err := paramID(c)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "DeleteUser")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid user ID",
		})
	}

	if err := h.userUC.DeleteUser(c.Context(), id); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "DeleteUser")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to delete user",
		})
	}

	h.settingUC.RecordActivity(c.Context(), userToken, "delete_user", fmt.Sprintf("deleted user %d", id))

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "DeleteUser")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "User deleted successfully",
	})
}

func (h *adminHandler) ReassignStudentClass(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	id, err := paramID(c)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "ReassignStudentClass")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid student ID",
		})
	}

	var payload domain.ReassignClassPayload
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "ReassignStudentClass")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	if _, err := govalidator.ValidateStruct(&payload); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "ReassignStudentClass")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"errors":  govalidator.ErrorsByField(err),
			"message": "Invalid request body",
		})
	}

	if err := h.academicUC.ReassignStudentClass(c.Context(), id, payload.ClassID); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "ReassignStudentClass")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to reassign student",
		})
	}

	h.settingUC.RecordActivity(c.Context(), userToken, "reassign_class", fmt.Sprintf("moved student %d to class %d", id, payload.ClassID))

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "ReassignStudentClass")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Student reassigned successfully",
	})
}

func (h *adminHandler) CreateClass(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	var class domain.Class
	if err := c.BodyParser(&class); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "CreateClass")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	if _, err := govalidator.ValidateStruct(&class); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "CreateClass")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"errors":  govalidator.ErrorsByField(err),
			"message": "Invalid request body",
		})
	}

	if err := h.academicUC.CreateClass(c.Context(), &class); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "CreateClass")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to create class",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusCreated, "CreateClass")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Class created successfully",
		"data":    class,
	})
}

func (h *adminHandler) GetAllClasses(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	classes, err := h.academicUC.GetAllClasses(c.Context())
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "GetAllClasses")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to get classes",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "GetAllClasses")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Classes retrieved successfully",
		"data":    classes,
	})
}

func (h *adminHandler) GetClassDetail(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	id, err := paramID(c)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "GetClassDetail")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid class ID",
		})
	}

	class, err := h.academicUC.GetClassDetail(c.Context(), id)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusNotFound, "GetClassDetail")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Class not found",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "GetClassDetail")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Class retrieved successfully",
		"data":    class,
	})
}

func (h *adminHandler) ModifyClass(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	id, err := paramID(c)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "ModifyClass")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid class ID",
		})
	}

	var class domain.Class
	if err := c.BodyParser(&class); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "ModifyClass")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}
	class.ClassID = id

	if err := h.academicUC.ModifyClass(c.Context(), &class); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "ModifyClass")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to update class",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "ModifyClass")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Class updated successfully",
	})
}

func (h *adminHandler) DeleteClass(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	id, err := paramID(c)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "DeleteClass")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid class ID",
		})
	}

	if err := h.academicUC.DeleteClass(c.Context(), id); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "DeleteClass")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to delete class",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "DeleteClass")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Class deleted successfully",
	})
}

func (h *adminHandler) CreateSubject(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	var subject domain.Subject
	if err := c.BodyParser(&subject); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "CreateSubject")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	if _, err := govalidator.ValidateStruct(&subject); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "CreateSubject")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"errors":  govalidator.ErrorsByField(err),
			"message": "Invalid request body",
		})
	}

	if err := h.academicUC.CreateSubject(c.Context(), &subject); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "CreateSubject")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to create subject",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusCreated, "CreateSubject")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Subject created successfully",
		"data":    subject,
	})
}

func (h *adminHandler) GetAllSubjects(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	subjects, err := h.academicUC.GetAllSubjects(c.Context())
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "GetAllSubjects")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to get subjects",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "GetAllSubjects")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Subjects retrieved successfully",
		"data":    subjects,
	})
}

func (h *adminHandler) GetSubjectDetail(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	id, err := paramID(c)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "GetSubjectDetail")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid subject ID",
		})
	}

	subject, err := h.academicUC.GetSubjectDetail(c.Context(), id)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusNotFound, "GetSubjectDetail")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Subject not found",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "GetSubjectDetail")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Subject retrieved successfully",
		"data":    subject,
	})
}

func (h *adminHandler) ModifySubject(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	id, err := paramID(c)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "ModifySubject")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid subject ID",
		})
	}

	var subject domain.Subject
	if err := c.BodyParser(&subject); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "ModifySubject")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}
	subject.SubjectID = id

	if err := h.academicUC.ModifySubject(c.Context(), &subject); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "ModifySubject")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to update subject",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "ModifySubject")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Subject updated successfully",
	})
}

func (h *adminHandler) DeleteSubject(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	id, err := paramID(c)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "DeleteSubject")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid subject ID",
		})
	}

	if err := h.academicUC.DeleteSubject(c.Context(), id); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "DeleteSubject")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to delete subject",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "DeleteSubject")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Subject deleted successfully",
	})
}

func (h *adminHandler) CreateSemester(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	var semester domain.Semester
	if err := c.BodyParser(&semester); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "CreateSemester")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	if _, err := govalidator.ValidateStruct(&semester); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "CreateSemester")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"errors":  govalidator.ErrorsByField(err),
			"message": "Invalid request body",
		})
	}

	if err := h.academicUC.CreateSemester(c.Context(), &semester); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "CreateSemester")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to create semester",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusCreated, "CreateSemester")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Semester created successfully",
		"data":    semester,
	})
}

func (h *adminHandler) GetAllSemesters(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	semesters, err := h.academicUC.GetAllSemesters(c.Context())
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "GetAllSemesters")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to get semesters",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "GetAllSemesters")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Semesters retrieved successfully",
		"data":    semesters,
	})
}

func (h *adminHandler) DeleteSemester(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	id, err := paramID(c)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "DeleteSemester")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid semester ID",
		})
	}

	if err := h.academicUC.DeleteSemester(c.Context(), id); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "DeleteSemester")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to delete semester",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "DeleteSemester")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Semester deleted successfully",
	})
}

func (h *adminHandler) CreateAssignment(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	var assignment domain.TeachingAssignment
	if err := c.BodyParser(&assignment); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "CreateAssignment")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	if _, err := govalidator.ValidateStruct(&assignment); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "CreateAssignment")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"errors":  govalidator.ErrorsByField(err),
			"message": "Invalid request body",
		})
	}

	if err := h.academicUC.CreateAssignment(c.Context(), &assignment); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "CreateAssignment")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to create assignment",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusCreated, "CreateAssignment")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Assignment created successfully",
		"data":    assignment,
	})
}

func (h *adminHandler) GetAllAssignments(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	assignments, err := h.academicUC.GetAllAssignments(c.Context())
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "GetAllAssignments")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to get assignments",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "GetAllAssignments")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Assignments retrieved successfully",
		"data":    assignments,
	})
}

func (h *adminHandler) DeleteAssignment(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	id, err := paramID(c)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "DeleteAssignment")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid assignment ID",
		})
	}

	if err := h.academicUC.DeleteAssignment(c.Context(), id); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "DeleteAssignment")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to delete assignment",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "DeleteAssignment")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Assignment deleted successfully",
	})
}

func (h *adminHandler) SetActiveSemester(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	var payload domain.ActiveSemesterPayload
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "SetActiveSemester")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	if _, err := govalidator.ValidateStruct(&payload); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "SetActiveSemester")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"errors":  govalidator.ErrorsByField(err),
			"message": "Invalid request body",
		})
	}

	if err := h.settingUC.SetActiveSemester(c.Context(), userToken, payload.SemesterID); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "SetActiveSemester")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to set active semester",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "SetActiveSemester")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Active semester updated successfully",
	})
}

func (h *adminHandler) GetAllSettings(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	settings, err := h.settingUC.GetAllSettings(c.Context())
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "GetAllSettings")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to get settings",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "GetAllSettings")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Settings retrieved successfully",
		"data":    settings,
	})
}

func (h *adminHandler) GetActivityLogs(c *fiber.Ctx) error {
	userToken := claimsFromCtx(c)

	page, _ := strconv.Atoi(c.Query("page", "1"))
	perPage, _ := strconv.Atoi(c.Query("per_page", "20"))

	logs, total, err := h.settingUC.GetActivityLogs(c.Context(), page, perPage)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "GetActivityLogs")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to get activity logs",
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "GetActivityLogs")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Activity logs retrieved successfully",
		"data":    logs,
		"total":   total,
		"page":    page,
	})
}
