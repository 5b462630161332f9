package courseValidator

import (
	"coursecraft/llm"
	"coursecraft/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GenerateCourse validates the plan generation request body
func GenerateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(llm.GenerateRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Field
		if strings.TrimSpace(reqData.Field) == "" {
			errors["field"] = "Field is required!"
		}

		// Validate Level
		if strings.TrimSpace(reqData.Level) == "" {
			errors["level"] = "Level is required!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedGenerate", reqData)
		return c.Next()
	}
}

// CourseID validates the :id path parameter
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("id"), 10, 32)
		if err != nil || id == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID format!", nil)
		}

		c.Locals("courseID", uint(id))
		return c.Next()
	}
}

// CompleteModule validates the :id and :moduleId path parameters
func CompleteModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("id"), 10, 32)
		if err != nil || id == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID format!", nil)
		}

		moduleID := strings.TrimSpace(c.Params("moduleId"))
		if moduleID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID format!", nil)
		}

		c.Locals("courseID", uint(id))
		c.Locals("moduleID", moduleID)
		return c.Next()
	}
}
