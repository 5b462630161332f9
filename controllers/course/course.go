package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"

	"coursecraft/database"
	"coursecraft/llm"
	"coursecraft/middleware"
	"coursecraft/models"
	"coursecraft/store"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PlanGenerator produces a schema-validated course plan draft.
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, req llm.GenerateRequest, userName string) (*models.CoursePlan, error)
}

// ResourceCurator enriches a draft plan with externally sourced resources.
type ResourceCurator interface {
	Curate(ctx context.Context, plan *models.CoursePlan) (*models.CoursePlan, error)
}

// Controller carries the external collaborators the course handlers need.
// Both are constructed once at startup and injected here.
type Controller struct {
	Planner PlanGenerator
	Curator ResourceCurator
}

// GenerateCourse runs the full pipeline: LLM generation, best-effort
// resource curation, persistence.
func (ctrl *Controller) GenerateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedGenerate").(*llm.GenerateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	// 1. LLM generation
	draft, err := ctrl.Planner.GeneratePlan(c.Context(), *reqData, user.Name)
	if err != nil {
		switch {
		case errors.Is(err, llm.ErrUnavailable):
			return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "AI service is unavailable. Check backend configuration.", nil)
		case errors.Is(err, llm.ErrInvalidPlan):
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "AI service failed to generate valid structured data.", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "AI course generation failed.", nil)
		}
	}

	// 2. Resource curation. Best effort: even a hard curation failure only
	// costs the enrichment, never the plan.
	curated, err := ctrl.Curator.Curate(c.Context(), draft)
	if err != nil {
		log.Printf("Warning: resource curation failed for course %q: %v", draft.Title, err)
		curated = draft
	}

	// 3. Persist
	curated.UserID = userID
	if err := store.SavePlan(database.Database.Db, curated); err != nil {
		log.Printf("Error saving course plan: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save course plan!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course plan generated successfully.", curated)
}

// GetMyCourses lists summaries of the caller's course plans.
func (ctrl *Controller) GetMyCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	items, err := store.ListByOwner(database.Database.Db, userID)
	if err != nil {
		log.Printf("Error listing course plans: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", items)
}

// GetCourseDetail returns one full course plan owned by the caller.
func (ctrl *Controller) GetCourseDetail(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	plan, err := store.GetByIDAndOwner(database.Database.Db, courseID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or access denied!", nil)
		}
		log.Printf("Error fetching course plan: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully.", plan)
}

// CompleteModule marks a single module done and rolls plan completion up.
func (ctrl *Controller) CompleteModule(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)
	moduleID := c.Locals("moduleID").(string)

	matched, err := store.SetModuleCompleted(database.Database.Db, courseID, userID, moduleID)
	if err != nil {
		log.Printf("Error completing module: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
	}
	if !matched {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course or module not found, or access denied!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, fmt.Sprintf("Module %s successfully marked as complete.", moduleID), nil)
}

// DeleteCourse removes a course plan owned by the caller.
func (ctrl *Controller) DeleteCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	deleted, err := store.DeleteByIDAndOwner(database.Database.Db, courseID, userID)
	if err != nil {
		log.Printf("Error deleting course plan: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}
	if !deleted {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or access denied!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course successfully deleted.", nil)
}
