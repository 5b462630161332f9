package courseRoutes

import (
	controllers "coursecraft/controllers/course"
	"coursecraft/middleware"
	validators "coursecraft/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up plan generation and the course CRUD surface
func SetupCourseRoutes(app *fiber.App, ctrl *controllers.Controller) {
	// Plan generation
	app.Post("/generate", middleware.JWTMiddleware, validators.GenerateCourse(), ctrl.GenerateCourse)

	// Owner-scoped course access
	courseGroup := app.Group("/api/courses")
	courseGroup.Get("/my", middleware.JWTMiddleware, ctrl.GetMyCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), ctrl.GetCourseDetail)
	courseGroup.Patch("/:id/complete/:moduleId", middleware.JWTMiddleware, validators.CompleteModule(), ctrl.CompleteModule)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, validators.CourseID(), ctrl.DeleteCourse)
}
