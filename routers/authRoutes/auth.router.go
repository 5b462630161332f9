package authRoutes

import (
	authController "coursecraft/controllers/auth"
	authValidator "coursecraft/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up signup and token issuance
func SetupAuthRoutes(app *fiber.App) {
	app.Post("/signup", authValidator.Signup(), authController.Signup)
	app.Post("/token", authValidator.Token(), authController.Token)
}
