package routes

import (
	"kaloltsavam-backend/controllers"
	"kaloltsavam-backend/database"
	"kaloltsavam-backend/middleware"
	"kaloltsavam-backend/results"

	"github.com/gofiber/fiber/v2"
)

func Register(app *fiber.App) {
	store := results.NewPostgresStore(database.DB)
	resultsController := controllers.NewResultsController(store)
	adminResults := controllers.NewAdminResultsController(store)

	// Public read path, gated by API key instead of a session.
	app.Get("/results", resultsController.GetResults)

	api := app.Group("/api")

	api.Post("/appeals", controllers.SubmitAppeal)

	auth := api.Group("/auth")
	auth.Post("/register", controllers.Register)
	auth.Get("/verify-email", controllers.VerifyEmail)
	auth.Post("/login", controllers.Login)
	auth.Get("/me", middleware.RequireAuth, controllers.GetMe)

	admin := api.Group("/admin", middleware.RequireAuth, middleware.RequireAdmin)
	admin.Post("/results", adminResults.CreateResult)
	admin.Put("/results/:id", adminResults.UpdateResult)
	admin.Delete("/results/:id", adminResults.DeleteResult)
	admin.Post("/results/bulk/preview", adminResults.BulkPreview)
	admin.Post("/results/bulk/commit", adminResults.BulkCommit)
	admin.Get("/appeals", controllers.ListAppeals)
	admin.Put("/appeals/:id/status", controllers.UpdateAppealStatus)
}
