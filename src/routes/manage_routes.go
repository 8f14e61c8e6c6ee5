package routes

import (
	"Backend-Feedback-Journey/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// manageRoutes กำหนด route สำหรับ feedback management
func manageRoutes(app *fiber.App) {
	manage := app.Group("/manage/feedback")

	manage.Get("/", controllers.ListFeedback)
	manage.Get("/:id", controllers.GetFeedbackDetail)

	manage.Get("/:id/delete", controllers.ConfirmDeleteFeedback)
	manage.Post("/:id/delete", controllers.DeleteFeedback)

	manage.Get("/:id/edit/:section/:question", controllers.HandleEditGet)
	manage.Post("/:id/edit/:section/:question", controllers.HandleEditPost)
}
