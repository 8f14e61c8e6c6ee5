package routes

import (
	"Backend-Feedback-Journey/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// journeyRoutes กำหนด route ของ journey "give feedback"
func journeyRoutes(app *fiber.App) {
	journey := app.Group("/give-feedback")

	journey.Get("/", controllers.StartJourney)

	// route เฉพาะทางต้องมาก่อน :section/:question
	journey.Get("/check-your-answers", controllers.GetCheckAnswers)
	journey.Get("/success", controllers.GetSuccess)
	journey.Post("/submit", controllers.HandleSave)

	journey.Get("/:section/:question", controllers.GetQuestion)
	journey.Post("/:section/:question", controllers.PostQuestion)
}
