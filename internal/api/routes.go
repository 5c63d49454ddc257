package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	entries := api.Group("/entries", handler.AuthRequired)
	entries.Post("", handler.CreateEntry)
	entries.Get("", handler.ListEntries)
	entries.Delete("/latest", handler.DeleteLatestEntry)
	entries.Delete("/:id", handler.DeleteEntry)
	entries.Delete("", handler.ClearEntries)

	insights := api.Group("/insights", handler.AuthRequired)
	insights.Get("/anxiety-series", handler.GetAnxietySeries)
	insights.Get("/symptom-severity", handler.GetSymptomSeverity)
	insights.Get("/food-source", handler.GetFoodSourceMeans)
	insights.Get("/medication", handler.GetMedicationEffectiveness)
	insights.Get("/overview", handler.GetOverview)

	export := api.Group("/export", handler.AuthRequired)
	export.Get("/summary", handler.ExportSummary)
	export.Get("/csv", handler.ExportCSV)

	api.Post("/import/csv", handler.AuthRequired, handler.ImportCSV)
}
