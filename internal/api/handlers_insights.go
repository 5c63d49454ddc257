package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetAnxietySeries(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	series, err := handler.insightsService.AnxietySeriesForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load insights")
	}
	return c.JSON(series)
}

func (handler *Handler) GetSymptomSeverity(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	means, err := handler.insightsService.SymptomSeverityMeansForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load insights")
	}
	return c.JSON(fiber.Map{"symptoms": means})
}

func (handler *Handler) GetFoodSourceMeans(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	means, err := handler.insightsService.FoodSourceMeansForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load insights")
	}
	return c.JSON(fiber.Map{"sources": means})
}

func (handler *Handler) GetMedicationEffectiveness(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	effectiveness, err := handler.insightsService.MedicationEffectivenessForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load insights")
	}
	return c.JSON(effectiveness)
}

func (handler *Handler) GetOverview(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	overview, err := handler.insightsService.OverviewForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load insights")
	}
	return c.JSON(overview)
}
