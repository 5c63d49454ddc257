package api

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/ashdelaney/platewise/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ExportSummary(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	summary, err := handler.exportService.BuildSummary(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export summary")
	}
	return c.JSON(summary)
}

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var output bytes.Buffer
	if err := handler.exportService.WriteCSV(&output, user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to export data")
	}

	fileName := fmt.Sprintf("food_anxiety_data_%s.csv", time.Now().In(handler.location).Format("20060102_150405"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	return c.Send(output.Bytes())
}

func (handler *Handler) ImportCSV(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	body := c.Body()
	if len(body) == 0 {
		return apiError(c, fiber.StatusBadRequest, "empty import file")
	}

	imported, err := handler.exportService.ImportCSV(bytes.NewReader(body), user.ID)
	if err != nil {
		if errors.Is(err, services.ErrExportHeaderMismatch) {
			return apiError(c, fiber.StatusBadRequest, "unexpected csv header")
		}
		return apiError(c, fiber.StatusBadRequest, "invalid import file")
	}

	return c.JSON(fiber.Map{"imported": imported})
}
