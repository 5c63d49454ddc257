package api

import (
	"errors"
	"strconv"

	"github.com/ashdelaney/platewise/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) CreateEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input, err := parseEntryPayload(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	entry, err := handler.entryService.SubmitEntry(user.ID, input)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save entry")
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) ListEntries(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entries, err := handler.entryService.ListEntriesRecentFirst(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load entries")
	}

	return c.JSON(fiber.Map{
		"entries": entries,
		"total":   len(entries),
	})
}

func (handler *Handler) DeleteLatestEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.entryService.DeleteLatestEntry(user.ID); err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			return apiError(c, fiber.StatusNotFound, "no entries to delete")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete entry")
	}

	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) DeleteEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entryID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || entryID == 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid entry id")
	}

	if err := handler.entryService.DeleteEntryByID(user.ID, uint(entryID)); err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			return apiError(c, fiber.StatusNotFound, "entry not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete entry")
	}

	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ClearEntries(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.entryService.ClearAllEntries(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to clear entries")
	}

	return c.JSON(fiber.Map{"ok": true})
}
