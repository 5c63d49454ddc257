package api

import (
	"github.com/ashdelaney/platewise/internal/db"
	"github.com/ashdelaney/platewise/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB, entries services.EntryStore) *Handler {
	handler.repositories = db.NewRepositories(database)
	if entries == nil {
		entries = handler.repositories.Entries
	}
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.entryService = services.NewEntryService(entries)
	handler.insightsService = services.NewInsightsService(entries)
	handler.exportService = services.NewExportService(entries, entries)
	return handler
}
