package api

import (
	"time"

	"github.com/ashdelaney/platewise/internal/db"
	"github.com/ashdelaney/platewise/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	repositories    *db.Repositories
	authService     *services.AuthService
	entryService    *services.EntryService
	insightsService *services.InsightsService
	exportService   *services.ExportService
}

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, cookieSecure bool) *Handler {
	return NewHandlerWithEntryStore(database, secretKey, location, cookieSecure, nil)
}

// NewHandlerWithEntryStore swaps the hosted entry table for another adapter
// of the storage port while accounts stay in the SQLite database. A nil
// store keeps the hosted table.
func NewHandlerWithEntryStore(database *gorm.DB, secretKey string, location *time.Location, cookieSecure bool, entries services.EntryStore) *Handler {
	handler := &Handler{
		secretKey:    []byte(secretKey),
		location:     location,
		cookieSecure: cookieSecure,
	}
	return handler.withDependencies(database, entries)
}

type credentialsInput struct {
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

type entryPayload struct {
	FoodSource           string   `json:"food_source" form:"food_source"`
	EatingLocation       string   `json:"eating_location" form:"eating_location"`
	AnxietyLevel         int      `json:"anxiety_level" form:"anxiety_level"`
	BreathingDifficulty  string   `json:"breathing_difficulty" form:"breathing_difficulty"`
	SwallowingDifficulty string   `json:"swallowing_difficulty" form:"swallowing_difficulty"`
	ScratchyThroat       string   `json:"scratchy_throat" form:"scratchy_throat"`
	StomachPain          string   `json:"stomach_pain" form:"stomach_pain"`
	ChestPain            string   `json:"chest_pain" form:"chest_pain"`
	Reflux               string   `json:"reflux" form:"reflux"`
	FoodEaten            string   `json:"food_eaten" form:"food_eaten"`
	Concerns             string   `json:"concerns" form:"concerns"`
	AdditionalComments   string   `json:"additional_comments" form:"additional_comments"`
	TookMeds             bool     `json:"took_meds" form:"took_meds"`
	MedTypes             []string `json:"med_types" form:"med_types"`
	MedsHelped           bool     `json:"meds_helped" form:"meds_helped"`
}
