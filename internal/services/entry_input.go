package services

import (
	"strings"

	"github.com/ashdelaney/platewise/internal/models"
)

const (
	minAnxietyLevel = 0
	maxAnxietyLevel = 10
)

// EntryInput is the raw form snapshot captured at submission time.
type EntryInput struct {
	FoodSource           string
	EatingLocation       string
	AnxietyLevel         int
	BreathingDifficulty  string
	SwallowingDifficulty string
	ScratchyThroat       string
	StomachPain          string
	ChestPain            string
	Reflux               string
	FoodEaten            string
	Concerns             string
	AdditionalComments   string
	TookMeds             bool
	MedTypes             []string
	MedsHelped           bool
}

// NormalizeEntryInput clamps every field into its legal domain. Out-of-domain
// enum values fall back to their defaults instead of failing, so normalization
// never rejects a submission.
func NormalizeEntryInput(input EntryInput) EntryInput {
	input.FoodSource = clampSource(input.FoodSource)
	input.EatingLocation = clampSource(input.EatingLocation)
	input.AnxietyLevel = clampAnxietyLevel(input.AnxietyLevel)
	input.BreathingDifficulty = clampSeverity(input.BreathingDifficulty)
	input.SwallowingDifficulty = clampSeverity(input.SwallowingDifficulty)
	input.ScratchyThroat = clampSeverity(input.ScratchyThroat)
	input.StomachPain = clampSeverity(input.StomachPain)
	input.ChestPain = clampSeverity(input.ChestPain)
	input.Reflux = clampSeverity(input.Reflux)
	input.FoodEaten = strings.TrimSpace(input.FoodEaten)
	input.Concerns = strings.TrimSpace(input.Concerns)
	input.AdditionalComments = strings.TrimSpace(input.AdditionalComments)

	if input.TookMeds {
		input.MedTypes = clampMedTypes(input.MedTypes)
	} else {
		input.MedTypes = []string{}
		input.MedsHelped = false
	}

	return input
}

func clampAnxietyLevel(level int) int {
	if level < minAnxietyLevel {
		return minAnxietyLevel
	}
	if level > maxAnxietyLevel {
		return maxAnxietyLevel
	}
	return level
}

func clampSource(source string) string {
	if models.IsValidSource(strings.TrimSpace(source)) {
		return strings.TrimSpace(source)
	}
	return models.SourceHome
}

func clampSeverity(severity string) string {
	if models.IsValidSeverity(strings.TrimSpace(severity)) {
		return strings.TrimSpace(severity)
	}
	return models.SeverityNone
}

// clampMedTypes filters to the legal set, dropping duplicates and keeping
// the canonical Allergy, Anxiety, Other order.
func clampMedTypes(medTypes []string) []string {
	present := make(map[string]bool, len(medTypes))
	for _, medType := range medTypes {
		trimmed := strings.TrimSpace(medType)
		if models.IsValidMedType(trimmed) {
			present[trimmed] = true
		}
	}

	clean := make([]string, 0, len(present))
	for _, medType := range []string{models.MedTypeAllergy, models.MedTypeAnxiety, models.MedTypeOther} {
		if present[medType] {
			clean = append(clean, medType)
		}
	}
	return clean
}
