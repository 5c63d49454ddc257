package services

import (
	"time"

	"github.com/ashdelaney/platewise/internal/models"
)

// InsightsEntryReader is the read side of the storage port the aggregator
// depends on.
type InsightsEntryReader interface {
	ListByOwner(userID uint) ([]models.Entry, error)
}

// InsightsService computes the chart-ready views over a user's entries.
// Every Build* helper is a pure function over the entry slice; an empty
// input produces the view's explicit empty state, never an error.
type InsightsService struct {
	entries InsightsEntryReader
}

func NewInsightsService(entries InsightsEntryReader) *InsightsService {
	return &InsightsService{entries: entries}
}

type AnxietyPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Level     int       `json:"level"`
}

// AnxietySeries is the anxiety-over-time view. HasEnoughData is false with
// fewer than two points; the points that do exist are still returned so the
// caller can render the insufficient-data state.
type AnxietySeries struct {
	Points        []AnxietyPoint `json:"points"`
	HasEnoughData bool           `json:"has_enough_data"`
}

type SymptomMean struct {
	Symptom      string  `json:"symptom"`
	MeanSeverity float64 `json:"mean_severity"`
}

type FoodSourceMean struct {
	Source      string  `json:"source"`
	MeanAnxiety float64 `json:"mean_anxiety"`
}

// MedicationEffectiveness is computed over the entries where meds were
// taken. HasData is false when there are none; otherwise the two
// percentages are exact complements summing to 100.
type MedicationEffectiveness struct {
	HasData           bool    `json:"has_data"`
	TotalWithMeds     int     `json:"total_with_meds"`
	HelpedCount       int     `json:"helped_count"`
	HelpedPercent     float64 `json:"helped_percent"`
	DidNotHelpPercent float64 `json:"did_not_help_percent"`
}

type Overview struct {
	TotalEntries    int     `json:"total_entries"`
	AverageAnxiety  float64 `json:"average_anxiety"`
	TimesMedsTaken  int     `json:"times_meds_taken"`
	HomeFoodPercent float64 `json:"home_food_percent"`
}

func (service *InsightsService) AnxietySeriesForUser(userID uint) (AnxietySeries, error) {
	entries, err := service.entries.ListByOwner(userID)
	if err != nil {
		return AnxietySeries{}, err
	}
	return BuildAnxietySeries(entries), nil
}

func (service *InsightsService) SymptomSeverityMeansForUser(userID uint) ([]SymptomMean, error) {
	entries, err := service.entries.ListByOwner(userID)
	if err != nil {
		return nil, err
	}
	return BuildSymptomSeverityMeans(entries), nil
}

func (service *InsightsService) FoodSourceMeansForUser(userID uint) ([]FoodSourceMean, error) {
	entries, err := service.entries.ListByOwner(userID)
	if err != nil {
		return nil, err
	}
	return BuildFoodSourceMeans(entries), nil
}

func (service *InsightsService) MedicationEffectivenessForUser(userID uint) (MedicationEffectiveness, error) {
	entries, err := service.entries.ListByOwner(userID)
	if err != nil {
		return MedicationEffectiveness{}, err
	}
	return BuildMedicationEffectiveness(entries), nil
}

func (service *InsightsService) OverviewForUser(userID uint) (Overview, error) {
	entries, err := service.entries.ListByOwner(userID)
	if err != nil {
		return Overview{}, err
	}
	return BuildOverview(entries), nil
}

// BuildAnxietySeries returns (timestamp, anxiety) points in chronological
// order. The input is already creation-ordered by the store.
func BuildAnxietySeries(entries []models.Entry) AnxietySeries {
	points := make([]AnxietyPoint, 0, len(entries))
	for _, entry := range entries {
		points = append(points, AnxietyPoint{
			Timestamp: entry.CreatedAt,
			Level:     entry.AnxietyLevel,
		})
	}
	return AnxietySeries{
		Points:        points,
		HasEnoughData: len(points) >= 2,
	}
}

// BuildSymptomSeverityMeans averages the 0..3 severity score per symptom
// field across all entries, in form order. With no entries the result is
// empty rather than zero-filled.
func BuildSymptomSeverityMeans(entries []models.Entry) []SymptomMean {
	if len(entries) == 0 {
		return []SymptomMean{}
	}

	means := make([]SymptomMean, 0, len(models.SymptomFields()))
	for _, field := range models.SymptomFields() {
		total := 0
		for _, entry := range entries {
			total += models.SeverityScore(entry.SymptomSeverity(field))
		}
		means = append(means, SymptomMean{
			Symptom:      field,
			MeanSeverity: float64(total) / float64(len(entries)),
		})
	}
	return means
}

// BuildFoodSourceMeans partitions entries by food source and averages the
// anxiety level per partition. Only observed sources appear.
func BuildFoodSourceMeans(entries []models.Entry) []FoodSourceMean {
	totals := make(map[string]int)
	counts := make(map[string]int)
	for _, entry := range entries {
		totals[entry.FoodSource] += entry.AnxietyLevel
		counts[entry.FoodSource]++
	}

	means := make([]FoodSourceMean, 0, len(counts))
	for _, source := range []string{models.SourceHome, models.SourceOut} {
		count := counts[source]
		if count == 0 {
			continue
		}
		means = append(means, FoodSourceMean{
			Source:      source,
			MeanAnxiety: float64(totals[source]) / float64(count),
		})
	}
	return means
}

func BuildMedicationEffectiveness(entries []models.Entry) MedicationEffectiveness {
	totalWithMeds := 0
	helpedCount := 0
	for _, entry := range entries {
		if !entry.TookMeds {
			continue
		}
		totalWithMeds++
		if entry.MedsHelped {
			helpedCount++
		}
	}

	if totalWithMeds == 0 {
		return MedicationEffectiveness{HasData: false}
	}

	helpedPercent := float64(helpedCount) / float64(totalWithMeds) * 100
	return MedicationEffectiveness{
		HasData:           true,
		TotalWithMeds:     totalWithMeds,
		HelpedCount:       helpedCount,
		HelpedPercent:     helpedPercent,
		DidNotHelpPercent: 100 - helpedPercent,
	}
}

func BuildOverview(entries []models.Entry) Overview {
	if len(entries) == 0 {
		return Overview{}
	}

	anxietyTotal := 0
	medsTaken := 0
	homeFood := 0
	for _, entry := range entries {
		anxietyTotal += entry.AnxietyLevel
		if entry.TookMeds {
			medsTaken++
		}
		if entry.FoodSource == models.SourceHome {
			homeFood++
		}
	}

	return Overview{
		TotalEntries:    len(entries),
		AverageAnxiety:  float64(anxietyTotal) / float64(len(entries)),
		TimesMedsTaken:  medsTaken,
		HomeFoodPercent: float64(homeFood) / float64(len(entries)) * 100,
	}
}
