package models

import "time"

// Food source and eating location share the same two-value domain.
const (
	SourceHome = "Home"
	SourceOut  = "Out"
)

const (
	SeverityNone     = "None"
	SeverityMild     = "Mild"
	SeverityModerate = "Moderate"
	SeveritySevere   = "Severe"
)

const (
	MedTypeAllergy = "Allergy"
	MedTypeAnxiety = "Anxiety"
	MedTypeOther   = "Other"
)

// Entry is one submitted observation. Entries are immutable after creation;
// the only mutation the system supports is whole-record deletion.
type Entry struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	UserID               uint      `gorm:"not null;index:idx_entries_user_created" json:"-"`
	CreatedAt            time.Time `gorm:"not null;index:idx_entries_user_created" json:"timestamp"`
	FoodSource           string    `gorm:"not null;default:Home" json:"food_source"`
	EatingLocation       string    `gorm:"not null;default:Home" json:"eating_location"`
	AnxietyLevel         int       `gorm:"not null;default:0" json:"anxiety_level"`
	BreathingDifficulty  string    `gorm:"not null;default:None" json:"breathing_difficulty"`
	SwallowingDifficulty string    `gorm:"not null;default:None" json:"swallowing_difficulty"`
	ScratchyThroat       string    `gorm:"not null;default:None" json:"scratchy_throat"`
	StomachPain          string    `gorm:"not null;default:None" json:"stomach_pain"`
	ChestPain            string    `gorm:"not null;default:None" json:"chest_pain"`
	Reflux               string    `gorm:"not null;default:None" json:"reflux"`
	FoodEaten            string    `gorm:"not null;default:''" json:"food_eaten"`
	Concerns             string    `gorm:"not null;default:''" json:"concerns"`
	AdditionalComments   string    `gorm:"not null;default:''" json:"additional_comments"`
	TookMeds             bool      `gorm:"not null;default:false" json:"took_meds"`
	MedTypes             []string  `gorm:"serializer:json" json:"med_types"`
	MedsHelped           bool      `gorm:"not null;default:false" json:"meds_helped"`
}

// SymptomFields lists the six severity fields in form order.
func SymptomFields() []string {
	return []string{
		"breathing_difficulty",
		"swallowing_difficulty",
		"scratchy_throat",
		"stomach_pain",
		"chest_pain",
		"reflux",
	}
}

// SymptomSeverity returns the stored severity value for one of the six
// symptom field names. Unknown field names read as None.
func (entry Entry) SymptomSeverity(field string) string {
	switch field {
	case "breathing_difficulty":
		return entry.BreathingDifficulty
	case "swallowing_difficulty":
		return entry.SwallowingDifficulty
	case "scratchy_throat":
		return entry.ScratchyThroat
	case "stomach_pain":
		return entry.StomachPain
	case "chest_pain":
		return entry.ChestPain
	case "reflux":
		return entry.Reflux
	default:
		return SeverityNone
	}
}

var severityScores = map[string]int{
	SeverityNone:     0,
	SeverityMild:     1,
	SeverityModerate: 2,
	SeveritySevere:   3,
}

// SeverityScore maps the ordinal severity enum onto 0..3 for aggregation.
// Unknown values score 0 rather than failing.
func SeverityScore(severity string) int {
	return severityScores[severity]
}

func IsValidSeverity(severity string) bool {
	_, ok := severityScores[severity]
	return ok
}

func IsValidSource(source string) bool {
	return source == SourceHome || source == SourceOut
}

func IsValidMedType(medType string) bool {
	switch medType {
	case MedTypeAllergy, MedTypeAnxiety, MedTypeOther:
		return true
	default:
		return false
	}
}
