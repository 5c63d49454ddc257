package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const entryCSVTimeLayout = "2006-01-02 15:04:05"

// EntryCSVHeader is the flat-file column order. Owner and row identifiers
// are never part of the tabular format.
var EntryCSVHeader = []string{
	"timestamp",
	"food_source",
	"eating_location",
	"anxiety_level",
	"breathing_difficulty",
	"swallowing_difficulty",
	"scratchy_throat",
	"stomach_pain",
	"chest_pain",
	"reflux",
	"food_eaten",
	"concerns",
	"additional_comments",
	"took_meds",
	"med_types",
	"meds_helped",
}

func (entry Entry) CSVRecord() []string {
	return []string{
		entry.CreatedAt.Format(entryCSVTimeLayout),
		entry.FoodSource,
		entry.EatingLocation,
		strconv.Itoa(entry.AnxietyLevel),
		entry.BreathingDifficulty,
		entry.SwallowingDifficulty,
		entry.ScratchyThroat,
		entry.StomachPain,
		entry.ChestPain,
		entry.Reflux,
		entry.FoodEaten,
		entry.Concerns,
		entry.AdditionalComments,
		strconv.FormatBool(entry.TookMeds),
		strings.Join(entry.MedTypes, ", "),
		strconv.FormatBool(entry.MedsHelped),
	}
}

// ParseEntryCSVRecord decodes one flat-file row back into an Entry. The row
// identifier and owner are left zero; the caller assigns them on insert.
func ParseEntryCSVRecord(record []string) (Entry, error) {
	if len(record) != len(EntryCSVHeader) {
		return Entry{}, fmt.Errorf("expected %d columns, got %d", len(EntryCSVHeader), len(record))
	}

	createdAt, err := time.ParseInLocation(entryCSVTimeLayout, record[0], time.Local)
	if err != nil {
		return Entry{}, fmt.Errorf("parse timestamp %q: %w", record[0], err)
	}

	anxietyLevel, err := strconv.Atoi(strings.TrimSpace(record[3]))
	if err != nil {
		return Entry{}, fmt.Errorf("parse anxiety_level %q: %w", record[3], err)
	}

	tookMeds, err := strconv.ParseBool(strings.TrimSpace(record[13]))
	if err != nil {
		return Entry{}, fmt.Errorf("parse took_meds %q: %w", record[13], err)
	}

	medsHelped, err := strconv.ParseBool(strings.TrimSpace(record[15]))
	if err != nil {
		return Entry{}, fmt.Errorf("parse meds_helped %q: %w", record[15], err)
	}

	return Entry{
		CreatedAt:            createdAt,
		FoodSource:           record[1],
		EatingLocation:       record[2],
		AnxietyLevel:         anxietyLevel,
		BreathingDifficulty:  record[4],
		SwallowingDifficulty: record[5],
		ScratchyThroat:       record[6],
		StomachPain:          record[7],
		ChestPain:            record[8],
		Reflux:               record[9],
		FoodEaten:            record[10],
		Concerns:             record[11],
		AdditionalComments:   record[12],
		TookMeds:             tookMeds,
		MedTypes:             splitMedTypes(record[14]),
		MedsHelped:           medsHelped,
	}, nil
}

func splitMedTypes(raw string) []string {
	medTypes := make([]string, 0, 3)
	for _, part := range strings.Split(raw, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			medTypes = append(medTypes, trimmed)
		}
	}
	return medTypes
}
