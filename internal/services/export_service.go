package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/ashdelaney/platewise/internal/models"
)

const exportDateLayout = "2006-01-02"

var ErrExportHeaderMismatch = errors.New("unexpected csv header")

type ExportEntryReader interface {
	ListByOwner(userID uint) ([]models.Entry, error)
}

type ExportEntryAppender interface {
	Append(entry *models.Entry) error
}

// ExportService serializes a user's table to the flat tabular format and
// restores it from the same format. Owner and row identifiers are stripped
// on the way out and reassigned on the way in.
type ExportService struct {
	entries  ExportEntryReader
	appender ExportEntryAppender
}

type ExportSummary struct {
	TotalEntries int    `json:"total_entries"`
	HasData      bool   `json:"has_data"`
	DateFrom     string `json:"date_from,omitempty"`
	DateTo       string `json:"date_to,omitempty"`
}

func NewExportService(entries ExportEntryReader, appender ExportEntryAppender) *ExportService {
	return &ExportService{
		entries:  entries,
		appender: appender,
	}
}

func (service *ExportService) BuildSummary(userID uint) (ExportSummary, error) {
	entries, err := service.entries.ListByOwner(userID)
	if err != nil {
		return ExportSummary{}, err
	}
	if len(entries) == 0 {
		return ExportSummary{}, nil
	}

	first := entries[0].CreatedAt
	last := entries[0].CreatedAt
	for _, entry := range entries[1:] {
		if entry.CreatedAt.Before(first) {
			first = entry.CreatedAt
		}
		if entry.CreatedAt.After(last) {
			last = entry.CreatedAt
		}
	}

	return ExportSummary{
		TotalEntries: len(entries),
		HasData:      true,
		DateFrom:     first.Format(exportDateLayout),
		DateTo:       last.Format(exportDateLayout),
	}, nil
}

func (service *ExportService) WriteCSV(writer io.Writer, userID uint) error {
	entries, err := service.entries.ListByOwner(userID)
	if err != nil {
		return err
	}

	csvWriter := csv.NewWriter(writer)
	if err := csvWriter.Write(models.EntryCSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, entry := range entries {
		if err := csvWriter.Write(entry.CSVRecord()); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

// ImportCSV restores entries from a previously exported file into the
// caller's table. Each row passes through the same boundary normalization
// as a live submission; the stored timestamp is preserved. The whole file
// is parsed before anything is appended, so a malformed row leaves the
// table untouched and the caller can fix the file and retry.
func (service *ExportService) ImportCSV(reader io.Reader, userID uint) (int, error) {
	csvReader := csv.NewReader(reader)

	header, err := csvReader.Read()
	if err != nil {
		return 0, fmt.Errorf("read csv header: %w", err)
	}
	if !matchesEntryHeader(header) {
		return 0, ErrExportHeaderMismatch
	}

	entries := make([]models.Entry, 0)
	for {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read csv row: %w", err)
		}

		parsed, err := models.ParseEntryCSVRecord(record)
		if err != nil {
			return 0, err
		}

		clean := NormalizeEntryInput(entryToInput(parsed))
		entries = append(entries, models.Entry{
			UserID:               userID,
			CreatedAt:            parsed.CreatedAt,
			FoodSource:           clean.FoodSource,
			EatingLocation:       clean.EatingLocation,
			AnxietyLevel:         clean.AnxietyLevel,
			BreathingDifficulty:  clean.BreathingDifficulty,
			SwallowingDifficulty: clean.SwallowingDifficulty,
			ScratchyThroat:       clean.ScratchyThroat,
			StomachPain:          clean.StomachPain,
			ChestPain:            clean.ChestPain,
			Reflux:               clean.Reflux,
			FoodEaten:            clean.FoodEaten,
			Concerns:             clean.Concerns,
			AdditionalComments:   clean.AdditionalComments,
			TookMeds:             clean.TookMeds,
			MedTypes:             clean.MedTypes,
			MedsHelped:           clean.MedsHelped,
		})
	}

	imported := 0
	for index := range entries {
		if err := service.appender.Append(&entries[index]); err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}

func matchesEntryHeader(header []string) bool {
	if len(header) != len(models.EntryCSVHeader) {
		return false
	}
	for index, column := range models.EntryCSVHeader {
		if header[index] != column {
			return false
		}
	}
	return true
}

func entryToInput(entry models.Entry) EntryInput {
	return EntryInput{
		FoodSource:           entry.FoodSource,
		EatingLocation:       entry.EatingLocation,
		AnxietyLevel:         entry.AnxietyLevel,
		BreathingDifficulty:  entry.BreathingDifficulty,
		SwallowingDifficulty: entry.SwallowingDifficulty,
		ScratchyThroat:       entry.ScratchyThroat,
		StomachPain:          entry.StomachPain,
		ChestPain:            entry.ChestPain,
		Reflux:               entry.Reflux,
		FoodEaten:            entry.FoodEaten,
		Concerns:             entry.Concerns,
		AdditionalComments:   entry.AdditionalComments,
		TookMeds:             entry.TookMeds,
		MedTypes:             entry.MedTypes,
		MedsHelped:           entry.MedsHelped,
	}
}
