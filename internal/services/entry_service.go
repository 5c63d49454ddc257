package services

import (
	"errors"

	"github.com/ashdelaney/platewise/internal/models"
)

var (
	ErrEntryNotFound    = errors.New("entry not found")
	ErrEntrySaveFailed  = errors.New("save entry failed")
	ErrEntryListFailed  = errors.New("list entries failed")
	ErrEntryClearFailed = errors.New("clear entries failed")
)

// EntryStore is the storage port both adapters implement: the SQLite-backed
// hosted table (internal/db) and the append-only flat file (internal/storage).
type EntryStore interface {
	Append(entry *models.Entry) error
	ListByOwner(userID uint) ([]models.Entry, error)
	DeleteLatest(userID uint) (bool, error)
	DeleteByID(userID uint, entryID uint) (bool, error)
	DeleteAll(userID uint) error
}

type EntryService struct {
	entries EntryStore
}

func NewEntryService(entries EntryStore) *EntryService {
	return &EntryService{entries: entries}
}

// SubmitEntry normalizes the form snapshot and persists it atomically.
// Nothing is stored when the append fails; the caller keeps the input and
// retries.
func (service *EntryService) SubmitEntry(userID uint, input EntryInput) (models.Entry, error) {
	clean := NormalizeEntryInput(input)

	entry := models.Entry{
		UserID:               userID,
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
	}
	if err := service.entries.Append(&entry); err != nil {
		return models.Entry{}, ErrEntrySaveFailed
	}
	return entry, nil
}

// ListEntries returns the owner's entries in creation order.
func (service *EntryService) ListEntries(userID uint) ([]models.Entry, error) {
	entries, err := service.entries.ListByOwner(userID)
	if err != nil {
		return nil, ErrEntryListFailed
	}
	return entries, nil
}

// ListEntriesRecentFirst returns the owner's entries newest first, the
// order the entry list is displayed in.
func (service *EntryService) ListEntriesRecentFirst(userID uint) ([]models.Entry, error) {
	entries, err := service.ListEntries(userID)
	if err != nil {
		return nil, err
	}
	for left, right := 0, len(entries)-1; left < right; left, right = left+1, right-1 {
		entries[left], entries[right] = entries[right], entries[left]
	}
	return entries, nil
}

func (service *EntryService) DeleteLatestEntry(userID uint) error {
	deleted, err := service.entries.DeleteLatest(userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEntryNotFound
	}
	return nil
}

func (service *EntryService) DeleteEntryByID(userID uint, entryID uint) error {
	deleted, err := service.entries.DeleteByID(userID, entryID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEntryNotFound
	}
	return nil
}

func (service *EntryService) ClearAllEntries(userID uint) error {
	if err := service.entries.DeleteAll(userID); err != nil {
		return ErrEntryClearFailed
	}
	return nil
}
