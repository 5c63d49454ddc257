package db

import (
	"github.com/ashdelaney/platewise/internal/models"
	"gorm.io/gorm"
)

// EntryRepository is the hosted-table adapter of the entry storage port.
type EntryRepository struct {
	database *gorm.DB
}

func NewEntryRepository(database *gorm.DB) *EntryRepository {
	return &EntryRepository{database: database}
}

func (repo *EntryRepository) Append(entry *models.Entry) error {
	return repo.database.Create(entry).Error
}

// ListByOwner returns the owner's entries in creation order.
func (repo *EntryRepository) ListByOwner(userID uint) ([]models.Entry, error) {
	entries := make([]models.Entry, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *EntryRepository) DeleteLatest(userID uint) (bool, error) {
	var latest models.Entry
	result := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(1).
		Find(&latest)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	if err := repo.database.Delete(&models.Entry{}, latest.ID).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (repo *EntryRepository) DeleteByID(userID uint, entryID uint) (bool, error) {
	result := repo.database.
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.Entry{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *EntryRepository) DeleteAll(userID uint) error {
	return repo.database.Where("user_id = ?", userID).Delete(&models.Entry{}).Error
}
