package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/md8-habibullah/ledger-tracker/internal/models"
)

var (
	ErrPreferenceNotFound = errors.New("preference not found")
)

// preferenceRepository implements PreferenceRepositoryInterface
type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository creates a new preference repository
func NewPreferenceRepository(db *gorm.DB) PreferenceRepositoryInterface {
	return &preferenceRepository{db: db}
}

// Get retrieves a preference value by key
func (r *preferenceRepository) Get(key string) (string, error) {
	var pref models.Preference
	if err := r.db.Where("key = ?", key).First(&pref).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrPreferenceNotFound
		}
		return "", fmt.Errorf("failed to get preference: %w", err)
	}
	return pref.Value, nil
}

// Set stores a preference value, overwriting any previous value for the key
func (r *preferenceRepository) Set(key, value string) error {
	pref := models.Preference{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	if err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&pref).Error; err != nil {
		return fmt.Errorf("failed to set preference: %w", err)
	}
	return nil
}

// GetAll retrieves every stored preference as a key-value map
func (r *preferenceRepository) GetAll() (map[string]string, error) {
	var prefs []models.Preference
	if err := r.db.Find(&prefs).Error; err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}

	result := make(map[string]string, len(prefs))
	for _, p := range prefs {
		result[p.Key] = p.Value
	}
	return result, nil
}
