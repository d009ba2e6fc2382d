package metadata

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// --- Generic Accessors ---

// GetValue retrieves a value for a given key from the metadata table.
func GetValue(db *gorm.DB, key string) (string, error) {
	var meta Metadata
	err := db.Where("key = ?", key).First(&meta).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// If the key doesn't exist, return an empty string, which is a valid default.
			return "", nil
		}
		return "", err
	}
	return meta.Value, nil
}

// SetValue creates or updates a value for a given key within a transaction.
func SetValue(db *gorm.DB, key, value string) error {
	// Use GORM's OnConflict clause for an efficient and atomic "upsert" operation.
	// It will update the 'value' column if a record with the same 'key' already exists.
	meta := Metadata{
		Key:   key,
		Value: value,
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&meta).Error
}

// --- Specific Helpers for Type Conversion ---

// GetTimestamp retrieves and parses an RFC3339 timestamp value.
// A missing key yields the zero time.
func GetTimestamp(db *gorm.DB, key string) (time.Time, error) {
	valueStr, err := GetValue(db, key)
	if err != nil {
		return time.Time{}, err
	}
	if valueStr == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, valueStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("无法解析元数据 '%s' 的值: %w", key, err)
	}
	return t, nil
}

// SetTimestamp formats and sets an RFC3339 timestamp value.
func SetTimestamp(db *gorm.DB, key string, t time.Time) error {
	return SetValue(db, key, t.Format(time.RFC3339))
}

// GetCatalogSize retrieves and parses the recorded catalog size.
func GetCatalogSize(db *gorm.DB) (int, error) {
	valueStr, err := GetValue(db, CatalogSizeKey)
	if err != nil {
		return 0, err
	}
	if valueStr == "" {
		return 0, nil
	}
	size, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("无法解析元数据 '%s' 的值: %w", CatalogSizeKey, err)
	}
	return size, nil
}

// SetCatalogSize formats and sets the recorded catalog size.
func SetCatalogSize(db *gorm.DB, size int) error {
	return SetValue(db, CatalogSizeKey, strconv.Itoa(size))
}
