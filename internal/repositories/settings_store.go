package repositories

import (
	"fmt"

	bolt "go.etcd.io/bbolt"
)

const (
	settingsBucket = "settings"
	settingsKey    = "dishooom_settings"
)

// SettingsStore persists the single user-preferences document in a local
// bbolt file, the process-side equivalent of the browser's localStorage
// entry. Entity data is deliberately not persisted; only preferences survive
// restarts.
type SettingsStore struct {
	db *bolt.DB
}

// OpenSettingsStore opens (or creates) the settings database at path.
func OpenSettingsStore(path string) (*SettingsStore, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("open settings store: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(settingsBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init settings bucket: %w", err)
	}
	return &SettingsStore{db: db}, nil
}

// Close releases the underlying database file.
func (s *SettingsStore) Close() error {
	return s.db.Close()
}

// Load returns the stored settings document, or nil when none has been saved
// yet.
func (s *SettingsStore) Load() ([]byte, error) {
	var doc []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(settingsBucket)).Get([]byte(settingsKey)); v != nil {
			doc = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return doc, nil
}

// Save replaces the stored settings document.
func (s *SettingsStore) Save(doc []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(settingsBucket)).Put([]byte(settingsKey), doc)
	})
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Clear removes the stored document so the next read falls back to defaults.
func (s *SettingsStore) Clear() error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(settingsBucket)).Delete([]byte(settingsKey))
	})
	if err != nil {
		return fmt.Errorf("clear settings: %w", err)
	}
	return nil
}
