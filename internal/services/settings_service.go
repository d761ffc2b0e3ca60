package services

import (
	"errors"
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/mapstructure"

	"dishooom_backend/internal/models"
	"dishooom_backend/internal/repositories"
	"dishooom_backend/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// --- Custom Service Errors for Settings ---
var (
	ErrUnknownSettingsSection = errors.New("unknown settings section")
	ErrInvalidSettingsFile    = errors.New("invalid settings file format")
)

// Settings section names accepted by UpdateSection and Reset.
const (
	SectionProfile       = "profile"
	SectionNotifications = "notifications"
	SectionData          = "data"
	SectionSecurity      = "security"
	SectionAppearance    = "appearance"
)

// --- SettingsService Interface ---
type SettingsService interface {
	Get() (models.Settings, error)
	UpdateSection(section string, data map[string]interface{}) (models.Settings, error)
	Reset(section string) (models.Settings, error)
	Export(path string) error
	Import(path string) (models.Settings, error)
}

// --- settingsService Implementation ---
type settingsService struct {
	store *repositories.SettingsStore
}

// NewSettingsService creates a new instance of SettingsService.
func NewSettingsService(store *repositories.SettingsStore) SettingsService {
	return &settingsService{store: store}
}

// Get returns the stored settings merged over the documented defaults. A
// corrupt stored document falls back to defaults rather than failing; the
// preferences document is never allowed to take the app down.
func (s *settingsService) Get() (models.Settings, error) {
	settings := models.DefaultSettings()
	doc, err := s.store.Load()
	if err != nil {
		return settings, err
	}
	if len(doc) > 0 {
		if err := json.Unmarshal(doc, &settings); err != nil {
			utils.LogWarn(err, "Stored settings document is corrupt, using defaults")
			return models.DefaultSettings(), nil
		}
	}
	return settings, nil
}

// UpdateSection shallow-merges data into one named section. Values are
// decoded weakly, so "30" is accepted where an int is expected.
func (s *settingsService) UpdateSection(section string, data map[string]interface{}) (models.Settings, error) {
	current, err := s.Get()
	if err != nil {
		return models.Settings{}, err
	}

	raw, err := json.Marshal(current)
	if err != nil {
		return models.Settings{}, fmt.Errorf("encode settings: %w", err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return models.Settings{}, fmt.Errorf("decode settings: %w", err)
	}

	sectionDoc, ok := doc[section].(map[string]interface{})
	if !ok {
		return models.Settings{}, fmt.Errorf("%w: %q", ErrUnknownSettingsSection, section)
	}
	for k, v := range data {
		sectionDoc[k] = v
	}
	doc[section] = sectionDoc

	var merged models.Settings
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &merged,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return models.Settings{}, err
	}
	if err := decoder.Decode(doc); err != nil {
		return models.Settings{}, fmt.Errorf("%w: %v", ErrInvalidSettingsFile, err)
	}

	return merged, s.save(merged)
}

// Reset restores one section to its defaults, or the whole document when
// section is empty.
func (s *settingsService) Reset(section string) (models.Settings, error) {
	defaults := models.DefaultSettings()
	if section == "" {
		return defaults, s.save(defaults)
	}

	current, err := s.Get()
	if err != nil {
		return models.Settings{}, err
	}
	switch section {
	case SectionProfile:
		current.Profile = defaults.Profile
	case SectionNotifications:
		current.Notifications = defaults.Notifications
	case SectionData:
		current.Data = defaults.Data
	case SectionSecurity:
		current.Security = defaults.Security
	case SectionAppearance:
		current.Appearance = defaults.Appearance
	default:
		return models.Settings{}, fmt.Errorf("%w: %q", ErrUnknownSettingsSection, section)
	}
	return current, s.save(current)
}

// Export writes the effective settings document to path as indented JSON.
func (s *settingsService) Export(path string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	doc, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return fmt.Errorf("export settings: %w", err)
	}
	return nil
}

// Import replaces the stored document with the file's content merged over
// defaults, so partial exports from older versions stay usable.
func (s *settingsService) Import(path string) (models.Settings, error) {
	doc, err := os.ReadFile(path)
	if err != nil {
		return models.Settings{}, fmt.Errorf("import settings: %w", err)
	}
	settings := models.DefaultSettings()
	if err := json.Unmarshal(doc, &settings); err != nil {
		return models.Settings{}, fmt.Errorf("%w: %v", ErrInvalidSettingsFile, err)
	}
	return settings, s.save(settings)
}

func (s *settingsService) save(settings models.Settings) error {
	doc, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return s.store.Save(doc)
}
