package services

import (
	"context"
	"strconv"

	"workday/internal/domain"
	"workday/internal/errors"
	"workday/internal/logging"
	"workday/internal/repository/sqlite"
	"workday/internal/validation"
)

// Persisted settings keys.
const (
	settingHourlyRate         = "hourly_rate"
	settingTransportFee       = "transport_fee"
	settingWeeklyLimitHours   = "weekly_limit_hours"
	settingWeeklyLimitEnabled = "weekly_limit_enabled"
	settingCopyHeader         = "copy_header"
	settingCopyFooter         = "copy_footer"
)

// settingsServiceImpl implements the SettingsService interface
type settingsServiceImpl struct {
	repo              sqlite.Repository
	settingsValidator *validation.SettingsValidator
}

// NewSettingsService creates a new SettingsService instance
func NewSettingsService(repo sqlite.Repository) SettingsService {
	return &settingsServiceImpl{
		repo:              repo,
		settingsValidator: validation.NewSettingsValidator(),
	}
}

// floatSetting reads a numeric setting. Missing or unparsable values fall
// back to zero rather than failing startup.
func (s *settingsServiceImpl) floatSetting(ctx context.Context, key string) (float64, error) {
	raw, ok, err := s.repo.GetSetting(ctx, key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		logging.Debugf("setting %s holds unparsable value %q, using 0\n", key, raw)
		return 0, nil
	}
	return value, nil
}

// boolSetting reads a boolean setting, defaulting to false.
func (s *settingsServiceImpl) boolSetting(ctx context.Context, key string) (bool, error) {
	raw, ok, err := s.repo.GetSetting(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		logging.Debugf("setting %s holds unparsable value %q, using false\n", key, raw)
		return false, nil
	}
	return value, nil
}

// stringSetting reads a text setting, defaulting to empty.
func (s *settingsServiceImpl) stringSetting(ctx context.Context, key string) (string, error) {
	raw, _, err := s.repo.GetSetting(ctx, key)
	return raw, err
}

// Load reads the full settings record. Each value is read independently and
// malformed entries degrade to their defaults.
func (s *settingsServiceImpl) Load(ctx context.Context) (*domain.Settings, error) {
	settings := &domain.Settings{}
	var err error

	if settings.HourlyRate, err = s.floatSetting(ctx, settingHourlyRate); err != nil {
		return nil, err
	}
	if settings.TransportFee, err = s.floatSetting(ctx, settingTransportFee); err != nil {
		return nil, err
	}
	if settings.WeeklyLimitHours, err = s.floatSetting(ctx, settingWeeklyLimitHours); err != nil {
		return nil, err
	}
	if settings.WeeklyLimitEnabled, err = s.boolSetting(ctx, settingWeeklyLimitEnabled); err != nil {
		return nil, err
	}
	if settings.CopyHeader, err = s.stringSetting(ctx, settingCopyHeader); err != nil {
		return nil, err
	}
	if settings.CopyFooter, err = s.stringSetting(ctx, settingCopyFooter); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save validates and writes the full settings record, one key at a time.
func (s *settingsServiceImpl) Save(ctx context.Context, settings domain.Settings) error {
	if err := s.settingsValidator.ValidateSettings(settings); err != nil {
		return errors.NewValidationError("invalid settings", err)
	}

	values := map[string]string{
		settingHourlyRate:         strconv.FormatFloat(settings.HourlyRate, 'f', -1, 64),
		settingTransportFee:       strconv.FormatFloat(settings.TransportFee, 'f', -1, 64),
		settingWeeklyLimitHours:   strconv.FormatFloat(settings.WeeklyLimitHours, 'f', -1, 64),
		settingWeeklyLimitEnabled: strconv.FormatBool(settings.WeeklyLimitEnabled),
		settingCopyHeader:         settings.CopyHeader,
		settingCopyFooter:         settings.CopyFooter,
	}

	for _, key := range []string{
		settingHourlyRate,
		settingTransportFee,
		settingWeeklyLimitHours,
		settingWeeklyLimitEnabled,
		settingCopyHeader,
		settingCopyFooter,
	} {
		if err := s.repo.SetSetting(ctx, key, values[key]); err != nil {
			return err
		}
	}

	return nil
}
