package services

import (
	"context"

	"workday/internal/domain"
	"workday/internal/errors"
	"workday/internal/logging"
	"workday/internal/repository/sqlite"
	"workday/internal/validation"
)

// scheduleServiceImpl implements the ScheduleService interface
type scheduleServiceImpl struct {
	repo           sqlite.Repository
	settings       SettingsService
	reports        ReportService
	mapper         *domain.Mapper
	labelValidator *validation.LabelValidator
}

// NewScheduleService creates a new ScheduleService instance
func NewScheduleService(repo sqlite.Repository, settings SettingsService, reports ReportService) ScheduleService {
	return &scheduleServiceImpl{
		repo:           repo,
		settings:       settings,
		reports:        reports,
		mapper:         domain.NewMapper(),
		labelValidator: validation.NewLabelValidator(),
	}
}

// labelsByID loads the registry into a lookup map.
func (s *scheduleServiceImpl) labelsByID(ctx context.Context) (map[int64]*domain.Label, error) {
	dbLabels, err := s.repo.ListLabels(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*domain.Label, len(dbLabels))
	for _, dbLabel := range dbLabels {
		domainLabel := s.mapper.Label.FromDatabase(*dbLabel)
		byID[domainLabel.ID] = &domainLabel
	}
	return byID, nil
}

// validateDateAndLabel runs the shared argument checks for assignment operations.
func (s *scheduleServiceImpl) validateDateAndLabel(date string, labelID int64) error {
	if err := s.labelValidator.ValidateDateKey(date); err != nil {
		return errors.NewValidationError("invalid date", err)
	}
	if err := s.labelValidator.ValidateLabelID(labelID); err != nil {
		return errors.NewValidationError("invalid label ID", err)
	}
	return nil
}

// Assign validates and appends a label to a date's sequence.
//
// The overlap check compares derived time ranges; the weekly-limit check uses
// the label's stored duration. The two can diverge when clock fields were
// edited without updating the duration. That mismatch is intentional.
func (s *scheduleServiceImpl) Assign(ctx context.Context, date string, labelID int64) error {
	if err := s.validateDateAndLabel(date, labelID); err != nil {
		return err
	}

	registry, err := s.labelsByID(ctx)
	if err != nil {
		return err
	}

	label, ok := registry[labelID]
	if !ok {
		return errors.NewNotFoundError("label", formatID(labelID))
	}

	// Overlap detection, skipped for labels without a derivable range.
	if candidate := label.TimeRange(); candidate != nil {
		assigned, err := s.repo.ListAssignments(ctx, date)
		if err != nil {
			return err
		}
		for _, existingID := range assigned {
			existing, ok := registry[existingID]
			if !ok {
				continue // stale reference
			}
			existingRange := existing.TimeRange()
			if existingRange == nil {
				continue
			}
			if candidate.Overlaps(*existingRange) {
				return errors.NewOverlapConflictError(date, labelID)
			}
		}
	}

	// Weekly limit check over the Sunday-start week containing the date.
	cfg, err := s.settings.Load(ctx)
	if err != nil {
		return err
	}
	if cfg.WeeklyLimitEnabled {
		weekly, err := s.reports.WeeklyHours(ctx, date)
		if err != nil {
			return err
		}
		total := weekly + label.Duration
		if total > cfg.WeeklyLimitHours {
			return errors.NewWeeklyLimitExceededError(cfg.WeeklyLimitHours, total)
		}
	}

	logging.Debugf("assigning label %d to %s\n", labelID, date)
	return s.repo.AppendAssignment(ctx, date, labelID)
}

// Unassign removes the first occurrence of a label from a date's sequence.
// It is idempotent: removing an absent label does nothing and never fails.
func (s *scheduleServiceImpl) Unassign(ctx context.Context, date string, labelID int64) error {
	if err := s.validateDateAndLabel(date, labelID); err != nil {
		return err
	}

	removed, err := s.repo.RemoveAssignment(ctx, date, labelID)
	if err != nil {
		return err
	}
	if !removed {
		logging.Debugf("label %d was not assigned to %s\n", labelID, date)
	}
	return nil
}

// ClearAll empties the entire assignment map.
func (s *scheduleServiceImpl) ClearAll(ctx context.Context) error {
	return s.repo.ClearAssignments(ctx)
}

// CascadeDeleteLabel removes a label id from every date's sequence.
func (s *scheduleServiceImpl) CascadeDeleteLabel(ctx context.Context, labelID int64) error {
	if err := s.labelValidator.ValidateLabelID(labelID); err != nil {
		return errors.NewValidationError("invalid label ID", err)
	}
	return s.repo.RemoveAssignmentsForLabel(ctx, labelID)
}

// AssignmentsForDate returns the resolved labels assigned to a date in
// insertion order. Ids missing from the registry are silently skipped.
func (s *scheduleServiceImpl) AssignmentsForDate(ctx context.Context, date string) ([]*domain.Label, error) {
	if err := s.labelValidator.ValidateDateKey(date); err != nil {
		return nil, errors.NewValidationError("invalid date", err)
	}

	registry, err := s.labelsByID(ctx)
	if err != nil {
		return nil, err
	}

	ids, err := s.repo.ListAssignments(ctx, date)
	if err != nil {
		return nil, err
	}

	labels := make([]*domain.Label, 0, len(ids))
	for _, id := range ids {
		if label, ok := registry[id]; ok {
			labels = append(labels, label)
		}
	}
	return labels, nil
}
