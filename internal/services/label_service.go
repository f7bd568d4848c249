package services

import (
	"context"

	"workday/internal/domain"
	"workday/internal/errors"
	"workday/internal/logging"
	"workday/internal/repository/sqlite"
	"workday/internal/validation"
)

// labelServiceImpl implements the LabelService interface
type labelServiceImpl struct {
	repo           sqlite.Repository
	mapper         *domain.Mapper
	labelValidator *validation.LabelValidator
}

// NewLabelService creates a new LabelService instance
func NewLabelService(repo sqlite.Repository) LabelService {
	return &labelServiceImpl{
		repo:           repo,
		mapper:         domain.NewMapper(),
		labelValidator: validation.NewLabelValidator(),
	}
}

// prepareLabel trims the name, validates the fields and derives a duration
// when none was supplied. Explicit clock fields win over the name pattern;
// an explicitly supplied duration is never overwritten.
func (l *labelServiceImpl) prepareLabel(label domain.Label) (domain.Label, error) {
	label.Name = validation.NewValidator().TrimAndValidateString(label.Name)

	if err := l.labelValidator.ValidateLabel(label); err != nil {
		return domain.Label{}, errors.NewValidationError("invalid label", err)
	}

	if label.Duration == 0 {
		if r := label.TimeRange(); r != nil {
			if hours := r.Hours(); hours > 0 {
				label.Duration = hours
			}
		}
	}

	return label, nil
}

// CreateLabel creates a new label with a fresh unique id.
func (l *labelServiceImpl) CreateLabel(ctx context.Context, label domain.Label) (*domain.Label, error) {
	prepared, err := l.prepareLabel(label)
	if err != nil {
		return nil, err
	}

	dbLabel := l.mapper.Label.ToDatabase(prepared)
	dbLabel.ID = 0
	if err := l.repo.CreateLabel(ctx, &dbLabel); err != nil {
		return nil, err
	}

	domainLabel := l.mapper.Label.FromDatabase(dbLabel)
	return &domainLabel, nil
}

// GetLabel retrieves a label by its ID
func (l *labelServiceImpl) GetLabel(ctx context.Context, id int64) (*domain.Label, error) {
	if err := l.labelValidator.ValidateLabelID(id); err != nil {
		return nil, errors.NewValidationError("invalid label ID", err)
	}

	dbLabel, err := l.repo.GetLabel(ctx, id)
	if err != nil {
		return nil, err
	}

	domainLabel := l.mapper.Label.FromDatabase(*dbLabel)
	return &domainLabel, nil
}

// ListLabels retrieves all labels in creation order.
func (l *labelServiceImpl) ListLabels(ctx context.Context) ([]*domain.Label, error) {
	dbLabels, err := l.repo.ListLabels(ctx)
	if err != nil {
		return nil, err
	}
	return l.mapper.Label.FromDatabaseSlice(dbLabels), nil
}

// UpdateLabel replaces all mutable fields of a label, preserving its id.
func (l *labelServiceImpl) UpdateLabel(ctx context.Context, id int64, fields domain.Label) (*domain.Label, error) {
	if err := l.labelValidator.ValidateLabelID(id); err != nil {
		return nil, errors.NewValidationError("invalid label ID", err)
	}

	// Check if label exists
	if _, err := l.repo.GetLabel(ctx, id); err != nil {
		return nil, err
	}

	prepared, err := l.prepareLabel(fields)
	if err != nil {
		return nil, err
	}
	prepared.ID = id

	dbLabel := l.mapper.Label.ToDatabase(prepared)
	if err := l.repo.UpdateLabel(ctx, &dbLabel); err != nil {
		return nil, err
	}

	domainLabel := l.mapper.Label.FromDatabase(dbLabel)
	return &domainLabel, nil
}

// DeleteLabelWithAssignments deletes a label and removes it from every date
// assignment. Registry and assignment map are never left referencing a
// deleted label.
func (l *labelServiceImpl) DeleteLabelWithAssignments(ctx context.Context, id int64) error {
	if err := l.labelValidator.ValidateLabelID(id); err != nil {
		return errors.NewValidationError("invalid label ID", err)
	}

	// Check if label exists
	if _, err := l.repo.GetLabel(ctx, id); err != nil {
		return err
	}

	if err := l.repo.RemoveAssignmentsForLabel(ctx, id); err != nil {
		return err
	}

	return l.repo.DeleteLabel(ctx, id)
}

// ResetRegistry replaces the registry with the empty default set and clears
// the assignment map. Both are cleared together so no assignment can dangle.
func (l *labelServiceImpl) ResetRegistry(ctx context.Context) error {
	if err := l.repo.DeleteAllLabels(ctx); err != nil {
		return err
	}
	return l.repo.ClearAssignments(ctx)
}

// RepairDurations back-fills zero durations from time-range names over all
// existing labels, mirroring the derivation that runs at creation time.
func (l *labelServiceImpl) RepairDurations(ctx context.Context) (int, error) {
	dbLabels, err := l.repo.ListLabels(ctx)
	if err != nil {
		return 0, err
	}

	repaired := 0
	for _, dbLabel := range dbLabels {
		if dbLabel.Duration != 0 {
			continue
		}
		parsed := domain.DurationFromText(dbLabel.Name)
		if parsed <= 0 {
			continue
		}

		dbLabel.Duration = parsed
		if err := l.repo.UpdateLabel(ctx, dbLabel); err != nil {
			return repaired, err
		}
		logging.Debugf("repaired duration of label %d to %g\n", dbLabel.ID, parsed)
		repaired++
	}

	return repaired, nil
}
