package domain

import (
	"workday/internal/repository/sqlite"
)

// LabelMapper handles conversion between domain and database Label models.
type LabelMapper struct{}

// NewLabelMapper creates a new LabelMapper instance.
func NewLabelMapper() *LabelMapper {
	return &LabelMapper{}
}

// ToDatabase converts a domain Label to a database Label.
func (m *LabelMapper) ToDatabase(domainLabel Label) sqlite.Label {
	return sqlite.Label{
		ID:        domainLabel.ID,
		Name:      domainLabel.Name,
		Color:     domainLabel.Color,
		Duration:  domainLabel.Duration,
		StartTime: domainLabel.StartTime,
		EndTime:   domainLabel.EndTime,
	}
}

// FromDatabase converts a database Label to a domain Label.
func (m *LabelMapper) FromDatabase(dbLabel sqlite.Label) Label {
	return Label{
		ID:        dbLabel.ID,
		Name:      dbLabel.Name,
		Color:     dbLabel.Color,
		Duration:  dbLabel.Duration,
		StartTime: dbLabel.StartTime,
		EndTime:   dbLabel.EndTime,
	}
}

// FromDatabaseSlice converts a slice of database Labels to domain Labels.
func (m *LabelMapper) FromDatabaseSlice(dbLabels []*sqlite.Label) []*Label {
	domainLabels := make([]*Label, len(dbLabels))
	for i, dbLabel := range dbLabels {
		domainLabel := m.FromDatabase(*dbLabel)
		domainLabels[i] = &domainLabel
	}
	return domainLabels
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Label *LabelMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Label: NewLabelMapper(),
	}
}
