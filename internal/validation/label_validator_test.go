package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workday/internal/domain"
)

func TestValidateLabel(t *testing.T) {
	lv := NewLabelValidator()

	tests := []struct {
		name    string
		label   domain.Label
		wantErr bool
	}{
		{
			name:  "minimal valid label",
			label: domain.Label{Name: "Shift"},
		},
		{
			name: "full valid label",
			label: domain.Label{
				Name:      "Evening",
				Color:     "#3b82f6",
				Duration:  6,
				StartTime: "16:00",
				EndTime:   "22:00",
			},
		},
		{
			name:    "empty name",
			label:   domain.Label{Name: ""},
			wantErr: true,
		},
		{
			name:    "name too long",
			label:   domain.Label{Name: strings.Repeat("x", 101)},
			wantErr: true,
		},
		{
			name:    "bad color",
			label:   domain.Label{Name: "Shift", Color: "blue"},
			wantErr: true,
		},
		{
			name:    "negative duration",
			label:   domain.Label{Name: "Shift", Duration: -0.5},
			wantErr: true,
		},
		{
			name:    "bad start clock",
			label:   domain.Label{Name: "Shift", StartTime: "24:00", EndTime: "06:00"},
			wantErr: true,
		},
		{
			name:    "start without end",
			label:   domain.Label{Name: "Shift", StartTime: "16:00"},
			wantErr: true,
		},
		{
			name:    "end without start",
			label:   domain.Label{Name: "Shift", EndTime: "22:00"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := lv.ValidateLabel(tt.label)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateLabelID(t *testing.T) {
	lv := NewLabelValidator()

	assert.NoError(t, lv.ValidateLabelID(1))
	assert.Error(t, lv.ValidateLabelID(0))
	assert.Error(t, lv.ValidateLabelID(-3))
}

func TestValidateDateKey(t *testing.T) {
	lv := NewLabelValidator()

	assert.NoError(t, lv.ValidateDateKey("2024-03-04"))
	assert.Error(t, lv.ValidateDateKey("2024-02-30"))
	assert.Error(t, lv.ValidateDateKey(""))
}
