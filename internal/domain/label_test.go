package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelTimeRange(t *testing.T) {
	tests := []struct {
		name      string
		label     Label
		wantStart int
		wantEnd   int
		wantNil   bool
	}{
		{
			name:      "derived from name pattern",
			label:     Label{Name: "16:00-22:00"},
			wantStart: 16 * 60,
			wantEnd:   22 * 60,
		},
		{
			name:      "explicit clocks win over name pattern",
			label:     Label{Name: "16:00-22:00", StartTime: "09:00", EndTime: "12:00"},
			wantStart: 9 * 60,
			wantEnd:   12 * 60,
		},
		{
			name:    "no derivable range",
			label:   Label{Name: "Day off"},
			wantNil: true,
		},
		{
			name:    "single clock field is ignored",
			label:   Label{Name: "Day off", StartTime: "09:00"},
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.label.TimeRange()
			if tt.wantNil {
				assert.Nil(t, r)
				return
			}
			require.NotNil(t, r)
			assert.Equal(t, tt.wantStart, r.StartMinute)
			assert.Equal(t, tt.wantEnd, r.EndMinute)
		})
	}
}

func TestLabelDisplayName(t *testing.T) {
	withClocks := Label{Name: "Evening", StartTime: "16:00", EndTime: "22:00"}
	assert.Equal(t, "16:00 - 22:00", withClocks.DisplayName())

	withoutClocks := Label{Name: "Evening"}
	assert.Equal(t, "Evening", withoutClocks.DisplayName())
}

func TestLabelIsValid(t *testing.T) {
	assert.True(t, Label{Name: "Shift", Duration: 6}.IsValid())
	assert.True(t, Label{Name: "Shift"}.IsValid())
	assert.False(t, Label{Duration: 6}.IsValid())
	assert.False(t, Label{Name: "Shift", Duration: -1}.IsValid())
}
