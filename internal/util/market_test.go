package util_test

import (
	"testing"
	"time"

	"github.com/epeers/stocklens/internal/util"
	"github.com/stretchr/testify/assert"
)

func TestNextPriceUpdate(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("should have loaded timezone America/New_York: %v", err)
	}

	testCases := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "Weekday before close",
			input:    time.Date(2025, 1, 14, 10, 0, 0, 0, ny),  // Tuesday 10:00 AM
			expected: time.Date(2025, 1, 14, 16, 30, 0, 0, ny), // Tuesday 4:30 PM
		},
		{
			name:     "Weekday after close",
			input:    time.Date(2025, 1, 14, 17, 0, 0, 0, ny),  // Tuesday 5:00 PM
			expected: time.Date(2025, 1, 15, 16, 30, 0, 0, ny), // Wednesday 4:30 PM
		},
		{
			name:     "Friday after close",
			input:    time.Date(2025, 1, 17, 18, 0, 0, 0, ny),  // Friday 6:00 PM
			expected: time.Date(2025, 1, 20, 16, 30, 0, 0, ny), // Monday 4:30 PM
		},
		{
			name:     "Sunday",
			input:    time.Date(2025, 1, 19, 12, 0, 0, 0, ny),  // Sunday noon
			expected: time.Date(2025, 1, 20, 16, 30, 0, 0, ny), // Monday 4:30 PM
		},
		{
			name:     "Exactly at close",
			input:    time.Date(2025, 1, 14, 16, 30, 0, 0, ny),
			expected: time.Date(2025, 1, 14, 16, 30, 0, 0, ny),
		},
		{
			name:     "UTC input late in the New York day",
			input:    time.Date(2025, 1, 15, 3, 0, 0, 0, time.UTC), // Tuesday 10:00 PM in New York
			expected: time.Date(2025, 1, 15, 16, 30, 0, 0, ny),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := util.NextPriceUpdate(tc.input)
			assert.Equal(t, tc.expected.UTC(), actual, "The expected date should be %v but was %v", tc.expected.UTC(), actual)
		})
	}
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, util.DaysUntil(now, now))
	assert.Equal(t, 15, util.DaysUntil(now, time.Date(2025, 1, 30, 0, 0, 0, 0, time.UTC).Add(12*time.Hour)))
	assert.Equal(t, -1, util.DaysUntil(now, now.AddDate(0, 0, -1)))
}
