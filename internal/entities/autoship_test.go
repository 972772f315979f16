package entities_test

import (
	"testing"
	"time"

	"github.com/glebsolovev/fulfillment-service/internal/entities"

	"github.com/stretchr/testify/assert"
)

func TestAutoshipStatus_CanTransitionTo(t *testing.T) {
	testCases := []struct {
		name string
		from entities.AutoshipStatus
		to   entities.AutoshipStatus
		want bool
	}{
		{name: "active to paused", from: entities.AutoshipStatusActive, to: entities.AutoshipStatusPaused, want: true},
		{name: "active to cancelled", from: entities.AutoshipStatusActive, to: entities.AutoshipStatusCancelled, want: true},
		{name: "paused to active", from: entities.AutoshipStatusPaused, to: entities.AutoshipStatusActive, want: true},
		{name: "paused to cancelled", from: entities.AutoshipStatusPaused, to: entities.AutoshipStatusCancelled, want: true},
		{name: "cancelled to active", from: entities.AutoshipStatusCancelled, to: entities.AutoshipStatusActive, want: false},
		{name: "cancelled to paused", from: entities.AutoshipStatusCancelled, to: entities.AutoshipStatusPaused, want: false},
		{name: "same status rejected", from: entities.AutoshipStatusActive, to: entities.AutoshipStatusActive, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestFrequency_Valid(t *testing.T) {
	assert.True(t, entities.Frequency{Unit: entities.FrequencyUnitDay, Count: 30}.Valid())
	assert.True(t, entities.Frequency{Unit: entities.FrequencyUnitWeek, Count: 2}.Valid())
	assert.True(t, entities.Frequency{Unit: entities.FrequencyUnitMonth, Count: 1}.Valid())
	assert.False(t, entities.Frequency{Unit: entities.FrequencyUnitDay, Count: 0}.Valid())
	assert.False(t, entities.Frequency{Unit: entities.FrequencyUnitDay, Count: -1}.Valid())
	assert.False(t, entities.Frequency{Unit: "year", Count: 1}.Valid())
}

func TestFrequency_Next(t *testing.T) {
	from := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name string
		freq entities.Frequency
		from time.Time
		want time.Time
	}{
		{
			name: "30 days",
			freq: entities.Frequency{Unit: entities.FrequencyUnitDay, Count: 30},
			from: from,
			want: time.Date(2025, time.April, 14, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "2 weeks",
			freq: entities.Frequency{Unit: entities.FrequencyUnitWeek, Count: 2},
			from: from,
			want: time.Date(2025, time.March, 29, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "1 month",
			freq: entities.Frequency{Unit: entities.FrequencyUnitMonth, Count: 1},
			from: from,
			want: time.Date(2025, time.April, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "month from Jan 31 normalizes into March",
			freq: entities.Frequency{Unit: entities.FrequencyUnitMonth, Count: 1},
			from: time.Date(2025, time.January, 31, 10, 0, 0, 0, time.UTC),
			want: time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.freq.Next(tc.from))
		})
	}
}
